package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration options for the field task application.
// It is constructed once at process entry and passed by reference to every
// component that needs it; business logic never reads the environment.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Client     ClientConfig
	Validation ValidationConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	ListenPort    int    `env:"FIELDTASK_PORT"`
	AllowedOrigin string `env:"FIELDTASK_ALLOWED_ORIGIN"`
}

// DatabaseConfig holds storage configuration
type DatabaseConfig struct {
	Path         string        `env:"FIELDTASK_DB_PATH"`
	QueryTimeout time.Duration `env:"FIELDTASK_DB_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `env:"FIELDTASK_DB_WRITE_TIMEOUT"`
}

// ClientConfig holds configuration for the CLI client
type ClientConfig struct {
	BaseURL        string        `env:"FIELDTASK_SERVER_URL"`
	RequestTimeout time.Duration `env:"FIELDTASK_REQUEST_TIMEOUT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	FieldMinLength int `env:"FIELDTASK_VALIDATION_FIELD_MIN"`
	FieldMaxLength int `env:"FIELDTASK_VALIDATION_FIELD_MAX"`
}

// NewConfig creates a new configuration with sensible defaults.
// The database path deliberately has no default: the server refuses to
// start without an explicit storage location.
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenPort:    8080,
			AllowedOrigin: "*",
		},
		Database: DatabaseConfig{
			Path:         "",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Client: ClientConfig{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Validation: ValidationConfig{
			FieldMinLength: 1,
			FieldMaxLength: 255,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Server configuration
	if port := os.Getenv("FIELDTASK_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.ListenPort = p
		}
	}
	if origin := os.Getenv("FIELDTASK_ALLOWED_ORIGIN"); origin != "" {
		c.Server.AllowedOrigin = origin
	}

	// Database configuration
	if path := os.Getenv("FIELDTASK_DB_PATH"); path != "" {
		c.Database.Path = path
	}
	if timeout := os.Getenv("FIELDTASK_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("FIELDTASK_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}

	// Client configuration
	if url := os.Getenv("FIELDTASK_SERVER_URL"); url != "" {
		c.Client.BaseURL = url
	}
	if timeout := os.Getenv("FIELDTASK_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Client.RequestTimeout = d
		}
	}

	// Validation configuration
	if minLen := os.Getenv("FIELDTASK_VALIDATION_FIELD_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.FieldMinLength = n
		}
	}
	if maxLen := os.Getenv("FIELDTASK_VALIDATION_FIELD_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.FieldMaxLength = n
		}
	}

	return nil
}

// Validate validates the configuration shared by both binaries
func (c *Config) Validate() error {
	if c.Server.ListenPort <= 0 || c.Server.ListenPort > 65535 {
		return &ConfigError{Field: "server.listen_port", Message: "listen port must be between 1 and 65535"}
	}
	if c.Server.AllowedOrigin == "" {
		return &ConfigError{Field: "server.allowed_origin", Message: "allowed origin cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Client.BaseURL == "" {
		return &ConfigError{Field: "client.base_url", Message: "server URL cannot be empty"}
	}
	if c.Client.RequestTimeout <= 0 {
		return &ConfigError{Field: "client.request_timeout", Message: "request timeout must be positive"}
	}
	if c.Validation.FieldMinLength < 1 {
		return &ConfigError{Field: "validation.field_min_length", Message: "field minimum length must be at least 1"}
	}
	if c.Validation.FieldMaxLength < c.Validation.FieldMinLength {
		return &ConfigError{Field: "validation.field_max_length", Message: "field maximum length must be greater than minimum length"}
	}
	return nil
}

// ValidateServer validates the configuration required to run the server.
// A missing database path is a fatal startup condition.
func (c *Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Database.Path == "" {
		return &ConfigError{Field: "database.path", Message: "database path is required (set FIELDTASK_DB_PATH)"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
