package validation

import (
	"regexp"
	"strings"
	"time"

	"fieldtask/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	textPattern *regexp.Regexp
	config      *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return newValidator(nil)
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return newValidator(cfg)
}

func newValidator(cfg *config.Config) *Validator {
	return &Validator{
		// Allow letters, digits, spaces and common punctuation,
		// but reject newlines, tabs and other control characters.
		textPattern: regexp.MustCompile(`^[\p{L}\p{N} \-_'.,#/&()]+$`),
		config:      cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidFieldLength checks if a field value length is within configured limits
func (v *Validator) IsValidFieldLength(s string) bool {
	return v.IsValidStringLength(s, v.fieldMinLength(), v.fieldMaxLength())
}

// IsValidText checks if a free-text value contains only allowed characters
func (v *Validator) IsValidText(s string) bool {
	return v.textPattern.MatchString(s)
}

// IsValidScheduledTime checks if a scheduled time is usable: it must be
// present (non-zero). Past times are allowed so that visits can be recorded
// after the fact.
func (v *Validator) IsValidScheduledTime(t time.Time) bool {
	return !t.IsZero()
}

// IsValidCompletionTime checks if a completion timestamp is usable.
// Callers must always supply one; a zero value is a caller error, never
// silently defaulted.
func (v *Validator) IsValidCompletionTime(t time.Time) bool {
	return !t.IsZero()
}

// IsValidTaskID checks if a task identifier is present
func (v *Validator) IsValidTaskID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// TrimString trims whitespace and returns the cleaned string
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}

// fieldMinLength returns the configured minimum field length or default
func (v *Validator) fieldMinLength() int {
	if v.config != nil {
		return v.config.Validation.FieldMinLength
	}
	return 1
}

// fieldMaxLength returns the configured maximum field length or default
func (v *Validator) fieldMaxLength() int {
	if v.config != nil {
		return v.config.Validation.FieldMaxLength
	}
	return 255
}
