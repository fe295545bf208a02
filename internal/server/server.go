package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"fieldtask/internal/config"
	"fieldtask/internal/errors"
	"fieldtask/internal/services"
)

// Server wraps the fiber application serving the task API.
type Server struct {
	app *fiber.App
	cfg *config.Config
}

// New creates the HTTP server with its middleware and routes configured.
func New(cfg *config.Config, service services.TaskService) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "FieldTask API",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowedOrigin,
		AllowMethods: "GET,POST,PATCH,DELETE",
	}))

	handlers := NewHandlers(service)

	app.Get("/health", handlers.HealthCheck)

	tasks := app.Group("/api/v1/tasks")
	tasks.Post("/", handlers.CreateTask)
	tasks.Get("/", handlers.ListTasks)
	tasks.Patch("/:id", handlers.CompleteTask)
	tasks.Delete("/:id", handlers.DeleteTask)

	return &Server{app: app, cfg: cfg}
}

// Listen starts serving on the configured port and blocks until the
// server shuts down.
func (s *Server) Listen() error {
	return s.app.Listen(fmt.Sprintf(":%d", s.cfg.Server.ListenPort))
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the fiber app, used by tests to issue in-process requests.
func (s *Server) App() *fiber.App {
	return s.app
}

// errorHandler maps typed lifecycle errors onto HTTP statuses:
// validation 400, not found 404, precondition 409, everything else 500.
// The response carries the user-facing message and the error kind only.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	kind := errors.ErrorTypeServer.String()
	message := "An unexpected error occurred. Please try again."

	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Type {
		case errors.ErrorTypeValidation:
			code = fiber.StatusBadRequest
		case errors.ErrorTypeNotFound:
			code = fiber.StatusNotFound
		case errors.ErrorTypePrecondition:
			code = fiber.StatusConflict
		}
		kind = appErr.Type.String()
		message = errors.GetUserMessage(appErr)
	} else if fiberErr, ok := err.(*fiber.Error); ok {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error: message,
		Kind:  kind,
	})
}
