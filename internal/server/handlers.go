package server

import (
	"github.com/gofiber/fiber/v2"

	"fieldtask/internal/domain"
	"fieldtask/internal/errors"
	"fieldtask/internal/services"
)

// Handlers maps HTTP requests onto the task lifecycle service. It performs
// no business validation of its own beyond decoding the request.
type Handlers struct {
	service services.TaskService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service services.TaskService) *Handlers {
	return &Handlers{service: service}
}

// HealthCheck handles GET /health.
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(MessageResponse{Message: "ok"})
}

// CreateTask handles POST /api/v1/tasks.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.NewValidationError("invalid request body", err)
	}

	_, err := h.service.Create(c.Context(), services.CreateTaskParams{
		CustomerName:  req.CustomerName,
		Location:      req.Location,
		TaskType:      domain.TaskType(req.TaskType),
		ScheduledTime: req.ScheduledTime,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(MessageResponse{Message: "task created"})
}

// ListTasks handles GET /api/v1/tasks.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(toTaskResponses(tasks))
}

// CompleteTask handles PATCH /api/v1/tasks/:id.
func (h *Handlers) CompleteTask(c *fiber.Ctx) error {
	var req CompleteTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.NewValidationError("invalid request body", err)
	}

	if _, err := h.service.Complete(c.Context(), c.Params("id"), req.CompletedAt); err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "task completed"})
}

// DeleteTask handles DELETE /api/v1/tasks/:id.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "task deleted"})
}
