package validation

import (
	"fmt"
	"time"

	"fieldtask/internal/domain"
)

// TaskValidator provides validation for task lifecycle operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a new task validator with configuration
func NewTaskValidatorWithConfig(validator *Validator) *TaskValidator {
	return &TaskValidator{
		validator: validator,
	}
}

// ValidateForCreation validates the inputs of a task creation request.
// Status and completion timestamp are not part of the inputs: new tasks
// are always created Pending.
func (tv *TaskValidator) ValidateForCreation(customerName, location string, taskType domain.TaskType, scheduledTime time.Time) error {
	validationError := NewValidationError()

	tv.validateTextField(validationError, "customerName", customerName)
	tv.validateTextField(validationError, "location", location)

	if !taskType.IsValid() {
		validationError.AddInvalidValueError("taskType", string(taskType),
			fmt.Sprintf("must be one of %v", domain.TaskTypes()))
	}

	if !tv.validator.IsValidScheduledTime(scheduledTime) {
		validationError.AddRequiredError("scheduledTime")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task identifier
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("id")
		return validationError
	}
	return nil
}

// ValidateCompletion validates the inputs of a completion request
func (tv *TaskValidator) ValidateCompletion(id string, completedAt time.Time) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidTaskID(id) {
		validationError.AddRequiredError("id")
	}

	if !tv.validator.IsValidCompletionTime(completedAt) {
		validationError.AddRequiredError("completedAt")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// validateTextField applies the required/length/character rules shared by
// the customer name and location fields
func (tv *TaskValidator) validateTextField(validationError *ValidationError, field, value string) {
	trimmed := tv.validator.TrimString(value)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError(field)
		return
	}

	if !tv.validator.IsValidFieldLength(trimmed) {
		validationError.AddInvalidLengthError(field, trimmed, 1, 255)
	}

	if !tv.validator.IsValidText(trimmed) {
		validationError.AddInvalidCharacterError(field, trimmed)
	}
}

// CleanTextField returns the trimmed field value
func (tv *TaskValidator) CleanTextField(value string) string {
	return tv.validator.TrimString(value)
}
