package todo

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	internalstrings "github.com/al-prieto/todo-list-app/internal/strings"
	"github.com/al-prieto/todo-list-app/internal/validation"
)

var (
	// ErrValidation is wrapped by every error caused by invalid entity input.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyName is returned when a project name is empty after trimming.
	ErrEmptyName = fmt.Errorf("%w: project name cannot be empty", ErrValidation)

	// ErrEmptyTitle is returned when a task title is empty after trimming.
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = fmt.Errorf("%w: title exceeds maximum length", ErrValidation)

	// ErrEmptyDueDate is returned when a task is created without a due date.
	ErrEmptyDueDate = fmt.Errorf("%w: due date cannot be empty", ErrValidation)

	// ErrInvalidPriority is returned when a priority is not low, medium or high.
	ErrInvalidPriority = fmt.Errorf("%w: invalid priority", ErrValidation)
)

// ValidateName checks if a project name is valid.
func ValidateName(name string) error {
	if internalstrings.IsBlank(name) {
		return ErrEmptyName
	}
	return nil
}

// ValidateTitle checks if a task title is valid.
func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, n, MaxTitleLength)
	}
	return nil
}

// ValidateDueDate checks that a due date is present.
func ValidateDueDate(dueDate string) error {
	if internalstrings.IsBlank(dueDate) {
		return ErrEmptyDueDate
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(p Priority) error {
	if !p.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidPriority, p, ValidPriorities())
	}
	return nil
}

// ValidateTask checks if a task struct is valid.
func ValidateTask(t *Task) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if err := ValidateDueDate(t.DueDate); err != nil {
		return err
	}
	return ValidatePriority(t.Priority)
}
