// Package todo implements the project and task model of the todo list.
//
// Projects own an ordered list of tasks. A Repository holds every project in
// memory, tracks which project is currently selected, and writes the whole
// collection through to a storage.Store after each mutation.
//
// The public API mirrors what the presentation layer needs:
//   - NewProject, NewTask for building validated entities
//   - Load, AllProjects, FindProject, GetProject, CurrentProject for reading
//   - AddProject, RemoveProject, RenameProject, SelectProject for projects
//   - AddTask, RemoveTask, ToggleTaskComplete, UpdateTask for tasks
package todo

import (
	internalstrings "github.com/al-prieto/todo-list-app/internal/strings"
	"github.com/al-prieto/todo-list-app/internal/validation"
)

// Priority represents the importance of a task.
type Priority string

const (
	// PriorityLow marks a task that can wait.
	PriorityLow Priority = "low"

	// PriorityMedium is the default priority.
	PriorityMedium Priority = "medium"

	// PriorityHigh marks a task that should be done first.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// ParsePriority normalizes user input into a Priority.
// Empty input yields PriorityMedium.
func ParsePriority(value string) (Priority, error) {
	normalized := Priority(internalstrings.NormalizeKeyword(value))
	if normalized == "" {
		return PriorityMedium, nil
	}
	if !normalized.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidPriority, Priority(value), ValidPriorities())
	}
	return normalized, nil
}

// PriorityRank returns the sort rank for a priority; lower sorts first.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500

// DefaultStoreKey is the storage key the project collection is saved under.
const DefaultStoreKey = "todoAppProjects"
