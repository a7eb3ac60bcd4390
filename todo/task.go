package todo

import "strings"

// Task represents a single unit of work inside a project.
type Task struct {
	// ID is unique across every project.
	ID string `json:"id" yaml:"id"`

	// Title is the short summary of the task (max 500 chars).
	Title string `json:"title" yaml:"title"`

	// Description provides additional context about the task.
	Description string `json:"description" yaml:"description"`

	// DueDate is when the task is due, as entered (e.g. 2025-06-01).
	DueDate string `json:"dueDate" yaml:"dueDate"`

	// Priority is the importance level.
	Priority Priority `json:"priority" yaml:"priority"`

	// Notes holds free-form notes.
	Notes string `json:"notes" yaml:"notes"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed" yaml:"completed"`

	// ProjectID is the ID of the project whose task list contains this task.
	ProjectID string `json:"projectId" yaml:"projectId"`
}

// TaskOptions configures a new task.
type TaskOptions struct {
	// Priority defaults to PriorityMedium when empty.
	Priority Priority

	Notes     string
	Completed bool

	// ID is generated when empty.
	ID string

	// ProjectID is set by the repository when the task is added to a project.
	ProjectID string
}

// NewTask creates a validated task.
func NewTask(title, description, dueDate string, opts TaskOptions) (Task, error) {
	if err := ValidateTitle(title); err != nil {
		return Task{}, err
	}
	if err := ValidateDueDate(dueDate); err != nil {
		return Task{}, err
	}

	priority := opts.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if err := ValidatePriority(priority); err != nil {
		return Task{}, err
	}

	id := opts.ID
	if id == "" {
		id = NewID()
	}

	return Task{
		ID:          id,
		Title:       strings.TrimSpace(title),
		Description: description,
		DueDate:     strings.TrimSpace(dueDate),
		Priority:    priority,
		Notes:       opts.Notes,
		Completed:   opts.Completed,
		ProjectID:   opts.ProjectID,
	}, nil
}

// ToggleComplete flips the completion state.
func (t *Task) ToggleComplete() {
	t.Completed = !t.Completed
}

// TaskPatch describes a partial task update.
// Nil pointers mean "don't update this field".
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *Priority
	Notes       *string
	Completed   *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.Priority == nil && p.Notes == nil && p.Completed == nil
}

func (p TaskPatch) validate() error {
	if p.Title != nil {
		if err := ValidateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.DueDate != nil {
		if err := ValidateDueDate(*p.DueDate); err != nil {
			return err
		}
	}
	if p.Priority != nil {
		if err := ValidatePriority(*p.Priority); err != nil {
			return err
		}
	}
	return nil
}

func (p TaskPatch) apply(t *Task) {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = strings.TrimSpace(*p.DueDate)
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
