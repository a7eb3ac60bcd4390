package todo

import (
	"slices"
	"strings"
)

// Project is a named, ordered list of tasks.
type Project struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	// Todos is in display order. The project owns its tasks.
	Todos []Task `json:"todos" yaml:"todos"`
}

// ProjectOptions configures a new project.
type ProjectOptions struct {
	// ID is generated when empty.
	ID string
}

// NewProject creates a project with an empty task list.
func NewProject(name string, opts ProjectOptions) (Project, error) {
	if err := ValidateName(name); err != nil {
		return Project{}, err
	}

	id := opts.ID
	if id == "" {
		id = NewID()
	}

	return Project{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Todos: []Task{},
	}, nil
}

// AddTask appends a task to the end of the list.
func (p *Project) AddTask(t Task) {
	p.Todos = append(p.Todos, t)
}

// RemoveTask removes every task with the given ID.
// It returns false when no task matched.
func (p *Project) RemoveTask(id string) bool {
	before := len(p.Todos)
	p.Todos = slices.DeleteFunc(p.Todos, func(t Task) bool {
		return t.ID == id
	})
	return len(p.Todos) < before
}

// Task returns the task with the given ID.
func (p Project) Task(id string) (Task, bool) {
	if i := p.taskIndex(id); i >= 0 {
		return p.Todos[i], true
	}
	return Task{}, false
}

// taskIndex returns the index of the last task with the given ID, or -1.
func (p Project) taskIndex(id string) int {
	for i := len(p.Todos) - 1; i >= 0; i-- {
		if p.Todos[i].ID == id {
			return i
		}
	}
	return -1
}

// CompletedCount returns how many tasks are completed.
func (p Project) CompletedCount() int {
	count := 0
	for _, t := range p.Todos {
		if t.Completed {
			count++
		}
	}
	return count
}

// Clone returns a copy that shares no task storage with p.
func (p Project) Clone() Project {
	todos := make([]Task, len(p.Todos))
	copy(todos, p.Todos)
	p.Todos = todos
	return p
}
