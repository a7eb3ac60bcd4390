package todo

import (
	"errors"
	"strings"
	"testing"
)

func TestNewProject(t *testing.T) {
	p, err := NewProject("  Inbox  ", ProjectOptions{})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	if p.Name != "Inbox" {
		t.Errorf("expected trimmed name, got %q", p.Name)
	}
	if p.ID == "" {
		t.Error("expected generated ID")
	}
	if p.Todos == nil || len(p.Todos) != 0 {
		t.Errorf("expected empty non-nil task list, got %#v", p.Todos)
	}
}

func TestNewProject_KeepsSuppliedID(t *testing.T) {
	p, err := NewProject("Work", ProjectOptions{ID: "1718000000000"})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	if p.ID != "1718000000000" {
		t.Errorf("expected supplied ID, got %q", p.ID)
	}
}

func TestNewProject_EmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := NewProject(name, ProjectOptions{})
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("NewProject(%q): expected ErrEmptyName, got %v", name, err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("NewProject(%q): expected ErrValidation, got %v", name, err)
		}
	}
}

func TestNewProject_UniqueIDs(t *testing.T) {
	a, _ := NewProject("A", ProjectOptions{})
	b, _ := NewProject("B", ProjectOptions{})
	if a.ID == b.ID {
		t.Fatalf("projects created back to back share ID %q", a.ID)
	}
}

func TestNewTask_Defaults(t *testing.T) {
	task, err := NewTask("Buy milk", "", "2025-06-01", TaskOptions{})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if task.Priority != PriorityMedium {
		t.Errorf("expected medium priority, got %q", task.Priority)
	}
	if task.Completed {
		t.Error("expected new task to be incomplete")
	}
	if task.Notes != "" || task.Description != "" {
		t.Errorf("expected empty notes and description, got %q / %q", task.Notes, task.Description)
	}
	if task.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestNewTask_Options(t *testing.T) {
	task, err := NewTask(" Ship ", "release notes", "2025-07-04", TaskOptions{
		Priority:  PriorityHigh,
		Notes:     "ask Sam",
		Completed: true,
		ID:        "t1",
		ProjectID: "p1",
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	want := Task{
		ID:          "t1",
		Title:       "Ship",
		Description: "release notes",
		DueDate:     "2025-07-04",
		Priority:    PriorityHigh,
		Notes:       "ask Sam",
		Completed:   true,
		ProjectID:   "p1",
	}
	if task != want {
		t.Errorf("NewTask() = %#v, want %#v", task, want)
	}
}

func TestNewTask_Validation(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		dueDate  string
		priority Priority
		want     error
	}{
		{"empty title", "", "2025-06-01", "", ErrEmptyTitle},
		{"blank title", "   ", "2025-06-01", "", ErrEmptyTitle},
		{"long title", strings.Repeat("x", MaxTitleLength+1), "2025-06-01", "", ErrTitleTooLong},
		{"missing due date", "Buy milk", " ", "", ErrEmptyDueDate},
		{"bad priority", "Buy milk", "2025-06-01", "urgent", ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTask(tt.title, "", tt.dueDate, TaskOptions{Priority: tt.priority})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestNewTask_MaxLengthTitle(t *testing.T) {
	if _, err := NewTask(strings.Repeat("é", MaxTitleLength), "", "2025-06-01", TaskOptions{}); err != nil {
		t.Fatalf("expected %d-rune title to be accepted: %v", MaxTitleLength, err)
	}
}

func TestTask_ToggleComplete(t *testing.T) {
	task, _ := NewTask("Buy milk", "", "2025-06-01", TaskOptions{})

	task.ToggleComplete()
	if !task.Completed {
		t.Fatal("expected task to be completed after one toggle")
	}
	task.ToggleComplete()
	if task.Completed {
		t.Fatal("expected task to be incomplete after two toggles")
	}
}

func TestProject_AddRemoveTask(t *testing.T) {
	p, _ := NewProject("Inbox", ProjectOptions{})
	a, _ := NewTask("A", "", "2025-06-01", TaskOptions{ID: "a"})
	b, _ := NewTask("B", "", "2025-06-01", TaskOptions{ID: "b"})
	c, _ := NewTask("C", "", "2025-06-01", TaskOptions{ID: "c"})

	p.AddTask(a)
	p.AddTask(b)
	p.AddTask(c)

	if !p.RemoveTask("b") {
		t.Fatal("expected removal of b to report true")
	}
	if p.RemoveTask("missing") {
		t.Fatal("expected removal of a missing task to report false")
	}

	var got []string
	for _, task := range p.Todos {
		got = append(got, task.ID)
	}
	if strings.Join(got, ",") != "a,c" {
		t.Fatalf("expected remaining order a,c, got %v", got)
	}
}

func TestProject_CloneIsIndependent(t *testing.T) {
	p, _ := NewProject("Inbox", ProjectOptions{})
	task, _ := NewTask("A", "", "2025-06-01", TaskOptions{})
	p.AddTask(task)

	clone := p.Clone()
	clone.Todos[0].ToggleComplete()
	clone.Name = "Renamed"

	if p.Todos[0].Completed {
		t.Fatal("expected original task to be unaffected by clone mutation")
	}
	if p.Name != "Inbox" {
		t.Fatal("expected original name to be unaffected")
	}
}

func TestProject_CompletedCount(t *testing.T) {
	p, _ := NewProject("Inbox", ProjectOptions{})
	for i, done := range []bool{true, false, true} {
		task, _ := NewTask("T", "", "2025-06-01", TaskOptions{Completed: done, ID: string(rune('a' + i))})
		p.AddTask(task)
	}
	if got := p.CompletedCount(); got != 2 {
		t.Fatalf("expected 2 completed tasks, got %d", got)
	}
}
