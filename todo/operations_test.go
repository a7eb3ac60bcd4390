package todo

import (
	"errors"
	"testing"

	"github.com/al-prieto/todo-list-app/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore counts successful writes.
type countingStore struct {
	storage.Store
	sets int
}

func (s *countingStore) Set(key string, value []byte) error {
	if err := s.Store.Set(key, value); err != nil {
		return err
	}
	s.sets++
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func TestAddTask_SelectsProjectAndPersists(t *testing.T) {
	store := storage.NewMemoryStore()
	repo, _ := newTestRepository(t, store)
	a := addProject(t, repo, "A")
	b := addProject(t, repo, "B")
	repo.SelectProject(a.ID)

	task, ok, err := repo.AddTask(mustTask(t, "Ship it"), b.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, b.ID, task.ProjectID)

	current, _ := repo.CurrentProject()
	assert.Equal(t, b.ID, current.ID, "adding a task selects its project")
	assert.Contains(t, storedPayload(t, store), `"title":"Ship it"`)
}

func TestAddTask_DefaultsPriorityAndID(t *testing.T) {
	repo, _ := newTestRepository(t, storage.NewMemoryStore())
	p := addProject(t, repo, "A")

	task, ok, err := repo.AddTask(Task{Title: "Raw", DueDate: "2025-06-01"}, p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Len(t, task.ID, 26)
}

func TestAddTask_MissingProject(t *testing.T) {
	counting := &countingStore{Store: storage.NewMemoryStore()}
	repo, hook := newTestRepository(t, counting)

	_, ok, err := repo.AddTask(mustTask(t, "Orphan"), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, counting.sets)
	assert.Equal(t, 1, warnCount(hook))
}

func TestAddTask_Invalid(t *testing.T) {
	repo, _ := newTestRepository(t, storage.NewMemoryStore())
	p := addProject(t, repo, "A")

	_, _, err := repo.AddTask(Task{Title: "", DueDate: "2025-06-01"}, p.ID)
	assert.True(t, errors.Is(err, ErrEmptyTitle))

	_, _, err = repo.AddTask(Task{Title: "T", DueDate: "2025-06-01", Priority: "urgent"}, p.ID)
	assert.True(t, errors.Is(err, ErrInvalidPriority))
	assert.True(t, errors.Is(err, ErrValidation))

	found, _ := repo.FindProject(p.ID)
	assert.Empty(t, found.Todos)
}

func TestRemoveTask(t *testing.T) {
	counting := &countingStore{Store: storage.NewMemoryStore()}
	repo, hook := newTestRepository(t, counting)
	p := addProject(t, repo, "A")
	task, _, err := repo.AddTask(mustTask(t, "T"), p.ID)
	require.NoError(t, err)
	sets := counting.sets

	removed, err := repo.RemoveTask("missing", p.ID)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, sets, counting.sets, "nothing removed means nothing saved")

	removed, err = repo.RemoveTask(task.ID, "missing")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, sets, counting.sets)
	assert.Equal(t, 2, warnCount(hook))

	removed, err = repo.RemoveTask(task.ID, p.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, sets+1, counting.sets)

	found, _ := repo.FindProject(p.ID)
	assert.Empty(t, found.Todos)
}

func TestRemoveTask_DoesNotChangeSelection(t *testing.T) {
	repo, _ := newTestRepository(t, storage.NewMemoryStore())
	a := addProject(t, repo, "A")
	b := addProject(t, repo, "B")
	task, _, err := repo.AddTask(mustTask(t, "T"), b.ID)
	require.NoError(t, err)
	repo.SelectProject(a.ID)

	_, err = repo.RemoveTask(task.ID, b.ID)
	require.NoError(t, err)

	current, _ := repo.CurrentProject()
	assert.Equal(t, a.ID, current.ID)
}

func TestToggleTaskComplete_Involution(t *testing.T) {
	store := storage.NewMemoryStore()
	repo, _ := newTestRepository(t, store)
	p := addProject(t, repo, "A")
	task, _, err := repo.AddTask(mustTask(t, "T"), p.ID)
	require.NoError(t, err)
	original := storedPayload(t, store)

	toggled, ok, err := repo.ToggleTaskComplete(task.ID, p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, toggled.Completed)
	assert.Contains(t, storedPayload(t, store), `"completed":true`)

	toggled, ok, err = repo.ToggleTaskComplete(task.ID, p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, toggled.Completed)
	assert.Equal(t, original, storedPayload(t, store))
}

func TestToggleTaskComplete_Missing(t *testing.T) {
	repo, hook := newTestRepository(t, storage.NewMemoryStore())
	p := addProject(t, repo, "A")

	_, ok, err := repo.ToggleTaskComplete("missing", p.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = repo.ToggleTaskComplete("missing", "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, warnCount(hook))
}

func TestToggleTaskComplete_DuplicateTaskIDsLastWins(t *testing.T) {
	repo, _ := newTestRepository(t, storage.NewMemoryStore())
	p := addProject(t, repo, "A")
	first, err := NewTask("First", "", "d", TaskOptions{ID: "dup"})
	require.NoError(t, err)
	second, err := NewTask("Second", "", "d", TaskOptions{ID: "dup"})
	require.NoError(t, err)
	_, _, err = repo.AddTask(first, p.ID)
	require.NoError(t, err)
	_, _, err = repo.AddTask(second, p.ID)
	require.NoError(t, err)

	toggled, ok, err := repo.ToggleTaskComplete("dup", p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Second", toggled.Title)

	found, _ := repo.FindProject(p.ID)
	assert.False(t, found.Todos[0].Completed)
	assert.True(t, found.Todos[1].Completed)
}

func TestUpdateTask(t *testing.T) {
	store := storage.NewMemoryStore()
	repo, _ := newTestRepository(t, store)
	p := addProject(t, repo, "A")
	task, _, err := repo.AddTask(mustTask(t, "Draft"), p.ID)
	require.NoError(t, err)

	updated, ok, err := repo.UpdateTask(task.ID, p.ID, TaskPatch{
		Title:    ptr("  Final  "),
		Notes:    ptr("call Bob"),
		Priority: ptr(PriorityLow),
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "call Bob", updated.Notes)
	assert.Equal(t, PriorityLow, updated.Priority)
	assert.Equal(t, task.DueDate, updated.DueDate, "untouched fields are kept")

	found, ok := repo.FindTask(task.ID)
	require.True(t, ok)
	assert.Equal(t, updated, found)
	assert.Contains(t, storedPayload(t, store), `"notes":"call Bob"`)
}

func TestUpdateTask_InvalidPatchChangesNothing(t *testing.T) {
	counting := &countingStore{Store: storage.NewMemoryStore()}
	repo, _ := newTestRepository(t, counting)
	p := addProject(t, repo, "A")
	task, _, err := repo.AddTask(mustTask(t, "Draft"), p.ID)
	require.NoError(t, err)
	sets := counting.sets

	tests := []struct {
		name  string
		patch TaskPatch
		want  error
	}{
		{name: "empty title", patch: TaskPatch{Title: ptr(" "), Notes: ptr("n")}, want: ErrEmptyTitle},
		{name: "empty due date", patch: TaskPatch{DueDate: ptr("")}, want: ErrEmptyDueDate},
		{name: "bad priority", patch: TaskPatch{Priority: ptr(Priority("urgent"))}, want: ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := repo.UpdateTask(task.ID, p.ID, tt.patch)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	found, _ := repo.FindTask(task.ID)
	assert.Equal(t, task, found)
	assert.Equal(t, sets, counting.sets)
}

func TestUpdateTask_EmptyPatchDoesNotSave(t *testing.T) {
	counting := &countingStore{Store: storage.NewMemoryStore()}
	repo, _ := newTestRepository(t, counting)
	p := addProject(t, repo, "A")
	task, _, err := repo.AddTask(mustTask(t, "Draft"), p.ID)
	require.NoError(t, err)
	sets := counting.sets

	got, ok, err := repo.UpdateTask(task.ID, p.ID, TaskPatch{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, task, got)
	assert.Equal(t, sets, counting.sets)
}

func TestUpdateTask_Missing(t *testing.T) {
	repo, _ := newTestRepository(t, storage.NewMemoryStore())
	p := addProject(t, repo, "A")

	_, ok, err := repo.UpdateTask("missing", p.ID, TaskPatch{Notes: ptr("x")})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindTask(t *testing.T) {
	repo, _ := newTestRepository(t, storage.NewMemoryStore())
	a := addProject(t, repo, "A")
	b := addProject(t, repo, "B")
	inA, _, err := repo.AddTask(mustTask(t, "In A"), a.ID)
	require.NoError(t, err)
	inB, _, err := repo.AddTask(mustTask(t, "In B"), b.ID)
	require.NoError(t, err)

	found, ok := repo.FindTask(inA.ID)
	require.True(t, ok)
	assert.Equal(t, a.ID, found.ProjectID)

	found, ok = repo.FindTask(inB.ID)
	require.True(t, ok)
	assert.Equal(t, "In B", found.Title)

	_, ok = repo.FindTask("missing")
	assert.False(t, ok)
}
