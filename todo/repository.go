package todo

import (
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/al-prieto/todo-list-app/internal/storage"
	"github.com/sirupsen/logrus"
)

// CorruptDataMessage is sent to the Notifier when stored data is discarded.
const CorruptDataMessage = "Corrupted data found in storage. Your data has been reset."

// Notifier shows a message to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) {
	f(message)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string) {}

// Options configures a Repository.
type Options struct {
	// Key is the storage key for the project collection.
	// Defaults to DefaultStoreKey.
	Key string

	// Logger receives warnings for missing entities and failed writes.
	// If nil, log output is discarded.
	Logger logrus.FieldLogger

	// Notifier is told when corrupted data is discarded. If nil, nothing is shown.
	Notifier Notifier
}

// Repository is the single owner of the project collection and the current
// project selection. Every mutation is written through to the store.
//
// A Repository is not safe for concurrent use.
type Repository struct {
	store    storage.Store
	key      string
	logger   logrus.FieldLogger
	notifier Notifier

	projects  []Project
	currentID string
}

// NewRepository creates an empty repository backed by store.
// Call Load to read the persisted collection.
func NewRepository(store storage.Store, opts Options) *Repository {
	key := opts.Key
	if key == "" {
		key = DefaultStoreKey
	}

	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = noopNotifier{}
	}

	return &Repository{
		store:    store,
		key:      key,
		logger:   logger.WithField("key", key),
		notifier: notifier,
	}
}

// Load replaces the in-memory collection with the persisted one and selects
// the first project.
//
// When the stored payload cannot be decoded, the stored data is deleted,
// the user is notified, and Load returns an empty collection without error.
// Errors are returned only when the store itself fails.
func (r *Repository) Load() ([]Project, error) {
	r.projects = nil
	r.currentID = ""

	data, ok, err := r.store.Get(r.key)
	if err != nil {
		r.logger.WithError(err).Error("failed to read projects")
		return []Project{}, &PersistenceError{Op: "load", Key: r.key, Err: err}
	}
	if !ok {
		r.logger.Debug("no stored projects; starting empty")
		return []Project{}, nil
	}

	projects, err := decodeProjects(data, r.logger)
	if err != nil {
		r.logger.WithError(err).Warn("discarding corrupted projects")
		if err := r.store.Delete(r.key); err != nil {
			r.logger.WithError(err).Error("failed to clear corrupted projects")
			return []Project{}, &PersistenceError{Op: "reset", Key: r.key, Err: err}
		}
		r.notifier.Notify(CorruptDataMessage)
		return []Project{}, nil
	}

	r.projects = projects
	if len(r.projects) > 0 {
		r.currentID = r.projects[0].ID
	}
	r.logger.WithField("projects", len(r.projects)).Debug("loaded projects")
	return r.AllProjects(), nil
}

// save writes the whole collection to the store.
func (r *Repository) save() error {
	data, err := encodeProjects(r.projects)
	if err != nil {
		return &PersistenceError{Op: "encode", Key: r.key, Err: err}
	}
	if err := r.store.Set(r.key, data); err != nil {
		r.logger.WithError(err).Error("failed to save projects")
		return &PersistenceError{Op: "save", Key: r.key, Err: err}
	}
	return nil
}

// AllProjects returns a snapshot of every project in order.
func (r *Repository) AllProjects() []Project {
	projects := make([]Project, 0, len(r.projects))
	for _, p := range r.projects {
		projects = append(projects, p.Clone())
	}
	return projects
}

// projectIndex returns the index of the project with the given ID, or -1.
// When IDs are duplicated the last project wins.
func (r *Repository) projectIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := len(r.projects) - 1; i >= 0; i-- {
		if r.projects[i].ID == id {
			return i
		}
	}
	return -1
}

// FindProject returns the project with the given ID without changing the
// current selection.
func (r *Repository) FindProject(id string) (Project, bool) {
	i := r.projectIndex(id)
	if i < 0 {
		return Project{}, false
	}
	return r.projects[i].Clone(), true
}

// SelectProject makes the project with the given ID current.
func (r *Repository) SelectProject(id string) (Project, bool) {
	i := r.projectIndex(id)
	if i < 0 {
		r.logger.WithField("project_id", id).Warn("project not found; selection unchanged")
		return Project{}, false
	}
	r.currentID = r.projects[i].ID
	return r.projects[i].Clone(), true
}

// GetProject looks up a project and makes it current.
//
// With an empty id it returns the current project; if the current project
// no longer exists the selection is cleared and ok is false.
func (r *Repository) GetProject(id string) (Project, bool) {
	if id == "" {
		if r.currentID == "" {
			return Project{}, false
		}
		if i := r.projectIndex(r.currentID); i >= 0 {
			return r.projects[i].Clone(), true
		}
		r.logger.WithField("project_id", r.currentID).Warn("current project not found; clearing selection")
		r.currentID = ""
		return Project{}, false
	}
	return r.SelectProject(id)
}

// CurrentProject returns the selected project. When nothing valid is
// selected, the first project is adopted as current. ok is false only when
// there are no projects.
func (r *Repository) CurrentProject() (Project, bool) {
	if i := r.projectIndex(r.currentID); i >= 0 {
		return r.projects[i].Clone(), true
	}
	if len(r.projects) == 0 {
		r.currentID = ""
		return Project{}, false
	}
	r.currentID = r.projects[0].ID
	return r.projects[0].Clone(), true
}

// AddProject appends a project and saves.
//
// Embedded tasks are validated the same way AddTask validates them. IDs are
// not checked for duplicates, so lookups resolve to the last match; a project
// or task without an ID is given one. The stored copy is returned.
func (r *Repository) AddProject(p Project) (Project, error) {
	if err := ValidateName(p.Name); err != nil {
		return Project{}, err
	}
	p = p.Clone()
	if p.ID == "" {
		p.ID = NewID()
	}
	for i := range p.Todos {
		t := &p.Todos[i]
		if t.Priority == "" {
			t.Priority = PriorityMedium
		}
		if err := ValidateTask(t); err != nil {
			return Project{}, err
		}
		if t.ID == "" {
			t.ID = NewID()
		}
		t.ProjectID = p.ID
	}

	r.projects = append(r.projects, p)
	r.logger.WithField("project_id", p.ID).Info("project added")
	return p.Clone(), r.save()
}

// EnsureDefaultProject adds a project named name when the collection is
// empty. created reports whether a project was added.
func (r *Repository) EnsureDefaultProject(name string) (p Project, created bool, err error) {
	if len(r.projects) > 0 {
		current, _ := r.CurrentProject()
		return current, false, nil
	}

	p, err = NewProject(name, ProjectOptions{})
	if err != nil {
		return Project{}, false, err
	}
	p, err = r.AddProject(p)
	r.currentID = p.ID
	return p, true, err
}

// RemoveProject removes the project with the given ID along with its tasks.
// If it was current, the first remaining project becomes current.
func (r *Repository) RemoveProject(id string) (Project, bool, error) {
	i := r.projectIndex(id)
	if i < 0 {
		r.logger.WithField("project_id", id).Warn("attempted to remove missing project")
		return Project{}, false, nil
	}

	removed := r.projects[i]
	r.projects = slices.Delete(r.projects, i, i+1)

	if r.currentID == id {
		r.currentID = ""
		if len(r.projects) > 0 {
			r.currentID = r.projects[0].ID
		}
	}

	r.logger.WithField("project_id", id).Info("project removed")
	return removed, true, r.save()
}

// RenameProject changes a project's name. Names need not be unique.
func (r *Repository) RenameProject(id, newName string) (Project, bool, error) {
	if err := ValidateName(newName); err != nil {
		return Project{}, false, err
	}

	i := r.projectIndex(id)
	if i < 0 {
		r.logger.WithField("project_id", id).Warn("project not found for renaming")
		return Project{}, false, nil
	}

	r.projects[i].Name = strings.TrimSpace(newName)
	r.logger.WithFields(logrus.Fields{
		"project_id": id,
		"name":       r.projects[i].Name,
	}).Info("project renamed")
	return r.projects[i].Clone(), true, r.save()
}

// IsPersistenceError reports whether err came from the durable store.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
