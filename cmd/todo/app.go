package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/al-prieto/todo-list-app/internal/config"
	"github.com/al-prieto/todo-list-app/internal/logging"
	"github.com/al-prieto/todo-list-app/internal/paths"
	"github.com/al-prieto/todo-list-app/internal/storage"
	"github.com/al-prieto/todo-list-app/todo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// selectionKeySuffix names the record holding the selected project ID.
const selectionKeySuffix = "-current"

// app holds the repository for one CLI invocation.
type app struct {
	repo   *todo.Repository
	store  storage.Store
	cfg    *config.Config
	logger logrus.FieldLogger
	log    io.Closer
}

// openApp loads configuration, opens the store, and loads the projects.
// On an empty store the configured default project is created.
func openApp(cmd *cobra.Command) (*app, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Resolve(cwd)
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Stderr:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	stderr := cmd.ErrOrStderr()
	store := storage.NewFileStore(cfg.Store.Dir)
	repo := todo.NewRepository(store, todo.Options{
		Key:    cfg.Store.Key,
		Logger: logger,
		Notifier: todo.NotifierFunc(func(message string) {
			fmt.Fprintln(stderr, message)
		}),
	})

	a := &app{repo: repo, store: store, cfg: cfg, logger: logger, log: logCloser}
	if _, err := repo.Load(); err != nil {
		a.Close()
		return nil, err
	}

	if cfg.Project.Default != "" {
		if _, _, err := repo.EnsureDefaultProject(cfg.Project.Default); err != nil {
			a.Close()
			return nil, fmt.Errorf("create default project: %w", err)
		}
	}

	a.restoreSelection()
	return a, nil
}

// Close releases the log file.
func (a *app) Close() {
	if a.log != nil {
		a.log.Close()
	}
}

func (a *app) selectionKey() string {
	return a.cfg.Store.Key + selectionKeySuffix
}

// restoreSelection re-selects the project chosen by an earlier invocation.
// A stale selection is ignored.
func (a *app) restoreSelection() {
	data, ok, err := a.store.Get(a.selectionKey())
	if err != nil {
		a.logger.WithError(err).Warn("failed to read selected project")
		return
	}
	if !ok {
		return
	}
	id := strings.TrimSpace(string(data))
	if _, found := a.repo.FindProject(id); found {
		a.repo.SelectProject(id)
	}
}

// saveSelection remembers the current project for later invocations.
func (a *app) saveSelection() error {
	current, ok := a.repo.CurrentProject()
	if !ok {
		return a.store.Delete(a.selectionKey())
	}
	return a.store.Set(a.selectionKey(), []byte(current.ID))
}

// projects returns a snapshot of every project.
func (a *app) projects() []todo.Project {
	return a.repo.AllProjects()
}

// resolveProject resolves a project ID prefix. An empty prefix means the
// current project.
func (a *app) resolveProject(prefix string) (todo.Project, error) {
	if strings.TrimSpace(prefix) == "" {
		current, ok := a.repo.CurrentProject()
		if !ok {
			return todo.Project{}, fmt.Errorf("%w: no current project", todo.ErrProjectNotFound)
		}
		return current, nil
	}

	id, err := todo.NewProjectIDIndex(a.projects()).Resolve(prefix)
	if err != nil {
		return todo.Project{}, err
	}
	p, ok := a.repo.FindProject(id)
	if !ok {
		return todo.Project{}, fmt.Errorf("%w: %s", todo.ErrProjectNotFound, prefix)
	}
	return p, nil
}

// resolveTask resolves a task ID prefix across every project.
func (a *app) resolveTask(prefix string) (todo.Task, error) {
	id, err := todo.NewTaskIDIndex(a.projects()).Resolve(prefix)
	if err != nil {
		return todo.Task{}, err
	}
	t, ok := a.repo.FindTask(id)
	if !ok {
		return todo.Task{}, fmt.Errorf("%w: %s", todo.ErrTaskNotFound, prefix)
	}
	return t, nil
}
