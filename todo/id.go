package todo

import (
	"fmt"

	"github.com/al-prieto/todo-list-app/internal/ids"
	internalstrings "github.com/al-prieto/todo-list-app/internal/strings"
)

// NewID creates a unique, time-ordered ID for a project or task.
func NewID() string {
	return ids.New()
}

// IDIndex indexes project or task IDs for prefix matching and display.
type IDIndex struct {
	ids      []string
	original map[string]string
	notFound error
}

func newIDIndex(entityIDs []string, notFound error) IDIndex {
	original := make(map[string]string, len(entityIDs))
	for _, id := range entityIDs {
		key := internalstrings.NormalizeKeyword(id)
		if _, ok := original[key]; !ok {
			original[key] = id
		}
	}
	return IDIndex{ids: ids.NormalizeUniqueIDs(entityIDs), original: original, notFound: notFound}
}

// NewProjectIDIndex builds an IDIndex over project IDs.
func NewProjectIDIndex(projects []Project) IDIndex {
	projectIDs := make([]string, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
	}
	return newIDIndex(projectIDs, ErrProjectNotFound)
}

// NewTaskIDIndex builds an IDIndex over the IDs of every task in projects.
func NewTaskIDIndex(projects []Project) IDIndex {
	var taskIDs []string
	for _, p := range projects {
		for _, t := range p.Todos {
			taskIDs = append(taskIDs, t.ID)
		}
	}
	return newIDIndex(taskIDs, ErrTaskNotFound)
}

// Resolve returns the full ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	notFound := index.notFound
	if notFound == nil {
		notFound = ErrNotFound
	}

	match, found, ambiguous := ids.MatchPrefix(index.ids, prefix)
	if !found {
		return "", fmt.Errorf("%w: %s", notFound, prefix)
	}
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousIDPrefix, prefix)
	}

	if id, ok := index.original[match]; ok {
		return id, nil
	}
	return match, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID,
// keyed by the lowercased ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengths(index.ids)
}
