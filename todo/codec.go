package todo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// projectRecord is the persisted shape of a Project.
type projectRecord struct {
	ID    recordID      `json:"id"`
	Name  string        `json:"name"`
	Todos []*taskRecord `json:"todos"`
}

// taskRecord is the persisted shape of a Task.
type taskRecord struct {
	ID          recordID `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    string   `json:"priority"`
	Notes       string   `json:"notes"`
	Completed   bool     `json:"completed"`
	ProjectID   recordID `json:"projectId"`
}

// recordID decodes from a JSON string or a JSON number. Older payloads used
// millisecond timestamps as numeric IDs.
type recordID string

func (id *recordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = recordID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = recordID(n.String())
	return nil
}

// encodeProjects serializes the full collection.
func encodeProjects(projects []Project) ([]byte, error) {
	records := make([]projectRecord, 0, len(projects))
	for _, p := range projects {
		record := projectRecord{
			ID:    recordID(p.ID),
			Name:  p.Name,
			Todos: make([]*taskRecord, 0, len(p.Todos)),
		}
		for _, t := range p.Todos {
			record.Todos = append(record.Todos, &taskRecord{
				ID:          recordID(t.ID),
				Title:       t.Title,
				Description: t.Description,
				DueDate:     t.DueDate,
				Priority:    string(t.Priority),
				Notes:       t.Notes,
				Completed:   t.Completed,
				ProjectID:   recordID(t.ProjectID),
			})
		}
		records = append(records, record)
	}
	return json.Marshal(records)
}

// decodeProjects rebuilds the collection from a persisted payload.
//
// Records are reconstructed best-effort: missing IDs are regenerated, unknown
// priorities fall back to medium, and task back-references are pointed at
// the owning project. Anything that is not a JSON array of project records
// is reported as ErrCorruptData, as is a null record or one whose name, title
// or due date fails validation.
func decodeProjects(data []byte, logger logrus.FieldLogger) ([]Project, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("%w: null payload", ErrCorruptData)
	}
	var records []*projectRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	projects := make([]Project, 0, len(records))
	for i, record := range records {
		if record == nil {
			return nil, fmt.Errorf("%w: project %d is null", ErrCorruptData, i)
		}
		if err := ValidateName(record.Name); err != nil {
			return nil, fmt.Errorf("%w: project %d: %v", ErrCorruptData, i, err)
		}
		p := Project{
			ID:    string(record.ID),
			Name:  record.Name,
			Todos: make([]Task, 0, len(record.Todos)),
		}
		if p.ID == "" {
			p.ID = NewID()
			logger.WithField("project_id", p.ID).Warn("stored project had no id; assigned a new one")
		}

		for j, tr := range record.Todos {
			if tr == nil {
				return nil, fmt.Errorf("%w: project %d task %d is null", ErrCorruptData, i, j)
			}
			if err := ValidateTitle(tr.Title); err != nil {
				return nil, fmt.Errorf("%w: project %d task %d: %v", ErrCorruptData, i, j, err)
			}
			if err := ValidateDueDate(tr.DueDate); err != nil {
				return nil, fmt.Errorf("%w: project %d task %d: %v", ErrCorruptData, i, j, err)
			}
			t := Task{
				ID:          string(tr.ID),
				Title:       tr.Title,
				Description: tr.Description,
				DueDate:     tr.DueDate,
				Priority:    Priority(tr.Priority),
				Notes:       tr.Notes,
				Completed:   tr.Completed,
				ProjectID:   string(tr.ProjectID),
			}
			if t.ID == "" {
				t.ID = NewID()
				logger.WithField("task_id", t.ID).Warn("stored task had no id; assigned a new one")
			}
			if priority, err := ParsePriority(string(t.Priority)); err == nil {
				t.Priority = priority
			} else {
				logger.WithFields(logrus.Fields{
					"task_id":  t.ID,
					"priority": tr.Priority,
				}).Warn("stored task had an unknown priority; using medium")
				t.Priority = PriorityMedium
			}
			if t.ProjectID != p.ID {
				if t.ProjectID != "" {
					logger.WithFields(logrus.Fields{
						"task_id":    t.ID,
						"project_id": p.ID,
						"stored_id":  t.ProjectID,
					}).Warn("stored task pointed at another project; relinking")
				}
				t.ProjectID = p.ID
			}
			p.Todos = append(p.Todos, t)
		}
		projects = append(projects, p)
	}
	return projects, nil
}
