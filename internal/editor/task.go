package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	internalstrings "github.com/al-prieto/todo-list-app/internal/strings"
	"github.com/al-prieto/todo-list-app/todo"
)

// separator splits the TOML fields from the markdown notes.
const separator = "---"

var taskTemplate = template.Must(template.New("task").Parse(`title = {{ printf "%q" .Title }}
due = {{ printf "%q" .DueDate }}
priority = {{ printf "%q" .Priority }} # low, medium, high
completed = {{ .Completed }}
description = {{ printf "%q" .Description }}
` + separator + `
{{ .Notes }}
`))

// RenderTaskTOML renders a task for editing. Notes follow the separator line.
func RenderTaskTOML(t todo.Task) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, t); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask is the result of editing a task.
type ParsedTask struct {
	Title       string `toml:"title"`
	DueDate     string `toml:"due"`
	Priority    string `toml:"priority"`
	Completed   bool   `toml:"completed"`
	Description string `toml:"description"`
	Notes       string `toml:"-"`
}

// ParseTaskTOML parses and validates edited content.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(internalstrings.NormalizeNewlines(content))

	var parsed ParsedTask
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Notes = internalstrings.NormalizeBlock(strings.TrimLeft(body, "\n"))

	if err := todo.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if err := todo.ValidateDueDate(parsed.DueDate); err != nil {
		return nil, err
	}
	priority, err := todo.ParsePriority(parsed.Priority)
	if err != nil {
		return nil, err
	}
	parsed.Priority = string(priority)

	return &parsed, nil
}

// Patch converts the edited fields into a full task update.
func (p *ParsedTask) Patch() todo.TaskPatch {
	priority := todo.Priority(p.Priority)
	return todo.TaskPatch{
		Title:       &p.Title,
		Description: &p.Description,
		DueDate:     &p.DueDate,
		Priority:    &priority,
		Notes:       &p.Notes,
		Completed:   &p.Completed,
	}
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == separator {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return content, ""
}

func createTaskTempFile() (*os.File, error) {
	return os.CreateTemp("", "todo-task-*.md")
}

// EditTask opens the editor on t and returns the parsed result.
func EditTask(t todo.Task) (*ParsedTask, error) {
	content, err := RenderTaskTOML(t)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTaskTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}
