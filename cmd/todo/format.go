package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/al-prieto/todo-list-app/internal/markdown"
	"github.com/al-prieto/todo-list-app/internal/ui"
	"github.com/al-prieto/todo-list-app/todo"
)

const (
	lineWidth      = 80
	documentIndent = 4
)

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// idHighlighter returns a function that highlights each ID's unique prefix
// among ids.
func idHighlighter(index todo.IDIndex) func(string) string {
	lengths := index.PrefixLengths()
	return func(id string) string {
		return ui.HighlightID(id, ui.PrefixLength(lengths, id))
	}
}

func formatProjectTable(projects []todo.Project, currentID string, highlight func(string) string) string {
	builder := ui.NewTableBuilder([]string{"", "ID", "NAME", "DONE"}, len(projects))
	for _, p := range projects {
		marker := ""
		if p.ID == currentID {
			marker = "*"
		}
		builder.AddRow(
			marker,
			highlight(p.ID),
			ui.TruncateTableCell(p.Name),
			fmt.Sprintf("%d/%d", p.CompletedCount(), len(p.Todos)),
		)
	}
	return builder.String()
}

func formatTaskTable(tasks []todo.Task, highlight func(string) string) string {
	builder := ui.NewTableBuilder([]string{"", "ID", "PRI", "DUE", "TITLE"}, len(tasks))
	for _, t := range tasks {
		builder.AddRow(
			ui.CompletedMark(t.Completed),
			highlight(t.ID),
			ui.Priority(t.Priority),
			t.DueDate,
			ui.Title(ui.TruncateTableCell(t.Title), t.Completed),
		)
	}
	return builder.String()
}

func printTaskDetail(w io.Writer, t todo.Task, project todo.Project) {
	fmt.Fprintf(w, "%s       %s\n", ui.Label("ID:"), t.ID)
	fmt.Fprintf(w, "%s    %s\n", ui.Label("Title:"), t.Title)
	fmt.Fprintf(w, "%s  %s (%s)\n", ui.Label("Project:"), project.Name, project.ID)
	fmt.Fprintf(w, "%s      %s\n", ui.Label("Due:"), t.DueDate)
	fmt.Fprintf(w, "%s %s\n", ui.Label("Priority:"), ui.Priority(t.Priority))
	fmt.Fprintf(w, "%s     %s\n", ui.Label("Done:"), strconv.FormatBool(t.Completed))

	if section := markdown.Render(lineWidth, documentIndent, t.Description); section != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", ui.Label("Description:"), section)
	}
	if section := markdown.Render(lineWidth, documentIndent, t.Notes); section != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", ui.Label("Notes:"), section)
	}
}

func printProjectDetail(w io.Writer, p todo.Project, current bool, highlight func(string) string) {
	fmt.Fprintf(w, "%s      %s\n", ui.Label("ID:"), p.ID)
	fmt.Fprintf(w, "%s    %s\n", ui.Label("Name:"), p.Name)
	fmt.Fprintf(w, "%s %s\n", ui.Label("Current:"), strconv.FormatBool(current))
	fmt.Fprintf(w, "%s    %d/%d done\n", ui.Label("Done:"), p.CompletedCount(), len(p.Todos))

	if len(p.Todos) == 0 {
		fmt.Fprintln(w, "\nNo tasks.")
		return
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, formatTaskTable(p.Todos, highlight))
}
