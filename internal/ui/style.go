package ui

import (
	"github.com/al-prieto/todo-list-app/todo"
	"github.com/charmbracelet/lipgloss"
)

var (
	priorityHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	priorityMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	priorityLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
	labelStyle     = lipgloss.NewStyle().Bold(true)
)

// Priority renders a priority label, colored on a terminal.
func Priority(p todo.Priority) string {
	label := string(p)
	if !ansiEnabled() {
		return label
	}
	switch p {
	case todo.PriorityHigh:
		return priorityHighStyle.Render(label)
	case todo.PriorityMedium:
		return priorityMediumStyle.Render(label)
	case todo.PriorityLow:
		return priorityLowStyle.Render(label)
	default:
		return label
	}
}

// CompletedMark renders the checkbox shown next to a task.
func CompletedMark(completed bool) string {
	if !completed {
		return "[ ]"
	}
	if !ansiEnabled() {
		return "[x]"
	}
	return completedStyle.Render("[x]")
}

// Title renders a task title, struck through once completed.
func Title(title string, completed bool) string {
	if !completed || !ansiEnabled() {
		return title
	}
	return mutedStyle.Render(title)
}

// Label renders a field label in detail views.
func Label(label string) string {
	if !ansiEnabled() {
		return label
	}
	return labelStyle.Render(label)
}
