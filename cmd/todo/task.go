package main

import (
	"fmt"
	"sort"

	"github.com/al-prieto/todo-list-app/internal/editor"
	"github.com/al-prieto/todo-list-app/internal/listflags"
	internalstrings "github.com/al-prieto/todo-list-app/internal/strings"
	"github.com/al-prieto/todo-list-app/todo"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks in projects",
}

// task add
var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task to a project (defaults to the current project)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var (
	taskAddDue         string
	taskAddPriority    string
	taskAddDescription string
	taskAddNotes       string
	taskAddProject     string
)

// task list
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tasks of a project (defaults to the current project)",
	Args:  cobra.NoArgs,
	RunE:  runTaskList,
}

var (
	taskListProject string
	taskListAll     bool
	taskListSort    = listflags.NewChoice("priority", "due")
	taskListJSON    bool
)

// task show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show detailed information about a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

var taskShowJSON bool

// task toggle
var taskToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a task between done and not done",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskToggle,
}

// task update
var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskUpdate,
}

var (
	taskUpdateTitle       string
	taskUpdateDescription string
	taskUpdateDue         string
	taskUpdatePriority    string
	taskUpdateNotes       string
	taskUpdateCompleted   bool
)

// task edit
var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task in $EDITOR",
	Long: `Edit a task in $EDITOR.

The task opens as TOML fields followed by a "---" line; everything after
that line becomes the task notes.`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskEdit,
}

// task rm
var taskRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskRemove,
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskShowCmd, taskToggleCmd, taskUpdateCmd, taskEditCmd, taskRemoveCmd)

	taskAddCmd.Flags().StringVar(&taskAddDue, "due", "", "Due date (required)")
	taskAddCmd.Flags().StringVarP(&taskAddPriority, "priority", "p", string(todo.PriorityMedium), "Priority (low, medium, high)")
	taskAddCmd.Flags().StringVarP(&taskAddDescription, "description", "d", "", "Description (markdown)")
	taskAddCmd.Flags().StringVar(&taskAddNotes, "notes", "", "Notes (markdown)")
	listflags.AddProjectFlag(taskAddCmd, &taskAddProject)
	_ = taskAddCmd.MarkFlagRequired("due")

	listflags.AddProjectFlag(taskListCmd, &taskListProject)
	taskListCmd.Flags().BoolVar(&taskListAll, "all", false, "List tasks from every project")
	listflags.AddSortFlag(taskListCmd, taskListSort)
	listflags.AddJSONFlag(taskListCmd, &taskListJSON)

	listflags.AddJSONFlag(taskShowCmd, &taskShowJSON)

	taskUpdateCmd.Flags().StringVar(&taskUpdateTitle, "title", "", "New title")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateDescription, "description", "d", "", "New description")
	taskUpdateCmd.Flags().StringVar(&taskUpdateDue, "due", "", "New due date")
	taskUpdateCmd.Flags().StringVarP(&taskUpdatePriority, "priority", "p", "", "New priority (low, medium, high)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateNotes, "notes", "", "New notes")
	taskUpdateCmd.Flags().BoolVar(&taskUpdateCompleted, "completed", false, "Mark done (--completed=false to reopen)")
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	priority, err := todo.ParsePriority(taskAddPriority)
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.resolveProject(taskAddProject)
	if err != nil {
		return err
	}

	t, err := todo.NewTask(args[0], taskAddDescription, taskAddDue, todo.TaskOptions{
		Priority: priority,
		Notes:    taskAddNotes,
	})
	if err != nil {
		return err
	}
	created, _, err := a.repo.AddTask(t, p.ID)
	if err != nil {
		return err
	}
	if err := a.saveSelection(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created task %s in %s: %s\n", created.ID, p.Name, created.Title)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var tasks []todo.Task
	if taskListAll {
		for _, p := range a.projects() {
			tasks = append(tasks, p.Todos...)
		}
	} else {
		p, err := a.resolveProject(taskListProject)
		if err != nil {
			return err
		}
		tasks = p.Todos
	}
	if tasks == nil {
		tasks = []todo.Task{}
	}
	if err := sortTasks(tasks, taskListSort.String()); err != nil {
		return err
	}

	if taskListJSON {
		return writeJSON(cmd.OutOrStdout(), tasks)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
		return nil
	}

	highlight := idHighlighter(todo.NewTaskIDIndex(a.projects()))
	fmt.Fprint(cmd.OutOrStdout(), formatTaskTable(tasks, highlight))
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	t, err := a.resolveTask(args[0])
	if err != nil {
		return err
	}

	if taskShowJSON {
		return writeJSON(cmd.OutOrStdout(), t)
	}

	p, _ := a.repo.FindProject(t.ProjectID)
	printTaskDetail(cmd.OutOrStdout(), t, p)
	return nil
}

func runTaskToggle(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	t, err := a.resolveTask(args[0])
	if err != nil {
		return err
	}
	toggled, _, err := a.repo.ToggleTaskComplete(t.ID, t.ProjectID)
	if err != nil {
		return err
	}

	verb := "Reopened"
	if toggled.Completed {
		verb = "Completed"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s task %s: %s\n", verb, toggled.ID, toggled.Title)
	return nil
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	patch := todo.TaskPatch{}

	// Only set fields that were explicitly provided
	if cmd.Flags().Changed("title") {
		patch.Title = &taskUpdateTitle
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &taskUpdateDescription
	}
	if cmd.Flags().Changed("due") {
		patch.DueDate = &taskUpdateDue
	}
	if cmd.Flags().Changed("priority") {
		priority, err := todo.ParsePriority(taskUpdatePriority)
		if err != nil {
			return err
		}
		patch.Priority = &priority
	}
	if cmd.Flags().Changed("notes") {
		patch.Notes = &taskUpdateNotes
	}
	if cmd.Flags().Changed("completed") {
		patch.Completed = &taskUpdateCompleted
	}
	if patch.IsEmpty() {
		return fmt.Errorf("nothing to update; pass at least one field flag")
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	t, err := a.resolveTask(args[0])
	if err != nil {
		return err
	}
	updated, _, err := a.repo.UpdateTask(t.ID, t.ProjectID, patch)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s: %s\n", updated.ID, updated.Title)
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	t, err := a.resolveTask(args[0])
	if err != nil {
		return err
	}
	parsed, err := editor.EditTask(t)
	if err != nil {
		return err
	}
	updated, _, err := a.repo.UpdateTask(t.ID, t.ProjectID, parsed.Patch())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s: %s\n", updated.ID, updated.Title)
	return nil
}

func runTaskRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	t, err := a.resolveTask(args[0])
	if err != nil {
		return err
	}
	if _, err := a.repo.RemoveTask(t.ID, t.ProjectID); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s: %s\n", t.ID, t.Title)
	return nil
}

// sortTasks orders tasks in place. Ties keep project order.
func sortTasks(tasks []todo.Task, by string) error {
	switch internalstrings.NormalizeKeyword(by) {
	case "":
		return nil
	case "priority":
		sort.SliceStable(tasks, func(i, j int) bool {
			return todo.PriorityRank(tasks[i].Priority) < todo.PriorityRank(tasks[j].Priority)
		})
		return nil
	case "due":
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].DueDate < tasks[j].DueDate
		})
		return nil
	default:
		return fmt.Errorf("unknown sort %q (use priority or due)", by)
	}
}
