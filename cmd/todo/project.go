package main

import (
	"fmt"

	"github.com/al-prieto/todo-list-app/internal/listflags"
	"github.com/al-prieto/todo-list-app/todo"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

// project add
var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectAdd,
}

// project list
var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

var projectListJSON bool

// project show
var projectShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a project and its tasks (defaults to the current project)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProjectShow,
}

var projectShowJSON bool

// project select
var projectSelectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Make a project current",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectSelect,
}

// project rename
var projectRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runProjectRename,
}

// project rm
var projectRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Delete a project and all of its tasks",
	Args:    cobra.ExactArgs(1),
	RunE:    runProjectRemove,
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectAddCmd, projectListCmd, projectShowCmd,
		projectSelectCmd, projectRenameCmd, projectRemoveCmd)

	listflags.AddJSONFlag(projectListCmd, &projectListJSON)
	listflags.AddJSONFlag(projectShowCmd, &projectShowJSON)
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := todo.NewProject(args[0], todo.ProjectOptions{})
	if err != nil {
		return err
	}
	created, err := a.repo.AddProject(p)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created project %s: %s\n", created.ID, created.Name)
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	projects := a.projects()
	if projectListJSON {
		return writeJSON(cmd.OutOrStdout(), projects)
	}

	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
		return nil
	}

	currentID := ""
	if current, ok := a.repo.CurrentProject(); ok {
		currentID = current.ID
	}
	highlight := idHighlighter(todo.NewProjectIDIndex(projects))
	fmt.Fprint(cmd.OutOrStdout(), formatProjectTable(projects, currentID, highlight))
	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	p, err := a.resolveProject(prefix)
	if err != nil {
		return err
	}

	if projectShowJSON {
		return writeJSON(cmd.OutOrStdout(), p)
	}

	current, _ := a.repo.CurrentProject()
	highlight := idHighlighter(todo.NewTaskIDIndex(a.projects()))
	printProjectDetail(cmd.OutOrStdout(), p, p.ID == current.ID, highlight)
	return nil
}

func runProjectSelect(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.resolveProject(args[0])
	if err != nil {
		return err
	}
	a.repo.SelectProject(p.ID)
	if err := a.saveSelection(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Selected project %s: %s\n", p.ID, p.Name)
	return nil
}

func runProjectRename(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.resolveProject(args[0])
	if err != nil {
		return err
	}
	renamed, _, err := a.repo.RenameProject(p.ID, args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Renamed project %s: %s\n", renamed.ID, renamed.Name)
	return nil
}

func runProjectRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.resolveProject(args[0])
	if err != nil {
		return err
	}
	removed, _, err := a.repo.RemoveProject(p.ID)
	if err != nil {
		return err
	}
	if err := a.saveSelection(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s: %s (%d tasks)\n", removed.ID, removed.Name, len(removed.Todos))
	return nil
}
