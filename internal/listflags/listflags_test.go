package listflags

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{Use: "list", RunE: func(*cobra.Command, []string) error { return nil }}
}

func TestSharedFlags(t *testing.T) {
	var asJSON bool
	var project string
	cmd := newListCommand()
	AddJSONFlag(cmd, &asJSON)
	AddProjectFlag(cmd, &project)

	if err := cmd.ParseFlags([]string{"--json", "--project", "0abc"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if !asJSON {
		t.Error("expected --json to set target")
	}
	if project != "0abc" {
		t.Errorf("project = %q, want %q", project, "0abc")
	}
}

func TestSortFlag(t *testing.T) {
	sortBy := NewChoice("priority", "due")
	cmd := newListCommand()
	AddSortFlag(cmd, sortBy)

	if err := cmd.ParseFlags([]string{"--sort", " Due "}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if sortBy.String() != "due" {
		t.Errorf("sort = %q, want due", sortBy.String())
	}
	if !strings.Contains(cmd.Flags().Lookup("sort").Usage, "priority or due") {
		t.Errorf("unexpected usage: %q", cmd.Flags().Lookup("sort").Usage)
	}
}

func TestSortFlagRejectsUnknown(t *testing.T) {
	cmd := newListCommand()
	AddSortFlag(cmd, NewChoice("priority", "due"))

	err := cmd.ParseFlags([]string{"--sort", "title"})
	if err == nil || !strings.Contains(err.Error(), "must be one of priority, due") {
		t.Fatalf("expected choice error, got %v", err)
	}
}
