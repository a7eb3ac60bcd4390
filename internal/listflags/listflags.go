// Package listflags registers flags shared by several todo subcommands.
package listflags

import (
	"fmt"
	"slices"
	"strings"

	internalstrings "github.com/al-prieto/todo-list-app/internal/strings"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddJSONFlag adds the shared --json output flag.
func AddJSONFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVar(target, "json", false, "Output as JSON")
}

// AddProjectFlag adds the shared --project flag. An empty value means the
// current project.
func AddProjectFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "project", "", "Project ID or unique prefix (default: current project)")
}

// Choice is a string flag restricted to a fixed set of lowercase values.
type Choice struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*Choice)(nil)

// NewChoice returns a Choice that accepts only allowed. The empty string is
// always accepted and means unset.
func NewChoice(allowed ...string) *Choice {
	return &Choice{allowed: allowed}
}

func (c *Choice) String() string { return c.value }

// Set normalizes value and rejects anything outside the allowed set.
func (c *Choice) Set(value string) error {
	normalized := internalstrings.NormalizeKeyword(value)
	if normalized != "" && !slices.Contains(c.allowed, normalized) {
		return fmt.Errorf("must be one of %s", strings.Join(c.allowed, ", "))
	}
	c.value = normalized
	return nil
}

func (c *Choice) Type() string { return "string" }

// AddSortFlag adds a --sort flag limited to keys.
func AddSortFlag(cmd *cobra.Command, target *Choice) {
	cmd.Flags().Var(target, "sort", fmt.Sprintf("Sort by %s (default: project order)", strings.Join(target.allowed, " or ")))
}
