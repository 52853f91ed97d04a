package builtin

import (
	"fmt"

	"tabshell/internal/commands"
	"tabshell/internal/output"
	"tabshell/internal/session"
)

// MissingCommand implements /missing: per-column count of empty cells in the
// loaded dataset.
type MissingCommand struct{}

// Name returns the command name "missing" for registration and lookup.
func (c *MissingCommand) Name() string {
	return "missing"
}

// Description returns a brief description of what the missing command does.
func (c *MissingCommand) Description() string {
	return "Count missing values per column"
}

// Usage returns the syntax for the missing command.
func (c *MissingCommand) Usage() string {
	return "/missing"
}

// Execute renders the missing-value counts of the session dataset.
func (c *MissingCommand) Execute(_ []string, sess *session.Session) (*commands.Result, error) {
	if !sess.HasDataset() {
		return &commands.Result{Message: commands.MsgNoData}, nil
	}
	return &commands.Result{Message: output.RenderMissing(sess.Dataset.Missing())}, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&MissingCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register missing command: %v", err))
	}
}
