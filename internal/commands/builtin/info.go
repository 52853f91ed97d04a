package builtin

import (
	"fmt"

	"tabshell/internal/commands"
	"tabshell/internal/session"
)

// InfoCommand implements /info: structural summary of the loaded dataset
// (column types, non-null counts, memory footprint).
type InfoCommand struct{}

// Name returns the command name "info" for registration and lookup.
func (c *InfoCommand) Name() string {
	return "info"
}

// Description returns a brief description of what the info command does.
func (c *InfoCommand) Description() string {
	return "Show dataset structure: column types, non-null counts, memory usage"
}

// Usage returns the syntax for the info command.
func (c *InfoCommand) Usage() string {
	return "/info"
}

// Execute renders the structural summary of the session dataset.
func (c *InfoCommand) Execute(_ []string, sess *session.Session) (*commands.Result, error) {
	if !sess.HasDataset() {
		return &commands.Result{Message: commands.MsgNoData}, nil
	}
	return &commands.Result{Message: sess.Dataset.Info()}, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&InfoCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register info command: %v", err))
	}
}
