// Package builtin implements the fixed table of tabshell commands: the
// dataset summaries (describe, missing, info), the remote document operations
// (create_sheet, upload, write, read, list), and help.
package builtin

import (
	"fmt"

	"tabshell/internal/commands"
	"tabshell/internal/output"
	"tabshell/internal/session"
)

// DescribeCommand implements /describe: statistical summary of all numeric
// columns of the loaded dataset.
type DescribeCommand struct{}

// Name returns the command name "describe" for registration and lookup.
func (c *DescribeCommand) Name() string {
	return "describe"
}

// Description returns a brief description of what the describe command does.
func (c *DescribeCommand) Description() string {
	return "Show statistics for numeric columns (count, mean, std, min, quartiles, max)"
}

// Usage returns the syntax for the describe command.
func (c *DescribeCommand) Usage() string {
	return "/describe"
}

// Execute renders the describe summary of the session dataset.
func (c *DescribeCommand) Execute(_ []string, sess *session.Session) (*commands.Result, error) {
	if !sess.HasDataset() {
		return &commands.Result{Message: commands.MsgNoData}, nil
	}
	return &commands.Result{Message: output.RenderStats(sess.Dataset.Describe())}, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&DescribeCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register describe command: %v", err))
	}
}
