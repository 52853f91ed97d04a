package builtin

import (
	"context"
	"fmt"

	"tabshell/internal/commands"
	"tabshell/internal/logger"
	"tabshell/internal/session"
)

// WriteCommand implements /write: writes the loaded dataset (header row plus
// data rows) into a remote spreadsheet.
type WriteCommand struct{}

// Name returns the command name "write" for registration and lookup.
func (c *WriteCommand) Name() string {
	return "write"
}

// Description returns a brief description of what the write command does.
func (c *WriteCommand) Description() string {
	return "Write the loaded dataset into a remote spreadsheet"
}

// Usage returns the syntax for the write command.
func (c *WriteCommand) Usage() string {
	return "/write <sheet_id> [range]"
}

// Execute writes the dataset to the identified spreadsheet. The range
// defaults to the session's configured write range. The session dataset is
// left unchanged.
func (c *WriteCommand) Execute(args []string, sess *session.Session) (*commands.Result, error) {
	if !sess.Authenticated() {
		return &commands.Result{Message: commands.MsgNotAuthenticated}, nil
	}
	if len(args) == 0 {
		return &commands.Result{Message: "Usage: " + c.Usage()}, nil
	}
	if !sess.HasDataset() {
		return &commands.Result{Message: commands.MsgNoData}, nil
	}

	sheetID := args[0]
	rangeName := sess.WriteRange
	if len(args) > 1 {
		rangeName = args[1]
	}

	values := sess.Dataset.Values()
	if err := sess.Sheets.WriteRange(context.Background(), sheetID, values, rangeName); err != nil {
		logger.Error("Write failed", "spreadsheet", sheetID, "range", rangeName, "error", err)
		return &commands.Result{Message: fmt.Sprintf("Failed to write to sheet: %v", err)}, nil
	}

	return &commands.Result{
		Message: fmt.Sprintf("Wrote %d rows to spreadsheet %s (range %s)", len(values), sheetID, rangeName),
	}, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&WriteCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register write command: %v", err))
	}
}
