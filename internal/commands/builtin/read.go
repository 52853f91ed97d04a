package builtin

import (
	"context"
	"fmt"

	"tabshell/internal/commands"
	"tabshell/internal/logger"
	"tabshell/internal/output"
	"tabshell/internal/session"
)

const previewRows = 10

// ReadCommand implements /read: fetches a range from a remote spreadsheet and
// replaces the session dataset with it.
type ReadCommand struct{}

// Name returns the command name "read" for registration and lookup.
func (c *ReadCommand) Name() string {
	return "read"
}

// Description returns a brief description of what the read command does.
func (c *ReadCommand) Description() string {
	return "Read a remote spreadsheet into the session dataset"
}

// Usage returns the syntax for the read command.
func (c *ReadCommand) Usage() string {
	return "/read <sheet_id> [range]"
}

// Execute reads the identified spreadsheet. The range defaults to the
// session's configured read range. On success the fetched table replaces the
// session dataset.
func (c *ReadCommand) Execute(args []string, sess *session.Session) (*commands.Result, error) {
	if !sess.Authenticated() {
		return &commands.Result{Message: commands.MsgNotAuthenticated}, nil
	}
	if len(args) == 0 {
		return &commands.Result{Message: "Usage: " + c.Usage()}, nil
	}

	sheetID := args[0]
	rangeName := sess.ReadRange
	if len(args) > 1 {
		rangeName = args[1]
	}

	ds, err := sess.Sheets.ReadRange(context.Background(), sheetID, rangeName)
	if err != nil {
		logger.Error("Read failed", "spreadsheet", sheetID, "range", rangeName, "error", err)
		return &commands.Result{Message: fmt.Sprintf("Failed to read sheet: %v", err)}, nil
	}

	message := fmt.Sprintf("Loaded %d rows x %d columns from spreadsheet %s\n%s",
		ds.NumRows(), ds.NumColumns(), sheetID, output.RenderPreview(ds, previewRows))
	return &commands.Result{Message: message, Dataset: ds}, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&ReadCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register read command: %v", err))
	}
}
