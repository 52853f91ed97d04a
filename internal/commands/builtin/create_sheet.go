package builtin

import (
	"context"
	"fmt"
	"strings"

	"tabshell/internal/commands"
	"tabshell/internal/logger"
	"tabshell/internal/session"
)

// CreateSheetCommand implements /create_sheet: creates a new spreadsheet on
// the remote document-edit service.
type CreateSheetCommand struct{}

// Name returns the command name "create_sheet" for registration and lookup.
func (c *CreateSheetCommand) Name() string {
	return "create_sheet"
}

// Description returns a brief description of what the create_sheet command does.
func (c *CreateSheetCommand) Description() string {
	return "Create a new remote spreadsheet with the given title"
}

// Usage returns the syntax for the create_sheet command.
func (c *CreateSheetCommand) Usage() string {
	return "/create_sheet <title>"
}

// Execute creates a spreadsheet titled with the joined arguments.
func (c *CreateSheetCommand) Execute(args []string, sess *session.Session) (*commands.Result, error) {
	if !sess.Authenticated() {
		return &commands.Result{Message: commands.MsgNotAuthenticated}, nil
	}
	if len(args) == 0 {
		return &commands.Result{Message: "Usage: " + c.Usage()}, nil
	}

	title := strings.Join(args, " ")
	id, err := sess.Sheets.CreateSpreadsheet(context.Background(), title)
	if err != nil {
		logger.Error("Spreadsheet creation failed", "title", title, "error", err)
		return &commands.Result{Message: fmt.Sprintf("Failed to create spreadsheet: %v", err)}, nil
	}

	return &commands.Result{Message: fmt.Sprintf("Created spreadsheet %q with ID: %s", title, id)}, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&CreateSheetCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register create_sheet command: %v", err))
	}
}
