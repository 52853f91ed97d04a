package builtin

import (
	"context"
	"fmt"

	"tabshell/internal/commands"
	"tabshell/internal/logger"
	"tabshell/internal/output"
	"tabshell/internal/session"
)

// ListCommand implements /list: enumerates files on the remote file-storage
// service, optionally filtered by folder and mime type.
type ListCommand struct{}

// Name returns the command name "list" for registration and lookup.
func (c *ListCommand) Name() string {
	return "list"
}

// Description returns a brief description of what the list command does.
func (c *ListCommand) Description() string {
	return "List remote files, optionally filtered by folder and mime type"
}

// Usage returns the syntax for the list command.
func (c *ListCommand) Usage() string {
	return "/list [folder_id] [mime_type]"
}

// Execute lists remote files across all continuation pages.
func (c *ListCommand) Execute(args []string, sess *session.Session) (*commands.Result, error) {
	if !sess.Authenticated() {
		return &commands.Result{Message: commands.MsgNotAuthenticated}, nil
	}

	folderID := ""
	mimeType := ""
	if len(args) > 0 {
		folderID = args[0]
	}
	if len(args) > 1 {
		mimeType = args[1]
	}

	files, err := sess.Drive.ListFiles(context.Background(), folderID, mimeType)
	if err != nil {
		logger.Error("Listing failed", "folder", folderID, "mime_type", mimeType, "error", err)
		return &commands.Result{Message: fmt.Sprintf("Failed to list files: %v", err)}, nil
	}

	return &commands.Result{Message: output.RenderFiles(files)}, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&ListCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register list command: %v", err))
	}
}
