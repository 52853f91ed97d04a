package builtin

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"tabshell/internal/commands"
	"tabshell/internal/logger"
	"tabshell/internal/session"
)

const csvMimeType = "text/csv"

// UploadCommand implements /upload: streams the loaded dataset as a CSV file
// to the remote file-storage service. The dataset is serialized in memory and
// streamed directly; no intermediate file is written to disk.
type UploadCommand struct{}

// Name returns the command name "upload" for registration and lookup.
func (c *UploadCommand) Name() string {
	return "upload"
}

// Description returns a brief description of what the upload command does.
func (c *UploadCommand) Description() string {
	return "Upload the loaded dataset as a CSV file to remote storage"
}

// Usage returns the syntax for the upload command.
func (c *UploadCommand) Usage() string {
	return "/upload <name> [folder_id]"
}

// Execute uploads the session dataset under <name>.csv, optionally into a
// destination folder. The session dataset is left unchanged.
func (c *UploadCommand) Execute(args []string, sess *session.Session) (*commands.Result, error) {
	if !sess.Authenticated() {
		return &commands.Result{Message: commands.MsgNotAuthenticated}, nil
	}
	if len(args) == 0 {
		return &commands.Result{Message: "Usage: " + c.Usage()}, nil
	}
	if !sess.HasDataset() {
		return &commands.Result{Message: commands.MsgNoData}, nil
	}

	name := args[0]
	if !strings.HasSuffix(name, ".csv") {
		name += ".csv"
	}
	folderID := ""
	if len(args) > 1 {
		folderID = args[1]
	}

	var buf bytes.Buffer
	if err := sess.Dataset.WriteCSV(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize dataset: %w", err)
	}

	id, err := sess.Drive.Upload(context.Background(), &buf, name, csvMimeType, folderID)
	if err != nil {
		logger.Error("Upload failed", "name", name, "error", err)
		return &commands.Result{Message: fmt.Sprintf("Failed to upload dataset: %v", err)}, nil
	}

	return &commands.Result{Message: fmt.Sprintf("Uploaded dataset as %s (file ID: %s)", name, id)}, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&UploadCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register upload command: %v", err))
	}
}
