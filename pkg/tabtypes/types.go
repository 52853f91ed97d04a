// Package tabtypes defines the shared data model for tabshell.
// It contains the types exchanged between the command layer, the session,
// and the remote document/storage bindings.
package tabtypes

import "time"

// RemoteFile describes a file stored on the remote document/storage service.
// Instances are read-only and sourced entirely from listing responses.
type RemoteFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
}

// CommandInfo holds the registration metadata of a shell command.
// The help command renders one line per CommandInfo in the fixed table.
type CommandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
}

// TranscriptEntry records one completed interaction turn: the raw input line
// and the reply message produced for it.
type TranscriptEntry struct {
	Input     string    `json:"input"`
	Reply     string    `json:"reply"`
	Timestamp time.Time `json:"timestamp"`
}
