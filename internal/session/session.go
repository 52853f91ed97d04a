// Package session holds the mutable state of one interactive tabshell run:
// the loaded dataset, the parsed credential, and the two remote service
// handles. A session is created once per process and passed explicitly into
// the dispatcher and every command; there is no global session.
package session

import (
	"time"

	"github.com/google/uuid"

	"tabshell/internal/auth"
	"tabshell/internal/config"
	"tabshell/internal/dataset"
	"tabshell/internal/remote"
	"tabshell/pkg/tabtypes"
)

// Session carries the state mutated by command handlers. Single-threaded use:
// one command is fully processed before the next is accepted.
type Session struct {
	ID        string
	CreatedAt time.Time

	Dataset    *dataset.Dataset
	Credential *auth.Credential

	Sheets remote.SheetsAPI
	Drive  remote.DriveAPI

	// Configured default range references for read and write. They differ on
	// purpose: reads default to a whole sheet, writes to its top-left cell.
	ReadRange  string
	WriteRange string

	Transcript []tabtypes.TranscriptEntry
}

// New creates an empty session with configured range defaults.
func New() *Session {
	return &Session{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now(),
		ReadRange:  config.DefaultReadRange,
		WriteRange: config.DefaultWriteRange,
	}
}

// HasDataset reports whether a dataset is currently loaded.
func (s *Session) HasDataset() bool {
	return s.Dataset != nil
}

// Authenticated reports whether both remote service handles are present.
func (s *Session) Authenticated() bool {
	return s.Sheets != nil && s.Drive != nil
}

// AppendTranscript records a completed interaction turn.
func (s *Session) AppendTranscript(input, reply string) {
	s.Transcript = append(s.Transcript, tabtypes.TranscriptEntry{
		Input:     input,
		Reply:     reply,
		Timestamp: time.Now(),
	})
}
