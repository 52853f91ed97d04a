// Package testutils provides in-memory fakes of the remote service handles
// for command and dispatcher tests.
package testutils

import (
	"context"
	"io"

	"tabshell/internal/dataset"
	"tabshell/pkg/tabtypes"
)

// WriteCall records one WriteRange invocation.
type WriteCall struct {
	SpreadsheetID string
	Values        [][]string
	RangeName     string
}

// ReadCall records one ReadRange invocation.
type ReadCall struct {
	SpreadsheetID string
	RangeName     string
}

// FakeSheets implements remote.SheetsAPI in memory.
type FakeSheets struct {
	CreateID  string
	CreateErr error
	Created   []string

	WriteErr error
	Writes   []WriteCall

	ReadDataset *dataset.Dataset
	ReadErr     error
	Reads       []ReadCall
}

// CreateSpreadsheet records the title and returns the configured id or error.
func (f *FakeSheets) CreateSpreadsheet(_ context.Context, title string) (string, error) {
	f.Created = append(f.Created, title)
	if f.CreateErr != nil {
		return "", f.CreateErr
	}
	return f.CreateID, nil
}

// WriteRange records the call and returns the configured error.
func (f *FakeSheets) WriteRange(_ context.Context, spreadsheetID string, values [][]string, rangeName string) error {
	f.Writes = append(f.Writes, WriteCall{SpreadsheetID: spreadsheetID, Values: values, RangeName: rangeName})
	return f.WriteErr
}

// ReadRange records the call and returns the configured dataset or error.
func (f *FakeSheets) ReadRange(_ context.Context, spreadsheetID, rangeName string) (*dataset.Dataset, error) {
	f.Reads = append(f.Reads, ReadCall{SpreadsheetID: spreadsheetID, RangeName: rangeName})
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	return f.ReadDataset, nil
}

// UploadCall records one Upload invocation, with the streamed content drained.
type UploadCall struct {
	Name     string
	MimeType string
	FolderID string
	Content  []byte
}

// ListCall records one ListFiles invocation.
type ListCall struct {
	FolderID string
	MimeType string
}

// FakeDrive implements remote.DriveAPI in memory.
type FakeDrive struct {
	UploadID  string
	UploadErr error
	Uploads   []UploadCall

	Files   []tabtypes.RemoteFile
	ListErr error
	Lists   []ListCall
}

// Upload drains r, records the call, and returns the configured id or error.
func (f *FakeDrive) Upload(_ context.Context, r io.Reader, name, mimeType, folderID string) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.Uploads = append(f.Uploads, UploadCall{Name: name, MimeType: mimeType, FolderID: folderID, Content: content})
	if f.UploadErr != nil {
		return "", f.UploadErr
	}
	return f.UploadID, nil
}

// ListFiles records the call and returns the configured files or error.
func (f *FakeDrive) ListFiles(_ context.Context, folderID, mimeType string) ([]tabtypes.RemoteFile, error) {
	f.Lists = append(f.Lists, ListCall{FolderID: folderID, MimeType: mimeType})
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Files, nil
}
