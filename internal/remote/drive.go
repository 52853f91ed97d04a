package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"tabshell/pkg/tabtypes"
)

// DefaultDriveBaseURL is the production file-storage endpoint, used for both
// listing and (with the /upload prefix) media upload.
const DefaultDriveBaseURL = "https://www.googleapis.com"

// DriveAPI is the file-storage service handle carried by a session.
type DriveAPI interface {
	Upload(ctx context.Context, r io.Reader, name, mimeType, folderID string) (string, error)
	ListFiles(ctx context.Context, folderID, mimeType string) ([]tabtypes.RemoteFile, error)
}

// DriveClient talks to the file-storage REST surface. Separate base URLs for
// metadata and media let tests intercept each independently.
type DriveClient struct {
	*apiClient
	uploadBaseURL string
}

// NewDriveClient creates a file-storage client authenticated with the given
// bearer token. Empty URLs select the production endpoints.
func NewDriveClient(baseURL, uploadBaseURL, token string, timeout time.Duration) *DriveClient {
	if baseURL == "" {
		baseURL = DefaultDriveBaseURL
	}
	if uploadBaseURL == "" {
		uploadBaseURL = baseURL
	}
	return &DriveClient{
		apiClient:     newAPIClient("Drive", baseURL, token, timeout),
		uploadBaseURL: uploadBaseURL,
	}
}

type fileMetadata struct {
	Name    string   `json:"name"`
	Parents []string `json:"parents,omitempty"`
}

type uploadResponse struct {
	ID string `json:"id"`
}

type listFilesResponse struct {
	NextPageToken string                `json:"nextPageToken"`
	Files         []tabtypes.RemoteFile `json:"files"`
}

// Upload streams the bytes from r to the storage service as a new file named
// name, optionally placed under folderID. Returns the new file's identifier.
// The content never touches the local filesystem.
func (c *DriveClient) Upload(ctx context.Context, r io.Reader, name, mimeType, folderID string) (string, error) {
	meta := fileMetadata{Name: name}
	if folderID != "" {
		meta.Parents = []string{folderID}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("failed to encode file metadata: %w", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	metaPart, err := mw.CreatePart(metaHeader)
	if err != nil {
		return "", fmt.Errorf("failed to create metadata part: %w", err)
	}
	if _, err := metaPart.Write(metaJSON); err != nil {
		return "", fmt.Errorf("failed to write metadata part: %w", err)
	}

	mediaHeader := textproto.MIMEHeader{}
	mediaHeader.Set("Content-Type", mimeType)
	mediaPart, err := mw.CreatePart(mediaHeader)
	if err != nil {
		return "", fmt.Errorf("failed to create media part: %w", err)
	}
	if _, err := io.Copy(mediaPart, r); err != nil {
		return "", fmt.Errorf("failed to stream file content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload body: %w", err)
	}

	endpoint := c.uploadBaseURL + "/upload/drive/v3/files?uploadType=multipart&fields=id"
	contentType := "multipart/related; boundary=" + mw.Boundary()

	resp, err := c.do(ctx, http.MethodPost, endpoint, contentType, &body)
	if err != nil {
		return "", fmt.Errorf("failed to upload file %s: %w", name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if uploaded.ID == "" {
		return "", fmt.Errorf("upload response carried no file id")
	}

	c.logger.Debug("File uploaded", "id", uploaded.ID, "name", name, "mime_type", mimeType)
	return uploaded.ID, nil
}

// ListFiles enumerates files on the storage service, optionally restricted to
// a folder and a mime type. It follows the continuation token across pages
// and returns the accumulated descriptors.
func (c *DriveClient) ListFiles(ctx context.Context, folderID, mimeType string) ([]tabtypes.RemoteFile, error) {
	var clauses []string
	if folderID != "" {
		clauses = append(clauses, fmt.Sprintf("'%s' in parents", folderID))
	}
	if mimeType != "" {
		clauses = append(clauses, fmt.Sprintf("mimeType='%s'", mimeType))
	}
	query := strings.Join(clauses, " and ")

	var files []tabtypes.RemoteFile
	pageToken := ""
	for {
		params := url.Values{}
		params.Set("spaces", "drive")
		params.Set("fields", "nextPageToken, files(id, name, mimeType)")
		if query != "" {
			params.Set("q", query)
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		resp, err := c.do(ctx, http.MethodGet, c.baseURL+"/drive/v3/files?"+params.Encode(), "", nil)
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		var page listFilesResponse
		err = json.NewDecoder(resp.Body).Decode(&page)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode file list: %w", err)
		}

		files = append(files, page.Files...)
		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	c.logger.Debug("Files listed", "count", len(files), "folder", folderID, "mime_type", mimeType)
	return files, nil
}
