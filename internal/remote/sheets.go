package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tabshell/internal/dataset"
)

// DefaultSheetsBaseURL is the production document-edit endpoint.
const DefaultSheetsBaseURL = "https://sheets.googleapis.com"

// SheetsAPI is the document-edit service handle carried by a session.
type SheetsAPI interface {
	CreateSpreadsheet(ctx context.Context, title string) (string, error)
	WriteRange(ctx context.Context, spreadsheetID string, values [][]string, rangeName string) error
	ReadRange(ctx context.Context, spreadsheetID, rangeName string) (*dataset.Dataset, error)
}

// SheetsClient talks to the spreadsheet REST surface. The base URL is
// overridable so tests can point it at a local server.
type SheetsClient struct {
	*apiClient
}

// NewSheetsClient creates a spreadsheet client authenticated with the given
// bearer token. An empty baseURL selects the production endpoint.
func NewSheetsClient(baseURL, token string, timeout time.Duration) *SheetsClient {
	if baseURL == "" {
		baseURL = DefaultSheetsBaseURL
	}
	return &SheetsClient{apiClient: newAPIClient("Sheets", baseURL, token, timeout)}
}

type createSpreadsheetRequest struct {
	Properties spreadsheetProperties `json:"properties"`
}

type spreadsheetProperties struct {
	Title string `json:"title"`
}

type createSpreadsheetResponse struct {
	SpreadsheetID string `json:"spreadsheetId"`
}

type valueRangeBody struct {
	Values [][]string `json:"values"`
}

type valueRangeResponse struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// CreateSpreadsheet creates a new spreadsheet with the given title and
// returns its identifier.
func (c *SheetsClient) CreateSpreadsheet(ctx context.Context, title string) (string, error) {
	body, err := json.Marshal(createSpreadsheetRequest{Properties: spreadsheetProperties{Title: title}})
	if err != nil {
		return "", fmt.Errorf("failed to encode create request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/v4/spreadsheets", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var created createSpreadsheetResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode create response: %w", err)
	}
	if created.SpreadsheetID == "" {
		return "", fmt.Errorf("create response carried no spreadsheet id")
	}

	c.logger.Debug("Spreadsheet created", "id", created.SpreadsheetID, "title", title)
	return created.SpreadsheetID, nil
}

// WriteRange writes a rectangular block of values to the given range of the
// spreadsheet, raw (uninterpreted) value input.
func (c *SheetsClient) WriteRange(ctx context.Context, spreadsheetID string, values [][]string, rangeName string) error {
	body, err := json.Marshal(valueRangeBody{Values: values})
	if err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?valueInputOption=RAW",
		c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(rangeName))

	resp, err := c.do(ctx, http.MethodPut, endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to write range %s: %w", rangeName, err)
	}
	_ = resp.Body.Close()

	c.logger.Debug("Range written", "spreadsheet", spreadsheetID, "range", rangeName, "rows", len(values))
	return nil
}

// ReadRange reads the given range and builds a dataset from it, treating the
// first returned row as the column header. An empty range is an error rather
// than an empty dataset so callers cannot mistake it for data.
func (c *SheetsClient) ReadRange(ctx context.Context, spreadsheetID, rangeName string) (*dataset.Dataset, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(rangeName))

	resp, err := c.do(ctx, http.MethodGet, endpoint, "", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", rangeName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var vr valueRangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("failed to decode range response: %w", err)
	}
	if len(vr.Values) == 0 {
		return nil, fmt.Errorf("range %s of spreadsheet %s returned no rows", rangeName, spreadsheetID)
	}

	header := vr.Values[0]
	rows := make([][]string, 0, len(vr.Values)-1)
	for _, row := range vr.Values[1:] {
		// Trailing empty cells may be omitted by the service; pad to header width.
		padded := make([]string, len(header))
		copy(padded, row)
		rows = append(rows, padded)
	}

	c.logger.Debug("Range read", "spreadsheet", spreadsheetID, "range", rangeName, "rows", len(rows))
	return &dataset.Dataset{Columns: header, Rows: rows}, nil
}
