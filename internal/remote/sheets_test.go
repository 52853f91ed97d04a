package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSheetsTestClient(t *testing.T, handler http.Handler) *SheetsClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewSheetsClient(server.URL, "test-token", 5*time.Second)
}

func TestCreateSpreadsheet(t *testing.T) {
	var gotAuth, gotTitle string
	client := newSheetsTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v4/spreadsheets", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		var req createSpreadsheetRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotTitle = req.Properties.Title

		_ = json.NewEncoder(w).Encode(createSpreadsheetResponse{SpreadsheetID: "new-sheet-id"})
	}))

	id, err := client.CreateSpreadsheet(context.Background(), "Quarterly Report")
	require.NoError(t, err)
	assert.Equal(t, "new-sheet-id", id)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "Quarterly Report", gotTitle)
}

func TestCreateSpreadsheet_MissingID(t *testing.T) {
	client := newSheetsTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := client.CreateSpreadsheet(context.Background(), "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no spreadsheet id")
}

func TestCreateSpreadsheet_Unauthorized(t *testing.T) {
	client := newSheetsTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.CreateSpreadsheet(context.Background(), "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected credentials")
}

// sheetStore is a minimal in-memory spreadsheet values backend.
type sheetStore struct {
	values map[string][][]string // keyed by spreadsheet id
}

func (s *sheetStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Path shape: /v4/spreadsheets/{id}/values/{range}
	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/v4/spreadsheets/"), "/values/", 2)
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}
	id := parts[0]

	switch r.Method {
	case http.MethodPut:
		var body valueRangeBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.values[id] = body.Values
		_, _ = w.Write([]byte(`{}`))
	case http.MethodGet:
		_ = json.NewEncoder(w).Encode(valueRangeResponse{Values: s.values[id]})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := &sheetStore{values: make(map[string][][]string)}
	client := newSheetsTestClient(t, store)

	err := client.WriteRange(context.Background(), "SHEET1", [][]string{{"a", "b"}, {"1", "2"}}, "Sheet1!A1")
	require.NoError(t, err)

	ds, err := client.ReadRange(context.Background(), "SHEET1", "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Columns)
	require.Equal(t, 1, ds.NumRows())
	assert.Equal(t, []string{"1", "2"}, ds.Rows[0])
}

func TestWriteRange_RangeInPath(t *testing.T) {
	var gotPath, gotQuery string
	client := newSheetsTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{}`))
	}))

	err := client.WriteRange(context.Background(), "S1", [][]string{{"x"}}, "Sheet2!B2")
	require.NoError(t, err)
	assert.Equal(t, "/v4/spreadsheets/S1/values/Sheet2!B2", gotPath)
	assert.Contains(t, gotQuery, "valueInputOption=RAW")
}

func TestReadRange_NoRows(t *testing.T) {
	client := newSheetsTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(valueRangeResponse{})
	}))

	_, err := client.ReadRange(context.Background(), "EMPTY", "Sheet1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rows")
}

func TestReadRange_PadsShortRows(t *testing.T) {
	client := newSheetsTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(valueRangeResponse{
			Values: [][]string{{"a", "b", "c"}, {"1"}},
		})
	}))

	ds, err := client.ReadRange(context.Background(), "S1", "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "", ""}, ds.Rows[0])
}

func TestWriteRange_ServerError(t *testing.T) {
	client := newSheetsTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	err := client.WriteRange(context.Background(), "S1", [][]string{{"x"}}, "Sheet1!A1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote service returned")
}
