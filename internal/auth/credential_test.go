package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBlob = `{
	"token": "ya29.access",
	"refresh_token": "1//refresh",
	"expiry": "2030-01-02T15:04:05Z",
	"scopes": ["https://www.googleapis.com/auth/spreadsheets", "https://www.googleapis.com/auth/drive"]
}`

func TestParse(t *testing.T) {
	cred, err := Parse(sampleBlob)
	require.NoError(t, err)

	assert.Equal(t, "ya29.access", cred.Token)
	assert.Equal(t, "1//refresh", cred.RefreshToken)
	assert.Equal(t, 2030, cred.Expiry.Year())
	assert.Len(t, cred.Scopes, 2)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		blob    string
		wantErr string
	}{
		{name: "empty blob", blob: "", wantErr: "empty"},
		{name: "whitespace blob", blob: "   ", wantErr: "empty"},
		{name: "invalid json", blob: "{not json", wantErr: "failed to parse"},
		{name: "missing token", blob: `{"refresh_token": "r"}`, wantErr: "no access token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.blob)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	cred, err := Parse(sampleBlob)
	require.NoError(t, err)

	blob, err := cred.Serialize()
	require.NoError(t, err)

	again, err := Parse(blob)
	require.NoError(t, err)
	assert.Equal(t, cred, again)
}

func TestExpired(t *testing.T) {
	assert.False(t, (&Credential{Token: "t"}).Expired())
	assert.False(t, (&Credential{Token: "t", Expiry: time.Now().Add(time.Hour)}).Expired())
	assert.True(t, (&Credential{Token: "t", Expiry: time.Now().Add(-time.Hour)}).Expired())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleBlob), 0600))

	cred, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ya29.access", cred.Token)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoad_Modes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleBlob), 0600))

	cred, err := Load(ModeFile, path, "")
	require.NoError(t, err)
	assert.Equal(t, "ya29.access", cred.Token)

	cred, err = Load(ModeEnv, "", sampleBlob)
	require.NoError(t, err)
	assert.Equal(t, "ya29.access", cred.Token)

	_, err = Load("keyring", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown auth mode")
}
