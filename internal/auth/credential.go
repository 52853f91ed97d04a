// Package auth handles the opaque serialized credential blob used to reach
// the remote document/storage service. The blob is a JSON-shaped string
// carrying token, refresh token, expiry, and scopes; token refresh itself is
// the remote service's concern, not tabshell's.
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Credential is the parsed form of the credential blob. tabshell only ever
// forwards Token as a bearer value; the remaining fields ride along opaquely.
type Credential struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
	Scopes       []string  `json:"scopes,omitempty"`
}

// Parse deserializes a credential blob. It returns an error when the blob is
// not valid JSON or carries no access token.
func Parse(blob string) (*Credential, error) {
	if strings.TrimSpace(blob) == "" {
		return nil, fmt.Errorf("credential blob is empty")
	}

	var cred Credential
	if err := json.Unmarshal([]byte(blob), &cred); err != nil {
		return nil, fmt.Errorf("failed to parse credential blob: %w", err)
	}
	if cred.Token == "" {
		return nil, fmt.Errorf("credential blob has no access token")
	}
	return &cred, nil
}

// Serialize renders the credential back to its blob form.
func (c *Credential) Serialize() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to serialize credential: %w", err)
	}
	return string(data), nil
}

// Expired reports whether the credential carries an expiry in the past.
// A zero expiry is treated as non-expiring.
func (c *Credential) Expired() bool {
	if c.Expiry.IsZero() {
		return false
	}
	return time.Now().After(c.Expiry)
}

// LoadFromFile reads and parses a credential blob from a local file.
func LoadFromFile(path string) (*Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}
	return Parse(string(data))
}
