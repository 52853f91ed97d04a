package auth

import (
	"fmt"

	"tabshell/internal/logger"
)

// Credential source modes recognized by the TABSHELL_AUTH_MODE flag.
const (
	ModeFile = "file"
	ModeEnv  = "env"
)

// Load resolves a credential from the configured source. ModeFile reads the
// blob from tokenFile; ModeEnv takes the blob embedded in tokenBlob (the value
// of an environment variable). Any other mode is rejected.
func Load(mode, tokenFile, tokenBlob string) (*Credential, error) {
	switch mode {
	case ModeFile:
		logger.Debug("Loading credential", "mode", mode, "file", tokenFile)
		return LoadFromFile(tokenFile)
	case ModeEnv:
		logger.Debug("Loading credential", "mode", mode)
		return Parse(tokenBlob)
	default:
		return nil, fmt.Errorf("unknown auth mode %q (expected %q or %q)", mode, ModeFile, ModeEnv)
	}
}
