package services

import (
	"fmt"

	"tabshell/internal/auth"
	"tabshell/internal/logger"
	"tabshell/internal/remote"
	"tabshell/internal/session"
)

// AuthService resolves the credential blob from its configured source and
// attaches authenticated remote service handles to a session. Sessions whose
// credential source is absent simply stay unauthenticated; the remote
// commands report that as a precondition message.
type AuthService struct {
	initialized bool
}

// NewAuthService creates a new AuthService instance.
func NewAuthService() *AuthService {
	return &AuthService{
		initialized: false,
	}
}

// Name returns the service name "auth" for registration.
func (a *AuthService) Name() string {
	return "auth"
}

// Initialize marks the service ready. Credential loading is deferred to
// Connect so that a missing token does not fail startup.
func (a *AuthService) Initialize() error {
	logger.ServiceOperation("auth", "initialize", "service ready")
	a.initialized = true
	return nil
}

// Connect loads the credential and attaches document-edit and file-storage
// handles to the session, along with the configured range defaults.
func (a *AuthService) Connect(sess *session.Session) error {
	if !a.initialized {
		return fmt.Errorf("auth service not initialized")
	}

	configService, err := GetConfigurationService()
	if err != nil {
		return fmt.Errorf("configuration service not available: %w", err)
	}
	cfg, err := configService.Config()
	if err != nil {
		return err
	}

	cred, err := auth.Load(cfg.AuthMode, cfg.TokenFile, cfg.Token)
	if err != nil {
		return fmt.Errorf("failed to load credential: %w", err)
	}
	if cred.Expired() {
		logger.Warn("Credential is past its expiry; remote calls may be rejected", "expiry", cred.Expiry)
	}

	sess.Credential = cred
	sess.Sheets = remote.NewSheetsClient(cfg.SheetsBaseURL, cred.Token, cfg.HTTPTimeout)
	sess.Drive = remote.NewDriveClient(cfg.DriveBaseURL, cfg.UploadBaseURL, cred.Token, cfg.HTTPTimeout)
	sess.ReadRange = cfg.ReadRange
	sess.WriteRange = cfg.WriteRange

	logger.Info("Remote services connected", "auth_mode", cfg.AuthMode)
	return nil
}

// GetAuthService retrieves the auth service from the global registry.
func GetAuthService() (*AuthService, error) {
	service, err := GetGlobalRegistry().GetService("auth")
	if err != nil {
		return nil, err
	}

	authService, ok := service.(*AuthService)
	if !ok {
		return nil, fmt.Errorf("auth service has incorrect type")
	}

	return authService, nil
}
