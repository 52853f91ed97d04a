package services

import (
	"fmt"

	"tabshell/internal/config"
	"tabshell/internal/logger"
)

// ConfigurationService loads and serves the effective tabshell configuration.
// Other services may depend on it, so it is registered and initialized first.
type ConfigurationService struct {
	initialized bool
	cfg         config.Config
}

// NewConfigurationService creates a new ConfigurationService instance.
func NewConfigurationService() *ConfigurationService {
	return &ConfigurationService{
		initialized: false,
	}
}

// Name returns the service name "configuration" for registration.
func (c *ConfigurationService) Name() string {
	return "configuration"
}

// Initialize loads configuration from all sources with proper priority:
// environment variables > local .env > config .env > config file > defaults.
func (c *ConfigurationService) Initialize() error {
	if c.initialized {
		return nil
	}
	logger.ServiceOperation("configuration", "initialize", "starting")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	c.cfg = cfg
	c.initialized = true
	logger.ServiceOperation("configuration", "initialize", "completed")
	return nil
}

// Config returns the loaded configuration.
func (c *ConfigurationService) Config() (config.Config, error) {
	if !c.initialized {
		return config.Config{}, fmt.Errorf("configuration service not initialized")
	}
	return c.cfg, nil
}

// SetConfig overrides the loaded configuration. This is primarily for testing.
func (c *ConfigurationService) SetConfig(cfg config.Config) {
	c.cfg = cfg
	c.initialized = true
}

// GetConfigurationService retrieves the configuration service from the global registry.
func GetConfigurationService() (*ConfigurationService, error) {
	service, err := GetGlobalRegistry().GetService("configuration")
	if err != nil {
		return nil, err
	}

	configService, ok := service.(*ConfigurationService)
	if !ok {
		return nil, fmt.Errorf("configuration service has incorrect type")
	}

	return configService, nil
}
