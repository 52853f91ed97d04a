// Package config loads tabshell configuration with the precedence
// environment variables > local .env > config-dir .env > config file > defaults.
// A default YAML config file is materialized on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"tabshell/internal/logger"
)

// Default range conventions observed for the remote service. Both are
// configurable because read and write intentionally use different defaults.
const (
	DefaultReadRange  = "Sheet1"
	DefaultWriteRange = "Sheet1!A1"
)

// Config holds every tunable tabshell reads at startup.
type Config struct {
	AuthMode      string        `mapstructure:"auth_mode" yaml:"auth_mode"`
	TokenFile     string        `mapstructure:"token_file" yaml:"token_file"`
	Token         string        `mapstructure:"token" yaml:"-"`
	ReadRange     string        `mapstructure:"read_range" yaml:"read_range"`
	WriteRange    string        `mapstructure:"write_range" yaml:"write_range"`
	SheetsBaseURL string        `mapstructure:"sheets_url" yaml:"sheets_url"`
	DriveBaseURL  string        `mapstructure:"drive_url" yaml:"drive_url"`
	UploadBaseURL string        `mapstructure:"upload_url" yaml:"upload_url"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout" yaml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AuthMode:      "file",
		TokenFile:     "token.json",
		ReadRange:     DefaultReadRange,
		WriteRange:    DefaultWriteRange,
		SheetsBaseURL: "https://sheets.googleapis.com",
		DriveBaseURL:  "https://www.googleapis.com",
		UploadBaseURL: "https://www.googleapis.com",
		HTTPTimeout:   30 * time.Second,
	}
}

// Load assembles the effective configuration. Missing .env files and a
// missing config file are not errors; a default config file is written to the
// user config directory when absent.
func Load() (Config, error) {
	loadDotEnvFiles()

	v := viper.New()
	v.SetEnvPrefix("TABSHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("auth_mode", defaults.AuthMode)
	v.SetDefault("token_file", defaults.TokenFile)
	v.SetDefault("token", "")
	v.SetDefault("read_range", defaults.ReadRange)
	v.SetDefault("write_range", defaults.WriteRange)
	v.SetDefault("sheets_url", defaults.SheetsBaseURL)
	v.SetDefault("drive_url", defaults.DriveBaseURL)
	v.SetDefault("upload_url", defaults.UploadBaseURL)
	v.SetDefault("http_timeout", defaults.HTTPTimeout)

	if configPath, err := ConfigFilePath(); err == nil {
		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			if writeErr := writeDefaultConfig(configPath, defaults); writeErr != nil {
				logger.Warn("Could not write default config file", "path", configPath, "error", writeErr)
			}
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			logger.Debug("No config file loaded", "path", configPath, "error", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	logger.Debug("Configuration loaded",
		"auth_mode", cfg.AuthMode,
		"read_range", cfg.ReadRange,
		"write_range", cfg.WriteRange)
	return cfg, nil
}

// ConfigFilePath returns the path of the tabshell YAML config file under the
// user config directory.
func ConfigFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "tabshell", "config.yaml"), nil
}

// loadDotEnvFiles loads .env files without overriding variables that are
// already set, so precedence stays env vars > local .env > config-dir .env.
func loadDotEnvFiles() {
	if err := godotenv.Load(".env"); err == nil {
		logger.Debug("Loaded local .env")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		configEnv := filepath.Join(dir, "tabshell", ".env")
		if err := godotenv.Load(configEnv); err == nil {
			logger.Debug("Loaded config .env", "path", configEnv)
		}
	}
}

func writeDefaultConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
