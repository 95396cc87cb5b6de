package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	ReplyDelayMS   int    `json:"reply_delay_ms"`
	ShowTimestamps bool   `json:"show_timestamps"`
	LogLevel       string `json:"log_level"`
	LogFile        string `json:"log_file"`
	LogFormat      string `json:"log_format"`
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		ReplyDelayMS:   120,
		ShowTimestamps: true,
		LogLevel:       "info",
		LogFile:        "",
		LogFormat:      "json",
	}
}

// ReplyDelay returns the bot reply delay as a duration.
func (c Config) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelayMS) * time.Millisecond
}

// Load loads configuration from the specified path
// If the file doesn't exist, creates one with default values
func Load(configPath string) (Config, error) {
	// Ensure directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(configPath, cfg); err != nil {
				return Config{}, fmt.Errorf("failed to create default config: %w", err)
			}
			return applyEnvironmentOverrides(cfg, os.Getenv), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	// Start from defaults so fields missing from older files keep sane values
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return applyEnvironmentOverrides(cfg, os.Getenv), nil
}

// Environment variables that override file settings.
const (
	EnvReplyDelayMS   = "CHATBOT_REPLY_DELAY_MS"
	EnvShowTimestamps = "CHATBOT_SHOW_TIMESTAMPS"
	EnvLogLevel       = "CHATBOT_LOG_LEVEL"
	EnvLogFile        = "CHATBOT_LOG_FILE"
	EnvLogFormat      = "CHATBOT_LOG_FORMAT"
)

// applyEnvironmentOverrides applies environment variable overrides to the config.
// Values that fail to parse or name an unknown level or format are ignored.
func applyEnvironmentOverrides(cfg Config, getenv func(string) string) Config {
	if v := getenv(EnvReplyDelayMS); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.ReplyDelayMS = ms
		}
	}

	if v := getenv(EnvShowTimestamps); v != "" {
		if show, err := strconv.ParseBool(v); err == nil {
			cfg.ShowTimestamps = show
		}
	}

	if v := getenv(EnvLogLevel); v != "" && validLogLevel(v) {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	if v := getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}

	if v := getenv(EnvLogFormat); v != "" && validLogFormat(v) {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}

	return cfg
}

// Save saves the configuration to the specified path
func Save(configPath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.ReplyDelayMS < 0 {
		return fmt.Errorf("reply_delay_ms must not be negative, got: %d", c.ReplyDelayMS)
	}

	if !validLogLevel(c.LogLevel) {
		return fmt.Errorf("unsupported log_level: %s", c.LogLevel)
	}
	if !validLogFormat(c.LogFormat) {
		return fmt.Errorf("unsupported log_format: %s", c.LogFormat)
	}

	return nil
}

func validLogLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

func validLogFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json", "text":
		return true
	}
	return false
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".chatbot/config.json"
	}
	return filepath.Join(homeDir, ".chatbot", "config.json")
}
