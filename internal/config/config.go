package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config represents the fsched configuration.
type Config struct {
	SchedulePrefix  string `json:"schedulePrefix"`
	AnnotatedPrefix string `json:"annotatedPrefix"`
	LogLevel        string `json:"logLevel"`
	LogFormat       string `json:"logFormat"`
	LogFile         string `json:"logFile,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		SchedulePrefix:  "SHOTLIST_",
		AnnotatedPrefix: "ANNOTATED_",
		LogLevel:        "info",
		LogFormat:       "console",
	}
}

// ConfigDir returns the platform-appropriate config directory for fsched.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fsched"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "fsched"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "fsched"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "fsched"), nil
	default:
		return filepath.Join(home, ".config", "fsched"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.SchedulePrefix != "" {
		dst.SchedulePrefix = src.SchedulePrefix
	}
	if src.AnnotatedPrefix != "" {
		dst.AnnotatedPrefix = src.AnnotatedPrefix
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFormat != "" {
		dst.LogFormat = src.LogFormat
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("FSCHED_SCHEDULE_PREFIX"); v != "" {
		cfg.SchedulePrefix = v
	}
	if v := os.Getenv("FSCHED_ANNOTATED_PREFIX"); v != "" {
		cfg.AnnotatedPrefix = v
	}
	if v := os.Getenv("FSCHED_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FSCHED_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("FSCHED_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["schedulePrefix"]; ok && v != "" {
		cfg.SchedulePrefix = v
	}
	if v, ok := overrides["annotatedPrefix"]; ok && v != "" {
		cfg.AnnotatedPrefix = v
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := overrides["logFormat"]; ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := overrides["logFile"]; ok && v != "" {
		cfg.LogFile = v
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "schedulePrefix":
		cfg.SchedulePrefix = value
	case "annotatedPrefix":
		cfg.AnnotatedPrefix = value
	case "logLevel":
		cfg.LogLevel = value
	case "logFormat":
		cfg.LogFormat = value
	case "logFile":
		cfg.LogFile = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
