package config

import (
	"os"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.SchedulePrefix != "SHOTLIST_" {
		t.Errorf("Default schedulePrefix = %q, want %q", cfg.SchedulePrefix, "SHOTLIST_")
	}
	if cfg.AnnotatedPrefix != "ANNOTATED_" {
		t.Errorf("Default annotatedPrefix = %q, want %q", cfg.AnnotatedPrefix, "ANNOTATED_")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Default logLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "console" {
		t.Errorf("Default logFormat = %q, want %q", cfg.LogFormat, "console")
	}
}

func TestMergeEnv(t *testing.T) {
	// Save and restore env
	orig := map[string]string{}
	envKeys := []string{"FSCHED_SCHEDULE_PREFIX", "FSCHED_ANNOTATED_PREFIX", "FSCHED_LOG_LEVEL", "FSCHED_LOG_FILE"}
	for _, k := range envKeys {
		orig[k] = os.Getenv(k)
	}
	defer func() {
		for k, v := range orig {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	os.Setenv("FSCHED_SCHEDULE_PREFIX", "SCHED_")
	os.Setenv("FSCHED_ANNOTATED_PREFIX", "ANN_")
	os.Setenv("FSCHED_LOG_LEVEL", "debug")
	os.Setenv("FSCHED_LOG_FILE", "/tmp/fsched.log")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.SchedulePrefix != "SCHED_" {
		t.Errorf("SchedulePrefix = %q, want %q", cfg.SchedulePrefix, "SCHED_")
	}
	if cfg.AnnotatedPrefix != "ANN_" {
		t.Errorf("AnnotatedPrefix = %q, want %q", cfg.AnnotatedPrefix, "ANN_")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFile != "/tmp/fsched.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "/tmp/fsched.log")
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, map[string]string{
		"schedulePrefix": "BYSETUP_",
		"logLevel":       "warn",
	})

	if cfg.SchedulePrefix != "BYSETUP_" {
		t.Errorf("SchedulePrefix = %q, want %q", cfg.SchedulePrefix, "BYSETUP_")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	// Untouched fields keep defaults
	if cfg.AnnotatedPrefix != "ANNOTATED_" {
		t.Errorf("AnnotatedPrefix = %q, want default", cfg.AnnotatedPrefix)
	}
}

func TestMergeOverrides_Nil(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, nil)
	if cfg.SchedulePrefix != "SHOTLIST_" {
		t.Error("SchedulePrefix changed with nil overrides")
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	tests := []struct {
		key   string
		value string
	}{
		{"schedulePrefix", "S_"},
		{"annotatedPrefix", "A_"},
		{"logLevel", "error"},
		{"logFormat", "json"},
		{"logFile", "out.log"},
	}

	for _, tt := range tests {
		if err := SetField(&cfg, tt.key, tt.value); err != nil {
			t.Errorf("SetField(%q, %q) error: %v", tt.key, tt.value, err)
		}
	}

	if cfg.SchedulePrefix != "S_" {
		t.Errorf("SchedulePrefix = %q, want %q", cfg.SchedulePrefix, "S_")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestSetField_UnknownKey(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "nonexistent", "value"); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestConfigDir_XDG(t *testing.T) {
	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if orig == "" {
			os.Unsetenv("XDG_CONFIG_HOME")
		} else {
			os.Setenv("XDG_CONFIG_HOME", orig)
		}
	}()

	os.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg-test/fsched" {
		t.Errorf("ConfigDir = %q, want %q", dir, "/tmp/xdg-test/fsched")
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	tmpDir := t.TempDir()

	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if orig == "" {
			os.Unsetenv("XDG_CONFIG_HOME")
		} else {
			os.Setenv("XDG_CONFIG_HOME", orig)
		}
	}()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := Default()
	cfg.SchedulePrefix = "CUSTOM_"
	cfg.LogLevel = "debug"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.SchedulePrefix != "CUSTOM_" {
		t.Errorf("SchedulePrefix = %q, want %q", loaded.SchedulePrefix, "CUSTOM_")
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", loaded.LogLevel, "debug")
	}
}

func TestLoadFile_NoFile(t *testing.T) {
	tmpDir := t.TempDir()

	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if orig == "" {
			os.Unsetenv("XDG_CONFIG_HOME")
		} else {
			os.Setenv("XDG_CONFIG_HOME", orig)
		}
	}()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	// Should return zero config, not defaults
	if cfg.SchedulePrefix != "" {
		t.Errorf("SchedulePrefix should be empty for missing file, got %q", cfg.SchedulePrefix)
	}
}

func TestLoad_Integration(t *testing.T) {
	tmpDir := t.TempDir()

	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if orig == "" {
			os.Unsetenv("XDG_CONFIG_HOME")
		} else {
			os.Setenv("XDG_CONFIG_HOME", orig)
		}
	}()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg, err := Load(map[string]string{"schedulePrefix": "X_"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.SchedulePrefix != "X_" {
		t.Errorf("SchedulePrefix = %q, want %q", cfg.SchedulePrefix, "X_")
	}
	// Defaults should be preserved for unset fields
	if cfg.AnnotatedPrefix != "ANNOTATED_" {
		t.Errorf("AnnotatedPrefix = %q, want default", cfg.AnnotatedPrefix)
	}
}
