package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := expandHome("~/.homeward/runs.db"); got != filepath.Join(home, ".homeward", "runs.db") {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("./runs.db"); got != "./runs.db" {
		t.Errorf("relative paths should be untouched, got %q", got)
	}
}

func TestNewLoggerDestinations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "homeward.log")

	tests := []struct {
		name    string
		dest    string
		level   string
		wantErr string
	}{
		{"off", "off", "info", ""},
		{"stderr", "-", "debug", ""},
		{"file", path, "warn", ""},
		{"bad level", "off", "loud", "log-level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagLogPath, flagLogLevel = tt.dest, tt.level
			logger, closer, err := newLogger()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, expected %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger: %v", err)
			}
			logger.Warn("hello")
			if err := closer.Close(); err != nil {
				t.Errorf("Close: %v", err)
			}
		})
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "homeward") {
		t.Errorf("log file = %q", data)
	}
}

func TestRuntimeConfigFromFlags(t *testing.T) {
	flagFPS, flagSeed = 30, 7
	cfg := runtimeConfig()
	if cfg.TickRate != 30 || cfg.Seed != 7 {
		t.Errorf("runtimeConfig = %+v", cfg)
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		t.Errorf("screen size must be positive, got %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}
