package config

import (
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "LOG_LEVEL", "EXPORT_PADDING", "HANDLE_TOLERANCE", "FONT_SIZE", "STROKE_SIZE", "SAVE_TIMEOUT", "SEED_SAMPLE"} {
		t.Setenv(k, "") // restored after the test
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 || cfg.DatabaseURL != "" || cfg.ExportPadding != 20 ||
		cfg.HandleTolerance != 5 || cfg.FontSize != 24 || cfg.StrokeSize != 8 ||
		cfg.SaveTimeout != 5*time.Second || cfg.SeedSample {
		t.Errorf("defaults = %+v", cfg)
	}
	if l, _ := cfg.Level(); l != slog.LevelInfo {
		t.Errorf("level = %v", l)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_SAMPLE", "true")
	t.Setenv("SAVE_TIMEOUT", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9000 || !cfg.SeedSample || cfg.SaveTimeout != 250*time.Millisecond {
		t.Errorf("cfg = %+v", cfg)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Errorf("level = %v", l)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct{ key, value string }{
		{"LOG_LEVEL", "loud"},
		{"HANDLE_TOLERANCE", "0"},
		{"STROKE_SIZE", "-1"},
		{"PORT", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%s loaded", tt.key, tt.value)
			}
		})
	}
}
