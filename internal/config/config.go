package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"` // empty keeps boards in memory
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	AllowedOrigins  string        `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	ExportPadding   float64       `envconfig:"EXPORT_PADDING" default:"20"`
	HandleTolerance float64       `envconfig:"HANDLE_TOLERANCE" default:"5"`
	FontSize        float64       `envconfig:"FONT_SIZE" default:"24"`
	StrokeSize      float64       `envconfig:"STROKE_SIZE" default:"8"`
	SaveTimeout     time.Duration `envconfig:"SAVE_TIMEOUT" default:"5s"`
	SeedSample      bool          `envconfig:"SEED_SAMPLE" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.ExportPadding < 0:
		return fmt.Errorf("EXPORT_PADDING must not be negative")
	case c.HandleTolerance <= 0:
		return fmt.Errorf("HANDLE_TOLERANCE must be positive")
	case c.FontSize <= 0:
		return fmt.Errorf("FONT_SIZE must be positive")
	case c.StrokeSize <= 0:
		return fmt.Errorf("STROKE_SIZE must be positive")
	case c.SaveTimeout <= 0:
		return fmt.Errorf("SAVE_TIMEOUT must be positive")
	}
	_, err := c.Level()
	return err
}

// Level parses LOG_LEVEL.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return l, nil
}
