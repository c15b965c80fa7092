// Package config loads the service configuration from an optional YAML file
// and WEATHER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/drblury/swaggerversioning/router"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WEATHER_"

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// DocsConfig controls the documentation UI.
type DocsConfig struct {
	UI      string `yaml:"ui"` // swaggerui or redoc
	BaseURL string `yaml:"base_url"`
	Title   string `yaml:"title"`
}

// ReadinessConfig lists optional dependencies checked by /readyz.
type ReadinessConfig struct {
	Timeout     time.Duration `yaml:"timeout"`
	MongoURI    string        `yaml:"mongo_uri"`
	HTTPTargets []string      `yaml:"http_targets"`
}

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Router    router.Config   `yaml:"router"`
	Docs      DocsConfig      `yaml:"docs"`
	Readiness ReadinessConfig `yaml:"readiness"`

	// Warnings collects non-fatal problems found while loading. They are
	// logged once the logger exists.
	Warnings []string `yaml:"-"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Log: LogConfig{Level: "info", Format: "text"},
		Router: router.Config{
			Timeout:         30 * time.Second,
			QuietdownRoutes: []string{"/healthz", "/readyz", "/status"},
			HideHeaders:     []string{"Authorization", "Cookie"},
		},
		Docs:      DocsConfig{UI: "swaggerui"},
		Readiness: ReadinessConfig{Timeout: 2 * time.Second},
	}
}

// Load reads path when it is not empty, then applies environment overrides
// and validates the result. A missing file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path) //nolint:gosec // path is caller-controlled
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports inconsistent settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server addr is required")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.Log.Format)
	}
	switch strings.ToLower(c.Docs.UI) {
	case "", "swaggerui", "redoc":
	default:
		return fmt.Errorf("unsupported docs ui %q", c.Docs.UI)
	}
	if c.Server.ShutdownTimeout < 0 || c.Readiness.Timeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	return nil
}

// SlogLevel maps the configured level to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the service logger writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
