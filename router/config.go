package router

import "time"

// Config holds the router defaults loaded from the service configuration.
type Config struct {
	Timeout         time.Duration `yaml:"timeout"`
	QuietdownRoutes []string      `yaml:"quietdown_routes"`
	HideHeaders     []string      `yaml:"hide_headers"`
	CORS            CORSConfig    `yaml:"cors"`
}

// CORSConfig controls the CORS middleware. It is enabled when Origins is set.
type CORSConfig struct {
	Origins          []string `yaml:"origins"`
	Methods          []string `yaml:"methods"`
	Headers          []string `yaml:"headers"`
	ExposeHeaders    []string `yaml:"expose_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
}
