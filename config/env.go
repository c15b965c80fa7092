package config

import (
	"strconv"
	"strings"
	"time"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup LookupFunc) {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := get("DOCS_UI"); ok {
		c.Docs.UI = v
	}
	if v, ok := get("DOCS_BASE_URL"); ok {
		c.Docs.BaseURL = v
	}
	if v, ok := get("CORS_ORIGINS"); ok {
		c.Router.CORS.Origins = splitList(v)
	}
	if v, ok := get("CORS_ALLOW_CREDENTIALS"); ok {
		c.Router.CORS.AllowCredentials = c.parseBool("CORS_ALLOW_CREDENTIALS", v, c.Router.CORS.AllowCredentials)
	}
	if v, ok := get("MONGO_URI"); ok {
		c.Readiness.MongoURI = v
	}
	if v, ok := get("READINESS_URLS"); ok {
		c.Readiness.HTTPTargets = splitList(v)
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"ROUTER_TIMEOUT", &c.Router.Timeout},
		{"READ_TIMEOUT", &c.Server.ReadTimeout},
		{"WRITE_TIMEOUT", &c.Server.WriteTimeout},
		{"SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout},
		{"READINESS_TIMEOUT", &c.Readiness.Timeout},
	}
	for _, d := range durations {
		v, ok := get(d.name)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			c.Warnings = append(c.Warnings, "ignoring invalid "+EnvPrefix+d.name+": "+err.Error())
			continue
		}
		*d.dst = parsed
	}
}

func (c *Config) parseBool(name, v string, fallback bool) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.Warnings = append(c.Warnings, "ignoring invalid "+EnvPrefix+name+": "+err.Error())
		return fallback
	}
	return b
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
