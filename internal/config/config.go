// Package config provides hierarchical configuration loading for timerbridge.
// Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration, resolved once at startup.
type Config struct {
	Backend Backend `yaml:"backend"`
	GitHub  GitHub  `yaml:"github"`
	Event   Event   `yaml:"event"`
	Server  Server  `yaml:"server"`
	Logging Logging `yaml:"logging"`
	OTel    OTel    `yaml:"otel"`
}

// Backend holds the timer backend destination.
// ENV precedence: BLT_API_URL over SIZZLE_API_URL, BLT_API_TOKEN over SIZZLE_API_TOKEN.
type Backend struct {
	URL     string        `yaml:"url"`
	Token   string        `yaml:"token"`   //nolint:gosec // G117: config field name, not a hardcoded secret
	Timeout time.Duration `yaml:"timeout"` // 0 = no client timeout
}

// Configured reports whether both URL and token are present.
func (b Backend) Configured() bool { return b.URL != "" && b.Token != "" }

// GitHub holds credentials for the GraphQL API.
type GitHub struct {
	Token      string `yaml:"token"` //nolint:gosec // G117: config field name, not a hardcoded secret
	GraphQLURL string `yaml:"graphql_url"`
}

// Event identifies the triggering event for a single run.
type Event struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Server holds the webhook listener configuration for serve mode.
type Server struct {
	Port          string `yaml:"port"`
	WebhookSecret string `yaml:"webhook_secret"` //nolint:gosec // G117: config field name, not a hardcoded secret
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
	Format  string `yaml:"format"` // "auto" | "json" | "text"
}

// OTel holds OpenTelemetry exporter configuration. An empty endpoint
// disables export.
type OTel struct {
	Endpoint    string `yaml:"endpoint"`
	Insecure    bool   `yaml:"insecure"`
	ServiceName string `yaml:"service_name"`
}

// Enabled reports whether telemetry export is configured.
func (o OTel) Enabled() bool { return o.Endpoint != "" }

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		GitHub: GitHub{
			GraphQLURL: "https://api.github.com/graphql",
		},
		Server: Server{
			Port: "8080",
		},
		Logging: Logging{
			Level:   "info",
			Service: "timerbridge",
			Format:  "auto",
		},
		OTel: OTel{
			ServiceName: "timerbridge",
		},
	}
}
