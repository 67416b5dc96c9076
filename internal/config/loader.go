package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "timerbridge.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// YAML file is optional; missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the operator
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config. Where several
// names are listed the first non-empty one wins.
func loadEnv(cfg *Config) {
	setString(&cfg.Backend.URL, "BLT_API_URL", "SIZZLE_API_URL")
	setString(&cfg.Backend.Token, "BLT_API_TOKEN", "SIZZLE_API_TOKEN")
	setDuration(&cfg.Backend.Timeout, "TIMERBRIDGE_BACKEND_TIMEOUT")

	setString(&cfg.GitHub.Token, "GITHUB_TOKEN", "INPUT_GITHUB_TOKEN")
	setString(&cfg.GitHub.GraphQLURL, "GITHUB_GRAPHQL_URL")

	setString(&cfg.Event.Name, "GITHUB_EVENT_NAME")
	setString(&cfg.Event.Path, "GITHUB_EVENT_PATH")

	setString(&cfg.Server.Port, "TIMERBRIDGE_PORT")
	setString(&cfg.Server.WebhookSecret, "TIMERBRIDGE_WEBHOOK_SECRET")

	setString(&cfg.Logging.Level, "TIMERBRIDGE_LOG_LEVEL")
	setString(&cfg.Logging.Service, "TIMERBRIDGE_LOG_SERVICE")
	setString(&cfg.Logging.Format, "TIMERBRIDGE_LOG_FORMAT")

	setString(&cfg.OTel.Endpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")
	setBool(&cfg.OTel.Insecure, "TIMERBRIDGE_OTEL_INSECURE")
	setString(&cfg.OTel.ServiceName, "OTEL_SERVICE_NAME")
}

// validate rejects malformed values. Missing backend settings are not an
// error here: the sender reports them when an action is actually due.
func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if cfg.GitHub.GraphQLURL == "" {
		return errors.New("github.graphql_url is required")
	}
	switch cfg.Logging.Format {
	case "auto", "json", "text":
	default:
		return fmt.Errorf("logging.format %q must be one of auto, json, text", cfg.Logging.Format)
	}
	if cfg.Backend.Timeout < 0 {
		return errors.New("backend.timeout must be >= 0")
	}
	return nil
}

func setString(dst *string, keys ...string) {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			*dst = v
			return
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
