// Package config provides configuration loading for strada servers.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Valid server modes.
const (
	ModeDebug   = "debug"
	ModeRelease = "release"
)

// Config represents the complete server configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Templates TemplatesConfig `yaml:"templates"`
	Static    StaticConfig    `yaml:"static"`
	CORS      CORSConfig      `yaml:"cors"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig configures the listener
type ServerConfig struct {
	// Addr is the listen address (default: ":8080")
	Addr string `yaml:"addr"`
	// Mode is "debug" or "release" (default: "release")
	Mode string `yaml:"mode"`
}

// TemplatesConfig configures template loading
type TemplatesConfig struct {
	// Dir is the template directory (empty = templates disabled)
	Dir string `yaml:"dir"`
}

// StaticConfig configures static file serving
type StaticConfig struct {
	// Prefix is the URL prefix (default: "/static")
	Prefix string `yaml:"prefix"`
	// Dir is the directory served under Prefix (empty = static disabled)
	Dir string `yaml:"dir"`
}

// CORSConfig configures cross-origin request handling
type CORSConfig struct {
	// AllowedOrigins lists origins allowed to call the server (empty = CORS disabled)
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

// MetricsConfig configures the Prometheus scrape endpoint
type MetricsConfig struct {
	// Enabled mounts the scrape endpoint and the metrics middleware
	Enabled bool `yaml:"enabled"`
	// Path is the scrape endpoint path (default: "/metrics")
	Path string `yaml:"path"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
			Mode: ModeRelease,
		},
		Static: StaticConfig{
			Prefix: "/static",
		},
		CORS: CORSConfig{
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Path:    "/metrics",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.Mode != ModeDebug && c.Server.Mode != ModeRelease {
		return fmt.Errorf("server.mode must be %q or %q", ModeDebug, ModeRelease)
	}
	if c.Static.Dir != "" && c.Static.Prefix == "" {
		return fmt.Errorf("static.prefix is required when static.dir is set")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics.path is required when metrics are enabled")
	}
	return nil
}

// Debug reports whether the server should run in debug mode.
func (c *Config) Debug() bool {
	return c.Server.Mode == ModeDebug
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if other.Server.Mode != "" {
		c.Server.Mode = other.Server.Mode
	}

	if other.Templates.Dir != "" {
		c.Templates.Dir = other.Templates.Dir
	}

	if other.Static.Prefix != "" {
		c.Static.Prefix = other.Static.Prefix
	}
	if other.Static.Dir != "" {
		c.Static.Dir = other.Static.Dir
	}

	if len(other.CORS.AllowedOrigins) > 0 {
		c.CORS.AllowedOrigins = other.CORS.AllowedOrigins
	}
	if len(other.CORS.AllowedMethods) > 0 {
		c.CORS.AllowedMethods = other.CORS.AllowedMethods
	}
	if len(other.CORS.AllowedHeaders) > 0 {
		c.CORS.AllowedHeaders = other.CORS.AllowedHeaders
	}

	if other.Metrics.Enabled {
		c.Metrics.Enabled = true
	}
	if other.Metrics.Path != "" {
		c.Metrics.Path = other.Metrics.Path
	}
}
