package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.Mode != ModeRelease {
		t.Errorf("expected default mode release, got %s", cfg.Server.Mode)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled by default")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("expected default metrics path /metrics, got %s", cfg.Metrics.Path)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing addr",
			modify:  func(c *Config) { c.Server.Addr = "" },
			wantErr: true,
		},
		{
			name:    "unknown mode",
			modify:  func(c *Config) { c.Server.Mode = "verbose" },
			wantErr: true,
		},
		{
			name:    "debug mode",
			modify:  func(c *Config) { c.Server.Mode = ModeDebug },
			wantErr: false,
		},
		{
			name:    "static dir without prefix",
			modify:  func(c *Config) { c.Static.Dir = "public"; c.Static.Prefix = "" },
			wantErr: true,
		},
		{
			name:    "metrics enabled without path",
			modify:  func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Path = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strada.yaml")

	data := []byte("server:\n  addr: \":9000\"\n  mode: debug\nmetrics:\n  enabled: true\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("expected addr :9000, got %s", cfg.Server.Addr)
	}
	if !cfg.Debug() {
		t.Error("expected debug mode")
	}
	if !cfg.Metrics.Enabled {
		t.Error("expected metrics enabled")
	}
	// Untouched fields keep their defaults.
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("expected default metrics path, got %s", cfg.Metrics.Path)
	}
}

func TestMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(&Config{
		Server: ServerConfig{Addr: ":3000"},
		CORS:   CORSConfig{AllowedOrigins: []string{"https://example.com"}},
	})

	if cfg.Server.Addr != ":3000" {
		t.Errorf("expected merged addr :3000, got %s", cfg.Server.Addr)
	}
	if cfg.Server.Mode != ModeRelease {
		t.Errorf("merge must not clear mode, got %s", cfg.Server.Mode)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 {
		t.Errorf("expected merged origins, got %v", cfg.CORS.AllowedOrigins)
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		t.Error("merge must not clear default allowed methods")
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "strada.yaml")

	cfg := DefaultConfig()
	cfg.Server.Addr = ":7070"
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Server.Addr != ":7070" {
		t.Errorf("expected addr :7070 after reload, got %s", loaded.Server.Addr)
	}
}

func TestLoaderExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \":5000\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader(nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":5000" {
		t.Errorf("expected addr :5000, got %s", cfg.Server.Addr)
	}
}

func TestLoaderMissingExplicitPath(t *testing.T) {
	if _, err := NewLoader(nil).Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}
