package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Design.Namespace != "https://example.org/designs" {
		t.Errorf("expected default namespace https://example.org/designs, got %s", cfg.Design.Namespace)
	}
	if cfg.Export.Format != "turtle" {
		t.Errorf("expected default format turtle, got %s", cfg.Export.Format)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
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
			name:    "relative namespace",
			modify:  func(c *Config) { c.Design.Namespace = "designs/local" },
			wantErr: true,
		},
		{
			name:    "empty namespace",
			modify:  func(c *Config) { c.Design.Namespace = "" },
			wantErr: true,
		},
		{
			name:    "unknown export format",
			modify:  func(c *Config) { c.Export.Format = "rdfxml" },
			wantErr: true,
		},
		{
			name:    "format alias accepted",
			modify:  func(c *Config) { c.Export.Format = "ttl" },
			wantErr: false,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "trace" },
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
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
design:
  namespace: "https://lab.example.org/constructs"
export:
  format: "jsonld"
  output: "out.jsonld"
log:
  level: "debug"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Design.Namespace != "https://lab.example.org/constructs" {
		t.Errorf("expected namespace https://lab.example.org/constructs, got %s", cfg.Design.Namespace)
	}
	if cfg.Export.Format != "jsonld" {
		t.Errorf("expected format jsonld, got %s", cfg.Export.Format)
	}
	if cfg.Export.Output != "out.jsonld" {
		t.Errorf("expected output out.jsonld, got %s", cfg.Export.Output)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Design: DesignConfig{
			Namespace: "https://override.example.org",
		},
		Export: ExportConfig{
			Output: "design.ttl",
		},
	}

	base.Merge(override)

	if base.Design.Namespace != "https://override.example.org" {
		t.Errorf("expected namespace https://override.example.org, got %s", base.Design.Namespace)
	}
	// Format should remain from base since override didn't set it
	if base.Export.Format != "turtle" {
		t.Errorf("expected format to remain default, got %s", base.Export.Format)
	}
	if base.Export.Output != "design.ttl" {
		t.Errorf("expected output design.ttl, got %s", base.Export.Output)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Design.Namespace = "https://saved.example.org"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Design.Namespace != "https://saved.example.org" {
		t.Errorf("expected namespace https://saved.example.org, got %s", loaded.Design.Namespace)
	}
}
