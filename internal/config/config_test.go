package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SHOPSYNC_HTTP_ADDR", "")
	t.Setenv("REMOTE_URL", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.HTTPAddr != ":3000" {
		t.Errorf("unexpected http addr: %s", cfg.Server.HTTPAddr)
	}
	if cfg.Storage.Driver != "memory" {
		t.Errorf("unexpected driver: %s", cfg.Storage.Driver)
	}
	if cfg.Client.RemoteURL != "http://localhost:3000" {
		t.Errorf("unexpected remote url: %s", cfg.Client.RemoteURL)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  http_addr: ":4000"
storage:
  driver: mysql
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.HTTPAddr != ":4000" {
		t.Errorf("file value not applied: %s", cfg.Server.HTTPAddr)
	}
	if cfg.Storage.Driver != "mysql" {
		t.Errorf("file value not applied: %s", cfg.Storage.Driver)
	}
	// Untouched fields keep their defaults.
	if cfg.Server.GRPCAddr != ":50051" {
		t.Errorf("default lost: %s", cfg.Server.GRPCAddr)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("client:\n  remote_url: http://file:1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("REMOTE_URL", "http://env:2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Client.RemoteURL != "http://env:2" {
		t.Errorf("env override not applied: %s", cfg.Client.RemoteURL)
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  driver: mongo\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
