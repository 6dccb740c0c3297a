package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixcore/pixbridge/internal/errors"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	return path
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "pixbridge.yaml", `
format: json
storage:
  dir: /data/pixcore
bridge:
  transport: streamable_http
  http:
    addr: "127.0.0.1:9900"
    auth_token: "keyring:bridge_token"
`)

	f, got, be := LoadConfig(Options{ConfigPath: path})
	if be != nil {
		t.Fatalf("unexpected error: %v", be)
	}
	if got != path {
		t.Errorf("config path = %q, want %q", got, path)
	}
	if f.Format != "json" {
		t.Errorf("format = %q, want json", f.Format)
	}
	if f.Storage.Dir != "/data/pixcore" {
		t.Errorf("storage.dir = %q", f.Storage.Dir)
	}
	if f.Bridge.Transport != "streamable_http" {
		t.Errorf("bridge.transport = %q", f.Bridge.Transport)
	}
	if f.Bridge.HTTP.AuthToken != "keyring:bridge_token" {
		t.Errorf("bridge.http.auth_token = %q", f.Bridge.HTTP.AuthToken)
	}
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	_, _, be := LoadConfig(Options{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")})
	if be == nil || be.Code != errors.CodeCfgNotFound {
		t.Fatalf("expected PIXBRIDGE_CFG_NOT_FOUND, got %v", be)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "pixbridge.yaml", "format: [unclosed")

	_, _, be := LoadConfig(Options{ConfigPath: path})
	if be == nil || be.Code != errors.CodeCfgInvalid {
		t.Fatalf("expected PIXBRIDGE_CFG_INVALID, got %v", be)
	}
}

func TestLoadConfig_WorkDirDefault(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, "pixbridge.yaml", "format: yaml\n")

	f, path, be := LoadConfig(Options{WorkDir: workDir, HomeDir: t.TempDir()})
	if be != nil {
		t.Fatalf("unexpected error: %v", be)
	}
	if path != filepath.Join(workDir, "pixbridge.yaml") {
		t.Errorf("path = %q", path)
	}
	if f.Format != "yaml" {
		t.Errorf("format = %q, want yaml", f.Format)
	}
}

func TestLoadConfig_HomeDirFallback(t *testing.T) {
	workDir := t.TempDir()
	homeDir := t.TempDir()
	writeConfig(t, homeDir, filepath.Join(".config", "pixbridge", "pixbridge.yaml"), "format: csv\n")

	f, _, be := LoadConfig(Options{WorkDir: workDir, HomeDir: homeDir})
	if be != nil {
		t.Fatalf("unexpected error: %v", be)
	}
	if f.Format != "csv" {
		t.Errorf("format = %q, want csv", f.Format)
	}
}

func TestLoadConfig_NoFileIsNotAnError(t *testing.T) {
	f, path, be := LoadConfig(Options{WorkDir: t.TempDir(), HomeDir: t.TempDir()})
	if be != nil {
		t.Fatalf("missing config should not be an error, got %v", be)
	}
	if path != "" {
		t.Errorf("path should be empty, got %q", path)
	}
	if f.Format != "" {
		t.Errorf("expected zero-value config, got %+v", f)
	}
}
