package config

import (
	"testing"
)

func TestResolve_FormatPrecedence(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, "pixbridge.yaml", "format: yaml\n")

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "config only",
			opts: Options{WorkDir: workDir, HomeDir: t.TempDir()},
			want: "yaml",
		},
		{
			name: "env beats config",
			opts: Options{WorkDir: workDir, HomeDir: t.TempDir(), EnvFormat: "csv"},
			want: "csv",
		},
		{
			name: "cli beats env",
			opts: Options{WorkDir: workDir, HomeDir: t.TempDir(), EnvFormat: "csv", CLIFormat: "json", CLIFormatSet: true},
			want: "json",
		},
		{
			name: "default when nothing set",
			opts: Options{WorkDir: t.TempDir(), HomeDir: t.TempDir()},
			want: "auto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, be := Resolve(tt.opts)
			if be != nil {
				t.Fatalf("unexpected error: %v", be)
			}
			if r.Format != tt.want {
				t.Errorf("format = %q, want %q", r.Format, tt.want)
			}
		})
	}
}

func TestResolve_CarriesFile(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, "pixbridge.yaml", `
bridge:
  transport: stdio
storage:
  dir: /srv/pixcore
`)

	r, be := Resolve(Options{WorkDir: workDir, HomeDir: t.TempDir()})
	if be != nil {
		t.Fatalf("unexpected error: %v", be)
	}
	if r.File.Bridge.Transport != "stdio" {
		t.Errorf("transport = %q", r.File.Bridge.Transport)
	}
	if r.File.Storage.Dir != "/srv/pixcore" {
		t.Errorf("storage.dir = %q", r.File.Storage.Dir)
	}
}
