package app

import (
	"github.com/pixcore/pixbridge/internal/bridge"
	"github.com/pixcore/pixbridge/internal/errors"
	"github.com/pixcore/pixbridge/internal/output"
	"github.com/pixcore/pixbridge/internal/spec"
)

type App struct {
	Version string
	Commit  string
	Date    string
}

func New(version, commit, date string) App {
	return App{Version: version, Commit: commit, Date: date}
}

// BuildSpec 导出命令与桥接操作目录，供前端/脚本发现可用操作。
func (a App) BuildSpec() spec.Spec {
	globalFlags := []spec.FlagSpec{
		{Name: "config", Default: "", Description: "Config file path (YAML); default: ./pixbridge.yaml or $HOME/.config/pixbridge/pixbridge.yaml"},
		{Name: "format", Shorthand: "f", Env: "PIXBRIDGE_FORMAT", Default: "auto", Description: "Output format: json|yaml|table|csv|auto"},
	}
	return spec.Spec{
		SchemaVersion: output.SchemaVersion,
		Commands: []spec.CommandSpec{
			{
				Name:        "spec",
				Description: "Export the bridge operation catalog",
				Flags:       globalFlags,
			},
			{
				Name:        "version",
				Description: "Print version information",
				Flags:       globalFlags,
			},
			{
				Name:        "serve",
				Description: "Serve the bridge operations to the frontend",
				Flags: append(globalFlags,
					spec.FlagSpec{Name: "transport", Env: "PIXBRIDGE_TRANSPORT", Default: bridge.TransportStdio, Description: "Bridge transport: stdio|streamable_http"},
					spec.FlagSpec{Name: "http-addr", Env: "PIXBRIDGE_HTTP_ADDR", Default: "127.0.0.1:8690", Description: "Streamable HTTP listen address"},
					spec.FlagSpec{Name: "http-auth-token", Env: "PIXBRIDGE_HTTP_AUTH_TOKEN", Default: "", Description: "Streamable HTTP auth token (required for streamable_http)"},
				),
			},
			{
				Name:        "secret",
				Description: "Manage provider secrets in the OS secret facility",
				Flags:       globalFlags,
			},
			{
				Name:        "fs",
				Description: "Filesystem diagnostics (storage path, writability, listing)",
				Flags:       globalFlags,
			},
			{
				Name:        "info",
				Description: "Print host system information",
				Flags:       globalFlags,
			},
		},
		Tools:      bridge.Catalog(),
		ErrorCodes: errors.AllCodes(),
	}
}

type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit,omitempty" yaml:"commit,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
}

func (a App) VersionInfo() VersionInfo {
	return VersionInfo{Version: a.Version, Commit: a.Commit, Date: a.Date}
}
