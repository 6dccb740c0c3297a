package config

import (
	"github.com/pixcore/pixbridge/internal/errors"
)

// Resolve 合并 config/format：CLI > ENV > Config > 默认。
func Resolve(opts Options) (Resolved, *errors.BridgeError) {
	cfg, cfgPath, be := LoadConfig(opts)
	if be != nil {
		return Resolved{}, be
	}

	// format：--format > PIXBRIDGE_FORMAT > file.format > auto
	format := "auto"
	if cfg.Format != "" {
		format = cfg.Format
	}
	if opts.EnvFormat != "" {
		format = opts.EnvFormat
	}
	if opts.CLIFormatSet {
		format = opts.CLIFormat
	}

	return Resolved{ConfigPath: cfgPath, Format: format, File: cfg}, nil
}
