package main

import (
	"github.com/spf13/cobra"

	"github.com/pixcore/pixbridge/internal/app"
	"github.com/pixcore/pixbridge/internal/output"
)

// NewVersionCommand creates the version command
func NewVersionCommand(a *app.App, w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}
			return w.WriteOK(format, a.VersionInfo())
		},
	}
}
