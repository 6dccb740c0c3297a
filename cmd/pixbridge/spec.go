package main

import (
	"github.com/spf13/cobra"

	"github.com/pixcore/pixbridge/internal/app"
	"github.com/pixcore/pixbridge/internal/output"
)

// NewSpecCommand creates the spec command
func NewSpecCommand(a *app.App, w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "spec",
		Short: "Export the bridge operation catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}
			return w.WriteOK(format, a.BuildSpec())
		},
	}
}
