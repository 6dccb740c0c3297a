package main

import (
	"github.com/spf13/cobra"

	"github.com/pixcore/pixbridge/internal/output"
	"github.com/pixcore/pixbridge/internal/sysinfo"
)

// NewInfoCommand creates the info command
func NewInfoCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print host system information",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}
			return w.WriteOK(format, sysinfo.Describe())
		},
	}
}
