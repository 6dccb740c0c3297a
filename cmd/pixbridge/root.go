package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pixcore/pixbridge/internal/config"
	"github.com/pixcore/pixbridge/internal/errors"
)

// Build-time variables (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Config holds the resolved configuration
type Config struct {
	FormatStr string
	ConfigStr string
	Resolved  config.Resolved
}

// GlobalConfig holds the global configuration state
var GlobalConfig = &Config{}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pixbridge",
		Short:         "Host access bridge for the Pixcore desktop app",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// CLI > ENV > Config
			formatSet := cmd.Flags().Changed("format")
			configSet := cmd.Flags().Changed("config")
			if configSet && GlobalConfig.ConfigStr == "" {
				return errors.New(errors.CodeCfgInvalid, "config path is empty", nil)
			}

			r, be := config.Resolve(config.Options{
				ConfigPath:   GlobalConfig.ConfigStr,
				CLIFormat:    GlobalConfig.FormatStr,
				CLIFormatSet: formatSet,
				EnvFormat:    os.Getenv("PIXBRIDGE_FORMAT"),
				WorkDir:      "",
				HomeDir:      "",
			})
			if be != nil {
				return be
			}
			GlobalConfig.Resolved = r
			GlobalConfig.FormatStr = r.Format
			return nil
		},
	}

	root.PersistentFlags().StringVar(&GlobalConfig.ConfigStr, "config", "", "Config file path (YAML); default: ./pixbridge.yaml or $HOME/.config/pixbridge/pixbridge.yaml")
	root.PersistentFlags().StringVarP(&GlobalConfig.FormatStr, "format", "f", "auto", "Output format: json|yaml|table|csv|auto")

	return root
}
