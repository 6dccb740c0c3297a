package main

import (
	"github.com/spf13/cobra"

	"github.com/pixcore/pixbridge/internal/credstore"
	"github.com/pixcore/pixbridge/internal/output"
)

// NewSecretCommand creates the secret command group
func NewSecretCommand(w *output.Writer) *cobra.Command {
	secretCmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage provider secrets in the OS secret facility",
	}

	secretCmd.AddCommand(newSecretSetCommand(w))
	secretCmd.AddCommand(newSecretGetCommand(w))
	secretCmd.AddCommand(newSecretRmCommand(w))
	secretCmd.AddCommand(newSecretHasCommand(w))

	return secretCmd
}

func newSecretSetCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "set PROVIDER",
		Short: "Store a secret for a provider (prompts without echo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			value, be := readSecretValue("Secret for " + args[0] + ": ")
			if be != nil {
				return be
			}

			store := credstore.New(credstore.Options{})
			if be := store.Set(args[0], value); be != nil {
				return be
			}
			return w.WriteOK(format, map[string]any{"provider": args[0]})
		},
	}
}

func newSecretGetCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "get PROVIDER",
		Short: "Fetch the secret for a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			store := credstore.New(credstore.Options{})
			val, found, be := store.Get(args[0])
			if be != nil {
				return be
			}
			// 缺失是正常结果，不是错误
			if !found {
				return w.WriteOK(format, map[string]any{"provider": args[0], "found": false})
			}
			return w.WriteOK(format, map[string]any{"provider": args[0], "found": true, "secret": val})
		},
	}
}

func newSecretRmCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "rm PROVIDER",
		Short: "Remove the secret for a provider (succeeds even if absent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			store := credstore.New(credstore.Options{})
			if be := store.Delete(args[0]); be != nil {
				return be
			}
			return w.WriteOK(format, map[string]any{"provider": args[0], "removed": true})
		},
	}
}

func newSecretHasCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "has PROVIDER",
		Short: "Report whether a secret exists for a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			store := credstore.New(credstore.Options{})
			exists, be := store.Has(args[0])
			if be != nil {
				return be
			}
			return w.WriteOK(format, map[string]any{"provider": args[0], "exists": exists})
		},
	}
}
