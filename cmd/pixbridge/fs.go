package main

import (
	"github.com/spf13/cobra"

	"github.com/pixcore/pixbridge/internal/fsops"
	"github.com/pixcore/pixbridge/internal/output"
)

// NewFSCommand creates the fs command group
func NewFSCommand(w *output.Writer) *cobra.Command {
	fsCmd := &cobra.Command{
		Use:   "fs",
		Short: "Filesystem diagnostics",
	}

	fsCmd.AddCommand(newFSStoragePathCommand(w))
	fsCmd.AddCommand(newFSEnsureCommand(w))
	fsCmd.AddCommand(newFSWritableCommand(w))
	fsCmd.AddCommand(newFSLsCommand(w))
	fsCmd.AddCommand(newFSExistsCommand(w))
	fsCmd.AddCommand(newFSSizeCommand(w))

	return fsCmd
}

func newFSStoragePathCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "storage-path",
		Short: "Resolve the default storage directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			path := GlobalConfig.Resolved.File.Storage.Dir
			if path == "" {
				p, be := fsops.DefaultStoragePath()
				if be != nil {
					return be
				}
				path = p
			}
			return w.WriteOK(format, map[string]any{"path": path})
		},
	}
}

func newFSEnsureCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure PATH",
		Short: "Create a directory and all missing ancestors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}
			if be := fsops.EnsureDirectory(args[0]); be != nil {
				return be
			}
			return w.WriteOK(format, map[string]any{"path": args[0], "ensured": true})
		},
	}
}

func newFSWritableCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "writable PATH",
		Short: "Probe whether a path is writable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}
			if be := fsops.CheckWritable(args[0]); be != nil {
				return be
			}
			return w.WriteOK(format, map[string]any{"path": args[0], "writable": true})
		},
	}
}

func newFSLsCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "ls PATH",
		Short: "List directory children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}
			entries, be := fsops.ListDirectory(args[0])
			if be != nil {
				return be
			}
			return w.WriteOK(format, map[string]any{"path": args[0], "entries": entries})
		},
	}
}

func newFSExistsCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "exists PATH",
		Short: "Report whether a path exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}
			return w.WriteOK(format, map[string]any{"path": args[0], "exists": fsops.FileExists(args[0])})
		},
	}
}

func newFSSizeCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "size PATH",
		Short: "Report the byte size of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}
			size, be := fsops.FileSize(args[0])
			if be != nil {
				return be
			}
			return w.WriteOK(format, map[string]any{"path": args[0], "size": size})
		},
	}
}
