package main

import (
	"os"

	"github.com/pixcore/pixbridge/internal/app"
	"github.com/pixcore/pixbridge/internal/errors"
	"github.com/pixcore/pixbridge/internal/output"
)

func main() {
	exit := run()
	os.Exit(exit)
}

// run is the main entry point
func run() int {
	// Initialize application
	a := app.New(version, commit, date)
	w := output.New(os.Stdout, os.Stderr)

	// Create root command
	root := NewRootCommand()

	// Add subcommands
	root.AddCommand(NewSpecCommand(&a, &w))
	root.AddCommand(NewVersionCommand(&a, &w))
	root.AddCommand(NewServeCommand())
	root.AddCommand(NewSecretCommand(&w))
	root.AddCommand(NewFSCommand(&w))
	root.AddCommand(NewInfoCommand(&w))

	// Execute and handle errors
	if err := root.Execute(); err != nil {
		be := normalizeErr(err)
		format := resolveFormatForError(GlobalConfig.FormatStr)
		_ = w.WriteError(format, be)
		return int(errors.ExitCodeFor(be.Code))
	}

	return int(errors.ExitOK)
}
