package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/pixcore/pixbridge/internal/errors"
	"github.com/pixcore/pixbridge/internal/output"
)

// parseOutputFormat parses and validates the output format string
func parseOutputFormat(s string) (output.Format, error) {
	f := output.Format(s)
	if !output.IsValid(f) {
		return "", errors.New(errors.CodeCfgInvalid, "invalid output format", map[string]any{"format": s})
	}
	return resolveAuto(f), nil
}

// resolveFormatForError resolves the format for error output
func resolveFormatForError(s string) output.Format {
	f := output.Format(s)
	if !output.IsValid(f) {
		f = output.FormatAuto
	}
	return resolveAuto(f)
}

// resolveAuto resolves "auto" format to appropriate format based on TTY
func resolveAuto(f output.Format) output.Format {
	if f != output.FormatAuto {
		return f
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return output.FormatTable
	}
	return output.FormatJSON
}

// normalizeErr normalizes any error to BridgeError
func normalizeErr(err error) *errors.BridgeError {
	if be, ok := errors.As(err); ok {
		return be
	}
	// Preserve original error message
	return errors.Wrap(errors.CodeInternal, err.Error(), nil, err)
}

// readSecretValue reads a secret from the terminal without echo,
// or from piped stdin when there is no TTY.
func readSecretValue(prompt string) (string, *errors.BridgeError) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", errors.Wrap(errors.CodeIOFailure, "failed to read secret from terminal", nil, err)
		}
		return string(b), nil
	}

	r := bufio.NewReader(os.Stdin)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(errors.CodeIOFailure, "failed to read secret from stdin", nil, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
