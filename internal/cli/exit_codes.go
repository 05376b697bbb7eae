package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/lfenv/lfenv/internal/ansi"
	"github.com/lfenv/lfenv/internal/config"
	"github.com/lfenv/lfenv/internal/emit"
)

// Exit codes for the lfenv CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates an error without a more specific code
	ExitFailure = 1

	// ExitInvalidConfig indicates a missing, unreadable or invalid config file
	ExitInvalidConfig = 2

	// ExitInvalidColor indicates a malformed hex color or unknown decoration
	ExitInvalidColor = 3

	// ExitOutputFailed indicates the exports could not be written
	ExitOutputFailed = 4

	// ExitUnsupportedKeys indicates check --strict found unsupported keys
	ExitUnsupportedKeys = 5
)

// exitError carries an explicit exit code alongside its cause.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit code %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// NewExitError wraps err with the given exit code.
func NewExitError(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode returns the exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var validationErr *config.ValidationError
	if errors.As(err, &validationErr) {
		return ExitInvalidConfig
	}
	var formatErr *ansi.FormatError
	if errors.As(err, &formatErr) {
		return ExitInvalidColor
	}
	var outputErr *emit.OutputError
	if errors.As(err, &outputErr) {
		return ExitOutputFailed
	}
	return ExitFailure
}

// PrintError writes err to w as a single "Error: ..." line.
func PrintError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s %v\n", red("Error:"), err)
}
