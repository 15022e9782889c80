package vsh

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure kinds a shell session can surface.
// Callers distinguish them with errors.Is; the concrete error usually wraps
// one of these with the offending path or token.
//
// Example usage:
//
//	_, _, err := tree.Resolve("docs/missing", "/")
//	if errors.Is(err, vsh.ErrPathNotFound) {
//	    // report "no such file or directory"
//	}
var (
	// ErrParse indicates malformed quoting in a command line.
	ErrParse = errors.New("parse error")

	// ErrPathNotFound indicates a path does not name a node of the expected kind.
	ErrPathNotFound = errors.New("no such file or directory")

	// ErrNotADirectory indicates a path resolved to a file where a directory
	// was required. errors.Is also matches it against ErrPathNotFound.
	ErrNotADirectory error = notADirectoryError{}

	// ErrCommandNotFound indicates an unknown command token.
	ErrCommandNotFound = errors.New("command not found")

	// ErrSourceUnavailable indicates a named VFS description or script could not be read.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedSource indicates a VFS description failed structural validation.
	ErrMalformedSource = errors.New("malformed source")

	// ErrDecode indicates stored file content could not be decoded to text.
	ErrDecode = errors.New("cannot decode file content")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

type notADirectoryError struct{}

func (notADirectoryError) Error() string { return "not a directory" }

func (notADirectoryError) Is(target error) bool { return target == ErrPathNotFound }

// usagePatterns are fragments of cobra/pflag errors that signal a CLI misuse.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrInvalidConfig) {
		return ExitConfigError
	}

	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
