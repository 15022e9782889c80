package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how a vsh session talks to the user.
type Mode int

const (
	// ModeNonInteractive reads plain lines from stdin: pipes, CI, dumb terminals.
	ModeNonInteractive Mode = iota
	// ModeInteractive runs the full-screen-aware shell UI.
	ModeInteractive
)

// DetectMode determines whether vsh should run the interactive shell UI.
//
// Returns ModeNonInteractive if:
//   - stdin is not a terminal (piped input, CI/CD)
//   - VSH_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - TERM=dumb
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv("VSH_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("TERM") == "dumb" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
