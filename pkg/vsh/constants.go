package vsh

// Exit codes for the vsh host process.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
//
// Command failures inside a session never produce a non-zero exit; they are
// printed and the session continues.
const (
	ExitSuccess      = 0  // Session ended normally
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (unknown flags, extra args)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration file or values
)

const (
	// RootName is the canonical name and path of the root directory.
	RootName = "/"

	// Separator is the canonical path separator inside the VFS.
	Separator = "/"

	// ConfigFileName is the optional project configuration file.
	ConfigFileName = "vsh.yaml"

	// DefaultHistoryLimit bounds the command history of a session.
	DefaultHistoryLimit = 500

	// DefaultUser and DefaultHost are used in the prompt when the OS cannot
	// tell us who or where we are.
	DefaultUser = "user"
	DefaultHost = "localhost"
)
