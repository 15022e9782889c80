package vsh_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/vsh/pkg/vsh"
)

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown flag", errors.New("unknown flag --foo"), vsh.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), vsh.ExitUsageError},
		{"accepts args", errors.New("accepts 0 arg(s), received 2"), vsh.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--verbose\""), vsh.ExitUsageError},
		{"general error", errors.New("something went wrong"), vsh.ExitGeneralError},
		{"nil error", nil, vsh.ExitSuccess},
		{"invalid config", fmt.Errorf("vsh.yaml: %w", vsh.ErrInvalidConfig), vsh.ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vsh.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrNotADirectory_IsPathNotFound(t *testing.T) {
	err := fmt.Errorf("ls: /file1.txt: %w", vsh.ErrNotADirectory)
	if !errors.Is(err, vsh.ErrPathNotFound) {
		t.Errorf("expected %v to match ErrPathNotFound", err)
	}
	if !errors.Is(err, vsh.ErrNotADirectory) {
		t.Errorf("expected %v to match ErrNotADirectory", err)
	}
}
