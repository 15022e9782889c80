package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestCompleteDescriptionFiles(t *testing.T) {
	cmd := &cobra.Command{}

	exts, directive := completeDescriptionFiles(cmd, nil, "")
	if directive != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("expected ShellCompDirectiveFilterFileExt, got %v", directive)
	}
	if len(exts) != len(descriptionExtensions) {
		t.Errorf("expected %d extensions, got %d", len(descriptionExtensions), len(exts))
	}
}

func TestCompleteScriptFiles(t *testing.T) {
	cmd := &cobra.Command{}

	completions, directive := completeScriptFiles(cmd, nil, "")
	if len(completions) != 0 {
		t.Errorf("expected no fixed completions, got %v", completions)
	}
	if directive != cobra.ShellCompDirectiveDefault {
		t.Errorf("expected ShellCompDirectiveDefault, got %v", directive)
	}
}

func TestRootCmd_FlagCompletionsRegistered(t *testing.T) {
	for _, name := range []string{"vfs", "config", "script"} {
		if _, ok := rootCmd.GetFlagCompletionFunc(name); !ok {
			t.Errorf("no completion registered for --%s", name)
		}
	}
}
