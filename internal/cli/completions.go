package cli

import (
	"github.com/spf13/cobra"
)

// descriptionExtensions are the file types the loader reads.
var descriptionExtensions = []string{"json", "yaml", "yml"}

// completeDescriptionFiles provides shell completion for --vfs and --config.
func completeDescriptionFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return descriptionExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeScriptFiles provides shell completion for --script.
func completeScriptFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveDefault
}

func registerFlagCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("vfs", completeDescriptionFiles)
	_ = cmd.RegisterFlagCompletionFunc("config", completeDescriptionFiles)
	_ = cmd.RegisterFlagCompletionFunc("script", completeScriptFiles)
}
