package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vvka-141/vsh/internal/config"
	"github.com/vvka-141/vsh/internal/logging"
	"github.com/vvka-141/vsh/internal/script"
	"github.com/vvka-141/vsh/internal/shell"
	"github.com/vvka-141/vsh/internal/tui"
	"github.com/vvka-141/vsh/internal/vfs/loader"
	"github.com/vvka-141/vsh/pkg/vsh"
)

var rootCmd = &cobra.Command{
	Use:   "vsh",
	Short: "Shell emulator over a virtual filesystem",
	Long: `vsh opens a shell session on a synthetic filesystem loaded from a
JSON or YAML description instead of the real disk.

Commands inside the session:
  ls [path]        list a directory (default: current directory)
  cd [directory]   change directory (default: /)
  exit             end the session

Without --vfs the built-in demonstration tree is used. A named description
that is missing or malformed is reported and replaced by an empty root.

Configuration precedence: flags > environment > vsh.yaml > defaults.
Environment: VSH_VFS, VSH_SCRIPT, VSH_USER, VSH_HOST, VSH_NON_INTERACTIVE=1.
A .env file in the working directory is loaded first.

Examples:
  # Explore the built-in tree
  vsh

  # Load a tree and replay a script before the prompt opens
  vsh --vfs ./fixtures/tree.json --script ./fixtures/demo.vsh

  # Show key bindings under the prompt
  vsh --key-help

  # Pipe commands in line mode
  printf 'cd docs\nls\n' | vsh --plain

Exit Codes:
  0  - Session ended normally
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

type rootFlagValues struct {
	vfs        string
	script     string
	configPath string
	noBanner   bool
	keyHelp    bool
	plain      bool
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")

	rootCmd.Flags().StringVar(&rootFlags.vfs, "vfs", "",
		"Path to the VFS description (JSON or YAML)\n"+
			"Precedence: --vfs > $VSH_VFS > vsh.yaml > built-in tree")
	rootCmd.Flags().StringVar(&rootFlags.script, "script", "",
		"Script to replay before the prompt opens\n"+
			"Precedence: --script > $VSH_SCRIPT > vsh.yaml")
	rootCmd.Flags().StringVar(&rootFlags.configPath, "config", "",
		"Path to the configuration file (default: ./"+vsh.ConfigFileName+" if present)")
	rootCmd.Flags().BoolVar(&rootFlags.noBanner, "no-banner", false,
		"Do not print the welcome banner")
	rootCmd.Flags().BoolVar(&rootFlags.keyHelp, "key-help", false,
		"Show key bindings under the interactive prompt")
	rootCmd.Flags().BoolVar(&rootFlags.plain, "plain", false,
		"Force line mode even on a terminal")

	registerFlagCompletions(rootCmd)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// host bundles what a session needs from the outside world.
type host struct {
	fs          afero.Fs
	in          io.Reader
	out         io.Writer
	getenv      func(string) string
	identity    config.Fallback
	interactive bool
}

func runRoot(cmd *cobra.Command, _ []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	if err := godotenv.Load(); err == nil {
		logger.Verbose("Loaded environment from .env")
	}

	h := host{
		fs:          afero.NewOsFs(),
		in:          cmd.InOrStdin(),
		out:         cmd.OutOrStdout(),
		getenv:      os.Getenv,
		identity:    osIdentity(),
		interactive: !rootFlags.plain && tui.IsInteractive(),
	}
	return runSession(h, rootFlags, logger)
}

// runSession wires config, loader, session, script replay and UI together.
func runSession(h host, flags rootFlagValues, logger vsh.Logger) error {
	fileCfg, err := loadFileConfig(h.fs, flags.configPath, logger)
	if err != nil {
		return err
	}

	settings := config.Resolve(config.Flags{
		VFS:      flags.vfs,
		Script:   flags.script,
		NoBanner: flags.noBanner,
		KeyHelp:  flags.keyHelp,
	}, h.getenv, fileCfg, h.identity)

	tree := loader.NewLoader(h.fs, logger).Load(settings.VFS)

	session := shell.NewSession(shell.NewInterpreter(tree),
		shell.WithIdentity(settings.User, settings.Host),
		shell.WithHistoryLimit(settings.HistoryLimit),
		shell.WithLogger(logger),
	)

	if settings.Script != "" {
		sum := script.NewRunner(session, h.fs, h.out, logger).Run(settings.Script)
		if sum.Exited {
			return nil
		}
	}

	if h.interactive {
		return tui.RunShell(session, shellOptions(settings)...)
	}
	return tui.RunPlain(session, h.in, h.out, settings.Banner)
}

// shellOptions maps settings onto the interactive prompt.
func shellOptions(s config.Settings) []tui.ShellOption {
	return []tui.ShellOption{
		tui.WithBanner(s.Banner),
		tui.WithHelp(s.KeyHelp),
	}
}

// loadFileConfig loads vsh.yaml. A missing default file is not an error; a
// missing file named with --config is.
func loadFileConfig(fs afero.Fs, path string, logger vsh.Logger) (*config.FileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = vsh.ConfigFileName
	}

	cfg, err := config.Load(fs, path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !explicit {
			return nil, nil
		}
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%s: %w: file not found", path, vsh.ErrInvalidConfig)
		}
		return nil, err
	}
	logger.Verbose("Loaded configuration from %s", path)
	return cfg, nil
}

// osIdentity reports the OS user and hostname for the prompt.
func osIdentity() config.Fallback {
	var id config.Fallback
	if u, err := user.Current(); err == nil {
		id.User = u.Username
	}
	if h, err := os.Hostname(); err == nil {
		id.Host = h
	}
	return id
}
