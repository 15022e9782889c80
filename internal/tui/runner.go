package tui

import (
	"bufio"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/vsh/internal/shell"
)

// RunShell runs the interactive prompt until the user exits.
// The program runs inline rather than on the alternate screen so the
// session transcript stays in the terminal afterwards.
func RunShell(session *shell.Session, opts ...ShellOption) error {
	p := tea.NewProgram(NewShell(session, opts...))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("shell UI failed: %w", err)
	}
	return nil
}

// RunPlain is the line-mode fallback used when stdin or stdout is not a
// terminal. It prints a prompt, reads one line, prints the result, and
// stops on "exit" or end of input.
func RunPlain(session *shell.Session, in io.Reader, out io.Writer, banner bool) error {
	if banner {
		fmt.Fprintln(out, session.Banner())
		fmt.Fprintln(out)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, session.Prompt())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		res := session.Submit(scanner.Text())
		if text := res.Text(); text != "" {
			fmt.Fprintln(out, text)
		}
		if res.Exit {
			return nil
		}
	}
}
