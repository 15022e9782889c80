package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/vsh/internal/shell"
)

// Shell is the interactive prompt. It runs inline: finished commands and
// their output are printed above the program, so the terminal's own
// scrollback holds the transcript and only the input line is redrawn.
type Shell struct {
	session   *shell.Session
	completer *shell.Completer
	input     textinput.Model
	keys      KeyMap
	banner    bool
	showHelp  bool
	exited    bool
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithBanner prints the welcome banner when the program starts.
func WithBanner(enabled bool) ShellOption {
	return func(s *Shell) { s.banner = enabled }
}

// WithHelp shows key help under the input line.
func WithHelp(enabled bool) ShellOption {
	return func(s *Shell) { s.showHelp = enabled }
}

// NewShell creates the prompt model for session.
func NewShell(session *shell.Session, opts ...ShellOption) Shell {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 4096
	ti.Focus()

	s := Shell{
		session:   session,
		completer: shell.NewCompleter(session.Interpreter()),
		input:     ti,
		keys:      DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Init implements tea.Model.
func (s Shell) Init() tea.Cmd {
	if s.banner {
		return tea.Batch(textinput.Blink, tea.Println(BannerStyle.Render(s.session.Banner())))
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (s Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch {
	case key.Matches(keyMsg, s.keys.Quit):
		s.exited = true
		return s, tea.Quit

	case key.Matches(keyMsg, s.keys.Submit):
		return s.submit()

	case key.Matches(keyMsg, s.keys.HistoryPrev):
		if line, ok := s.session.History().Prev(); ok {
			s.setInput(line)
		}
		return s, nil

	case key.Matches(keyMsg, s.keys.HistoryNext):
		if line, ok := s.session.History().Next(); ok {
			s.setInput(line)
		}
		return s, nil

	case key.Matches(keyMsg, s.keys.Complete):
		s.input.SetValue(s.completer.Next(s.input.Value(), s.session.Cwd()))
		s.input.CursorEnd()
		return s, nil

	case key.Matches(keyMsg, s.keys.Clear):
		return s, tea.ClearScreen
	}

	s.completer.Reset()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s Shell) submit() (tea.Model, tea.Cmd) {
	line := s.input.Value()
	s.input.Reset()
	s.completer.Reset()

	if strings.TrimSpace(line) == "" {
		return s, nil
	}

	prompt := s.session.Prompt()
	res := s.session.Submit(line)

	cmds := make([]tea.Cmd, 0, 3)
	for _, l := range TranscriptLines(prompt, line, res) {
		cmds = append(cmds, tea.Println(l))
	}
	if res.Exit {
		s.exited = true
		cmds = append(cmds, tea.Quit)
	}
	return s, tea.Sequence(cmds...)
}

func (s *Shell) setInput(line string) {
	s.input.SetValue(line)
	s.input.CursorEnd()
	s.completer.Reset()
}

// View implements tea.Model.
func (s Shell) View() string {
	if s.exited {
		return ""
	}

	var b strings.Builder
	b.WriteString(PromptStyle.Render(s.session.Prompt()))
	b.WriteString(s.input.View())
	if s.showHelp {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render(s.keys.HelpText()))
	}
	return b.String()
}

// Value returns the text currently in the input line.
func (s Shell) Value() string { return s.input.Value() }

// Exited reports whether the session asked to stop.
func (s Shell) Exited() bool { return s.exited }

// TranscriptLines renders a submitted line and its result the way they
// appear in the scrollback: the prompt with the line, then the output or the
// error message when there is one.
func TranscriptLines(prompt, line string, res shell.Result) []string {
	lines := []string{PromptStyle.Render(prompt) + InputStyle.Render(strings.TrimSpace(line))}

	text := res.Text()
	if text == "" {
		return lines
	}
	if res.Err != nil {
		return append(lines, ErrorStyle.Render(text))
	}
	return append(lines, text)
}
