package shell

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/vsh/internal/logging"
	"github.com/vvka-141/vsh/internal/vfs"
	"github.com/vvka-141/vsh/pkg/vsh"
)

// Session owns the mutable parts of an interactive shell: the interpreter
// state and the command history. Submit is the only operation that changes
// them, and it must not be called concurrently.
type Session struct {
	id      uuid.UUID
	interp  *Interpreter
	state   State
	history *History
	user    string
	host    string
	logger  vsh.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithIdentity sets the user and host shown in the prompt.
func WithIdentity(user, host string) SessionOption {
	return func(s *Session) {
		if user != "" {
			s.user = user
		}
		if host != "" {
			s.host = host
		}
	}
}

// WithHistoryLimit bounds the number of remembered command lines.
func WithHistoryLimit(limit int) SessionOption {
	return func(s *Session) {
		s.history = NewHistory(limit)
	}
}

// WithLogger routes session diagnostics to logger.
func WithLogger(logger vsh.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession starts a session at the root of interp's tree.
func NewSession(interp *Interpreter, opts ...SessionOption) *Session {
	s := &Session{
		id:      uuid.New(),
		interp:  interp,
		state:   InitialState(),
		history: NewHistory(vsh.DefaultHistoryLimit),
		user:    vsh.DefaultUser,
		host:    vsh.DefaultHost,
		logger:  logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Verbose("Session %s started as %s@%s", s.id, s.user, s.host)
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Interpreter returns the interpreter the session feeds.
func (s *Session) Interpreter() *Interpreter { return s.interp }

// State returns a copy of the current interpreter state.
func (s *Session) State() State { return s.state }

// Cwd returns the current directory.
func (s *Session) Cwd() string { return s.state.Cwd }

// History returns the session's command log.
func (s *Session) History() *History { return s.history }

// Prompt renders "user@host:dir$ " where dir is the last segment of the
// current directory.
func (s *Session) Prompt() string {
	return fmt.Sprintf("%s@%s:%s$ ", s.user, s.host, vfs.Base(s.state.Cwd))
}

// Echo renders line as it appears after the prompt in a transcript.
func (s *Session) Echo(line string) string {
	return s.Prompt() + strings.TrimSpace(line)
}

// Submit records line in the history and executes it. Blank lines are
// ignored entirely: no history entry and an empty result.
func (s *Session) Submit(line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{}
	}

	s.history.Add(line)

	next, res := s.interp.Execute(s.state, line)
	if next.Cwd != s.state.Cwd {
		s.logger.Verbose("Session %s: cwd %s -> %s", s.id, s.state.Cwd, next.Cwd)
	}
	s.state = next
	return res
}

// Banner is the greeting printed when an interactive session opens.
func (s *Session) Banner() string {
	var b strings.Builder
	b.WriteString("Welcome to vsh, a shell over a virtual filesystem.\n")
	b.WriteString("Available commands:\n")
	for _, name := range s.interp.Commands() {
		fmt.Fprintf(&b, "  %-16s %s\n", usage[name], summary[name])
	}
	b.WriteString("\nArguments may be quoted: cd \"my dir\"")
	return b.String()
}

var usage = map[string]string{
	"cd":   "cd [directory]",
	"exit": "exit",
	"ls":   "ls [path]",
}

var summary = map[string]string{
	"cd":   "change the current directory (default: /)",
	"exit": "leave the emulator",
	"ls":   "list directory contents",
}
