// Package script replays command files through a shell session.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/vvka-141/vsh/internal/logging"
	"github.com/vvka-141/vsh/internal/shell"
	"github.com/vvka-141/vsh/pkg/vsh"
)

// maxLineSize bounds a single script line.
const maxLineSize = 1024 * 1024

// Summary describes one replay.
type Summary struct {
	Executed int   // lines handed to the session
	Failed   int   // executed lines whose result carried an error
	Skipped  int   // blank and comment lines
	Exited   bool  // the script ran "exit"; the session should end
	Err      error // set when the source could not be opened or read
}

// Runner feeds script lines into a Session, writing a transcript to out.
// A failing line is reported and the replay moves on to the next one.
type Runner struct {
	session *shell.Session
	fs      afero.Fs
	out     io.Writer
	logger  vsh.Logger
}

// NewRunner creates a runner. Scripts are opened from fs.
func NewRunner(session *shell.Session, fs afero.Fs, out io.Writer, logger vsh.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Runner{
		session: session,
		fs:      fs,
		out:     out,
		logger:  logger,
	}
}

// Run replays the script at source. If it cannot be opened a single
// diagnostic is logged and no line runs.
func (r *Runner) Run(source string) Summary {
	f, err := r.fs.Open(source)
	if err != nil {
		err = fmt.Errorf("failed to open script %s: %w: %v", source, vsh.ErrSourceUnavailable, err)
		r.logger.Error("%v", err)
		return Summary{Err: err}
	}
	defer f.Close()

	r.logger.Verbose("Running script %s", source)
	sum := r.RunLines(f)
	r.logger.Verbose("Script %s: %d executed, %d failed, %d skipped", source, sum.Executed, sum.Failed, sum.Skipped)
	return sum
}

// RunLines replays every line read from in. Blank lines and lines whose
// first non-blank character is '#' are skipped. Replay stops early only
// when a line asks the session to exit.
func (r *Runner) RunLines(in io.Reader) Summary {
	var sum Summary

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			sum.Skipped++
			continue
		}

		fmt.Fprintln(r.out, r.session.Echo(line))
		res := r.runLine(line)
		sum.Executed++

		if text := res.Text(); text != "" {
			fmt.Fprintln(r.out, text)
		}
		if res.Err != nil {
			sum.Failed++
		}
		if res.Exit {
			sum.Exited = true
			break
		}
	}

	if err := scanner.Err(); err != nil {
		err = fmt.Errorf("failed to read script: %w: %v", vsh.ErrSourceUnavailable, err)
		r.logger.Error("%v", err)
		sum.Err = err
	}
	return sum
}

// runLine executes one line, turning a panic into a failed result so the
// remaining lines still run.
func (r *Runner) runLine(line string) (res shell.Result) {
	defer func() {
		if p := recover(); p != nil {
			res = shell.Result{Err: fmt.Errorf("%s: internal error: %v", line, p)}
		}
	}()
	return r.session.Submit(line)
}
