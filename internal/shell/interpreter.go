package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vvka-141/vsh/internal/vfs"
	"github.com/vvka-141/vsh/pkg/vsh"
)

// State is the interpreter state threaded through every command.
// Cwd is always the absolute path of an existing directory.
type State struct {
	Cwd string
}

// InitialState places the cursor at the root.
func InitialState() State {
	return State{Cwd: vsh.RootName}
}

// Result is the outcome of one command line.
type Result struct {
	// Output is the text to display on success, possibly empty.
	Output string
	// Err is set when the command failed. Failures are never fatal.
	Err error
	// Exit asks the caller to end the session loop.
	Exit bool
}

// Text returns what should be displayed for r.
func (r Result) Text() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Output
}

type builtin func(i *Interpreter, st State, args []string) (State, Result)

var builtins = map[string]builtin{
	"cd":   (*Interpreter).cd,
	"exit": (*Interpreter).exit,
	"ls":   (*Interpreter).ls,
}

// Interpreter dispatches command lines against a read-only tree.
// It holds no mutable state; callers own the State.
type Interpreter struct {
	tree *vfs.Tree
}

// NewInterpreter creates an interpreter over tree.
func NewInterpreter(tree *vfs.Tree) *Interpreter {
	if tree == nil {
		tree = vfs.EmptyTree()
	}
	return &Interpreter{tree: tree}
}

// Tree returns the filesystem the interpreter navigates.
func (i *Interpreter) Tree() *vfs.Tree { return i.tree }

// Commands returns the built-in command names in lexical order.
func (i *Interpreter) Commands() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs one command line and returns the next state. On any failure
// the returned state equals st.
func (i *Interpreter) Execute(st State, line string) (State, Result) {
	cmd, err := Tokenize(line)
	if err != nil {
		return st, Result{Err: err}
	}
	if cmd.IsEmpty() {
		return st, Result{}
	}

	fn, ok := builtins[cmd.Name]
	if !ok {
		return st, Result{Err: fmt.Errorf("%s: %w", cmd.Name, vsh.ErrCommandNotFound)}
	}
	return fn(i, st, cmd.Args)
}

func (i *Interpreter) exit(st State, _ []string) (State, Result) {
	return st, Result{Exit: true}
}

func (i *Interpreter) ls(st State, args []string) (State, Result) {
	target := st.Cwd
	if len(args) > 0 {
		target = args[0]
	}

	dir, _, err := i.tree.ResolveDir(target, st.Cwd)
	if err != nil {
		return st, Result{Err: fmt.Errorf("ls: %w", err)}
	}
	return st, Result{Output: strings.Join(dir.Names(), "  ")}
}

func (i *Interpreter) cd(st State, args []string) (State, Result) {
	if len(args) == 0 {
		return State{Cwd: vsh.RootName}, Result{}
	}

	_, abs, err := i.tree.ResolveDir(args[0], st.Cwd)
	if err != nil {
		return st, Result{Err: fmt.Errorf("cd: %w", err)}
	}
	return State{Cwd: abs}, Result{}
}
