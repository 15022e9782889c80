package shell

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/vvka-141/vsh/pkg/vsh"
)

// Command is a tokenized command line.
type Command struct {
	Name string
	Args []string
}

// IsEmpty reports whether the line held no command at all.
func (c Command) IsEmpty() bool { return c.Name == "" }

// Tokenize splits line using shell quoting rules. Quoted substrings become
// single tokens; an unterminated quote or trailing escape yields vsh.ErrParse.
// '#' has no special meaning, so "#notes" is an ordinary word.
// A blank line yields an empty Command and no error.
func Tokenize(line string) (Command, error) {
	if strings.TrimSpace(line) == "" {
		return Command{}, nil
	}

	parts, err := shellquote.Split(line)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %v", vsh.ErrParse, err)
	}
	if len(parts) == 0 {
		return Command{}, nil
	}
	return Command{Name: parts[0], Args: parts[1:]}, nil
}
