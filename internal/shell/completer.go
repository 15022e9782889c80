package shell

import (
	"sort"
	"strings"

	"github.com/vvka-141/vsh/internal/vfs"
	"github.com/vvka-141/vsh/pkg/vsh"
)

// Completer provides tab-completion and cycling for command lines.
// The first word completes against built-in commands; later words complete
// against the virtual filesystem relative to the current directory.
//
// Usage:
//
//	// On Tab press:
//	input.SetValue(completer.Next(input.Value(), session.Cwd()))
//
//	// On any other keypress:
//	completer.Reset()
type Completer struct {
	interp     *Interpreter
	matches    []string
	cycleIndex int
	lastInput  string
	lastResult string
}

// NewCompleter creates a completer over interp's commands and tree.
func NewCompleter(interp *Interpreter) *Completer {
	return &Completer{interp: interp}
}

// Next returns the next completion for line.
// On first call (or after the line changes), it computes matches and
// extends the word to the longest common prefix when that adds anything.
// Called again with the same base, or with the completion it just returned,
// it cycles through matches.
func (c *Completer) Next(line, cwd string) string {
	head, word := splitLastWord(line)
	parent, prefix := "", word
	if head != "" {
		parent, prefix = splitWord(word)
	}
	base := head + parent

	if len(c.matches) > 1 && (line == c.lastResult || base == c.lastInput) {
		c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
		return c.emit(c.lastInput + c.matches[c.cycleIndex])
	}

	if head == "" {
		c.matches = c.commandMatches(prefix)
	} else {
		c.matches = c.pathMatches(parent, prefix, cwd)
	}
	c.cycleIndex = 0
	c.lastInput = base

	if len(c.matches) == 0 {
		return c.emit(line)
	}

	if len(c.matches) > 1 {
		common := longestCommonPrefix(c.matches)
		if len(common) > len(prefix) {
			// the next Tab should start cycling at the first match
			c.cycleIndex = -1
			return c.emit(base + common)
		}
	}

	return c.emit(base + c.matches[c.cycleIndex])
}

func (c *Completer) emit(s string) string {
	c.lastResult = s
	return s
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *Completer) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.lastInput = ""
	c.lastResult = ""
}

func (c *Completer) commandMatches(prefix string) []string {
	var matches []string
	for _, name := range c.interp.Commands() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name+" ")
		}
	}
	return matches
}

// pathMatches lists children of parent starting with prefix. Directories
// carry a trailing separator so completion can continue into them.
func (c *Completer) pathMatches(parent, prefix, cwd string) []string {
	dirPath := parent
	if dirPath == "" {
		dirPath = cwd
	}
	dir, _, err := c.interp.Tree().ResolveDir(dirPath, cwd)
	if err != nil {
		return nil
	}

	var matches []string
	for _, name := range dir.Names() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		child, _ := dir.Child(name)
		if vfs.IsDirectory(child) {
			name += vsh.Separator
		}
		matches = append(matches, name)
	}
	sort.Strings(matches)
	return matches
}

// splitLastWord splits line before its last space-separated word.
//
//	"cd do"   → ("cd ", "do")
//	"ls "     → ("ls ", "")
//	"l"       → ("", "l")
func splitLastWord(line string) (head, word string) {
	i := strings.LastIndexAny(line, " \t")
	if i < 0 {
		return "", line
	}
	return line[:i+1], line[i+1:]
}

// splitWord splits a path word into its directory part and name prefix.
//
//	"docs/re" → ("docs/", "re")
//	"docs/"   → ("docs/", "")
//	"do"      → ("", "do")
func splitWord(word string) (parent, prefix string) {
	word = vfs.Normalize(word)
	i := strings.LastIndex(word, vsh.Separator)
	if i < 0 {
		return "", word
	}
	return word[:i+1], word[i+1:]
}

// longestCommonPrefix finds the longest common prefix among strs.
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}

	first := strs[0]
	for i := 0; i < len(first); i++ {
		ch := first[i]
		for _, s := range strs[1:] {
			if i >= len(s) || s[i] != ch {
				return first[:i]
			}
		}
	}
	return first
}
