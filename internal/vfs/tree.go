package vfs

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vsh/pkg/vsh"
)

// Tree is a read-only virtual filesystem with a single root directory.
// It is never mutated after construction, so it is safe for concurrent reads.
type Tree struct {
	root *Directory
}

// NewTree wraps root as a tree. The root is always named "/" regardless of
// the name it was built with.
func NewTree(root *Directory) *Tree {
	if root == nil {
		return EmptyTree()
	}
	if root.name != vsh.RootName {
		root = &Directory{name: vsh.RootName, children: root.children}
	}
	return &Tree{root: root}
}

// EmptyTree returns a tree holding only an empty root directory.
func EmptyTree() *Tree {
	return &Tree{root: NewDirectory(vsh.RootName)}
}

// Root returns the root directory.
func (t *Tree) Root() *Directory { return t.root }

// Resolve locates path relative to cwd and returns the node together with
// its canonical absolute path. cwd must be an absolute path.
//
// A path consisting solely of ".." names the parent of cwd; the root is its
// own parent. Everywhere else ".." and "." are ordinary names.
func (t *Tree) Resolve(path, cwd string) (Node, string, error) {
	abs := Abs(path, cwd)

	var cur Node = t.root
	for _, seg := range Segments(abs) {
		dir, ok := cur.(*Directory)
		if !ok {
			return nil, "", fmt.Errorf("%s: %w", path, vsh.ErrPathNotFound)
		}
		next, ok := dir.children[seg]
		if !ok {
			return nil, "", fmt.Errorf("%s: %w", path, vsh.ErrPathNotFound)
		}
		cur = next
	}
	return cur, Join(Segments(abs)), nil
}

// ResolveDir is Resolve restricted to directories. A path naming a file
// yields vsh.ErrNotADirectory.
func (t *Tree) ResolveDir(path, cwd string) (*Directory, string, error) {
	n, abs, err := t.Resolve(path, cwd)
	if err != nil {
		return nil, "", err
	}
	dir, ok := n.(*Directory)
	if !ok {
		return nil, "", fmt.Errorf("%s: %w", path, vsh.ErrNotADirectory)
	}
	return dir, abs, nil
}

// Walk visits every node depth-first in lexical order, passing its absolute
// path. Returning an error from fn stops the walk.
func (t *Tree) Walk(fn func(path string, n Node) error) error {
	return walk(vsh.RootName, t.root, fn)
}

// Count returns the number of directories, the root included, and files.
func (t *Tree) Count() (dirs, files int) {
	_ = t.Walk(func(_ string, n Node) error {
		if IsDirectory(n) {
			dirs++
		} else {
			files++
		}
		return nil
	})
	return dirs, files
}

func walk(p string, n Node, fn func(string, Node) error) error {
	if err := fn(p, n); err != nil {
		return err
	}
	dir, ok := n.(*Directory)
	if !ok {
		return nil
	}
	for _, name := range dir.Names() {
		child := dir.children[name]
		if err := walk(joinChild(p, name), child, fn); err != nil {
			return err
		}
	}
	return nil
}

// Normalize converts every separator to the canonical "/".
func Normalize(path string) string {
	return strings.ReplaceAll(path, `\`, vsh.Separator)
}

// Abs turns path into an absolute path against cwd without touching the tree.
// The empty path names the root.
func Abs(path, cwd string) string {
	path = Normalize(path)
	if path == "" {
		return vsh.RootName
	}
	if path == ".." {
		return Parent(cwd)
	}
	if strings.HasPrefix(path, vsh.Separator) {
		return path
	}
	return joinChild(cwd, path)
}

// Parent drops the last segment of an absolute path. The parent of the root
// is the root.
func Parent(p string) string {
	segs := Segments(p)
	if len(segs) == 0 {
		return vsh.RootName
	}
	return Join(segs[:len(segs)-1])
}

// Base returns the last segment of p, or "/" for the root.
func Base(p string) string {
	segs := Segments(p)
	if len(segs) == 0 {
		return vsh.RootName
	}
	return segs[len(segs)-1]
}

// Segments splits p into its non-empty segments.
func Segments(p string) []string {
	parts := strings.Split(Normalize(p), vsh.Separator)
	segs := parts[:0]
	for _, s := range parts {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// Join builds the canonical absolute path from segments.
func Join(segs []string) string {
	return vsh.Separator + strings.Join(segs, vsh.Separator)
}

func joinChild(dir, name string) string {
	if dir == vsh.RootName || dir == "" {
		return vsh.Separator + name
	}
	return dir + vsh.Separator + name
}
