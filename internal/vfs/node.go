package vfs

import (
	"encoding/base64"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/vvka-141/vsh/pkg/vsh"
)

// Node is either a *Directory or a *File. The interface is sealed: only this
// package can add variants, so a type switch over the two is exhaustive.
type Node interface {
	// Name returns the node's name within its parent ("/" for the root).
	Name() string

	node()
}

// Directory is a container node. It exclusively owns its children.
type Directory struct {
	name     string
	children map[string]Node
}

// NewDirectory creates a directory owning the given children.
// When two children share a name the later one wins.
func NewDirectory(name string, children ...Node) *Directory {
	d := &Directory{
		name:     name,
		children: make(map[string]Node, len(children)),
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		d.children[c.Name()] = c
	}
	return d
}

func (d *Directory) Name() string { return d.name }
func (d *Directory) node()        {}

// Len returns the number of direct children.
func (d *Directory) Len() int { return len(d.children) }

// Child returns the direct child with the given name.
func (d *Directory) Child(name string) (Node, bool) {
	c, ok := d.children[name]
	return c, ok
}

// Names returns the names of the direct children in lexical order.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.children))
	for name := range d.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// File is a leaf node. Its content is stored base64-encoded and only
// decoded when read.
type File struct {
	name    string
	encoded string
}

// NewFile creates a file whose content is the base64 text encoded.
func NewFile(name, encoded string) *File {
	return &File{name: name, encoded: encoded}
}

// NewTextFile creates a file holding text, encoding it for storage.
func NewTextFile(name, text string) *File {
	return NewFile(name, base64.StdEncoding.EncodeToString([]byte(text)))
}

func (f *File) Name() string { return f.name }
func (f *File) node()        {}

// Encoded returns the stored, still-encoded content.
func (f *File) Encoded() string { return f.encoded }

// Content decodes and returns the raw bytes of the file.
func (f *File) Content() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(f.encoded)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", f.name, vsh.ErrDecode, err)
	}
	return data, nil
}

// Text decodes the content and requires it to be valid UTF-8.
func (f *File) Text() (string, error) {
	data, err := f.Content()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w: not valid UTF-8", f.name, vsh.ErrDecode)
	}
	return string(data), nil
}

// IsDirectory reports whether n is a directory.
func IsDirectory(n Node) bool {
	_, ok := n.(*Directory)
	return ok
}

// IsFile reports whether n is a file.
func IsFile(n Node) bool {
	_, ok := n.(*File)
	return ok
}
