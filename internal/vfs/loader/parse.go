package loader

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/vsh/internal/vfs"
	"github.com/vvka-141/vsh/pkg/vsh"
)

const (
	typeDir  = "dir"
	typeFile = "file"
)

// record holds the recognised fields of one description entry.
type record struct {
	typ      string
	name     string
	children *yaml.Node
	content  *yaml.Node
}

type parser struct {
	logger vsh.Logger
}

// parse walks the raw yaml.Node tree rather than unmarshalling into structs:
// decoding into structs rejects duplicate mapping keys, and duplicates must
// resolve to the last occurrence.
func parse(data []byte, logger vsh.Logger) (*vfs.Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", vsh.ErrMalformedSource, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty description", vsh.ErrMalformedSource)
	}

	p := &parser{logger: logger}
	root, err := p.node(doc.Content[0], vsh.RootName)
	if err != nil {
		return nil, err
	}
	dir, ok := root.(*vfs.Directory)
	if !ok {
		return nil, fmt.Errorf("%w: root must have type %q", vsh.ErrMalformedSource, typeDir)
	}
	return vfs.NewTree(dir), nil
}

// node converts one record. key is the name the parent mapping gives it.
func (p *parser) node(n *yaml.Node, key string) (vfs.Node, error) {
	rec, err := p.record(n, key)
	if err != nil {
		return nil, err
	}
	if rec.name != "" && rec.name != key && key != vsh.RootName {
		p.logger.Verbose("VFS entry %q declares name %q, using %q", key, rec.name, key)
	}

	switch rec.typ {
	case typeFile:
		if rec.children != nil {
			return nil, malformed(n, key, "a file cannot have children")
		}
		if rec.content == nil {
			return nil, malformed(n, key, "a file needs a content field")
		}
		if rec.content.Kind != yaml.ScalarNode {
			return nil, malformed(rec.content, key, "content must be a string")
		}
		return vfs.NewFile(key, rec.content.Value), nil

	case typeDir:
		if rec.content != nil {
			return nil, malformed(n, key, "a directory cannot have content")
		}
		children, err := p.children(rec.children, key)
		if err != nil {
			return nil, err
		}
		return vfs.NewDirectory(key, children...), nil

	case "":
		return nil, malformed(n, key, "missing type field")

	default:
		return nil, malformed(n, key, fmt.Sprintf("unknown type %q", rec.typ))
	}
}

func (p *parser) record(n *yaml.Node, key string) (record, error) {
	n = deref(n)
	if n.Kind != yaml.MappingNode {
		return record{}, malformed(n, key, "entry must be a mapping")
	}

	var rec record
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], deref(n.Content[i+1])
		switch k.Value {
		case "type":
			if v.Kind != yaml.ScalarNode {
				return record{}, malformed(v, key, "type must be a string")
			}
			rec.typ = v.Value
		case "name":
			if v.Kind != yaml.ScalarNode {
				return record{}, malformed(v, key, "name must be a string")
			}
			rec.name = v.Value
		case "children":
			rec.children = v
		case "content":
			rec.content = v
		}
	}
	return rec, nil
}

func (p *parser) children(n *yaml.Node, parent string) ([]vfs.Node, error) {
	if n == nil || isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, malformed(n, parent, "children must be a mapping")
	}

	children := make([]vfs.Node, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if k.Kind != yaml.ScalarNode || k.Value == "" {
			return nil, malformed(k, parent, "child names must be non-empty strings")
		}
		if strings.ContainsAny(k.Value, `/\`) {
			return nil, malformed(k, parent, fmt.Sprintf("child name %q contains a path separator", k.Value))
		}
		child, err := p.node(n.Content[i+1], k.Value)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func malformed(n *yaml.Node, key, msg string) error {
	return fmt.Errorf("%w: line %d: %s: %s", vsh.ErrMalformedSource, n.Line, key, msg)
}
