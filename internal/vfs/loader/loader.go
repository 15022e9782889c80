package loader

import (
	_ "embed"
	"fmt"

	"github.com/spf13/afero"

	"github.com/vvka-141/vsh/internal/logging"
	"github.com/vvka-141/vsh/internal/vfs"
	"github.com/vvka-141/vsh/pkg/vsh"
)

//go:embed default.json
var defaultDescription []byte

// Loader reads VFS descriptions from a filesystem backend.
type Loader struct {
	fs     afero.Fs
	logger vsh.Logger
}

// NewLoader creates a loader reading sources from fs.
// A nil logger discards diagnostics.
func NewLoader(fs afero.Fs, logger vsh.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Loader{fs: fs, logger: logger}
}

// Load returns the tree described by source.
//
//   - source == "": the built-in default tree
//   - source missing or unreadable: an empty root, diagnostic logged
//   - source malformed: an empty root, diagnostic logged
func (l *Loader) Load(source string) *vfs.Tree {
	tree, err := l.LoadStrict(source)
	if err != nil {
		l.logger.Error("%v; starting with an empty filesystem", err)
		return vfs.EmptyTree()
	}
	return tree
}

// LoadStrict is Load without the fallback. Errors wrap
// vsh.ErrSourceUnavailable or vsh.ErrMalformedSource.
func (l *Loader) LoadStrict(source string) (*vfs.Tree, error) {
	if source == "" {
		l.logger.Verbose("No VFS source given, using the built-in tree")
		return Default(), nil
	}

	l.logger.Verbose("Loading VFS from %s", source)
	data, err := afero.ReadFile(l.fs, source)
	if err != nil {
		return nil, fmt.Errorf("failed to read VFS %s: %w: %v", source, vsh.ErrSourceUnavailable, err)
	}

	tree, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load VFS %s: %w", source, err)
	}
	dirs, files := tree.Count()
	l.logger.Verbose("Loaded VFS from %s (%d directories, %d files)", source, dirs, files)
	return tree, nil
}

// Parse decodes a description. Errors wrap vsh.ErrMalformedSource.
func (l *Loader) Parse(data []byte) (*vfs.Tree, error) {
	return parse(data, l.logger)
}

// Default returns the built-in demonstration tree.
func Default() *vfs.Tree {
	tree, err := parse(defaultDescription, logging.NewNullLogger())
	if err != nil {
		panic(fmt.Sprintf("built-in VFS description is invalid: %v", err))
	}
	return tree
}
