package jvalue

import (
	"errors"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"
)

// Store keeps one settings tree and moves it to and from a file.
type Store struct {
	fs     afero.Fs
	logger log.Logger
	root   *Value
}

// NewStore returns a Store holding an empty Null tree. A nil fs means the OS
// filesystem and a nil logger discards output.
func NewStore(fs afero.Fs, logger log.Logger) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Store{fs: fs, logger: logger, root: New()}
}

// Root returns the current tree.
func (s *Store) Root() *Value {
	return s.root
}

// Load reads and decodes the file at path and, on success, makes the result
// the new root with a clear dirty flag. Failures are logged and reported as
// false; the previous tree is kept.
func (s *Store) Load(path string) bool {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		level.Error(s.logger).Log("msg", "failed to read settings", "path", path, "err", err)
		return false
	}
	v, err := Unmarshal(data)
	if err != nil {
		var se *SyntaxError
		if errors.As(err, &se) {
			level.Error(s.logger).Log("msg", "failed to parse settings", "path", path, "line", se.Line, "column", se.Column, "err", err)
		} else {
			level.Error(s.logger).Log("msg", "failed to parse settings", "path", path, "err", err)
		}
		return false
	}
	v.SetDirty(false)
	s.root = v
	level.Debug(s.logger).Log("msg", "loaded settings", "path", path, "kind", v.Kind())
	return true
}

// Save encodes the root, pretty or compact, and writes it to path, replacing
// the file. The root's dirty flag is cleared after a successful write.
func (s *Store) Save(path string, pretty bool) error {
	data := Marshal(s.root, EncodePretty(pretty))
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	s.root.SetDirty(false)
	return nil
}
