// Package storage persists document text to files.
//
// Store tracks the target path a document is associated with, if any.
// A document opened from a file keeps its detected line ending style
// and gets it back on save; a document created empty has no target
// until SetTarget associates one.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quilledit/quill/internal/engine/buffer"
)

// ErrNoTarget is returned by Save when the store has no associated
// file. Callers recover by obtaining a path and calling SetTarget.
var ErrNoTarget = errors.New("no target file")

// Store persists one document's text to its associated file.
type Store struct {
	fs     FS
	target string
	ending buffer.LineEnding
}

// Option configures a Store during creation.
type Option func(*Store)

// WithFS sets the file system implementation.
func WithFS(fs FS) Option {
	return func(s *Store) {
		s.fs = fs
	}
}

// WithTarget associates an initial target path.
func WithTarget(path string) Option {
	return func(s *Store) {
		s.target = path
	}
}

// WithLineEnding sets the line ending style written on save.
func WithLineEnding(ending buffer.LineEnding) Option {
	return func(s *Store) {
		s.ending = ending
	}
}

// New creates a Store. Without options it has no target and writes
// LF endings through the OS file system.
func New(opts ...Option) *Store {
	s := &Store{
		fs:     NewOSFS(),
		ending: buffer.LineEndingLF,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasTarget returns true if the store has an associated file.
func (s *Store) HasTarget() bool {
	return s.target != ""
}

// Target returns the associated file path, or "".
func (s *Store) Target() string {
	return s.target
}

// SetTarget associates the store with a file path.
func (s *Store) SetTarget(path string) {
	s.target = path
}

// LineEnding returns the line ending style written on save.
func (s *Store) LineEnding() buffer.LineEnding {
	return s.ending
}

// Load reads the target file and returns its text verbatim. The
// detected line ending style is remembered so a later Save writes the
// file back the way it was found.
func (s *Store) Load() (string, error) {
	if !s.HasTarget() {
		return "", ErrNoTarget
	}
	data, err := s.fs.ReadFile(s.target)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", s.target, err)
	}
	text := string(data)
	s.ending = buffer.DetectLineEnding(text)
	return text, nil
}

// Save writes text to the target file, converting the engine's LF
// line breaks to the store's ending style. The file is untouched on
// error.
func (s *Store) Save(text string) error {
	if !s.HasTarget() {
		return ErrNoTarget
	}
	out := text
	if seq := s.ending.Sequence(); seq != "\n" {
		out = strings.ReplaceAll(text, "\n", seq)
	}
	if err := s.fs.WriteFile(s.target, []byte(out), 0644); err != nil {
		return fmt.Errorf("save %s: %w", s.target, err)
	}
	return nil
}
