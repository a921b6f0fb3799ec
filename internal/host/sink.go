// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package host

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// Sink receives generated artifacts.
// Implementations must be safe for concurrent calls.
type Sink interface {
	// WriteFile stores content under name. Names are bare file names.
	WriteFile(ctx context.Context, name string, content []byte) error

	// Remove deletes name. Removing a name that does not exist is not an error.
	Remove(ctx context.Context, name string) error
}

// DirSink writes artifacts into a directory on the local filesystem.
type DirSink struct {
	// Root is the output directory. It is created on first write.
	Root string

	// Mode is the file permission mode (default: 0644).
	Mode os.FileMode
}

// NewDirSink creates a DirSink writing to root.
func NewDirSink(root string) *DirSink {
	return &DirSink{Root: root, Mode: 0o644}
}

// WriteFile replaces name inside Root atomically: the content is written to
// a temporary file in the same directory and renamed over the target, so a
// reader never sees a partial artifact.
func (s *DirSink) WriteFile(ctx context.Context, name string, content []byte) error {
	if err := ValidateName(name); err != nil {
		return errors.Wrapf(err, "invalid artifact name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	mode := s.Mode
	if mode == 0 {
		mode = 0o644
	}

	tmp, err := os.CreateTemp(s.Root, ".buildergen-*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	_, writeErr := tmp.Write(content)
	closeErr := tmp.Close()
	if writeErr != nil {
		cleanup()
		return errors.Wrap(writeErr, "write temp file")
	}
	if closeErr != nil {
		cleanup()
		return errors.Wrap(closeErr, "close temp file")
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		cleanup()
		return errors.Wrap(err, "set file mode")
	}

	if err := ctx.Err(); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpPath, filepath.Join(s.Root, name)); err != nil {
		cleanup()
		return errors.Wrap(err, "rename temp file")
	}
	return nil
}

// Remove deletes name from Root.
func (s *DirSink) Remove(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return errors.Wrapf(err, "invalid artifact name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.Root, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "remove artifact")
	}
	return nil
}

// MemorySink keeps artifacts in memory.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile stores a copy of content.
func (s *MemorySink) WriteFile(ctx context.Context, name string, content []byte) error {
	if err := ValidateName(name); err != nil {
		return errors.Wrapf(err, "invalid artifact name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = slices.Clone(content)
	return nil
}

// Remove deletes name.
func (s *MemorySink) Remove(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return errors.Wrapf(err, "invalid artifact name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, name)
	return nil
}

// Get returns the content stored under name, or nil.
func (s *MemorySink) Get(name string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.files[name])
}

// Names returns the stored names, sorted.
func (s *MemorySink) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ValidateName checks that name is a bare file name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.New("name is empty")
	case name == "." || name == "..":
		return errors.New("path traversal not allowed")
	case strings.ContainsAny(name, `/\`):
		return errors.New("name must not contain a path separator")
	}
	return nil
}
