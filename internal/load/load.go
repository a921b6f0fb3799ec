// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package load reads type metadata and additional text files from disk into
// a generation snapshot.
package load

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/buildergen/generator"
	"github.com/albertocavalcante/buildergen/model"
)

// Options configures what to load.
type Options struct {
	// MetadataPath is a JSON or YAML metadata document.
	// If empty, the snapshot has no compilation.
	MetadataPath string

	// AdditionalFiles lists text inputs. Each entry is a file, a directory
	// (walked recursively) or a glob pattern.
	AdditionalFiles []string
}

// Result contains the loaded snapshot and where it came from.
type Result struct {
	// Snapshot is the input for one generation pass.
	Snapshot *generator.Snapshot

	// Source describes where the metadata was loaded from.
	Source string

	// Dirs are the directories that hold the inputs, sorted.
	Dirs []string
}

// Load reads the inputs described by opts.
//
// A missing metadata file or additional file entry is an error. A text file
// that exists but cannot be read is loaded as an unreadable text.
func Load(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{Snapshot: &generator.Snapshot{}}
	dirs := make(map[string]bool)

	if opts.MetadataPath != "" {
		c, err := model.ParseFile(opts.MetadataPath)
		if err != nil {
			return nil, errors.Wrap(err, "load metadata")
		}
		res.Snapshot.Compilation = c
		res.Source = "file://" + opts.MetadataPath
		dirs[filepath.Dir(opts.MetadataPath)] = true
	}

	paths, err := collect(ctx, opts.AdditionalFiles, dirs)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		res.Snapshot.Texts = append(res.Snapshot.Texts, readText(p))
	}

	for d := range dirs {
		res.Dirs = append(res.Dirs, d)
	}
	slices.Sort(res.Dirs)
	return res, nil
}

// collect expands the additional file entries into a sorted, duplicate-free
// list of file paths. Every directory seen is added to dirs.
func collect(ctx context.Context, entries []string, dirs map[string]bool) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if isGlob(entry) {
			matches, err := filepath.Glob(entry)
			if err != nil {
				return nil, errors.Wrapf(err, "glob %q", entry)
			}
			dirs[globRoot(entry)] = true
			for _, m := range matches {
				if info, err := os.Stat(m); err == nil && !info.IsDir() {
					add(m)
				}
			}
			continue
		}

		info, err := os.Stat(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "additional file %q", entry)
		}
		if !info.IsDir() {
			dirs[filepath.Dir(entry)] = true
			add(entry)
			continue
		}

		err = filepath.WalkDir(entry, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				dirs[path] = true
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walk %q", entry)
		}
	}

	slices.Sort(paths)
	return paths, nil
}

var utf8BOM = []byte("\xef\xbb\xbf")

// readText loads path as text, dropping a leading UTF-8 byte order mark.
func readText(path string) generator.AdditionalText {
	data, err := os.ReadFile(path)
	if err != nil {
		return generator.UnreadableText(path)
	}
	return generator.NewText(path, string(bytes.TrimPrefix(data, utf8BOM)))
}

func isGlob(entry string) bool {
	return strings.ContainsAny(entry, "*?[")
}

// globRoot returns the longest directory prefix of pattern that holds no
// glob metacharacters.
func globRoot(pattern string) string {
	dir := filepath.Dir(pattern)
	for isGlob(dir) {
		dir = filepath.Dir(dir)
	}
	return dir
}
