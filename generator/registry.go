// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Generator)
)

// Register adds a generator to the registry. It panics when the name is
// taken or when another generator already emits the same file, since
// artifacts share one output directory.
func Register(g Generator) {
	mu.Lock()
	defer mu.Unlock()
	meta := g.Metadata()
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("generator %q already registered", meta.Name))
	}
	if meta.FileName != "" {
		for name, other := range registry {
			if other.Metadata().FileName == meta.FileName {
				panic(fmt.Sprintf("generators %q and %q both emit %s", name, meta.Name, meta.FileName))
			}
		}
	}
	registry[meta.Name] = g
}

// Get returns a generator by name.
func Get(name string) (Generator, bool) {
	mu.RLock()
	defer mu.RUnlock()
	g, ok := registry[name]
	return g, ok
}

// List returns all registered generator names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered generators, sorted by name.
func All() []Generator {
	mu.RLock()
	defer mu.RUnlock()
	gens := make([]Generator, 0, len(registry))
	for _, g := range registry {
		gens = append(gens, g)
	}
	slices.SortFunc(gens, func(a, b Generator) int {
		return strings.Compare(a.Metadata().Name, b.Metadata().Name)
	})
	return gens
}

// Select returns the named generators, or all of them when names is empty.
func Select(names []string) ([]Generator, error) {
	if len(names) == 0 {
		return All(), nil
	}
	gens := make([]Generator, 0, len(names))
	for _, name := range names {
		g, ok := Get(name)
		if !ok {
			return nil, errors.Newf("unknown generator %q (available: %s)", name, strings.Join(List(), ", "))
		}
		gens = append(gens, g)
	}
	return gens, nil
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Generator)
}
