// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// Defaults for Config.
const (
	DefaultTargetAssembly = "Domain"
	DefaultNamespace      = "Domain"
)

// Config contains generator configuration.
type Config struct {
	// TargetAssembly is the only assembly builder generators run for.
	TargetAssembly string

	// Namespace is the case-insensitive namespace prefix that selects types.
	Namespace string

	// Types filters to specific type names (empty = all).
	// Entries may be simple or qualified names.
	Types []string

	// ResolveDeps includes types referenced by the filtered types.
	ResolveDeps bool

	// Options contains generator-specific options.
	Options map[string]string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		TargetAssembly: DefaultTargetAssembly,
		Namespace:      DefaultNamespace,
		ResolveDeps:    true,
	}
}

// Option returns a generator-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// WithOptions returns a copy of c whose options are opts.
func (c Config) WithOptions(opts map[string]string) Config {
	c.Options = opts
	return c
}
