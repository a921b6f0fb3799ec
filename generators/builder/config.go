// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/buildergen/generator"
)

// Construction selects how Build creates the target instance.
type Construction string

const (
	// ConstructionFactory calls the parameterless constructor directly, so a
	// target without one fails to compile.
	ConstructionFactory Construction = "factory"

	// ConstructionActivator creates the instance through System.Activator,
	// deferring a missing constructor to a runtime failure.
	ConstructionActivator Construction = "activator"
)

// ParseConstruction validates a construction option.
func ParseConstruction(s string) (Construction, error) {
	switch c := Construction(s); c {
	case ConstructionFactory, ConstructionActivator:
		return c, nil
	default:
		return "", errors.Newf("unknown construction %q (want %q or %q)", s, ConstructionFactory, ConstructionActivator)
	}
}

// Expression returns the C# expression that creates an instance of typ.
func (c Construction) Expression(typ string) string {
	if c == ConstructionActivator {
		return "(" + typ + ")System.Activator.CreateInstance(typeof(" + typ + "))"
	}
	return "new " + typ + "()"
}

// Config holds configuration for builder generation.
type Config struct {
	// Suffix is appended to the type name to form the builder name.
	Suffix string

	// Construction selects how Build creates the target instance.
	Construction Construction
}

// DefaultSuffix is the builder class name suffix.
const DefaultSuffix = "Builder"

// ConfigFrom reads the builder options of cfg.
func ConfigFrom(cfg generator.Config, defaultSuffix string) (Config, error) {
	construction, err := ParseConstruction(cfg.Option("construction", string(ConstructionFactory)))
	if err != nil {
		return Config{}, err
	}
	return Config{
		Suffix:       cfg.Option("suffix", defaultSuffix),
		Construction: construction,
	}, nil
}
