// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "github.com/albertocavalcante/buildergen/model"

// TypeFilter resolves c.Types against the compilation into a set of
// qualified names. Returns nil if no types were requested (meaning
// "generate all types").
//
// Entries are matched first as qualified names, then as simple names; a
// simple name selects every type that carries it. When ResolveDeps is set
// the set is expanded with ResolveDeps.
func (c Config) TypeFilter(comp *model.Compilation) map[string]bool {
	if len(c.Types) == 0 {
		return nil
	}

	filter := make(map[string]bool)
	for _, name := range c.Types {
		if t, ok := comp.Lookup(name); ok {
			filter[t.QualifiedName()] = true
			continue
		}
		for _, t := range comp.Types() {
			if t.Name == name {
				filter[t.QualifiedName()] = true
			}
		}
	}

	if c.ResolveDeps {
		return ResolveDeps(comp, filter)
	}
	return filter
}

// ResolveDeps expands a type filter to include all transitively
// referenced types from the compilation. Returns nil if filter is nil
// (meaning "generate all types").
//
// A type references its base type and every type named in its property
// declarations, including generic arguments.
func ResolveDeps(c *model.Compilation, filter map[string]bool) map[string]bool {
	if filter == nil {
		return nil
	}

	expanded := make(map[string]bool)
	for name := range filter {
		collectDeps(c, name, expanded)
	}
	return expanded
}

// collectDeps recursively collects all types referenced by typeName.
func collectDeps(c *model.Compilation, typeName string, visited map[string]bool) {
	if visited[typeName] {
		return // Already processed or cycle
	}
	visited[typeName] = true

	t, ok := c.Lookup(typeName)
	if !ok {
		return
	}
	if t.Base != nil {
		collectTypeRefs(c, *t.Base, visited)
	}
	for _, p := range t.Properties {
		collectTypeRefs(c, p.Type, visited)
	}
}

// collectTypeRefs collects the declared types named by ref.
// Names outside the compilation (int, System.String) are skipped.
func collectTypeRefs(c *model.Compilation, ref model.TypeRef, visited map[string]bool) {
	if _, ok := c.Lookup(ref.Name); ok {
		collectDeps(c, ref.Name, visited)
	}
	for _, arg := range ref.Arguments {
		collectTypeRefs(c, arg, visited)
	}
}

// Selects reports whether filter admits the qualified name.
func Selects(filter map[string]bool, qualifiedName string) bool {
	return filter == nil || filter[qualifiedName]
}
