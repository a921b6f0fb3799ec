// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package typemodel extracts builder-relevant type information from metadata.
//
// It decides which types get builders (non-static classes under a namespace
// prefix) and which properties each builder exposes (public, publicly
// settable, not read-only, own members before inherited ones).
package typemodel

import (
	"strings"

	"github.com/albertocavalcante/buildergen/model"
)

// FindTypes returns the non-static classes declared in namespaces whose
// qualified name starts with filter, compared case-insensitively.
//
// Every namespace is tested independently: the walk descends into child
// namespaces whether or not the parent matched.
func FindTypes(root *model.Namespace, filter string) []*model.Type {
	if root == nil {
		return nil
	}
	var out []*model.Type
	findTypes(root, strings.ToLower(filter), &out)
	return out
}

func findTypes(ns *model.Namespace, filter string, out *[]*model.Type) {
	if strings.HasPrefix(strings.ToLower(ns.QualifiedName()), filter) {
		for _, t := range ns.Types {
			if t.IsClass() && !t.Static {
				*out = append(*out, t)
			}
		}
	}
	for _, child := range ns.Namespaces {
		findTypes(child, filter, out)
	}
}

// Ancestors returns the base chain of t within c, nearest first.
// The chain stops at the first base that is not declared in c.
func Ancestors(c *model.Compilation, t *model.Type) []*model.Type {
	var chain []*model.Type
	seen := map[*model.Type]bool{t: true}
	for cur := c.BaseOf(t); cur != nil && !seen[cur]; cur = c.BaseOf(cur) {
		seen[cur] = true
		chain = append(chain, cur)
	}
	return chain
}

// FindProperties returns the eligible properties of t and its ancestors.
//
// Own members are visited before inherited ones, and only the first
// property seen under a given name is kept, so a redeclaration in a derived
// type shadows the base declaration.
func FindProperties(c *model.Compilation, t *model.Type) []*model.Property {
	if t == nil {
		return nil
	}

	var all []*model.Property
	all = append(all, t.Properties...)
	for _, base := range Ancestors(c, t) {
		all = append(all, base.Properties...)
	}

	var eligible []*model.Property
	for _, p := range DistinctBy(all, func(p *model.Property) string { return p.Name }) {
		if IsEligible(p) {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// IsEligible reports whether p is publicly readable and publicly writable.
func IsEligible(p *model.Property) bool {
	return !p.ReadOnly &&
		p.Accessibility == model.Public &&
		p.Setter == model.Public
}

// DistinctBy returns items with duplicate keys removed, keeping the first
// occurrence of each key and the original order.
func DistinctBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]bool, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, item)
	}
	return out
}
