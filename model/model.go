// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the type-graph metadata that builder generation reads.
//
// A metadata document describes one compiled assembly: its namespace tree, the
// types declared in each namespace, and the properties declared on each type.
// The document is produced by a build host (for example a Roslyn-based
// exporter) and may be written as JSON or YAML. The graph is read-only once
// parsed; generators never mutate it.
package model

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// GlobalNamespaceName is how the unnamed root namespace renders.
const GlobalNamespaceName = "<global namespace>"

// Type kinds.
const (
	KindClass     = "class"
	KindRecord    = "record"
	KindStruct    = "struct"
	KindInterface = "interface"
	KindEnum      = "enum"
)

// Accessibility levels.
const (
	Public            = "public"
	Protected         = "protected"
	Internal          = "internal"
	Private           = "private"
	ProtectedInternal = "protected internal"
	PrivateProtected  = "private protected"
)

// Compilation is the root of a metadata document.
type Compilation struct {
	// Assembly is the name of the compiled assembly (e.g., "Domain").
	Assembly string `json:"assembly" yaml:"assembly" validate:"required"`

	// Global is the unnamed root namespace.
	Global *Namespace `json:"global" yaml:"global" validate:"required"`

	index map[string]*Type
}

// Namespace is a node in the namespace tree.
type Namespace struct {
	// Name is the simple name of this namespace ("" for the global namespace).
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Namespaces are the child namespaces, in declaration order.
	Namespaces []*Namespace `json:"namespaces,omitempty" yaml:"namespaces,omitempty" validate:"dive"`

	// Types are the top-level types declared directly in this namespace.
	Types []*Type `json:"types,omitempty" yaml:"types,omitempty" validate:"dive"`

	parent *Namespace
}

// Type is a named type declared in a namespace.
type Type struct {
	// Name is the simple type name.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Kind is one of class, record, struct, interface, enum. Empty means class.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty" validate:"omitempty,oneof=class record struct interface enum"`

	// Static marks static classes.
	Static bool `json:"static,omitempty" yaml:"static,omitempty"`

	// Base is the base type, if any.
	Base *TypeRef `json:"base,omitempty" yaml:"base,omitempty"`

	// Properties are the properties declared on this type, excluding inherited ones.
	Properties []*Property `json:"properties,omitempty" yaml:"properties,omitempty" validate:"dive"`

	ns *Namespace
}

// Property is a property declared on a type.
type Property struct {
	Name string `json:"name" yaml:"name" validate:"required"`

	// Type is the declared property type.
	Type TypeRef `json:"type" yaml:"type"`

	// Accessibility is the declared accessibility of the property. Empty means private.
	Accessibility string `json:"accessibility,omitempty" yaml:"accessibility,omitempty" validate:"omitempty,accessibility"`

	// Setter is the accessibility of the set accessor. Empty means no setter.
	Setter string `json:"setter,omitempty" yaml:"setter,omitempty" validate:"omitempty,accessibility"`

	// ReadOnly marks properties the host reports as read-only.
	ReadOnly bool `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
}

// TypeRef is a reference to a type as it appears in a declaration.
//
// In documents a TypeRef may be written either as a plain string ("int",
// "Domain.User") or as an object with name, arguments and array fields.
type TypeRef struct {
	// Name is the display name of the type, or of the generic definition
	// when Arguments is non-empty (e.g., "System.Collections.Generic.List").
	Name string `json:"name" yaml:"name" validate:"required"`

	// Arguments are generic type arguments.
	Arguments []TypeRef `json:"arguments,omitempty" yaml:"arguments,omitempty" validate:"dive"`

	// Array marks a single-dimensional array of the type.
	Array bool `json:"array,omitempty" yaml:"array,omitempty"`
}

// IsClass reports whether the type is a class (including record classes).
func (t *Type) IsClass() bool {
	return t.Kind == "" || t.Kind == KindClass || t.Kind == KindRecord
}

// Namespace returns the namespace containing t.
func (t *Type) Namespace() *Namespace {
	return t.ns
}

// QualifiedName returns the fully qualified name of t.
func (t *Type) QualifiedName() string {
	if t.ns == nil || t.ns.IsGlobal() {
		return t.Name
	}
	return t.ns.QualifiedName() + "." + t.Name
}

// String implements fmt.Stringer.
func (t *Type) String() string {
	return t.QualifiedName()
}

// IsGlobal reports whether n is the global namespace.
func (n *Namespace) IsGlobal() bool {
	return n.parent == nil && n.Name == ""
}

// Parent returns the containing namespace, or nil for the global namespace.
func (n *Namespace) Parent() *Namespace {
	return n.parent
}

// QualifiedName returns the dotted name of n.
func (n *Namespace) QualifiedName() string {
	if n.IsGlobal() {
		return GlobalNamespaceName
	}
	var parts []string
	for cur := n; cur != nil && !cur.IsGlobal(); cur = cur.parent {
		parts = append(parts, cur.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// String implements fmt.Stringer.
func (n *Namespace) String() string {
	return n.QualifiedName()
}

// String renders the reference in display form,
// e.g. "System.Collections.Generic.List<Domain.User>" or "int[]".
func (r TypeRef) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	if len(r.Arguments) > 0 {
		sb.WriteByte('<')
		for i, arg := range r.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.String())
		}
		sb.WriteByte('>')
	}
	if r.Array {
		sb.WriteString("[]")
	}
	return sb.String()
}

// UnmarshalJSON accepts either a string or an object.
func (r *TypeRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*r = TypeRef{Name: name}
		return nil
	}

	type plain TypeRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return errors.Wrap(err, "type reference")
	}
	*r = TypeRef(p)
	return nil
}

// UnmarshalYAML accepts either a scalar or a mapping.
func (r *TypeRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*r = TypeRef{Name: node.Value}
		return nil
	}

	type plain TypeRef
	var p plain
	if err := node.Decode(&p); err != nil {
		return errors.Wrap(err, "type reference")
	}
	*r = TypeRef(p)
	return nil
}

// Lookup returns the type with the given qualified name.
func (c *Compilation) Lookup(qualifiedName string) (*Type, bool) {
	t, ok := c.index[qualifiedName]
	return t, ok
}

// Types returns every type in the compilation in declaration order,
// walking namespaces depth-first.
func (c *Compilation) Types() []*Type {
	var out []*Type
	var walk func(n *Namespace)
	walk = func(n *Namespace) {
		out = append(out, n.Types...)
		for _, child := range n.Namespaces {
			walk(child)
		}
	}
	if c.Global != nil {
		walk(c.Global)
	}
	return out
}

// BaseOf resolves the base type of t within the compilation.
// It returns nil when t has no base or the base is declared elsewhere
// (e.g., System.Object).
func (c *Compilation) BaseOf(t *Type) *Type {
	if t.Base == nil {
		return nil
	}
	base, ok := c.Lookup(t.Base.Name)
	if !ok {
		return nil
	}
	return base
}

// Link wires parent pointers and rebuilds the lookup index.
// Parse calls it; callers that assemble a Compilation by hand must call it
// before use.
func (c *Compilation) Link() {
	c.index = make(map[string]*Type)
	if c.Global == nil {
		return
	}
	c.Global.parent = nil
	c.link(c.Global)
}

func (c *Compilation) link(n *Namespace) {
	for _, t := range n.Types {
		t.ns = n
		if _, exists := c.index[t.QualifiedName()]; !exists {
			c.index[t.QualifiedName()] = t
		}
	}
	for _, child := range n.Namespaces {
		child.parent = n
		c.link(child)
	}
}
