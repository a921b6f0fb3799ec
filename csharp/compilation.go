// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package csharp is a small object model for emitting C# source.
//
// A source file is built as a tree: a Compilation owns using directives and
// namespaces, a namespace owns classes, a class owns properties and methods,
// and a method owns parameters and statements. Trees are built with a fluent
// API in which every With method either returns the current scope (for
// siblings) or a builder for the new child (to descend), and End or Finish
// returns to the parent scope:
//
//	src := csharp.New().
//		WithUsing("System.Linq").
//		WithNamespace("Domain").
//			WithPartialClass("UserBuilder").
//				WithProtectedProperty("string", "Name").End().
//				WithMethod("UserBuilder", "WithName").
//					WithParameter("string", "Name").
//					WithStatement("this.Name = Name").
//					WithStatement("return this").
//				End().
//			End().
//		Finish().
//		Build()
//
// Build renders the tree with four spaces of indentation per nesting level.
// It does not modify the tree, so building the same tree twice yields the
// same text.
package csharp

import (
	"strings"
)

const indentUnit = "    "

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

// Compilation is the root of a source tree.
type Compilation struct {
	// Header lines are rendered as line comments above everything else.
	Header     []string
	Usings     []string
	Namespaces []*Namespace
}

// New returns an empty compilation.
func New() *Compilation {
	return &Compilation{}
}

// WithHeader appends a header comment line.
func (c *Compilation) WithHeader(line string) *Compilation {
	c.Header = append(c.Header, line)
	return c
}

// WithUsing appends a using directive.
func (c *Compilation) WithUsing(ns string) *Compilation {
	c.Usings = append(c.Usings, ns)
	return c
}

// WithNamespace appends a namespace and descends into it.
func (c *Compilation) WithNamespace(name string) *NamespaceBuilder {
	ns := &Namespace{Name: name}
	c.Namespaces = append(c.Namespaces, ns)
	return &NamespaceBuilder{parent: c, ns: ns}
}

// Build renders the compilation. The result ends with a single newline
// unless the compilation is empty.
func (c *Compilation) Build() string {
	var parts []string
	for _, h := range c.Header {
		parts = append(parts, "// "+h)
	}
	if len(c.Header) > 0 && len(c.Usings)+len(c.Namespaces) > 0 {
		parts = append(parts, "")
	}
	for _, u := range c.Usings {
		parts = append(parts, "using "+u+";")
	}
	if len(c.Usings) > 0 && len(c.Namespaces) > 0 {
		parts = append(parts, "")
	}
	for i, ns := range c.Namespaces {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, ns.Build())
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n") + "\n"
}

// Namespace is a namespace block.
type Namespace struct {
	Name    string
	Classes []*Class
}

// Build renders the namespace block.
func (n *Namespace) Build() string {
	lines := []string{"namespace " + n.Name, "{"}
	for i, cls := range n.Classes {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, cls.Build())
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// NamespaceBuilder appends classes to a namespace.
type NamespaceBuilder struct {
	parent *Compilation
	ns     *Namespace
}

// Namespace returns the node being built.
func (b *NamespaceBuilder) Namespace() *Namespace {
	return b.ns
}

// WithClass appends a class without modifiers.
func (b *NamespaceBuilder) WithClass(name string) *ClassBuilder {
	return b.withClass(name, ModifierNone)
}

// WithPartialClass appends a partial class.
func (b *NamespaceBuilder) WithPartialClass(name string) *ClassBuilder {
	return b.withClass(name, ModifierPartial)
}

// WithSealedClass appends a sealed class.
func (b *NamespaceBuilder) WithSealedClass(name string) *ClassBuilder {
	return b.withClass(name, ModifierSealed)
}

func (b *NamespaceBuilder) withClass(name string, mod ClassModifier) *ClassBuilder {
	cls := &Class{Name: name, Modifier: mod, depth: 1}
	b.ns.Classes = append(b.ns.Classes, cls)
	return &ClassBuilder{parent: b, class: cls}
}

// Finish returns to the compilation.
func (b *NamespaceBuilder) Finish() *Compilation {
	return b.parent
}
