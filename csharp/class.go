// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package csharp

import (
	"strings"
)

// ClassModifier is an optional class modifier.
type ClassModifier int

const (
	ModifierNone ClassModifier = iota
	ModifierPartial
	ModifierSealed
)

func (m ClassModifier) keyword() string {
	switch m {
	case ModifierPartial:
		return "partial "
	case ModifierSealed:
		return "sealed "
	default:
		return ""
	}
}

// Class is a public class declaration.
type Class struct {
	Name       string
	Base       string
	Modifier   ClassModifier
	Properties []*Property
	Methods    []*Method

	depth int
}

// Build renders the class with its members.
func (c *Class) Build() string {
	pad := indent(c.depth)

	header := pad + "public " + c.Modifier.keyword() + "class " + c.Name
	if c.Base != "" {
		header += " : " + c.Base
	}

	lines := []string{header, pad + "{"}
	for _, p := range c.Properties {
		lines = append(lines, p.Build())
	}
	if len(c.Properties) > 0 && len(c.Methods) > 0 {
		lines = append(lines, "")
	}
	for i, m := range c.Methods {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, m.Build())
	}
	lines = append(lines, pad+"}")
	return strings.Join(lines, "\n")
}

// ClassBuilder appends members to a class.
type ClassBuilder struct {
	parent *NamespaceBuilder
	class  *Class
}

// Class returns the node being built.
func (b *ClassBuilder) Class() *Class {
	return b.class
}

// WithBase sets the base type clause.
func (b *ClassBuilder) WithBase(typ string) *ClassBuilder {
	b.class.Base = typ
	return b
}

// WithPublicProperty appends a public property.
func (b *ClassBuilder) WithPublicProperty(typ, name string) *PropertyBuilder {
	return b.withProperty("public", typ, name)
}

// WithProtectedProperty appends a protected property.
func (b *ClassBuilder) WithProtectedProperty(typ, name string) *PropertyBuilder {
	return b.withProperty("protected", typ, name)
}

// WithPrivateProperty appends a private property.
func (b *ClassBuilder) WithPrivateProperty(typ, name string) *PropertyBuilder {
	return b.withProperty("private", typ, name)
}

func (b *ClassBuilder) withProperty(access, typ, name string) *PropertyBuilder {
	p := &Property{Access: access, Type: typ, Name: name, depth: b.class.depth + 1}
	b.class.Properties = append(b.class.Properties, p)
	return &PropertyBuilder{parent: b, prop: p}
}

// WithMethod appends a public method.
func (b *ClassBuilder) WithMethod(returnType, name string) *MethodBuilder {
	return b.withMethod(MethodPlain, returnType, name)
}

// WithVirtualMethod appends a public virtual method.
func (b *ClassBuilder) WithVirtualMethod(returnType, name string) *MethodBuilder {
	return b.withMethod(MethodVirtual, returnType, name)
}

// WithOverrideMethod appends a public override method.
func (b *ClassBuilder) WithOverrideMethod(returnType, name string) *MethodBuilder {
	return b.withMethod(MethodOverride, returnType, name)
}

func (b *ClassBuilder) withMethod(mod MethodModifier, returnType, name string) *MethodBuilder {
	m := &Method{Modifier: mod, ReturnType: returnType, Name: name, depth: b.class.depth + 1}
	b.class.Methods = append(b.class.Methods, m)
	return &MethodBuilder{parent: b, method: m}
}

// End returns to the namespace.
func (b *ClassBuilder) End() *NamespaceBuilder {
	return b.parent
}
