// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package csharp

import (
	"strings"
)

// Property is an auto-property, or a plain field when Field is set.
type Property struct {
	Access      string
	Type        string
	Name        string
	Const       bool
	Field       bool
	Initializer string

	depth int
}

// Build renders the property on a single line.
func (p *Property) Build() string {
	var sb strings.Builder
	sb.WriteString(indent(p.depth))
	sb.WriteString(p.Access)
	sb.WriteByte(' ')
	if p.Const {
		sb.WriteString("const ")
	}
	sb.WriteString(p.Type)
	sb.WriteByte(' ')
	sb.WriteString(p.Name)
	if !p.Field {
		sb.WriteString(" { get; set; }")
	}
	switch {
	case p.Initializer != "":
		sb.WriteString(" = ")
		sb.WriteString(p.Initializer)
		sb.WriteByte(';')
	case p.Field:
		sb.WriteByte(';')
	}
	return sb.String()
}

// PropertyBuilder configures a property.
type PropertyBuilder struct {
	parent *ClassBuilder
	prop   *Property
}

// Const marks the property const.
func (b *PropertyBuilder) Const() *PropertyBuilder {
	b.prop.Const = true
	return b
}

// Field renders the property as a plain field.
func (b *PropertyBuilder) Field() *PropertyBuilder {
	b.prop.Field = true
	return b
}

// WithInitializer sets the initializer expression.
func (b *PropertyBuilder) WithInitializer(expr string) *PropertyBuilder {
	b.prop.Initializer = expr
	return b
}

// End returns to the class.
func (b *PropertyBuilder) End() *ClassBuilder {
	return b.parent
}

// MethodModifier is an optional method modifier.
type MethodModifier int

const (
	MethodPlain MethodModifier = iota
	MethodVirtual
	MethodOverride
)

func (m MethodModifier) keyword() string {
	switch m {
	case MethodVirtual:
		return "virtual "
	case MethodOverride:
		return "override "
	default:
		return ""
	}
}

// Parameter is a method parameter. Params marks a variadic parameter,
// whose Type is the element type.
type Parameter struct {
	Type   string
	Name   string
	Params bool
}

func (p Parameter) String() string {
	if p.Params {
		return "params " + p.Type + "[] " + p.Name
	}
	return p.Type + " " + p.Name
}

// Method is a public method declaration.
type Method struct {
	Modifier   MethodModifier
	ReturnType string
	Name       string
	Parameters []Parameter
	Statements []Statement

	depth int
}

// Signature renders the declaration line without indentation.
func (m *Method) Signature() string {
	params := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		params[i] = p.String()
	}
	return "public " + m.Modifier.keyword() + m.ReturnType + " " + m.Name + "(" + strings.Join(params, ", ") + ")"
}

// Build renders the method with its body.
func (m *Method) Build() string {
	pad := indent(m.depth)
	lines := []string{pad + m.Signature(), pad + "{"}
	for _, s := range m.Statements {
		lines = append(lines, s.Build())
	}
	lines = append(lines, pad+"}")
	return strings.Join(lines, "\n")
}

// MethodBuilder appends parameters and statements to a method.
type MethodBuilder struct {
	parent *ClassBuilder
	method *Method
}

// Method returns the node being built.
func (b *MethodBuilder) Method() *Method {
	return b.method
}

// WithParameter appends a parameter.
func (b *MethodBuilder) WithParameter(typ, name string) *MethodBuilder {
	b.method.Parameters = append(b.method.Parameters, Parameter{Type: typ, Name: name})
	return b
}

// WithParams appends a variadic parameter of elementType.
func (b *MethodBuilder) WithParams(elementType, name string) *MethodBuilder {
	b.method.Parameters = append(b.method.Parameters, Parameter{Type: elementType, Name: name, Params: true})
	return b
}

// WithStatement appends a statement. The terminating semicolon is added on build.
func (b *MethodBuilder) WithStatement(text string) *MethodBuilder {
	b.method.Statements = append(b.method.Statements, &LineStatement{Text: text, depth: b.method.depth + 1})
	return b
}

// WithEmptyStatement appends a blank line.
func (b *MethodBuilder) WithEmptyStatement() *MethodBuilder {
	b.method.Statements = append(b.method.Statements, &EmptyStatement{})
	return b
}

// WithBlock appends a block statement and descends into it.
func (b *MethodBuilder) WithBlock(header string) *BlockBuilder {
	block := &BlockStatement{Header: header, depth: b.method.depth + 1}
	b.method.Statements = append(b.method.Statements, block)
	return &BlockBuilder{method: b, block: block}
}

// End returns to the class.
func (b *MethodBuilder) End() *ClassBuilder {
	return b.parent
}
