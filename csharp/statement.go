// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package csharp

import (
	"strings"
)

// Statement is a statement inside a method or block body.
type Statement interface {
	Build() string
}

// LineStatement is a single statement terminated by a semicolon.
type LineStatement struct {
	Text string

	depth int
}

// Build implements Statement.
func (s *LineStatement) Build() string {
	return indent(s.depth) + s.Text + ";"
}

// EmptyStatement renders as a blank line.
type EmptyStatement struct{}

// Build implements Statement.
func (s *EmptyStatement) Build() string {
	return ""
}

// BlockStatement is a header line followed by a braced body,
// e.g. an if statement.
type BlockStatement struct {
	Header     string
	Statements []Statement

	depth int
}

// Build implements Statement.
func (s *BlockStatement) Build() string {
	pad := indent(s.depth)
	lines := []string{pad + s.Header, pad + "{"}
	for _, child := range s.Statements {
		lines = append(lines, child.Build())
	}
	lines = append(lines, pad+"}")
	return strings.Join(lines, "\n")
}

// BlockBuilder appends statements to a block.
type BlockBuilder struct {
	method *MethodBuilder
	outer  *BlockBuilder
	block  *BlockStatement
}

// WithStatement appends a statement.
func (b *BlockBuilder) WithStatement(text string) *BlockBuilder {
	b.block.Statements = append(b.block.Statements, &LineStatement{Text: text, depth: b.block.depth + 1})
	return b
}

// WithEmptyStatement appends a blank line.
func (b *BlockBuilder) WithEmptyStatement() *BlockBuilder {
	b.block.Statements = append(b.block.Statements, &EmptyStatement{})
	return b
}

// WithBlock appends a nested block and descends into it.
func (b *BlockBuilder) WithBlock(header string) *BlockBuilder {
	nested := &BlockStatement{Header: header, depth: b.block.depth + 1}
	b.block.Statements = append(b.block.Statements, nested)
	return &BlockBuilder{method: b.method, outer: b, block: nested}
}

// Close returns to the enclosing block, or nil for a top-level block.
func (b *BlockBuilder) Close() *BlockBuilder {
	return b.outer
}

// End returns to the method that owns the block.
func (b *BlockBuilder) End() *MethodBuilder {
	return b.method
}
