// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package builder generates fluent C# builder classes for domain types.
//
// For every type selected from the metadata it emits a partial class
// {Type}Builder in the type's namespace:
//   - a protected backing property per eligible property
//   - With{Name}(value) for scalar properties
//   - With{Name}(params T[]), Add{Name}Item(T) and Clear{Name}() for
//     List, IList and ICollection properties
//   - Build(), which creates the target and copies every backing property
//
// The source is assembled through the csharp object model.
package builder

import (
	"fmt"

	"github.com/albertocavalcante/buildergen/csharp"
	"github.com/albertocavalcante/buildergen/internal/typemodel"
)

// Header is the comment written at the top of generated files.
var Header = []string{
	"<auto-generated />",
	"Code generated by buildergen. DO NOT EDIT.",
}

// Usings are the namespaces generated builders depend on.
var Usings = []string{
	"System.Collections.Generic",
	"System.Linq",
}

// Codegen generates builder source for a set of type descriptors.
type Codegen struct {
	types  []typemodel.TypeDescriptor
	config Config
}

// Output contains the generated C# content.
type Output struct {
	Source []byte
}

// New creates a new builder Codegen.
func New(types []typemodel.TypeDescriptor, cfg Config) *Codegen {
	if cfg.Suffix == "" {
		cfg.Suffix = DefaultSuffix
	}
	if cfg.Construction == "" {
		cfg.Construction = ConstructionFactory
	}
	return &Codegen{types: types, config: cfg}
}

// Generate produces the builder source file.
func (g *Codegen) Generate() (*Output, error) {
	src := csharp.New()
	for _, h := range Header {
		src.WithHeader(h)
	}
	for _, u := range Usings {
		src.WithUsing(u)
	}

	for _, t := range g.types {
		g.generateType(src, t)
	}

	return &Output{Source: []byte(src.Build())}, nil
}

func (g *Codegen) generateType(src *csharp.Compilation, t typemodel.TypeDescriptor) {
	name := t.Name + g.config.Suffix
	cls := src.WithNamespace(t.Namespace).WithPartialClass(name)

	// ── Backing properties ──────────────────────────────────────────────

	for _, p := range t.Properties {
		prop := cls.WithProtectedProperty(p.TypeName, p.Name)
		if p.IsCollection {
			prop.WithInitializer(newList(p.ElementType))
		}
	}

	// ── Fluent setters ──────────────────────────────────────────────────

	for _, p := range t.Properties {
		if p.IsCollection {
			g.collectionMethods(cls, name, p)
		} else {
			g.scalarMethod(cls, name, p)
		}
	}

	// ── Build ───────────────────────────────────────────────────────────

	build := cls.WithMethod(t.QualifiedName, "Build").
		WithStatement("var item = " + g.config.Construction.Expression(t.QualifiedName))
	for _, p := range t.Properties {
		build.WithStatement(fmt.Sprintf("item.%s = %s", p.Name, p.Name))
	}
	build.WithStatement("return item")
}

func (g *Codegen) scalarMethod(cls *csharp.ClassBuilder, builder string, p typemodel.PropertyDescriptor) {
	cls.WithMethod(builder, "With"+p.Name).
		WithParameter(p.TypeName, p.Name).
		WithStatement(fmt.Sprintf("this.%s = %s", p.Name, p.Name)).
		WithStatement("return this")
}

func (g *Codegen) collectionMethods(cls *csharp.ClassBuilder, builder string, p typemodel.PropertyDescriptor) {
	cls.WithMethod(builder, "With"+p.Name).
		WithParams(p.ElementType, p.Name).
		WithStatement(fmt.Sprintf("this.%s = %s.ToList()", p.Name, p.Name)).
		WithStatement("return this")

	add := cls.WithVirtualMethod(builder, "Add"+p.Name+"Item").
		WithParameter(p.ElementType, "item")
	lazyInit(add, p)
	add.WithStatement(fmt.Sprintf("this.%s.Add(item)", p.Name)).
		WithStatement("return this")

	reset := cls.WithVirtualMethod(builder, "Clear"+p.Name)
	lazyInit(reset, p)
	reset.WithStatement(fmt.Sprintf("this.%s.Clear()", p.Name)).
		WithStatement("return this")
}

// lazyInit guards against a backing collection that was set to null.
func lazyInit(m *csharp.MethodBuilder, p typemodel.PropertyDescriptor) {
	m.WithBlock(fmt.Sprintf("if (this.%s == null)", p.Name)).
		WithStatement(fmt.Sprintf("this.%s = %s", p.Name, newList(p.ElementType))).
		End().
		WithEmptyStatement()
}

func newList(elem string) string {
	return "new " + typemodel.ListType + "<" + elem + ">()"
}
