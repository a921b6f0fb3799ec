// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package rawbuilder generates fluent C# builder classes by interpolating
// type descriptors into a fixed text template.
//
// It follows the same policy as package builder: same method names, same
// collection handling and the same Build contract. Only the class name
// suffix and the member layout differ. The two generators share the type
// model and are kept as separate code paths so one can be checked against
// the other.
package rawbuilder

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/buildergen/generators/builder"
	"github.com/albertocavalcante/buildergen/internal/typemodel"
)

//go:embed templates/builder.tmpl
var builderTemplate string

// Codegen renders builder source from the embedded template.
type Codegen struct {
	types  []typemodel.TypeDescriptor
	config builder.Config
	tmpl   *template.Template
}

// templateData is the root value passed to the template.
type templateData struct {
	Header []string
	Usings []string
	Suffix string
	Types  []typemodel.TypeDescriptor
}

// New creates a new template Codegen.
func New(types []typemodel.TypeDescriptor, cfg builder.Config) *Codegen {
	if cfg.Suffix == "" {
		cfg.Suffix = DefaultSuffix
	}
	if cfg.Construction == "" {
		cfg.Construction = builder.ConstructionFactory
	}

	funcs := template.FuncMap{
		"newList": func(elem string) string {
			return "new " + typemodel.ListType + "<" + elem + ">()"
		},
		"construct": cfg.Construction.Expression,
	}
	tmpl := template.Must(template.New("builder").Funcs(funcs).Parse(builderTemplate))

	return &Codegen{types: types, config: cfg, tmpl: tmpl}
}

// Generate renders the builder source file.
func (g *Codegen) Generate() (*builder.Output, error) {
	data := templateData{
		Header: builder.Header,
		Usings: builder.Usings,
		Suffix: g.config.Suffix,
		Types:  g.types,
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "execute builder template")
	}
	return &builder.Output{Source: buf.Bytes()}, nil
}
