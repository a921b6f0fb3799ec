// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rawbuilder

import (
	"context"

	"github.com/albertocavalcante/buildergen/generator"
	"github.com/albertocavalcante/buildergen/generators/builder"
)

// Generator metadata.
const (
	Name          = "rawbuilder"
	FileName      = "RawDomainModelBuilder.g.cs"
	DiagnosticID  = "RAW_BUILDER_ERROR"
	DefaultSuffix = "RawBuilder"
)

// Generator implements [generator.Generator] for template-driven builder generation.
type Generator struct{}

// NewGenerator creates a new raw builder generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:         Name,
		Version:      "1.0.0",
		Description:  "Generate fluent {Type}RawBuilder classes from a text template",
		FileName:     FileName,
		DiagnosticID: DiagnosticID,
		Triggers:     generator.TriggerCompilation,
	}
}

// Generate produces RawDomainModelBuilder.g.cs from the snapshot's metadata.
func (g *Generator) Generate(ctx context.Context, snap *generator.Snapshot, cfg generator.Config) (*generator.Artifact, error) {
	types, ok, err := builder.Candidates(snap, cfg)
	if err != nil || !ok {
		return nil, err
	}

	internalCfg, err := builder.ConfigFrom(cfg, DefaultSuffix)
	if err != nil {
		return nil, err
	}

	out, err := New(types, internalCfg).Generate()
	if err != nil {
		return nil, err
	}
	return &generator.Artifact{Name: FileName, Content: out.Source}, nil
}
