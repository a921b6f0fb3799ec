// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package builder

import (
	"context"

	"github.com/albertocavalcante/buildergen/generator"
	"github.com/albertocavalcante/buildergen/internal/typemodel"
)

// Generator metadata.
const (
	Name         = "builder"
	FileName     = "DomainModelBuilder.g.cs"
	DiagnosticID = "BUILDER_ERROR"
)

// Generator implements [generator.Generator] for IR-driven builder generation.
type Generator struct{}

// NewGenerator creates a new builder generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:         Name,
		Version:      "1.0.0",
		Description:  "Generate fluent {Type}Builder classes through the C# object model",
		FileName:     FileName,
		DiagnosticID: DiagnosticID,
		Triggers:     generator.TriggerCompilation,
	}
}

// Generate produces DomainModelBuilder.g.cs from the snapshot's metadata.
func (g *Generator) Generate(ctx context.Context, snap *generator.Snapshot, cfg generator.Config) (*generator.Artifact, error) {
	types, ok, err := Candidates(snap, cfg)
	if err != nil || !ok {
		return nil, err
	}

	internalCfg, err := ConfigFrom(cfg, DefaultSuffix)
	if err != nil {
		return nil, err
	}

	out, err := New(types, internalCfg).Generate()
	if err != nil {
		return nil, err
	}
	return &generator.Artifact{Name: FileName, Content: out.Source}, nil
}

// Candidates selects and describes the types that get builders.
//
// It reports false when the snapshot carries no metadata or the metadata
// belongs to an assembly other than cfg.TargetAssembly; such passes emit
// nothing.
func Candidates(snap *generator.Snapshot, cfg generator.Config) ([]typemodel.TypeDescriptor, bool, error) {
	c := snap.Compilation
	if c == nil || c.Assembly != cfg.TargetAssembly {
		return nil, false, nil
	}

	filter := cfg.TypeFilter(c)
	types, err := typemodel.ExtractSelected(c, cfg.Namespace, func(name string) bool {
		return generator.Selects(filter, name)
	})
	if err != nil {
		return nil, false, err
	}
	return types, true, nil
}
