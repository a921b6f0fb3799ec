// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package translations

import (
	"context"

	"github.com/albertocavalcante/buildergen/generator"
)

// Generator metadata.
const (
	Name             = "translations"
	FileName         = "Translations.g.cs"
	DiagnosticID     = "TRANSLATIONS_ERROR"
	DefaultNamespace = "Translations"
)

// Generator implements [generator.Generator] for translation resources.
type Generator struct{}

// NewGenerator creates a new translations generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:         Name,
		Version:      "1.0.0",
		Description:  "Generate constant classes from JSON translation files",
		FileName:     FileName,
		DiagnosticID: DiagnosticID,
		Triggers:     generator.TriggerAdditionalTexts,
	}
}

// Generate produces Translations.g.cs from the snapshot's JSON resources.
// It emits nothing when no resource matches.
func (g *Generator) Generate(ctx context.Context, snap *generator.Snapshot, cfg generator.Config) (*generator.Artifact, error) {
	texts := snap.TextsWithExtension(Extension)
	if len(texts) == 0 {
		return nil, nil
	}

	resources := make([]Resource, 0, len(texts))
	for _, t := range texts {
		content, _ := t.Text()
		resources = append(resources, Resource{Path: t.Path, Content: content})
	}

	src, err := New(resources, cfg.Option("namespace", DefaultNamespace)).Generate()
	if err != nil {
		return nil, err
	}
	return &generator.Artifact{Name: FileName, Content: src}, nil
}
