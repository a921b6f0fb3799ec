// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for source generators and the
// pass runner that turns their failures into diagnostics.
package generator

import (
	"context"
)

// Generator is the interface that all source generators must implement.
//
// Generate is one pass. It must be a pure function of the snapshot and
// config: implementations keep no state between calls and may run
// concurrently with themselves and with other generators. A nil Artifact
// with a nil error means the pass had nothing to emit.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate produces at most one artifact from the snapshot.
	Generate(ctx context.Context, snap *Snapshot, cfg Config) (*Artifact, error)
}

// Trigger is a set of input changes that cause a pass to rerun.
type Trigger uint8

const (
	// TriggerCompilation fires when the type metadata changes.
	TriggerCompilation Trigger = 1 << iota

	// TriggerAdditionalTexts fires when the additional text set changes.
	TriggerAdditionalTexts

	// TriggerAll fires on any change.
	TriggerAll = TriggerCompilation | TriggerAdditionalTexts
)

// Has reports whether t shares any input with other.
func (t Trigger) Has(other Trigger) bool {
	return t&other != 0
}

func (t Trigger) String() string {
	switch t {
	case TriggerCompilation:
		return "compilation"
	case TriggerAdditionalTexts:
		return "additional-texts"
	case TriggerAll:
		return "all"
	case 0:
		return "none"
	default:
		return "unknown"
	}
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "builder", "translations").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileName is the stable name of the artifact the generator emits.
	FileName string

	// DiagnosticID identifies diagnostics reported for failed passes.
	DiagnosticID string

	// Triggers lists the inputs the generator reads.
	Triggers Trigger
}
