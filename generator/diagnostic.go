// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
)

// Severity is the severity of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a message reported to the host.
type Diagnostic struct {
	// ID is the descriptor id (e.g., "BUILDER_ERROR").
	ID string

	// Title is the short message. Pass failures use the error text.
	Title string

	// Message is the full description. Pass failures use the error text.
	Message string

	Severity Severity

	// Location is the source anchor. Pass failures have none.
	Location string
}

func (d Diagnostic) String() string {
	if d.Location != "" {
		return fmt.Sprintf("%s: %s %s: %s", d.Location, d.Severity, d.ID, d.Message)
	}
	return fmt.Sprintf("%s %s: %s", d.Severity, d.ID, d.Message)
}

// FailureDiagnostic converts a pass failure into an error diagnostic.
func FailureDiagnostic(id string, err error) Diagnostic {
	msg := err.Error()
	return Diagnostic{
		ID:       id,
		Title:    msg,
		Message:  msg,
		Severity: SeverityError,
	}
}

// Result is the outcome of one pass: an artifact, or diagnostics, or neither.
type Result struct {
	// Generator is the name of the generator that ran.
	Generator string

	// Artifact is the emitted file, nil on failure or when there was nothing to emit.
	Artifact *Artifact

	// Diagnostics holds exactly one error diagnostic when the pass failed.
	Diagnostics []Diagnostic
}

// Failed reports whether the pass reported an error.
func (r Result) Failed() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// RunPass runs one generation pass of g.
//
// RunPass never panics and never returns an error: a failing or panicking
// pass yields a Result with no artifact and a single error diagnostic.
func RunPass(ctx context.Context, g Generator, snap *Snapshot, cfg Config) (res Result) {
	meta := g.Metadata()
	res.Generator = meta.Name

	defer func() {
		if r := recover(); r != nil {
			res = failedResult(meta, errors.Newf("panic: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return failedResult(meta, err)
	}

	art, err := g.Generate(ctx, snap, cfg)
	if err != nil {
		return failedResult(meta, err)
	}
	if art != nil && art.Name == "" {
		art.Name = meta.FileName
	}
	res.Artifact = art
	return res
}

func failedResult(meta Metadata, err error) Result {
	return Result{
		Generator:   meta.Name,
		Diagnostics: []Diagnostic{FailureDiagnostic(meta.DiagnosticID, err)},
	}
}
