// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package host drives generation passes: it runs generators over a
// snapshot, hands their artifacts to a sink and reruns them when inputs
// change.
package host

import (
	"context"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/buildergen/generator"
)

// Runner runs generation passes.
type Runner struct {
	// Generators are the generators to run.
	Generators []generator.Generator

	// Config returns the pass configuration for a generator.
	// If nil, generator.DefaultConfig is used.
	Config func(name string) generator.Config

	// Sink receives the artifacts of successful passes.
	Sink Sink

	// Logger receives progress and diagnostics. If nil, nothing is logged.
	Logger *zap.SugaredLogger

	// Workers bounds concurrent passes (default: GOMAXPROCS).
	Workers int
}

// Report is the outcome of one Run.
type Report struct {
	// Results holds one entry per generator that ran, sorted by name.
	Results []generator.Result

	// Written lists the artifact names handed to the sink, sorted.
	Written []string

	// Removed lists the artifact names removed from the sink because their
	// pass failed or had nothing to emit, sorted.
	Removed []string
}

// Failed reports whether any pass reported an error diagnostic.
func (r *Report) Failed() bool {
	return slices.ContainsFunc(r.Results, generator.Result.Failed)
}

// Diagnostics returns the diagnostics of every pass.
func (r *Report) Diagnostics() []generator.Diagnostic {
	var out []generator.Diagnostic
	for _, res := range r.Results {
		out = append(out, res.Diagnostics...)
	}
	return out
}

// Run runs every generator whose triggers intersect triggers.
//
// Passes run concurrently and independently; each one either yields its
// artifact or its diagnostics. Artifacts are written once all passes have
// finished. The returned error is for sink or context failures only.
func (r *Runner) Run(ctx context.Context, snap *generator.Snapshot, triggers generator.Trigger) (*Report, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var gens []generator.Generator
	fileNames := make(map[string]string)
	for _, g := range r.Generators {
		md := g.Metadata()
		if md.Triggers.Has(triggers) {
			gens = append(gens, g)
			fileNames[md.Name] = md.FileName
		}
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]generator.Result, len(gens))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, g := range gens {
		eg.Go(func() error {
			name := g.Metadata().Name
			start := time.Now()
			results[i] = generator.RunPass(egCtx, g, snap, r.config(name))
			log.Debugw("Pass finished",
				"generator", name,
				"duration", time.Since(start))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b generator.Result) int {
		return strings.Compare(a.Generator, b.Generator)
	})

	report := &Report{Results: results}
	for _, res := range results {
		for _, d := range res.Diagnostics {
			log.Errorw("Generation failed",
				"generator", res.Generator,
				"id", d.ID,
				"message", d.Message)
		}
		if res.Artifact == nil {
			if !res.Failed() {
				log.Infow("Nothing to generate", "generator", res.Generator)
			}
			name := fileNames[res.Generator]
			if r.Sink == nil || name == "" {
				continue
			}
			// The previous output must not outlive a pass that produced none.
			if err := r.Sink.Remove(ctx, name); err != nil {
				return report, errors.Wrapf(err, "remove %s", name)
			}
			report.Removed = append(report.Removed, name)
			log.Debugw("Removed artifact", "generator", res.Generator, "file", name)
			continue
		}

		if r.Sink != nil {
			if err := r.Sink.WriteFile(ctx, res.Artifact.Name, res.Artifact.Content); err != nil {
				return report, errors.Wrapf(err, "write %s", res.Artifact.Name)
			}
		}
		report.Written = append(report.Written, res.Artifact.Name)
		log.Infow("Generated",
			"generator", res.Generator,
			"file", res.Artifact.Name,
			"bytes", len(res.Artifact.Content))
	}
	slices.Sort(report.Written)
	slices.Sort(report.Removed)

	return report, ctx.Err()
}

func (r *Runner) config(name string) generator.Config {
	if r.Config == nil {
		return generator.DefaultConfig()
	}
	return r.Config(name)
}
