// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/buildergen/generator"
	"github.com/albertocavalcante/buildergen/internal/host"
	"github.com/albertocavalcante/buildergen/internal/load"
)

type GenerateCmd struct {
	InputFlags

	DryRun bool `help:"Print the generated files to stdout instead of writing them."`
}

func (c *GenerateCmd) Run(ctx context.Context, g *Globals) error {
	log := g.logger()
	defer func() { _ = log.Sync() }()

	cfg, gens, err := c.resolve()
	if err != nil {
		return err
	}

	res, err := load.Load(ctx, cfg.LoadOptions())
	if err != nil {
		return err
	}
	log.Debugw("Loaded inputs",
		"metadata", res.Source,
		"texts", len(res.Snapshot.Texts))

	var mem *host.MemorySink
	var sink host.Sink
	if c.DryRun {
		mem = host.NewMemorySink()
		sink = mem
	} else {
		sink = host.NewDirSink(cfg.Output)
	}

	runner := &host.Runner{
		Generators: gens,
		Config:     cfg.GeneratorConfig,
		Sink:       sink,
		Logger:     log,
	}
	report, err := runner.Run(ctx, res.Snapshot, generator.TriggerAll)
	if err != nil {
		return err
	}

	if mem != nil {
		printFiles(os.Stdout, mem)
	}
	return failure(report)
}

// printFiles writes every file of s to w, each preceded by a name line.
func printFiles(w io.Writer, s *host.MemorySink) {
	for i, name := range s.Names() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "==> %s <==\n", name)
		_, _ = w.Write(s.Get(name))
	}
}

// failure returns an error naming the failed generators, or nil.
func failure(report *host.Report) error {
	var failed []string
	for _, res := range report.Results {
		if res.Failed() {
			failed = append(failed, res.Generator)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return errors.Newf("generation failed: %v", failed)
}
