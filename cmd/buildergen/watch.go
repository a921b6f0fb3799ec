// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/albertocavalcante/buildergen/generator"
	"github.com/albertocavalcante/buildergen/internal/config"
	"github.com/albertocavalcante/buildergen/internal/host"
	"github.com/albertocavalcante/buildergen/internal/load"
)

type WatchCmd struct {
	InputFlags

	Debounce time.Duration `help:"Quiet period before regenerating." default:"300ms"`
}

func (c *WatchCmd) Run(ctx context.Context, g *Globals) error {
	log := g.logger()
	defer func() { _ = log.Sync() }()

	cfg, gens, err := c.resolve()
	if err != nil {
		return err
	}

	runner := &host.Runner{
		Generators: gens,
		Config:     cfg.GeneratorConfig,
		Sink:       host.NewDirSink(cfg.Output),
		Logger:     log,
	}

	res, err := load.Load(ctx, cfg.LoadOptions())
	if err != nil {
		return err
	}
	if _, err := runner.Run(ctx, res.Snapshot, generator.TriggerAll); err != nil {
		return err
	}

	w, err := host.NewWatcher(host.WatcherOptions{
		MetadataPath: cfg.Metadata,
		Dirs:         res.Dirs,
		IgnoreDirs:   []string{cfg.Output},
		Debounce:     c.Debounce,
		Logger:       log,
	}, func(ctx context.Context, triggers generator.Trigger) {
		regenerate(ctx, log, cfg, runner, triggers)
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	log.Warnw("Watching for changes", "dirs", res.Dirs, "output", cfg.Output)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// regenerate reloads the inputs and reruns the generators the change affects.
// Failures are logged; the watch keeps going.
func regenerate(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config, runner *host.Runner, triggers generator.Trigger) {
	res, err := load.Load(ctx, cfg.LoadOptions())
	if err != nil {
		log.Errorw("Reload failed", "error", err)
		return
	}
	report, err := runner.Run(ctx, res.Snapshot, triggers)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Errorw("Regeneration failed", "error", err)
		}
		return
	}
	for _, name := range report.Written {
		log.Warnw("Regenerated", "file", filepath.Join(cfg.Output, name), "trigger", triggers.String())
	}
}
