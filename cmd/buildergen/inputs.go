// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/buildergen/generator"
	"github.com/albertocavalcante/buildergen/internal/config"
)

// InputFlags select the inputs and generators of a run. They override the
// values of the configuration file.
type InputFlags struct {
	Config         string   `help:"Configuration file (default: ./buildergen.yaml when present)." placeholder:"FILE"`
	Metadata       string   `short:"m" help:"Type metadata document (JSON or YAML)." placeholder:"FILE"`
	AdditionalFile []string `short:"a" name:"additional-file" help:"Additional text input: a file, a directory or a glob. Repeatable." placeholder:"PATH"`
	Output         string   `short:"o" help:"Output directory (default: ${default_output})."`
	Assembly       string   `help:"Assembly whose types get builders."`
	Namespace      string   `help:"Only generate for types in this namespace."`
	Types          []string `short:"t" help:"Only generate for these types (comma-separated)."`
	Generator      []string `short:"g" help:"Generators to run (default: all)."`
	Option         []string `help:"Generator option, as GENERATOR.KEY=VALUE. Repeatable." placeholder:"GEN.KEY=VALUE"`
	NoResolveDeps  bool     `help:"Do not add the types referenced by the selected types."`
}

// resolve builds the validated configuration for a run.
func (f *InputFlags) resolve() (*config.Config, []generator.Generator, error) {
	path := f.Config
	if path == "" {
		if _, err := os.Stat(config.FileName); err == nil {
			path = config.FileName
		}
	}

	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, nil, err
		}
	}

	cfg.Apply(config.Overrides{
		Metadata:        f.Metadata,
		AdditionalFiles: f.AdditionalFile,
		Output:          f.Output,
		TargetAssembly:  f.Assembly,
		Namespace:       f.Namespace,
		Types:           f.Types,
		Generators:      f.Generator,
	})
	if f.NoResolveDeps {
		cfg.ResolveDeps = false
	}
	for _, o := range f.Option {
		if err := cfg.SetOption(o); err != nil {
			return nil, nil, err
		}
	}
	if cfg.Metadata == "" && len(cfg.AdditionalFiles) == 0 {
		return nil, nil, errors.New("no inputs: pass --metadata or --additional-file, or add a " + config.FileName)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	gens, err := generator.Select(cfg.Generators)
	if err != nil {
		return nil, nil, err
	}
	return cfg, gens, nil
}
