// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command buildergen generates C# builder classes and translation constants
// from a type metadata document.
//
// Usage:
//
//	buildergen generate [flags]   Run every generator once
//	buildergen watch [flags]      Regenerate when inputs change
//	buildergen list               List the available generators
//	buildergen version            Print version information
//
// Without --config, ./buildergen.yaml is used when it exists.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/albertocavalcante/buildergen/internal/config"
	"github.com/albertocavalcante/buildergen/internal/logging"
)

// Globals are the flags shared by every command.
type Globals struct {
	Verbose int  `short:"v" type:"counter" help:"Increase log verbosity (repeatable)."`
	LogJSON bool `name:"log-json" help:"Write logs as JSON."`
}

func (g *Globals) logger() *zap.SugaredLogger {
	return logging.New(os.Stderr, logging.Options{JSON: g.LogJSON, Verbosity: g.Verbose})
}

type CLI struct {
	Globals

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate builders and translations once."`
	Watch    WatchCmd    `cmd:"" help:"Regenerate whenever the inputs change."`
	List     ListCmd     `cmd:"" help:"List the available generators."`
	Version  VersionCmd  `cmd:"" help:"Print version information."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("buildergen"),
		kong.Description("Generate fluent C# builders and translation constants from type metadata."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Vars{"default_output": config.DefaultOutput},
	)
	err := kctx.Run(&cli.Globals)
	kctx.FatalIfErrorf(err)
}
