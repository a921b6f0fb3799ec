// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package logging builds the zap logger used by the command line tool.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the log format and level.
type Options struct {
	// JSON selects structured JSON output instead of console text.
	JSON bool

	// Verbosity is the -v count: 0 logs warnings, 1 info, 2 and up debug.
	Verbosity int
}

// Level maps a -v count to a log level.
func Level(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *zap.SugaredLogger {
	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), Level(opts.Verbosity))
	return zap.New(core).Sugar()
}
