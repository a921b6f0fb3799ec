// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime/debug"
)

// Set by the release build through -ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Version returns the version string.
//
// Release builds report the ldflags values. Binaries installed with
// go install report the module version, and development builds report the
// VCS revision when available.
func Version() string {
	if version != "dev" {
		return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return "devel+" + s.Value[:7]
		}
	}
	return "devel"
}
