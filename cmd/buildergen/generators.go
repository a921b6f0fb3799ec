// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/albertocavalcante/buildergen/generator"
	"github.com/albertocavalcante/buildergen/generators/builder"
	"github.com/albertocavalcante/buildergen/generators/rawbuilder"
	"github.com/albertocavalcante/buildergen/generators/translations"
)

func init() {
	generator.Register(builder.NewGenerator())
	generator.Register(rawbuilder.NewGenerator())
	generator.Register(translations.NewGenerator())
}
