// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/albertocavalcante/buildergen/generator"
)

type ListCmd struct{}

func (c *ListCmd) Run() error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, g := range generator.All() {
		md := g.Metadata()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", md.Name, md.FileName, md.Triggers, md.Description)
	}
	return tw.Flush()
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}
