// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// Artifact is one generated source file.
type Artifact struct {
	// Name is the file name (e.g., "DomainModelBuilder.g.cs").
	Name string

	// Content is the complete file text.
	Content []byte
}

// NewArtifact creates an artifact from text.
func NewArtifact(name, text string) *Artifact {
	return &Artifact{Name: name, Content: []byte(text)}
}

// Text returns the content as a string.
func (a *Artifact) Text() string {
	return string(a.Content)
}
