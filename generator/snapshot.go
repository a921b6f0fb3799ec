// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"strings"

	"github.com/albertocavalcante/buildergen/model"
)

// Snapshot is the immutable input of one generation pass.
type Snapshot struct {
	// Compilation is the type metadata, or nil when none was supplied.
	Compilation *model.Compilation

	// Texts are the additional text files, in path order.
	Texts []AdditionalText
}

// AdditionalText is a non-source file handed to generators.
type AdditionalText struct {
	// Path is the file path as supplied by the host.
	Path string

	content *string
}

// NewText returns a text whose content could be read.
func NewText(path, content string) AdditionalText {
	return AdditionalText{Path: path, content: &content}
}

// UnreadableText returns a text whose content could not be read.
func UnreadableText(path string) AdditionalText {
	return AdditionalText{Path: path}
}

// Text returns the content and whether it could be retrieved.
func (t AdditionalText) Text() (string, bool) {
	if t.content == nil {
		return "", false
	}
	return *t.content, true
}

// TextsWithExtension returns the readable texts whose path ends with ext,
// compared case-insensitively.
func (s *Snapshot) TextsWithExtension(ext string) []AdditionalText {
	ext = strings.ToLower(ext)
	var out []AdditionalText
	for _, t := range s.Texts {
		if !strings.HasSuffix(strings.ToLower(t.Path), ext) {
			continue
		}
		if _, ok := t.Text(); !ok {
			continue
		}
		out = append(out, t)
	}
	return out
}
