// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format is a metadata document encoding.
type Format int

const (
	// FormatJSON is a JSON document.
	FormatJSON Format = iota
	// FormatYAML is a YAML document.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks a format from the file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// utf8BOM is the byte order mark some editors write at the start of a file.
var utf8BOM = []byte("\xef\xbb\xbf")

// Parse decodes, links and validates a metadata document.
// A leading UTF-8 byte order mark is ignored.
func Parse(data []byte, format Format) (*Compilation, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var c Compilation
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return nil, errors.Wrap(err, "decode yaml metadata")
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return nil, errors.Wrap(err, "decode json metadata")
		}
	}

	if c.Global == nil {
		c.Global = &Namespace{}
	}
	c.Link()

	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseFile reads and parses the metadata document at path.
func ParseFile(path string) (*Compilation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read metadata %s", path)
	}
	c, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "parse metadata %s", path)
	}
	return c, nil
}
