// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package translations generates C# constant classes from flat JSON
// translation files.
//
// Every resource becomes a sealed class named after the file, with one
// public const string per key:
//
//	// translations.en.json: {"greeting": "Hello"}
//	public sealed class translations_en
//	{
//	    public const string greeting = "Hello";
//	}
//
// Values are written between quotes verbatim. Quotes, backslashes and
// control characters in a value are not escaped.
package translations

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/albertocavalcante/buildergen/csharp"
	"github.com/albertocavalcante/buildergen/generators/builder"
)

// Extension selects the resources that are translation files.
const Extension = ".json"

// ErrResourceShape marks a resource that is not a flat string mapping.
var ErrResourceShape = errors.New("not a flat string mapping")

// Resource is one translation file.
type Resource struct {
	Path    string
	Content string
}

// Codegen generates the translations source for a set of resources.
type Codegen struct {
	resources []Resource
	namespace string
}

// New creates a new translations Codegen.
func New(resources []Resource, namespace string) *Codegen {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Codegen{resources: resources, namespace: namespace}
}

// Generate produces the translations source. A resource that fails to
// parse fails the whole file.
func (g *Codegen) Generate() ([]byte, error) {
	src := csharp.New()
	for _, h := range builder.Header {
		src.WithHeader(h)
	}
	ns := src.WithNamespace(g.namespace)

	for _, r := range g.resources {
		if r.Content == "" {
			continue
		}

		entries, err := Parse([]byte(r.Content))
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", r.Path)
		}

		cls := ns.WithSealedClass(ClassName(r.Path))
		for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
			cls.WithPublicProperty("string", pair.Key).
				Const().
				Field().
				WithInitializer(`"` + pair.Value + `"`)
		}
	}

	return []byte(src.Build()), nil
}

// Parse decodes a flat JSON object, keeping key order.
//
// String values are taken as they are. A null value decodes as the empty
// string, numbers keep their literal text, and booleans become "True" or
// "False". Objects and arrays are rejected.
func Parse(data []byte) (*orderedmap.OrderedMap[string, string], error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.Mark(errors.New("content is not a JSON object"), ErrResourceShape)
	}

	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(trimmed, raw); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode translations"), ErrResourceShape)
	}

	entries := orderedmap.New[string, string](raw.Len())
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		value, err := scalarText(pair.Value)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "key %q", pair.Key), ErrResourceShape)
		}
		entries.Set(pair.Key, value)
	}
	return entries, nil
}

func scalarText(raw json.RawMessage) (string, error) {
	v := bytes.TrimSpace(raw)
	switch {
	case len(v) == 0 || string(v) == "null":
		return "", nil
	case v[0] == '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", errors.Wrap(err, "decode string")
		}
		return s, nil
	case string(v) == "true":
		return "True", nil
	case string(v) == "false":
		return "False", nil
	case v[0] == '{' || v[0] == '[':
		return "", errors.New("value is not a scalar")
	default:
		return string(v), nil
	}
}

// ClassName derives the class name from a resource path: the base name
// without the extension, with remaining dots replaced by underscores.
// Both '/' and '\' separate path elements.
func ClassName(path string) string {
	name := path
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if strings.HasSuffix(strings.ToLower(name), Extension) {
		name = name[:len(name)-len(Extension)]
	}
	return strings.ReplaceAll(name, ".", "_")
}
