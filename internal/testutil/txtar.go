// SPDX-License-Identifier: MIT

// Package testutil runs golden tests for generators against txtar archives.
//
// An archive holds a description, an optional input.json or input.yaml
// metadata document, additional texts under texts/, and the expected output
// under want/. A "Flags: key=value, key=value" line in the description
// configures the pass.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/buildergen/generator"
	"github.com/albertocavalcante/buildergen/model"
)

// DiagnosticsFile is the pseudo output file that holds reported diagnostics,
// one per line.
const DiagnosticsFile = "diagnostics"

// Case is one golden test.
type Case struct {
	Name        string
	Description string

	// Flags are the comma-separated entries of the "Flags:" line.
	Flags []string

	// Input is the metadata document and InputName its archive name.
	Input     []byte
	InputName string

	// Texts are the additional texts, named without the texts/ prefix.
	Texts []txtar.File

	// Want maps output names to expected content.
	Want map[string][]byte
}

// ParseCase reads a Case from an archive.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Flags:       flagsOf(string(ar.Comment)),
		Want:        make(map[string][]byte),
	}

	for _, f := range ar.Files {
		if text, ok := strings.CutPrefix(f.Name, "texts/"); ok {
			c.Texts = append(c.Texts, txtar.File{Name: text, Data: f.Data})
			continue
		}
		if out, ok := strings.CutPrefix(f.Name, "want/"); ok {
			c.Want[out] = f.Data
			continue
		}
		switch f.Name {
		case "input.json", "input.yaml", "input.yml":
			c.Input, c.InputName = f.Data, f.Name
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected input.*, texts/* or want/*)", f.Name)
		}
	}

	switch {
	case c.Input == nil && len(c.Texts) == 0:
		return nil, fmt.Errorf("archive has neither a metadata document nor texts")
	case len(c.Want) == 0:
		return nil, fmt.Errorf("missing want/* files in archive")
	}
	return c, nil
}

func flagsOf(description string) []string {
	for line := range strings.Lines(description) {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Flags:")
		if !ok {
			continue
		}
		var flags []string
		for _, f := range strings.Split(rest, ",") {
			if f = strings.TrimSpace(f); f != "" {
				flags = append(flags, f)
			}
		}
		return flags
	}
	return nil
}

// Snapshot builds the generation snapshot described by the case.
func (c *Case) Snapshot() (*generator.Snapshot, error) {
	snap := &generator.Snapshot{}
	if c.Input != nil {
		comp, err := model.Parse(c.Input, model.FormatFromPath(c.InputName))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", c.InputName, err)
		}
		snap.Compilation = comp
	}
	for _, f := range c.Texts {
		snap.Texts = append(snap.Texts, generator.NewText(f.Name, string(f.Data)))
	}
	return snap, nil
}

// Config builds a generator config from "key=value" flags.
//
// The keys assembly, namespace, types (separated by "|") and resolve-deps
// map to Config fields; every other key becomes a generator option.
func Config(flags []string) generator.Config {
	cfg := generator.DefaultConfig()
	for _, flag := range flags {
		key, value, _ := strings.Cut(flag, "=")
		switch key {
		case "assembly":
			cfg.TargetAssembly = value
		case "namespace":
			cfg.Namespace = value
		case "types":
			cfg.Types = strings.Split(value, "|")
		case "resolve-deps":
			cfg.ResolveDeps = value == "true"
		default:
			if cfg.Options == nil {
				cfg.Options = make(map[string]string)
			}
			cfg.Options[key] = value
		}
	}
	return cfg
}

// GenerateFunc produces named outputs from a snapshot.
type GenerateFunc func(snap *generator.Snapshot, cfg generator.Config) (map[string][]byte, error)

// PassFunc returns a GenerateFunc that runs one pass of g.
// The artifact, if any, is returned under its name; diagnostics, if any,
// under DiagnosticsFile.
func PassFunc(g generator.Generator) GenerateFunc {
	return func(snap *generator.Snapshot, cfg generator.Config) (map[string][]byte, error) {
		res := generator.RunPass(context.Background(), g, snap, cfg)
		out := make(map[string][]byte)
		if res.Artifact != nil {
			out[res.Artifact.Name] = res.Artifact.Content
		}
		if len(res.Diagnostics) > 0 {
			var buf bytes.Buffer
			for _, d := range res.Diagnostics {
				fmt.Fprintln(&buf, d.String())
			}
			out[DiagnosticsFile] = buf.Bytes()
		}
		return out, nil
	}
}

// Generate runs the case through generate.
func (c *Case) Generate(generate GenerateFunc) (map[string][]byte, error) {
	snap, err := c.Snapshot()
	if err != nil {
		return nil, err
	}
	return generate(snap, Config(c.Flags))
}

// Run generates the case and compares the result with Want.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := c.Generate(generate)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	Compare(t, c.Want, got)
}

// Compare reports missing, unexpected and differing outputs. Trailing
// whitespace and trailing newlines are ignored.
func Compare(t *testing.T, want, got map[string][]byte) {
	t.Helper()

	for _, name := range slices.Sorted(maps.Keys(want)) {
		g, ok := got[name]
		if !ok {
			t.Errorf("missing output file: %q", name)
			continue
		}
		if diff := cmp.Diff(Normalize(want[name]), Normalize(g)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", name, diff)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(got)) {
		if _, ok := want[name]; !ok {
			t.Errorf("unexpected output file: %q", name)
		}
	}
}

// Normalize trims trailing whitespace from every line and trailing newlines
// from the content.
func Normalize(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive returns ar with its want/ files replaced by got.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{Comment: ar.Comment}
	for _, f := range ar.Files {
		if !strings.HasPrefix(f.Name, "want/") {
			result.Files = append(result.Files, f)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(got)) {
		content := got[name]
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{Name: "want/" + name, Data: content})
	}
	return result
}

// RunGolden runs every testdata/*.txtar archive under dir as a subtest.
// With update set, the want/ files are rewritten instead of compared.
func RunGolden(t *testing.T, dir string, generate GenerateFunc, update bool) {
	t.Helper()

	files, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("glob %s: %v", dir, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %s", dir)
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("parse txtar: %v", err)
			}
			tc, err := ParseCase(name, ar)
			if err != nil {
				t.Fatalf("parse case: %v", err)
			}

			if !update {
				tc.Run(t, generate)
				return
			}
			got, err := tc.Generate(generate)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if err := os.WriteFile(file, txtar.Format(UpdateArchive(ar, got)), 0o644); err != nil {
				t.Fatalf("write updated file: %v", err)
			}
			t.Logf("updated %s", file)
		})
	}
}
