// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/buildergen/generator"
	"github.com/albertocavalcante/buildergen/internal/config"
)

func generatorNames(gens []generator.Generator) []string {
	names := make([]string, 0, len(gens))
	for _, g := range gens {
		names = append(names, g.Metadata().Name)
	}
	return names
}

func TestInputFlags_ConfigInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	content := "metadata: domain.yaml\ngenerators: [builder]\noptions:\n  builder:\n    suffix: Fixture\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)

	f := &InputFlags{
		Namespace: "Shop",
		Option:    []string{"builder.construction=activator"},
	}
	cfg, gens, err := f.resolve()
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	if diff := cmp.Diff([]string{"builder"}, generatorNames(gens)); diff != "" {
		t.Errorf("generators mismatch (-want +got):\n%s", diff)
	}
	if cfg.Namespace != "Shop" || !cfg.ResolveDeps {
		t.Errorf("config = %+v", cfg)
	}
	want := map[string]string{"suffix": "Fixture", "construction": "activator"}
	if diff := cmp.Diff(want, cfg.Options["builder"]); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	if cfg.Metadata != "domain.yaml" {
		t.Errorf("Metadata = %q, want %q", cfg.Metadata, "domain.yaml")
	}
}

func TestInputFlags_FlagsOnly(t *testing.T) {
	t.Chdir(t.TempDir())

	f := &InputFlags{Metadata: "domain.json", NoResolveDeps: true}
	cfg, gens, err := f.resolve()
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.ResolveDeps {
		t.Error("ResolveDeps = true, want false")
	}
	if cfg.Output != config.DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, config.DefaultOutput)
	}
	if diff := cmp.Diff([]string{"builder", "rawbuilder", "translations"}, generatorNames(gens)); diff != "" {
		t.Errorf("generators mismatch (-want +got):\n%s", diff)
	}
}

func TestInputFlags_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name  string
		flags InputFlags
		want  string
	}{
		{name: "no inputs", flags: InputFlags{}, want: "no inputs"},
		{name: "unknown generator", flags: InputFlags{Metadata: "m.json", Generator: []string{"kotlin"}}, want: `unknown generator "kotlin"`},
		{name: "bad option", flags: InputFlags{Metadata: "m.json", Option: []string{"suffix=Fixture"}}, want: "invalid option"},
		{name: "missing config", flags: InputFlags{Config: "missing.yaml"}, want: "missing.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.flags.resolve()
			if err == nil {
				t.Fatal("resolve() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("resolve() error = %v, want %q", err, tt.want)
			}
		})
	}
}
