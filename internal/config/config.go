// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads the buildergen.yaml project file.
//
// A project file names the inputs, the output directory and the generators
// to run:
//
//	metadata: domain.yaml
//	additionalFiles:
//	  - i18n
//	output: generated
//	targetAssembly: Domain
//	namespace: Domain
//	generators: [builder, translations]
//	options:
//	  builder:
//	    construction: activator
//
// Relative paths are resolved against the directory of the project file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/buildergen/generator"
	"github.com/albertocavalcante/buildergen/internal/load"
)

// FileName is the project file looked up in the working directory.
const FileName = "buildergen.yaml"

// DefaultOutput is the output directory used when none is configured.
const DefaultOutput = "generated"

// ErrInvalid marks a project file that fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the project configuration.
type Config struct {
	// Metadata is the type metadata document.
	Metadata string `yaml:"metadata"`

	// AdditionalFiles are files, directories or globs of additional texts.
	AdditionalFiles []string `yaml:"additionalFiles" validate:"dive,required"`

	// Output is the directory generated files are written to.
	Output string `yaml:"output" validate:"required"`

	// TargetAssembly is the only assembly builders are generated for.
	TargetAssembly string `yaml:"targetAssembly" validate:"required"`

	// Namespace is the namespace prefix that selects types.
	Namespace string `yaml:"namespace"`

	// Types restricts generation to the named types.
	Types []string `yaml:"types" validate:"dive,required"`

	// ResolveDeps adds the types referenced by Types.
	ResolveDeps bool `yaml:"resolveDeps"`

	// Generators lists the generators to run (empty = all).
	Generators []string `yaml:"generators" validate:"dive,generator"`

	// Options holds generator-specific options, keyed by generator name.
	Options map[string]map[string]string `yaml:"options" validate:"dive,keys,generator,endkeys"`
}

// Default returns the configuration used without a project file.
func Default() *Config {
	return &Config{
		Output:         DefaultOutput,
		TargetAssembly: generator.DefaultTargetAssembly,
		Namespace:      generator.DefaultNamespace,
		ResolveDeps:    true,
	}
}

// Load reads the project file at path on top of Default.
// It does not validate; call Validate once overrides are applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// resolve makes relative paths relative to dir.
func (c *Config) resolve(dir string) {
	rel := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	c.Metadata = rel(c.Metadata)
	c.Output = rel(c.Output)
	for i, f := range c.AdditionalFiles {
		c.AdditionalFiles[i] = rel(f)
	}
}

// Overrides are values set on the command line. Zero values leave the
// configuration unchanged.
type Overrides struct {
	Metadata        string
	AdditionalFiles []string
	Output          string
	TargetAssembly  string
	Namespace       string
	Types           []string
	Generators      []string
}

// Apply replaces configured values with the non-zero overrides.
func (c *Config) Apply(o Overrides) {
	if o.Metadata != "" {
		c.Metadata = o.Metadata
	}
	if len(o.AdditionalFiles) > 0 {
		c.AdditionalFiles = o.AdditionalFiles
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.TargetAssembly != "" {
		c.TargetAssembly = o.TargetAssembly
	}
	if o.Namespace != "" {
		c.Namespace = o.Namespace
	}
	if len(o.Types) > 0 {
		c.Types = o.Types
	}
	if len(o.Generators) > 0 {
		c.Generators = o.Generators
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		return name
	})
	if err := v.RegisterValidation("generator", func(fl validator.FieldLevel) bool {
		_, ok := generator.Get(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the configuration against the registered generators.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate config")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return errors.Wrap(ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Namespace() + ": required"
	case "generator":
		return fmt.Sprintf("%s: unknown generator %q (available: %s)",
			fe.Namespace(), fe.Value(), strings.Join(generator.List(), ", "))
	default:
		return fmt.Sprintf("%s: failed %s validation", fe.Namespace(), fe.Tag())
	}
}

// GeneratorConfig returns the pass configuration for the named generator.
func (c *Config) GeneratorConfig(name string) generator.Config {
	return generator.Config{
		TargetAssembly: c.TargetAssembly,
		Namespace:      c.Namespace,
		Types:          c.Types,
		ResolveDeps:    c.ResolveDeps,
		Options:        c.Options[name],
	}
}

// LoadOptions returns the input description for package load.
func (c *Config) LoadOptions() load.Options {
	return load.Options{
		MetadataPath:    c.Metadata,
		AdditionalFiles: c.AdditionalFiles,
	}
}

// SetOption parses a "generator.key=value" assignment into Options.
func (c *Config) SetOption(assignment string) error {
	target, value, ok := strings.Cut(assignment, "=")
	gen, key, dotted := strings.Cut(target, ".")
	if !ok || !dotted || gen == "" || key == "" {
		return errors.Newf("invalid option %q (want generator.key=value)", assignment)
	}
	if c.Options == nil {
		c.Options = make(map[string]map[string]string)
	}
	if c.Options[gen] == nil {
		c.Options[gen] = make(map[string]string)
	}
	c.Options[gen][key] = value
	return nil
}
