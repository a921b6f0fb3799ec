// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typemodel

import (
	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/buildergen/model"
)

var (
	// ErrMetadataShape marks metadata that cannot produce a builder.
	ErrMetadataShape = errors.New("metadata shape")

	// ErrNoEligibleProperties is returned for a type without settable public properties.
	ErrNoEligibleProperties = errors.Mark(errors.New("no eligible properties"), ErrMetadataShape)

	// ErrMalformedCollection is returned for a collection that does not carry
	// exactly one type argument.
	ErrMalformedCollection = errors.Mark(errors.New("malformed collection"), ErrMetadataShape)

	// ErrGlobalNamespace is returned for a type declared outside any namespace.
	ErrGlobalNamespace = errors.Mark(errors.New("declared in the global namespace"), ErrMetadataShape)
)

func errMalformedCollection(ref model.TypeRef) error {
	return errors.Wrapf(ErrMalformedCollection, "%s has %d type arguments, want 1", ref, len(ref.Arguments))
}

func errNotCollection(ref model.TypeRef) error {
	return errors.Newf("%s is not a recognized collection", ref)
}

// TypeDescriptor describes a type that gets a builder.
type TypeDescriptor struct {
	// QualifiedName is the fully qualified type name (e.g., "Domain.User").
	QualifiedName string

	// Name is the simple type name.
	Name string

	// Namespace is the qualified name of the containing namespace.
	Namespace string

	// Properties are the eligible properties, own members first.
	Properties []PropertyDescriptor
}

// PropertyDescriptor describes one builder-backed property.
type PropertyDescriptor struct {
	Name string

	// TypeName is the declared type in display form.
	TypeName string

	// IsCollection is set for recognized collection shapes.
	IsCollection bool

	// ElementType is the collection element type in display form.
	ElementType string
}

// Counts returns the number of scalar and collection properties.
func (d TypeDescriptor) Counts() (scalars, collections int) {
	for _, p := range d.Properties {
		if p.IsCollection {
			collections++
		} else {
			scalars++
		}
	}
	return scalars, collections
}

// Describe builds the descriptor for t.
func Describe(c *model.Compilation, t *model.Type) (TypeDescriptor, error) {
	d := TypeDescriptor{
		QualifiedName: t.QualifiedName(),
		Name:          t.Name,
	}
	ns := t.Namespace()
	if ns == nil || ns.IsGlobal() {
		return TypeDescriptor{}, errors.Wrapf(ErrGlobalNamespace, "type %s", d.QualifiedName)
	}
	d.Namespace = ns.QualifiedName()

	props := FindProperties(c, t)
	if len(props) == 0 {
		return TypeDescriptor{}, errors.Wrapf(ErrNoEligibleProperties, "type %s", d.QualifiedName)
	}

	for _, p := range props {
		pd := PropertyDescriptor{
			Name:     p.Name,
			TypeName: p.Type.String(),
		}
		if IsCollection(p) {
			elem, err := ElementType(p.Type)
			if err != nil {
				return TypeDescriptor{}, errors.Wrapf(err, "property %s.%s", d.QualifiedName, p.Name)
			}
			pd.IsCollection = true
			pd.ElementType = elem.String()
		}
		d.Properties = append(d.Properties, pd)
	}
	return d, nil
}

// Extract finds the builder candidates of c under the namespace prefix filter
// and describes each of them.
//
// Types are deduplicated by qualified name; the first sighting wins and
// keeps its position.
func Extract(c *model.Compilation, filter string) ([]TypeDescriptor, error) {
	return ExtractSelected(c, filter, nil)
}

// ExtractSelected is like Extract but only describes the types for which
// selected returns true. A nil selected admits every type.
func ExtractSelected(c *model.Compilation, filter string, selected func(qualifiedName string) bool) ([]TypeDescriptor, error) {
	types := DistinctBy(FindTypes(c.Global, filter), (*model.Type).QualifiedName)

	out := make([]TypeDescriptor, 0, len(types))
	for _, t := range types {
		if selected != nil && !selected(t.QualifiedName()) {
			continue
		}
		d, err := Describe(c, t)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
