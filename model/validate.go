// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// ErrInvalid marks metadata documents that fail validation.
var ErrInvalid = errors.New("invalid metadata")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("accessibility", func(fl validator.FieldLevel) bool {
		return IsAccessibility(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		ns := sl.Current().Interface().(Namespace)
		for i, child := range ns.Namespaces {
			if child != nil && child.Name == "" {
				sl.ReportError(child.Name, "namespaces["+strconv.Itoa(i)+"].name", "Name", "required", "")
			}
		}
	}, Namespace{})
	return v
}

// IsAccessibility reports whether s is a known accessibility level.
func IsAccessibility(s string) bool {
	switch s {
	case Public, Protected, Internal, Private, ProtectedInternal, PrivateProtected:
		return true
	}
	return false
}

// Validate checks the structure of a linked compilation.
func Validate(c *Compilation) error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fe.Namespace()+": failed "+fe.Tag())
			}
			return errors.Wrap(ErrInvalid, strings.Join(msgs, "; "))
		}
		return errors.Wrap(err, "validate metadata")
	}

	if c.Global != nil && c.Global.Name != "" {
		return errors.Wrapf(ErrInvalid, "global namespace must be unnamed, got %q", c.Global.Name)
	}

	for _, t := range c.Types() {
		if err := checkBaseChain(c, t); err != nil {
			return err
		}
	}
	return nil
}

// checkBaseChain rejects inheritance cycles.
func checkBaseChain(c *Compilation, t *Type) error {
	seen := map[*Type]bool{t: true}
	for cur := c.BaseOf(t); cur != nil; cur = c.BaseOf(cur) {
		if seen[cur] {
			return errors.Wrapf(ErrInvalid, "inheritance cycle through %s", t.QualifiedName())
		}
		seen[cur] = true
	}
	return nil
}
