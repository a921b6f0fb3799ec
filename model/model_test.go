// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.

package model

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

const domainJSON = `{
  "assembly": "Domain",
  "global": {
    "namespaces": [
      {
        "name": "Domain",
        "types": [
          {
            "name": "Entity",
            "properties": [
              {"name": "Id", "type": "int", "accessibility": "public", "setter": "public"}
            ]
          },
          {
            "name": "User",
            "base": "Domain.Entity",
            "properties": [
              {"name": "Name", "type": "string", "accessibility": "public", "setter": "public"},
              {
                "name": "Exercises",
                "type": {"name": "System.Collections.Generic.ICollection", "arguments": ["Domain.Exercise"]},
                "accessibility": "public",
                "setter": "public"
              }
            ]
          }
        ],
        "namespaces": [
          {"name": "Models", "types": [{"name": "Exercise"}]}
        ]
      }
    ]
  }
}`

const domainYAML = `
assembly: Domain
global:
  namespaces:
    - name: Domain
      types:
        - name: Entity
          properties:
            - name: Id
              type: int
              accessibility: public
              setter: public
        - name: User
          base: Domain.Entity
          properties:
            - name: Name
              type: string
              accessibility: public
              setter: public
            - name: Exercises
              type:
                name: System.Collections.Generic.ICollection
                arguments: [Domain.Exercise]
              accessibility: public
              setter: public
      namespaces:
        - name: Models
          types:
            - name: Exercise
`

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "json", data: domainJSON, format: FormatJSON},
		{name: "yaml", data: domainYAML, format: FormatYAML},
		{name: "json with byte order mark", data: "\ufeff" + domainJSON, format: FormatJSON},
		{name: "yaml with byte order mark", data: "\ufeff" + domainYAML, format: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if c.Assembly != "Domain" {
				t.Errorf("Assembly = %q, want %q", c.Assembly, "Domain")
			}

			var names []string
			for _, typ := range c.Types() {
				names = append(names, typ.QualifiedName())
			}
			want := []string{"Domain.Entity", "Domain.User", "Domain.Models.Exercise"}
			if diff := cmp.Diff(want, names); diff != "" {
				t.Errorf("Types() mismatch (-want +got):\n%s", diff)
			}

			user, ok := c.Lookup("Domain.User")
			if !ok {
				t.Fatal("Lookup(Domain.User) not found")
			}
			if base := c.BaseOf(user); base == nil || base.Name != "Entity" {
				t.Errorf("BaseOf(User) = %v, want Domain.Entity", base)
			}
			if got := user.Properties[1].Type.String(); got != "System.Collections.Generic.ICollection<Domain.Exercise>" {
				t.Errorf("Exercises type = %q", got)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"types.json", FormatJSON},
		{"types.yaml", FormatYAML},
		{"TYPES.YML", FormatYAML},
		{"types", FormatJSON},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNamespace_QualifiedName(t *testing.T) {
	c, err := Parse([]byte(domainJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := c.Global.QualifiedName(); got != GlobalNamespaceName {
		t.Errorf("global QualifiedName() = %q, want %q", got, GlobalNamespaceName)
	}

	models := c.Global.Namespaces[0].Namespaces[0]
	if got := models.QualifiedName(); got != "Domain.Models" {
		t.Errorf("QualifiedName() = %q, want %q", got, "Domain.Models")
	}
	if models.Parent() != c.Global.Namespaces[0] {
		t.Error("Parent() of Domain.Models is not Domain")
	}
}

func TestType_QualifiedNameInGlobalNamespace(t *testing.T) {
	c := &Compilation{
		Assembly: "Domain",
		Global:   &Namespace{Types: []*Type{{Name: "Loose"}}},
	}
	c.Link()

	if got := c.Global.Types[0].QualifiedName(); got != "Loose" {
		t.Errorf("QualifiedName() = %q, want %q", got, "Loose")
	}
}

func TestType_IsClass(t *testing.T) {
	tests := []struct {
		kind string
		want bool
	}{
		{"", true},
		{KindClass, true},
		{KindRecord, true},
		{KindStruct, false},
		{KindInterface, false},
		{KindEnum, false},
	}
	for _, tt := range tests {
		typ := &Type{Name: "T", Kind: tt.kind}
		if got := typ.IsClass(); got != tt.want {
			t.Errorf("IsClass(%q) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestTypeRef_String(t *testing.T) {
	tests := []struct {
		name string
		ref  TypeRef
		want string
	}{
		{
			name: "simple",
			ref:  TypeRef{Name: "int"},
			want: "int",
		},
		{
			name: "array",
			ref:  TypeRef{Name: "string", Array: true},
			want: "string[]",
		},
		{
			name: "generic",
			ref: TypeRef{
				Name:      "System.Collections.Generic.List",
				Arguments: []TypeRef{{Name: "Domain.User"}},
			},
			want: "System.Collections.Generic.List<Domain.User>",
		},
		{
			name: "nested generic",
			ref: TypeRef{
				Name: "System.Collections.Generic.Dictionary",
				Arguments: []TypeRef{
					{Name: "string"},
					{Name: "System.Collections.Generic.List", Arguments: []TypeRef{{Name: "int"}}},
				},
			},
			want: "System.Collections.Generic.Dictionary<string, System.Collections.Generic.List<int>>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeRef_Unmarshal(t *testing.T) {
	want := TypeRef{Name: "System.Collections.Generic.List", Arguments: []TypeRef{{Name: "int"}}}

	t.Run("json object", func(t *testing.T) {
		var got TypeRef
		if err := json.Unmarshal([]byte(`{"name":"System.Collections.Generic.List","arguments":["int"]}`), &got); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("json string", func(t *testing.T) {
		var got TypeRef
		if err := json.Unmarshal([]byte(`"int"`), &got); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if got.Name != "int" {
			t.Errorf("Name = %q, want %q", got.Name, "int")
		}
	})

	t.Run("yaml mapping", func(t *testing.T) {
		var got TypeRef
		if err := yaml.Unmarshal([]byte("name: System.Collections.Generic.List\narguments: [int]\n"), &got); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing assembly",
			data: `{"global": {}}`,
		},
		{
			name: "unknown kind",
			data: `{"assembly": "Domain", "global": {"types": [{"name": "T", "kind": "union"}]}}`,
		},
		{
			name: "bad accessibility",
			data: `{"assembly": "Domain", "global": {"types": [{"name": "T", "properties": [{"name": "P", "type": "int", "accessibility": "friend"}]}]}}`,
		},
		{
			name: "unnamed child namespace",
			data: `{"assembly": "Domain", "global": {"namespaces": [{"types": []}]}}`,
		},
		{
			name: "inheritance cycle",
			data: `{"assembly": "Domain", "global": {"types": [{"name": "A", "base": "B"}, {"name": "B", "base": "A"}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatJSON)
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte(`{"assembly": `), FormatJSON); err == nil {
		t.Error("Parse() expected error for truncated json")
	}
	if _, err := Parse([]byte(`{"assembly": "Domain", "unknown": 1}`), FormatJSON); err == nil {
		t.Error("Parse() expected error for unknown field")
	}
}

func TestNewValidator_Accessibility(t *testing.T) {
	v := newValidator()
	for _, value := range []string{"public", "protected internal", "private"} {
		if err := v.Var(value, "accessibility"); err != nil {
			t.Errorf("Var(%q) error = %v", value, err)
		}
	}
	if err := v.Var("friend", "accessibility"); err == nil {
		t.Error(`Var("friend") succeeded, want error`)
	}
}
