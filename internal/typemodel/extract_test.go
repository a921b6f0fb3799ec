// SPDX-License-Identifier: MIT

package typemodel

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/buildergen/model"
)

func mustParse(t *testing.T, doc string) *model.Compilation {
	t.Helper()
	c, err := model.Parse([]byte(doc), model.FormatYAML)
	if err != nil {
		t.Fatalf("parse metadata: %v", err)
	}
	return c
}

const treeDoc = `
assembly: Domain
global:
  types:
    - name: Loose
  namespaces:
    - name: Domain
      types:
        - name: User
        - name: Helpers
          static: true
        - name: Point
          kind: struct
        - name: IEntity
          kind: interface
        - name: Snapshot
          kind: record
      namespaces:
        - name: Models
          types:
            - name: Exercise
    - name: Other
      namespaces:
        - name: Domain
          types:
            - name: Nested
    - name: DomainEvents
      types:
        - name: Created
`

func qualifiedNames(types []*model.Type) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.QualifiedName())
	}
	return names
}

func TestFindTypes(t *testing.T) {
	c := mustParse(t, treeDoc)

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{
			name:   "prefix match includes child namespaces",
			filter: "Domain",
			want:   []string{"Domain.User", "Domain.Snapshot", "Domain.Models.Exercise", "DomainEvents.Created"},
		},
		{
			name:   "case insensitive",
			filter: "domain.models",
			want:   []string{"Domain.Models.Exercise"},
		},
		{
			name:   "empty filter matches everything",
			filter: "",
			want: []string{
				"Loose", "Domain.User", "Domain.Snapshot", "Domain.Models.Exercise",
				"Other.Domain.Nested", "DomainEvents.Created",
			},
		},
		{
			name:   "nested namespace is tested on its own qualified name",
			filter: "Other.Domain",
			want:   []string{"Other.Domain.Nested"},
		},
		{
			name:   "no match",
			filter: "Billing",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := qualifiedNames(FindTypes(c.Global, tt.filter))
			if len(got) == 0 {
				got = nil
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindTypes(%q) mismatch (-want +got):\n%s", tt.filter, diff)
			}
		})
	}
}

func TestFindTypes_NilRoot(t *testing.T) {
	if got := FindTypes(nil, "Domain"); got != nil {
		t.Errorf("FindTypes(nil) = %v, want nil", got)
	}
}

const inheritanceDoc = `
assembly: Domain
global:
  namespaces:
    - name: Domain
      types:
        - name: A
          properties:
            - {name: X, type: int, accessibility: public, setter: public}
            - {name: Y, type: string, accessibility: public, setter: public}
        - name: B
          base: Domain.A
          properties:
            - {name: X, type: long, accessibility: public, setter: public}
            - {name: Z, type: bool, accessibility: public, setter: public}
        - name: C
          base: Domain.B
          properties:
            - {name: Y, type: string, accessibility: public, setter: private}
        - name: Outside
          base: System.Object
          properties:
            - {name: Id, type: int, accessibility: public, setter: public}
`

type propView struct {
	Name string
	Type string
}

func propViews(props []*model.Property) []propView {
	out := make([]propView, 0, len(props))
	for _, p := range props {
		out = append(out, propView{Name: p.Name, Type: p.Type.String()})
	}
	return out
}

func TestFindProperties_Inheritance(t *testing.T) {
	c := mustParse(t, inheritanceDoc)

	tests := []struct {
		typ  string
		want []propView
	}{
		{
			typ:  "Domain.A",
			want: []propView{{"X", "int"}, {"Y", "string"}},
		},
		{
			typ:  "Domain.B",
			want: []propView{{"X", "long"}, {"Z", "bool"}, {"Y", "string"}},
		},
		{
			// The private setter on C.Y shadows the public A.Y.
			typ:  "Domain.C",
			want: []propView{{"X", "long"}, {"Z", "bool"}},
		},
		{
			typ:  "Domain.Outside",
			want: []propView{{"Id", "int"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			typ, ok := c.Lookup(tt.typ)
			if !ok {
				t.Fatalf("Lookup(%q) failed", tt.typ)
			}
			got := propViews(FindProperties(c, typ))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindProperties(%s) mismatch (-want +got):\n%s", tt.typ, diff)
			}
		})
	}
}

func TestFindProperties_NilType(t *testing.T) {
	c := mustParse(t, inheritanceDoc)
	if got := FindProperties(c, nil); got != nil {
		t.Errorf("FindProperties(nil) = %v, want nil", got)
	}
}

func TestAncestors(t *testing.T) {
	c := mustParse(t, inheritanceDoc)
	typ, _ := c.Lookup("Domain.C")

	got := qualifiedNames(Ancestors(c, typ))
	want := []string{"Domain.B", "Domain.A"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ancestors() mismatch (-want +got):\n%s", diff)
	}
}

func TestIsEligible(t *testing.T) {
	tests := []struct {
		name string
		prop model.Property
		want bool
	}{
		{"public get and set", model.Property{Accessibility: "public", Setter: "public"}, true},
		{"no setter", model.Property{Accessibility: "public"}, false},
		{"private setter", model.Property{Accessibility: "public", Setter: "private"}, false},
		{"protected property", model.Property{Accessibility: "protected", Setter: "protected"}, false},
		{"internal setter", model.Property{Accessibility: "public", Setter: "internal"}, false},
		{"read-only", model.Property{Accessibility: "public", Setter: "public", ReadOnly: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEligible(&tt.prop); got != tt.want {
				t.Errorf("IsEligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistinctBy(t *testing.T) {
	got := DistinctBy([]string{"b", "a", "b", "c", "a"}, func(s string) string { return s })
	want := []string{"b", "a", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DistinctBy() mismatch (-want +got):\n%s", diff)
	}
}

const showcaseDoc = `
assembly: Domain
global:
  namespaces:
    - name: Domain
      types:
        - name: Exercise
          properties:
            - {name: Name, type: string, accessibility: public, setter: public}
            - {name: Description, type: string, accessibility: public, setter: public}
            - {name: Difficulty, type: int, accessibility: public, setter: public}
        - name: Group
          properties:
            - {name: Name, type: string, accessibility: public, setter: public}
            - name: Users
              type: {name: System.Collections.Generic.ICollection, arguments: [Domain.User]}
              accessibility: public
              setter: public
        - name: User
          properties:
            - {name: Id, type: int, accessibility: public, setter: public}
            - {name: Tags, type: {name: string, array: true}, accessibility: public, setter: public}
            - name: Scores
              type: {name: System.Collections.Generic.Dictionary, arguments: [string, int]}
              accessibility: public
              setter: public
`

func TestExtract(t *testing.T) {
	c := mustParse(t, showcaseDoc)

	got, err := Extract(c, "Domain")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := []TypeDescriptor{
		{
			QualifiedName: "Domain.Exercise",
			Name:          "Exercise",
			Namespace:     "Domain",
			Properties: []PropertyDescriptor{
				{Name: "Name", TypeName: "string"},
				{Name: "Description", TypeName: "string"},
				{Name: "Difficulty", TypeName: "int"},
			},
		},
		{
			QualifiedName: "Domain.Group",
			Name:          "Group",
			Namespace:     "Domain",
			Properties: []PropertyDescriptor{
				{Name: "Name", TypeName: "string"},
				{
					Name:         "Users",
					TypeName:     "System.Collections.Generic.ICollection<Domain.User>",
					IsCollection: true,
					ElementType:  "Domain.User",
				},
			},
		},
		{
			QualifiedName: "Domain.User",
			Name:          "User",
			Namespace:     "Domain",
			Properties: []PropertyDescriptor{
				{Name: "Id", TypeName: "int"},
				{Name: "Tags", TypeName: "string[]"},
				{Name: "Scores", TypeName: "System.Collections.Generic.Dictionary<string, int>"},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}

	scalars, collections := got[1].Counts()
	if scalars != 1 || collections != 1 {
		t.Errorf("Group Counts() = (%d, %d), want (1, 1)", scalars, collections)
	}
}

func TestExtract_Deduplicates(t *testing.T) {
	c := mustParse(t, showcaseDoc)
	exercise, _ := c.Lookup("Domain.Exercise")

	// A second walk path that reaches the same type.
	c.Global.Namespaces = append(c.Global.Namespaces, &model.Namespace{
		Name:  "Domain",
		Types: []*model.Type{exercise},
	})
	c.Link()

	got, err := Extract(c, "Domain")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	var names []string
	for _, d := range got {
		names = append(names, d.QualifiedName)
	}
	want := []string{"Domain.Exercise", "Domain.Group", "Domain.User"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Extract() names mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_MetadataShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		filter  string
		wantErr error
	}{
		{
			name: "no eligible properties",
			doc: `
assembly: Domain
global:
  namespaces:
    - name: Domain
      types:
        - name: Marker
          properties:
            - {name: Id, type: int, accessibility: public}
`,
			filter:  "Domain",
			wantErr: ErrNoEligibleProperties,
		},
		{
			name: "global namespace",
			doc: `
assembly: Domain
global:
  types:
    - name: Loose
      properties:
        - {name: Id, type: int, accessibility: public, setter: public}
`,
			filter:  "",
			wantErr: ErrGlobalNamespace,
		},
		{
			name: "collection without type argument",
			doc: `
assembly: Domain
global:
  namespaces:
    - name: Domain
      types:
        - name: Bag
          properties:
            - {name: Items, type: System.Collections.Generic.List, accessibility: public, setter: public}
`,
			filter:  "Domain",
			wantErr: ErrMalformedCollection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustParse(t, tt.doc)
			_, err := Extract(c, tt.filter)
			if err == nil {
				t.Fatal("Extract() expected error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Extract() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrMetadataShape) {
				t.Errorf("Extract() error = %v, want ErrMetadataShape mark", err)
			}
		})
	}
}

func TestExtractSelected(t *testing.T) {
	c := mustParse(t, showcaseDoc)
	got, err := ExtractSelected(c, "Domain", func(name string) bool { return name == "Domain.Group" })
	if err != nil {
		t.Fatalf("ExtractSelected() error = %v", err)
	}
	if len(got) != 1 || got[0].QualifiedName != "Domain.Group" {
		t.Errorf("ExtractSelected() = %+v, want only Domain.Group", got)
	}
}

func TestExtract_EmptyMatch(t *testing.T) {
	c := mustParse(t, showcaseDoc)
	got, err := Extract(c, "Billing")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Extract() = %d descriptors, want 0", len(got))
	}
}
