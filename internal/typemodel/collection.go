// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typemodel

import (
	"github.com/albertocavalcante/buildergen/model"
)

// CollectionKind identifies a recognized collection shape.
type CollectionKind int

// Recognized collection shapes. Anything else, including arrays,
// dictionaries and user-defined collections, is a scalar.
const (
	NotCollection CollectionKind = iota
	List                         // System.Collections.Generic.List<T>
	IList                        // System.Collections.Generic.IList<T>
	ICollection                  // System.Collections.Generic.ICollection<T>
)

var collectionKinds = map[string]CollectionKind{
	"System.Collections.Generic.List":        List,
	"System.Collections.Generic.IList":       IList,
	"System.Collections.Generic.ICollection": ICollection,
}

// ListType is the concrete sequence type used to back every collection.
const ListType = "List"

func (k CollectionKind) String() string {
	switch k {
	case List:
		return "List"
	case IList:
		return "IList"
	case ICollection:
		return "ICollection"
	default:
		return "None"
	}
}

// ClassifyCollection returns the collection shape of ref.
// Arrays of a recognized shape are not collections.
func ClassifyCollection(ref model.TypeRef) CollectionKind {
	if ref.Array {
		return NotCollection
	}
	return collectionKinds[ref.Name]
}

// IsCollection reports whether p is declared with a recognized collection shape.
func IsCollection(p *model.Property) bool {
	return ClassifyCollection(p.Type) != NotCollection
}

// ElementType returns the element type of a recognized collection.
// Every recognized shape carries exactly one type argument; anything else
// is a malformed collection.
func ElementType(ref model.TypeRef) (model.TypeRef, error) {
	if ClassifyCollection(ref) == NotCollection {
		return model.TypeRef{}, errNotCollection(ref)
	}
	if len(ref.Arguments) != 1 {
		return model.TypeRef{}, errMalformedCollection(ref)
	}
	return ref.Arguments[0], nil
}
