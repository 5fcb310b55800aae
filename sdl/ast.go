/**
 * Copyright (c) 2019, The Hermes Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package sdl

import "fmt"

// Definition is a parsed type definition. It is one of *UnionDefinition and *ObjectDefinition.
type Definition interface {
	// DefinitionName returns the name of the type being defined.
	DefinitionName() string

	// sdlDefinition puts a special mark for a definition node.
	sdlDefinition()
}

// UnionDefinition is the result of parsing a "union Name = A | B" definition.
type UnionDefinition struct {
	// Name of the defining union
	Name string

	// Members contains names of the member types in declaration order.
	Members []string
}

var _ Definition = (*UnionDefinition)(nil)

// DefinitionName implements Definition.
func (def *UnionDefinition) DefinitionName() string {
	return def.Name
}

// sdlDefinition implements Definition.
func (*UnionDefinition) sdlDefinition() {}

// FieldDefinition describes one field in an object definition.
type FieldDefinition struct {
	// Name of the field
	Name string

	// Type reference for the field value
	Type TypeRef
}

// ObjectDefinition is the result of parsing a "type Name { field: Type }" definition.
type ObjectDefinition struct {
	// Name of the defining object
	Name string

	// Fields in declaration order
	Fields []FieldDefinition
}

var _ Definition = (*ObjectDefinition)(nil)

// DefinitionName implements Definition.
func (def *ObjectDefinition) DefinitionName() string {
	return def.Name
}

// sdlDefinition implements Definition.
func (*ObjectDefinition) sdlDefinition() {}

// TypeRef is a syntactic reference to a type. It is one of NamedTypeRef, ListTypeRef and
// NonNullTypeRef.
type TypeRef interface {
	fmt.Stringer

	// sdlTypeRef puts a special mark for a type reference node.
	sdlTypeRef()
}

// NamedTypeRef references a type by name.
type NamedTypeRef struct {
	// Name of the referenced type
	Name string
}

var _ TypeRef = NamedTypeRef{}

// String implements fmt.Stringer.
func (ref NamedTypeRef) String() string {
	return ref.Name
}

// sdlTypeRef implements TypeRef.
func (NamedTypeRef) sdlTypeRef() {}

// ListTypeRef references a list of the element type.
type ListTypeRef struct {
	// Element is the type reference being wrapped.
	Element TypeRef
}

var _ TypeRef = ListTypeRef{}

// String implements fmt.Stringer.
func (ref ListTypeRef) String() string {
	return fmt.Sprintf("[%s]", ref.Element.String())
}

// sdlTypeRef implements TypeRef.
func (ListTypeRef) sdlTypeRef() {}

// NonNullTypeRef references a non-null variant of the element type.
type NonNullTypeRef struct {
	// Element is the type reference being wrapped.
	Element TypeRef
}

var _ TypeRef = NonNullTypeRef{}

// String implements fmt.Stringer.
func (ref NonNullTypeRef) String() string {
	return fmt.Sprintf("%s!", ref.Element.String())
}

// sdlTypeRef implements TypeRef.
func (NonNullTypeRef) sdlTypeRef() {}
