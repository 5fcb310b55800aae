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

package graphql

import "fmt"

// UnionConfig provides specification to define a Union type.
type UnionConfig struct {
	// Name of the defining Union
	Name string

	// Description for the Union type
	Description string

	// PossibleTypes describes which Object types can be represented by the defining union.
	PossibleTypes []*Object

	// TypeResolver resolves the concrete Object type represented by a value of the defining union.
	TypeResolver TypeResolver
}

// Union Type Definition
//
// When a field can return one of a heterogeneous set of types, a Union type is used to describe
// what types are possible as well as providing a function to determine which type is actually
// used when the field is resolved.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Unions
type Union struct {
	name          string
	description   string
	possibleTypes []*Object
	typeResolver  TypeResolver
}

var (
	_ Type                = (*Union)(nil)
	_ AbstractType        = (*Union)(nil)
	_ TypeWithName        = (*Union)(nil)
	_ TypeWithDescription = (*Union)(nil)
)

// NewUnion defines a Union type from a UnionConfig.
func NewUnion(config UnionConfig) (*Union, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union.", ErrKindInvalidInput)
	}

	possibleTypes := make([]*Object, len(config.PossibleTypes))
	seen := make(map[string]bool, len(config.PossibleTypes))
	for i, possibleType := range config.PossibleTypes {
		if possibleType == nil {
			return nil, NewError(
				fmt.Sprintf("Must provide non-nil member types for Union %q.", config.Name),
				ErrKindInvalidInput)
		}
		if seen[possibleType.Name()] {
			return nil, NewError(
				fmt.Sprintf("Duplicate member type %q in Union %q.", possibleType.Name(), config.Name),
				ErrKindInvalidInput)
		}
		seen[possibleType.Name()] = true
		possibleTypes[i] = possibleType
	}

	return &Union{
		name:          config.Name,
		description:   config.Description,
		possibleTypes: possibleTypes,
		typeResolver:  config.TypeResolver,
	}, nil
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on failure instead of
// returning an error.
func MustNewUnion(config UnionConfig) *Union {
	u, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return u
}

// graphqlType implements Type.
func (*Union) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Union) graphqlAbstractType() {}

// TypeResolver implements AbstractType.
func (u *Union) TypeResolver() TypeResolver {
	return u.typeResolver
}

// Name implements TypeWithName.
func (u *Union) Name() string {
	return u.name
}

// Description implements TypeWithDescription.
func (u *Union) Description() string {
	return u.description
}

// String implements Type.
func (u *Union) String() string {
	return u.Name()
}

// PossibleTypes returns members of the union type in declaration order.
func (u *Union) PossibleTypes() []*Object {
	return u.possibleTypes
}
