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

import (
	"context"
	"fmt"
)

// Type interfaces provided by a GraphQL type.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Types
type Type interface {
	// String representation when printing the type
	fmt.Stringer

	// graphqlType is a special mark to indicate a Type. It makes sure that only a set of object can
	// be assigned to Type.
	graphqlType()
}

// TypeWithName is implemented by the named types.
type TypeWithName interface {
	// Name of the defining type
	Name() string
}

// TypeWithDescription is implemented by the types that provide description.
type TypeWithDescription interface {
	// Description provides documentation for the type.
	Description() string
}

// AbstractType indicates a GraphQL abstract type. Namely, interfaces and unions.
type AbstractType interface {
	Type
	TypeWithName
	TypeWithDescription

	// TypeResolver returns the resolver that determines the concrete Object type represented by a
	// value of the abstract type.
	TypeResolver() TypeResolver

	// graphqlAbstractType puts a special mark for an abstract type.
	graphqlAbstractType()
}

// WrappingType is a type that wraps another type. There are two wrapping types in GraphQL: List
// and NonNull.
type WrappingType interface {
	Type

	// UnwrappedType returns the type that is wrapped by this type.
	UnwrappedType() Type

	graphqlWrappingType()
}

// NamedTypeOf unwraps any wrapping types and returns the name of the underlying named type. The
// second return value is false when the innermost type is unnamed.
func NamedTypeOf(t Type) (string, bool) {
	for {
		wrapping, ok := t.(WrappingType)
		if !ok {
			break
		}
		t = wrapping.UnwrappedType()
	}
	if named, ok := t.(TypeWithName); ok {
		return named.Name(), true
	}
	return "", false
}

// IsNullableType returns true if the type accepts null values. Only NonNull does not.
func IsNullableType(t Type) bool {
	_, ok := t.(*NonNull)
	return !ok
}

// TypeResolver determines the concrete Object type represented by a value of an abstract type
// (union or interface).
type TypeResolver interface {
	// Resolve returns either an *Object, or a future.Future that resolves to an *Object when the
	// decision requires asynchronous work. A (nil, nil) return means the resolver could not decide
	// and the caller should apply its own fallback.
	Resolve(ctx context.Context, value interface{}) (interface{}, error)
}

// TypeResolverFunc is an adapter to allow the use of ordinary functions as TypeResolver.
type TypeResolverFunc func(ctx context.Context, value interface{}) (interface{}, error)

// Resolve calls f(ctx, value).
func (f TypeResolverFunc) Resolve(ctx context.Context, value interface{}) (interface{}, error) {
	return f(ctx, value)
}

// TypeResolverFunc implements TypeResolver.
var _ TypeResolver = (TypeResolverFunc)(nil)
