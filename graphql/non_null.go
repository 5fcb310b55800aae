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

// NonNull Type Modifier
//
// A non-null is a wrapping type which points to another type. Non-null types enforce that their
// values are never null and can ensure an error is raised if this ever occurs during a request.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Non-Null
type NonNull struct {
	elementType Type
	// notation is cached value for returning from String() and is initialized in constructor.
	notation string
}

var (
	_ Type         = (*NonNull)(nil)
	_ WrappingType = (*NonNull)(nil)
)

// NewNonNullOfType defines a NonNull type wrapping the given element type.
func NewNonNullOfType(elementType Type) (*NonNull, error) {
	if elementType == nil {
		return nil, NewError("Must provide a non-nil element type for NonNull.", ErrKindInvalidInput)
	}
	if !IsNullableType(elementType) {
		return nil, NewError(
			fmt.Sprintf("Expected a nullable type for NonNull but got an %s.", elementType.String()),
			ErrKindInvalidInput)
	}
	return &NonNull{
		elementType: elementType,
		notation:    fmt.Sprintf("%s!", elementType.String()),
	}, nil
}

// MustNewNonNullOfType is a panic-on-fail version of NewNonNullOfType.
func MustNewNonNullOfType(elementType Type) *NonNull {
	n, err := NewNonNullOfType(elementType)
	if err != nil {
		panic(err)
	}
	return n
}

// graphqlType implements Type.
func (*NonNull) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*NonNull) graphqlWrappingType() {}

// String implements Type.
func (n *NonNull) String() string {
	return n.notation
}

// UnwrappedType implements WrappingType.
func (n *NonNull) UnwrappedType() Type {
	return n.ElementType()
}

// ElementType indicates the type of the element wrapped in this non-null type.
func (n *NonNull) ElementType() Type {
	return n.elementType
}
