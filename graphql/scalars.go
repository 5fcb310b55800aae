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

// Built-in scalar types defined by the GraphQL specification.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
var (
	// Int represents a signed 32-bit numeric non-fractional value.
	Int = MustNewScalar(ScalarConfig{
		Name:        "Int",
		Description: "The `Int` scalar type represents non-fractional signed whole numeric values.",
	})

	// Float represents signed double-precision fractional values.
	Float = MustNewScalar(ScalarConfig{
		Name:        "Float",
		Description: "The `Float` scalar type represents signed double-precision fractional values.",
	})

	// String represents textual data as UTF-8 character sequences.
	String = MustNewScalar(ScalarConfig{
		Name:        "String",
		Description: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
	})

	// Boolean represents true or false.
	Boolean = MustNewScalar(ScalarConfig{
		Name:        "Boolean",
		Description: "The `Boolean` scalar type represents `true` or `false`.",
	})

	// ID represents a unique identifier.
	ID = MustNewScalar(ScalarConfig{
		Name:        "ID",
		Description: "The `ID` scalar type represents a unique identifier.",
	})
)
