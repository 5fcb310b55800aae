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

// ScalarConfig provides specification to define a Scalar type.
type ScalarConfig struct {
	// Name of the defining Scalar
	Name string

	// Description for the Scalar type
	Description string
}

// Scalar Type Definition
//
// The leaf values of any request are Scalars (or Enums) and are defined with a name and a
// description.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar struct {
	name        string
	description string
}

var (
	_ Type                = (*Scalar)(nil)
	_ TypeWithName        = (*Scalar)(nil)
	_ TypeWithDescription = (*Scalar)(nil)
)

// NewScalar defines a Scalar type from a ScalarConfig.
func NewScalar(config ScalarConfig) (*Scalar, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.", ErrKindInvalidInput)
	}
	return &Scalar{
		name:        config.Name,
		description: config.Description,
	}, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead
// of returning an error.
func MustNewScalar(config ScalarConfig) *Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// graphqlType implements Type.
func (*Scalar) graphqlType() {}

// Name implements TypeWithName.
func (s *Scalar) Name() string {
	return s.name
}

// Description implements TypeWithDescription.
func (s *Scalar) Description() string {
	return s.description
}

// String implements Type.
func (s *Scalar) String() string {
	return s.Name()
}
