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

// Field describes a single field in an Object or Interface type.
type Field struct {
	// Name of the field
	Name string

	// Type of the value yielded by the field
	Type Type

	// Description for the field
	Description string
}

// ObjectConfig provides specification to define an Object type.
type ObjectConfig struct {
	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// Fields in the object, in declaration order
	Fields []Field
}

// Object Type Definition
//
// Almost all of the GraphQL types you define will be object types. Object types have a name, but
// most importantly describe their fields.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
type Object struct {
	name        string
	description string
	fields      []Field
}

var (
	_ Type                = (*Object)(nil)
	_ TypeWithName        = (*Object)(nil)
	_ TypeWithDescription = (*Object)(nil)
)

// NewObject defines an Object type from an ObjectConfig.
func NewObject(config ObjectConfig) (*Object, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.", ErrKindInvalidInput)
	}

	fields := make([]Field, len(config.Fields))
	seen := make(map[string]bool, len(config.Fields))
	for i, field := range config.Fields {
		if len(field.Name) == 0 {
			return nil, NewError(
				fmt.Sprintf("Must provide name for every field in Object %q.", config.Name),
				ErrKindInvalidInput)
		}
		if field.Type == nil {
			return nil, NewError(
				fmt.Sprintf("Must provide type for field %q in Object %q.", field.Name, config.Name),
				ErrKindInvalidInput)
		}
		if seen[field.Name] {
			return nil, NewError(
				fmt.Sprintf("Duplicate field %q in Object %q.", field.Name, config.Name),
				ErrKindInvalidInput)
		}
		seen[field.Name] = true
		fields[i] = field
	}

	return &Object{
		name:        config.Name,
		description: config.Description,
		fields:      fields,
	}, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead
// of returning an error.
func MustNewObject(config ObjectConfig) *Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*Object) graphqlType() {}

// Name implements TypeWithName.
func (o *Object) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *Object) Description() string {
	return o.description
}

// String implements Type.
func (o *Object) String() string {
	return o.Name()
}

// Fields returns the fields in the object in declaration order.
func (o *Object) Fields() []Field {
	return o.fields
}
