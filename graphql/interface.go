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

// InterfaceConfig provides specification to define an Interface type.
type InterfaceConfig struct {
	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// Fields that any implementing Object must provide
	Fields []Field

	// TypeResolver resolves the concrete Object type implementing the defining interface from a
	// given value.
	TypeResolver TypeResolver
}

// Interface Type Definition
//
// When a field can return one of a heterogeneous set of types, an Interface type is used to
// describe what types are possible and what fields are in common across all types.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Interfaces
type Interface struct {
	name         string
	description  string
	fields       []Field
	typeResolver TypeResolver
}

var (
	_ Type                = (*Interface)(nil)
	_ AbstractType        = (*Interface)(nil)
	_ TypeWithName        = (*Interface)(nil)
	_ TypeWithDescription = (*Interface)(nil)
)

// NewInterface defines an Interface type from an InterfaceConfig.
func NewInterface(config InterfaceConfig) (*Interface, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.", ErrKindInvalidInput)
	}
	return &Interface{
		name:         config.Name,
		description:  config.Description,
		fields:       config.Fields,
		typeResolver: config.TypeResolver,
	}, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on failure
// instead of returning an error.
func MustNewInterface(config InterfaceConfig) *Interface {
	iface, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return iface
}

// graphqlType implements Type.
func (*Interface) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Interface) graphqlAbstractType() {}

// TypeResolver implements AbstractType.
func (i *Interface) TypeResolver() TypeResolver {
	return i.typeResolver
}

// Name implements TypeWithName.
func (i *Interface) Name() string {
	return i.name
}

// Description implements TypeWithDescription.
func (i *Interface) Description() string {
	return i.description
}

// String implements Type.
func (i *Interface) String() string {
	return i.Name()
}

// Fields returns the fields declared by the interface in declaration order.
func (i *Interface) Fields() []Field {
	return i.fields
}
