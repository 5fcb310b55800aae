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

package compose

import (
	"fmt"

	"github.com/botobag/hermes/graphql"
	"github.com/botobag/hermes/sdl"
)

// ObjectField pairs a field name with the thunk for its type.
type ObjectField struct {
	// Name of the field
	Name string

	// Type thunk for the field value; resolved at materialization
	Type TypeThunk

	// Description for the field
	Description string
}

// ObjectComposerConfig provides specification to create an ObjectComposer.
type ObjectComposerConfig struct {
	// Name of the defining object; must be a valid type name
	Name string

	// Description for the object type
	Description string

	// Fields in the object, in declaration order
	Fields []ObjectField
}

// ObjectComposer is a mutable builder wrapping one object type definition. Field types are
// recorded as thunks and resolved only at materialization, mirroring UnionComposer's member
// handling.
type ObjectComposer struct {
	registry    *Registry
	name        string
	description string

	// fields holds field definitions with unresolved type thunks in declaration order.
	fields []ObjectField

	// materialized caches the compiled object type; nil when stale.
	materialized *graphql.Object
}

// ObjectComposer implements Composer.
var _ Composer = (*ObjectComposer)(nil)

// NewObject creates an object composer and registers it in the registry under its name, silently
// replacing any existing entry. def may be a bare name string, an inline definition string
// ("type Name { field: Type }"), an *sdl.ObjectDefinition, an *ObjectComposerConfig, or a
// *graphql.Object (wrapping the existing type with its fields captured as concrete thunks).
func NewObject(r *Registry, def interface{}) (*ObjectComposer, error) {
	o, err := newObjectComposer(r, def)
	if err != nil {
		return nil, err
	}
	r.Set(o.name, o)
	return o, nil
}

// NewTempObject is identical to NewObject but skips registry insertion; the caller exclusively
// owns the result.
func NewTempObject(r *Registry, def interface{}) (*ObjectComposer, error) {
	return newObjectComposer(r, def)
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead
// of returning an error.
func MustNewObject(r *Registry, def interface{}) *ObjectComposer {
	o, err := NewObject(r, def)
	if err != nil {
		panic(err)
	}
	return o
}

func newObjectComposer(r *Registry, def interface{}) (*ObjectComposer, error) {
	const op = graphql.Op("compose.NewObject")

	if r == nil {
		return nil, graphql.NewError(
			"Must provide a registry for the object composer.", graphql.ErrKindInvalidInput, op)
	}

	o := &ObjectComposer{registry: r}

	switch def := def.(type) {
	case string:
		if sdl.IsName(def) {
			o.name = def
			return o, nil
		}
		parsed, err := sdl.Parse(def)
		if err != nil {
			return nil, err
		}
		objectDef, ok := parsed.(*sdl.ObjectDefinition)
		if !ok {
			return nil, graphql.NewError(
				fmt.Sprintf("Expected an object definition but %q defines %q differently.",
					def, parsed.DefinitionName()),
				graphql.ErrKindInvalidInput, op)
		}
		return newObjectComposerFromDefinition(o, objectDef)

	case *sdl.ObjectDefinition:
		return newObjectComposerFromDefinition(o, def)

	case *ObjectComposerConfig:
		if err := validateTypeName(op, def.Name); err != nil {
			return nil, err
		}
		o.name = def.Name
		o.description = def.Description
		o.fields = append(o.fields, def.Fields...)
		return o, nil

	case *graphql.Object:
		o.name = def.Name()
		o.description = def.Description()
		for _, field := range def.Fields() {
			o.fields = append(o.fields, ObjectField{
				Name:        field.Name,
				Type:        field.Type,
				Description: field.Description,
			})
		}
		// The wrapped instance is already the materialization of the captured state.
		o.materialized = def
		return o, nil

	case nil:
		return nil, graphql.NewError(
			"Must provide a definition for the object composer.", graphql.ErrKindInvalidInput, op)

	default:
		return nil, graphql.NewError(
			fmt.Sprintf("Cannot create an object composer from a definition of type %T.", def),
			graphql.ErrKindInvalidInput, op)
	}
}

func newObjectComposerFromDefinition(o *ObjectComposer, def *sdl.ObjectDefinition) (*ObjectComposer, error) {
	o.name = def.Name
	for _, field := range def.Fields {
		o.fields = append(o.fields, ObjectField{
			Name: field.Name,
			Type: field.Type,
		})
	}
	return o, nil
}

// invalidate drops the materialized-type cache. Every mutation goes through here.
func (o *ObjectComposer) invalidate() {
	o.materialized = nil
}

// TypeName returns the current name of the composed object.
func (o *ObjectComposer) TypeName() string {
	return o.name
}

// SetTypeName renames the composed object. As with UnionComposer, the registry entry is not
// moved. It panics when the name is not a valid type name.
func (o *ObjectComposer) SetTypeName(name string) *ObjectComposer {
	if err := validateTypeName("ObjectComposer.SetTypeName", name); err != nil {
		panic(err)
	}
	o.name = name
	o.invalidate()
	return o
}

// Description returns the description of the composed object.
func (o *ObjectComposer) Description() string {
	return o.description
}

// SetDescription updates the description of the composed object.
func (o *ObjectComposer) SetDescription(description string) *ObjectComposer {
	o.description = description
	o.invalidate()
	return o
}

// AddField appends a field with the given type thunk; a field with the same name is replaced in
// place. It panics on a nil thunk.
func (o *ObjectComposer) AddField(name string, thunk TypeThunk) *ObjectComposer {
	if thunk == nil {
		panic(graphql.NewError(
			fmt.Sprintf("Cannot add field %q with a nil type.", name),
			graphql.ErrKindInvalidInput, graphql.Op("ObjectComposer.AddField")))
	}
	for i := range o.fields {
		if o.fields[i].Name == name {
			o.fields[i].Type = thunk
			o.invalidate()
			return o
		}
	}
	o.fields = append(o.fields, ObjectField{
		Name: name,
		Type: thunk,
	})
	o.invalidate()
	return o
}

// RemoveField removes the fields with the given names. Names that are not present are ignored.
func (o *ObjectComposer) RemoveField(names ...string) *ObjectComposer {
	removal := make(map[string]bool, len(names))
	for _, name := range names {
		removal[name] = true
	}
	kept := o.fields[:0]
	for _, field := range o.fields {
		if !removal[field.Name] {
			kept = append(kept, field)
		}
	}
	o.fields = kept
	o.invalidate()
	return o
}

// HasField returns true if a field with the given name is present.
func (o *ObjectComposer) HasField(name string) bool {
	for _, field := range o.fields {
		if field.Name == name {
			return true
		}
	}
	return false
}

// FieldNames returns the field names in declaration order.
func (o *ObjectComposer) FieldNames() []string {
	names := make([]string, len(o.fields))
	for i, field := range o.fields {
		names[i] = field.Name
	}
	return names
}

// GetType materializes the concrete Object from the current fields, resolving every field type
// thunk, and caches the result until the next mutation.
func (o *ObjectComposer) GetType() (*graphql.Object, error) {
	if o.materialized != nil {
		return o.materialized, nil
	}

	fields := make([]graphql.Field, len(o.fields))
	for i, field := range o.fields {
		fieldType, err := ResolveType(o.registry, field.Type)
		if err != nil {
			return nil, err
		}
		fields[i] = graphql.Field{
			Name:        field.Name,
			Type:        fieldType,
			Description: field.Description,
		}
	}

	object, err := graphql.NewObject(graphql.ObjectConfig{
		Name:        o.name,
		Description: o.description,
		Fields:      fields,
	})
	if err != nil {
		return nil, err
	}

	o.materialized = object
	return object, nil
}

// Type implements Composer.
func (o *ObjectComposer) Type() (graphql.Type, error) {
	return o.GetType()
}
