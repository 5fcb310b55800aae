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
	"github.com/botobag/hermes/internal/util"
)

// Composer is a mutable builder that exclusively owns the definition for one named type and can
// materialize it into a concrete type.
type Composer interface {
	// TypeName returns the current name of the type being composed.
	TypeName() string

	// Type materializes the composed definition into a concrete type. Materialized types are
	// cached: calling Type twice without mutating the composer in between returns the same
	// instance.
	Type() (graphql.Type, error)
}

// scalarComposer adapts a concrete Scalar to the Composer interface so built-in scalars can be
// resolved by name.
type scalarComposer struct {
	scalar *graphql.Scalar
}

var _ Composer = scalarComposer{}

// TypeName implements Composer.
func (c scalarComposer) TypeName() string {
	return c.scalar.Name()
}

// Type implements Composer.
func (c scalarComposer) Type() (graphql.Type, error) {
	return c.scalar, nil
}

// builtinScalars resolves the built-in scalar names without occupying registry entries, so
// clearing a registry never orphans them.
var builtinScalars = map[string]Composer{
	graphql.Int.Name():     scalarComposer{graphql.Int},
	graphql.Float.Name():   scalarComposer{graphql.Float},
	graphql.String.Name():  scalarComposer{graphql.String},
	graphql.Boolean.Name(): scalarComposer{graphql.Boolean},
	graphql.ID.Name():      scalarComposer{graphql.ID},
}

// Registry maps type names to their authoritative composers within one schema-assembly session.
// It is the mechanism behind forward references: resolving a bare name defers to the registry, so
// the name may be used before its composer is created as long as the composer is registered
// before materialization.
//
// A Registry is not safe for concurrent use. Assembling a schema from multiple goroutines must be
// serialized externally.
type Registry struct {
	types map[string]Composer
}

// NewRegistry creates an empty registry for a new schema-assembly session.
func NewRegistry() *Registry {
	return &Registry{
		types: map[string]Composer{},
	}
}

// Get returns the composer registered under the given name. Built-in scalar names resolve even
// when not explicitly registered.
func (r *Registry) Get(name string) (Composer, error) {
	if composer, ok := r.types[name]; ok {
		return composer, nil
	}
	if scalar, ok := builtinScalars[name]; ok {
		return scalar, nil
	}
	message := fmt.Sprintf("Type %q not found in registry.", name)
	if suggestions := util.SuggestionList(name, r.Names()); len(suggestions) > 0 {
		message += fmt.Sprintf(" Did you mean %s?", util.OrList(suggestions, 5, true))
	}
	return nil, graphql.NewError(message, graphql.ErrKindNotFound, graphql.Op("Registry.Get"))
}

// Names returns the resolvable type names: every registered entry plus the built-in scalars. The
// order is unspecified.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types)+len(builtinScalars))
	for name := range r.types {
		names = append(names, name)
	}
	for name := range builtinScalars {
		names = append(names, name)
	}
	return names
}

// Set registers composer under the given name, silently overwriting any existing entry.
func (r *Registry) Set(name string, composer Composer) {
	r.types[name] = composer
}

// Has returns true if the given name resolves to a composer, either a registered entry or a
// built-in scalar.
func (r *Registry) Has(name string) bool {
	if _, ok := r.types[name]; ok {
		return true
	}
	_, ok := builtinScalars[name]
	return ok
}

// Clear removes every registered entry. It models the start of an independent schema-assembly
// session and must never be called in the middle of one.
func (r *Registry) Clear() {
	r.types = map[string]Composer{}
}

// Len returns the number of registered entries. Built-in scalars are not counted.
func (r *Registry) Len() int {
	return len(r.types)
}
