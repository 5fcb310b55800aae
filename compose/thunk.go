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
	"strings"

	"github.com/botobag/hermes/graphql"
	"github.com/botobag/hermes/sdl"
)

// A TypeThunk is a deferred reference to a type. It is stored verbatim at insertion and resolved
// only when a composer materializes, which is what makes forward references work. A thunk is one
// of:
//
//   - a graphql.Type: resolves to itself;
//   - a Composer: resolves to its materialized type;
//   - a ThunkFunc (or plain func() TypeThunk): invoked with no arguments on every resolution
//     (never memoized) and resolution restarts on its result;
//   - a string: a bare type name is looked up in the registry; wrapper notation ("[Name]",
//     "Name!") resolves the named type with the wrappers applied; anything else is parsed as an
//     inline type definition, registered and materialized;
//   - an sdl.TypeRef: resolved through the registry with list/non-null wrappers applied;
//   - a []TypeThunk or []string: resolves element-wise (see ResolveTypes).
type TypeThunk = interface{}

// ThunkFunc produces a TypeThunk when invoked. It allows references to types that do not exist
// yet at the time the reference is recorded.
type ThunkFunc func() TypeThunk

// ResolveType resolves a thunk into a single concrete type, consulting the registry for named
// references. Sequence thunks are rejected here; use ResolveTypes for those.
func ResolveType(r *Registry, thunk TypeThunk) (graphql.Type, error) {
	const op = graphql.Op("compose.ResolveType")

	switch thunk := thunk.(type) {
	case nil:
		return nil, graphql.NewError(
			"Cannot resolve a nil type reference.", graphql.ErrKindInvalidInput, op)

	case graphql.Type:
		return thunk, nil

	case Composer:
		return thunk.Type()

	case ThunkFunc:
		return ResolveType(r, thunk())

	case func() TypeThunk:
		return ResolveType(r, thunk())

	case string:
		return resolveNamed(r, thunk)

	case sdl.TypeRef:
		return resolveTypeRef(r, thunk)

	default:
		return nil, graphql.NewError(
			fmt.Sprintf("Cannot resolve a type reference of type %T.", thunk),
			graphql.ErrKindInvalidInput, op)
	}
}

// ResolveTypes resolves a thunk into an ordered sequence of concrete types. Sequence thunks
// resolve element-wise and fail on the first unresolvable element without partial results; any
// other thunk resolves to a one-element sequence.
func ResolveTypes(r *Registry, thunk TypeThunk) ([]graphql.Type, error) {
	switch thunk := thunk.(type) {
	case ThunkFunc:
		return ResolveTypes(r, thunk())

	case func() TypeThunk:
		return ResolveTypes(r, thunk())

	case []TypeThunk:
		types := make([]graphql.Type, 0, len(thunk))
		for _, element := range thunk {
			resolved, err := ResolveTypes(r, element)
			if err != nil {
				return nil, err
			}
			types = append(types, resolved...)
		}
		return types, nil

	case []string:
		types := make([]graphql.Type, 0, len(thunk))
		for _, name := range thunk {
			resolved, err := ResolveType(r, name)
			if err != nil {
				return nil, err
			}
			types = append(types, resolved)
		}
		return types, nil

	default:
		t, err := ResolveType(r, thunk)
		if err != nil {
			return nil, err
		}
		return []graphql.Type{t}, nil
	}
}

// resolveNamed resolves a string thunk: a bare name is looked up in the registry, wrapper
// notation resolves the named type with list/non-null wrappers applied, and anything else is
// treated as an inline type definition which is parsed, registered and materialized.
func resolveNamed(r *Registry, s string) (graphql.Type, error) {
	name := strings.TrimSpace(s)
	if sdl.IsName(name) {
		composer, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		return composer.Type()
	}

	if ref, err := sdl.ParseTypeRef(s); err == nil {
		return resolveTypeRef(r, ref)
	}

	def, err := sdl.Parse(s)
	if err != nil {
		return nil, err
	}
	composer, err := newComposerFromDefinition(r, def)
	if err != nil {
		return nil, err
	}
	return composer.Type()
}

// newComposerFromDefinition builds and registers a composer for a parsed definition.
func newComposerFromDefinition(r *Registry, def sdl.Definition) (Composer, error) {
	switch def := def.(type) {
	case *sdl.UnionDefinition:
		return NewUnion(r, def)
	case *sdl.ObjectDefinition:
		return NewObject(r, def)
	}
	return nil, graphql.NewError(
		fmt.Sprintf("Unsupported definition of type %T.", def), graphql.ErrKindInternal)
}

// resolveTypeRef resolves a syntactic type reference, applying list and non-null wrappers around
// the resolved named type.
func resolveTypeRef(r *Registry, ref sdl.TypeRef) (graphql.Type, error) {
	switch ref := ref.(type) {
	case sdl.NamedTypeRef:
		return resolveNamed(r, ref.Name)

	case sdl.ListTypeRef:
		element, err := resolveTypeRef(r, ref.Element)
		if err != nil {
			return nil, err
		}
		return graphql.NewListOfType(element)

	case sdl.NonNullTypeRef:
		element, err := resolveTypeRef(r, ref.Element)
		if err != nil {
			return nil, err
		}
		return graphql.NewNonNullOfType(element)
	}

	return nil, graphql.NewError(
		fmt.Sprintf("Unsupported type reference of type %T.", ref), graphql.ErrKindInternal)
}

// namedTypeRefOf unwraps a syntactic type reference to the name of its underlying named type.
func namedTypeRefOf(ref sdl.TypeRef) string {
	for {
		switch r := ref.(type) {
		case sdl.NamedTypeRef:
			return r.Name
		case sdl.ListTypeRef:
			ref = r.Element
		case sdl.NonNullTypeRef:
			ref = r.Element
		default:
			return ""
		}
	}
}

// TypeNamesOf derives the type names a thunk refers to without materializing any composer:
// producer functions are invoked and inline definition sources are parsed for their headline
// name, but registry lookups and type compilation never happen.
func TypeNamesOf(thunk TypeThunk) ([]string, error) {
	const op = graphql.Op("compose.TypeNamesOf")

	switch thunk := thunk.(type) {
	case nil:
		return nil, graphql.NewError(
			"Cannot derive a type name from a nil type reference.", graphql.ErrKindInvalidInput, op)

	case graphql.Type:
		if name, ok := graphql.NamedTypeOf(thunk); ok {
			return []string{name}, nil
		}
		return nil, graphql.NewError(
			fmt.Sprintf("Type %q has no name.", thunk.String()), graphql.ErrKindInvalidInput, op)

	case Composer:
		return []string{thunk.TypeName()}, nil

	case ThunkFunc:
		return TypeNamesOf(thunk())

	case func() TypeThunk:
		return TypeNamesOf(thunk())

	case string:
		name := strings.TrimSpace(thunk)
		if sdl.IsName(name) {
			return []string{name}, nil
		}
		if ref, err := sdl.ParseTypeRef(thunk); err == nil {
			return []string{namedTypeRefOf(ref)}, nil
		}
		def, err := sdl.Parse(thunk)
		if err != nil {
			return nil, err
		}
		return []string{def.DefinitionName()}, nil

	case sdl.TypeRef:
		return []string{namedTypeRefOf(thunk)}, nil

	case []TypeThunk:
		var names []string
		for _, element := range thunk {
			elementNames, err := TypeNamesOf(element)
			if err != nil {
				return nil, err
			}
			names = append(names, elementNames...)
		}
		return names, nil

	case []string:
		return thunk, nil

	default:
		return nil, graphql.NewError(
			fmt.Sprintf("Cannot derive a type name from a reference of type %T.", thunk),
			graphql.ErrKindInvalidInput, op)
	}
}
