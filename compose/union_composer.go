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

// UnionComposerConfig provides specification to create a UnionComposer.
type UnionComposerConfig struct {
	// Name of the defining union; must be a valid type name
	Name string

	// Description for the union type
	Description string

	// Types provides the initial member types. It may be a single type thunk, a sequence of
	// thunks, or a producer function returning either.
	Types TypeThunk
}

// UnionComposer is a mutable builder wrapping one union type definition. It owns an ordered
// collection of member type thunks and lazily compiles them into a concrete Union only when
// materialization is requested.
//
// Every mutator returns the receiver to support chaining and invalidates the materialized-type
// cache. Mutators never resolve thunks: malformed references surface from GetTypes or GetType,
// not at insertion.
type UnionComposer struct {
	registry    *Registry
	name        string
	description string

	// members holds unresolved member type thunks in declaration order.
	members []TypeThunk

	// resolvers maps member types to check functions for runtime type dispatch.
	resolvers *ResolveTypeMap

	// fallbackResolver is attached to the materialized union when resolvers is empty. It is
	// captured when the composer wraps an already-constructed Union.
	fallbackResolver graphql.TypeResolver

	// materialized caches the compiled union type; nil when stale.
	materialized *graphql.Union
}

// UnionComposer implements Composer.
var _ Composer = (*UnionComposer)(nil)

// NewUnion creates a union composer and registers it in the registry under its name, silently
// replacing any existing entry. def may be:
//
//   - a bare name string: an empty union with that name;
//   - an inline definition string ("union Name = A | B"): member names stay unresolved until
//     materialization;
//   - an *sdl.UnionDefinition: as above, already parsed;
//   - a *UnionComposerConfig;
//   - a *graphql.Union: wraps the existing type, capturing its member list as concrete thunks and
//     its type resolver as the fallback.
func NewUnion(r *Registry, def interface{}) (*UnionComposer, error) {
	u, err := newUnionComposer(r, def)
	if err != nil {
		return nil, err
	}
	r.Set(u.name, u)
	return u, nil
}

// NewTempUnion is identical to NewUnion but skips registry insertion; the caller exclusively owns
// the result.
func NewTempUnion(r *Registry, def interface{}) (*UnionComposer, error) {
	return newUnionComposer(r, def)
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on failure instead of
// returning an error.
func MustNewUnion(r *Registry, def interface{}) *UnionComposer {
	u, err := NewUnion(r, def)
	if err != nil {
		panic(err)
	}
	return u
}

func newUnionComposer(r *Registry, def interface{}) (*UnionComposer, error) {
	const op = graphql.Op("compose.NewUnion")

	if r == nil {
		return nil, graphql.NewError(
			"Must provide a registry for the union composer.", graphql.ErrKindInvalidInput, op)
	}

	u := &UnionComposer{
		registry:  r,
		resolvers: NewResolveTypeMap(),
	}

	switch def := def.(type) {
	case string:
		if sdl.IsName(def) {
			u.name = def
			return u, nil
		}
		parsed, err := sdl.Parse(def)
		if err != nil {
			return nil, err
		}
		unionDef, ok := parsed.(*sdl.UnionDefinition)
		if !ok {
			return nil, graphql.NewError(
				fmt.Sprintf("Expected a union definition but %q defines %q differently.",
					def, parsed.DefinitionName()),
				graphql.ErrKindInvalidInput, op)
		}
		return newUnionComposerFromDefinition(u, unionDef)

	case *sdl.UnionDefinition:
		return newUnionComposerFromDefinition(u, def)

	case *UnionComposerConfig:
		if err := validateTypeName(op, def.Name); err != nil {
			return nil, err
		}
		u.name = def.Name
		u.description = def.Description
		if def.Types != nil {
			switch types := def.Types.(type) {
			case []TypeThunk:
				u.members = append(u.members, types...)
			case []string:
				for _, name := range types {
					u.members = append(u.members, name)
				}
			default:
				// A single thunk (possibly a producer of a sequence); it flattens at
				// materialization.
				u.members = append(u.members, def.Types)
			}
		}
		return u, nil

	case *graphql.Union:
		u.name = def.Name()
		u.description = def.Description()
		for _, possibleType := range def.PossibleTypes() {
			u.members = append(u.members, possibleType)
		}
		u.fallbackResolver = def.TypeResolver()
		return u, nil

	case nil:
		return nil, graphql.NewError(
			"Must provide a definition for the union composer.", graphql.ErrKindInvalidInput, op)

	default:
		return nil, graphql.NewError(
			fmt.Sprintf("Cannot create a union composer from a definition of type %T.", def),
			graphql.ErrKindInvalidInput, op)
	}
}

func newUnionComposerFromDefinition(u *UnionComposer, def *sdl.UnionDefinition) (*UnionComposer, error) {
	u.name = def.Name
	for _, member := range def.Members {
		u.members = append(u.members, member)
	}
	return u, nil
}

func validateTypeName(op graphql.Op, name string) error {
	if !sdl.IsName(name) {
		return graphql.NewError(
			fmt.Sprintf("Invalid type name %q.", name), graphql.ErrKindInvalidInput, op)
	}
	return nil
}

// invalidate drops the materialized-type cache. Every mutation goes through here.
func (u *UnionComposer) invalidate() {
	u.materialized = nil
}

//===---------------------------------------------------------------------------------------====//
// Mutation operations
//===---------------------------------------------------------------------------------------====//

// TypeName returns the current name of the composed union.
func (u *UnionComposer) TypeName() string {
	return u.name
}

// SetTypeName renames the composed union. Renaming does not move or remove the composer's
// registry entry: callers that want the new name to resolve must update the registry themselves.
// It panics when the name is not a valid type name.
func (u *UnionComposer) SetTypeName(name string) *UnionComposer {
	if err := validateTypeName("UnionComposer.SetTypeName", name); err != nil {
		panic(err)
	}
	u.name = name
	u.invalidate()
	return u
}

// Description returns the description of the composed union.
func (u *UnionComposer) Description() string {
	return u.description
}

// SetDescription updates the description of the composed union.
func (u *UnionComposer) SetDescription(description string) *UnionComposer {
	u.description = description
	u.invalidate()
	return u
}

// AddType appends a member type thunk to the member list. The thunk is stored verbatim and is
// not resolved until materialization; a member whose resolved name duplicates an earlier member
// is silently dropped at that point. It panics on a nil thunk.
func (u *UnionComposer) AddType(thunk TypeThunk) *UnionComposer {
	if thunk == nil {
		panic(graphql.NewError("Cannot add a nil member type.",
			graphql.ErrKindInvalidInput, graphql.Op("UnionComposer.AddType")))
	}
	u.members = append(u.members, thunk)
	u.invalidate()
	return u
}

// SetTypes replaces the member list wholesale. It panics on a nil thunk in the list.
func (u *UnionComposer) SetTypes(thunks []TypeThunk) *UnionComposer {
	members := make([]TypeThunk, len(thunks))
	for i, thunk := range thunks {
		if thunk == nil {
			panic(graphql.NewError("Cannot add a nil member type.",
				graphql.ErrKindInvalidInput, graphql.Op("UnionComposer.SetTypes")))
		}
		members[i] = thunk
	}
	u.members = members
	u.invalidate()
	return u
}

// RemoveType removes the members whose resolved names match any of the given names. Names that
// are not present are ignored.
func (u *UnionComposer) RemoveType(names ...string) *UnionComposer {
	u.filterMembers(names, false /* keepMatching */)
	return u
}

// RemoveOtherTypes keeps only the members whose resolved names match any of the given names.
func (u *UnionComposer) RemoveOtherTypes(names ...string) *UnionComposer {
	u.filterMembers(names, true /* keepMatching */)
	return u
}

func (u *UnionComposer) filterMembers(names []string, keepMatching bool) {
	removal := make(map[string]bool, len(names))
	for _, name := range names {
		removal[name] = true
	}

	kept := u.members[:0]
	for _, member := range u.members {
		matched := false
		// A member whose name cannot be derived cannot match any name.
		if memberNames, err := TypeNamesOf(member); err == nil {
			for _, memberName := range memberNames {
				if removal[memberName] {
					matched = true
					break
				}
			}
		}
		if matched == keepMatching {
			kept = append(kept, member)
		}
	}
	u.members = kept
	u.invalidate()
}

// ClearTypes empties the member list.
func (u *UnionComposer) ClearTypes() *UnionComposer {
	u.members = nil
	u.invalidate()
	return u
}

// Clone produces a new, independently owned composer with the given name, shallow-copying the
// member thunk list and the type resolver entries (the thunks themselves are shared; they are
// immutable references, not compiled state). The clone is registered under newName. Mutating the
// clone never affects the original and vice versa.
func (u *UnionComposer) Clone(newName string) (*UnionComposer, error) {
	if err := validateTypeName("UnionComposer.Clone", newName); err != nil {
		return nil, err
	}

	clone := &UnionComposer{
		registry:         u.registry,
		name:             newName,
		description:      u.description,
		members:          append([]TypeThunk(nil), u.members...),
		resolvers:        u.resolvers.clone(),
		fallbackResolver: u.fallbackResolver,
	}
	u.registry.Set(newName, clone)
	return clone, nil
}

//===---------------------------------------------------------------------------------------====//
// Type resolver operations
//===---------------------------------------------------------------------------------------====//

// AddTypeResolver appends a (target, check) pair to the dispatch priority order.
func (u *UnionComposer) AddTypeResolver(target TypeThunk, check CheckTypeFunc) error {
	if err := u.resolvers.Add(target, check); err != nil {
		return err
	}
	u.invalidate()
	return nil
}

// RemoveTypeResolver removes the entries dispatching to the given target.
func (u *UnionComposer) RemoveTypeResolver(target TypeThunk) *UnionComposer {
	u.resolvers.Remove(target)
	u.invalidate()
	return u
}

// HasTypeResolver returns true if some entry dispatches to the given target.
func (u *UnionComposer) HasTypeResolver(target TypeThunk) bool {
	return u.resolvers.Has(target)
}

// SetTypeResolvers replaces the entire dispatch map wholesale.
func (u *UnionComposer) SetTypeResolvers(entries []TypeResolverEntry) error {
	if err := u.resolvers.SetAll(entries); err != nil {
		return err
	}
	u.invalidate()
	return nil
}

// TypeResolvers returns the dispatch map. Mutating the returned map directly bypasses cache
// invalidation; prefer the composer's resolver operations.
func (u *UnionComposer) TypeResolvers() *ResolveTypeMap {
	return u.resolvers
}

//===---------------------------------------------------------------------------------------====//
// Query operations
//===---------------------------------------------------------------------------------------====//

// GetTypes resolves every member thunk and returns the ordered sequence of member Object types.
// Members whose resolved name duplicates an earlier member are silently dropped; the first
// occurrence wins. It fails on the first unresolvable member.
func (u *UnionComposer) GetTypes() ([]*graphql.Object, error) {
	const op = graphql.Op("UnionComposer.GetTypes")

	var (
		objects []*graphql.Object
		seen    = map[string]bool{}
	)
	for _, member := range u.members {
		types, err := ResolveTypes(u.registry, member)
		if err != nil {
			return nil, graphql.WrapErrorf(err, "Failed to resolve a member type of Union %q.", u.name)
		}
		for _, t := range types {
			object, ok := t.(*graphql.Object)
			if !ok {
				return nil, graphql.NewError(
					fmt.Sprintf("Union %q member %q is not an Object type.", u.name, t.String()),
					graphql.ErrKindInvalidInput, op)
			}
			if seen[object.Name()] {
				continue
			}
			seen[object.Name()] = true
			objects = append(objects, object)
		}
	}
	return objects, nil
}

// GetTypeNames returns the ordered sequence of member type names. Names are derived without
// materializing members: producer functions are invoked and inline definition sources are parsed
// for their headline name, but nothing is compiled and the registry is not consulted, so a
// forward reference to a not-yet-registered name still yields that name.
func (u *UnionComposer) GetTypeNames() ([]string, error) {
	var (
		names []string
		seen  = map[string]bool{}
	)
	for _, member := range u.members {
		memberNames, err := TypeNamesOf(member)
		if err != nil {
			return nil, err
		}
		for _, name := range memberNames {
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}

// HasType returns true if some member resolves to the given name. Like GetTypeNames it never
// materializes members; members whose name cannot be derived are skipped.
func (u *UnionComposer) HasType(name string) bool {
	for _, member := range u.members {
		memberNames, err := TypeNamesOf(member)
		if err != nil {
			continue
		}
		for _, memberName := range memberNames {
			if memberName == name {
				return true
			}
		}
	}
	return false
}

// GetType materializes the concrete Union from the current member list and the type resolver
// map, caching the result until the next mutation. Repeated calls without intervening mutations
// return the same instance.
func (u *UnionComposer) GetType() (*graphql.Union, error) {
	if u.materialized != nil {
		return u.materialized, nil
	}

	possibleTypes, err := u.GetTypes()
	if err != nil {
		return nil, err
	}

	typeResolver := u.fallbackResolver
	if u.resolvers.Len() > 0 {
		typeResolver, err = u.resolvers.Compile(u.registry)
		if err != nil {
			return nil, err
		}
	}

	union, err := graphql.NewUnion(graphql.UnionConfig{
		Name:          u.name,
		Description:   u.description,
		PossibleTypes: possibleTypes,
		TypeResolver:  typeResolver,
	})
	if err != nil {
		return nil, err
	}

	u.materialized = union
	return union, nil
}

// Type implements Composer.
func (u *UnionComposer) Type() (graphql.Type, error) {
	return u.GetType()
}

// GetTypePlural returns a List wrapper around the materialized union type.
func (u *UnionComposer) GetTypePlural() (*graphql.List, error) {
	union, err := u.GetType()
	if err != nil {
		return nil, err
	}
	return graphql.NewListOfType(union)
}

// GetTypeNonNull returns a NonNull wrapper around the materialized union type.
func (u *UnionComposer) GetTypeNonNull() (*graphql.NonNull, error) {
	union, err := u.GetType()
	if err != nil {
		return nil, err
	}
	return graphql.NewNonNullOfType(union)
}
