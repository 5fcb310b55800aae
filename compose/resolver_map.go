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
	"context"
	"fmt"

	"github.com/botobag/hermes/concurrent/future"
	"github.com/botobag/hermes/graphql"
)

// CheckTypeFunc decides whether a runtime value belongs to the type it guards. It returns either
// a bool, or a future.Future resolving to a bool when the decision requires asynchronous work. A
// nil result counts as false.
type CheckTypeFunc func(ctx context.Context, value interface{}) (interface{}, error)

// TypeResolverEntry pairs a dispatch target with its check function.
type TypeResolverEntry struct {
	// Target references the type selected when Check reports a match. It may be any TypeThunk
	// resolving to a single Object type; resolution happens at Compile time, not at dispatch time,
	// so composers that are still mutating resolve to their final identity.
	Target TypeThunk

	// Check decides whether a runtime value belongs to Target.
	Check CheckTypeFunc
}

// ResolveTypeMap is an ordered mapping from dispatch targets to check functions. Insertion order
// is dispatch-priority order: the first check (in insertion order) that reports a match
// determines the resolved type.
type ResolveTypeMap struct {
	entries []TypeResolverEntry
}

// NewResolveTypeMap creates an empty map.
func NewResolveTypeMap() *ResolveTypeMap {
	return &ResolveTypeMap{}
}

// Add appends an entry to the end of the priority order.
func (m *ResolveTypeMap) Add(target TypeThunk, check CheckTypeFunc) error {
	if err := validateEntry(target, check); err != nil {
		return err
	}
	m.entries = append(m.entries, TypeResolverEntry{
		Target: target,
		Check:  check,
	})
	return nil
}

func validateEntry(target TypeThunk, check CheckTypeFunc) error {
	const op = graphql.Op("ResolveTypeMap.Add")
	if target == nil {
		return graphql.NewError(
			"Must provide a non-nil dispatch target.", graphql.ErrKindInvalidInput, op)
	}
	if check == nil {
		names, err := TypeNamesOf(target)
		if err != nil || len(names) == 0 {
			names = []string{"<unknown>"}
		}
		return graphql.NewError(
			fmt.Sprintf("Must provide a check function for dispatch target %q.", names[0]),
			graphql.ErrKindInvalidInput, op)
	}
	return nil
}

// Remove deletes the entries whose target resolves to the same name as the given target. It
// returns true if anything was removed; removing an absent target is a no-op.
func (m *ResolveTypeMap) Remove(target TypeThunk) bool {
	names, err := TypeNamesOf(target)
	if err != nil {
		return false
	}
	kept := m.entries[:0]
	removed := false
	for _, entry := range m.entries {
		if entryMatches(entry, names) {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	m.entries = kept
	return removed
}

// Has returns true if some entry's target resolves to the same name as the given target.
func (m *ResolveTypeMap) Has(target TypeThunk) bool {
	names, err := TypeNamesOf(target)
	if err != nil {
		return false
	}
	for _, entry := range m.entries {
		if entryMatches(entry, names) {
			return true
		}
	}
	return false
}

func entryMatches(entry TypeResolverEntry, names []string) bool {
	entryNames, err := TypeNamesOf(entry.Target)
	if err != nil {
		return false
	}
	for _, entryName := range entryNames {
		for _, name := range names {
			if entryName == name {
				return true
			}
		}
	}
	return false
}

// Entries returns a copy of the entries in priority order.
func (m *ResolveTypeMap) Entries() []TypeResolverEntry {
	entries := make([]TypeResolverEntry, len(m.entries))
	copy(entries, m.entries)
	return entries
}

// SetAll replaces the entire map wholesale. Every entry is validated before anything is replaced,
// so a failed SetAll leaves the map unchanged.
func (m *ResolveTypeMap) SetAll(entries []TypeResolverEntry) error {
	for _, entry := range entries {
		if err := validateEntry(entry.Target, entry.Check); err != nil {
			return err
		}
	}
	m.entries = make([]TypeResolverEntry, len(entries))
	copy(m.entries, entries)
	return nil
}

// Len returns the number of entries.
func (m *ResolveTypeMap) Len() int {
	return len(m.entries)
}

// clone makes a copy that shares no entry storage with m.
func (m *ResolveTypeMap) clone() *ResolveTypeMap {
	return &ResolveTypeMap{entries: m.Entries()}
}

// compiledCheck is one entry with its target resolved to a concrete Object.
type compiledCheck struct {
	object *graphql.Object
	check  CheckTypeFunc
}

// Compile resolves every dispatch target through the registry and builds the single runtime
// dispatch function attached to an abstract type. Candidates are evaluated strictly sequentially
// in insertion order, short-circuiting at the first match. A synchronous prefix of checks runs
// inline; if some check returns a pending result the dispatch function returns a future.Future
// that continues the walk, preserving the same order and short-circuit behavior. When no check
// matches, the dispatch function yields (nil, nil) and the caller applies its own fallback.
func (m *ResolveTypeMap) Compile(r *Registry) (graphql.TypeResolver, error) {
	const op = graphql.Op("ResolveTypeMap.Compile")

	compiled := make([]compiledCheck, len(m.entries))
	for i, entry := range m.entries {
		t, err := ResolveType(r, entry.Target)
		if err != nil {
			return nil, err
		}
		object, ok := t.(*graphql.Object)
		if !ok {
			return nil, graphql.NewError(
				fmt.Sprintf("Dispatch target %q is not an Object type.", t.String()),
				graphql.ErrKindInvalidInput, op)
		}
		compiled[i] = compiledCheck{
			object: object,
			check:  entry.Check,
		}
	}

	return graphql.TypeResolverFunc(func(ctx context.Context, value interface{}) (interface{}, error) {
		for i, entry := range compiled {
			result, err := entry.check(ctx, value)
			if err != nil {
				return nil, err
			}
			switch result := result.(type) {
			case nil:
				// No decision from this check; fall through to the next candidate.

			case bool:
				if result {
					return entry.object, nil
				}

			case future.Future:
				// Suspend: the remaining candidates are evaluated as the future is polled.
				return &dispatchFuture{
					ctx:       ctx,
					value:     value,
					remaining: compiled[i:],
					pending:   result,
				}, nil

			default:
				return nil, checkResultError(entry.object, result)
			}
		}
		return nil, nil
	}), nil
}

func checkResultError(object *graphql.Object, result interface{}) error {
	return graphql.NewError(
		fmt.Sprintf("Check function for type %q returned unsupported %T; want bool or future.Future.",
			object.Name(), result),
		graphql.ErrKindInvalidInput)
}

// dispatchFuture continues a suspended dispatch. remaining[0] is the entry that owns pending;
// entries after it have not been evaluated yet.
type dispatchFuture struct {
	ctx       context.Context
	value     interface{}
	remaining []compiledCheck
	pending   future.Future
}

var _ future.Future = (*dispatchFuture)(nil)

// Poll implements future.Future. Candidate order is strictly preserved: a pending check is
// settled before any later check runs, so priority stays deterministic even when every check is
// asynchronous.
func (f *dispatchFuture) Poll(waker future.Waker) (future.PollResult, error) {
	for {
		// Settle the in-flight check first.
		if f.pending != nil {
			result, err := f.pending.Poll(waker)
			if err != nil {
				return nil, err
			}
			if result == future.PollResultPending {
				return future.PollResultPending, nil
			}
			f.pending = nil

			entry := f.remaining[0]
			f.remaining = f.remaining[1:]
			switch result := result.(type) {
			case nil:
				// No decision; continue with the next candidate.
			case bool:
				if result {
					return entry.object, nil
				}
			default:
				return nil, checkResultError(entry.object, result)
			}
		}

		// Run candidates synchronously until one suspends or a match is found.
		for f.pending == nil {
			if len(f.remaining) == 0 {
				// Exhausted without a match.
				return nil, nil
			}

			entry := f.remaining[0]
			result, err := entry.check(f.ctx, f.value)
			if err != nil {
				return nil, err
			}
			switch result := result.(type) {
			case nil:
				f.remaining = f.remaining[1:]
			case bool:
				if result {
					return entry.object, nil
				}
				f.remaining = f.remaining[1:]
			case future.Future:
				// Keep remaining[0] in place; it owns the pending future now.
				f.pending = result
			default:
				return nil, checkResultError(entry.object, result)
			}
		}
	}
}
