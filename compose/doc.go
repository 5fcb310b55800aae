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

// Package compose provides mutable builders ("composers") for assembling and evolving GraphQL
// type definitions before they are frozen into concrete types.
//
// Composers record member and field references as unresolved thunks: a reference may be a bare
// type name, an inline definition source, a concrete type, another composer, or a producer
// function returning any of the former. Thunks are resolved only when a composer materializes its
// concrete type, which makes forward references and mutually recursive type graphs possible: a
// name may be referenced before its composer exists, as long as the composer is registered before
// materialization.
//
// A Registry scopes one schema-assembly session. It is the single source of truth mapping a type
// name to its authoritative composer, and is injected into every composer and resolution call so
// that independent assemblies never cross-contaminate.
package compose
