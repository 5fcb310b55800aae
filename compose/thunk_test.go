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

package compose_test

import (
	"github.com/botobag/hermes/compose"
	"github.com/botobag/hermes/graphql"
	"github.com/botobag/hermes/sdl"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResolveType", func() {
	var registry *compose.Registry

	BeforeEach(func() {
		registry = compose.NewRegistry()
	})

	It("resolves a concrete type to itself", func() {
		resolved, err := compose.ResolveType(registry, graphql.String)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resolved).Should(BeIdenticalTo(graphql.Type(graphql.String)))
	})

	It("resolves a composer to its materialized type", func() {
		droid := compose.MustNewObject(registry, "type Droid { id: ID }")

		resolved, err := compose.ResolveType(registry, droid)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resolved.(*graphql.Object).Name()).Should(Equal("Droid"))
	})

	It("resolves a bare name through the registry", func() {
		compose.MustNewObject(registry, "type Droid { id: ID }")

		resolved, err := compose.ResolveType(registry, "Droid")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resolved.(*graphql.Object).Name()).Should(Equal("Droid"))
	})

	It("parses and registers an inline type definition", func() {
		resolved, err := compose.ResolveType(registry, "type Droid { id: ID }")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resolved.(*graphql.Object).Name()).Should(Equal("Droid"))

		// The inline definition occupies a registry entry from now on.
		Expect(registry.Has("Droid")).Should(BeTrue())
	})

	It("resolves wrapper notation around a registered name", func() {
		compose.MustNewObject(registry, "type Droid { id: ID }")

		resolved, err := compose.ResolveType(registry, "[Droid]")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resolved.String()).Should(Equal("[Droid]"))

		resolved, err = compose.ResolveType(registry, "[Droid!]!")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resolved.String()).Should(Equal("[Droid!]!"))
	})

	It("invokes producer functions on every resolution", func() {
		invocations := 0
		thunk := compose.ThunkFunc(func() compose.TypeThunk {
			invocations++
			return graphql.Int
		})

		for i := 0; i < 3; i++ {
			resolved, err := compose.ResolveType(registry, thunk)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resolved).Should(BeIdenticalTo(graphql.Type(graphql.Int)))
		}
		Expect(invocations).Should(Equal(3))
	})

	It("accepts plain functions as producers", func() {
		resolved, err := compose.ResolveType(registry, func() compose.TypeThunk {
			return graphql.Boolean
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resolved).Should(BeIdenticalTo(graphql.Type(graphql.Boolean)))
	})

	It("follows chained producers", func() {
		resolved, err := compose.ResolveType(registry, func() compose.TypeThunk {
			return func() compose.TypeThunk {
				return "String"
			}
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resolved).Should(BeIdenticalTo(graphql.Type(graphql.String)))
	})

	It("resolves syntactic type references with wrappers", func() {
		resolved, err := compose.ResolveType(registry, sdl.NonNullTypeRef{
			Element: sdl.ListTypeRef{
				Element: sdl.NamedTypeRef{Name: "String"},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resolved.String()).Should(Equal("[String]!"))
	})

	It("resolves the same composer reference to the same instance", func() {
		compose.MustNewObject(registry, "type Droid { id: ID }")

		first, err := compose.ResolveType(registry, "Droid")
		Expect(err).ShouldNot(HaveOccurred())
		second, err := compose.ResolveType(registry, "Droid")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(second).Should(BeIdenticalTo(first))
	})

	It("rejects nil references", func() {
		_, err := compose.ResolveType(registry, nil)
		Expect(err).Should(MatchError(ContainSubstring("Cannot resolve a nil type reference.")))
		Expect(graphql.KindOf(err)).Should(Equal(graphql.ErrKindInvalidInput))
	})

	It("rejects references of unsupported types", func() {
		_, err := compose.ResolveType(registry, 42)
		Expect(err).Should(MatchError(ContainSubstring("Cannot resolve a type reference of type int.")))
	})

	It("rejects sequences", func() {
		_, err := compose.ResolveType(registry, []compose.TypeThunk{"Droid"})
		Expect(err).Should(MatchError(ContainSubstring("Cannot resolve a type reference of type []interface {}.")))
	})
})

var _ = Describe("ResolveTypes", func() {
	var registry *compose.Registry

	BeforeEach(func() {
		registry = compose.NewRegistry()
		compose.MustNewObject(registry, "type Dog { name: String }")
		compose.MustNewObject(registry, "type Cat { name: String }")
	})

	It("resolves a single thunk to a one-element sequence", func() {
		types, err := compose.ResolveTypes(registry, "Dog")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(types).Should(HaveLen(1))
		Expect(types[0].(*graphql.Object).Name()).Should(Equal("Dog"))
	})

	It("resolves a name sequence in order", func() {
		types, err := compose.ResolveTypes(registry, []string{"Dog", "Cat"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(types).Should(HaveLen(2))
		Expect(types[0].(*graphql.Object).Name()).Should(Equal("Dog"))
		Expect(types[1].(*graphql.Object).Name()).Should(Equal("Cat"))
	})

	It("flattens nested sequences element-wise", func() {
		types, err := compose.ResolveTypes(registry, []compose.TypeThunk{
			"Dog",
			func() compose.TypeThunk { return []string{"Cat"} },
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(types).Should(HaveLen(2))
		Expect(types[1].(*graphql.Object).Name()).Should(Equal("Cat"))
	})

	It("invokes a producer of a sequence", func() {
		types, err := compose.ResolveTypes(registry, compose.ThunkFunc(func() compose.TypeThunk {
			return []string{"Dog", "Cat"}
		}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(types).Should(HaveLen(2))
	})

	It("fails on the first unresolvable element without partial results", func() {
		types, err := compose.ResolveTypes(registry, []string{"Dog", "Unicorn", "Cat"})
		Expect(types).Should(BeNil())
		Expect(graphql.KindOf(err)).Should(Equal(graphql.ErrKindNotFound))
	})
})

var _ = Describe("TypeNamesOf", func() {
	It("derives names without consulting a registry", func() {
		names, err := compose.TypeNamesOf("Droid")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(names).Should(Equal([]string{"Droid"}))
	})

	It("parses inline definitions for their headline name only", func() {
		names, err := compose.TypeNamesOf("union Pet = Dog | Cat")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(names).Should(Equal([]string{"Pet"}))
	})

	It("unwraps wrapper notation to the named type", func() {
		names, err := compose.TypeNamesOf("[Droid!]!")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(names).Should(Equal([]string{"Droid"}))
	})

	It("unwraps syntactic type references to the named type", func() {
		names, err := compose.TypeNamesOf(sdl.NonNullTypeRef{
			Element: sdl.ListTypeRef{Element: sdl.NamedTypeRef{Name: "Droid"}},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(names).Should(Equal([]string{"Droid"}))
	})

	It("unwraps concrete types to their named type", func() {
		wrapped := graphql.MustNewNonNullOfType(graphql.MustNewListOfType(graphql.Int))
		names, err := compose.TypeNamesOf(wrapped)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(names).Should(Equal([]string{"Int"}))
	})

	It("asks composers for their current name", func() {
		registry := compose.NewRegistry()
		pet := compose.MustNewUnion(registry, "Pet")

		names, err := compose.TypeNamesOf(pet)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(names).Should(Equal([]string{"Pet"}))
	})

	It("invokes producer functions", func() {
		names, err := compose.TypeNamesOf(func() compose.TypeThunk { return "Droid" })
		Expect(err).ShouldNot(HaveOccurred())
		Expect(names).Should(Equal([]string{"Droid"}))
	})

	It("flattens sequences", func() {
		names, err := compose.TypeNamesOf([]compose.TypeThunk{
			"Dog",
			sdl.NamedTypeRef{Name: "Cat"},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(names).Should(Equal([]string{"Dog", "Cat"}))
	})

	It("rejects nil references", func() {
		_, err := compose.TypeNamesOf(nil)
		Expect(graphql.KindOf(err)).Should(Equal(graphql.ErrKindInvalidInput))
	})
})
