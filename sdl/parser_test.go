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

package sdl_test

import (
	"github.com/botobag/hermes/graphql"
	"github.com/botobag/hermes/sdl"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parse", func() {
	Describe("union definitions", func() {
		It("parses a union definition", func() {
			def, err := sdl.Parse("union Pet = Dog | Cat")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(def).Should(Equal(&sdl.UnionDefinition{
				Name:    "Pet",
				Members: []string{"Dog", "Cat"},
			}))
		})

		It("allows a leading pipe", func() {
			def, err := sdl.Parse(`
				union SearchResult =
					| Human
					| Droid
					| Starship
			`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(def).Should(Equal(&sdl.UnionDefinition{
				Name:    "SearchResult",
				Members: []string{"Human", "Droid", "Starship"},
			}))
		})

		It("parses a single-member union", func() {
			def, err := sdl.Parse("union Wrapper = Payload")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(def.(*sdl.UnionDefinition).Members).Should(Equal([]string{"Payload"}))
		})

		It("rejects a union without members", func() {
			_, err := sdl.Parse("union Pet =")
			Expect(err).Should(MatchError(ContainSubstring("Expected Name but found <EOF>")))
			Expect(graphql.KindOf(err)).Should(Equal(graphql.ErrKindSyntax))
		})

		It("rejects a trailing pipe", func() {
			_, err := sdl.Parse("union Pet = Dog |")
			Expect(err).Should(MatchError(ContainSubstring("Expected Name but found <EOF>")))
		})
	})

	Describe("object definitions", func() {
		It("parses an object definition", func() {
			def, err := sdl.Parse(`
				type Droid {
					id: ID!
					name: String
					friends: [Character]
				}
			`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(def).Should(Equal(&sdl.ObjectDefinition{
				Name: "Droid",
				Fields: []sdl.FieldDefinition{
					{Name: "id", Type: sdl.NonNullTypeRef{Element: sdl.NamedTypeRef{Name: "ID"}}},
					{Name: "name", Type: sdl.NamedTypeRef{Name: "String"}},
					{Name: "friends", Type: sdl.ListTypeRef{Element: sdl.NamedTypeRef{Name: "Character"}}},
				},
			}))
		})

		It("parses nested wrapper type references", func() {
			def, err := sdl.Parse("type Matrix { rows: [[Float!]]! }")
			Expect(err).ShouldNot(HaveOccurred())

			fieldType := def.(*sdl.ObjectDefinition).Fields[0].Type
			Expect(fieldType.String()).Should(Equal("[[Float!]]!"))
		})

		It("skips commas and comments", func() {
			def, err := sdl.Parse(`
				# a comment
				type Point { x: Float, y: Float } # trailing comment
			`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(def.(*sdl.ObjectDefinition).Fields).Should(HaveLen(2))
		})

		It("rejects an object without fields", func() {
			_, err := sdl.Parse("type Empty {}")
			Expect(err).Should(MatchError(ContainSubstring("at least one field definition")))
		})
	})

	Describe("errors", func() {
		It("rejects unknown definition keywords", func() {
			_, err := sdl.Parse("interface Node { id: ID }")
			Expect(err).Should(MatchError(ContainSubstring(`Expected "union" or "type"`)))
		})

		It("rejects trailing garbage", func() {
			_, err := sdl.Parse("union Pet = Dog union Zoo = Cat")
			Expect(err).Should(MatchError(ContainSubstring("Expected <EOF>")))
		})

		It("reports line and column of unexpected characters", func() {
			_, err := sdl.Parse("union Pet =\n  Dog & Cat")
			Expect(err).Should(MatchError(ContainSubstring(`Unexpected character "&" (line 2, column 7).`)))
		})
	})
})

var _ = Describe("ParseTypeRef", func() {
	It("parses a named reference", func() {
		Expect(sdl.ParseTypeRef("Droid")).Should(Equal(sdl.TypeRef(sdl.NamedTypeRef{Name: "Droid"})))
	})

	It("parses wrapper notation", func() {
		ref, err := sdl.ParseTypeRef("[Droid!]!")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(ref.String()).Should(Equal("[Droid!]!"))
	})

	It("rejects trailing tokens", func() {
		_, err := sdl.ParseTypeRef("Droid Cat")
		Expect(err).Should(MatchError(ContainSubstring("Expected <EOF>")))
	})
})

var _ = Describe("IsName", func() {
	It("accepts bare type names", func() {
		Expect(sdl.IsName("Pet")).Should(BeTrue())
		Expect(sdl.IsName("_Internal")).Should(BeTrue())
		Expect(sdl.IsName("Type2")).Should(BeTrue())
	})

	It("rejects anything else", func() {
		Expect(sdl.IsName("")).Should(BeFalse())
		Expect(sdl.IsName("2Type")).Should(BeFalse())
		Expect(sdl.IsName("union Pet = Dog")).Should(BeFalse())
		Expect(sdl.IsName("[Pet]")).Should(BeFalse())
		Expect(sdl.IsName("Pet!")).Should(BeFalse())
	})
})
