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
	"context"
	"errors"

	"github.com/botobag/hermes/compose"
	"github.com/botobag/hermes/concurrent/future"
	"github.com/botobag/hermes/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// pendingResult stays pending for a fixed number of polls before resolving with a value. Each
// pending poll schedules an immediate wakeup so BlockOn keeps making progress.
type pendingResult struct {
	remaining int
	value     interface{}
}

func (f *pendingResult) Poll(waker future.Waker) (future.PollResult, error) {
	if f.remaining > 0 {
		f.remaining--
		if err := waker.Wake(); err != nil {
			return nil, err
		}
		return future.PollResultPending, nil
	}
	return f.value, nil
}

var _ = Describe("ResolveTypeMap", func() {
	var registry *compose.Registry

	checkWith := func(result interface{}) compose.CheckTypeFunc {
		return func(ctx context.Context, value interface{}) (interface{}, error) {
			return result, nil
		}
	}

	BeforeEach(func() {
		registry = compose.NewRegistry()
		compose.MustNewObject(registry, "type Dog { name: String }")
		compose.MustNewObject(registry, "type Cat { name: String }")
	})

	Describe("entry management", func() {
		It("keeps entries in insertion order", func() {
			m := compose.NewResolveTypeMap()
			Expect(m.Add("Dog", checkWith(false))).Should(Succeed())
			Expect(m.Add("Cat", checkWith(false))).Should(Succeed())

			entries := m.Entries()
			Expect(entries).Should(HaveLen(2))
			Expect(entries[0].Target).Should(Equal(compose.TypeThunk("Dog")))
			Expect(entries[1].Target).Should(Equal(compose.TypeThunk("Cat")))
		})

		It("rejects nil targets and nil checks", func() {
			m := compose.NewResolveTypeMap()

			err := m.Add(nil, checkWith(false))
			Expect(err).Should(MatchError(ContainSubstring("Must provide a non-nil dispatch target.")))

			err = m.Add("Dog", nil)
			Expect(err).Should(MatchError(ContainSubstring(`Must provide a check function for dispatch target "Dog".`)))
			Expect(graphql.KindOf(err)).Should(Equal(graphql.ErrKindInvalidInput))
			Expect(m.Len()).Should(BeZero())
		})

		It("matches targets by resolved name across thunk variants", func() {
			dogComposer := compose.MustNewObject(registry, "type Dog { name: String }")

			m := compose.NewResolveTypeMap()
			Expect(m.Add(dogComposer, checkWith(false))).Should(Succeed())

			Expect(m.Has("Dog")).Should(BeTrue())
			Expect(m.Remove("Dog")).Should(BeTrue())
			Expect(m.Len()).Should(BeZero())

			// Removing an absent target is a no-op.
			Expect(m.Remove("Dog")).Should(BeFalse())
		})

		It("replaces entries all-or-nothing", func() {
			m := compose.NewResolveTypeMap()
			Expect(m.Add("Dog", checkWith(false))).Should(Succeed())

			err := m.SetAll([]compose.TypeResolverEntry{
				{Target: "Cat", Check: checkWith(false)},
				{Target: "Dog", Check: nil},
			})
			Expect(err).Should(HaveOccurred())

			// The failed replacement left the map unchanged.
			Expect(m.Len()).Should(Equal(1))
			Expect(m.Has("Dog")).Should(BeTrue())
			Expect(m.Has("Cat")).Should(BeFalse())
		})

		It("returns a copy from Entries", func() {
			m := compose.NewResolveTypeMap()
			Expect(m.Add("Dog", checkWith(false))).Should(Succeed())

			entries := m.Entries()
			entries[0].Target = "Cat"
			Expect(m.Has("Dog")).Should(BeTrue())
			Expect(m.Has("Cat")).Should(BeFalse())
		})
	})

	Describe("Compile", func() {
		resolve := func(m *compose.ResolveTypeMap, value interface{}) (interface{}, error) {
			resolver, err := m.Compile(registry)
			Expect(err).ShouldNot(HaveOccurred())
			return resolver.Resolve(context.Background(), value)
		}

		It("dispatches to the first matching entry in insertion order", func() {
			m := compose.NewResolveTypeMap()
			Expect(m.Add("Dog", checkWith(false))).Should(Succeed())
			Expect(m.Add("Cat", checkWith(true))).Should(Succeed())

			resolved, err := resolve(m, "a cat")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resolved.(*graphql.Object).Name()).Should(Equal("Cat"))
		})

		It("short-circuits at the first match", func() {
			laterChecked := false
			m := compose.NewResolveTypeMap()
			Expect(m.Add("Dog", checkWith(true))).Should(Succeed())
			Expect(m.Add("Cat", func(ctx context.Context, value interface{}) (interface{}, error) {
				laterChecked = true
				return true, nil
			})).Should(Succeed())

			resolved, err := resolve(m, "a dog")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resolved.(*graphql.Object).Name()).Should(Equal("Dog"))
			Expect(laterChecked).Should(BeFalse())
		})

		It("treats a nil check result as no decision", func() {
			m := compose.NewResolveTypeMap()
			Expect(m.Add("Dog", checkWith(nil))).Should(Succeed())
			Expect(m.Add("Cat", checkWith(true))).Should(Succeed())

			resolved, err := resolve(m, "a cat")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resolved.(*graphql.Object).Name()).Should(Equal("Cat"))
		})

		It("yields no decision when every check misses", func() {
			m := compose.NewResolveTypeMap()
			Expect(m.Add("Dog", checkWith(false))).Should(Succeed())
			Expect(m.Add("Cat", checkWith(false))).Should(Succeed())

			resolved, err := resolve(m, "a bird")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resolved).Should(BeNil())
		})

		It("propagates check errors", func() {
			checkErr := errors.New("check failed")
			m := compose.NewResolveTypeMap()
			Expect(m.Add("Dog", func(ctx context.Context, value interface{}) (interface{}, error) {
				return nil, checkErr
			})).Should(Succeed())

			_, err := resolve(m, "a dog")
			Expect(err).Should(MatchError(checkErr))
		})

		It("rejects unsupported check results", func() {
			m := compose.NewResolveTypeMap()
			Expect(m.Add("Dog", checkWith("yes"))).Should(Succeed())

			_, err := resolve(m, "a dog")
			Expect(err).Should(MatchError(ContainSubstring("returned unsupported string")))
		})

		It("fails when a target does not resolve", func() {
			m := compose.NewResolveTypeMap()
			Expect(m.Add("Unicorn", checkWith(true))).Should(Succeed())

			_, err := m.Compile(registry)
			Expect(graphql.KindOf(err)).Should(Equal(graphql.ErrKindNotFound))
		})

		It("fails when a target is not an object type", func() {
			m := compose.NewResolveTypeMap()
			Expect(m.Add("String", checkWith(true))).Should(Succeed())

			_, err := m.Compile(registry)
			Expect(err).Should(MatchError(ContainSubstring(`Dispatch target "String" is not an Object type.`)))
		})

		Describe("asynchronous checks", func() {
			It("suspends on a pending check and resumes with its result", func() {
				m := compose.NewResolveTypeMap()
				Expect(m.Add("Dog", checkWith(future.Ready(true)))).Should(Succeed())

				resolved, err := resolve(m, "a dog")
				Expect(err).ShouldNot(HaveOccurred())

				result, err := future.BlockOn(resolved.(future.Future))
				Expect(err).ShouldNot(HaveOccurred())
				Expect(result.(*graphql.Object).Name()).Should(Equal("Dog"))
			})

			It("settles a pending check before evaluating later candidates", func() {
				var order []string
				m := compose.NewResolveTypeMap()
				Expect(m.Add("Dog", func(ctx context.Context, value interface{}) (interface{}, error) {
					order = append(order, "Dog")
					return &pendingResult{remaining: 2, value: false}, nil
				})).Should(Succeed())
				Expect(m.Add("Cat", func(ctx context.Context, value interface{}) (interface{}, error) {
					order = append(order, "Cat")
					return true, nil
				})).Should(Succeed())

				resolved, err := resolve(m, "a cat")
				Expect(err).ShouldNot(HaveOccurred())

				// The second check must not run while the first is still pending.
				Expect(order).Should(Equal([]string{"Dog"}))

				result, err := future.BlockOn(resolved.(future.Future))
				Expect(err).ShouldNot(HaveOccurred())
				Expect(result.(*graphql.Object).Name()).Should(Equal("Cat"))
				Expect(order).Should(Equal([]string{"Dog", "Cat"}))
			})

			It("short-circuits on an asynchronous match", func() {
				laterChecked := false
				m := compose.NewResolveTypeMap()
				Expect(m.Add("Dog", checkWith(&pendingResult{remaining: 1, value: true}))).Should(Succeed())
				Expect(m.Add("Cat", func(ctx context.Context, value interface{}) (interface{}, error) {
					laterChecked = true
					return true, nil
				})).Should(Succeed())

				resolved, err := resolve(m, "a dog")
				Expect(err).ShouldNot(HaveOccurred())

				result, err := future.BlockOn(resolved.(future.Future))
				Expect(err).ShouldNot(HaveOccurred())
				Expect(result.(*graphql.Object).Name()).Should(Equal("Dog"))
				Expect(laterChecked).Should(BeFalse())
			})

			It("chains pending checks while preserving order", func() {
				m := compose.NewResolveTypeMap()
				Expect(m.Add("Dog", checkWith(&pendingResult{remaining: 1, value: false}))).Should(Succeed())
				Expect(m.Add("Cat", checkWith(&pendingResult{remaining: 1, value: true}))).Should(Succeed())

				resolved, err := resolve(m, "a cat")
				Expect(err).ShouldNot(HaveOccurred())

				result, err := future.BlockOn(resolved.(future.Future))
				Expect(err).ShouldNot(HaveOccurred())
				Expect(result.(*graphql.Object).Name()).Should(Equal("Cat"))
			})

			It("yields no decision when a pending miss exhausts the candidates", func() {
				m := compose.NewResolveTypeMap()
				Expect(m.Add("Dog", checkWith(&pendingResult{remaining: 1, value: false}))).Should(Succeed())

				resolved, err := resolve(m, "a bird")
				Expect(err).ShouldNot(HaveOccurred())

				result, err := future.BlockOn(resolved.(future.Future))
				Expect(err).ShouldNot(HaveOccurred())
				Expect(result).Should(BeNil())
			})

			It("propagates errors from pending checks", func() {
				checkErr := errors.New("check failed")
				m := compose.NewResolveTypeMap()
				Expect(m.Add("Dog", checkWith(future.Err(checkErr)))).Should(Succeed())

				resolved, err := resolve(m, "a dog")
				Expect(err).ShouldNot(HaveOccurred())

				_, err = future.BlockOn(resolved.(future.Future))
				Expect(err).Should(MatchError(checkErr))
			})
		})
	})
})
