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

package future_test

import (
	"errors"

	"github.com/botobag/hermes/concurrent/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// countdown stays pending for a fixed number of polls and then resolves with a value. Each
// pending poll schedules an immediate wakeup.
type countdown struct {
	remaining int
	value     interface{}
}

func (f *countdown) Poll(waker future.Waker) (future.PollResult, error) {
	if f.remaining > 0 {
		f.remaining--
		if err := waker.Wake(); err != nil {
			return nil, err
		}
		return future.PollResultPending, nil
	}
	return f.value, nil
}

var _ = Describe("BlockOn", func() {
	It("returns the value of an immediately ready future", func() {
		Expect(future.BlockOn(future.Ready("done"))).Should(Equal("done"))
	})

	It("re-polls a pending future until it completes", func() {
		Expect(future.BlockOn(&countdown{
			remaining: 3,
			value:     42,
		})).Should(Equal(42))
	})

	It("propagates error from the future", func() {
		testErr := errors.New("future failed")
		_, err := future.BlockOn(future.Err(testErr))
		Expect(err).Should(MatchError(testErr))
	})
})
