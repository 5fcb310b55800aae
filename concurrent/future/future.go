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

package future

// A Future represents an asynchronous computation. The design follows Rust's poll-based
// futures [0]: a Future is inert and makes progress only when polled. When Poll cannot complete
// yet, the Future stores the given Waker and arranges for its Wake to be called once progress can
// be made, at which point whoever drives the Future should poll it again.
//
// [0]: https://doc.rust-lang.org/std/future/index.html
type Future interface {
	// Poll attempts to resolve the future to a final value.
	//
	// It returns:
	//
	//	* (_, err): the future finished with an error.
	//	* (PollResultPending, nil): the value is not available yet; waker has been registered for
	//	  wakeup.
	//	* (value, nil): the future finished successfully with value.
	//
	// Poll must never block. Once a future has finished, it must not be polled again. On multiple
	// calls to Poll, only the most recent Waker should be scheduled to receive a wakeup.
	Poll(waker Waker) (PollResult, error)
}
