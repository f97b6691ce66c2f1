// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately: the
// queue is full (producer side) or empty (consumer side).
//
// ErrWouldBlock is a control flow signal, not a failure. No function in this
// package returns it: the try_* operations on Queue/Pool/Latest report a
// non-blocking refusal as a plain bool, the idiomatic Go shape for it, and
// Resize/Reserve report refusal as a false return as well.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency with
// other code.hybscloud.com packages.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrInvalid indicates the operation was attempted on a dynamic container
// that has not been initialized (or has been destroyed). It is an alias for
// [iox.ErrWouldBlock] under the same semantic-error umbrella: like a full or
// empty queue, an invalid container is a refusal to proceed, not a failure.
var ErrInvalid = iox.ErrWouldBlock

// ErrAllocation names the failure of the configured Allocator to supply
// backing storage. Queue.Resize/Reserve report that case as a false return
// (leaving the queue in its pre-call state) rather than returning this
// error; no function in this package returns it. iox does not carry a distinct
// allocation-failure sentinel of its own, so this one is local to the
// package rather than an alias.
var ErrAllocation = errors.New("spsc: allocation failed")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
