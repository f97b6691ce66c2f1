// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "code.hybscloud.com/atomix"

// Allocator is the external storage collaborator a Queue's constructor and
// Resize call on to obtain backing bytes. Go's slices are
// already GC-managed, so unlike the original's raw Alloc/Free pair this
// interface has no explicit free: Release exists only so a decorator like
// CountingAllocator can track live-byte accounting, not so the caller must
// balance every Allocate with a call.
type Allocator interface {
	// Allocate returns a zeroed byte slice of length n. It must return nil
	// (not panic) when it cannot satisfy the request, so Queue.Resize/Reserve
	// can report false and leave the queue in its pre-call state (the strong
	// guarantee spec.md §7 requires).
	Allocate(n int) []byte
	// Release is called when a dynamic container frees previously allocated
	// storage, e.g. on Destroy or after a Resize replaces the old backing
	// array. It is advisory: a plain heap-backed Allocator can no-op it, but
	// a decorator doing accounting needs the callback.
	Release(b []byte)
}

// heapAllocator is the default Allocator: ordinary Go heap allocation, no
// accounting. Constructors use it unless the caller supplies its own.
type heapAllocator struct{}

func (heapAllocator) Allocate(n int) []byte { return make([]byte, n) }
func (heapAllocator) Release([]byte)        {}

// DefaultAllocator is the zero-overhead Allocator every constructor in this
// package falls back to when none is supplied explicitly.
var DefaultAllocator Allocator = heapAllocator{}

// CountingAllocator decorates another Allocator with atomix.Int64 counters,
// grounding spec.md §8's "Allocator accounting" testable property: tests can
// assert AllocCalls/ReleaseCalls/LiveBytes without needing to instrument the
// container internals themselves, following the teacher's own pattern of
// using atomix.Int64 counters for cross-goroutine test assertions (see
// correctness_test.go's waitForCount helper).
type CountingAllocator struct {
	Next Allocator

	allocCalls   atomix.Int64
	releaseCalls atomix.Int64
	liveBytes    atomix.Int64
}

// NewCountingAllocator wraps next (or DefaultAllocator if next is nil).
func NewCountingAllocator(next Allocator) *CountingAllocator {
	if next == nil {
		next = DefaultAllocator
	}
	return &CountingAllocator{Next: next}
}

func (c *CountingAllocator) Allocate(n int) []byte {
	c.allocCalls.Add(1)
	b := c.Next.Allocate(n)
	if b != nil {
		c.liveBytes.Add(int64(len(b)))
	}
	return b
}

func (c *CountingAllocator) Release(b []byte) {
	c.releaseCalls.Add(1)
	if b != nil {
		c.liveBytes.Add(-int64(len(b)))
	}
	c.Next.Release(b)
}

// AllocCalls returns the number of Allocate calls observed so far.
func (c *CountingAllocator) AllocCalls() int64 { return c.allocCalls.Load() }

// ReleaseCalls returns the number of Release calls observed so far.
func (c *CountingAllocator) ReleaseCalls() int64 { return c.releaseCalls.Load() }

// LiveBytes returns the net bytes allocated and not yet released.
func (c *CountingAllocator) LiveBytes() int64 { return c.liveBytes.Load() }
