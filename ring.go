// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// ringCore is the Lamport ring algebra shared by Queue, Pool and Latest: two
// monotonic counters (tail advanced by the producer, head advanced by the
// consumer) plus, when the counter backend is atomic, a shadow cache of the
// peer's counter on each side to avoid a cross-core load on every operation.
// This generalizes the teacher's SPSC[T] struct (head/tail/cachedHead/
// cachedTail) to the four counter backends and to the bulk/resize/swap
// operations spec.md's Pool and Latest containers additionally need, and
// mirrors the original's SPSCbase<Counter, Policy>.
//
// V is the counter storage struct (embedded by value, so it is addressable
// and zero-value-ready); C is always *V and supplies the Load/Store/Add
// method set (see Counter[V]).
type ringCore[V any, C Counter[V]] struct {
	geometry

	_          pad
	tail       V
	_          pad
	cachedHead reg // producer's cached view of head, refreshed from peer
	_          pad
	head       V
	_          pad
	cachedTail reg // consumer's cached view of tail, refreshed from peer

	useShadow bool
}

// initRing sets up g as the ring's geometry and resets both counters and
// shadows to zero. Non-concurrent: callers must ensure no producer or
// consumer operation is in flight.
func (r *ringCore[V, C]) initRing(g geometry) {
	r.geometry = g
	C(&r.tail).StoreOwner(0)
	C(&r.head).StoreOwner(0)
	r.cachedHead = 0
	r.cachedTail = 0
	r.useShadow = EnableShadowIndices && C(&r.tail).IsAtomic() && C(&r.head).IsAtomic()
}

// Size returns the number of occupied slots as observed by either side. It
// always takes a fresh peer load, so it is safe to call from a third-party
// goroutine for metrics/diagnostics purposes, but it is not itself a
// producer or consumer operation.
//
// tail and head are loaded independently and non-atomically as a pair, so a
// caller racing the producer and consumer can observe a "torn" snapshot
// (tail taken before a burst of activity, head taken after) that makes
// tail-head wrap to a huge value under unsigned subtraction. When the
// backend is atomic this is retried once; if the second snapshot is still
// impossible, Size conservatively reports 0 (favor "empty") rather than the
// wrapped count. Non-atomic backends have no concurrent peer to race
// against, so no retry is needed.
func (r *ringCore[V, C]) Size() reg {
	used := C(&r.tail).LoadPeer() - C(&r.head).LoadPeer()
	if used <= r.capacity || !C(&r.tail).IsAtomic() {
		return used
	}
	used = C(&r.tail).LoadPeer() - C(&r.head).LoadPeer()
	if used > r.capacity {
		return 0
	}
	return used
}

// Empty reports whether Size() == 0. Size already answers conservatively
// (0, i.e. empty) on an impossible cross-thread snapshot, so Empty inherits
// that without any extra handling.
func (r *ringCore[V, C]) Empty() bool { return r.Size() == 0 }

// Full reports whether the ring has no free slots. Unlike Empty, an
// impossible snapshot here is resolved the other way: a producer asking
// Full must not be told there's room when there might not be, so a
// still-impossible retry reports full (true) rather than clamping to
// Size()'s "favor empty" answer.
func (r *ringCore[V, C]) Full() bool {
	used := C(&r.tail).LoadPeer() - C(&r.head).LoadPeer()
	if used == r.capacity {
		return true
	}
	if used < r.capacity || !C(&r.tail).IsAtomic() {
		return false
	}
	used = C(&r.tail).LoadPeer() - C(&r.head).LoadPeer()
	return used >= r.capacity
}

// Free returns how many slots can still be written. Mirrors Full's
// conservative direction: an impossible snapshot that survives the retry is
// reported as 0 free space rather than Size()'s "favor empty" 0-used
// answer, so a producer never over-commits against a torn read.
func (r *ringCore[V, C]) Free() reg {
	used := C(&r.tail).LoadPeer() - C(&r.head).LoadPeer()
	if used <= r.capacity || !C(&r.tail).IsAtomic() {
		if used >= r.capacity {
			return 0
		}
		return r.capacity - used
	}
	used = C(&r.tail).LoadPeer() - C(&r.head).LoadPeer()
	if used >= r.capacity {
		return 0
	}
	return r.capacity - used
}

// canWrite reports whether at least n more slots can be claimed by the
// producer, using the cached head when shadow caching is enabled and
// refreshing it only on a cache miss, exactly as the teacher's Enqueue does
// for n==1 (see spsc.go). When shadow caching is disabled (non-atomic
// backend, or EnableShadowIndices is false), every call takes a fresh peer
// load: correct, just without the cross-core traffic reduction.
func (r *ringCore[V, C]) canWrite(tail reg, n reg) bool {
	if !r.useShadow {
		return r.capacity-(tail-C(&r.head).LoadPeer()) >= n
	}
	if r.capacity-(tail-r.cachedHead) >= n {
		return true
	}
	r.cachedHead = C(&r.head).LoadPeer()
	return r.capacity-(tail-r.cachedHead) >= n
}

// canRead is canWrite's mirror image for the consumer side.
func (r *ringCore[V, C]) canRead(head reg, n reg) bool {
	if !r.useShadow {
		return C(&r.tail).LoadPeer()-head >= n
	}
	if r.cachedTail-head >= n {
		return true
	}
	r.cachedTail = C(&r.tail).LoadPeer()
	return r.cachedTail-head >= n
}

// writeSize returns the number of slots the producer can claim right now,
// capped at want and at the run to the end of the backing array before
// wrapping (a claim never straddles the wrap point; the caller claims the
// remainder in a second call). A shadow that shows fewer than want free slots
// is refreshed from the peer once before answering. This realizes the
// original's write_size().
func (r *ringCore[V, C]) writeSize(want reg) reg {
	tail := C(&r.tail).LoadOwner()
	avail := r.capacity - (tail - r.peekHead())
	if avail < want && r.useShadow {
		r.cachedHead = C(&r.head).LoadPeer()
		avail = r.capacity - (tail - r.cachedHead)
	}
	if avail == 0 {
		return 0
	}
	if want < avail {
		avail = want
	}
	return r.contiguous(tail, avail)
}

// readSize is writeSize's consumer-side mirror, realizing read_size().
func (r *ringCore[V, C]) readSize(want reg) reg {
	head := C(&r.head).LoadOwner()
	avail := r.peekTail() - head
	if avail < want && r.useShadow {
		r.cachedTail = C(&r.tail).LoadPeer()
		avail = r.cachedTail - head
	}
	if avail == 0 {
		return 0
	}
	if want < avail {
		avail = want
	}
	return r.contiguous(head, avail)
}

// peekHead returns the producer's cached view of head (a peer load when
// shadowing is off). With ShadowRefreshHeuristic on, the shadow is first
// refreshed whenever the free space it implies is at or below
// capacity >> ShadowRefreshShift; otherwise it is returned as cached, and
// callers that find it short refresh it themselves.
func (r *ringCore[V, C]) peekHead() reg {
	if !r.useShadow {
		return C(&r.head).LoadPeer()
	}
	if ShadowRefreshHeuristic {
		threshold := r.capacity >> ShadowRefreshShift
		if r.capacity-(C(&r.tail).LoadOwner()-r.cachedHead) <= threshold {
			r.cachedHead = C(&r.head).LoadPeer()
		}
	}
	return r.cachedHead
}

// peekTail is peekHead's consumer-side mirror.
func (r *ringCore[V, C]) peekTail() reg {
	if !r.useShadow {
		return C(&r.tail).LoadPeer()
	}
	if ShadowRefreshHeuristic {
		threshold := r.capacity >> ShadowRefreshShift
		if (r.cachedTail - C(&r.head).LoadOwner()) <= threshold {
			r.cachedTail = C(&r.tail).LoadPeer()
		}
	}
	return r.cachedTail
}

// advanceTail publishes tail+n to the consumer (a single release-ordered
// store), completing a bulk write claim.
func (r *ringCore[V, C]) advanceTail(tail, n reg) {
	C(&r.tail).StoreOwner(tail + n)
}

// advanceHead is advanceTail's consumer-side mirror.
func (r *ringCore[V, C]) advanceHead(head, n reg) {
	C(&r.head).StoreOwner(head + n)
}

// syncHeadToTail makes the producer drop every unread element: head is
// advanced to the producer's own view of tail. This can only decrease what
// the consumer will ever see, never increase it, and is non-concurrent with
// any in-flight consumer operation exactly as the original's
// sync_head_to_tail() requires.
func (r *ringCore[V, C]) syncHeadToTail() {
	t := C(&r.tail).LoadOwner()
	C(&r.head).StoreOwner(t)
	r.cachedTail = t
}

// syncTailToHead is syncHeadToTail's mirror: the consumer catches up to the
// producer's tail, draining everything currently published. Non-concurrent
// with any in-flight producer operation.
func (r *ringCore[V, C]) syncTailToHead() {
	t := C(&r.tail).LoadPeer()
	C(&r.head).StoreOwner(t)
	r.cachedTail = t
}

// clear resets both counters to zero. Non-concurrent: the caller must hold
// exclusive access, matching the original's clear().
func (r *ringCore[V, C]) clear() {
	C(&r.tail).StoreOwner(0)
	C(&r.head).StoreOwner(0)
	r.cachedHead = 0
	r.cachedTail = 0
}

// syncCache forces both shadows to be reloaded from their peers. Called
// after any non-concurrent structural change (resize, swap, reserve) so a
// stale shadow from before the change is never reused.
func (r *ringCore[V, C]) syncCache() {
	r.cachedHead = C(&r.head).LoadPeer()
	r.cachedTail = C(&r.tail).LoadPeer()
}

// swapBase exchanges geometry and counter state with other in place. Both
// rings must be quiesced by the caller; afterward both rings' shadows are
// resynced, matching the original's swap_base().
func (r *ringCore[V, C]) swapBase(other *ringCore[V, C]) {
	r.geometry, other.geometry = other.geometry, r.geometry
	rt, rh := C(&r.tail).LoadOwner(), C(&r.head).LoadOwner()
	ot, oh := C(&other.tail).LoadOwner(), C(&other.head).LoadOwner()
	C(&r.tail).StoreOwner(ot)
	C(&r.head).StoreOwner(oh)
	C(&other.tail).StoreOwner(rt)
	C(&other.head).StoreOwner(rh)
	r.useShadow, other.useShadow = other.useShadow, r.useShadow
	r.syncCache()
	other.syncCache()
}
