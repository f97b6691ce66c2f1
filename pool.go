// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Pool is a single-producer single-consumer bounded ring of *T, backed by
// one or more persistent storage chunks. Unlike Queue, a claimed slot's
// address never moves for the lifetime of the Pool: Claim/Pop hand out
// pointers into a storage chunk that is never reallocated or shuffled, only
// ever appended to on Resize. This realizes the original's typed_pool.hpp
// pointer-stability invariant — useful when external code correlates
// objects by address across produce/consume cycles (e.g. a zero-copy buffer
// pool interoperating with code outside this package).
//
// T is recycled, not destroyed: popping a slot does not zero it, since the
// whole point of a pool is reusing the storage; the next producer to claim
// that ring position overwrites it.
type Pool[T any, V any, C Counter[V]] struct {
	ringCore[V, C]
	storages [][]T
	ring     []*T
	alloc    Allocator
	dyn      bool
	closed   bool
}

// NewPool constructs a fixed-capacity Pool.
func NewPool[T any, V any, C Counter[V]](capacity int) *Pool[T, V, C] {
	p, ok := newPool[T, V, C](capacity, DefaultAllocator)
	if !ok {
		panic("spsc: capacity must be > 0")
	}
	return p
}

// NewDynamicPool constructs a Pool that additionally supports Resize/Reserve.
func NewDynamicPool[T any, V any, C Counter[V]](capacity int, alloc Allocator) *Pool[T, V, C] {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	p, ok := newPool[T, V, C](capacity, alloc)
	if !ok {
		panic("spsc: capacity must be > 0")
	}
	p.dyn = true
	return p
}

func newPool[T any, V any, C Counter[V]](capacity int, alloc Allocator) (*Pool[T, V, C], bool) {
	g, ok := newGeometry(capacity)
	if !ok {
		return nil, false
	}
	p := &Pool[T, V, C]{alloc: alloc}
	p.initRing(g)
	chunk := make([]T, g.capacity)
	p.storages = [][]T{chunk}
	p.ring = make([]*T, g.capacity)
	for i := range chunk {
		p.ring[i] = &chunk[i]
	}
	return p, true
}

// TryClaim writes v into the next free ring slot and publishes it. It
// reports false if the pool is full.
func (p *Pool[T, V, C]) TryClaim(v T) bool {
	tail := C(&p.tail).LoadOwner()
	if !p.canWrite(tail, 1) {
		return false
	}
	*p.ring[p.index(tail)] = v
	p.advanceTail(tail, 1)
	return true
}

// ClaimPointer returns the address of the next free ring slot without
// publishing it, so the caller can construct T in place before calling
// CommitWrite(1). Like Queue.ClaimWrite, this requires Unsafe to
// acknowledge the caller now owns initializing the slot's contents.
func (p *Pool[T, V, C]) ClaimPointer(_ unsafeTag) (*T, bool) {
	tail := C(&p.tail).LoadOwner()
	if !p.canWrite(tail, 1) {
		return nil, false
	}
	return p.ring[p.index(tail)], true
}

// CommitWrite publishes n slots claimed via ClaimPointer.
func (p *Pool[T, V, C]) CommitWrite(n reg) {
	tail := C(&p.tail).LoadOwner()
	p.advanceTail(tail, n)
}

// TryFront returns the pointer to the oldest published slot without
// removing it. It reports false if the pool is empty.
func (p *Pool[T, V, C]) TryFront() (*T, bool) {
	head := C(&p.head).LoadOwner()
	if !p.canRead(head, 1) {
		return nil, false
	}
	return p.ring[p.index(head)], true
}

// TryPop removes the oldest slot and returns its (stable) address. The
// slot's contents are left as-is; the next TryClaim to reuse this ring
// position overwrites them.
func (p *Pool[T, V, C]) TryPop() (*T, bool) {
	head := C(&p.head).LoadOwner()
	if !p.canRead(head, 1) {
		return nil, false
	}
	ptr := p.ring[p.index(head)]
	p.advanceHead(head, 1)
	return ptr, true
}

// Len reports the number of occupied slots.
func (p *Pool[T, V, C]) Len() int { return int(p.Size()) }

// Cap reports the pool's current capacity.
func (p *Pool[T, V, C]) Cap() int { return int(p.capacity) }

func (p *Pool[T, V, C]) ownerMask() reg { return p.mask }

func (p *Pool[T, V, C]) commitConsume(from, to reg) bool {
	cur := C(&p.head).LoadOwner()
	if cur != from {
		return false
	}
	want := to - from
	if !p.canRead(from, want) {
		return false
	}
	p.advanceHead(from, want)
	return true
}

// MakeSnapshotPtr returns the ring pointers for the current occupied range
// without advancing head. Unlike Queue's Snapshot[T] (which is built for
// value types), Pool's snapshot hands out the live pointers directly since
// address stability is the whole point of this container.
func (p *Pool[T, V, C]) MakeSnapshotPtr() []*T {
	head := C(&p.head).LoadOwner()
	tail := C(&p.tail).LoadPeer()
	n := tail - head
	if n == 0 {
		return nil
	}
	out := make([]*T, n)
	for i := reg(0); i < n; i++ {
		out[i] = p.ring[p.index(head+i)]
	}
	return out
}

// Clear drops every unread slot by resetting both counters and both shadows
// to zero; slot contents and storage addresses are left as they are.
// Non-concurrent.
func (p *Pool[T, V, C]) Clear() {
	p.clear()
}

// Resize grows a dynamic pool's capacity without moving any live slot's
// address: live ring positions keep their pointers, the old ring's
// existing free-slot storages are reused for as much of the new free region
// as there's room for, and a fresh storage chunk is appended only for
// capacity genuinely beyond the old one — growing never discards an
// already-allocated free storage just to allocate a new one in its place.
// A target equal to the current capacity is a no-op that reports true.
// It reports false if the pool was not constructed with NewDynamicPool or if
// newCapacity is smaller than the current capacity (Resize never shrinks);
// on false the pool is left exactly as it was. Storage chunks come from
// make, not from the pool's Allocator.
func (p *Pool[T, V, C]) Resize(newCapacity int) bool {
	if !p.dyn {
		return false
	}
	g, ok := newGeometry(newCapacity)
	if !ok {
		return false
	}
	if g.capacity < p.capacity {
		return false
	}
	used := p.Size()
	if g.capacity < used {
		return false
	}
	if g.capacity == p.capacity {
		return true
	}
	head := C(&p.head).LoadOwner()
	oldCapacity := p.capacity
	newRing := make([]*T, g.capacity)
	// Live storages keep their addresses, placed in logical order at the
	// front of the new ring.
	for i := reg(0); i < used; i++ {
		newRing[i] = p.ring[p.index(head+i)]
	}
	// The old ring's free (non-live) slots already have allocated storage;
	// reuse as many of their pointers as the new capacity has room for
	// before allocating anything fresh.
	freeNeeded := g.capacity - used
	oldFree := oldCapacity - used
	reused := freeNeeded
	if reused > oldFree {
		reused = oldFree
	}
	for i := reg(0); i < reused; i++ {
		newRing[used+i] = p.ring[p.index(head+used+i)]
	}
	// Only the genuinely new range beyond the old capacity needs a fresh
	// storage chunk.
	if grow := freeNeeded - reused; grow > 0 {
		chunk := make([]T, grow)
		p.storages = append(p.storages, chunk)
		for i := reg(0); i < grow; i++ {
			newRing[used+reused+i] = &chunk[i]
		}
	}
	p.ring = newRing
	p.initRing(g)
	C(&p.tail).StoreOwner(used)
	p.syncCache()
	return true
}

// Reserve grows the pool so it can hold at least minCapacity elements
// without a further Resize, a no-op if it already can.
func (p *Pool[T, V, C]) Reserve(minCapacity int) bool {
	if reg(minCapacity) <= p.capacity {
		return true
	}
	return p.Resize(minCapacity)
}

// Copy returns a deep copy of p: fresh storage chunks, live elements
// copy-constructed into new addresses. Unlike Resize, Copy deliberately does
// not preserve pointer identity between p and the result — a deep copy is
// by definition a new set of addresses — but within the result, the
// pointer-stability invariant holds from that point on, realizing the
// original's typed_pool.hpp Copy().
func (p *Pool[T, V, C]) Copy() *Pool[T, V, C] {
	head := C(&p.head).LoadOwner()
	used := p.Size()
	out := &Pool[T, V, C]{alloc: p.alloc, dyn: p.dyn}
	out.initRing(p.geometry)
	chunk := make([]T, p.capacity)
	out.storages = [][]T{chunk}
	out.ring = make([]*T, p.capacity)
	for i := range chunk {
		out.ring[i] = &chunk[i]
	}
	for i := reg(0); i < used; i++ {
		*out.ring[i] = *p.ring[p.index(head+i)]
	}
	C(&out.tail).StoreOwner(used)
	out.syncCache()
	return out
}

// TakeFrom moves src's storages and ring into p, invalidating src (src
// becomes an empty, zero-capacity pool). Addresses handed out by src before
// the move remain valid and still refer to the same storage, since the
// backing chunks themselves are transferred, not copied. Non-concurrent on
// both p and src.
func (p *Pool[T, V, C]) TakeFrom(src *Pool[T, V, C]) {
	p.storages = src.storages
	p.ring = src.ring
	p.alloc = src.alloc
	p.dyn = src.dyn
	p.ringCore = src.ringCore

	src.storages = nil
	src.ring = nil
	var zeroGeom geometry
	src.geometry = zeroGeom
	C(&src.tail).StoreOwner(0)
	C(&src.head).StoreOwner(0)
	src.closed = true
}

// Swap exchanges p and other's storages, ring, geometry and counters in
// place; each Pool keeps its own allocator and dynamic flag. Non-concurrent
// on both.
func (p *Pool[T, V, C]) Swap(other *Pool[T, V, C]) {
	p.storages, other.storages = other.storages, p.storages
	p.ring, other.ring = other.ring, p.ring
	p.swapBase(&other.ringCore)
}

// Destroy releases a dynamic pool's backing storage and marks it unusable.
func (p *Pool[T, V, C]) Destroy() {
	if p.closed {
		return
	}
	p.closed = true
	p.storages = nil
	p.ring = nil
	p.clear()
}
