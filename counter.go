// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "code.hybscloud.com/atomix"

// Counter is the policy axis every container in this package is generic
// over. It generalizes the four counter backends into a single constraint so
// Queue[T, V, C], Pool[T, V, C] and Latest[T, V, C] can be instantiated
// against whichever one the caller picks at the call site, the same way the
// original template parameterized its base on a counter policy type.
//
// Counter is written as a "pointer method set" constraint: V is the plain
// storage struct (PlainCounter, AtomicCounter, ...), embedded by value so it
// is zero-value-ready and addressable as an ordinary struct field, while C is
// always *V and carries the actual Load/Store/Add method set, all of which
// need a pointer receiver to mutate the shared cell in place rather than a
// copy. Every call site spells this as C(&r.tail).Load() etc. This is the
// standard shape for a generic type needing pointer-receiver methods on an
// embeddable, addressable field — the same reason sync/atomic's own types
// are never used by value across a copy boundary.
type Counter[V any] interface {
	*V

	// Load returns the current value using the backend's default ordering.
	Load() reg
	// LoadOwner returns the value as seen by the thread that owns this
	// counter (the producer for a tail counter, the consumer for a head
	// counter). May use a relaxed load when the backend allows it.
	LoadOwner() reg
	// LoadPeer returns the value as seen by the opposite-side thread trying
	// to observe this counter's latest published value (an acquire load for
	// backends that support one).
	LoadPeer() reg
	// StoreOwner publishes a new value from the owning thread (a release
	// store for backends that support one).
	StoreOwner(v reg)
	// Add adds delta and returns the new value, using the owning thread's
	// read-modify-write sequencing. The containers in this package advance
	// their counters with StoreOwner rather than Add.
	Add(delta reg) reg
	// IsAtomic reports whether this backend publishes across goroutines
	// safely. Shadow indices (see EnableShadowIndices) are only meaningful
	// when the peer-observing side is backed by an atomic counter; a Plain
	// or Volatile counter is only valid for single-threaded or externally
	// synchronized use and shadow caching adds nothing for it.
	IsAtomic() bool
}

// PlainCounter is a non-atomic, non-volatile counter backend: plain reads
// and writes with no fences or cross-goroutine visibility guarantee. It
// exists for single-threaded use of Queue/Pool/Latest (e.g. as a scratch
// buffer fully owned by one goroutine) and for embedding in tests, matching
// the original's PlainCounter<T>. This is the one backend in this file with
// no ecosystem library grounding: a genuinely non-atomic counter cannot be
// built from an atomic-cell library, so it is a bare reg.
type PlainCounter struct {
	v reg
}

func (c *PlainCounter) Load() reg         { return c.v }
func (c *PlainCounter) LoadOwner() reg    { return c.v }
func (c *PlainCounter) LoadPeer() reg     { return c.v }
func (c *PlainCounter) StoreOwner(v reg)  { c.v = v }
func (c *PlainCounter) Add(delta reg) reg { c.v += delta; return c.v }
func (c *PlainCounter) IsAtomic() bool    { return false }

// VolatileCounter is a non-atomic counter whose loads/stores Go's compiler
// cannot reorder or coalesce away (every access goes through atomix's
// relaxed operations, which pin the memory access without imposing
// cross-core ordering). It is the Go analogue of the original's
// VolatileCounter<T>: cheaper than a full atomic, useful when only compiler
// reordering (not hardware reordering) needs preventing, e.g. a
// single-writer counter observed by the same goroutine via a signal handler
// or cooperative scheduler.
type VolatileCounter struct {
	v atomix.Uint64
}

func (c *VolatileCounter) Load() reg         { return c.v.LoadRelaxed() }
func (c *VolatileCounter) LoadOwner() reg    { return c.v.LoadRelaxed() }
func (c *VolatileCounter) LoadPeer() reg     { return c.v.LoadRelaxed() }
func (c *VolatileCounter) StoreOwner(v reg)  { c.v.StoreRelaxed(v) }
func (c *VolatileCounter) Add(delta reg) reg { return c.v.Add(delta) }
func (c *VolatileCounter) IsAtomic() bool    { return false }

// AtomicCounter is the full cross-goroutine-safe counter backend: owner
// loads/stores use relaxed ordering on the owner's private path and
// acquire/release ordering on the cross-goroutine publish path, mirroring
// the teacher's SPSC[T] use of atomix.Uint64 (LoadRelaxed/LoadAcquire on the
// read side, StoreRelease on the publish side). This is the default
// backend: Queue/Pool/Latest are instantiated against AtomicCounter unless
// the caller has a specific reason to pick another policy.
type AtomicCounter struct {
	v atomix.Uint64
}

func (c *AtomicCounter) Load() reg         { return c.v.Load() }
func (c *AtomicCounter) LoadOwner() reg    { return c.v.LoadRelaxed() }
func (c *AtomicCounter) LoadPeer() reg     { return c.v.LoadAcquire() }
func (c *AtomicCounter) StoreOwner(v reg)  { c.v.StoreRelease(v) }
func (c *AtomicCounter) Add(delta reg) reg { return c.v.AddAcqRel(delta) }
func (c *AtomicCounter) IsAtomic() bool    { return true }

// FastAtomicCounter trades the read-modify-write guarantee on Add for speed:
// Add is only ever called by the owning goroutine (never racing itself), so
// it is implemented as a relaxed load followed by a release store rather
// than a true RMW, exactly as the original's FastAtomicCounter<T,Orders>
// documents. Using Add concurrently from more than one goroutine is a data
// race; this backend is only safe for the single-producer/single-consumer
// shapes this package restricts itself to.
type FastAtomicCounter struct {
	v atomix.Uint64
}

func (c *FastAtomicCounter) Load() reg        { return c.v.Load() }
func (c *FastAtomicCounter) LoadOwner() reg   { return c.v.LoadRelaxed() }
func (c *FastAtomicCounter) LoadPeer() reg    { return c.v.LoadAcquire() }
func (c *FastAtomicCounter) StoreOwner(v reg) { c.v.StoreRelease(v) }
func (c *FastAtomicCounter) Add(delta reg) reg {
	nv := c.v.LoadRelaxed() + delta
	c.v.StoreRelease(nv)
	return nv
}
func (c *FastAtomicCounter) IsAtomic() bool { return true }
