// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Policy names a counter-backend axis. Go generics pick the concrete
// Counter implementation at compile time via a type parameter, so Policy
// itself carries no runtime behavior; it exists so a Builder can be
// constructed, inspected and logged the way the teacher's Options/Builder
// pair is, and so callers have a name to reach for instead of the bare
// PlainCounter/VolatileCounter/AtomicCounter/FastAtomicCounter types.
//
// This package always cache-line-pads its ring fields (see pad), so the
// four "CP/CV/CA/CAA" tags a cache-padding axis would otherwise add are
// aliases of their unpadded counterparts rather than distinct policies.
type Policy int

const (
	// PolicyPlain selects PlainCounter: no fences, single-threaded or
	// externally synchronized use only.
	PolicyPlain Policy = iota
	// PolicyVolatile selects VolatileCounter: compiler-reorder prevention
	// only, no cross-core visibility guarantee.
	PolicyVolatile
	// PolicyAtomic selects AtomicCounter: full cross-goroutine visibility via
	// acquire/release ordering. The default for concurrent use.
	PolicyAtomic
	// PolicyFastAtomic selects FastAtomicCounter: relaxed-load-then-release-
	// store, cheaper than PolicyAtomic's RMW but only safe when each counter
	// is ever advanced by one goroutine at a time (true for every container
	// in this package).
	PolicyFastAtomic

	// PolicyCachePaddedPlain is an alias of PolicyPlain.
	PolicyCachePaddedPlain = PolicyPlain
	// PolicyCachePaddedVolatile is an alias of PolicyVolatile.
	PolicyCachePaddedVolatile = PolicyVolatile
	// PolicyCachePaddedAtomic is an alias of PolicyAtomic.
	PolicyCachePaddedAtomic = PolicyAtomic
	// PolicyCachePaddedFastAtomic is an alias of PolicyFastAtomic.
	PolicyCachePaddedFastAtomic = PolicyFastAtomic
)

// String returns the policy's short name.
func (p Policy) String() string {
	switch p {
	case PolicyPlain:
		return "plain"
	case PolicyVolatile:
		return "volatile"
	case PolicyAtomic:
		return "atomic"
	case PolicyFastAtomic:
		return "fast-atomic"
	default:
		return "unknown"
	}
}

// DefaultPolicy is the policy Builder assumes when none is set explicitly.
var DefaultPolicy = PolicyAtomic

// Builder offers the fluent configuration surface the teacher's own
// Options/Builder pair (options.go) exposes, generalized from the SPSC/
// MPSC/SPMC/MPMC axis to this package's Queue/Pool/Latest axis. Unlike the
// teacher's Builder, which dispatches to the right implementation type
// internally, a Policy chosen here is documentation for the caller: the
// actual Counter backend is always picked via the constructor's own type
// parameter, since Go cannot select a type based on a runtime value.
type Builder struct {
	capacity int
	policy   Policy
	alloc    Allocator
}

// New creates a Builder for the given capacity (or depth, for Latest).
// Panics if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("spsc: capacity must be >= 1")
	}
	return &Builder{capacity: capacity, policy: DefaultPolicy}
}

// WithPolicy records which Counter backend the caller intends to
// instantiate containers against. Purely advisory; see Policy.
func (b *Builder) WithPolicy(p Policy) *Builder {
	b.policy = p
	return b
}

// WithAllocator attaches an Allocator for the dynamic constructors
// (BuildDynamicQueue/BuildDynamicPool/BuildDynamicLatest) to use.
func (b *Builder) WithAllocator(alloc Allocator) *Builder {
	b.alloc = alloc
	return b
}

// Policy returns the builder's recorded policy.
func (b *Builder) Policy() Policy { return b.policy }

// Capacity returns the builder's recorded capacity.
func (b *Builder) Capacity() int { return b.capacity }

// BuildQueue constructs a fixed-capacity Queue[T, V, C] from b's capacity.
func BuildQueue[T any, V any, C Counter[V]](b *Builder) *Queue[T, V, C] {
	return NewQueue[T, V, C](b.capacity)
}

// BuildDynamicQueue constructs a dynamic Queue[T, V, C] from b's capacity and
// allocator (DefaultAllocator if none was set).
func BuildDynamicQueue[T any, V any, C Counter[V]](b *Builder) *Queue[T, V, C] {
	return NewDynamicQueue[T, V, C](b.capacity, b.alloc)
}

// BuildPool constructs a fixed-capacity Pool[T, V, C] from b's capacity.
func BuildPool[T any, V any, C Counter[V]](b *Builder) *Pool[T, V, C] {
	return NewPool[T, V, C](b.capacity)
}

// BuildDynamicPool constructs a dynamic Pool[T, V, C] from b's capacity and
// allocator.
func BuildDynamicPool[T any, V any, C Counter[V]](b *Builder) *Pool[T, V, C] {
	return NewDynamicPool[T, V, C](b.capacity, b.alloc)
}

// BuildLatest constructs a fixed-depth Latest[T, V, C] from b's capacity.
func BuildLatest[T any, V any, C Counter[V]](b *Builder) *Latest[T, V, C] {
	return NewLatest[T, V, C](b.capacity)
}

// BuildDynamicLatest constructs a dynamic Latest[T, V, C] from b's capacity
// and allocator.
func BuildDynamicLatest[T any, V any, C Counter[V]](b *Builder) *Latest[T, V, C] {
	return NewDynamicLatest[T, V, C](b.capacity, b.alloc)
}
