// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spsc provides single-producer single-consumer ring-buffer
// containers: a bounded FIFO queue, a pointer-stable object pool, and a
// latest-value ring with overwrite-on-full semantics.
//
// All three share the same Lamport-style index algebra (ring.go) and are
// generic over a Counter backend (counter.go), so the caller picks the
// concurrency story — single-threaded, compiler-fence-only, or fully
// cross-goroutine atomic — as a type parameter instead of a runtime branch.
//
// # Quick start
//
//	q := spsc.NewQueue[Event, spsc.AtomicCounter, *spsc.AtomicCounter](1024)
//
//	go func() { // producer
//	    backoff := iox.Backoff{}
//	    for ev := range input {
//	        for !q.TryPush(ev) {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        ev, ok := q.TryPop()
//	        if !ok {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(ev)
//	    }
//	}()
//
// # Containers
//
// Queue[T, V, C] is a bounded FIFO: TryPush/TryPop, bulk ClaimWrite/ClaimRead
// regions for batch producers/consumers, and MakeSnapshot/Snapshot.Consume
// for validated bulk draining.
//
// Pool[T, V, C] hands out *T instead of T: a claimed ring slot's address never
// moves for the container's lifetime (only Resize ever allocates a new
// chunk, and only for newly added capacity), which matters when external
// code correlates objects by address across produce/consume cycles.
//
// Latest[T, V, C] never blocks the producer: Publish always succeeds, silently
// overwriting the oldest unread slot once the ring is full relative to the
// consumer. The consumer's TryFront sets a sticky snapshot that bounds the
// next TryPop, so publishes interleaved between a TryFront and its matching
// TryPop remain visible to the *next* TryFront instead of being consumed out
// from under the read in progress. LatestRaw is the byte-slice variant for
// when the payload type isn't known at compile time.
//
// # Counter backends
//
// Four Counter implementations trade cross-goroutine safety for cost:
//
//	PlainCounter       no fences; single goroutine or external sync only
//	VolatileCounter     compiler-reorder prevention only, no cross-core guarantee
//	AtomicCounter       full acquire/release ordering; the default for concurrent use
//	FastAtomicCounter   relaxed load + release store; cheaper than AtomicCounter,
//	                    safe only because each counter has exactly one writer
//
// Builder offers a fluent surface mirroring these choices (builder.go), but
// the Counter backend is always selected via the constructor's own type
// parameter — Go cannot dispatch a type from a runtime value.
//
// # Error handling
//
// Non-blocking refusal (full/empty) is reported as a plain bool from the
// Try* methods, following Go idiom rather than returning [ErrWouldBlock] on
// every hot-path call. Resize/Reserve likewise report refusal, including an
// [Allocator] that returns nil, as false; [ErrWouldBlock], [ErrInvalid] and
// [ErrAllocation] are exported sentinels that no function in this package
// returns. [ErrWouldBlock] is sourced from
// [code.hybscloud.com/iox] for ecosystem consistency with other
// code.hybscloud.com packages.
//
// # Shadow-index caching
//
// When the chosen Counter backend is atomic, each side caches a shadow copy
// of its peer's counter (see EnableShadowIndices) to avoid a cross-core load
// on every operation, refreshing only on a cache miss. This follows the same
// discipline the teacher's own SPSC[T] type uses in its Enqueue/Dequeue
// methods: a shadow is only ever written by its owning side, and any
// non-concurrent structural change (Resize, Swap) re-syncs both shadows
// before returning.
//
// # Concurrency model
//
// Exactly two roles: one producer goroutine, one consumer goroutine. Every
// operation is non-blocking and total; there is no suspension and no
// internal locking. Resize/Reserve/Destroy/Clear/Swap/TakeFrom/Copy are
// non-concurrent: the caller must ensure neither role has an operation in
// flight for the duration of the call, exactly as the teacher's own types
// document for their non-concurrent paths.
//
// # Race detection
//
// Go's race detector cannot observe happens-before relationships established
// purely through atomic acquire/release orderings on separate variables; it
// is built to track explicit synchronization primitives instead. Stress
// tests exercising this package's cross-goroutine paths are excluded under
// -race via [RaceEnabled], mirroring the teacher's own race.go/race_off.go
// pair — the implementation is correct, the detector's model is just not
// built for lock-free index algebra.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for the atomic counter
// backends and [code.hybscloud.com/iox] for semantic errors. The quick start
// above and the tests use iox.Backoff for retry loops, and the benchmark
// uses [code.hybscloud.com/spin] directly for CPU pause instructions.
package spsc
