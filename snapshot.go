// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// snapshotOwner is implemented by Queue and Pool; only Queue hands out a
// Snapshot (Pool's MakeSnapshotPtr returns plain pointers). It lets Snapshot/Iterator stay generic over T
// alone instead of also carrying the counter-backend type parameter.
type snapshotOwner[T any] interface {
	ownerMask() reg
	// commitConsume advances head from "from" to "to" if the container's
	// current head is still "from" and at least to-from elements are
	// available; otherwise it performs one re-validation pass (a single
	// fresh peer load of tail) before giving up and reporting false.
	commitConsume(from, to reg) bool
}

// Snapshot is an immutable view of a contiguous range [head, tail) of a
// Queue's buffer at the moment it was taken, realizing the
// original's make_snapshot()/consume(snapshot) pair. Taking a snapshot does
// not advance the container's head; Consume does, but only if nothing else
// has consumed in the meantime.
type Snapshot[T any] struct {
	buf   []T
	mask  reg
	head  reg
	tail  reg
	owner snapshotOwner[T]
}

// Len returns the number of elements visible in the snapshot.
func (s Snapshot[T]) Len() int { return int(s.tail - s.head) }

// At returns the i'th element of the snapshot (0 is the oldest).
func (s Snapshot[T]) At(i int) T {
	return s.buf[(s.head+reg(i))&s.mask]
}

// Iterator returns a forward iterator over the snapshot's elements.
func (s Snapshot[T]) Iterator() Iterator[T] {
	return Iterator[T]{snap: s, pos: s.head}
}

// Consume advances the owning container's head through the whole snapshot,
// logically removing every element the snapshot saw. It reports false
// (without effect) if the container has already been consumed past this
// snapshot's head by another call, matching the original's validated
// consume() which refuses a stale snapshot rather than double-advancing.
func (s Snapshot[T]) Consume() bool {
	if s.owner == nil || s.owner.ownerMask() != s.mask {
		return false
	}
	return s.owner.commitConsume(s.head, s.tail)
}

// Iterator walks a Snapshot's elements in order without copying the
// underlying buffer.
type Iterator[T any] struct {
	snap Snapshot[T]
	pos  reg
}

// Next reports whether a further element is available and, if so, advances
// past it.
func (it *Iterator[T]) Next() bool {
	if it.snap.tail-it.pos == 0 {
		return false
	}
	it.pos++
	return true
}

// Value returns the element the most recent successful Next() advanced to.
// Calling Value before any Next() call, or after Next() returns false, is a
// programmer error (same contract as the standard library's bufio.Scanner).
func (it *Iterator[T]) Value() T {
	return it.snap.buf[(it.pos-1)&it.snap.mask]
}
