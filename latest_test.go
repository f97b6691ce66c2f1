// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc_test

import (
	"testing"

	"code.hybscloud.com/spsc"
)

type tagged struct {
	seq int
}

func TestLatestStickySnapshotAcrossInterleavedPublish(t *testing.T) {
	l := spsc.NewDynamicLatest[tagged, spsc.AtomicCounter, *spsc.AtomicCounter](8, nil)

	l.Publish(tagged{seq: 1})
	v, ok := l.TryFront()
	if !ok || v.seq != 1 {
		t.Fatalf("TryFront() = (%+v, %v), want (seq=1, true)", v, ok)
	}

	l.Publish(tagged{seq: 2})

	if !l.TryPop() {
		t.Fatal("TryPop() after first TryFront failed")
	}

	v2, ok := l.TryFront()
	if !ok {
		t.Fatal("TryFront() after pop found nothing, want seq=2 still pending")
	}
	if v2.seq != 2 {
		t.Fatalf("TryFront() = seq=%d, want seq=2 (publish during the read must not be dropped)", v2.seq)
	}

	if !l.TryPop() {
		t.Fatal("TryPop() of seq=2 failed")
	}
	if l.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 (container should be empty)", l.Len())
	}
}

func TestLatestPublishOverwritesOnFull(t *testing.T) {
	l := spsc.NewLatest[int, spsc.AtomicCounter, *spsc.AtomicCounter](4)
	for i := 0; i < 4; i++ {
		l.Publish(i)
	}
	// A producer that never stops publishing without a consumer reading
	// keeps advancing past depth; Publish must still succeed rather than
	// ever refuse.
	l.Publish(99)
	v, ok := l.TryFront()
	if !ok || v != 99 {
		t.Fatalf("TryFront() = (%d, %v), want (99, true)", v, ok)
	}
	// Cumulative publishes (5) now exceed depth (4); TryPop must still
	// succeed, advancing all the way to the snapshot instead of refusing.
	if !l.TryPop() {
		t.Fatal("TryPop() after publishing past depth failed, want true")
	}
	if l.Len() != 0 {
		t.Fatalf("Len() after TryPop() = %d, want 0", l.Len())
	}
	if _, ok := l.TryFront(); ok {
		t.Fatal("TryFront() after draining an overflowed Latest found a value, want none")
	}
}

func TestLatestCoalescingPublishRefusesBelowSlackThreshold(t *testing.T) {
	l := spsc.NewLatest[int, spsc.AtomicCounter, *spsc.AtomicCounter](16)
	// Fill to free == 2 (capacity 16, used 14): coalescing publish must refuse.
	for i := 0; i < 14; i++ {
		if !l.CoalescingPublish(i) {
			t.Fatalf("CoalescingPublish(%d) refused while free >= 3, want success", i)
		}
	}
	if l.CoalescingPublish(1000) {
		t.Fatal("CoalescingPublish succeeded at free < 3, want refusal")
	}
	if l.CoalescingPublish(1001) {
		t.Fatal("CoalescingPublish succeeded at free < 3 on second attempt, want refusal")
	}
}

func TestLatestCoalescingPublishBelowDepthFourActsPlain(t *testing.T) {
	l := spsc.NewLatest[int, spsc.AtomicCounter, *spsc.AtomicCounter](2)
	if !l.CoalescingPublish(1) {
		t.Fatal("CoalescingPublish(1) on empty depth-2 ring failed")
	}
	if !l.CoalescingPublish(2) {
		t.Fatal("CoalescingPublish(2) on depth-2 ring with one slot free failed")
	}
	if l.CoalescingPublish(3) {
		t.Fatal("CoalescingPublish(3) succeeded on a full depth-2 ring, want refusal")
	}
}

func TestLatestConsumeAllDrainsAndClearsSnapshot(t *testing.T) {
	l := spsc.NewLatest[int, spsc.AtomicCounter, *spsc.AtomicCounter](8)
	for i := 0; i < 5; i++ {
		l.Publish(i)
	}
	if _, ok := l.TryFront(); !ok {
		t.Fatal("TryFront() before ConsumeAll failed")
	}
	l.ConsumeAll()
	if l.Len() != 0 {
		t.Fatalf("Len() after ConsumeAll = %d, want 0", l.Len())
	}
	if l.TryPop() {
		t.Fatal("TryPop() after ConsumeAll succeeded, want false (sticky snapshot must be cleared)")
	}
}

func TestLatestRawRefusesOversizedPayload(t *testing.T) {
	l := spsc.NewLatestRaw[spsc.AtomicCounter, *spsc.AtomicCounter](4, 8)
	if l.TryPush(make([]byte, 9)) {
		t.Fatal("TryPush() with payload larger than bytesPerSlot succeeded, want false")
	}
	if !l.TryPush([]byte("hello")) {
		t.Fatal("TryPush() with a valid payload failed")
	}
	got, ok := l.TryFront()
	if !ok {
		t.Fatal("TryFront() after TryPush failed")
	}
	if string(got[:5]) != "hello" {
		t.Fatalf("TryFront() = %q, want prefix \"hello\"", got)
	}
}

func TestLatestRawPopMirrorsStickySnapshot(t *testing.T) {
	l := spsc.NewLatestRaw[spsc.AtomicCounter, *spsc.AtomicCounter](8, 4)
	l.TryPush([]byte("aaaa"))
	if _, ok := l.TryFront(); !ok {
		t.Fatal("TryFront() failed")
	}
	l.TryPush([]byte("bbbb"))
	if !l.TryPop() {
		t.Fatal("TryPop() failed")
	}
	got, ok := l.TryFront()
	if !ok || string(got) != "bbbb" {
		t.Fatalf("TryFront() = (%q, %v), want (\"bbbb\", true)", got, ok)
	}
}

func TestLatestResizeClearsStickySnapshot(t *testing.T) {
	l := spsc.NewDynamicLatest[int, spsc.AtomicCounter, *spsc.AtomicCounter](4, nil)
	l.Publish(1)
	if _, ok := l.TryFront(); !ok {
		t.Fatal("TryFront() failed")
	}
	if !l.Resize(16) {
		t.Fatal("Resize(16) failed")
	}
	if l.Depth() != 16 {
		t.Fatalf("Depth() after Resize = %d, want 16", l.Depth())
	}
	if l.TryPop() {
		t.Fatal("TryPop() after Resize succeeded, want false (snapshot cleared, buffer reset)")
	}
}
