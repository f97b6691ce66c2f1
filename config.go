// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Package-level configuration knobs. These mirror the teacher's own
// Options/Builder fluent-configuration style but surface the compile-time
// toggles spec.md §6 calls for as ordinary package variables, since Go has
// no preprocessor. EnableShadowIndices is read when a container's ring is
// initialized, so changing it afterwards has no effect on that container;
// ShadowRefreshHeuristic and ShadowRefreshShift are read on every call that
// consults them, so changing them takes effect immediately.
var (
	// EnableShadowIndices turns the shadow-cache optimization on or off for
	// newly constructed containers. Shadows are only ever used for atomic
	// counter backends regardless of this flag (see Counter.IsAtomic).
	EnableShadowIndices = true

	// ShadowRefreshHeuristic, when true, makes WriteSize/ReadSize refresh
	// their shadow even on a successful cheap check once predicted slack
	// drops below Capacity >> ShadowRefreshShift, to avoid boundary
	// stuttering near full/empty.
	ShadowRefreshHeuristic = false

	// ShadowRefreshShift is the fraction-shift threshold used by
	// ShadowRefreshHeuristic: threshold = capacity >> ShadowRefreshShift.
	ShadowRefreshShift uint = 2

	// RequireAlwaysLockFree records whether the caller requires always
	// lock-free atomics. No code in this package reads it: AtomicCounter and
	// FastAtomicCounter perform no lock-freedom check and never panic on its
	// account, whatever its value.
	RequireAlwaysLockFree = false

	// CachelineBytes is the assumed cache line size used to reason about the
	// always-on padding shells (see pad). It does not change struct layout at
	// runtime (Go has no runtime-sized fields); it exists so callers and
	// tests can reason about the padding policy.
	CachelineBytes = 64
)
