// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// reg is the register-width unsigned counter type used for head/tail
// indices, capacity and mask throughout the package. Every comparison
// between two reg values must go through subtraction (wrap-safe modular
// arithmetic); a naive h >= t comparison is wrong across wrap.
type reg = uint64

// regBits is the bit width of reg.
const regBits = 64

// maxUnambiguous is the largest capacity that keeps head-tail differences
// unambiguous: capacity must be <= 2^(regBits-1) so that a valid `used`
// never collides with the wrapped representation of a negative difference.
const maxUnambiguous reg = reg(1) << (regBits - 1)

// pad is cache-line padding used to keep producer-owned and consumer-owned
// fields on separate cache lines and prevent false sharing. Every container
// in this package pads head/tail/shadow fields unconditionally, matching the
// teacher's own hot-path ring types.
type pad [64]byte

// isPow2 reports whether x is a non-zero power of two.
func isPow2(x reg) bool {
	return x != 0 && (x&(x-1)) == 0
}

// floorPow2 returns the largest power of two <= n, or 0 when n == 0.
func floorPow2(n reg) reg {
	if n == 0 {
		return 0
	}
	v := n
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v - (v >> 1)
}

// ceilPow2 returns the smallest power of two >= n, or 1 when n == 0.
func ceilPow2(n reg) reg {
	if n == 0 {
		return 1
	}
	if isPow2(n) {
		return n
	}
	return floorPow2(n) << 1
}

// unsafeTag is the mandatory marker argument for ClaimWrite/ClaimRead: the
// caller accepts responsibility for constructing (write side) or has only
// read access to (read side) every slot in the returned regions.
type unsafeTag struct{}

// Unsafe is passed to ClaimWrite/ClaimRead to acknowledge the manual
// lifetime contract of bulk region access.
var Unsafe = unsafeTag{}
