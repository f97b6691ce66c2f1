// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// geometry holds the capacity/mask pair shared by every container's ring.
// Capacity is always a power of two so index wrapping reduces to a mask
// instead of a modulo, matching the teacher's roundToPow2 + mask pattern
// (see the original's CapacityCtrl<C> / CapacityCtrl<0,Policy>).
type geometry struct {
	capacity reg
	mask     reg
}

// newGeometry validates and rounds requestedCapacity up to the nearest
// power of two, clamped to maxUnambiguous. A requestedCapacity of 0 is
// invalid: unlike the original's CapacityCtrl::init, which always returns
// true after clamping, this package reports the zero-capacity case to the
// caller via ok=false so construction can fail loudly instead of silently
// picking capacity 1.
func newGeometry(requestedCapacity int) (geometry, bool) {
	if requestedCapacity <= 0 {
		return geometry{}, false
	}
	c := reg(requestedCapacity)
	if c > maxUnambiguous {
		c = maxUnambiguous
	}
	c = ceilPow2(c)
	if c > maxUnambiguous {
		c = floorPow2(maxUnambiguous)
	}
	return geometry{capacity: c, mask: c - 1}, true
}

// index wraps pos into [0, capacity).
func (g geometry) index(pos reg) reg {
	return pos & g.mask
}

// contiguous returns the number of slots available from pos to the end of
// the backing array before wrapping, capped at want.
func (g geometry) contiguous(pos, want reg) reg {
	toEnd := g.capacity - g.index(pos)
	if want < toEnd {
		return want
	}
	return toEnd
}
