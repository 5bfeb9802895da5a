// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

// limb is one element of a BigInt's magnitude, always strictly less than base.
type limb = uint32

// base is the radix of the limb representation: 2^31. Chosen so that the
// sum of two limbs plus a carry, and the product of two limbs plus an
// accumulator limb, both fit in a uint64 without overflow.
const base uint64 = 1 << 31

// baseLimb is base truncated to limb width, used where a limb-typed operand
// is required instead of the uint64 accumulator width.
const baseLimb limb = 1 << 31

// cmpMagnitude compares the magnitudes of two limb vectors, ignoring sign.
// Both vectors are assumed normalized (I2: no redundant leading zero limb
// unless the value is exactly the single limb zero). Longer means larger;
// on equal length, the first differing limb scanned from the most
// significant end decides it.
func cmpMagnitude(a, b []limb) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// normalize strips redundant leading-zero limbs (I1/I2) and clears a
// negative sign on a zero magnitude (I3), returning the value it was
// called on for chaining.
func (z *BigInt) normalize() *BigInt {
	n := len(z.limbs)
	for n > 1 && z.limbs[n-1] == 0 {
		n--
	}
	z.limbs = z.limbs[:n]
	if n == 1 && z.limbs[0] == 0 {
		z.negative = false
	}
	return z
}

// isNormalizedLimb reports whether l satisfies I4 (strictly less than base).
func isNormalizedLimb(l limb) bool {
	return uint64(l) < base
}
