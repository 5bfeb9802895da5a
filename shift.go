// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

// Lsh and Rsh are whole-limb shifts per spec.md §4.7: Lsh multiplies by
// base^k by prepending k zero limbs, Rsh divides the magnitude by base^k
// by dropping the k least significant limbs (the sign is kept, so a
// negative value is truncated toward zero, not floored). Neither supports a
// sub-limb (bit-granularity) shift amount; the radix is 2^31, not 2, so
// spec.md scopes shifts to whole limbs only.

// Lsh sets z to x * base^k and returns z. k must be non-negative.
func (z *BigInt) Lsh(x *BigInt, k int) *BigInt {
	if k < 0 {
		panic("suuri: Lsh: negative shift count")
	}
	if x.IsZero() || k == 0 {
		return z.Set(x)
	}
	shifted := make([]limb, k, k+len(x.limbs))
	shifted = append(shifted, x.limbs...)
	z.limbs = shifted
	z.negative = x.negative
	return z
}

// Rsh sets z to x / base^k truncated toward zero and returns z. k must be
// non-negative. Shifting a magnitude entirely away yields zero.
func (z *BigInt) Rsh(x *BigInt, k int) *BigInt {
	if k < 0 {
		panic("suuri: Rsh: negative shift count")
	}
	if k == 0 {
		return z.Set(x)
	}
	if k >= len(x.limbs) {
		z.limbs = append(z.limbs[:0], 0)
		z.negative = false
		return z
	}
	z.limbs = append(z.limbs[:0], x.limbs[k:]...)
	z.negative = x.negative
	return z.normalize()
}
