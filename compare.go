// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

// Cmp compares z and x and returns:
//
//	-1 if z <  x
//	 0 if z == x
//	+1 if z >  x
//
// matching the math/big.Int.Cmp convention referenced by spec.md §6.
func (z *BigInt) Cmp(x *BigInt) int {
	if z.negative != x.negative {
		if z.IsZero() && x.IsZero() {
			return 0
		}
		if z.negative {
			return -1
		}
		return 1
	}
	mc := cmpMagnitude(z.limbs, x.limbs)
	if z.negative {
		return -mc
	}
	return mc
}

// Equal reports whether z == x.
func (z *BigInt) Equal(x *BigInt) bool {
	return z.Cmp(x) == 0
}

// Less reports whether z < x.
func (z *BigInt) Less(x *BigInt) bool {
	return z.Cmp(x) < 0
}

// LessOrEqual reports whether z <= x.
func (z *BigInt) LessOrEqual(x *BigInt) bool {
	return z.Cmp(x) <= 0
}

// Greater reports whether z > x.
func (z *BigInt) Greater(x *BigInt) bool {
	return z.Cmp(x) > 0
}

// GreaterOrEqual reports whether z >= x.
func (z *BigInt) GreaterOrEqual(x *BigInt) bool {
	return z.Cmp(x) >= 0
}
