// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

// KaratsubaThreshold is the limb count below which Mul falls back to
// schoolbook multiplication instead of recursing. It mirrors the
// teacher's own mpnMulKaratsuba cutoff (mpn_mul_karatsuba.go: "n >= 32
// limbs... Breakeven point is typically around 32 limbs"), which is also
// the production-scale value spec.md §9 recommends tuning toward (the
// original source's compile-time constant of 3 is tiny, sized only for
// its own unit tests).
var KaratsubaThreshold = 32

// mulMagnitude computes the schoolbook product of two magnitudes, each
// given as a little-endian limb vector. The result has at most
// len(a)+len(b) limbs (not yet normalized). Structured after the
// teacher's mpnMul1/mpnAddMul1 accumulation pattern: for each a[i], the
// partial product a[i]*b[j] plus the running accumulator at out[i+j] is
// computed in a uint64 (radix 2^31 keeps a limb*limb product under 2^62,
// leaving headroom for the accumulator and its own overflow across outer
// iterations), split into a low limb written to out[i+j] and a carry
// folded into out[i+j+1].
func mulMagnitude(a, b []limb) []limb {
	out := make([]limb, len(a)+len(b))
	for i := 0; i < len(a); i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		ai := uint64(a[i])
		for j := 0; j < len(b); j++ {
			p := uint64(out[i+j]) + ai*uint64(b[j]) + carry
			out[i+j] = limb(p % base)
			carry = p / base
		}
		k := i + len(b)
		for carry != 0 {
			p := uint64(out[k]) + carry
			out[k] = limb(p % base)
			carry = p / base
			k++
		}
	}
	return out
}

// karatsubaMagnitude computes the product of two magnitudes using
// Karatsuba's divide-and-conquer recursion, falling back to schoolbook
// multiplication below KaratsubaThreshold limbs. Mirrors
// original_source's big_int.hpp::karatsuba_multiplication, completed (the
// teacher's own mpnMulKaratsuba is an unfinished sketch — see DESIGN.md).
func karatsubaMagnitude(a, b []limb) []limb {
	if len(a) < KaratsubaThreshold || len(b) < KaratsubaThreshold {
		return mulMagnitude(a, b)
	}

	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	half := n / 2
	if half == 0 {
		// n == 1 here (both operands single-limb); splitting at 0 would hand
		// the recursive call back the same operands unchanged. A threshold
		// below 2 can reach this, so guard it independently of the caller.
		return mulMagnitude(a, b)
	}

	aLo, aHi := splitMagnitude(a, half)
	bLo, bHi := splitMagnitude(b, half)

	z0 := karatsubaMagnitude(aLo, bLo)
	z2 := karatsubaMagnitude(aHi, bHi)

	aSum := addMagnitude(append([]limb(nil), aLo...), aHi)
	bSum := addMagnitude(append([]limb(nil), bLo...), bHi)
	cross := karatsubaMagnitude(aSum, bSum)

	// z1 = cross - z2 - z0. cross >= z0+z2 always holds for nonnegative
	// magnitudes (z1 = aLo*bHi + aHi*bLo >= 0), so these magnitude
	// subtractions never underflow.
	z1 := subMagnitudeCopy(cross, z2)
	z1 = subMagnitudeCopy(z1, z0)

	result := make([]limb, 0, len(z2)+2*half)
	result = append(result, z0...)
	result = addAtOffset(result, z1, half)
	result = addAtOffset(result, z2, 2*half)

	return result
}

// splitMagnitude splits a limb vector into a low part (limbs [0, half))
// and a high part (limbs [half, len(a))); if a is shorter than half, its
// high part is empty and its low part is the whole vector, per spec.md §4.4.
func splitMagnitude(a []limb, half int) (lo, hi []limb) {
	if len(a) <= half {
		return trimTrailingZeros(a), nil
	}
	return trimTrailingZeros(a[:half]), trimTrailingZeros(a[half:])
}

// trimTrailingZeros returns a normalized view of a magnitude slice,
// stripping high zero limbs but always leaving at least one limb.
func trimTrailingZeros(a []limb) []limb {
	n := len(a)
	for n > 1 && a[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []limb{0}
	}
	return a[:n]
}

// subMagnitudeCopy returns a - b as a fresh magnitude slice without
// mutating either input. Precondition: cmpMagnitude(a, b) >= 0.
func subMagnitudeCopy(a, b []limb) []limb {
	cp := make([]limb, len(a))
	copy(cp, a)
	return subMagnitude(cp, b)
}

// addAtOffset adds addend into dst starting at limb index offset,
// growing dst as needed, and returns the (possibly reallocated) slice.
// Used to combine Karatsuba's three partial products at their respective
// limb-shifted positions without materializing each shift separately.
func addAtOffset(dst []limb, addend []limb, offset int) []limb {
	needed := offset + len(addend)
	if needed > len(dst) {
		grown := make([]limb, needed)
		copy(grown, dst)
		dst = grown
	}

	var carry uint64
	for i, l := range addend {
		sum := uint64(dst[offset+i]) + uint64(l) + carry
		if sum >= base {
			sum -= base
			carry = 1
		} else {
			carry = 0
		}
		dst[offset+i] = limb(sum)
	}
	for i := offset + len(addend); carry != 0; i++ {
		if i == len(dst) {
			dst = append(dst, 0)
		}
		sum := uint64(dst[i]) + carry
		if sum >= base {
			dst[i] = limb(sum - base)
			carry = 1
		} else {
			dst[i] = limb(sum)
			carry = 0
		}
	}

	return dst
}

// MulSchoolbook sets z to x * y computed with the O(n*m) schoolbook
// algorithm, bypassing the Karatsuba threshold. Exposed separately from
// Mul for benchmarking the two algorithms against each other (spec.md §6,
// §8 P8).
func (z *BigInt) MulSchoolbook(x, y *BigInt) *BigInt {
	product := mulMagnitude(x.limbs, y.limbs)
	z.limbs = product
	z.negative = x.negative != y.negative
	return z.normalize()
}

// MulKaratsuba sets z to x * y computed with the Karatsuba recursion
// (falling back to schoolbook below KaratsubaThreshold limbs). Exposed
// separately from Mul for benchmarking (spec.md §6, §8 P8).
func (z *BigInt) MulKaratsuba(x, y *BigInt) *BigInt {
	product := karatsubaMagnitude(x.limbs, y.limbs)
	z.limbs = product
	z.negative = x.negative != y.negative
	return z.normalize()
}

// Mul sets z to x * y and returns z, choosing Karatsuba or schoolbook
// multiplication by operand size via KaratsubaThreshold.
func (z *BigInt) Mul(x, y *BigInt) *BigInt {
	if len(x.limbs) < KaratsubaThreshold || len(y.limbs) < KaratsubaThreshold {
		return z.MulSchoolbook(x, y)
	}
	return z.MulKaratsuba(x, y)
}
