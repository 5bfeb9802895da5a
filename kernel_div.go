// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

// Division kernels: a fast path for a single-limb divisor (short
// division, rolling 64-bit remainder) and a general path for a
// multi-limb divisor (binary search over the quotient magnitude),
// matching spec.md §4.5's two-tier design and original_source's
// divide_get_quo_rem dispatch on divisor limb count.

// shortDivMagnitude divides magnitude a by the single limb d, returning
// the quotient magnitude and the remainder (always < d, so it fits in a
// limb). d must be nonzero.
func shortDivMagnitude(a []limb, d limb) ([]limb, limb) {
	q := make([]limb, len(a))
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		cur := rem*base + uint64(a[i])
		q[i] = limb(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return trimTrailingZeros(q), limb(rem)
}

// binarySearchDivMagnitude divides magnitude a by magnitude d (with at
// least two limbs, so shortDivMagnitude does not apply) by binary
// searching for the largest quotient magnitude q such that q*d <= a.
// Monotonicity of q*d in q makes this search valid; it trades the
// asymptotic efficiency of a long-division digit estimate for the
// simplicity spec.md §4.5 calls for.
func binarySearchDivMagnitude(a, d []limb) ([]limb, []limb) {
	if cmpMagnitude(a, d) < 0 {
		return []limb{0}, append([]limb(nil), a...)
	}

	lo := []limb{0}
	hi := append([]limb(nil), a...) // q can never exceed a itself
	q := []limb{0}

	for cmpMagnitude(lo, hi) <= 0 {
		mid := midMagnitude(lo, hi)
		prod := mulMagnitude(mid, d)
		prod = trimTrailingZeros(prod)
		cmp := cmpMagnitude(prod, a)
		if cmp > 0 {
			hi = trimTrailingZeros(subMagnitudeCopy(mid, []limb{1}))
		} else {
			q = mid
			if cmp == 0 {
				break
			}
			lo = trimTrailingZeros(addMagnitude(append([]limb(nil), mid...), []limb{1}))
		}
	}

	q = trimTrailingZeros(q)
	rem := subMagnitudeCopy(a, trimTrailingZeros(mulMagnitude(q, d)))
	return q, trimTrailingZeros(rem)
}

// midMagnitude returns floor((lo+hi)/2) for two magnitudes with lo <= hi,
// computed as lo + (hi-lo)/2 so the intermediate sum never needs an extra
// limb the way (lo+hi) would near the top of the search range.
func midMagnitude(lo, hi []limb) []limb {
	diff := subMagnitudeCopy(hi, lo)
	halfDiff, _ := shortDivMagnitude(diff, 2)
	sum := addMagnitude(append([]limb(nil), lo...), halfDiff)
	return trimTrailingZeros(sum)
}

// divMagnitude dispatches to the short-division fast path when the
// divisor fits in one limb, and to binary search otherwise. d must be
// nonzero.
func divMagnitude(a, d []limb) (q, rem []limb) {
	if len(d) == 1 {
		qq, r := shortDivMagnitude(a, d[0])
		return qq, []limb{r}
	}
	return binarySearchDivMagnitude(a, d)
}

// QuoRem sets z to the truncated quotient and m to the remainder of x / y
// and returns (z, m). The remainder takes the sign of the dividend x (the
// Go/math/big convention, and original_source's remainder_out.negative_
// = negative_). Returns ErrDivideByZero and leaves z, m unmodified if y
// is zero.
func (z *BigInt) QuoRem(x, y, m *BigInt) (*BigInt, *BigInt, error) {
	if y.IsZero() {
		return z, m, ErrDivideByZero
	}
	if x.IsZero() {
		z.SetInt64(0)
		m.SetInt64(0)
		return z, m, nil
	}

	q, r := divMagnitude(x.limbs, y.limbs)

	z.limbs = q
	z.negative = x.negative != y.negative
	z.normalize()

	m.limbs = r
	m.negative = x.negative
	m.normalize()

	return z, m, nil
}

// Quo sets z to the truncated quotient of x / y and returns (z, nil), or
// returns ErrDivideByZero (leaving z unmodified) if y is zero.
func (z *BigInt) Quo(x, y *BigInt) (*BigInt, error) {
	if y.IsZero() {
		return z, ErrDivideByZero
	}
	if x.IsZero() {
		z.SetInt64(0)
		return z, nil
	}
	q, _ := divMagnitude(x.limbs, y.limbs)
	z.limbs = q
	z.negative = x.negative != y.negative
	return z.normalize(), nil
}

// Rem sets z to the remainder of x / y (sign of the dividend x) and
// returns (z, nil), or returns ErrDivideByZero (leaving z unmodified) if
// y is zero.
func (z *BigInt) Rem(x, y *BigInt) (*BigInt, error) {
	if y.IsZero() {
		return z, ErrDivideByZero
	}
	if x.IsZero() {
		z.SetInt64(0)
		return z, nil
	}
	_, r := divMagnitude(x.limbs, y.limbs)
	z.limbs = r
	z.negative = x.negative
	return z.normalize(), nil
}
