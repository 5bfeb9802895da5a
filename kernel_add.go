// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

// Magnitude-only addition and subtraction primitives, structured after the
// teacher's mpnAddN/mpnSubN shape (mpn_fallback_generic_ops.go): each walks
// the limbs of rhs, carrying a borrow/carry in a uint64
// wide enough that a limb plus a limb plus a carry can never overflow it.

// addMagnitude adds rhs's magnitude into z's in place, ignoring both
// values' signs. z is grown if rhs has more limbs, and by one further limb
// if a carry propagates past the end.
func addMagnitude(z, rhs []limb) []limb {
	if len(rhs) > len(z) {
		grown := make([]limb, len(rhs))
		copy(grown, z)
		z = grown
	}

	var carry uint64
	for i := 0; i < len(rhs); i++ {
		sum := uint64(z[i]) + uint64(rhs[i]) + carry
		if sum >= base {
			sum -= base
			carry = 1
		} else {
			carry = 0
		}
		z[i] = limb(sum)
	}

	if carry != 0 {
		i := len(rhs)
		if i == len(z) {
			z = append(z, 0)
		}
		for carry != 0 {
			sum := uint64(z[i]) + carry
			if sum >= base {
				z[i] = limb(sum - base)
				carry = 1
			} else {
				z[i] = limb(sum)
				carry = 0
			}
			i++
			if carry != 0 && i == len(z) {
				z = append(z, 0)
			}
		}
	}

	return z
}

// subMagnitude subtracts rhs's magnitude from z's in place, ignoring sign.
// Precondition: cmpMagnitude(z, rhs) >= 0 (the spec's invariant for this
// direction); violating it is a programmer error and panics rather than
// producing a wrapped-around result.
func subMagnitude(z, rhs []limb) []limb {
	if cmpMagnitude(z, rhs) < 0 {
		panic("suuri: subMagnitude requires |z| >= |rhs|")
	}

	var borrow uint64
	for i := 0; i < len(rhs); i++ {
		diff := int64(z[i]) - int64(rhs[i]) - int64(borrow)
		if diff < 0 {
			diff += int64(base)
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = limb(diff)
	}
	for i := len(rhs); borrow != 0; i++ {
		diff := int64(z[i]) - int64(borrow)
		if diff < 0 {
			diff += int64(base)
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = limb(diff)
	}

	return z
}

// rsubMagnitude computes rhs's magnitude minus z's, writing the result
// back into z's storage (growing it if needed). Precondition:
// cmpMagnitude(rhs, z) >= 0 — i.e. this is "rhs minus z", used by the
// signed dispatch below when the receiver's magnitude is the smaller one.
func rsubMagnitude(z, rhs []limb) []limb {
	if cmpMagnitude(rhs, z) < 0 {
		panic("suuri: rsubMagnitude requires |rhs| >= |z|")
	}
	if len(rhs) > len(z) {
		grown := make([]limb, len(rhs))
		copy(grown, z)
		z = grown
	}

	var borrow uint64
	for i := 0; i < len(rhs); i++ {
		diff := int64(rhs[i]) - int64(z[i]) - int64(borrow)
		if diff < 0 {
			diff += int64(base)
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = limb(diff)
	}

	return z[:len(rhs)]
}

// Add sets z to x + y and returns z. x, y, and z may overlap arbitrarily
// (including all three being the same value).
func (z *BigInt) Add(x, y *BigInt) *BigInt {
	xl, yl := x.limbs, y.limbs
	xNeg, yNeg := x.negative, y.negative

	if y.IsZero() {
		z.limbs = append(z.limbs[:0], xl...)
		z.negative = xNeg
		return z.normalize()
	}
	if x.IsZero() {
		z.limbs = append(z.limbs[:0], yl...)
		z.negative = yNeg
		return z.normalize()
	}

	if xNeg == yNeg {
		z.limbs = addMagnitude(append([]limb(nil), xl...), yl)
		z.negative = xNeg
	} else if cmpMagnitude(xl, yl) >= 0 {
		z.limbs = subMagnitude(append([]limb(nil), xl...), yl)
		z.negative = xNeg
	} else {
		z.limbs = rsubMagnitude(append([]limb(nil), xl...), yl)
		z.negative = yNeg
	}

	return z.normalize()
}

// Sub sets z to x - y and returns z. x, y, and z may overlap arbitrarily.
func (z *BigInt) Sub(x, y *BigInt) *BigInt {
	negY := y.Clone()
	if !negY.IsZero() {
		negY.negative = !negY.negative
	}
	return z.Add(x, negY)
}

// Neg sets z to -x and returns z. Negating zero yields zero (I3: no
// negative zero).
func (z *BigInt) Neg(x *BigInt) *BigInt {
	z.Set(x)
	if !z.IsZero() {
		z.negative = !z.negative
	}
	return z
}
