// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

// ZeroToZeroIsOne controls Exp's treatment of 0**0, per spec.md §4.9: when
// true, 0**0 yields 1 (the conventional combinatorial convention); when
// false (the default), Exp returns ErrPowUndefined instead. Mirrors
// original_source's compile-time toggle of the same name, kept as a
// package variable rather than a build tag since nothing else in the
// pack gates behavior behind build constraints for a single bool.
var ZeroToZeroIsOne = false

// Sgn returns -1, 0, or +1 according to the sign of z.
func (z *BigInt) Sgn() int {
	if z.IsZero() {
		return 0
	}
	if z.negative {
		return -1
	}
	return 1
}

// Abs sets z to |x| and returns z.
func (z *BigInt) Abs(x *BigInt) *BigInt {
	z.Set(x)
	z.negative = false
	return z
}

// Exp sets z to x**n (n >= 0) using binary exponentiation (square-and-
// multiply), and returns (z, nil). If x and n are both zero, Exp returns
// ErrPowUndefined (leaving z unmodified) unless ZeroToZeroIsOne is true,
// in which case z is set to 1. Exp panics if n is negative, since a
// negative exponent has no integer result (a programmer error, not a
// recoverable condition, per spec.md §7).
func (z *BigInt) Exp(x *BigInt, n int64) (*BigInt, error) {
	if n < 0 {
		panic("suuri: Exp: negative exponent")
	}
	if n == 0 {
		if x.IsZero() {
			if !ZeroToZeroIsOne {
				return z, ErrPowUndefined
			}
		}
		z.SetInt64(1)
		return z, nil
	}

	result := NewInt64(1)
	sq := x.Clone()
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, sq)
		}
		n >>= 1
		if n > 0 {
			sq.Mul(sq, sq)
		}
	}
	z.limbs = result.limbs
	z.negative = result.negative
	return z, nil
}

// signed is the set of primitive types SgnOf/AbsOf/PowOf accept, the
// primitive counterparts of the *BigInt methods Sgn/Abs/Exp, mirroring the templated dispatch of original_source's
// suuri::sgn/abs/pow across its signed integer and BigInt specializations.
type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// SgnOf returns -1, 0, or +1 for the sign of any signed primitive value.
// It is the primitive counterpart of (*BigInt).Sgn; the two have
// different names, so a single call site does not accept both kinds of
// operand.
func SgnOf[T signed](v T) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// AbsOf returns the absolute value of any signed primitive value.
func AbsOf[T signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// PowOf returns v raised to the non-negative integer power n, computed
// by square-and-multiply over the primitive type T. It panics on
// negative n and on the same 0**0 ambiguity Exp guards, gated by
// ZeroToZeroIsOne (returning 1 if true, panicking if false, since a
// primitive-typed Pow has no error return to report ErrPowUndefined
// through).
func PowOf[T signed](v T, n int64) T {
	if n < 0 {
		panic("suuri: PowOf: negative exponent")
	}
	if n == 0 {
		if v == 0 && !ZeroToZeroIsOne {
			panic("suuri: PowOf: 0**0 is undefined")
		}
		return 1
	}
	var result T = 1
	sq := v
	for n > 0 {
		if n&1 == 1 {
			result *= sq
		}
		n >>= 1
		if n > 0 {
			sq *= sq
		}
	}
	return result
}
