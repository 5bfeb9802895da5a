// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

// BigInt is an arbitrary-precision signed integer. The zero value is not
// usable; construct one with NewInt64, NewUint64, NewLimbs, or ParseBigInt.
//
// A BigInt owns its limb storage exclusively: copying a BigInt by value
// (rather than through the Set* methods) aliases that storage, so callers
// that need an independent copy should use Clone. Operators that return a
// new value (Add, Sub, Mul, ...) never alias their input operands' storage
// in the result unless the destination is also one of the operands (the
// math/big convention: z.Add(z, y) is valid and reuses z's storage).
//
// BigInt is not safe for concurrent mutation; concurrent reads of two
// distinct values are fine.
type BigInt struct {
	limbs    []limb // little-endian magnitude, each < base; never empty
	negative bool   // sign flag; always false when the magnitude is zero
}

// NewInt64 returns a new BigInt with the value of n.
func NewInt64(n int64) *BigInt {
	z := new(BigInt)
	z.SetInt64(n)
	return z
}

// NewUint64 returns a new BigInt with the value of n.
func NewUint64(n uint64) *BigInt {
	z := new(BigInt)
	z.SetUint64(n)
	return z
}

// NewLimbs returns a new BigInt built directly from a little-endian limb
// vector and a sign flag, per spec.md §4.2. Every limb must be strictly
// less than the radix 2^31; NewLimbs panics otherwise, since a caller
// supplying out-of-range limbs is a programmer error, not a recoverable
// condition. The vector is copied; callers may reuse or mutate limbs
// after the call.
func NewLimbs(limbs []limb, negative bool) *BigInt {
	z := new(BigInt)
	z.SetLimbs(limbs, negative)
	return z
}

// SetInt64 sets z to the value of n and returns z.
func (z *BigInt) SetInt64(n int64) *BigInt {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	return z.setMagnitudeUint64(u, neg)
}

// SetUint64 sets z to the value of n and returns z.
func (z *BigInt) SetUint64(n uint64) *BigInt {
	return z.setMagnitudeUint64(n, false)
}

func (z *BigInt) setMagnitudeUint64(u uint64, negative bool) *BigInt {
	limbs := make([]limb, 0, 3)
	for {
		limbs = append(limbs, limb(u%base))
		u /= base
		if u == 0 {
			break
		}
	}
	z.limbs = limbs
	z.negative = negative
	return z.normalize()
}

// SetLimbs sets z from an explicit little-endian limb vector and sign,
// per spec.md §4.2. It panics if any limb is not strictly less than the
// radix. The vector is copied.
func (z *BigInt) SetLimbs(limbs []limb, negative bool) *BigInt {
	if len(limbs) == 0 {
		panic("suuri: SetLimbs requires a non-empty limb vector")
	}
	cp := make([]limb, len(limbs))
	for i, l := range limbs {
		if !isNormalizedLimb(l) {
			panic("suuri: SetLimbs: limb out of range [0, base)")
		}
		cp[i] = l
	}
	z.limbs = cp
	z.negative = negative
	return z.normalize()
}

// Clone returns an independent copy of z; the result shares no storage
// with z.
func (z *BigInt) Clone() *BigInt {
	cp := make([]limb, len(z.limbs))
	copy(cp, z.limbs)
	return &BigInt{limbs: cp, negative: z.negative}
}

// Set sets z to x and returns z. z and x may be the same value.
func (z *BigInt) Set(x *BigInt) *BigInt {
	if z == x {
		return z
	}
	z.limbs = append(z.limbs[:0], x.limbs...)
	z.negative = x.negative
	return z
}

// IsZero reports whether z represents the integer 0.
func (z *BigInt) IsZero() bool {
	return len(z.limbs) == 1 && z.limbs[0] == 0
}

// IsNegative reports whether z is strictly less than zero.
func (z *BigInt) IsNegative() bool {
	return z.negative
}

// Limbs returns the little-endian magnitude limb vector backing z. The
// returned slice aliases z's storage and must not be mutated by the
// caller; it is intended for inspection (tests, debugging) only.
func (z *BigInt) Limbs() []limb {
	return z.limbs
}

// NumLimbs returns the number of limbs in z's magnitude.
func (z *BigInt) NumLimbs() int {
	return len(z.limbs)
}

// GoString implements fmt.GoStringer, rendering z as its signed limb
// vector (most useful for debugging kernel internals), e.g. "-[3, 1]".
func (z *BigInt) GoString() string {
	buf := make([]byte, 0, 4+4*len(z.limbs))
	if z.negative {
		buf = append(buf, '-')
	}
	buf = append(buf, '[')
	for i, l := range z.limbs {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = appendUint(buf, uint64(l))
	}
	buf = append(buf, ']')
	return string(buf)
}

// appendUint appends the decimal representation of u to buf.
func appendUint(buf []byte, u uint64) []byte {
	if u == 0 {
		return append(buf, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for u > 0 {
		i--
		tmp[i] = byte('0' + u%10)
		u /= 10
	}
	return append(buf, tmp[i:]...)
}
