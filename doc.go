// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

// Package suuri provides arbitrary-precision signed integer arithmetic.
//
// BigInt represents an integer of any magnitude, bounded only by available
// memory, stored as a sign flag plus a little-endian vector of unsigned
// limbs in a fixed radix of 2^31. The package implements the full set of
// arithmetic, comparison, shift, and text-conversion operations expected
// of a numeric primitive: addition, subtraction, schoolbook and Karatsuba
// multiplication, short and binary-search division, sign/absolute-value/
// exponentiation helpers, and base-10 (plus arbitrary-radix) text
// conversion.
//
// Modular arithmetic, GCD, bitwise logical operations, and FFT-based
// multiplication are out of scope.
package suuri
