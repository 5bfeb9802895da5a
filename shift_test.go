// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

import "testing"

func TestLshBasic(t *testing.T) {
	x := NewInt64(5)
	z := new(BigInt).Lsh(x, 2)
	baseSquared := NewUint64(uint64(baseLimb))
	baseSquared.Mul(baseSquared, NewUint64(uint64(baseLimb)))
	want := new(BigInt).Mul(x, baseSquared)
	if z.Cmp(want) != 0 {
		t.Errorf("Lsh(5, 2) = %s, want %s", z, want)
	}
}

func TestLshZeroShiftIsIdentity(t *testing.T) {
	x := NewInt64(-99)
	if z := new(BigInt).Lsh(x, 0); z.Cmp(x) != 0 {
		t.Errorf("Lsh(x, 0) = %s, want %s", z, x)
	}
}

func TestRshRoundTrip(t *testing.T) {
	x := NewInt64(-99)
	shifted := new(BigInt).Lsh(x, 3)
	back := new(BigInt).Rsh(shifted, 3)
	if back.Cmp(x) != 0 {
		t.Errorf("Rsh(Lsh(x, 3), 3) = %s, want %s", back, x)
	}
}

func TestRshToZero(t *testing.T) {
	x := NewInt64(5)
	z := new(BigInt).Rsh(x, 10)
	if !z.IsZero() {
		t.Errorf("Rsh past all limbs = %s, want 0", z)
	}
}
