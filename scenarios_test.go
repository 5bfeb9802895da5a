// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

import (
	"math"
	"testing"
)

// Literal end-to-end scenarios, each pinned to a specific worked example.

func TestScenarioAdditionAcrossRadixBoundary(t *testing.T) {
	z := new(BigInt).Add(NewInt64(2147483647), NewInt64(2))
	if z.String() != "2147483649" {
		t.Errorf("2147483647 + 2 = %s, want 2147483649", z)
	}
}

func TestScenarioLargeIntegerAddition(t *testing.T) {
	a, err := ParseBigInt("123456789123456789123456789123456789", 10)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseBigInt("987654321987654321987654321987654321", 10)
	if err != nil {
		t.Fatal(err)
	}
	z := new(BigInt).Add(a, b)
	want := "1111111111111111111111111111111111110"
	if z.String() != want {
		t.Errorf("large addition = %s, want %s", z, want)
	}
}

func TestScenarioSubtractionCrossingSign(t *testing.T) {
	a, _ := ParseBigInt("1111111111", 10)
	b, _ := ParseBigInt("1111111111111111111", 10)
	z := new(BigInt).Sub(a, b)
	want := "-1111111110000000000"
	if z.String() != want {
		t.Errorf("subtraction crossing sign = %s, want %s", z, want)
	}
}

func TestScenarioMultiplicationExercisingKaratsuba(t *testing.T) {
	old := KaratsubaThreshold
	KaratsubaThreshold = 2
	defer func() { KaratsubaThreshold = old }()

	a, _ := ParseBigInt("576460752303423488", 10)
	z := new(BigInt).Mul(a, a)
	want := "332306998946228968225951765070086144"
	if z.String() != want {
		t.Errorf("Karatsuba multiplication = %s, want %s", z, want)
	}
}

func TestScenarioDivisionWithMultiLimbDivisor(t *testing.T) {
	a, _ := ParseBigInt("9999999999999999999999", 10)
	b, _ := ParseBigInt("9999999999", 10)

	q, r, err := new(BigInt).QuoRem(a, b, new(BigInt))
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != "1000000000100" {
		t.Errorf("quotient = %s, want 1000000000100", q)
	}
	if r.String() != "99" {
		t.Errorf("remainder = %s, want 99", r)
	}
}

func TestScenarioRadixRoundTrip(t *testing.T) {
	decimal := "123456789012345678909876543211234567890"
	hex := "5CE0E9A56015FEC622CE19ED22BEA6D2"

	fromHex, err := ParseBigInt("b16_"+hex, 10)
	if err != nil {
		t.Fatal(err)
	}
	if fromHex.String() != decimal {
		t.Errorf("parsed hex form = %s, want %s", fromHex, decimal)
	}
}

func TestScenarioFactorialScaling(t *testing.T) {
	if testing.Short() {
		t.Skip("factorial of 20000 is expensive; skipped under -short")
	}

	z := NewInt64(1)
	for i := int64(2); i <= 20000; i++ {
		z.Mul(z, NewInt64(i))
	}

	logGammaOf20001, _ := math.Lgamma(20001)
	wantDigits := int(logGammaOf20001/math.Ln10) + 1

	if got := len(z.String()); got != wantDigits {
		t.Errorf("20000! has %d digits, want %d", got, wantDigits)
	}
}

func TestScenarioZeroDivision(t *testing.T) {
	a := NewInt64(7)

	if _, err := new(BigInt).Quo(a, NewInt64(0)); err != ErrDivideByZero {
		t.Errorf("a/0 error = %v, want ErrDivideByZero", err)
	}
	if _, err := new(BigInt).Rem(a, NewInt64(0)); err != ErrDivideByZero {
		t.Errorf("a%%0 error = %v, want ErrDivideByZero", err)
	}
	if a.String() != "7" {
		t.Errorf("a mutated by division by zero: %s", a)
	}
}
