// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

import "testing"

func TestStringBaseTen(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{123456789, "123456789"},
		{-123456789, "-123456789"},
	}
	for _, tt := range tests {
		if got := NewInt64(tt.in).String(); got != tt.want {
			t.Errorf("NewInt64(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRadixRoundTrip(t *testing.T) {
	x, _ := ParseBigInt("-123456789012345678901234567890", 10)
	for radix := 2; radix <= 36; radix++ {
		s := x.Format(radix)
		back, err := ParseBigInt(s, radix)
		if err != nil {
			t.Fatalf("radix %d: Format produced unparseable text %q: %v", radix, s, err)
		}
		if back.Cmp(x) != 0 {
			t.Errorf("radix %d: round trip failed: %s -> %q -> %s", radix, x, s, back)
		}
	}
}

func TestFormatZero(t *testing.T) {
	for radix := 2; radix <= 36; radix++ {
		if got := NewInt64(0).Format(radix); got != "0" {
			t.Errorf("Format(0, radix=%d) = %q, want \"0\"", radix, got)
		}
	}
}

func TestFormatInvalidRadixPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range radix")
		}
	}()
	NewInt64(5).Format(37)
}
