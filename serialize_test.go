// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

import (
	"encoding/json"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Value *BigInt `json:"value"`
	}

	orig := wrapper{Value: NewInt64(0)}
	orig.Value.SetString("-123456789012345678901234567890", 10)

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var decoded wrapper
	decoded.Value = new(BigInt)
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}

	if decoded.Value.Cmp(orig.Value) != 0 {
		t.Errorf("round trip mismatch: got %s, want %s", decoded.Value, orig.Value)
	}
}

func TestUnmarshalJSONRejectsNonString(t *testing.T) {
	z := new(BigInt)
	if err := z.UnmarshalJSON([]byte("123")); err == nil {
		t.Fatal("expected error for bare JSON number")
	}
}

func TestTextMarshalRoundTrip(t *testing.T) {
	orig := NewInt64(-42)
	text, err := orig.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	got := new(BigInt)
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if got.Cmp(orig) != 0 {
		t.Errorf("text round trip mismatch: got %s, want %s", got, orig)
	}
}
