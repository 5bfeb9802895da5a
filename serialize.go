// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

import "fmt"

// MarshalJSON implements json.Marshaler, encoding z as a JSON string
// holding its base-10 text form (not a JSON number, since magnitudes
// routinely exceed the range float64/int64 can represent exactly).
func (z *BigInt) MarshalJSON() ([]byte, error) {
	s := z.String()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON implements json.Unmarshaler, expecting a JSON string
// holding a base-10 BigInt text form as produced by MarshalJSON.
func (z *BigInt) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("suuri: UnmarshalJSON: not a JSON string: %s", data)
	}
	s := string(data[1 : len(data)-1])
	v, err := ParseBigInt(s, 10)
	if err != nil {
		return fmt.Errorf("suuri: UnmarshalJSON: %w", err)
	}
	z.limbs = v.limbs
	z.negative = v.negative
	return nil
}

// MarshalText implements encoding.TextMarshaler, returning z's base-10
// text form.
func (z *BigInt) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing text as a
// base-10 BigInt.
func (z *BigInt) UnmarshalText(text []byte) error {
	v, err := ParseBigInt(string(text), 10)
	if err != nil {
		return fmt.Errorf("suuri: UnmarshalText: %w", err)
	}
	z.limbs = v.limbs
	z.negative = v.negative
	return nil
}
