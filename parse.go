// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

import "strings"

// ParseBigInt parses s under the text grammar of spec.md §4.2:
//
//	text   = [ prefix ] [ sign ] digits
//	prefix = "b" radix "_"
//	radix  = decimal integer in [2, 36]
//	sign   = "-" | "+"
//	digits = one or more of [0-9a-zA-Z], each < radix
//
// If s has no "b<radix>_" prefix, defaultRadix is used (and must itself
// be in [2, 36]). Digits are read left to right, accumulating
// value = value*radix + digitValue(c); a "-" sign, if present, is applied
// last to the accumulated magnitude. Returns a *ParseError wrapping the
// violation on any syntactic or range failure.
func ParseBigInt(s string, defaultRadix int) (*BigInt, error) {
	z := new(BigInt)
	if err := z.setString(s, defaultRadix); err != nil {
		return nil, err
	}
	return z, nil
}

// SetString parses s the same way as ParseBigInt, storing the result in
// z and returning z on success. On failure z is left unmodified and the
// error is a *ParseError.
func (z *BigInt) SetString(s string, defaultRadix int) (*BigInt, error) {
	tmp := new(BigInt)
	if err := tmp.setString(s, defaultRadix); err != nil {
		return nil, err
	}
	z.limbs = tmp.limbs
	z.negative = tmp.negative
	return z, nil
}

func (z *BigInt) setString(s string, defaultRadix int) error {
	orig := s
	radix := defaultRadix

	if idx := strings.IndexByte(s, '_'); idx > 1 && s[0] == 'b' {
		radixStr := s[1:idx]
		r, ok := parseDecimalRadix(radixStr)
		if !ok {
			return newParseError(orig, defaultRadix, 1, "malformed radix prefix")
		}
		radix = r
		s = s[idx+1:]
	}

	if radix < 2 || radix > 36 {
		return newParseError(orig, radix, -1, "radix out of range [2, 36]")
	}

	negative := false
	pos := len(orig) - len(s)
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
		pos++
	}

	if len(s) == 0 {
		return newParseError(orig, radix, pos, "empty digit sequence")
	}

	acc := NewInt64(0)
	radixBig := NewInt64(int64(radix))
	digit := NewInt64(0)
	for i := 0; i < len(s); i++ {
		v, ok := digitValue(s[i])
		if !ok || v >= radix {
			return newParseError(orig, radix, pos+i, "invalid digit for radix")
		}
		digit.SetInt64(int64(v))
		acc.Mul(acc, radixBig)
		acc.Add(acc, digit)
	}

	acc.negative = negative && !acc.IsZero()
	z.limbs = acc.limbs
	z.negative = acc.negative
	return nil
}

// parseDecimalRadix parses a plain decimal integer (no sign) in [2, 36],
// as required for the "b<radix>_" prefix.
func parseDecimalRadix(s string) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n > 36 {
			return 0, false
		}
	}
	return n, true
}

// digitValue maps a digit character to its numeric value: '0'-'9' to
// 0-9, 'a'-'z'/'A'-'Z' to 10-35. ok is false for any other byte.
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
