// Copyright (c) 2025 BetaChess/Suuri contributors
// SPDX-License-Identifier: BSD-3-Clause

package suuri

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is returned by Quo, Rem, and QuoRem when the divisor is
// the zero value. The receiver and operands are left unmodified.
var ErrDivideByZero = errors.New("suuri: division by zero")

// ErrPowUndefined is returned by Exp for 0**0 when ZeroToZeroIsOne is false.
var ErrPowUndefined = errors.New("suuri: 0**0 is undefined")

// ParseError reports a syntactic or range violation in a BigInt text
// constructor. It is distinct from ErrDivideByZero so that callers can
// discriminate a malformed-input failure from an arithmetic one.
type ParseError struct {
	Input  string // the full string that was being parsed
	Radix  int    // the radix that was active when the error occurred
	Pos    int    // byte offset into Input where the error occurred, or -1
	Reason string // human-readable description of the violation
}

func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("suuri: parse %q at byte %d: %s", e.Input, e.Pos, e.Reason)
	}
	return fmt.Sprintf("suuri: parse %q: %s", e.Input, e.Reason)
}

func newParseError(input string, radix, pos int, reason string) *ParseError {
	return &ParseError{Input: input, Radix: radix, Pos: pos, Reason: reason}
}
