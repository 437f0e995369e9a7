// Package testcase parses and runs the text-based test-case files that
// drive the softfloat kernels. One case per line; lines starting with '#'
// and blank lines are ignored; fields are separated by single spaces,
// inputs first, expected outputs after.
package testcase

import (
	"fmt"
	"strings"

	"github.com/zerfoo/softfloat"
)

// ParseError is a malformed field or line in a test-case file. It is a
// harness error, never an IEEE condition.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

func parseErr(format string, args ...interface{}) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// ParseUint parses an unsigned integer with an optional 0x/0o/0b base
// prefix, rejecting values that do not fit in bits.
func ParseUint(text string, bits int) (uint64, error) {
	v, _, err := parseInteger(text, false)
	if err != nil {
		return 0, err
	}
	if bits < 64 && v>>uint(bits) != 0 {
		return 0, parseErr("number too big")
	}
	return v, nil
}

// ParseInt parses a signed integer with an optional 0x/0o/0b base prefix,
// rejecting values that do not fit in bits.
func ParseInt(text string, bits int) (int64, error) {
	v, neg, err := parseInteger(text, true)
	if err != nil {
		return 0, err
	}
	limit := uint64(1) << uint(bits-1)
	if neg {
		if v > limit {
			return 0, parseErr("number too big")
		}
		return -int64(v - 1) - 1, nil
	}
	if v >= limit {
		return 0, parseErr("number too big")
	}
	return int64(v), nil
}

func parseInteger(text string, signed bool) (uint64, bool, error) {
	s := text
	neg := false
	if signed && strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	radix := uint64(10)
	if strings.HasPrefix(s, "0") {
		if len(s) == 1 {
			return 0, neg, nil
		}
		switch s[1] {
		case 'x', 'X':
			radix = 16
			s = s[2:]
		case 'o', 'O':
			radix = 8
			s = s[2:]
		case 'b', 'B':
			radix = 2
			s = s[2:]
		default:
			return 0, false, parseErr("octal numbers must start with 0o")
		}
	}
	if s == "" {
		return 0, false, parseErr("number has no digits")
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok || uint64(d) >= radix {
			return 0, false, parseErr("invalid digit")
		}
		if v > (^uint64(0)-uint64(d))/radix {
			return 0, false, parseErr("number too big")
		}
		v = v*radix + uint64(d)
	}
	return v, neg, nil
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// ParseRoundingMode parses a bare rounding-mode identifier.
func ParseRoundingMode(text string) (softfloat.RoundingMode, error) {
	switch text {
	case "TiesToEven":
		return softfloat.TiesToEven, nil
	case "TowardZero":
		return softfloat.TowardZero, nil
	case "TowardNegative":
		return softfloat.TowardNegative, nil
	case "TowardPositive":
		return softfloat.TowardPositive, nil
	case "TiesToAway":
		return softfloat.TiesToAway, nil
	}
	return 0, parseErr("invalid RoundingMode")
}

// ParseTininessDetectionMode parses a bare tininess-mode identifier.
func ParseTininessDetectionMode(text string) (softfloat.TininessDetectionMode, error) {
	switch text {
	case "BeforeRounding":
		return softfloat.BeforeRounding, nil
	case "AfterRounding":
		return softfloat.AfterRounding, nil
	}
	return 0, parseErr("invalid TininessDetectionMode")
}

// ParseExceptionHandlingMode parses a bare exception-handling identifier.
func ParseExceptionHandlingMode(text string) (softfloat.ExceptionHandlingMode, error) {
	switch text {
	case "DefaultIgnoreExactUnderflow":
		return softfloat.DefaultIgnoreExactUnderflow, nil
	case "DefaultSignalExactUnderflow":
		return softfloat.DefaultSignalExactUnderflow, nil
	}
	return 0, parseErr("invalid ExceptionHandlingMode")
}

// ParseStatusFlags parses "(empty)" or a '|'-separated flag list.
func ParseStatusFlags(text string) (softfloat.StatusFlags, error) {
	if text == "(empty)" {
		return 0, nil
	}
	var flags softfloat.StatusFlags
	for _, word := range strings.Split(text, "|") {
		switch word {
		case "INVALID_OPERATION":
			flags |= softfloat.FlagInvalidOperation
		case "DIVISION_BY_ZERO":
			flags |= softfloat.FlagDivisionByZero
		case "OVERFLOW":
			flags |= softfloat.FlagOverflow
		case "UNDERFLOW":
			flags |= softfloat.FlagUnderflow
		case "INEXACT":
			flags |= softfloat.FlagInexact
		}
		switch word {
		case "INVALID_OPERATION", "DIVISION_BY_ZERO", "OVERFLOW", "UNDERFLOW", "INEXACT":
		default:
			return 0, parseErr("invalid status flags")
		}
	}
	return flags, nil
}
