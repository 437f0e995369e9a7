package testcase

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/zerfoo/softfloat"
)

// Failure is a test case whose computed outputs disagree with the file's
// expected outputs.
type Failure struct {
	File     string
	Line     int
	Field    string
	Expected string
	Actual   string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s:%d: %s: expected %s, actual %s",
		f.File, f.Line, f.Field, f.Expected, f.Actual)
}

// location carries file:line context into per-case errors.
type location struct {
	file string
	line int
}

func (l location) errf(format string, args ...interface{}) error {
	return parseErr("%s:%d: %s", l.file, l.line, fmt.Sprintf(format, args...))
}

// fieldReader hands out a line's space-separated fields in declared
// order, erroring on missing or surplus fields.
type fieldReader struct {
	loc    location
	fields []string
	next   int
}

func (r *fieldReader) take(name string) (string, error) {
	if r.next >= len(r.fields) {
		return "", r.loc.errf("missing argument: %s", name)
	}
	f := r.fields[r.next]
	r.next++
	return f, nil
}

func (r *fieldReader) finish() error {
	if r.next != len(r.fields) {
		return r.loc.errf("too many arguments")
	}
	return nil
}

func (r *fieldReader) f16(name string) (softfloat.F16, error) {
	text, err := r.take(name)
	if err != nil {
		return 0, err
	}
	v, err := ParseUint(text, 16)
	if err != nil {
		return 0, r.loc.errf("invalid value for %s: %v", name, err)
	}
	return softfloat.F16FromBits(uint16(v)), nil
}

func (r *fieldReader) i32(name string) (int32, error) {
	text, err := r.take(name)
	if err != nil {
		return 0, err
	}
	v, err := ParseInt(text, 32)
	if err != nil {
		return 0, r.loc.errf("invalid value for %s: %v", name, err)
	}
	return int32(v), nil
}

func (r *fieldReader) rounding() (softfloat.RoundingMode, error) {
	text, err := r.take("rounding_mode")
	if err != nil {
		return 0, err
	}
	m, err := ParseRoundingMode(text)
	if err != nil {
		return 0, r.loc.errf("invalid value for rounding_mode: %v", err)
	}
	return m, nil
}

func (r *fieldReader) tininess() (softfloat.TininessDetectionMode, error) {
	text, err := r.take("tininess_detection_mode")
	if err != nil {
		return 0, err
	}
	m, err := ParseTininessDetectionMode(text)
	if err != nil {
		return 0, r.loc.errf("invalid value for tininess_detection_mode: %v", err)
	}
	return m, nil
}

func (r *fieldReader) exceptionHandling() (softfloat.ExceptionHandlingMode, error) {
	text, err := r.take("exception_handling_mode")
	if err != nil {
		return 0, err
	}
	m, err := ParseExceptionHandlingMode(text)
	if err != nil {
		return 0, r.loc.errf("invalid value for exception_handling_mode: %v", err)
	}
	return m, nil
}

// expect reads the two output fields and compares them against the
// computed result and flags.
func (r *fieldReader) expect(loc location, result softfloat.F16, flags softfloat.StatusFlags) error {
	resultText, err := r.take("result")
	if err != nil {
		return err
	}
	wantBits, err := ParseUint(resultText, 16)
	if err != nil {
		return loc.errf("invalid value for result: %v", err)
	}
	flagsText, err := r.take("status_flags")
	if err != nil {
		return err
	}
	wantFlags, err := ParseStatusFlags(flagsText)
	if err != nil {
		return loc.errf("invalid value for status_flags: %v", err)
	}
	if err := r.finish(); err != nil {
		return err
	}
	if uint16(wantBits) != result.Bits() {
		return &Failure{
			File: loc.file, Line: loc.line, Field: "result",
			Expected: fmt.Sprintf("0x%04X", uint16(wantBits)),
			Actual:   fmt.Sprintf("0x%04X", result.Bits()),
		}
	}
	if wantFlags != flags {
		return &Failure{
			File: loc.file, Line: loc.line, Field: "status_flags",
			Expected: wantFlags.String(),
			Actual:   flags.String(),
		}
	}
	return nil
}

type caseFunc func(loc location, r *fieldReader) error

func binCase(op func(a, b softfloat.F16, st *softfloat.State) softfloat.F16) caseFunc {
	return func(loc location, r *fieldReader) error {
		lhs, err := r.f16("lhs")
		if err != nil {
			return err
		}
		rhs, err := r.f16("rhs")
		if err != nil {
			return err
		}
		rm, err := r.rounding()
		if err != nil {
			return err
		}
		tm, err := r.tininess()
		if err != nil {
			return err
		}
		st := &softfloat.State{Rounding: rm, Tininess: tm}
		return r.expect(loc, op(lhs, rhs, st), st.Flags)
	}
}

var caseRunners = map[string]caseFunc{
	"add": binCase(func(a, b softfloat.F16, st *softfloat.State) softfloat.F16 {
		return a.Add(b, nil, st)
	}),
	"sub": binCase(func(a, b softfloat.F16, st *softfloat.State) softfloat.F16 {
		return a.Sub(b, nil, st)
	}),
	"mul": binCase(func(a, b softfloat.F16, st *softfloat.State) softfloat.F16 {
		return a.Mul(b, nil, st)
	}),
	"div": binCase(func(a, b softfloat.F16, st *softfloat.State) softfloat.F16 {
		return a.Div(b, nil, st)
	}),
	"mul_add":                    mulAddCase,
	"sqrt":                       sqrtCase,
	"rsqrt":                      rsqrtCase,
	"from_real_algebraic_number": fromRealCase,
}

func mulAddCase(loc location, r *fieldReader) error {
	v1, err := r.f16("value1")
	if err != nil {
		return err
	}
	v2, err := r.f16("value2")
	if err != nil {
		return err
	}
	v3, err := r.f16("value3")
	if err != nil {
		return err
	}
	rm, err := r.rounding()
	if err != nil {
		return err
	}
	tm, err := r.tininess()
	if err != nil {
		return err
	}
	st := &softfloat.State{Rounding: rm, Tininess: tm}
	return r.expect(loc, v1.MulAdd(v2, v3, nil, st), st.Flags)
}

func sqrtCase(loc location, r *fieldReader) error {
	return unaryCase(loc, r, func(v softfloat.F16, st *softfloat.State) softfloat.F16 {
		return v.Sqrt(nil, st)
	})
}

func rsqrtCase(loc location, r *fieldReader) error {
	return unaryCase(loc, r, func(v softfloat.F16, st *softfloat.State) softfloat.F16 {
		return v.RSqrt(nil, st)
	})
}

func unaryCase(loc location, r *fieldReader, op func(softfloat.F16, *softfloat.State) softfloat.F16) error {
	v, err := r.f16("value")
	if err != nil {
		return err
	}
	rm, err := r.rounding()
	if err != nil {
		return err
	}
	tm, err := r.tininess()
	if err != nil {
		return err
	}
	st := &softfloat.State{Rounding: rm, Tininess: tm}
	return r.expect(loc, op(v, st), st.Flags)
}

func fromRealCase(loc location, r *fieldReader) error {
	mantissa, err := r.i32("mantissa")
	if err != nil {
		return err
	}
	exponent, err := r.i32("exponent")
	if err != nil {
		return err
	}
	rm, err := r.rounding()
	if err != nil {
		return err
	}
	em, err := r.exceptionHandling()
	if err != nil {
		return err
	}
	tm, err := r.tininess()
	if err != nil {
		return err
	}
	value := new(big.Rat).SetInt64(int64(mantissa))
	if exponent >= 0 {
		value.Mul(value, new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(exponent))))
	} else {
		value.Quo(value, new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(-exponent))))
	}
	st := &softfloat.State{Rounding: rm, Tininess: tm, ExceptionHandling: em}
	return r.expect(loc, softfloat.F16FromRat(value, nil, st), st.Flags)
}

// OperationForFile maps a test-case file name to its operation: the base
// name without extension, with per-rounding-mode suffixes of mul_add
// files folded together.
func OperationForFile(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if strings.HasPrefix(base, "mul_add") {
		return "mul_add"
	}
	return base
}

// Run executes every case in a test-case file read from r. The first
// failing case is returned as a *Failure; malformed lines are returned
// as parse errors. name is used for reporting only.
func Run(name string, r io.Reader) error {
	op, ok := caseRunners[OperationForFile(name)]
	if !ok {
		return parseErr("%s: unknown operation %q", name, OperationForFile(name))
	}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		reader := &fieldReader{
			loc:    location{file: name, line: line},
			fields: strings.Split(text, " "),
		}
		if err := op(reader.loc, reader); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// RunFile executes every case in the named test-case file.
func RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Run(path, f)
}
