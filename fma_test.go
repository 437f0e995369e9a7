package softfloat

import "testing"

func TestMulAddBasic(t *testing.T) {
	tests := []struct {
		a, b, c  F16
		expected F16
		flags    StatusFlags
		name     string
	}{
		{two16, three16, one16, 0x4700, 0, "two times three plus one"},
		{onePlus16, onePlus16, one16.Neg(), 0x1800, FlagInexact, "near-one cancellation"},
		{MaxValue16, MaxValue16, NegativeInfinity16, NegativeInfinity16, 0, "finite product plus negative infinity"},
		{one16, one16, one16.Neg(), PositiveZero16, 0, "exact cancellation"},
		{PositiveZero16, one16, NegativeZero16, PositiveZero16, 0, "zero product plus opposite zero"},
		{PositiveZero16, one16, three16, three16, 0, "zero product leaves addend"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			st := &State{Tininess: AfterRounding}
			result := test.a.MulAdd(test.b, test.c, nil, st)
			if result != test.expected {
				t.Errorf("MulAdd(0x%04x, 0x%04x, 0x%04x) = 0x%04x, expected 0x%04x",
					test.a.Bits(), test.b.Bits(), test.c.Bits(), result.Bits(), test.expected.Bits())
			}
			if st.Flags != test.flags {
				t.Errorf("flags = %v, expected %v", st.Flags, test.flags)
			}
		})
	}
}

// The fused product must see no intermediate rounding: (1+2^-10)^2 -
// (1+2^-9) is exactly 2^-20, which a separate mul-then-add loses
// entirely.
func TestMulAddSingleRounding(t *testing.T) {
	c := F16FromBits(0xBC02) // -(1 + 2^-9)

	st := &State{}
	fused := onePlus16.MulAdd(onePlus16, c, nil, st)
	if fused != 0x0010 {
		t.Fatalf("fused result = 0x%04x, expected 0x0010", fused.Bits())
	}
	if st.Flags != 0 {
		t.Fatalf("fused flags = %v, expected none", st.Flags)
	}

	st = &State{}
	separate := onePlus16.Mul(onePlus16, nil, st).Add(c, nil, st)
	if separate != PositiveZero16 {
		t.Fatalf("separate result = 0x%04x, expected 0x0000", separate.Bits())
	}
	if !st.Flags.Has(FlagInexact) {
		t.Fatal("separate mul lost bits without raising INEXACT")
	}
}

func TestMulAddInfTimesZero(t *testing.T) {
	st := &State{}
	result := PositiveInfinity16.MulAdd(PositiveZero16, one16, nil, st)
	if result != QuietNaN16 {
		t.Errorf("inf*0 + 1 = 0x%04x, expected canonical NaN", result.Bits())
	}
	if !st.Flags.Has(FlagInvalidOperation) {
		t.Error("INVALID_OPERATION not raised")
	}
}

// The Inf*0 + qNaN result is a platform decision.
func TestMulAddInfZeroQuietNaNPolicy(t *testing.T) {
	qnan := F16FromBits(0x7E11)
	tests := []struct {
		platform *Platform
		expected F16
		flags    StatusFlags
		name     string
	}{
		{&RISCV, QuietNaN16, FlagInvalidOperation, "riscv canonical and invalid"},
		{&X86SSE, 0x7E11, 0, "x86 follows NaN propagation silently"},
		{&POWER, 0x7E11, FlagInvalidOperation, "power propagates and raises invalid"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			st := &State{}
			result := PositiveInfinity16.MulAdd(PositiveZero16, qnan, test.platform, st)
			if result != test.expected {
				t.Errorf("got 0x%04x, expected 0x%04x", result.Bits(), test.expected.Bits())
			}
			if st.Flags != test.flags {
				t.Errorf("flags = %v, expected %v", st.Flags, test.flags)
			}
		})
	}
}

func TestMulAddInfiniteProductConflict(t *testing.T) {
	st := &State{}
	result := PositiveInfinity16.MulAdd(one16, NegativeInfinity16, nil, st)
	if !result.IsNaN() || !st.Flags.Has(FlagInvalidOperation) {
		t.Errorf("inf*1 + (-inf) = 0x%04x flags %v, expected invalid NaN", result.Bits(), st.Flags)
	}

	st = &State{}
	result = one16.MulAdd(PositiveInfinity16, PositiveInfinity16, nil, st)
	if result != PositiveInfinity16 || st.Flags != 0 {
		t.Errorf("1*inf + inf = 0x%04x flags %v, expected clean infinity", result.Bits(), st.Flags)
	}
}
