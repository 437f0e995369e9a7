package softfloat

import "testing"

// Binary16 fixtures used throughout the arithmetic tests.
const (
	one16     F16 = 0x3C00
	two16     F16 = 0x4000
	three16   F16 = 0x4200
	half16    F16 = 0x3800
	onePlus16 F16 = 0x3C01 // 1 + 2^-10
)

func TestAddBasic(t *testing.T) {
	tests := []struct {
		a, b     F16
		mode     RoundingMode
		expected F16
		flags    StatusFlags
		name     string
	}{
		{one16, one16, TiesToEven, two16, 0, "one plus one"},
		{MaxValue16, MaxValue16, TiesToEven, PositiveInfinity16, FlagOverflow | FlagInexact, "overflow to infinity"},
		{MaxValue16, MaxValue16, TowardZero, MaxValue16, FlagOverflow | FlagInexact, "overflow clamps toward zero"},
		{one16, one16.Neg(), TiesToEven, PositiveZero16, 0, "exact cancellation"},
		{one16, one16.Neg(), TowardNegative, NegativeZero16, 0, "cancellation toward negative"},
		{PositiveZero16, NegativeZero16, TiesToEven, PositiveZero16, 0, "opposite zeros"},
		{NegativeZero16, NegativeZero16, TiesToEven, NegativeZero16, 0, "negative zeros"},
		{PositiveInfinity16, NegativeInfinity16, TiesToEven, QuietNaN16, FlagInvalidOperation, "infinity minus infinity"},
		{PositiveInfinity16, one16, TiesToEven, PositiveInfinity16, 0, "infinity absorbs"},
		{SignalingNaN16, one16, TiesToEven, QuietNaN16, FlagInvalidOperation, "signalling NaN"},
		{one16, 0x1000, TiesToEven, one16, FlagInexact, "halfway rounds to even down"},
		{onePlus16, 0x1000, TiesToEven, 0x3C02, FlagInexact, "halfway rounds to even up"},
		{SmallestSubnormal16, SmallestSubnormal16, TiesToEven, 0x0002, 0, "subnormal addition"},
		{0x03FF, SmallestSubnormal16, TiesToEven, SmallestNormal16, 0, "subnormal carries into normal"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			st := &State{Rounding: test.mode, Tininess: AfterRounding}
			result := test.a.Add(test.b, nil, st)
			if result != test.expected {
				t.Errorf("Add(0x%04x, 0x%04x) = 0x%04x, expected 0x%04x",
					test.a.Bits(), test.b.Bits(), result.Bits(), test.expected.Bits())
			}
			if st.Flags != test.flags {
				t.Errorf("flags = %v, expected %v", st.Flags, test.flags)
			}
		})
	}
}

func TestMulBasic(t *testing.T) {
	tests := []struct {
		a, b     F16
		expected F16
		flags    StatusFlags
		name     string
	}{
		{one16, SmallestSubnormal16, SmallestSubnormal16, 0, "one times smallest subnormal"},
		{two16, two16, 0x4400, 0, "two times two"},
		{MaxValue16, MaxValue16, PositiveInfinity16, FlagOverflow | FlagInexact, "overflow"},
		{SmallestSubnormal16, SmallestSubnormal16, PositiveZero16, FlagUnderflow | FlagInexact, "underflow to zero"},
		{NegativeZero16, PositiveInfinity16, QuietNaN16, FlagInvalidOperation, "zero times infinity"},
		{0x1400, 0x1400, 0x0010, 0, "exact subnormal product"},
		{two16.Neg(), two16, 0xC400, 0, "sign of product"},
		{two16.Neg(), NegativeZero16, PositiveZero16, 0, "signed zero product"},
		{SmallestNormal16, half16, 0x0200, 0, "exact tiny product has no underflow"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			st := &State{Tininess: AfterRounding}
			result := test.a.Mul(test.b, nil, st)
			if result != test.expected {
				t.Errorf("Mul(0x%04x, 0x%04x) = 0x%04x, expected 0x%04x",
					test.a.Bits(), test.b.Bits(), result.Bits(), test.expected.Bits())
			}
			if st.Flags != test.flags {
				t.Errorf("flags = %v, expected %v", st.Flags, test.flags)
			}
		})
	}
}

func TestDivBasic(t *testing.T) {
	tests := []struct {
		a, b     F16
		expected F16
		flags    StatusFlags
		name     string
	}{
		{one16, PositiveZero16, PositiveInfinity16, FlagDivisionByZero, "one over zero"},
		{one16.Neg(), PositiveZero16, NegativeInfinity16, FlagDivisionByZero, "minus one over zero"},
		{PositiveZero16, PositiveZero16, QuietNaN16, FlagInvalidOperation, "zero over zero"},
		{PositiveInfinity16, PositiveInfinity16, QuietNaN16, FlagInvalidOperation, "infinity over infinity"},
		{two16, two16, one16, 0, "two over two"},
		{one16, two16, half16, 0, "one over two"},
		{one16, three16, 0x3555, FlagInexact, "one third"},
		{SmallestSubnormal16, two16, PositiveZero16, FlagUnderflow | FlagInexact, "halved smallest subnormal"},
		{two16, PositiveInfinity16, PositiveZero16, 0, "finite over infinity"},
		{PositiveInfinity16, two16, PositiveInfinity16, 0, "infinity over finite"},
		{PositiveInfinity16, PositiveZero16, PositiveInfinity16, 0, "infinity over zero has no flag"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			st := &State{Tininess: AfterRounding}
			result := test.a.Div(test.b, nil, st)
			if result != test.expected {
				t.Errorf("Div(0x%04x, 0x%04x) = 0x%04x, expected 0x%04x",
					test.a.Bits(), test.b.Bits(), result.Bits(), test.expected.Bits())
			}
			if st.Flags != test.flags {
				t.Errorf("flags = %v, expected %v", st.Flags, test.flags)
			}
		})
	}
}

// Division by zero must pick up the xor of the operand signs.
func TestDivByZeroSign(t *testing.T) {
	tests := []struct {
		a, b     F16
		expected F16
	}{
		{one16, PositiveZero16, PositiveInfinity16},
		{one16, NegativeZero16, NegativeInfinity16},
		{one16.Neg(), PositiveZero16, NegativeInfinity16},
		{one16.Neg(), NegativeZero16, PositiveInfinity16},
	}
	for _, test := range tests {
		st := &State{}
		result := test.a.Div(test.b, nil, st)
		if result != test.expected {
			t.Errorf("Div(0x%04x, 0x%04x) = 0x%04x, expected 0x%04x",
				test.a.Bits(), test.b.Bits(), result.Bits(), test.expected.Bits())
		}
		if !st.Flags.Has(FlagDivisionByZero) {
			t.Errorf("DIVISION_BY_ZERO not raised for 0x%04x / 0x%04x", test.a.Bits(), test.b.Bits())
		}
	}
}

var commutativitySamples = []F16{
	0x0000, 0x8000, 0x0001, 0x03FF, 0x0400, 0x3C00, 0x3C01, 0x3800,
	0x4000, 0x4200, 0x7BFF, 0xBC00, 0xC000, 0xFBFF, 0x1400, 0x8001,
}

func TestAddMulCommutative(t *testing.T) {
	for _, mode := range []RoundingMode{TiesToEven, TowardZero, TowardNegative, TowardPositive, TiesToAway} {
		for _, a := range commutativitySamples {
			for _, b := range commutativitySamples {
				st1 := &State{Rounding: mode}
				st2 := &State{Rounding: mode}
				if x, y := a.Add(b, nil, st1), b.Add(a, nil, st2); x != y {
					t.Fatalf("%v: add(0x%04x, 0x%04x)=0x%04x but add(0x%04x, 0x%04x)=0x%04x",
						mode, a.Bits(), b.Bits(), x.Bits(), b.Bits(), a.Bits(), y.Bits())
				}
				st1, st2 = &State{Rounding: mode}, &State{Rounding: mode}
				if x, y := a.Mul(b, nil, st1), b.Mul(a, nil, st2); x != y {
					t.Fatalf("%v: mul(0x%04x, 0x%04x)=0x%04x but mul(0x%04x, 0x%04x)=0x%04x",
						mode, a.Bits(), b.Bits(), x.Bits(), b.Bits(), a.Bits(), y.Bits())
				}
			}
		}
	}
}

// sub(a, a) is +0 in every rounding mode except TowardNegative, with no
// flags raised.
func TestSubSelfZeroSign(t *testing.T) {
	finite := []F16{0x0001, 0x03FF, 0x0400, 0x3C00, 0x7BFF, 0x8001, 0xBC00, 0xFBFF}
	for _, mode := range []RoundingMode{TiesToEven, TowardZero, TowardNegative, TowardPositive, TiesToAway} {
		for _, a := range finite {
			st := &State{Rounding: mode}
			got := a.Sub(a, nil, st)
			expected := PositiveZero16
			if mode == TowardNegative {
				expected = NegativeZero16
			}
			if got != expected {
				t.Errorf("%v: sub(0x%04x, 0x%04x) = 0x%04x, expected 0x%04x",
					mode, a.Bits(), a.Bits(), got.Bits(), expected.Bits())
			}
			if st.Flags != 0 {
				t.Errorf("%v: sub(a, a) raised %v", mode, st.Flags)
			}
		}
	}
}

// Flags already present must survive any operation.
func TestFlagsAreSticky(t *testing.T) {
	st := &State{Flags: FlagInexact | FlagOverflow}
	one16.Add(one16, nil, st)
	if !st.Flags.Has(FlagInexact | FlagOverflow) {
		t.Errorf("pre-set flags were cleared: %v", st.Flags)
	}
	one16.Div(PositiveZero16, nil, st)
	if !st.Flags.Has(FlagInexact | FlagOverflow | FlagDivisionByZero) {
		t.Errorf("flags not accumulated: %v", st.Flags)
	}
}

// A signalling NaN input raises INVALID_OPERATION in every kernel.
func TestSignalingNaNAlwaysInvalid(t *testing.T) {
	ops := map[string]func(st *State) F16{
		"add": func(st *State) F16 { return SignalingNaN16.Add(one16, nil, st) },
		"sub": func(st *State) F16 { return one16.Sub(SignalingNaN16, nil, st) },
		"mul": func(st *State) F16 { return SignalingNaN16.Mul(one16, nil, st) },
		"div": func(st *State) F16 { return one16.Div(SignalingNaN16, nil, st) },
		"mul_add": func(st *State) F16 {
			return one16.MulAdd(one16, SignalingNaN16, nil, st)
		},
		"sqrt":  func(st *State) F16 { return SignalingNaN16.Sqrt(nil, st) },
		"rsqrt": func(st *State) F16 { return SignalingNaN16.RSqrt(nil, st) },
		"round_to_integral": func(st *State) F16 {
			return SignalingNaN16.RoundToIntegral(nil, st)
		},
		"next_up":   func(st *State) F16 { return SignalingNaN16.NextUp(nil, st) },
		"next_down": func(st *State) F16 { return SignalingNaN16.NextDown(nil, st) },
		"scale_b":   func(st *State) F16 { return SignalingNaN16.ScaleB(3, nil, st) },
	}
	for name, op := range ops {
		st := &State{}
		result := op(st)
		if !st.Flags.Has(FlagInvalidOperation) {
			t.Errorf("%s: INVALID_OPERATION not raised for signalling NaN", name)
		}
		if !result.IsNaN() {
			t.Errorf("%s: result 0x%04x is not a NaN", name, result.Bits())
		}
	}
}

// NaN propagation follows the platform policy, not a hard-coded rule.
func TestBinaryNaNPropagationModes(t *testing.T) {
	qnanPayload := F16FromBits(0x7E11)
	tests := []struct {
		op       func(pl *Platform, st *State) F16
		platform *Platform
		expected F16
		name     string
	}{
		{
			func(pl *Platform, st *State) F16 { return qnanPayload.Add(one16, pl, st) },
			&RISCV, QuietNaN16, "riscv canonicalizes operand NaNs",
		},
		{
			func(pl *Platform, st *State) F16 { return qnanPayload.Add(one16, pl, st) },
			&ARM, 0x7E11, "arm keeps the first payload",
		},
		{
			func(pl *Platform, st *State) F16 { return one16.Mul(qnanPayload, pl, st) },
			&X86SSE, 0x7E11, "x86 propagates the first NaN operand",
		},
		{
			// A generated NaN with no operand payload to carry: the x86
			// real indefinite is negative.
			func(pl *Platform, st *State) F16 { return PositiveZero16.Div(PositiveZero16, pl, st) },
			&X86SSE, 0xFE00, "x86 generates negative indefinite",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			st := &State{}
			got := test.op(test.platform, st)
			if got != test.expected {
				t.Errorf("got 0x%04x, expected 0x%04x", got.Bits(), test.expected.Bits())
			}
		})
	}
}

func TestPreferringSignalingNaNSelection(t *testing.T) {
	// ARM prefers the signalling operand even in second position.
	st := &State{}
	qnan := F16FromBits(0x7E22)
	snan := F16FromBits(0x7D11)
	got := qnan.Add(snan, &ARM, st)
	// The signalling payload propagates, quieted.
	if got != 0x7F11 {
		t.Errorf("got 0x%04x, expected 0x7F11", got.Bits())
	}
	if !st.Flags.Has(FlagInvalidOperation) {
		t.Error("INVALID_OPERATION not raised")
	}
}
