package softfloat

// UnaryNaNPropagationMode selects the NaN result of single-operand
// operations (sqrt, rsqrt, round-to-integral, next-up/down, scale-b).
type UnaryNaNPropagationMode int

const (
	// UnaryAlwaysCanonical replaces any input NaN with the canonical NaN.
	UnaryAlwaysCanonical UnaryNaNPropagationMode = iota
	// UnaryFirst propagates the input NaN, quieted.
	UnaryFirst
)

// BinaryNaNPropagationMode selects the NaN result of two-operand
// operations. The "preferring sNaN" variants pick the signalling operand
// when exactly one input is signalling, then fall back to the positional
// order.
type BinaryNaNPropagationMode int

const (
	BinaryAlwaysCanonical BinaryNaNPropagationMode = iota
	BinaryFirstSecond
	BinarySecondFirst
	BinaryFirstSecondPreferringSNaN
	BinarySecondFirstPreferringSNaN
)

// TernaryNaNPropagationMode selects the NaN result of fused multiply-add.
// The positional names give the scan order over (first, second, third) =
// (a, b, c) in a*b + c.
type TernaryNaNPropagationMode int

const (
	TernaryAlwaysCanonical TernaryNaNPropagationMode = iota
	TernaryFirstSecondThird
	TernaryFirstThirdSecond
	TernarySecondFirstThird
	TernarySecondThirdFirst
	TernaryThirdFirstSecond
	TernaryThirdSecondFirst
	TernaryFirstSecondThirdPreferringSNaN
	TernaryFirstThirdSecondPreferringSNaN
	TernarySecondFirstThirdPreferringSNaN
	TernarySecondThirdFirstPreferringSNaN
	TernaryThirdFirstSecondPreferringSNaN
	TernaryThirdSecondFirstPreferringSNaN
)

// FMAInfZeroQNaNResult selects the result of fused multiply-add when the
// product is Inf*0 and the addend is a quiet NaN. INVALID_OPERATION is
// raised in every case except FollowNaNPropagationMode, which treats the
// quiet addend as an ordinary propagated NaN.
type FMAInfZeroQNaNResult int

const (
	FMAInfZeroFollowNaNPropagationMode FMAInfZeroQNaNResult = iota
	FMAInfZeroCanonicalAndGenerateInvalid
	FMAInfZeroPropagateAndGenerateInvalid
)

// FloatToFloatNaNPropagationMode selects how a NaN crosses a
// format-to-format conversion.
type FloatToFloatNaNPropagationMode int

const (
	// ConversionAlwaysCanonical produces the destination's canonical NaN.
	ConversionAlwaysCanonical FloatToFloatNaNPropagationMode = iota
	// ConversionRetainMostSignificantBits keeps the most significant
	// payload bits that fit the destination fraction, quiet bit forced.
	ConversionRetainMostSignificantBits
)

// Platform carries the behavioral knobs IEEE 754 leaves
// implementation-defined. A Platform is immutable per operation; callers
// switch platforms by passing a different value.
type Platform struct {
	// Canonical quiet NaN encoding: sign, mantissa MSB (the quiet bit),
	// second-to-MSB, and whether the remaining mantissa bits are all ones
	// or all zeros.
	CanonicalNaNSign              Sign
	CanonicalNaNMantissaMSB       bool
	CanonicalNaNMantissaSecondMSB bool
	CanonicalNaNMantissaRest      bool

	StdBinOpsNaNPropagation       BinaryNaNPropagationMode
	FMANaNPropagation             TernaryNaNPropagationMode
	FMAInfZeroQNaN                FMAInfZeroQNaNResult
	RoundToIntegralNaNPropagation UnaryNaNPropagationMode
	NextUpOrDownNaNPropagation    UnaryNaNPropagationMode
	ScaleBNaNPropagation          UnaryNaNPropagationMode
	SqrtNaNPropagation            UnaryNaNPropagationMode
	RSqrtNaNPropagation           UnaryNaNPropagationMode
	ConversionNaNPropagation      FloatToFloatNaNPropagationMode
}

// RISCV generates the canonical NaN for every NaN result, as the RISC-V
// base ISA specifies. It is the default platform.
var RISCV = Platform{
	CanonicalNaNSign:              Positive,
	CanonicalNaNMantissaMSB:       true,
	StdBinOpsNaNPropagation:       BinaryAlwaysCanonical,
	FMANaNPropagation:             TernaryAlwaysCanonical,
	FMAInfZeroQNaN:                FMAInfZeroCanonicalAndGenerateInvalid,
	RoundToIntegralNaNPropagation: UnaryAlwaysCanonical,
	NextUpOrDownNaNPropagation:    UnaryAlwaysCanonical,
	ScaleBNaNPropagation:          UnaryAlwaysCanonical,
	SqrtNaNPropagation:            UnaryAlwaysCanonical,
	RSqrtNaNPropagation:           UnaryAlwaysCanonical,
	ConversionNaNPropagation:      ConversionAlwaysCanonical,
}

// ARM models AArch64 with default NaN mode off: operand payloads
// propagate, signalling operands first.
var ARM = Platform{
	CanonicalNaNSign:              Positive,
	CanonicalNaNMantissaMSB:       true,
	StdBinOpsNaNPropagation:       BinaryFirstSecondPreferringSNaN,
	FMANaNPropagation:             TernaryFirstSecondThirdPreferringSNaN,
	FMAInfZeroQNaN:                FMAInfZeroCanonicalAndGenerateInvalid,
	RoundToIntegralNaNPropagation: UnaryFirst,
	NextUpOrDownNaNPropagation:    UnaryFirst,
	ScaleBNaNPropagation:          UnaryFirst,
	SqrtNaNPropagation:            UnaryFirst,
	RSqrtNaNPropagation:           UnaryFirst,
	ConversionNaNPropagation:      ConversionRetainMostSignificantBits,
}

// X86SSE models the SSE/AVX units: the first NaN operand propagates, and
// the generated "real indefinite" NaN is negative.
var X86SSE = Platform{
	CanonicalNaNSign:              Negative,
	CanonicalNaNMantissaMSB:       true,
	StdBinOpsNaNPropagation:       BinaryFirstSecond,
	FMANaNPropagation:             TernaryFirstSecondThird,
	FMAInfZeroQNaN:                FMAInfZeroFollowNaNPropagationMode,
	RoundToIntegralNaNPropagation: UnaryFirst,
	NextUpOrDownNaNPropagation:    UnaryFirst,
	ScaleBNaNPropagation:          UnaryFirst,
	SqrtNaNPropagation:            UnaryFirst,
	RSqrtNaNPropagation:           UnaryFirst,
	ConversionNaNPropagation:      ConversionRetainMostSignificantBits,
}

// POWER models the PowerPC FPU; its fused multiply-add scans the addend
// before the second factor.
var POWER = Platform{
	CanonicalNaNSign:              Positive,
	CanonicalNaNMantissaMSB:       true,
	StdBinOpsNaNPropagation:       BinaryFirstSecond,
	FMANaNPropagation:             TernaryFirstThirdSecond,
	FMAInfZeroQNaN:                FMAInfZeroPropagateAndGenerateInvalid,
	RoundToIntegralNaNPropagation: UnaryFirst,
	NextUpOrDownNaNPropagation:    UnaryFirst,
	ScaleBNaNPropagation:          UnaryFirst,
	SqrtNaNPropagation:            UnaryFirst,
	RSqrtNaNPropagation:           UnaryFirst,
	ConversionNaNPropagation:      ConversionRetainMostSignificantBits,
}

// MIPS2008 models the MIPS Release 5+ 2008-NaN encoding: signalling
// operands win, otherwise the first NaN propagates.
var MIPS2008 = Platform{
	CanonicalNaNSign:              Positive,
	CanonicalNaNMantissaMSB:       true,
	StdBinOpsNaNPropagation:       BinaryFirstSecondPreferringSNaN,
	FMANaNPropagation:             TernaryFirstSecondThirdPreferringSNaN,
	FMAInfZeroQNaN:                FMAInfZeroCanonicalAndGenerateInvalid,
	RoundToIntegralNaNPropagation: UnaryFirst,
	NextUpOrDownNaNPropagation:    UnaryFirst,
	ScaleBNaNPropagation:          UnaryFirst,
	SqrtNaNPropagation:            UnaryFirst,
	RSqrtNaNPropagation:           UnaryFirst,
	ConversionNaNPropagation:      ConversionRetainMostSignificantBits,
}

// SPARC models the SPARC V9 FPU; its generated NaN has an all-ones
// mantissa.
var SPARC = Platform{
	CanonicalNaNSign:              Positive,
	CanonicalNaNMantissaMSB:       true,
	CanonicalNaNMantissaSecondMSB: true,
	CanonicalNaNMantissaRest:      true,
	StdBinOpsNaNPropagation:       BinaryFirstSecondPreferringSNaN,
	FMANaNPropagation:             TernaryFirstSecondThirdPreferringSNaN,
	FMAInfZeroQNaN:                FMAInfZeroCanonicalAndGenerateInvalid,
	RoundToIntegralNaNPropagation: UnaryFirst,
	NextUpOrDownNaNPropagation:    UnaryFirst,
	ScaleBNaNPropagation:          UnaryFirst,
	SqrtNaNPropagation:            UnaryFirst,
	RSqrtNaNPropagation:           UnaryFirst,
	ConversionNaNPropagation:      ConversionRetainMostSignificantBits,
}

// DefaultPlatform is the policy used when an operation receives a nil
// platform.
var DefaultPlatform = RISCV

// platformEnv resolves an optional platform override.
func platformEnv(pl *Platform) *Platform {
	if pl == nil {
		return &DefaultPlatform
	}
	return pl
}
