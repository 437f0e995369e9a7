package softfloat

import (
	"fmt"
	"math/big"
)

// F16 is an IEEE 754 half-precision (binary16) value stored as its bit
// pattern. All arithmetic delegates to the format-generic kernels, so
// results are bit-identical to a DynFloat in Binary16.
type F16 uint16

// Special binary16 values.
const (
	PositiveZero16      F16 = 0x0000
	NegativeZero16      F16 = 0x8000
	PositiveInfinity16  F16 = 0x7C00
	NegativeInfinity16  F16 = 0xFC00
	MaxValue16          F16 = 0x7BFF // largest finite value, 65504
	SmallestNormal16    F16 = 0x0400 // 2^-14
	SmallestSubnormal16 F16 = 0x0001 // 2^-24
	QuietNaN16          F16 = 0x7E00 // the RISC-V canonical NaN
	SignalingNaN16      F16 = 0x7D00
)

// F16FromBits reinterprets a uint16 as a binary16 value.
func F16FromBits(bits uint16) F16 {
	return F16(bits)
}

// Bits returns the underlying bit pattern.
func (x F16) Bits() uint16 {
	return uint16(x)
}

// Dyn lifts the value into a DynFloat in Binary16.
func (x F16) Dyn(pl *Platform) *DynFloat {
	return dynFromBits(new(big.Int).SetUint64(uint64(x)), Binary16, pl)
}

// Class returns the IEEE 754 classification.
func (x F16) Class() FloatClass {
	return decode(Binary16, new(big.Int).SetUint64(uint64(x))).class
}

// IsNaN returns true for quiet and signalling NaNs.
func (x F16) IsNaN() bool {
	return x.Class().IsNaN()
}

// IsInf returns true if x is an infinity: positive only for sign > 0,
// negative only for sign < 0, either for sign == 0.
func (x F16) IsInf(sign int) bool {
	c := x.Class()
	if !c.IsInfinity() {
		return false
	}
	if sign == 0 {
		return true
	}
	return (sign > 0) == (c == ClassPositiveInfinity)
}

// IsZero returns true for either zero.
func (x F16) IsZero() bool {
	return x&0x7FFF == 0
}

// Signbit reports whether the sign bit is set.
func (x F16) Signbit() bool {
	return x&0x8000 != 0
}

// Neg returns x with the sign bit flipped.
func (x F16) Neg() F16 {
	return x ^ 0x8000
}

// Abs returns x with the sign bit cleared.
func (x F16) Abs() F16 {
	return x & 0x7FFF
}

// CopySign returns the magnitude of x with the sign of y.
func (x F16) CopySign(y F16) F16 {
	return x&0x7FFF | y&0x8000
}

// Add returns x + y. A nil platform means the default policy; a nil
// state means default modes with flags discarded.
func (x F16) Add(y F16, pl *Platform, st *State) F16 {
	return F16(binop16(addBits, x, y, pl, st))
}

// Sub returns x - y.
func (x F16) Sub(y F16, pl *Platform, st *State) F16 {
	return F16(binop16(subBits, x, y, pl, st))
}

// Mul returns x * y.
func (x F16) Mul(y F16, pl *Platform, st *State) F16 {
	return F16(binop16(mulBits, x, y, pl, st))
}

// Div returns x / y.
func (x F16) Div(y F16, pl *Platform, st *State) F16 {
	return F16(binop16(divBits, x, y, pl, st))
}

// MulAdd returns x*y + z with a single rounding.
func (x F16) MulAdd(y, z F16, pl *Platform, st *State) F16 {
	r := fmaBits(Binary16, platformEnv(pl),
		new(big.Int).SetUint64(uint64(x)),
		new(big.Int).SetUint64(uint64(y)),
		new(big.Int).SetUint64(uint64(z)), st)
	return F16(r.Uint64())
}

// Sqrt returns the square root of x.
func (x F16) Sqrt(pl *Platform, st *State) F16 {
	return F16(unop16(sqrtBits, x, pl, st))
}

// RSqrt returns the reciprocal square root of x.
func (x F16) RSqrt(pl *Platform, st *State) F16 {
	return F16(unop16(rsqrtBits, x, pl, st))
}

// RoundToIntegral rounds x to an integral value.
func (x F16) RoundToIntegral(pl *Platform, st *State) F16 {
	return F16(unop16(roundToIntegralBits, x, pl, st))
}

// NextUp returns the least binary16 value greater than x.
func (x F16) NextUp(pl *Platform, st *State) F16 {
	return F16(unop16(nextUpBits, x, pl, st))
}

// NextDown returns the greatest binary16 value less than x.
func (x F16) NextDown(pl *Platform, st *State) F16 {
	return F16(unop16(nextDownBits, x, pl, st))
}

// ScaleB returns x * 2^n.
func (x F16) ScaleB(n int, pl *Platform, st *State) F16 {
	r := scaleBBits(Binary16, platformEnv(pl), new(big.Int).SetUint64(uint64(x)), n, st)
	return F16(r.Uint64())
}

// ToF32 widens to binary32; always exact.
func (x F16) ToF32(pl *Platform, st *State) F32 {
	return F32(convert16(x, Binary32, pl, st))
}

// ToF64 widens to binary64; always exact.
func (x F16) ToF64(pl *Platform, st *State) F64 {
	return F64(convert16(x, Binary64, pl, st))
}

// ToF128 widens to binary128; always exact.
func (x F16) ToF128(pl *Platform, st *State) F128 {
	r := convertBits(Binary16, Binary128, platformEnv(pl), new(big.Int).SetUint64(uint64(x)), st)
	return f128FromBig(r)
}

// F16FromRat rounds an exact rational into binary16.
func F16FromRat(r *big.Rat, pl *Platform, st *State) F16 {
	return F16(fromRatBits(Binary16, platformEnv(pl), r, st).Uint64())
}

// F16FromBigInt rounds an exact integer into binary16.
func F16FromBigInt(v *big.Int, pl *Platform, st *State) F16 {
	return F16(fromBigIntBits(Binary16, platformEnv(pl), v, st).Uint64())
}

// ToBigInt converts x to an integer under the state's rounding mode; nil
// with INVALID_OPERATION for NaNs and infinities.
func (x F16) ToBigInt(st *State) *big.Int {
	return toBigIntBits(Binary16, new(big.Int).SetUint64(uint64(x)), st)
}

func (x F16) String() string {
	return fmt.Sprintf("F16(0x%04X)", uint16(x))
}

// GoString returns Go syntax for the value.
func (x F16) GoString() string {
	return fmt.Sprintf("softfloat.F16FromBits(0x%04x)", uint16(x))
}

type bitsBinop func(Format, *Platform, *big.Int, *big.Int, *State) *big.Int

type bitsUnop func(Format, *Platform, *big.Int, *State) *big.Int

func binop16(op bitsBinop, a, b F16, pl *Platform, st *State) uint64 {
	r := op(Binary16, platformEnv(pl),
		new(big.Int).SetUint64(uint64(a)),
		new(big.Int).SetUint64(uint64(b)), st)
	return r.Uint64()
}

func unop16(op bitsUnop, a F16, pl *Platform, st *State) uint64 {
	return op(Binary16, platformEnv(pl), new(big.Int).SetUint64(uint64(a)), st).Uint64()
}

func convert16(a F16, dst Format, pl *Platform, st *State) uint64 {
	return convertBits(Binary16, dst, platformEnv(pl), new(big.Int).SetUint64(uint64(a)), st).Uint64()
}
