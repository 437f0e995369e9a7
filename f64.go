package softfloat

import (
	"fmt"
	"math/big"
)

// F64 is an IEEE 754 double-precision (binary64) value stored as its bit
// pattern.
type F64 uint64

// Special binary64 values.
const (
	PositiveZero64     F64 = 0x0000_0000_0000_0000
	NegativeZero64     F64 = 0x8000_0000_0000_0000
	PositiveInfinity64 F64 = 0x7FF0_0000_0000_0000
	NegativeInfinity64 F64 = 0xFFF0_0000_0000_0000
	MaxValue64         F64 = 0x7FEF_FFFF_FFFF_FFFF
	QuietNaN64         F64 = 0x7FF8_0000_0000_0000
	SignalingNaN64     F64 = 0x7FF4_0000_0000_0000
)

// F64FromBits reinterprets a uint64 as a binary64 value.
func F64FromBits(bits uint64) F64 {
	return F64(bits)
}

// Bits returns the underlying bit pattern.
func (x F64) Bits() uint64 {
	return uint64(x)
}

// Dyn lifts the value into a DynFloat in Binary64.
func (x F64) Dyn(pl *Platform) *DynFloat {
	return dynFromBits(new(big.Int).SetUint64(uint64(x)), Binary64, pl)
}

// Class returns the IEEE 754 classification.
func (x F64) Class() FloatClass {
	return decode(Binary64, new(big.Int).SetUint64(uint64(x))).class
}

// IsNaN returns true for quiet and signalling NaNs.
func (x F64) IsNaN() bool {
	return x.Class().IsNaN()
}

// IsZero returns true for either zero.
func (x F64) IsZero() bool {
	return x&0x7FFF_FFFF_FFFF_FFFF == 0
}

// Signbit reports whether the sign bit is set.
func (x F64) Signbit() bool {
	return x&0x8000_0000_0000_0000 != 0
}

// Neg returns x with the sign bit flipped.
func (x F64) Neg() F64 {
	return x ^ 0x8000_0000_0000_0000
}

// Abs returns x with the sign bit cleared.
func (x F64) Abs() F64 {
	return x & 0x7FFF_FFFF_FFFF_FFFF
}

// CopySign returns the magnitude of x with the sign of y.
func (x F64) CopySign(y F64) F64 {
	return x&0x7FFF_FFFF_FFFF_FFFF | y&0x8000_0000_0000_0000
}

func (x F64) Add(y F64, pl *Platform, st *State) F64 {
	return F64(fixedBinop(Binary64, addBits, uint64(x), uint64(y), pl, st))
}

func (x F64) Sub(y F64, pl *Platform, st *State) F64 {
	return F64(fixedBinop(Binary64, subBits, uint64(x), uint64(y), pl, st))
}

func (x F64) Mul(y F64, pl *Platform, st *State) F64 {
	return F64(fixedBinop(Binary64, mulBits, uint64(x), uint64(y), pl, st))
}

func (x F64) Div(y F64, pl *Platform, st *State) F64 {
	return F64(fixedBinop(Binary64, divBits, uint64(x), uint64(y), pl, st))
}

func (x F64) MulAdd(y, z F64, pl *Platform, st *State) F64 {
	r := fmaBits(Binary64, platformEnv(pl),
		new(big.Int).SetUint64(uint64(x)),
		new(big.Int).SetUint64(uint64(y)),
		new(big.Int).SetUint64(uint64(z)), st)
	return F64(r.Uint64())
}

func (x F64) Sqrt(pl *Platform, st *State) F64 {
	return F64(fixedUnop(Binary64, sqrtBits, uint64(x), pl, st))
}

func (x F64) RSqrt(pl *Platform, st *State) F64 {
	return F64(fixedUnop(Binary64, rsqrtBits, uint64(x), pl, st))
}

func (x F64) RoundToIntegral(pl *Platform, st *State) F64 {
	return F64(fixedUnop(Binary64, roundToIntegralBits, uint64(x), pl, st))
}

func (x F64) NextUp(pl *Platform, st *State) F64 {
	return F64(fixedUnop(Binary64, nextUpBits, uint64(x), pl, st))
}

func (x F64) NextDown(pl *Platform, st *State) F64 {
	return F64(fixedUnop(Binary64, nextDownBits, uint64(x), pl, st))
}

func (x F64) ScaleB(n int, pl *Platform, st *State) F64 {
	r := scaleBBits(Binary64, platformEnv(pl), new(big.Int).SetUint64(uint64(x)), n, st)
	return F64(r.Uint64())
}

// ToF16 narrows to binary16 with rounding.
func (x F64) ToF16(pl *Platform, st *State) F16 {
	return F16(fixedConvert(Binary64, Binary16, uint64(x), pl, st))
}

// ToF32 narrows to binary32 with rounding.
func (x F64) ToF32(pl *Platform, st *State) F32 {
	return F32(fixedConvert(Binary64, Binary32, uint64(x), pl, st))
}

// ToF128 widens to binary128; always exact.
func (x F64) ToF128(pl *Platform, st *State) F128 {
	r := convertBits(Binary64, Binary128, platformEnv(pl), new(big.Int).SetUint64(uint64(x)), st)
	return f128FromBig(r)
}

// F64FromRat rounds an exact rational into binary64.
func F64FromRat(r *big.Rat, pl *Platform, st *State) F64 {
	return F64(fromRatBits(Binary64, platformEnv(pl), r, st).Uint64())
}

// F64FromBigInt rounds an exact integer into binary64.
func F64FromBigInt(v *big.Int, pl *Platform, st *State) F64 {
	return F64(fromBigIntBits(Binary64, platformEnv(pl), v, st).Uint64())
}

// ToBigInt converts x to an integer under the state's rounding mode.
func (x F64) ToBigInt(st *State) *big.Int {
	return toBigIntBits(Binary64, new(big.Int).SetUint64(uint64(x)), st)
}

func (x F64) String() string {
	return fmt.Sprintf("F64(0x%016X)", uint64(x))
}
