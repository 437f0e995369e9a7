package softfloat

import (
	"fmt"
	"math/big"
)

// F32 is an IEEE 754 single-precision (binary32) value stored as its bit
// pattern.
type F32 uint32

// Special binary32 values.
const (
	PositiveZero32     F32 = 0x0000_0000
	NegativeZero32     F32 = 0x8000_0000
	PositiveInfinity32 F32 = 0x7F80_0000
	NegativeInfinity32 F32 = 0xFF80_0000
	MaxValue32         F32 = 0x7F7F_FFFF
	QuietNaN32         F32 = 0x7FC0_0000
	SignalingNaN32     F32 = 0x7FA0_0000
)

// F32FromBits reinterprets a uint32 as a binary32 value.
func F32FromBits(bits uint32) F32 {
	return F32(bits)
}

// Bits returns the underlying bit pattern.
func (x F32) Bits() uint32 {
	return uint32(x)
}

// Dyn lifts the value into a DynFloat in Binary32.
func (x F32) Dyn(pl *Platform) *DynFloat {
	return dynFromBits(new(big.Int).SetUint64(uint64(x)), Binary32, pl)
}

// Class returns the IEEE 754 classification.
func (x F32) Class() FloatClass {
	return decode(Binary32, new(big.Int).SetUint64(uint64(x))).class
}

// IsNaN returns true for quiet and signalling NaNs.
func (x F32) IsNaN() bool {
	return x.Class().IsNaN()
}

// IsZero returns true for either zero.
func (x F32) IsZero() bool {
	return x&0x7FFF_FFFF == 0
}

// Signbit reports whether the sign bit is set.
func (x F32) Signbit() bool {
	return x&0x8000_0000 != 0
}

// Neg returns x with the sign bit flipped.
func (x F32) Neg() F32 {
	return x ^ 0x8000_0000
}

// Abs returns x with the sign bit cleared.
func (x F32) Abs() F32 {
	return x & 0x7FFF_FFFF
}

// CopySign returns the magnitude of x with the sign of y.
func (x F32) CopySign(y F32) F32 {
	return x&0x7FFF_FFFF | y&0x8000_0000
}

func (x F32) Add(y F32, pl *Platform, st *State) F32 {
	return F32(fixedBinop(Binary32, addBits, uint64(x), uint64(y), pl, st))
}

func (x F32) Sub(y F32, pl *Platform, st *State) F32 {
	return F32(fixedBinop(Binary32, subBits, uint64(x), uint64(y), pl, st))
}

func (x F32) Mul(y F32, pl *Platform, st *State) F32 {
	return F32(fixedBinop(Binary32, mulBits, uint64(x), uint64(y), pl, st))
}

func (x F32) Div(y F32, pl *Platform, st *State) F32 {
	return F32(fixedBinop(Binary32, divBits, uint64(x), uint64(y), pl, st))
}

func (x F32) MulAdd(y, z F32, pl *Platform, st *State) F32 {
	r := fmaBits(Binary32, platformEnv(pl),
		new(big.Int).SetUint64(uint64(x)),
		new(big.Int).SetUint64(uint64(y)),
		new(big.Int).SetUint64(uint64(z)), st)
	return F32(r.Uint64())
}

func (x F32) Sqrt(pl *Platform, st *State) F32 {
	return F32(fixedUnop(Binary32, sqrtBits, uint64(x), pl, st))
}

func (x F32) RSqrt(pl *Platform, st *State) F32 {
	return F32(fixedUnop(Binary32, rsqrtBits, uint64(x), pl, st))
}

func (x F32) RoundToIntegral(pl *Platform, st *State) F32 {
	return F32(fixedUnop(Binary32, roundToIntegralBits, uint64(x), pl, st))
}

func (x F32) NextUp(pl *Platform, st *State) F32 {
	return F32(fixedUnop(Binary32, nextUpBits, uint64(x), pl, st))
}

func (x F32) NextDown(pl *Platform, st *State) F32 {
	return F32(fixedUnop(Binary32, nextDownBits, uint64(x), pl, st))
}

func (x F32) ScaleB(n int, pl *Platform, st *State) F32 {
	r := scaleBBits(Binary32, platformEnv(pl), new(big.Int).SetUint64(uint64(x)), n, st)
	return F32(r.Uint64())
}

// ToF16 narrows to binary16 with rounding.
func (x F32) ToF16(pl *Platform, st *State) F16 {
	return F16(fixedConvert(Binary32, Binary16, uint64(x), pl, st))
}

// ToF64 widens to binary64; always exact.
func (x F32) ToF64(pl *Platform, st *State) F64 {
	return F64(fixedConvert(Binary32, Binary64, uint64(x), pl, st))
}

// ToF128 widens to binary128; always exact.
func (x F32) ToF128(pl *Platform, st *State) F128 {
	r := convertBits(Binary32, Binary128, platformEnv(pl), new(big.Int).SetUint64(uint64(x)), st)
	return f128FromBig(r)
}

// F32FromRat rounds an exact rational into binary32.
func F32FromRat(r *big.Rat, pl *Platform, st *State) F32 {
	return F32(fromRatBits(Binary32, platformEnv(pl), r, st).Uint64())
}

// F32FromBigInt rounds an exact integer into binary32.
func F32FromBigInt(v *big.Int, pl *Platform, st *State) F32 {
	return F32(fromBigIntBits(Binary32, platformEnv(pl), v, st).Uint64())
}

// ToBigInt converts x to an integer under the state's rounding mode.
func (x F32) ToBigInt(st *State) *big.Int {
	return toBigIntBits(Binary32, new(big.Int).SetUint64(uint64(x)), st)
}

func (x F32) String() string {
	return fmt.Sprintf("F32(0x%08X)", uint32(x))
}

// fixedBinop runs a bits-level binary kernel over uint64-backed formats.
func fixedBinop(f Format, op bitsBinop, a, b uint64, pl *Platform, st *State) uint64 {
	r := op(f, platformEnv(pl), new(big.Int).SetUint64(a), new(big.Int).SetUint64(b), st)
	return r.Uint64()
}

// fixedUnop runs a bits-level unary kernel over uint64-backed formats.
func fixedUnop(f Format, op bitsUnop, a uint64, pl *Platform, st *State) uint64 {
	return op(f, platformEnv(pl), new(big.Int).SetUint64(a), st).Uint64()
}

// fixedConvert runs the conversion kernel between uint64-backed formats.
func fixedConvert(src, dst Format, a uint64, pl *Platform, st *State) uint64 {
	return convertBits(src, dst, platformEnv(pl), new(big.Int).SetUint64(a), st).Uint64()
}
