package softfloat

import (
	"fmt"
	"math/big"
)

// F128 is an IEEE 754 quadruple-precision (binary128) value stored as
// two 64-bit halves of its bit pattern.
type F128 struct {
	Hi, Lo uint64
}

// F128FromBits assembles a binary128 value from its high and low halves.
func F128FromBits(hi, lo uint64) F128 {
	return F128{Hi: hi, Lo: lo}
}

func f128FromBig(bits *big.Int) F128 {
	lo := new(big.Int).And(bits, onesMask(64)).Uint64()
	hi := new(big.Int).Rsh(bits, 64).Uint64()
	return F128{Hi: hi, Lo: lo}
}

func (x F128) big() *big.Int {
	b := new(big.Int).SetUint64(x.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(x.Lo))
}

// Dyn lifts the value into a DynFloat in Binary128.
func (x F128) Dyn(pl *Platform) *DynFloat {
	return dynFromBits(x.big(), Binary128, pl)
}

// Class returns the IEEE 754 classification.
func (x F128) Class() FloatClass {
	return decode(Binary128, x.big()).class
}

// IsNaN returns true for quiet and signalling NaNs.
func (x F128) IsNaN() bool {
	return x.Class().IsNaN()
}

// IsZero returns true for either zero.
func (x F128) IsZero() bool {
	return x.Hi&0x7FFF_FFFF_FFFF_FFFF == 0 && x.Lo == 0
}

// Signbit reports whether the sign bit is set.
func (x F128) Signbit() bool {
	return x.Hi&0x8000_0000_0000_0000 != 0
}

// Neg returns x with the sign bit flipped.
func (x F128) Neg() F128 {
	return F128{Hi: x.Hi ^ 0x8000_0000_0000_0000, Lo: x.Lo}
}

// Abs returns x with the sign bit cleared.
func (x F128) Abs() F128 {
	return F128{Hi: x.Hi & 0x7FFF_FFFF_FFFF_FFFF, Lo: x.Lo}
}

// CopySign returns the magnitude of x with the sign of y.
func (x F128) CopySign(y F128) F128 {
	return F128{Hi: x.Hi&0x7FFF_FFFF_FFFF_FFFF | y.Hi&0x8000_0000_0000_0000, Lo: x.Lo}
}

func (x F128) Add(y F128, pl *Platform, st *State) F128 {
	return f128FromBig(addBits(Binary128, platformEnv(pl), x.big(), y.big(), st))
}

func (x F128) Sub(y F128, pl *Platform, st *State) F128 {
	return f128FromBig(subBits(Binary128, platformEnv(pl), x.big(), y.big(), st))
}

func (x F128) Mul(y F128, pl *Platform, st *State) F128 {
	return f128FromBig(mulBits(Binary128, platformEnv(pl), x.big(), y.big(), st))
}

func (x F128) Div(y F128, pl *Platform, st *State) F128 {
	return f128FromBig(divBits(Binary128, platformEnv(pl), x.big(), y.big(), st))
}

func (x F128) MulAdd(y, z F128, pl *Platform, st *State) F128 {
	return f128FromBig(fmaBits(Binary128, platformEnv(pl), x.big(), y.big(), z.big(), st))
}

func (x F128) Sqrt(pl *Platform, st *State) F128 {
	return f128FromBig(sqrtBits(Binary128, platformEnv(pl), x.big(), st))
}

func (x F128) RSqrt(pl *Platform, st *State) F128 {
	return f128FromBig(rsqrtBits(Binary128, platformEnv(pl), x.big(), st))
}

func (x F128) RoundToIntegral(pl *Platform, st *State) F128 {
	return f128FromBig(roundToIntegralBits(Binary128, platformEnv(pl), x.big(), st))
}

func (x F128) NextUp(pl *Platform, st *State) F128 {
	return f128FromBig(nextUpBits(Binary128, platformEnv(pl), x.big(), st))
}

func (x F128) NextDown(pl *Platform, st *State) F128 {
	return f128FromBig(nextDownBits(Binary128, platformEnv(pl), x.big(), st))
}

func (x F128) ScaleB(n int, pl *Platform, st *State) F128 {
	return f128FromBig(scaleBBits(Binary128, platformEnv(pl), x.big(), n, st))
}

// ToF16 narrows to binary16 with rounding.
func (x F128) ToF16(pl *Platform, st *State) F16 {
	return F16(convertBits(Binary128, Binary16, platformEnv(pl), x.big(), st).Uint64())
}

// ToF32 narrows to binary32 with rounding.
func (x F128) ToF32(pl *Platform, st *State) F32 {
	return F32(convertBits(Binary128, Binary32, platformEnv(pl), x.big(), st).Uint64())
}

// ToF64 narrows to binary64 with rounding.
func (x F128) ToF64(pl *Platform, st *State) F64 {
	return F64(convertBits(Binary128, Binary64, platformEnv(pl), x.big(), st).Uint64())
}

// F128FromRat rounds an exact rational into binary128.
func F128FromRat(r *big.Rat, pl *Platform, st *State) F128 {
	return f128FromBig(fromRatBits(Binary128, platformEnv(pl), r, st))
}

// F128FromBigInt rounds an exact integer into binary128.
func F128FromBigInt(v *big.Int, pl *Platform, st *State) F128 {
	return f128FromBig(fromBigIntBits(Binary128, platformEnv(pl), v, st))
}

// ToBigInt converts x to an integer under the state's rounding mode.
func (x F128) ToBigInt(st *State) *big.Int {
	return toBigIntBits(Binary128, x.big(), st)
}

func (x F128) String() string {
	return fmt.Sprintf("F128(0x%016X_%016X)", x.Hi, x.Lo)
}
