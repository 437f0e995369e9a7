package softfloat

import "math/big"

// roundToIntegralBits rounds to an integral value in the same format
// under the state's rounding direction. Per IEEE 754 §5.9 the operation
// is silent apart from signalling-NaN inputs: INEXACT is never raised.
func roundToIntegralBits(f Format, pl *Platform, a *big.Int, st *State) *big.Int {
	d := decode(f, a)
	if d.isNaN() {
		return propagateUnaryNaN(f, pl, pl.RoundToIntegralNaNPropagation, d, st)
	}
	if !d.class.IsFinite() || d.class.IsZero() || d.exp >= 0 {
		return new(big.Int).Set(a)
	}
	kept, guard, tail := splitAt(d.mant, -d.exp, false)
	if roundUp(stateEnv(st).Rounding, d.sign, kept.Bit(0) == 1, guard, tail) {
		kept.Add(kept, bigOne)
	}
	if kept.Sign() == 0 {
		// A fraction rounded away entirely keeps the operand's sign.
		return zeroBits(f, d.sign)
	}
	return roundFinite(f, pl, d.sign, kept, 0, false, nil)
}

// nextUpBits returns the least value that compares greater than the
// operand.
func nextUpBits(f Format, pl *Platform, a *big.Int, st *State) *big.Int {
	d := decode(f, a)
	if d.isNaN() {
		return propagateUnaryNaN(f, pl, pl.NextUpOrDownNaNPropagation, d, st)
	}
	switch d.class {
	case ClassPositiveInfinity:
		return new(big.Int).Set(a)
	case ClassNegativeInfinity:
		return maxFiniteBits(f, Negative)
	case ClassPositiveZero, ClassNegativeZero:
		// The least value above every zero is the smallest positive
		// subnormal.
		return big.NewInt(1)
	}
	mag := new(big.Int).And(a, onesMask(f.SignFieldShift()))
	if d.sign == Positive {
		// Stepping off the largest finite value lands on the infinity
		// encoding by construction.
		mag.Add(mag, bigOne)
		return mag
	}
	mag.Sub(mag, bigOne)
	if mag.Sign() == 0 {
		return zeroBits(f, Negative)
	}
	return packSignMag(f, Negative, mag)
}

// nextDownBits returns the greatest value that compares less than the
// operand.
func nextDownBits(f Format, pl *Platform, a *big.Int, st *State) *big.Int {
	d := decode(f, a)
	if d.isNaN() {
		return propagateUnaryNaN(f, pl, pl.NextUpOrDownNaNPropagation, d, st)
	}
	if !f.signBit {
		// No value below zero is representable.
		if d.class == ClassPositiveZero {
			raise(st, FlagInvalidOperation)
			return canonicalNaNBits(f, pl)
		}
		mag := new(big.Int).Set(a)
		if d.class == ClassPositiveInfinity {
			return maxFiniteBits(f, Positive)
		}
		return mag.Sub(mag, bigOne)
	}
	switch d.class {
	case ClassNegativeInfinity:
		return new(big.Int).Set(a)
	case ClassPositiveInfinity:
		return maxFiniteBits(f, Positive)
	case ClassPositiveZero, ClassNegativeZero:
		return packSignMag(f, Negative, big.NewInt(1))
	}
	mag := new(big.Int).And(a, onesMask(f.SignFieldShift()))
	if d.sign == Negative {
		mag.Add(mag, bigOne)
		return packSignMag(f, Negative, mag)
	}
	mag.Sub(mag, bigOne)
	if mag.Sign() == 0 {
		return zeroBits(f, Positive)
	}
	return mag
}

func packSignMag(f Format, sign Sign, mag *big.Int) *big.Int {
	bits := new(big.Int).Set(mag)
	if sign == Negative && f.signBit {
		bits.SetBit(bits, f.SignFieldShift(), 1)
	}
	return bits
}

// scaleBBits multiplies by 2^n with a single rounding, the IEEE scaleB
// operation.
func scaleBBits(f Format, pl *Platform, a *big.Int, n int, st *State) *big.Int {
	d := decode(f, a)
	if d.isNaN() {
		return propagateUnaryNaN(f, pl, pl.ScaleBNaNPropagation, d, st)
	}
	if !d.class.IsFinite() || d.class.IsZero() {
		return new(big.Int).Set(a)
	}
	return roundFinite(f, pl, d.sign, d.mant, d.exp+n, false, st)
}

// RoundToIntegral rounds x to an integral value under the state's
// rounding mode.
func (x *DynFloat) RoundToIntegral(st *State) *DynFloat {
	return dynFromBits(roundToIntegralBits(x.format, x.policy(), x.bits, st), x.format, x.platform)
}

// NextUp returns the least value greater than x.
func (x *DynFloat) NextUp(st *State) *DynFloat {
	return dynFromBits(nextUpBits(x.format, x.policy(), x.bits, st), x.format, x.platform)
}

// NextDown returns the greatest value less than x.
func (x *DynFloat) NextDown(st *State) *DynFloat {
	return dynFromBits(nextDownBits(x.format, x.policy(), x.bits, st), x.format, x.platform)
}

// ScaleB returns x * 2^n.
func (x *DynFloat) ScaleB(n int, st *State) *DynFloat {
	return dynFromBits(scaleBBits(x.format, x.policy(), x.bits, n, st), x.format, x.platform)
}
