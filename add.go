package softfloat

import "math/big"

// exactSignedSum computes s1*m1*2^e1 + s2*m2*2^e2 exactly, up to a sticky
// residue. When the terms are separated by more than pad bits the smaller
// term is folded into the sticky tail instead of being aligned, which
// keeps the working mantissa bounded for formats with huge exponent
// ranges. pad must leave the residue strictly below the rounding guard of
// the wider term; fractionWidth+8 is always enough.
func exactSignedSum(s1 Sign, m1 *big.Int, e1 int, s2 Sign, m2 *big.Int, e2 int, pad int) (sign Sign, mant *big.Int, exp int, sticky, isZero bool) {
	if e1 < e2 {
		s1, m1, e1, s2, m2, e2 = s2, m2, e2, s1, m1, e1
	}
	if e2+m2.BitLen() < e1-pad {
		// The smaller term lives entirely below the jam quantum: the
		// result is m1<<pad nudged by less than one unit in the last
		// place of the widened mantissa.
		mant = new(big.Int).Lsh(m1, uint(pad))
		if s1 != s2 {
			mant.Sub(mant, bigOne)
		}
		return s1, mant, e1 - pad, true, false
	}
	v := new(big.Int).Lsh(m1, uint(e1-e2))
	if s1 == Negative {
		v.Neg(v)
	}
	if s2 == Negative {
		v.Sub(v, m2)
	} else {
		v.Add(v, m2)
	}
	if v.Sign() == 0 {
		return Positive, v, e2, false, true
	}
	sign = Positive
	if v.Sign() < 0 {
		sign = Negative
		v.Neg(v)
	}
	return sign, v, e2, false, false
}

// cancellationZeroBits is the sign rule for an exact zero sum of nonzero
// operands (and of opposite-signed zeros): +0 in every rounding mode
// except TowardNegative.
func cancellationZeroBits(f Format, st *State) *big.Int {
	if stateEnv(st).Rounding == TowardNegative {
		return zeroBits(f, Negative)
	}
	return zeroBits(f, Positive)
}

// addBits is the addition kernel over raw bit patterns.
func addBits(f Format, pl *Platform, a, b *big.Int, st *State) *big.Int {
	da := decode(f, a)
	db := decode(f, b)
	if da.isNaN() || db.isNaN() {
		return propagateBinaryNaN(f, pl, da, db, st)
	}
	if da.class.IsInfinity() {
		if db.class.IsInfinity() && da.sign != db.sign {
			raise(st, FlagInvalidOperation)
			return canonicalNaNBits(f, pl)
		}
		return new(big.Int).Set(a)
	}
	if db.class.IsInfinity() {
		return new(big.Int).Set(b)
	}
	if da.class.IsZero() && db.class.IsZero() {
		if da.sign == db.sign {
			return zeroBits(f, da.sign)
		}
		return cancellationZeroBits(f, st)
	}
	if da.class.IsZero() {
		return new(big.Int).Set(b)
	}
	if db.class.IsZero() {
		return new(big.Int).Set(a)
	}

	sign, mant, exp, sticky, isZero := exactSignedSum(
		da.sign, da.mant, da.exp,
		db.sign, db.mant, db.exp,
		f.FractionWidth()+8)
	if isZero {
		return cancellationZeroBits(f, st)
	}
	return roundFinite(f, pl, sign, mant, exp, sticky, st)
}

// subBits is the subtraction kernel: addition of the negated second
// operand. A format without a sign bit cannot hold the negated operand,
// so there the difference is formed directly; a difference below zero is
// not representable and yields the canonical NaN with INVALID_OPERATION.
func subBits(f Format, pl *Platform, a, b *big.Int, st *State) *big.Int {
	if !f.signBit {
		da, db := decode(f, a), decode(f, b)
		switch {
		case da.isNaN() || db.isNaN() || db.class.IsZero():
		case da.class.IsInfinity() && !db.class.IsInfinity():
			return new(big.Int).Set(a)
		case db.class.IsInfinity() || da.class.IsZero():
			raise(st, FlagInvalidOperation)
			return canonicalNaNBits(f, pl)
		default:
			sign, mant, exp, sticky, _ := exactSignedSum(Positive, da.mant, da.exp,
				Negative, db.mant, db.exp, f.FractionWidth()+8)
			return roundFinite(f, pl, sign, mant, exp, sticky, st)
		}
	}
	nb := new(big.Int).Set(b)
	if f.signBit {
		shift := f.SignFieldShift()
		nb.SetBit(nb, shift, 1-nb.Bit(shift))
	}
	return addBits(f, pl, a, nb, st)
}

// Add returns x + rhs rounded into x's format. A nil state means default
// modes with status reporting discarded. Both operands must share one
// format.
func (x *DynFloat) Add(rhs *DynFloat, st *State) *DynFloat {
	x.checkSameFormat("Add", rhs)
	return dynFromBits(addBits(x.format, x.policy(), x.bits, rhs.bits, st), x.format, x.platform)
}

// Sub returns x - rhs rounded into x's format.
func (x *DynFloat) Sub(rhs *DynFloat, st *State) *DynFloat {
	x.checkSameFormat("Sub", rhs)
	return dynFromBits(subBits(x.format, x.policy(), x.bits, rhs.bits, st), x.format, x.platform)
}

func (x *DynFloat) policy() *Platform {
	return platformEnv(x.platform)
}

func (x *DynFloat) checkSameFormat(op string, rhs *DynFloat) {
	if x.format != rhs.format {
		panic("softfloat: " + op + ": operand format mismatch")
	}
}
