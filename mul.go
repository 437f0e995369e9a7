package softfloat

import "math/big"

// xorSign combines operand signs for multiplication and division.
func xorSign(a, b Sign) Sign {
	if a == b {
		return Positive
	}
	return Negative
}

// mulBits is the multiplication kernel over raw bit patterns. The product
// mantissa is computed at full double width, so the single rounding at
// the end sees every bit.
func mulBits(f Format, pl *Platform, a, b *big.Int, st *State) *big.Int {
	da := decode(f, a)
	db := decode(f, b)
	if da.isNaN() || db.isNaN() {
		return propagateBinaryNaN(f, pl, da, db, st)
	}
	sign := xorSign(da.sign, db.sign)
	if (da.class.IsInfinity() && db.class.IsZero()) ||
		(da.class.IsZero() && db.class.IsInfinity()) {
		raise(st, FlagInvalidOperation)
		return canonicalNaNBits(f, pl)
	}
	if da.class.IsInfinity() || db.class.IsInfinity() {
		return infinityBits(f, sign)
	}
	if da.class.IsZero() || db.class.IsZero() {
		return zeroBits(f, sign)
	}

	mant := new(big.Int).Mul(da.mant, db.mant)
	return roundFinite(f, pl, sign, mant, da.exp+db.exp, false, st)
}

// Mul returns x * rhs rounded into x's format.
func (x *DynFloat) Mul(rhs *DynFloat, st *State) *DynFloat {
	x.checkSameFormat("Mul", rhs)
	return dynFromBits(mulBits(x.format, x.policy(), x.bits, rhs.bits, st), x.format, x.platform)
}
