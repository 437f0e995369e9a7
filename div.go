package softfloat

import "math/big"

// divBits is the division kernel over raw bit patterns. The quotient is
// computed by integer long division with enough scaling that at least
// fractionWidth+4 significant bits survive; the remainder feeds the
// sticky bit.
func divBits(f Format, pl *Platform, a, b *big.Int, st *State) *big.Int {
	da := decode(f, a)
	db := decode(f, b)
	if da.isNaN() || db.isNaN() {
		return propagateBinaryNaN(f, pl, da, db, st)
	}
	sign := xorSign(da.sign, db.sign)
	switch {
	case da.class.IsZero() && db.class.IsZero(),
		da.class.IsInfinity() && db.class.IsInfinity():
		raise(st, FlagInvalidOperation)
		return canonicalNaNBits(f, pl)
	case da.class.IsInfinity():
		return infinityBits(f, sign)
	case db.class.IsZero():
		// Finite nonzero over zero.
		raise(st, FlagDivisionByZero)
		return infinityBits(f, sign)
	case da.class.IsZero(), db.class.IsInfinity():
		return zeroBits(f, sign)
	}

	scale := f.FractionWidth() + 4 + db.mant.BitLen()
	num := new(big.Int).Lsh(da.mant, uint(scale))
	quo, rem := new(big.Int).QuoRem(num, db.mant, new(big.Int))
	return roundFinite(f, pl, sign, quo, da.exp-db.exp-scale, rem.Sign() != 0, st)
}

// Div returns x / rhs rounded into x's format.
func (x *DynFloat) Div(rhs *DynFloat, st *State) *DynFloat {
	x.checkSameFormat("Div", rhs)
	return dynFromBits(divBits(x.format, x.policy(), x.bits, rhs.bits, st), x.format, x.platform)
}
