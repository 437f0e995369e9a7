package softfloat

import "math/big"

// fmaBits is the fused multiply-add kernel: a*b + c with a single
// rounding. The product is exact at double width and the addend is summed
// exactly before the one rounding at the end.
func fmaBits(f Format, pl *Platform, a, b, c *big.Int, st *State) *big.Int {
	da := decode(f, a)
	db := decode(f, b)
	dc := decode(f, c)
	infZero := (da.class.IsInfinity() && db.class.IsZero()) ||
		(da.class.IsZero() && db.class.IsInfinity())

	if da.isNaN() || db.isNaN() || dc.isNaN() {
		if infZero && dc.class == ClassQuietNaN {
			// Inf*0 with a quiet NaN addend: the platform chooses
			// whether this is an ordinary NaN propagation or an invalid
			// operation.
			switch pl.FMAInfZeroQNaN {
			case FMAInfZeroCanonicalAndGenerateInvalid:
				raise(st, FlagInvalidOperation)
				return canonicalNaNBits(f, pl)
			case FMAInfZeroPropagateAndGenerateInvalid:
				raise(st, FlagInvalidOperation)
			}
		}
		return propagateTernaryNaN(f, pl, da, db, dc, st)
	}
	if infZero {
		raise(st, FlagInvalidOperation)
		return canonicalNaNBits(f, pl)
	}

	prodSign := xorSign(da.sign, db.sign)
	if da.class.IsInfinity() || db.class.IsInfinity() {
		if dc.class.IsInfinity() && dc.sign != prodSign {
			raise(st, FlagInvalidOperation)
			return canonicalNaNBits(f, pl)
		}
		return infinityBits(f, prodSign)
	}
	if dc.class.IsInfinity() {
		return infinityBits(f, dc.sign)
	}

	if da.class.IsZero() || db.class.IsZero() {
		// Exact zero product: the result is the addend, with the
		// two-zero sign rule when the addend is zero as well.
		if dc.class.IsZero() {
			if prodSign == dc.sign {
				return zeroBits(f, prodSign)
			}
			return cancellationZeroBits(f, st)
		}
		return new(big.Int).Set(c)
	}

	prodMant := new(big.Int).Mul(da.mant, db.mant)
	prodExp := da.exp + db.exp
	if dc.class.IsZero() {
		return roundFinite(f, pl, prodSign, prodMant, prodExp, false, st)
	}

	sign, mant, exp, sticky, isZero := exactSignedSum(
		prodSign, prodMant, prodExp,
		dc.sign, dc.mant, dc.exp,
		f.FractionWidth()+8)
	if isZero {
		return cancellationZeroBits(f, st)
	}
	return roundFinite(f, pl, sign, mant, exp, sticky, st)
}

// MulAdd returns x*y + addend with a single rounding.
func (x *DynFloat) MulAdd(y, addend *DynFloat, st *State) *DynFloat {
	x.checkSameFormat("MulAdd", y)
	x.checkSameFormat("MulAdd", addend)
	return dynFromBits(fmaBits(x.format, x.policy(), x.bits, y.bits, addend.bits, st), x.format, x.platform)
}
