package softfloat

import "math/big"

// convertBits re-rounds a value of format src into format dst. Widening
// a standard format is always exact; narrowing rounds and may raise
// OVERFLOW, UNDERFLOW, and INEXACT.
func convertBits(src, dst Format, pl *Platform, bits *big.Int, st *State) *big.Int {
	d := decode(src, bits)
	if d.isNaN() {
		return convertNaNBits(src, dst, pl, d, st)
	}
	if d.sign == Negative && !dst.signBit && !d.class.IsZero() {
		raise(st, FlagInvalidOperation)
		return canonicalNaNBits(dst, pl)
	}
	if d.class.IsInfinity() {
		return infinityBits(dst, d.sign)
	}
	if d.class.IsZero() {
		return zeroBits(dst, d.sign)
	}
	return roundFinite(dst, pl, d.sign, d.mant, d.exp, false, st)
}

// Convert returns x re-rounded into the destination format, under x's
// platform policy.
func (x *DynFloat) Convert(dst Format, st *State) *DynFloat {
	return dynFromBits(convertBits(x.format, dst, x.policy(), x.bits, st), dst, x.platform)
}

// fromRatBits rounds an exact rational into the format. The quotient is
// scaled so enough significant bits survive the integer division, and
// the remainder becomes the sticky bit.
func fromRatBits(f Format, pl *Platform, r *big.Rat, st *State) *big.Int {
	num := r.Num()
	if num.Sign() == 0 {
		return zeroBits(f, Positive)
	}
	sign := Positive
	if num.Sign() < 0 {
		sign = Negative
	}
	den := r.Denom()
	scale := f.FractionWidth() + 5 + den.BitLen()
	scaled := new(big.Int).Abs(num)
	scaled.Lsh(scaled, uint(scale))
	quo, rem := new(big.Int).QuoRem(scaled, den, new(big.Int))
	return roundFinite(f, pl, sign, quo, -scale, rem.Sign() != 0, st)
}

// fromBigIntBits rounds an exact integer into the format.
func fromBigIntBits(f Format, pl *Platform, v *big.Int, st *State) *big.Int {
	if v.Sign() == 0 {
		return zeroBits(f, Positive)
	}
	sign := Positive
	if v.Sign() < 0 {
		sign = Negative
	}
	return roundFinite(f, pl, sign, new(big.Int).Abs(v), 0, false, st)
}

// FromRat converts an exact rational number — the embedding of the
// real-number oracle this library consumes — into the format. INEXACT,
// OVERFLOW, and UNDERFLOW report on the fit.
func FromRat(r *big.Rat, f Format, pl *Platform, st *State) *DynFloat {
	pl = platformEnv(pl)
	return dynFromBits(fromRatBits(f, pl, r, st), f, pl)
}

// FromBigInt converts an exact integer into the format.
func FromBigInt(v *big.Int, f Format, pl *Platform, st *State) *DynFloat {
	pl = platformEnv(pl)
	return dynFromBits(fromBigIntBits(f, pl, v, st), f, pl)
}

// toBigIntBits converts to an integer under the state's rounding mode.
// NaNs and infinities raise INVALID_OPERATION and yield no integer;
// discarded fraction bits raise INEXACT.
func toBigIntBits(f Format, bits *big.Int, st *State) *big.Int {
	d := decode(f, bits)
	if d.isNaN() || d.class.IsInfinity() {
		raise(st, FlagInvalidOperation)
		return nil
	}
	if d.class.IsZero() {
		return new(big.Int)
	}
	v := new(big.Int)
	if d.exp >= 0 {
		v.Lsh(d.mant, uint(d.exp))
	} else {
		kept, guard, tail := splitAt(d.mant, -d.exp, false)
		if roundUp(stateEnv(st).Rounding, d.sign, kept.Bit(0) == 1, guard, tail) {
			kept.Add(kept, bigOne)
		}
		if guard || tail {
			raise(st, FlagInexact)
		}
		v = kept
	}
	if d.sign == Negative {
		v.Neg(v)
	}
	return v
}

// ToBigInt converts x to an integer under the state's rounding mode. The
// result is nil, with INVALID_OPERATION raised, for NaNs and infinities.
func (x *DynFloat) ToBigInt(st *State) *big.Int {
	return toBigIntBits(x.format, x.bits, st)
}

// ToRat returns the exact rational value of a finite x, or nil for NaNs
// and infinities.
func (x *DynFloat) ToRat() *big.Rat {
	d := decode(x.format, x.bits)
	if !d.class.IsFinite() {
		return nil
	}
	if d.class.IsZero() {
		return new(big.Rat)
	}
	r := new(big.Rat)
	if d.exp >= 0 {
		r.SetInt(new(big.Int).Lsh(d.mant, uint(d.exp)))
	} else {
		r.SetFrac(d.mant, new(big.Int).Lsh(bigOne, uint(-d.exp)))
	}
	if d.sign == Negative {
		r.Neg(r)
	}
	return r
}
