package softfloat

import "math/big"

// sqrtBits is the square-root kernel. The mantissa is scaled to an even
// exponent with spare precision, rooted by integer square root, and the
// remainder drives the sticky bit; inexact roots are irrational, so the
// rounding decision is always exact.
func sqrtBits(f Format, pl *Platform, a *big.Int, st *State) *big.Int {
	d := decode(f, a)
	if d.isNaN() {
		return propagateUnaryNaN(f, pl, pl.SqrtNaNPropagation, d, st)
	}
	if d.class.IsZero() {
		return new(big.Int).Set(a)
	}
	if d.sign == Negative {
		raise(st, FlagInvalidOperation)
		return canonicalNaNBits(f, pl)
	}
	if d.class.IsInfinity() {
		return new(big.Int).Set(a)
	}

	sh := 2 * (f.FractionWidth() + 4)
	if (d.exp-sh)&1 != 0 {
		sh++
	}
	m := new(big.Int).Lsh(d.mant, uint(sh))
	root := new(big.Int).Sqrt(m)
	exact := new(big.Int).Mul(root, root)
	sticky := exact.Cmp(m) != 0
	return roundFinite(f, pl, Positive, root, (d.exp-sh)/2, sticky, st)
}

// rsqrtBits is the reciprocal square-root kernel, correctly rounded: the
// truncated reciprocal root comes from isqrt(4^t / M), which equals
// floor(2^t / sqrt(M)) exactly, and the exactness test is an integer
// comparison.
func rsqrtBits(f Format, pl *Platform, a *big.Int, st *State) *big.Int {
	d := decode(f, a)
	if d.isNaN() {
		return propagateUnaryNaN(f, pl, pl.RSqrtNaNPropagation, d, st)
	}
	if d.class.IsZero() {
		raise(st, FlagDivisionByZero)
		return infinityBits(f, d.sign)
	}
	if d.sign == Negative {
		raise(st, FlagInvalidOperation)
		return canonicalNaNBits(f, pl)
	}
	if d.class.IsInfinity() {
		return zeroBits(f, Positive)
	}

	sh := 0
	if d.exp&1 != 0 {
		sh = 1
	}
	m := new(big.Int).Lsh(d.mant, uint(sh))
	k := (d.exp - sh) / 2
	t := f.FractionWidth() + 5 + (m.BitLen()+1)/2
	pow := new(big.Int).Lsh(bigOne, uint(2*t))
	root := new(big.Int).Sqrt(new(big.Int).Quo(pow, m))
	check := new(big.Int).Mul(root, root)
	check.Mul(check, m)
	sticky := check.Cmp(pow) != 0
	return roundFinite(f, pl, Positive, root, -t-k, sticky, st)
}

// Sqrt returns the square root of x.
func (x *DynFloat) Sqrt(st *State) *DynFloat {
	return dynFromBits(sqrtBits(x.format, x.policy(), x.bits, st), x.format, x.platform)
}

// RSqrt returns the reciprocal square root of x, correctly rounded.
func (x *DynFloat) RSqrt(st *State) *DynFloat {
	return dynFromBits(rsqrtBits(x.format, x.policy(), x.bits, st), x.format, x.platform)
}
