package softfloat

import "math/big"

// splitAt splits mant into the bits at and above position shift (kept),
// the bit just below (guard), and whether anything below that is set
// (tail). A non-positive shift means the value is exact at the target
// quantum; sticky carries residue the caller already discarded.
func splitAt(mant *big.Int, shift int, sticky bool) (kept *big.Int, guard, tail bool) {
	if shift <= 0 {
		return new(big.Int).Lsh(mant, uint(-shift)), false, sticky
	}
	guard = mant.Bit(shift-1) == 1
	tail = sticky
	if !tail && shift > 1 {
		// The mask need not extend past the mantissa itself; shifts far
		// beyond it would otherwise allocate for nothing.
		width := shift - 1
		if width > mant.BitLen() {
			width = mant.BitLen()
		}
		low := new(big.Int).And(mant, onesMask(width))
		tail = low.Sign() != 0
	}
	return new(big.Int).Rsh(mant, uint(shift)), guard, tail
}

// roundUp decides whether the kept magnitude is incremented, given the
// guard bit, the sticky tail, and the parity of the least significant
// kept bit.
func roundUp(mode RoundingMode, sign Sign, lsbOdd, guard, tail bool) bool {
	if !guard && !tail {
		return false
	}
	switch mode {
	case TiesToEven:
		return guard && (tail || lsbOdd)
	case TiesToAway:
		return guard
	case TowardZero:
		return false
	case TowardPositive:
		return sign == Positive
	case TowardNegative:
		return sign == Negative
	}
	return false
}

// overflowBits is the IEEE 754 overflow result: infinity when the mode
// rounds away from the representable range, the largest finite value
// otherwise.
func overflowBits(f Format, sign Sign, mode RoundingMode) *big.Int {
	away := false
	switch mode {
	case TiesToEven, TiesToAway:
		away = true
	case TowardPositive:
		away = sign == Positive
	case TowardNegative:
		away = sign == Negative
	}
	if away {
		return infinityBits(f, sign)
	}
	return maxFiniteBits(f, sign)
}

// encodeRounded packs a rounded magnitude kept * 2^q into the format.
// kept has at most fractionWidth+1 significant bits, or exactly
// fractionWidth+2 when rounding carried out of the significand.
func encodeRounded(f Format, sign Sign, kept *big.Int, q int) *big.Int {
	prec := f.FractionWidth() + 1
	if kept.BitLen() > prec {
		// Carry out of the significand: the low bit is zero.
		kept = new(big.Int).Rsh(kept, 1)
		q++
	}
	if kept.BitLen() < prec {
		// Subnormal: the exponent field is zero and q is already pinned
		// at the subnormal quantum.
		return packRaw(f, sign, 0, kept)
	}
	re := q + prec - 1
	mantField := new(big.Int).Set(kept)
	if f.implicitLeadingBit {
		mantField.SetBit(mantField, f.FractionWidth(), 0)
	}
	return packRaw(f, sign, re+f.Bias(), mantField)
}

// roundFinite rounds the exact magnitude mant * 2^exp (plus a sticky
// residue below it) into the format, raising OVERFLOW, UNDERFLOW, and
// INEXACT as required by the state's modes. This is the single rounding
// step shared by every kernel.
func roundFinite(f Format, pl *Platform, sign Sign, mant *big.Int, exp int, sticky bool, st *State) *big.Int {
	env := stateEnv(st)
	if mant.Sign() == 0 && !sticky {
		return zeroBits(f, sign)
	}
	if sign == Negative && !f.signBit {
		// Nothing negative is representable.
		raise(st, FlagInvalidOperation)
		return canonicalNaNBits(f, platformEnv(pl))
	}

	frac := f.FractionWidth()
	emin := f.MinNormalExponent()
	var eU int
	if mant.Sign() == 0 {
		// Pure residue: a nonzero value entirely below every quantum we
		// track. It behaves as an all-sticky tail.
		eU = emin - frac - 2
	} else {
		eU = exp + mant.BitLen() - 1
	}

	q := eU
	if q < emin {
		q = emin
	}
	q -= frac
	kept, guard, tail := splitAt(mant, q-exp, sticky)
	inexact := guard || tail
	if roundUp(env.Rounding, sign, kept.Bit(0) == 1, guard, tail) {
		kept.Add(kept, bigOne)
	}

	tiny := false
	if eU < emin {
		if env.Tininess == BeforeRounding {
			tiny = true
		} else {
			// Round once more as if the exponent range were unbounded
			// and test that result against the smallest normal.
			k2, g2, t2 := splitAt(mant, (eU-frac)-exp, sticky)
			if roundUp(env.Rounding, sign, k2.Bit(0) == 1, g2, t2) {
				k2.Add(k2, bigOne)
			}
			tiny = (eU-frac)+k2.BitLen()-1 < emin
		}
	}

	var result *big.Int
	switch {
	case kept.Sign() == 0:
		result = zeroBits(f, sign)
	case q+kept.BitLen()-1 > f.MaxExponent():
		raise(st, FlagOverflow|FlagInexact)
		return overflowBits(f, sign, env.Rounding)
	default:
		result = encodeRounded(f, sign, kept, q)
	}

	if inexact {
		raise(st, FlagInexact)
	}
	if tiny && (inexact || env.ExceptionHandling == DefaultSignalExactUnderflow) {
		raise(st, FlagUnderflow)
	}
	return result
}
