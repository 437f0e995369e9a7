package softfloat

import "math/big"

// canonicalNaNBits builds the platform's preferred quiet NaN in the given
// format.
func canonicalNaNBits(f Format, pl *Platform) *big.Int {
	mant := new(big.Int)
	if pl.CanonicalNaNMantissaRest && f.mantissaWidth > 2 {
		mant.Set(onesMask(f.mantissaWidth - 2))
	}
	if pl.CanonicalNaNMantissaSecondMSB && f.mantissaWidth > 1 {
		mant.SetBit(mant, f.mantissaWidth-2, 1)
	}
	if pl.CanonicalNaNMantissaMSB {
		mant.SetBit(mant, f.mantissaWidth-1, 1)
	}
	return packRaw(f, pl.CanonicalNaNSign, f.InfinityBiasedExponent(), mant)
}

// quietedNaNBits re-encodes an input NaN with the quiet bit forced set,
// keeping its sign and payload.
func quietedNaNBits(f Format, d decoded) *big.Int {
	mant := new(big.Int).Set(d.mant)
	mant.SetBit(mant, f.mantissaWidth-1, 1)
	return packRaw(f, d.sign, f.InfinityBiasedExponent(), mant)
}

// raiseIfSignaling sets INVALID_OPERATION when any operand is a
// signalling NaN. Every kernel calls this exactly once on its NaN path.
func raiseIfSignaling(st *State, operands ...decoded) {
	for _, d := range operands {
		if d.class == ClassSignalingNaN {
			raise(st, FlagInvalidOperation)
			return
		}
	}
}

// selectNaN scans candidates in order and returns the index of the NaN to
// propagate, or -1 for the canonical NaN. With preferSNaN set, a
// signalling candidate wins over the positional order.
func selectNaN(preferSNaN bool, candidates ...decoded) int {
	if preferSNaN {
		for i, d := range candidates {
			if d.class == ClassSignalingNaN {
				return i
			}
		}
	}
	for i, d := range candidates {
		if d.isNaN() {
			return i
		}
	}
	return -1
}

// propagateUnaryNaN resolves the NaN result of a one-operand kernel.
func propagateUnaryNaN(f Format, pl *Platform, mode UnaryNaNPropagationMode, a decoded, st *State) *big.Int {
	raiseIfSignaling(st, a)
	if mode == UnaryFirst {
		return quietedNaNBits(f, a)
	}
	return canonicalNaNBits(f, pl)
}

// propagateBinaryNaN resolves the NaN result of a two-operand kernel.
// At least one operand must be a NaN.
func propagateBinaryNaN(f Format, pl *Platform, a, b decoded, st *State) *big.Int {
	raiseIfSignaling(st, a, b)
	var idx int
	switch pl.StdBinOpsNaNPropagation {
	case BinaryFirstSecond:
		idx = selectNaN(false, a, b)
	case BinarySecondFirst:
		idx = selectNaN(false, b, a)
		if idx >= 0 {
			idx = 1 - idx
		}
	case BinaryFirstSecondPreferringSNaN:
		idx = selectNaN(true, a, b)
	case BinarySecondFirstPreferringSNaN:
		idx = selectNaN(true, b, a)
		if idx >= 0 {
			idx = 1 - idx
		}
	default:
		idx = -1
	}
	switch idx {
	case 0:
		return quietedNaNBits(f, a)
	case 1:
		return quietedNaNBits(f, b)
	}
	return canonicalNaNBits(f, pl)
}

// ternaryNaNOrder maps a ternary mode to its scan order over (a, b, c)
// and whether signalling operands take precedence.
func ternaryNaNOrder(mode TernaryNaNPropagationMode) (order [3]int, preferSNaN, canonical bool) {
	switch mode {
	case TernaryFirstSecondThird:
		return [3]int{0, 1, 2}, false, false
	case TernaryFirstThirdSecond:
		return [3]int{0, 2, 1}, false, false
	case TernarySecondFirstThird:
		return [3]int{1, 0, 2}, false, false
	case TernarySecondThirdFirst:
		return [3]int{1, 2, 0}, false, false
	case TernaryThirdFirstSecond:
		return [3]int{2, 0, 1}, false, false
	case TernaryThirdSecondFirst:
		return [3]int{2, 1, 0}, false, false
	case TernaryFirstSecondThirdPreferringSNaN:
		return [3]int{0, 1, 2}, true, false
	case TernaryFirstThirdSecondPreferringSNaN:
		return [3]int{0, 2, 1}, true, false
	case TernarySecondFirstThirdPreferringSNaN:
		return [3]int{1, 0, 2}, true, false
	case TernarySecondThirdFirstPreferringSNaN:
		return [3]int{1, 2, 0}, true, false
	case TernaryThirdFirstSecondPreferringSNaN:
		return [3]int{2, 0, 1}, true, false
	case TernaryThirdSecondFirstPreferringSNaN:
		return [3]int{2, 1, 0}, true, false
	}
	return [3]int{}, false, true
}

// propagateTernaryNaN resolves the NaN result of fused multiply-add.
// At least one operand must be a NaN.
func propagateTernaryNaN(f Format, pl *Platform, a, b, c decoded, st *State) *big.Int {
	raiseIfSignaling(st, a, b, c)
	order, preferSNaN, canonical := ternaryNaNOrder(pl.FMANaNPropagation)
	if canonical {
		return canonicalNaNBits(f, pl)
	}
	operands := [3]decoded{a, b, c}
	scanned := [3]decoded{operands[order[0]], operands[order[1]], operands[order[2]]}
	idx := selectNaN(preferSNaN, scanned[0], scanned[1], scanned[2])
	if idx < 0 {
		return canonicalNaNBits(f, pl)
	}
	return quietedNaNBits(f, scanned[idx])
}

// convertNaNBits carries a NaN across a format conversion. The payload is
// aligned at its most significant fraction bits when the policy retains
// it; the quiet bit is always forced set in the destination.
func convertNaNBits(src, dst Format, pl *Platform, d decoded, st *State) *big.Int {
	raiseIfSignaling(st, d)
	if pl.ConversionNaNPropagation == ConversionAlwaysCanonical {
		return canonicalNaNBits(dst, pl)
	}
	payload := new(big.Int).Set(d.mant)
	if dst.mantissaWidth >= src.mantissaWidth {
		payload.Lsh(payload, uint(dst.mantissaWidth-src.mantissaWidth))
	} else {
		payload.Rsh(payload, uint(src.mantissaWidth-dst.mantissaWidth))
	}
	payload.SetBit(payload, dst.mantissaWidth-1, 1)
	return packRaw(dst, d.sign, dst.InfinityBiasedExponent(), payload)
}
