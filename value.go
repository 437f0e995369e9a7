package softfloat

import (
	"fmt"
	"math/big"
)

// decoded is the unpacked form every kernel works on. For finite nonzero
// values the magnitude is mant * 2^exp with mant > 0; for NaNs mant holds
// the raw mantissa field (the payload including the quiet bit).
type decoded struct {
	class FloatClass
	sign  Sign
	exp   int
	mant  *big.Int
}

func (d decoded) isNaN() bool {
	return d.class.IsNaN()
}

// decode unpacks a bit pattern. bits must already be validated against
// the format width.
func decode(f Format, bits *big.Int) decoded {
	sign := Positive
	if f.signBit && bits.Bit(f.SignFieldShift()) == 1 {
		sign = Negative
	}
	rawExp := new(big.Int).Rsh(bits, uint(f.mantissaWidth))
	rawExp.And(rawExp, onesMask(f.exponentWidth))
	rawMant := new(big.Int).And(bits, f.MantissaFieldMask())

	e := int(rawExp.Int64())
	frac := f.FractionWidth()
	switch {
	case e == f.InfinityBiasedExponent():
		if rawMant.Sign() == 0 {
			if sign == Negative {
				return decoded{class: ClassNegativeInfinity, sign: sign}
			}
			return decoded{class: ClassPositiveInfinity, sign: sign}
		}
		class := ClassSignalingNaN
		if rawMant.Bit(f.mantissaWidth-1) == 1 {
			class = ClassQuietNaN
		}
		return decoded{class: class, sign: sign, mant: rawMant}
	case e == 0:
		if rawMant.Sign() == 0 {
			return decoded{class: zeroClass(sign), sign: sign}
		}
		return decoded{
			class: subnormalClass(sign),
			sign:  sign,
			exp:   f.MinNormalExponent() - frac,
			mant:  rawMant,
		}
	}
	mant := new(big.Int).Set(rawMant)
	if f.implicitLeadingBit {
		mant.SetBit(mant, f.mantissaWidth, 1)
	} else if mant.Sign() == 0 {
		// Explicit-leading-bit format with a clear significand: the
		// value is zero regardless of the exponent field.
		return decoded{class: zeroClass(sign), sign: sign}
	}
	return decoded{
		class: normalClass(sign),
		sign:  sign,
		exp:   e - f.Bias() - frac,
		mant:  mant,
	}
}

func zeroClass(sign Sign) FloatClass {
	if sign == Negative {
		return ClassNegativeZero
	}
	return ClassPositiveZero
}

func subnormalClass(sign Sign) FloatClass {
	if sign == Negative {
		return ClassNegativeSubnormal
	}
	return ClassPositiveSubnormal
}

func normalClass(sign Sign) FloatClass {
	if sign == Negative {
		return ClassNegativeNormal
	}
	return ClassPositiveNormal
}

// packRaw assembles fields without validation. Negative signs on formats
// without a sign bit are dropped.
func packRaw(f Format, sign Sign, rawExp int, rawMant *big.Int) *big.Int {
	bits := new(big.Int).Set(rawMant)
	e := new(big.Int).Lsh(big.NewInt(int64(rawExp)), uint(f.mantissaWidth))
	bits.Or(bits, e)
	if sign == Negative && f.signBit {
		bits.SetBit(bits, f.SignFieldShift(), 1)
	}
	return bits
}

// zeroBits returns a signed zero. For formats without a sign bit the
// result is always +0.
func zeroBits(f Format, sign Sign) *big.Int {
	return packRaw(f, sign, 0, new(big.Int))
}

// infinityBits returns a signed infinity: the all-ones exponent field with
// a zero mantissa field, the pattern decode classifies as infinite in
// every format.
func infinityBits(f Format, sign Sign) *big.Int {
	return packRaw(f, sign, f.InfinityBiasedExponent(), new(big.Int))
}

// maxFiniteBits returns the largest finite value with the given sign.
func maxFiniteBits(f Format, sign Sign) *big.Int {
	return packRaw(f, sign, f.MaxBiasedExponent(), f.MantissaFieldMask())
}

// Split extracts (sign, raw exponent field, raw mantissa field) from a
// bit pattern of exactly the format's width.
func (f Format) Split(bits *big.Int) (Sign, *big.Int, *big.Int, error) {
	if err := f.checkBits("Split", bits); err != nil {
		return Positive, nil, nil, err
	}
	sign := Positive
	if f.signBit && bits.Bit(f.SignFieldShift()) == 1 {
		sign = Negative
	}
	rawExp := new(big.Int).Rsh(bits, uint(f.mantissaWidth))
	rawExp.And(rawExp, onesMask(f.exponentWidth))
	rawMant := new(big.Int).And(bits, f.MantissaFieldMask())
	return sign, rawExp, rawMant, nil
}

// Pack is the inverse of Split. It refuses triples the format cannot
// represent: a negative sign without a sign bit, or fields wider than
// their widths.
func (f Format) Pack(sign Sign, rawExp, rawMant *big.Int) (*big.Int, error) {
	if sign == Negative && !f.signBit {
		return nil, newError("Pack", ErrNoSignBit, "format %v has no sign bit", f)
	}
	if rawExp.Sign() < 0 || rawExp.BitLen() > f.exponentWidth {
		return nil, newError("Pack", ErrFieldRange, "exponent field %v does not fit %d bits", rawExp, f.exponentWidth)
	}
	if rawMant.Sign() < 0 || rawMant.BitLen() > f.mantissaWidth {
		return nil, newError("Pack", ErrFieldRange, "mantissa field %v does not fit %d bits", rawMant, f.mantissaWidth)
	}
	return packRaw(f, sign, int(rawExp.Int64()), rawMant), nil
}

// Classify returns the IEEE 754 class of a bit pattern.
func (f Format) Classify(bits *big.Int) (FloatClass, error) {
	if err := f.checkBits("Classify", bits); err != nil {
		return ClassPositiveZero, err
	}
	return decode(f, bits).class, nil
}

func (f Format) checkBits(op string, bits *big.Int) error {
	if bits.Sign() < 0 || bits.BitLen() > f.Width() {
		return newError(op, ErrWidthMismatch, "bit pattern does not fit %d bits", f.Width())
	}
	return nil
}

// DynFloat is a floating-point value of any format: a bit pattern paired
// with its format descriptor and platform policy.
type DynFloat struct {
	bits     *big.Int
	format   Format
	platform *Platform
}

// NewDynFloat wraps a bit pattern in the given format with the default
// platform policy.
func NewDynFloat(bits *big.Int, format Format) (*DynFloat, error) {
	return NewDynFloatWithPlatform(bits, format, nil)
}

// NewDynFloatWithPlatform wraps a bit pattern with an explicit platform
// policy. A nil platform means the default.
func NewDynFloatWithPlatform(bits *big.Int, format Format, platform *Platform) (*DynFloat, error) {
	if err := format.checkBits("NewDynFloat", bits); err != nil {
		return nil, err
	}
	return &DynFloat{bits: new(big.Int).Set(bits), format: format, platform: platform}, nil
}

// dynFromBits wraps kernel output; bits are trusted.
func dynFromBits(bits *big.Int, format Format, platform *Platform) *DynFloat {
	return &DynFloat{bits: bits, format: format, platform: platform}
}

// Bits returns a copy of the bit pattern.
func (x *DynFloat) Bits() *big.Int {
	return new(big.Int).Set(x.bits)
}

// Format returns the format descriptor.
func (x *DynFloat) Format() Format {
	return x.format
}

// Platform returns the platform policy, nil meaning the default.
func (x *DynFloat) Platform() *Platform {
	return x.platform
}

// WithPlatform returns the same value under a different platform policy.
func (x *DynFloat) WithPlatform(pl *Platform) *DynFloat {
	return &DynFloat{bits: new(big.Int).Set(x.bits), format: x.format, platform: pl}
}

// Class returns the IEEE 754 classification.
func (x *DynFloat) Class() FloatClass {
	return decode(x.format, x.bits).class
}

// IsNaN returns true for quiet and signalling NaNs.
func (x *DynFloat) IsNaN() bool {
	return x.Class().IsNaN()
}

// IsInfinity returns true for either infinity.
func (x *DynFloat) IsInfinity() bool {
	return x.Class().IsInfinity()
}

// IsZero returns true for either zero.
func (x *DynFloat) IsZero() bool {
	return x.Class().IsZero()
}

// IsFinite returns true for zero, subnormal, and normal values.
func (x *DynFloat) IsFinite() bool {
	return x.Class().IsFinite()
}

// Signbit reports whether the sign bit is set.
func (x *DynFloat) Signbit() bool {
	return x.format.signBit && x.bits.Bit(x.format.SignFieldShift()) == 1
}

// Sign returns the sign encoded in the bit pattern.
func (x *DynFloat) Sign() Sign {
	if x.Signbit() {
		return Negative
	}
	return Positive
}

// Neg returns the value with the sign bit inverted. For formats without a
// sign bit there is nothing to invert and the value is returned as is.
func (x *DynFloat) Neg() *DynFloat {
	bits := new(big.Int).Set(x.bits)
	if x.format.signBit {
		shift := x.format.SignFieldShift()
		bits.SetBit(bits, shift, 1-bits.Bit(shift))
	}
	return dynFromBits(bits, x.format, x.platform)
}

// Abs returns the value with the sign bit cleared.
func (x *DynFloat) Abs() *DynFloat {
	bits := new(big.Int).Set(x.bits)
	if x.format.signBit {
		bits.SetBit(bits, x.format.SignFieldShift(), 0)
	}
	return dynFromBits(bits, x.format, x.platform)
}

// CopySign returns the magnitude of x with the sign of y.
func (x *DynFloat) CopySign(y *DynFloat) *DynFloat {
	bits := new(big.Int).Set(x.bits)
	if x.format.signBit {
		b := uint(0)
		if y.Signbit() {
			b = 1
		}
		bits.SetBit(bits, x.format.SignFieldShift(), b)
	}
	return dynFromBits(bits, x.format, x.platform)
}

func (x *DynFloat) String() string {
	digits := (x.format.Width() + 3) / 4
	return fmt.Sprintf("%s(0x%0*x)", x.format, digits, x.bits)
}
