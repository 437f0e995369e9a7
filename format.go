package softfloat

import (
	"fmt"
	"math/big"
)

// Format is an immutable binary interchange format descriptor. All field
// offsets and masks derive from the four attributes; two formats compare
// equal iff all four attributes match.
type Format struct {
	exponentWidth      int
	mantissaWidth      int
	implicitLeadingBit bool
	signBit            bool
}

// Standard binary interchange formats.
var (
	Binary16  = Format{5, 10, true, true}
	Binary32  = Format{8, 23, true, true}
	Binary64  = Format{11, 52, true, true}
	Binary128 = Format{15, 112, true, true}
)

// NewFormat constructs a descriptor with an implicit leading bit and a
// sign bit, the layout every standard interchange format uses.
func NewFormat(exponentWidth, mantissaWidth int) (Format, error) {
	return NewFormatFull(exponentWidth, mantissaWidth, true, true)
}

// NewFormatFull constructs a descriptor from all four attributes.
// The exponent field needs at least 2 bits and the mantissa field at
// least 1.
func NewFormatFull(exponentWidth, mantissaWidth int, implicitLeadingBit, signBit bool) (Format, error) {
	if exponentWidth < 2 {
		return Format{}, newError("NewFormat", ErrBadFormat, "exponent width %d < 2", exponentWidth)
	}
	if mantissaWidth < 1 {
		return Format{}, newError("NewFormat", ErrBadFormat, "mantissa width %d < 1", mantissaWidth)
	}
	return Format{exponentWidth, mantissaWidth, implicitLeadingBit, signBit}, nil
}

// StandardFormat returns the descriptor of the width-bit standard binary
// interchange format: binary16/32/64/128, or for widths over 128 that are
// multiples of 32 the extended format with exponent width
// round(4*log2(width)) - 13.
func StandardFormat(width int) (Format, error) {
	switch width {
	case 16:
		return Binary16, nil
	case 32:
		return Binary32, nil
	case 64:
		return Binary64, nil
	case 128:
		return Binary128, nil
	}
	if width <= 128 || width%32 != 0 {
		return Format{}, newError("StandardFormat", ErrNoStandardFormat, "no standard %d-bit format", width)
	}
	e := roundedLog2Scaled4(width) - 13
	return Format{e, width - e - 1, true, true}, nil
}

// roundedLog2Scaled4 computes round(4*log2(w)) exactly in integers.
// round(log2(w^4)) = n with 2^(2n-1) <= w^8 < 2^(2n+1); w^8 is never an
// odd power of two, so the tie case cannot arise.
func roundedLog2Scaled4(w int) int {
	w4 := new(big.Int).Exp(big.NewInt(int64(w)), big.NewInt(4), nil)
	k := w4.BitLen() - 1
	w8 := new(big.Int).Mul(w4, w4)
	if w8.BitLen()-1 >= 2*k+1 {
		return k + 1
	}
	return k
}

// IsStandard reports whether the descriptor is one of the standard
// interchange formats for its width.
func (f Format) IsStandard() bool {
	std, err := StandardFormat(f.Width())
	return err == nil && std == f
}

// ExponentWidth returns the number of bits in the exponent field.
func (f Format) ExponentWidth() int {
	return f.exponentWidth
}

// MantissaWidth returns the number of bits in the mantissa field. It
// excludes any implicit leading bit.
func (f Format) MantissaWidth() int {
	return f.mantissaWidth
}

// HasImplicitLeadingBit reports whether normal values carry their leading
// significand bit implicitly.
func (f Format) HasImplicitLeadingBit() bool {
	return f.implicitLeadingBit
}

// HasSignBit reports whether the format has a sign bit. A format without
// one represents no negative values and no negative zero.
func (f Format) HasSignBit() bool {
	return f.signBit
}

// Width returns the total encoding width in bits.
func (f Format) Width() int {
	w := f.exponentWidth + f.mantissaWidth
	if f.signBit {
		w++
	}
	return w
}

// FractionWidth returns the number of explicit fraction bits to the right
// of the (possibly implicit) leading significand bit.
func (f Format) FractionWidth() int {
	if f.implicitLeadingBit {
		return f.mantissaWidth
	}
	return f.mantissaWidth - 1
}

// SignFieldShift returns the bit position of the sign field.
func (f Format) SignFieldShift() int {
	return f.exponentWidth + f.mantissaWidth
}

// ExponentFieldShift returns the bit position of the exponent field.
func (f Format) ExponentFieldShift() int {
	return f.mantissaWidth
}

// MantissaFieldShift returns the bit position of the mantissa field.
func (f Format) MantissaFieldShift() int {
	return 0
}

// SignFieldMask returns the sign-field mask. Zero for formats without a
// sign bit.
func (f Format) SignFieldMask() *big.Int {
	if !f.signBit {
		return new(big.Int)
	}
	return new(big.Int).Lsh(bigOne, uint(f.SignFieldShift()))
}

// ExponentFieldMask returns the exponent-field mask.
func (f Format) ExponentFieldMask() *big.Int {
	m := onesMask(f.exponentWidth)
	return m.Lsh(m, uint(f.ExponentFieldShift()))
}

// MantissaFieldMask returns the mantissa-field mask.
func (f Format) MantissaFieldMask() *big.Int {
	return onesMask(f.mantissaWidth)
}

// Bias returns the exponent bias, 2^(E-1) - 1.
func (f Format) Bias() int {
	return 1<<(f.exponentWidth-1) - 1
}

// MaxBiasedExponent returns the largest exponent-field value of a finite
// value, 2^E - 2.
func (f Format) MaxBiasedExponent() int {
	return 1<<f.exponentWidth - 2
}

// InfinityBiasedExponent returns the exponent-field value of infinities
// and NaNs, 2^E - 1.
func (f Format) InfinityBiasedExponent() int {
	return 1<<f.exponentWidth - 1
}

// MinNormalExponent returns the unbiased exponent of the smallest normal,
// 1 - bias.
func (f Format) MinNormalExponent() int {
	return 1 - f.Bias()
}

// MaxExponent returns the unbiased exponent of the largest finite value.
func (f Format) MaxExponent() int {
	return f.MaxBiasedExponent() - f.Bias()
}

func (f Format) String() string {
	if f.IsStandard() {
		return fmt.Sprintf("binary%d", f.Width())
	}
	return fmt.Sprintf("Format(E=%d, M=%d, implicit=%t, sign=%t)",
		f.exponentWidth, f.mantissaWidth, f.implicitLeadingBit, f.signBit)
}

var bigOne = big.NewInt(1)

// onesMask returns a fresh big.Int holding n one bits.
func onesMask(n int) *big.Int {
	m := new(big.Int).Lsh(bigOne, uint(n))
	return m.Sub(m, bigOne)
}
