// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package float16 implements bit-exact conversions between IEEE-754
// single-precision floating point values (binary32) and the two 16-bit
// reduced-precision formats common in machine-learning workloads:
// IEEE half precision (F16) and brain floating point (BF16).
//
// The package exists so programs using these narrow types can be
// evaluated on hosts without native hardware or runtime support for
// them. Every conversion is a pure, allocation-free function of its
// scalar input, defined for all bit patterns including NaN and
// infinity encodings; no conversion can fail.
//
// Conversion to binary32 is lossless for both formats. Conversion from
// binary32 rounds to nearest, ties to even; finite values too large
// for the target format saturate to infinity, and NaN payloads are
// canonicalized (only the sign of a NaN survives encoding).
package float16

import "math"

// F16 is a 16-bit half-precision floating-point value (IEEE-754
// binary16: 1 sign bit, 5 exponent bits with bias 15, 10 mantissa
// bits), represented as raw bits.
type F16 uint16

// Canonical F16 bit patterns.
const (
	F16Zero    F16 = 0x0000
	F16NegZero F16 = 0x8000
	F16One     F16 = 0x3c00
	F16Inf     F16 = 0x7c00
	F16NegInf  F16 = 0xfc00
	F16QNaN    F16 = 0x7e00
	F16Max     F16 = 0x7bff // largest finite value, 65504
)

const (
	f16Bias         = 15
	f16MantissaBits = 10
	f16SignMask     = 0x8000
	f16AbsMask      = 0x7fff
	f16ExpMask      = 0x1f << f16MantissaBits

	// Distance between the two formats' mantissa fields and between
	// their total widths.
	f16MantissaDiff = f32MantissaBits - f16MantissaBits
	f16BitDiff      = 16
)

// Binary32 bit patterns driving the encoder, all in the positive
// (sign-stripped) pattern space. The algorithm is adapted from Eigen's
// half-precision packing.
const (
	// Patterns at or above this bound (2^16) exceed the F16 exponent
	// range: infinities, NaNs and overflowing finite values.
	f16Overflow = (f32Bias + f16Bias + 1) << f32MantissaBits

	// Smallest binary32 pattern whose F16 rounding is a normal value
	// (2^-14). Anything below encodes to a subnormal or zero.
	f16NormMin = (f32Bias - f16Bias + 1) << f32MantissaBits

	// Magic value whose addition aligns the 10 mantissa bits of a
	// subnormal result at the bottom of the binary32 mantissa, letting
	// the host's round-to-nearest-even addition do the rounding.
	f16DenormMagic = (f32Bias - f16Bias + f16MantissaDiff + 1) << f32MantissaBits
)

// F16FromFloat32 converts a binary32 value to half precision, rounding
// to nearest with ties to even. Finite values beyond the F16 range
// saturate to F16Inf; NaN inputs yield F16QNaN with the input's sign.
func F16FromFloat32(value float32) F16 {
	u := math.Float32bits(value)
	sign := u & f32SignMask
	u ^= sign

	var bits uint16
	switch {
	case u >= f16Overflow:
		// All exponent bits set, or a finite value that rounds out of
		// range: NaN canonicalizes, everything else becomes infinity.
		if u > f32ExpMask {
			bits = uint16(F16QNaN)
		} else {
			bits = uint16(F16Inf)
		}
	case u < f16NormMin:
		// Subnormal or zero result. The magic addition shifts the
		// mantissa into place and rounds it in one binary32 add.
		v := math.Float32frombits(u) + math.Float32frombits(f16DenormMagic)
		bits = uint16(math.Float32bits(v) - f16DenormMagic)
	default:
		mantOdd := (u >> f16MantissaDiff) & 1
		// Exponent rebias plus rounding bias; equivalent to adding
		// ((15-127)<<23)+0xfff without overflowing the subtraction.
		u += 0xc8000fff
		// Ties round toward the even mantissa.
		u += mantOdd
		bits = uint16(u >> f16MantissaDiff)
	}
	return F16(bits | uint16(sign>>f16BitDiff))
}

// F16FromBits returns the F16 value with the given raw bit pattern.
// No conversion is performed.
func F16FromBits(bits uint16) F16 {
	return F16(bits)
}

// Bits returns the raw bit pattern.
func (f F16) Bits() uint16 {
	return uint16(f)
}

// Float32 expands the value to binary32. The expansion is exact: every
// half-precision value, subnormals and special values included, has a
// binary32 representation.
func (f F16) Float32() float32 {
	const (
		shiftedExp    = uint32(f16ExpMask) << f16MantissaDiff
		f16ExpAdjust  = (f32Bias - f16Bias) << f32MantissaBits
		subnormalBump = 1 << f32MantissaBits
	)

	u := uint32(f&f16AbsMask) << f16MantissaDiff
	exp := u & shiftedExp
	u += f16ExpAdjust
	switch exp {
	case shiftedExp:
		// Inf/NaN: a second adjustment pushes the exponent field to
		// all ones, keeping the mantissa bits as the NaN payload.
		u += f16ExpAdjust
	case 0:
		// Zero or subnormal: renormalize by undoing the encoder's
		// magic alignment.
		u += subnormalBump
		u = math.Float32bits(math.Float32frombits(u) - math.Float32frombits(f16NormMin))
	}
	return math.Float32frombits(u | uint32(f&f16SignMask)<<f16BitDiff)
}

// IsNaN reports whether f is a "not-a-number" value.
func (f F16) IsNaN() bool {
	return f&f16AbsMask > f16ExpMask
}

// IsInf reports whether f is an infinity of either sign.
func (f F16) IsInf() bool {
	return f&f16AbsMask == f16ExpMask
}

// Signbit reports whether the sign bit is set (f is negative or
// negative zero, or a NaN with the sign bit set).
func (f F16) Signbit() bool {
	return f&f16SignMask != 0
}

// String renders the decoded numeric value in decimal form. It never
// reproduces the raw bit pattern, only the number it encodes.
func (f F16) String() string {
	return formatFloat32(f.Float32())
}
