// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import "math"

// BF16 is a 16-bit brain floating-point value (1 sign bit, 8 exponent
// bits with bias 127, 7 mantissa bits), represented as raw bits.
//
// BF16 shares binary32's exponent width and bias: a BF16 pattern is
// exactly the top 16 bits of the binary32 pattern for the same value.
type BF16 uint16

// Canonical BF16 bit patterns.
const (
	BF16Zero    BF16 = 0x0000
	BF16NegZero BF16 = 0x8000
	BF16One     BF16 = 0x3f80
	BF16Inf     BF16 = 0x7f80
	BF16NegInf  BF16 = 0xff80
	BF16QNaN    BF16 = 0x7fc0
	BF16NegQNaN BF16 = 0xffc0
	BF16Max     BF16 = 0x7f7f // largest finite value, ~3.39e38
)

const (
	bf16MantissaBits = 7
	bf16SignMask     = 0x8000
	bf16AbsMask      = 0x7fff
	bf16ExpMask      = 0xff << bf16MantissaBits

	// A BF16 pattern occupies the high half of a binary32 pattern.
	bf16BitDiff = 16
)

// BF16FromFloat32 converts a binary32 value to brain floating point,
// rounding to nearest with ties to even. NaN inputs yield BF16QNaN or
// BF16NegQNaN according to their sign.
//
// Because the exponent field keeps binary32's width and position, the
// conversion is a single biased add and shift: carries out of the
// mantissa propagate into the exponent field, which also makes finite
// overflow saturate to infinity with no separate branch.
func BF16FromFloat32(value float32) BF16 {
	u := math.Float32bits(value)
	if u&^uint32(f32SignMask) > f32ExpMask {
		if u&f32SignMask != 0 {
			return BF16NegQNaN
		}
		return BF16QNaN
	}
	lsb := (u >> bf16BitDiff) & 1
	u += 0x7fff + lsb
	return BF16(u >> bf16BitDiff)
}

// BF16FromBits returns the BF16 value with the given raw bit pattern.
// No conversion is performed.
func BF16FromBits(bits uint16) BF16 {
	return BF16(bits)
}

// Bits returns the raw bit pattern.
func (f BF16) Bits() uint16 {
	return uint16(f)
}

// Float32 expands the value to binary32 by zero-extending the pattern
// into the high 16 bits. Always exact; no rounding, no branching.
func (f BF16) Float32() float32 {
	return math.Float32frombits(uint32(f) << bf16BitDiff)
}

// IsNaN reports whether f is a "not-a-number" value.
func (f BF16) IsNaN() bool {
	return f&bf16AbsMask > bf16ExpMask
}

// IsInf reports whether f is an infinity of either sign.
func (f BF16) IsInf() bool {
	return f&bf16AbsMask == bf16ExpMask
}

// Signbit reports whether the sign bit is set.
func (f BF16) Signbit() bool {
	return f&bf16SignMask != 0
}

// String renders the decoded numeric value in decimal form.
func (f BF16) String() string {
	return formatFloat32(f.Float32())
}
