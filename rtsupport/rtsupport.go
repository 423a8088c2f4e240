// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rtsupport provides drop-in substitutes for compiler
// runtime-support routines that truncate wider floating point values
// to bfloat16, together with raw-bits print entry points for execution
// harnesses that only hold 16-bit patterns.
//
// Native toolchains emit the truncation routines (__truncsfbf2 and
// __truncdfbf2) as weak symbols, so a platform runtime library with
// real definitions overrides them at link time. Go has no weak
// linkage; the same effect is obtained through explicit registration:
// a platform runtime installs its own implementation with
// RegisterTruncSFBF2 or RegisterTruncDFBF2 during startup. The
// registration hooks are not synchronized and must not race with
// callers of the shims.
package rtsupport

import (
	"math"

	"github.com/nlpodyssey/float16"
)

var (
	truncSFBF2 = func(f float32) uint16 {
		return float16.BF16FromFloat32(f).Bits()
	}

	// The default double-precision shim narrows to binary32 first and
	// delegates to the single-precision shim, including any registered
	// replacement. The double rounding this incurs is the expected
	// behavior of dependent systems; do not "fix" it.
	truncDFBF2 = func(d float64) uint16 {
		return TruncSFBF2(float32(d))
	}
)

// TruncSFBF2 truncates a single-precision value to bfloat16, returning
// the raw 16-bit result pattern. It matches the semantics of the
// compiler runtime-support routine __truncsfbf2.
func TruncSFBF2(f float32) uint16 {
	return truncSFBF2(f)
}

// TruncDFBF2 truncates a double-precision value to bfloat16, returning
// the raw 16-bit result pattern. It matches the semantics of the
// compiler runtime-support routine __truncdfbf2.
func TruncDFBF2(d float64) uint16 {
	return truncDFBF2(d)
}

// RegisterTruncSFBF2 replaces the single-precision truncation routine,
// standing in for a stronger symbol definition supplied by a platform
// runtime. Call it during startup, before any shim use.
func RegisterTruncSFBF2(fn func(float32) uint16) {
	truncSFBF2 = fn
}

// RegisterTruncDFBF2 replaces the double-precision truncation routine.
// Call it during startup, before any shim use.
func RegisterTruncDFBF2(fn func(float64) uint16) {
	truncDFBF2 = fn
}

// FloatCarrier packs 16 result bits into the low bytes of a float32
// carrier, mirroring how bfloat16 results travel in the floating-point
// registers of targets whose calling convention passes the format
// there (little-endian register image). The remaining bytes are zero.
func FloatCarrier(bits uint16) float32 {
	return math.Float32frombits(uint32(bits))
}

// BitsFromCarrier recovers the 16 result bits from a float32 carrier.
func BitsFromCarrier(c float32) uint16 {
	return uint16(math.Float32bits(c))
}
