// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import "strconv"

// IEEE-754 binary32 layout: 1 sign bit, 8 exponent bits (bias 127),
// 23 mantissa bits. All raw bit access goes through math.Float32bits and
// math.Float32frombits, which reinterpret storage without changing it.
const (
	f32MantissaBits = 23
	f32Bias         = 127
	f32SignMask     = 1 << 31
	f32ExpMask      = 0xff << f32MantissaBits
)

// formatFloat32 renders a binary32 value in the shortest decimal form
// that parses back to the same value.
func formatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
