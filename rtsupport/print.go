// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtsupport

import (
	"fmt"
	"io"
	"os"

	"github.com/nlpodyssey/float16"
)

// FprintF16 reinterprets bits as a half-precision value and writes its
// decoded decimal value to w, with no additional formatting.
func FprintF16(w io.Writer, bits uint16) {
	fmt.Fprint(w, float16.F16FromBits(bits))
}

// FprintBF16 reinterprets bits as a brain floating-point value and
// writes its decoded decimal value to w, with no additional formatting.
func FprintBF16(w io.Writer, bits uint16) {
	fmt.Fprint(w, float16.BF16FromBits(bits))
}

// PrintF16 prints the half-precision value encoded by the raw pattern
// to standard output. It is meant to be invoked from generated or
// interpreted code that only holds raw bit patterns; interleaving with
// other writers to standard output is the caller's responsibility.
func PrintF16(bits uint16) {
	FprintF16(os.Stdout, bits)
}

// PrintBF16 prints the brain floating-point value encoded by the raw
// pattern to standard output. See PrintF16 for intended use.
func PrintBF16(bits uint16) {
	FprintBF16(os.Stdout, bits)
}
