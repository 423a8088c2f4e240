// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16_test

import (
	"fmt"

	"github.com/nlpodyssey/float16"
)

func ExampleF16FromFloat32() {
	f := float16.F16FromFloat32(3.14159)
	fmt.Printf("%s (bits %#04x)\n", f, f.Bits())

	// Output: 3.140625 (bits 0x4248)
}

func ExampleBF16FromFloat32() {
	f := float16.BF16FromFloat32(1.5)
	fmt.Printf("%s (bits %#04x)\n", f, f.Bits())

	// Output: 1.5 (bits 0x3fc0)
}

func ExampleF16_Float32() {
	f := float16.F16Max
	fmt.Println(f.Float32())

	// Output: 65504
}
