// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import "encoding/binary"

// Little-endian byte access for both storage types, matching the byte
// order of serialized tensor data.

// F16FromLEBytes reads an F16 pattern from the first two bytes of b.
func F16FromLEBytes(b []byte) F16 {
	return F16(binary.LittleEndian.Uint16(b))
}

// PutLEBytes stores the raw pattern into the first two bytes of b.
func (f F16) PutLEBytes(b []byte) {
	binary.LittleEndian.PutUint16(b, uint16(f))
}

// BF16FromLEBytes reads a BF16 pattern from the first two bytes of b.
func BF16FromLEBytes(b []byte) BF16 {
	return BF16(binary.LittleEndian.Uint16(b))
}

// PutLEBytes stores the raw pattern into the first two bytes of b.
func (f BF16) PutLEBytes(b []byte) {
	binary.LittleEndian.PutUint16(b, uint16(f))
}
