// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF16LEBytes(t *testing.T) {
	b := make([]byte, 2)
	F16One.PutLEBytes(b)
	assert.Equal(t, []byte{0x00, 0x3c}, b)
	assert.Equal(t, F16One, F16FromLEBytes(b))
}

func TestBF16LEBytes(t *testing.T) {
	b := make([]byte, 2)
	BF16One.PutLEBytes(b)
	assert.Equal(t, []byte{0x80, 0x3f}, b)
	assert.Equal(t, BF16One, BF16FromLEBytes(b))
}
