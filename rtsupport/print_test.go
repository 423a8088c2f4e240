// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtsupport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFprintF16(t *testing.T) {
	testCases := []struct {
		bits uint16
		want string
	}{
		{0x0000, "0"},
		{0x8000, "-0"},
		{0x3c00, "1"},
		{0x4248, "3.140625"},
		{0x7c00, "+Inf"},
		{0xfc00, "-Inf"},
		{0x7e00, "NaN"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			var buf bytes.Buffer
			FprintF16(&buf, tc.bits)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestFprintBF16(t *testing.T) {
	testCases := []struct {
		bits uint16
		want string
	}{
		{0x0000, "0"},
		{0x3f80, "1"},
		{0x3fc0, "1.5"},
		{0x4049, "3.140625"},
		{0xff80, "-Inf"},
		{0x7fc0, "NaN"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			var buf bytes.Buffer
			FprintBF16(&buf, tc.bits)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func ExamplePrintF16() {
	PrintF16(0x4248)

	// Output: 3.140625
}

func ExamplePrintBF16() {
	PrintBF16(0x3fc0)

	// Output: 1.5
}
