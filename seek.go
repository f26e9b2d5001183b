// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"io"

	"github.com/charlievieth/utext/internal/bytealg"
	"github.com/charlievieth/utext/internal/codec"
)

// Seek returns the byte position in text that is offset code points from
// the position selected by whence: the start of text (io.SeekStart), pos
// (io.SeekCurrent) or the end of text (io.SeekEnd). A negative offset
// moves backwards. The result is clamped to [0, len(text)] and an invalid
// whence returns pos unchanged.
//
// A malformed sequence counts as a single code point.
func Seek(text []byte, pos, offset, whence int) int {
	switch {
	case pos < 0:
		pos = 0
	case pos > len(text):
		pos = len(text)
	}
	switch whence {
	case io.SeekStart:
		pos = 0
	case io.SeekCurrent:
	case io.SeekEnd:
		pos = len(text)
	default:
		return pos
	}
	for ; offset > 0 && pos < len(text); offset-- {
		if text[pos] < codec.RuneSelf {
			pos++
			continue
		}
		_, n := codec.Decode(text[pos:])
		pos += n
	}
	for ; offset < 0 && pos > 0; offset++ {
		_, n := codec.DecodeLast(text[:pos])
		pos -= n
	}
	return pos
}

// Len returns the number of code points in text. A malformed sequence
// counts as a single code point.
func Len(text []byte) int {
	if bytealg.IsASCII(text) {
		return len(text)
	}
	return codec.Count(text)
}
