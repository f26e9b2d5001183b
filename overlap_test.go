// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"bytes"
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// span is a half-open byte range of a shared buffer.
type span struct{ lo, hi int }

const overlapBufSize = 64

// overlapLayouts are the ways a dst and src range of one buffer can be
// placed. Offsets are multiples of 4 so that every code unit type is
// aligned.
var overlapLayouts = []struct {
	name     string
	dst, src span
	overlap  bool
}{
	{"DstStartsInsideSrc", span{16, 64}, span{0, 32}, true},
	{"SrcStartsInsideDst", span{0, 32}, span{16, 64}, true},
	{"DstInsideSrc", span{16, 32}, span{0, 64}, true},
	{"SrcInsideDst", span{0, 64}, span{16, 32}, true},
	{"Identical", span{0, 64}, span{0, 64}, true},
	{"Adjacent", span{32, 64}, span{0, 32}, false},
}

// view returns the bytes of buf in s as a slice of T.
func view[T any](buf []byte, s span) []T {
	var z T
	n := (s.hi - s.lo) / int(unsafe.Sizeof(z))
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[s.lo])), n)
}

// twoBufferFuncs are all public functions that read src and write dst.
var twoBufferFuncs = map[string]func(buf []byte, dst, src span) (int, error){
	"Normalize": func(buf []byte, dst, src span) (int, error) {
		return Normalize(view[byte](buf, dst), view[byte](buf, src), NFC)
	},
	"ToUpper": func(buf []byte, dst, src span) (int, error) {
		return ToUpper(view[byte](buf, dst), view[byte](buf, src), DefaultLocale)
	},
	"ToLower": func(buf []byte, dst, src span) (int, error) {
		return ToLower(view[byte](buf, dst), view[byte](buf, src), DefaultLocale)
	},
	"ToTitle": func(buf []byte, dst, src span) (int, error) {
		return ToTitle(view[byte](buf, dst), view[byte](buf, src), DefaultLocale)
	},
	"Casefold": func(buf []byte, dst, src span) (int, error) {
		return Casefold(view[byte](buf, dst), view[byte](buf, src), DefaultLocale)
	},
	"UTF8ToUTF16": func(buf []byte, dst, src span) (int, error) {
		return UTF8ToUTF16(view[uint16](buf, dst), view[byte](buf, src))
	},
	"UTF16ToUTF8": func(buf []byte, dst, src span) (int, error) {
		return UTF16ToUTF8(view[byte](buf, dst), view[uint16](buf, src))
	},
	"UTF8ToUTF32": func(buf []byte, dst, src span) (int, error) {
		return UTF8ToUTF32(view[rune](buf, dst), view[byte](buf, src))
	},
	"UTF32ToUTF8": func(buf []byte, dst, src span) (int, error) {
		return UTF32ToUTF8(view[byte](buf, dst), view[rune](buf, src))
	},
	"UTF8ToWide": func(buf []byte, dst, src span) (int, error) {
		return UTF8ToWide(view[Wide](buf, dst), view[byte](buf, src))
	},
	"WideToUTF8": func(buf []byte, dst, src span) (int, error) {
		return WideToUTF8(view[byte](buf, dst), view[Wide](buf, src))
	},
}

// newOverlapBuffer returns an 8 byte aligned buffer filled with text that
// is valid input as UTF-8, UTF-16 and UTF-32.
func newOverlapBuffer() []byte {
	backing := make([]uint64, overlapBufSize/8)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), overlapBufSize)
	for i := 0; i < len(buf); i += 4 {
		// Little and big endian: U+0041 in UTF-32, U+4100 or U+0041 in
		// UTF-16 and "A\x00\x00\x00" or "\x00\x00\x00A" in UTF-8.
		*(*uint32)(unsafe.Pointer(&buf[i])) = 'A'
	}
	return buf
}

func TestOverlap(t *testing.T) {
	for name, fn := range twoBufferFuncs {
		for _, layout := range overlapLayouts {
			buf := newOverlapBuffer()
			orig := bytes.Clone(buf)
			n, err := fn(buf, layout.dst, layout.src)
			if !layout.overlap {
				if errors.Is(err, ErrOverlappingParameters) {
					t.Errorf("%s/%s: non-overlapping buffers reported as overlapping", name, layout.name)
				}
				continue
			}
			if n != 0 || !errors.Is(err, ErrOverlappingParameters) {
				t.Errorf("%s/%s = %d, %v; want: 0, %v", name, layout.name, n, err, ErrOverlappingParameters)
			}
			if !bytes.Equal(buf, orig) {
				t.Errorf("%s/%s: modified the buffer: %q", name, layout.name, buf)
			}
		}
	}
}

func TestOverlapGeneric(t *testing.T) {
	b := make([]byte, 16)
	assert.True(t, overlap(b[:8], b[4:]))
	assert.True(t, overlap(b[4:], b[:8]))
	assert.True(t, overlap(b[4:8], b))
	assert.True(t, overlap(b, b[4:8]))
	assert.True(t, overlap(b, b))
	assert.False(t, overlap(b[:8], b[8:]))
	assert.False(t, overlap(b[8:], b[:8]))
	assert.False(t, overlap(b[:0], b))
	assert.False(t, overlap([]byte(nil), b))
	assert.False(t, overlap(make([]byte, 4), b))

	// Sizes are in bytes regardless of the element type.
	u := view[uint16](b, span{0, 16})
	assert.True(t, overlap(u[7:], b[15:]))
	assert.False(t, overlap(u[:4], b[8:]))
}
