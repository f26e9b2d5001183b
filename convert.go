// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"unicode/utf16"

	"github.com/charlievieth/utext/internal/codec"
)

const (
	surrHighMin = 0xD800
	surrLowMin  = 0xDC00
	surrMax     = 0xE000
)

func isHighSurrogate(r rune) bool { return surrHighMin <= r && r < surrLowMin }
func isLowSurrogate(r rune) bool  { return surrLowMin <= r && r < surrMax }

// UTF8ToUTF16 converts src to UTF-16 and returns the number of code units
// written to dst. Malformed input is replaced with U+FFFD.
//
// If dst is nil UTF8ToUTF16 returns the number of code units required.
func UTF8ToUTF16(dst []uint16, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrInvalidData
	}
	if overlap(dst, src) {
		return 0, ErrOverlappingParameters
	}
	n := 0
	for i := 0; i < len(src); {
		r := rune(src[i])
		if r < codec.RuneSelf {
			i++
		} else {
			var size int
			r, size = codec.Decode(src[i:])
			i += size
		}
		if r > 0xFFFF {
			if dst != nil {
				if n+2 > len(dst) {
					return n, ErrNotEnoughSpace
				}
				r1, r2 := utf16.EncodeRune(r)
				dst[n] = uint16(r1)
				dst[n+1] = uint16(r2)
			}
			n += 2
			continue
		}
		if dst != nil {
			if n >= len(dst) {
				return n, ErrNotEnoughSpace
			}
			dst[n] = uint16(r)
		}
		n++
	}
	return n, nil
}

// UTF16ToUTF8 converts src to UTF-8 and returns the number of bytes
// written to dst. Unpaired surrogates are silently replaced with U+FFFD
// and are not reported as an error. This differs from UTF32ToUTF8, which
// replaces them too but returns ErrUnmatchedHighSurrogatePair or
// ErrUnmatchedLowSurrogatePair.
//
// If dst is nil UTF16ToUTF8 returns the number of bytes required.
func UTF16ToUTF8(dst []byte, src []uint16) (int, error) {
	if len(src) == 0 {
		return 0, ErrInvalidData
	}
	if overlap(dst, src) {
		return 0, ErrOverlappingParameters
	}
	n := 0
	for i := 0; i < len(src); i++ {
		r := rune(src[i])
		switch {
		case isHighSurrogate(r):
			if i+1 < len(src) && isLowSurrogate(rune(src[i+1])) {
				r = utf16.DecodeRune(r, rune(src[i+1]))
				i++
			} else {
				r = codec.RuneError
			}
		case isLowSurrogate(r):
			r = codec.RuneError
		}
		w, ok := encodeRune(dst, n, r)
		if !ok {
			return n, ErrNotEnoughSpace
		}
		n += w
	}
	return n, nil
}

// UTF8ToUTF32 decodes src and returns the number of code points written to
// dst. Malformed input is replaced with U+FFFD.
//
// If dst is nil UTF8ToUTF32 returns the number of code points required.
func UTF8ToUTF32(dst []rune, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrInvalidData
	}
	if overlap(dst, src) {
		return 0, ErrOverlappingParameters
	}
	if dst == nil {
		return codec.Count(src), nil
	}
	n := 0
	for i := 0; i < len(src); n++ {
		if n >= len(dst) {
			return n, ErrNotEnoughSpace
		}
		if c := src[i]; c < codec.RuneSelf {
			dst[n] = rune(c)
			i++
			continue
		}
		r, size := codec.Decode(src[i:])
		dst[n] = r
		i += size
	}
	return n, nil
}

// UTF32ToUTF8 encodes src and returns the number of bytes written to dst.
// A surrogate pair is combined into a single code point. An unpaired
// surrogate is replaced with U+FFFD and reported by
// ErrUnmatchedHighSurrogatePair or ErrUnmatchedLowSurrogatePair once the
// whole input is converted. Values above U+10FFFF are replaced with U+FFFD.
//
// If dst is nil UTF32ToUTF8 returns the number of bytes required.
func UTF32ToUTF8(dst []byte, src []rune) (int, error) {
	if len(src) == 0 {
		return 0, ErrInvalidData
	}
	if overlap(dst, src) {
		return 0, ErrOverlappingParameters
	}
	var err error
	n := 0
	for i := 0; i < len(src); i++ {
		r := src[i]
		switch {
		case isHighSurrogate(r):
			if i+1 < len(src) && isLowSurrogate(src[i+1]) {
				r = utf16.DecodeRune(r, src[i+1])
				i++
			} else {
				r = codec.RuneError
				if err == nil {
					err = ErrUnmatchedHighSurrogatePair
				}
			}
		case isLowSurrogate(r):
			r = codec.RuneError
			if err == nil {
				err = ErrUnmatchedLowSurrogatePair
			}
		}
		w, ok := encodeRune(dst, n, r)
		if !ok {
			return n, ErrNotEnoughSpace
		}
		n += w
	}
	return n, err
}

// encodeRune writes r to dst[n:]. A nil dst only measures r.
func encodeRune(dst []byte, n int, r rune) (int, bool) {
	if dst == nil {
		return codec.EncodedLen(r), true
	}
	if r < codec.RuneSelf && n < len(dst) {
		dst[n] = byte(r)
		return 1, true
	}
	w := codec.Encode(dst[n:], r)
	return w, w != 0
}
