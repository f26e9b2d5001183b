// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package codec reads and writes single UTF-8 encoded code points.
//
// Decoding differs from [unicode/utf8] in how malformed input is consumed:
// a sequence whose continuation bytes are all present but which encodes an
// overlong form, a surrogate or a value above [MaxRune] decodes to a single
// [RuneError] covering the whole sequence. A missing or invalid continuation
// byte ends the malformed unit before that byte so that it is decoded again
// by the next call.
//
// Encoding does not reject surrogates: they are written as ordinary three
// byte sequences even though Decode rejects the same bytes.
package codec

const (
	RuneError = '\uFFFD' // the "error" Rune or "Unicode replacement character"
	RuneSelf  = 0x80     // characters below RuneSelf are represented as themselves in a single byte.
	MaxRune   = '\U0010FFFF'
	UTFMax    = 4 // maximum number of bytes of an encoded code point

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

const (
	tx = 0b10000000
	t2 = 0b11000000
	t3 = 0b11100000
	t4 = 0b11110000

	maskx = 0b00111111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

// seqLen is the encoded length announced by a lead byte. Zero marks bytes
// that can never start a sequence (continuation bytes, 0xFE and 0xFF).
// The historic 5 and 6 byte forms are recognized so that they are consumed
// as a single malformed unit.
var seqLen = [256]uint8{
	//   1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x00-0x0F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x10-0x1F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x20-0x2F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x30-0x3F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x40-0x4F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x50-0x5F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x60-0x6F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x70-0x7F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x80-0x8F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x90-0x9F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xA0-0xAF
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xB0-0xBF
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xC0-0xCF
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xD0-0xDF
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 0xE0-0xEF
	4, 4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5, 6, 6, 0, 0, // 0xF0-0xFF
}

// minValue is the smallest code point that may be encoded with n bytes,
// anything below it is an overlong encoding.
var minValue = [5]rune{0, 0, rune1Max + 1, rune2Max + 1, rune3Max + 1}

// leadMask extracts the payload of a lead byte of an n byte sequence.
var leadMask = [5]byte{0, 0x7F, 0x1F, 0x0F, 0x07}

func isContinuation(b byte) bool { return b&0xC0 == tx }

// Decode unpacks the first UTF-8 encoding in p and returns the code point
// and its width in bytes. If p is empty it returns (RuneError, 0). Malformed
// input returns RuneError and the number of bytes that make up the
// malformed unit, which is always at least one.
func Decode(p []byte) (rune, int) {
	if len(p) == 0 {
		return RuneError, 0
	}
	p0 := p[0]
	if p0 < RuneSelf {
		return rune(p0), 1
	}
	n := int(seqLen[p0])
	if n == 0 {
		return RuneError, 1
	}
	for i := 1; i < n; i++ {
		if i >= len(p) || !isContinuation(p[i]) {
			return RuneError, i
		}
	}
	if n > UTFMax {
		return RuneError, n
	}
	r := rune(p0 & leadMask[n])
	for i := 1; i < n; i++ {
		r = r<<6 | rune(p[i]&maskx)
	}
	switch {
	case r < minValue[n]:
		return RuneError, n // overlong
	case surrogateMin <= r && r <= surrogateMax:
		return RuneError, n
	case r > MaxRune:
		return RuneError, n
	}
	return r, n
}

// DecodeString is like Decode but its input is a string.
func DecodeString(s string) (rune, int) {
	if len(s) == 0 {
		return RuneError, 0
	}
	if s[0] < RuneSelf {
		return rune(s[0]), 1
	}
	var buf [6]byte
	return Decode(buf[:copy(buf[:], s)])
}

// DecodeLast unpacks the last UTF-8 encoding in p and returns the code
// point and its width in bytes. The unit boundaries agree with the ones
// found by repeated calls to Decode.
func DecodeLast(p []byte) (rune, int) {
	end := len(p)
	if end == 0 {
		return RuneError, 0
	}
	if p[end-1] < RuneSelf {
		return rune(p[end-1]), 1
	}
	lim := end - 6
	if lim < 0 {
		lim = 0
	}
	start := end - 1
	for start >= lim && isContinuation(p[start]) {
		start--
	}
	if start < lim {
		return RuneError, 1
	}
	r, size := Decode(p[start:end])
	if start+size != end {
		return RuneError, 1
	}
	return r, size
}

// EncodedLen returns the number of bytes Encode writes for r.
func EncodedLen(r rune) int {
	switch i := uint32(r); {
	case i <= rune1Max:
		return 1
	case i <= rune2Max:
		return 2
	case i <= rune3Max:
		return 3
	case i <= MaxRune:
		return 4
	}
	return 3 // RuneError
}

// Encode writes the UTF-8 encoding of r into p and returns the number of
// bytes written. Values above MaxRune are replaced with RuneError. If p is
// too small nothing is written and zero is returned.
func Encode(p []byte, r rune) int {
	// Negative values are erroneous. Making it unsigned addresses the problem.
	if uint32(r) > MaxRune {
		r = RuneError
	}
	switch i := uint32(r); {
	case i <= rune1Max:
		if len(p) < 1 {
			return 0
		}
		p[0] = byte(r)
		return 1
	case i <= rune2Max:
		if len(p) < 2 {
			return 0
		}
		_ = p[1] // eliminate bounds checks
		p[0] = t2 | byte(r>>6)
		p[1] = tx | byte(r)&maskx
		return 2
	case i <= rune3Max:
		if len(p) < 3 {
			return 0
		}
		_ = p[2] // eliminate bounds checks
		p[0] = t3 | byte(r>>12)
		p[1] = tx | byte(r>>6)&maskx
		p[2] = tx | byte(r)&maskx
		return 3
	default:
		if len(p) < 4 {
			return 0
		}
		_ = p[3] // eliminate bounds checks
		p[0] = t4 | byte(r>>18)
		p[1] = tx | byte(r>>12)&maskx
		p[2] = tx | byte(r>>6)&maskx
		p[3] = tx | byte(r)&maskx
		return 4
	}
}

// Count returns the number of code points in p. Each malformed unit counts
// as a single code point.
func Count(p []byte) int {
	n := 0
	for i := 0; i < len(p); n++ {
		if p[i] < RuneSelf {
			i++
			continue
		}
		_, size := Decode(p[i:])
		i += size
	}
	return n
}
