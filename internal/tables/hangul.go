// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package tables

// Hangul syllables are composed and decomposed arithmetically,
// see Unicode Standard section 3.12 "Conjoining Jamo Behavior".
const (
	hangulSBase = 0xAC00
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7

	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount // 588
	hangulSCount = hangulLCount * hangulNCount // 11172
)

// IsHangulSyllable reports whether r is a precomposed Hangul syllable.
func IsHangulSyllable(r rune) bool {
	return hangulSBase <= r && r < hangulSBase+hangulSCount
}

// DecomposeHangul writes the canonical decomposition of the Hangul syllable
// r into buf and returns the number of code points written. It returns 0 if
// r is not a Hangul syllable.
func DecomposeHangul(r rune, buf *[3]rune) int {
	if !IsHangulSyllable(r) {
		return 0
	}
	s := r - hangulSBase
	buf[0] = hangulLBase + s/hangulNCount
	buf[1] = hangulVBase + (s%hangulNCount)/hangulTCount
	if t := s % hangulTCount; t != 0 {
		buf[2] = hangulTBase + t
		return 3
	}
	return 2
}

// ComposeHangul composes a leading consonant with a vowel (LV) or an LV
// syllable with a trailing consonant (LVT).
func ComposeHangul(a, b rune) (rune, bool) {
	if hangulLBase <= a && a < hangulLBase+hangulLCount &&
		hangulVBase <= b && b < hangulVBase+hangulVCount {
		l := a - hangulLBase
		v := b - hangulVBase
		return hangulSBase + (l*hangulVCount+v)*hangulTCount, true
	}
	if IsHangulSyllable(a) && (a-hangulSBase)%hangulTCount == 0 &&
		hangulTBase < b && b < hangulTBase+hangulTCount {
		return a + (b - hangulTBase), true
	}
	return 0, false
}
