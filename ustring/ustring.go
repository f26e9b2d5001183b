// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package ustring provides the text transformations of the utext package
// for strings. Each function sizes its result exactly with a measuring
// call before converting.
package ustring

import (
	"errors"
	"strings"

	"github.com/charlievieth/utext"
	"github.com/charlievieth/utext/internal/bytealg"
	"github.com/charlievieth/utext/internal/codec"
)

// transform runs fn twice: once to measure and once to write.
func transform(s string, fn func(dst, src []byte) (int, error)) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	src := []byte(s)
	n, err := fn(nil, src)
	if err != nil {
		return "", err
	}
	dst := make([]byte, n)
	n, err = fn(dst, src)
	return string(dst[:n]), err
}

// Normalize returns the normalization of s selected by flags.
func Normalize(s string, flags utext.Flags) (string, error) {
	return transform(s, func(dst, src []byte) (int, error) {
		return utext.Normalize(dst, src, flags)
	})
}

// IsNormalized reports whether s is in the normalization form selected by
// flags, see utext.IsNormalized. The empty string is normalized.
func IsNormalized(s string, flags utext.Flags) (utext.Verdict, int, error) {
	if len(s) == 0 {
		if _, _, err := utext.IsNormalized([]byte{'a'}, flags); err != nil {
			return utext.No, 0, err
		}
		return utext.Yes, 0, nil
	}
	return utext.IsNormalized([]byte(s), flags)
}

// ToUpper returns s mapped to uppercase.
func ToUpper(s string, locale utext.Locale) (string, error) {
	return transform(s, func(dst, src []byte) (int, error) {
		return utext.ToUpper(dst, src, locale)
	})
}

// ToLower returns s mapped to lowercase.
func ToLower(s string, locale utext.Locale) (string, error) {
	return transform(s, func(dst, src []byte) (int, error) {
		return utext.ToLower(dst, src, locale)
	})
}

// ToTitle returns s mapped to titlecase.
func ToTitle(s string, locale utext.Locale) (string, error) {
	return transform(s, func(dst, src []byte) (int, error) {
		return utext.ToTitle(dst, src, locale)
	})
}

// Casefold returns the full case folding of s.
func Casefold(s string, locale utext.Locale) (string, error) {
	return transform(s, func(dst, src []byte) (int, error) {
		return utext.Casefold(dst, src, locale)
	})
}

// EqualFold reports whether s and t are equal under full case folding
// with the default locale. Unlike strings.EqualFold "straße" and "STRASSE"
// are equal.
func EqualFold(s, t string) bool {
	if bytealg.IndexNonASCII(s) == -1 && bytealg.IndexNonASCII(t) == -1 {
		return strings.EqualFold(s, t)
	}
	fs, err := Casefold(s, utext.DefaultLocale)
	if err != nil {
		return false
	}
	ft, err := Casefold(t, utext.DefaultLocale)
	if err != nil {
		return false
	}
	return fs == ft
}

// UTF8ToUTF16 returns the UTF-16 encoding of s.
func UTF8ToUTF16(s string) []uint16 {
	if len(s) == 0 {
		return nil
	}
	src := []byte(s)
	n, _ := utext.UTF8ToUTF16(nil, src)
	dst := make([]uint16, n)
	n, _ = utext.UTF8ToUTF16(dst, src)
	return dst[:n]
}

// UTF16ToUTF8 returns the UTF-8 encoding of the UTF-16 text u.
func UTF16ToUTF8(u []uint16) string {
	if len(u) == 0 {
		return ""
	}
	n, _ := utext.UTF16ToUTF8(nil, u)
	dst := make([]byte, n)
	n, _ = utext.UTF16ToUTF8(dst, u)
	return string(dst[:n])
}

// UTF8ToUTF32 returns the code points of s.
func UTF8ToUTF32(s string) []rune {
	if len(s) == 0 {
		return nil
	}
	src := []byte(s)
	dst := make([]rune, utext.Len(src))
	n, _ := utext.UTF8ToUTF32(dst, src)
	return dst[:n]
}

// UTF32ToUTF8 returns the UTF-8 encoding of rs. The string is returned
// even if rs contains an unpaired surrogate, see utext.UTF32ToUTF8.
func UTF32ToUTF8(rs []rune) (string, error) {
	if len(rs) == 0 {
		return "", nil
	}
	n, err := utext.UTF32ToUTF8(nil, rs)
	if err != nil && !isSurrogateError(err) {
		return "", err
	}
	dst := make([]byte, n)
	n, err = utext.UTF32ToUTF8(dst, rs)
	return string(dst[:n]), err
}

func isSurrogateError(err error) bool {
	return errors.Is(err, utext.ErrUnmatchedHighSurrogatePair) ||
		errors.Is(err, utext.ErrUnmatchedLowSurrogatePair)
}

// UTF8ToWide returns the platform wide encoding of s.
func UTF8ToWide(s string) []utext.Wide {
	if len(s) == 0 {
		return nil
	}
	src := []byte(s)
	n, _ := utext.UTF8ToWide(nil, src)
	dst := make([]utext.Wide, n)
	n, _ = utext.UTF8ToWide(dst, src)
	return dst[:n]
}

// WideToUTF8 returns the UTF-8 encoding of the platform wide text w.
func WideToUTF8(w []utext.Wide) (string, error) {
	if len(w) == 0 {
		return "", nil
	}
	n, err := utext.WideToUTF8(nil, w)
	if err != nil && !isSurrogateError(err) {
		return "", err
	}
	dst := make([]byte, n)
	n, err = utext.WideToUTF8(dst, w)
	return string(dst[:n]), err
}

// Seek returns the byte position in s offset code points from the
// position selected by whence, see utext.Seek.
func Seek(s string, pos, offset, whence int) int {
	return utext.Seek([]byte(s), pos, offset, whence)
}

// Len returns the number of code points in s, see utext.Len.
func Len(s string) int {
	i := bytealg.IndexNonASCII(s)
	if i == -1 {
		return len(s)
	}
	n := i
	for i < len(s) {
		if s[i] < codec.RuneSelf {
			i++
		} else {
			_, size := codec.DecodeString(s[i:])
			i += size
		}
		n++
	}
	return n
}

// IsCategory returns the length of the longest prefix of s whose code
// points are all members of cats.
func IsCategory(s string, cats utext.Category) int {
	i := 0
	for i < len(s) {
		r, n := rune(s[i]), 1
		if r >= codec.RuneSelf {
			r, n = codec.DecodeString(s[i:])
		}
		if !utext.Is(r, cats) {
			break
		}
		i += n
	}
	return i
}
