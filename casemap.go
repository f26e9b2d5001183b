// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"github.com/charlievieth/utext/internal/casemap"
	"github.com/charlievieth/utext/internal/tables"
)

// ToUpper writes the uppercase mapping of src to dst and returns the
// number of bytes written. Mappings may change the length of the text,
// for example "ß" maps to "SS".
//
// If dst is nil ToUpper returns the number of bytes required.
func ToUpper(dst, src []byte, locale Locale) (int, error) {
	return mapCase(dst, src, casemap.Upper, locale)
}

// ToLower writes the lowercase mapping of src to dst and returns the
// number of bytes written. A capital sigma at the end of a word maps to
// final sigma.
//
// If dst is nil ToLower returns the number of bytes required.
func ToLower(dst, src []byte, locale Locale) (int, error) {
	return mapCase(dst, src, casemap.Lower, locale)
}

// ToTitle writes the titlecase mapping of src to dst and returns the
// number of bytes written. The first letter or digit of each word is
// titlecased and the rest of the word is lowercased. Any code point that
// is not a letter, decimal digit or combining mark separates words.
//
// If dst is nil ToTitle returns the number of bytes required.
func ToTitle(dst, src []byte, locale Locale) (int, error) {
	return mapCase(dst, src, casemap.Title, locale)
}

// Casefold writes the full case folding of src to dst and returns the
// number of bytes written. Two strings are equal without regard to case
// if their case foldings are equal.
//
// If dst is nil Casefold returns the number of bytes required.
func Casefold(dst, src []byte, locale Locale) (int, error) {
	return mapCase(dst, src, casemap.Fold, locale)
}

func mapCase(dst, src []byte, prop casemap.Property, locale Locale) (int, error) {
	if len(src) == 0 {
		return 0, ErrInvalidData
	}
	if !locale.Valid() {
		return 0, ErrInvalidFlag
	}
	if overlap(dst, src) {
		return 0, ErrOverlappingParameters
	}
	var m casemap.Mapper
	m.Init(tables.Default(), src, prop, locale)
	n := 0
	for m.Next() {
		if dst == nil {
			n += m.Measure()
			continue
		}
		w, ok := m.Write(dst[n:])
		n += w
		if !ok {
			return n, ErrNotEnoughSpace
		}
	}
	return n, nil
}

// FoldRune returns the simple case folding of r. Unlike Casefold it never
// expands r into multiple code points: r is returned unchanged if its only
// folding is longer than one code point.
func FoldRune(r rune) rune {
	return tables.Default().CaseFold(r)
}
