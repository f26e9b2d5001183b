// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	"github.com/charlievieth/utext/internal/tables"
	"github.com/charlievieth/utext/internal/tables/assigned"
	"github.com/charlievieth/utext/internal/test"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		r    rune
		want Category
	}{
		{'A', LetterUppercase},
		{'a', LetterLowercase},
		{'5', NumberDecimal},
		{'$', SymbolCurrency},
		{'\n', Control},
		{0x01C5, LetterTitlecase},
		{0x0301, MarkNonSpacing},
		{0x00A0, SeparatorSpace},
		{0x2028, SeparatorLine},
		{0xFFFD, SymbolOther},
		{0x0378, Unassigned},
		{-1, Unassigned},
	}
	for _, test := range tests {
		if got := CategoryOf(test.r); got != test.want {
			t.Errorf("CategoryOf(%U) = %s; want: %s", test.r, got, test.want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Lu", LetterUppercase.String())
	assert.Equal(t, "Cn", Unassigned.String())
	assert.Equal(t, "Category(mixed)", Letter.String())
	assert.Equal(t, "Category(mixed)", ClassAlpha.String())
	assert.Equal(t, "Category(mixed)", Category(0).String())
}

func TestIs(t *testing.T) {
	tests := []struct {
		r    rune
		cats Category
		want bool
	}{
		{'a', Letter, true},
		{'a', Number, false},
		{'a', Letter | Number, true},
		{'5', ClassDigit, true},
		{'f', ClassXDigit, true},
		{'F', ClassXDigit, true},
		{'g', ClassXDigit, false},
		{' ', ClassBlank, true},
		{' ', ClassSpace, true},
		{'\t', ClassBlank, true},
		{'\n', ClassSpace, true},
		{'\n', ClassBlank, false},
		{0x00A0, ClassBlank, true},
		{0x2028, ClassSpace, true},
		{0x2028, ClassBlank, false},
		{'!', ClassPunct, true},
		{'$', ClassPunct, true},
		{0x0301, ClassGraph, true},
		{0x0301, ClassAlpha, false},
		{0x7F, ClassCntrl, true},
		{0x7F, ClassPrint, false},
		{'A', ClassUpper, true},
		{'a', ClassLower, true},
		{0x01C5, ClassUpper, false},
		{0x01C5, ClassLower, false},
		{0x01C5, ClassAlpha, true},
		{0x0663, ClassDigit, true},  // Arabic-Indic digit three
		{0x0663, ClassXDigit, false}, // only ASCII hex digits
		{0x2160, ClassAlnum, true},  // Roman numeral one
		{0x2160, ClassDigit, false},
		{'a', Category(0), false},
	}
	for _, test := range tests {
		if got := Is(test.r, test.cats); got != test.want {
			t.Errorf("Is(%U, %#x) = %t; want: %t", test.r, uint64(test.cats), got, test.want)
		}
	}
}

// The character classes of ASCII must match the C locale.
func TestIsASCIIClasses(t *testing.T) {
	type class struct {
		cat Category
		fn  func(c byte) bool
	}
	isUpper := func(c byte) bool { return 'A' <= c && c <= 'Z' }
	isLower := func(c byte) bool { return 'a' <= c && c <= 'z' }
	isDigit := func(c byte) bool { return '0' <= c && c <= '9' }
	isAlpha := func(c byte) bool { return isUpper(c) || isLower(c) }
	isAlnum := func(c byte) bool { return isAlpha(c) || isDigit(c) }
	isGraph := func(c byte) bool { return 0x21 <= c && c <= 0x7E }
	classes := map[string]class{
		"cntrl":  {ClassCntrl, func(c byte) bool { return c < 0x20 || c == 0x7F }},
		"print":  {ClassPrint, func(c byte) bool { return 0x20 <= c && c <= 0x7E }},
		"space":  {ClassSpace, func(c byte) bool { return c == ' ' || '\t' <= c && c <= '\r' }},
		"blank":  {ClassBlank, func(c byte) bool { return c == ' ' || c == '\t' }},
		"graph":  {ClassGraph, isGraph},
		"punct":  {ClassPunct, func(c byte) bool { return isGraph(c) && !isAlnum(c) }},
		"alnum":  {ClassAlnum, isAlnum},
		"alpha":  {ClassAlpha, isAlpha},
		"upper":  {ClassUpper, isUpper},
		"lower":  {ClassLower, isLower},
		"digit":  {ClassDigit, isDigit},
		"xdigit": {ClassXDigit, func(c byte) bool { return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F' }},
	}
	for name, cl := range classes {
		for c := 0; c < 0x80; c++ {
			if got, want := Is(rune(c), cl.cat), cl.fn(byte(c)); got != want {
				t.Errorf("Is(%q, %s) = %t; want: %t", c, name, got, want)
			}
		}
	}
}

func TestIsMatchesUnicode(t *testing.T) {
	test.UnicodeVersion(t, tables.UnicodeVersion)
	tests := []struct {
		cat Category
		fn  func(r rune) bool
	}{
		{Letter, unicode.IsLetter},
		{Mark, unicode.IsMark},
		{Number, unicode.IsNumber},
		{Punctuation, unicode.IsPunct},
		{Symbol, unicode.IsSymbol},
		{ClassUpper, func(r rune) bool { return unicode.Is(unicode.Lu, r) }},
		{ClassDigit, unicode.IsDigit},
		{ClassGraph, func(r rune) bool { return unicode.IsGraphic(r) && !unicode.Is(unicode.Zs, r) }},
	}
	for _, r := range assigned.AssignedRunes(unicode.Version) {
		for _, test := range tests {
			if got, want := Is(r, test.cat), test.fn(r); got != want {
				t.Errorf("Is(%U, %#x) = %t; want: %t", r, uint64(test.cat), got, want)
			}
		}
	}
}

func TestIsCategory(t *testing.T) {
	tests := []struct {
		in   string
		cats Category
		want int
	}{
		{"", Letter, 0},
		{"abc123!", Letter, 3},
		{"abc123!", Letter | Number, 6},
		{"abc123!", Letter | Number | Punctuation, 7},
		{"\u00E9\u0301x", Letter, 2},
		{"\u00E9\u0301x", Letter | Mark, 5},
		{"ab\xFFc", Letter, 2},
		{"\xFF\xFE", Symbol, 2},
		{"  \tx", ClassBlank, 3},
		{"deadBEEF!", ClassXDigit, 8},
	}
	for _, test := range tests {
		if got := IsCategory([]byte(test.in), test.cats); got != test.want {
			t.Errorf("IsCategory(%+q, %#x) = %d; want: %d", test.in, uint64(test.cats), got, test.want)
		}
	}
}
