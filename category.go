// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"github.com/charlievieth/utext/internal/codec"
	"github.com/charlievieth/utext/internal/tables"
)

// Category is a set of Unicode general categories and character classes.
// The low 32 bits are general categories, the high bits are classes in the
// manner of the C <ctype.h> functions.
type Category uint64

// General categories.
const (
	LetterUppercase      = Category(tables.LetterUppercase)
	LetterLowercase      = Category(tables.LetterLowercase)
	LetterTitlecase      = Category(tables.LetterTitlecase)
	LetterModifier       = Category(tables.LetterModifier)
	LetterOther          = Category(tables.LetterOther)
	MarkNonSpacing       = Category(tables.MarkNonSpacing)
	MarkSpacing          = Category(tables.MarkSpacing)
	MarkEnclosing        = Category(tables.MarkEnclosing)
	NumberDecimal        = Category(tables.NumberDecimal)
	NumberLetter         = Category(tables.NumberLetter)
	NumberOther          = Category(tables.NumberOther)
	PunctuationConnector = Category(tables.PunctuationConnector)
	PunctuationDash      = Category(tables.PunctuationDash)
	PunctuationOpen      = Category(tables.PunctuationOpen)
	PunctuationClose     = Category(tables.PunctuationClose)
	PunctuationInitial   = Category(tables.PunctuationInitial)
	PunctuationFinal     = Category(tables.PunctuationFinal)
	PunctuationOther     = Category(tables.PunctuationOther)
	SymbolMath           = Category(tables.SymbolMath)
	SymbolCurrency       = Category(tables.SymbolCurrency)
	SymbolModifier       = Category(tables.SymbolModifier)
	SymbolOther          = Category(tables.SymbolOther)
	SeparatorSpace       = Category(tables.SeparatorSpace)
	SeparatorLine        = Category(tables.SeparatorLine)
	SeparatorParagraph   = Category(tables.SeparatorParagraph)
	Control              = Category(tables.Control)
	Format               = Category(tables.Format)
	Surrogate            = Category(tables.Surrogate)
	PrivateUse           = Category(tables.PrivateUse)
	Unassigned           = Category(tables.Unassigned)

	Letter      = Category(tables.Letter)
	CasedLetter = Category(tables.CasedLetter)
	Mark        = Category(tables.Mark)
	Number      = Category(tables.Number)
	Punctuation = Category(tables.Punctuation)
	Symbol      = Category(tables.Symbol)
	Separator   = Category(tables.Separator)
	Other       = Category(tables.Other)
)

// Character classes.
const (
	ClassCntrl  Category = 1 << (32 + iota) // control characters
	ClassPrint                              // graphic characters and spaces
	ClassSpace                              // white space
	ClassBlank                              // spaces and tab
	ClassGraph                              // letters, marks, numbers, punctuation and symbols
	ClassPunct                              // punctuation and symbols
	ClassAlnum                              // letters and numbers
	ClassAlpha                              // letters
	ClassUpper                              // uppercase letters
	ClassLower                              // lowercase letters
	ClassDigit                              // decimal digits
	ClassXDigit                             // hexadecimal digits

	generalCategories = Category(1<<32 - 1)
)

func (c Category) String() string {
	if c&^generalCategories == 0 && c != 0 {
		return tables.Category(c).String()
	}
	return "Category(mixed)"
}

const graphic = Letter | Mark | Number | Punctuation | Symbol

// classes returns the character classes of r with general category cat.
func classes(r rune, cat Category) Category {
	var c Category
	switch {
	case cat&Control != 0:
		c |= ClassCntrl
		switch r {
		case '\t':
			c |= ClassSpace | ClassBlank
		case '\n', '\v', '\f', '\r', 0x85:
			c |= ClassSpace
		}
	case cat&graphic != 0:
		c |= ClassPrint | ClassGraph
	case cat&Separator != 0:
		c |= ClassPrint | ClassSpace
		if cat&SeparatorSpace != 0 {
			c |= ClassBlank
		}
	}
	switch {
	case cat&(Punctuation|Symbol) != 0:
		c |= ClassPunct
	case cat&Letter != 0:
		c |= ClassAlnum | ClassAlpha
		if cat&LetterUppercase != 0 {
			c |= ClassUpper
		} else if cat&LetterLowercase != 0 {
			c |= ClassLower
		}
	case cat&Number != 0:
		c |= ClassAlnum
		if cat&NumberDecimal != 0 {
			c |= ClassDigit
		}
	}
	if '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F' {
		c |= ClassXDigit
	}
	return c
}

// CategoryOf returns the general category of r.
func CategoryOf(r rune) Category {
	return Category(tables.Default().Category(r))
}

// Is reports whether r is a member of any general category or character
// class in cats.
func Is(r rune, cats Category) bool {
	cat := CategoryOf(r)
	if cat&cats != 0 {
		return true
	}
	return cats&^generalCategories != 0 && classes(r, cat)&cats != 0
}

// IsCategory returns the length in bytes of the longest prefix of text
// whose code points are all members of cats. Malformed sequences are
// treated as U+FFFD.
func IsCategory(text []byte, cats Category) int {
	i := 0
	for i < len(text) {
		r, n := rune(text[i]), 1
		if r >= codec.RuneSelf {
			r, n = codec.Decode(text[i:])
		}
		if !Is(r, cats) {
			break
		}
		i += n
	}
	return i
}
