// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package tables is the Unicode property database used by the
// normalization and case mapping engines.
//
// All data is held in sorted range tables that are searched with a binary
// search. The tables are generated by internal/gentables. A *Database is
// immutable and may be shared by any number of goroutines.
package tables

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Category is a Unicode general category. Each category is a distinct bit
// so that sets of categories can be tested with a single mask.
type Category uint32

const (
	LetterUppercase Category = 1 << iota // Lu
	LetterLowercase                      // Ll
	LetterTitlecase                      // Lt
	LetterModifier                       // Lm
	LetterOther                          // Lo
	MarkNonSpacing                       // Mn
	MarkSpacing                          // Mc
	MarkEnclosing                        // Me
	NumberDecimal                        // Nd
	NumberLetter                         // Nl
	NumberOther                          // No
	PunctuationConnector                 // Pc
	PunctuationDash                      // Pd
	PunctuationOpen                      // Ps
	PunctuationClose                     // Pe
	PunctuationInitial                   // Pi
	PunctuationFinal                     // Pf
	PunctuationOther                     // Po
	SymbolMath                           // Sm
	SymbolCurrency                       // Sc
	SymbolModifier                       // Sk
	SymbolOther                          // So
	SeparatorSpace                       // Zs
	SeparatorLine                        // Zl
	SeparatorParagraph                   // Zp
	Control                              // Cc
	Format                               // Cf
	Surrogate                            // Cs
	PrivateUse                           // Co
	Unassigned                           // Cn

	Letter      = LetterUppercase | LetterLowercase | LetterTitlecase | LetterModifier | LetterOther
	CasedLetter = LetterUppercase | LetterLowercase | LetterTitlecase
	Mark        = MarkNonSpacing | MarkSpacing | MarkEnclosing
	Number      = NumberDecimal | NumberLetter | NumberOther
	Punctuation = PunctuationConnector | PunctuationDash | PunctuationOpen |
		PunctuationClose | PunctuationInitial | PunctuationFinal | PunctuationOther
	Symbol    = SymbolMath | SymbolCurrency | SymbolModifier | SymbolOther
	Separator = SeparatorSpace | SeparatorLine | SeparatorParagraph
	Other     = Control | Format | Surrogate | PrivateUse | Unassigned
)

// categoryNames maps the two letter category aliases to their Category.
// The order matches the bit order of the constants.
var categoryNames = [...]string{
	"Lu", "Ll", "Lt", "Lm", "Lo",
	"Mn", "Mc", "Me",
	"Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
	"Sm", "Sc", "Sk", "So",
	"Zs", "Zl", "Zp",
	"Cc", "Cf", "Cs", "Co", "Cn",
}

// String returns the two letter alias of a single category.
func (c Category) String() string {
	for i, name := range categoryNames {
		if c == 1<<i {
			return name
		}
	}
	return "Category(mixed)"
}

// Form is a Unicode normalization form.
type Form uint8

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
	numForms
)

// Verdict is a quick check property value.
type Verdict uint8

const (
	Yes Verdict = iota
	Maybe
	No
)

func (v Verdict) String() string {
	switch v {
	case Yes:
		return "Yes"
	case Maybe:
		return "Maybe"
	case No:
		return "No"
	}
	return "Verdict(invalid)"
}

// Kind selects a mapping table.
type Kind uint8

const (
	Decompose Kind = iota
	CompatibilityDecompose
	Uppercase
	Lowercase
	Titlecase
	Casefold
	numKinds
)

// Record holds the per code point properties.
type Record struct {
	Category Category
	CCC      uint8
	qc       uint8 // 2 bits per Form
}

// QuickCheck returns the quick check verdict of the record for form f.
func (r Record) QuickCheck(f Form) Verdict {
	if f >= numForms {
		return No
	}
	return Verdict(r.qc>>(2*f)) & 3
}

type recordRange struct {
	Lo, Hi uint32
	Record
}

// A mapping points into the data string of its mappingTable.
type mapping struct {
	R   uint32
	Off uint32
	Len uint32
}

type mappingTable struct {
	entries []mapping
	data    string
}

func (t *mappingTable) lookup(r rune) (string, bool) {
	e := t.entries
	lo, hi := 0, len(e)
	for lo < hi {
		m := lo + (hi-lo)/2
		x := e[m]
		if uint32(r) == x.R {
			return t.data[x.Off : x.Off+x.Len], true
		}
		if uint32(r) < x.R {
			hi = m
		} else {
			lo = m + 1
		}
	}
	return "", false
}

func newMappingTable(m map[rune]string) mappingTable {
	keys := maps.Keys(m)
	slices.Sort(keys)
	var data strings.Builder
	entries := make([]mapping, 0, len(keys))
	for _, r := range keys {
		s := m[r]
		entries = append(entries, mapping{
			R:   uint32(r),
			Off: uint32(data.Len()),
			Len: uint32(len(s)),
		})
		data.WriteString(s)
	}
	return mappingTable{entries: entries, data: data.String()}
}

// pair is a canonical composition: the packed (first, second) key and the
// primary composite.
type pair struct {
	Key uint64
	R   rune
}

func pairKey(a, b rune) uint64 { return uint64(a)<<21 | uint64(b) }

// Database is an immutable set of Unicode property tables.
type Database struct {
	version string
	records []recordRange
	maps    [numKinds]mappingTable
	pairs   []pair
}

var unassigned = Record{Category: Unassigned}

//go:generate go run -tags gen ../../gen.go

// Default returns the database generated from the Unicode Character
// Database (see tables_gen.go). It is statically initialized and shared.
func Default() *Database { return &defaultDatabase }

// WithMapping returns a copy of db with the mapping table of kind replaced
// by m. The receiver is not modified.
func (db *Database) WithMapping(kind Kind, m map[rune]string) *Database {
	dup := *db
	if kind < numKinds {
		dup.maps[kind] = newMappingTable(m)
	}
	return &dup
}

// Version returns the Unicode version the database was built from.
func (db *Database) Version() string { return db.version }

// Lookup returns the property record of r. Values outside the Unicode
// range are reported as unassigned.
func (db *Database) Lookup(r rune) Record {
	if uint32(r) > MaxRune {
		return unassigned
	}
	t := db.records
	lo, hi := 0, len(t)
	for lo < hi {
		m := lo + (hi-lo)/2
		rr := &t[m]
		if rr.Lo <= uint32(r) && uint32(r) <= rr.Hi {
			return rr.Record
		}
		if uint32(r) < rr.Lo {
			hi = m
		} else {
			lo = m + 1
		}
	}
	return unassigned
}

// Category returns the general category of r.
func (db *Database) Category(r rune) Category {
	if uint32(r) < 0x80 {
		return asciiCategory[r]
	}
	return db.Lookup(r).Category
}

// CombiningClass returns the canonical combining class of r.
func (db *Database) CombiningClass(r rune) uint8 {
	if r < 0x300 {
		return 0 // no combining marks below U+0300
	}
	return db.Lookup(r).CCC
}

// QuickCheck returns the quick check property of r for form f.
func (db *Database) QuickCheck(r rune, f Form) Verdict {
	if r < 0xA0 {
		return Yes
	}
	return db.Lookup(r).QuickCheck(f)
}

// Mapping returns the UTF-8 encoded mapping of r for kind. The mapping may
// contain code points that have mappings of their own. It reports false if
// r has no mapping or kind is invalid. Hangul syllables are decomposed
// arithmetically (see DecomposeHangul) and have no entry.
func (db *Database) Mapping(r rune, kind Kind) (string, bool) {
	if kind >= numKinds {
		return "", false
	}
	return db.maps[kind].lookup(r)
}

// Compose returns the primary composite of the canonical pair (a, b).
// Composition exclusions are never returned.
func (db *Database) Compose(a, b rune) (rune, bool) {
	if r, ok := ComposeHangul(a, b); ok {
		return r, true
	}
	if uint32(a) > MaxRune || uint32(b) > MaxRune {
		return 0, false
	}
	key := pairKey(a, b)
	t := db.pairs
	lo, hi := 0, len(t)
	for lo < hi {
		m := lo + (hi-lo)/2
		if t[m].Key == key {
			return t[m].R, true
		}
		if key < t[m].Key {
			hi = m
		} else {
			lo = m + 1
		}
	}
	return 0, false
}

// CaseFold returns the simple case folding of r: the full folding when it
// is a single code point, otherwise the single code point lowercase
// mapping, otherwise r.
func (db *Database) CaseFold(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + 'a' - 'A'
	}
	if r < 0xB5 {
		return r
	}
	if s, ok := db.Mapping(r, Casefold); ok {
		if rr, ok := single(s); ok {
			return rr
		}
	}
	if r == 0x0130 {
		return r // İ only folds in the Turkic locales
	}
	if s, ok := db.Mapping(r, Lowercase); ok {
		if rr, ok := single(s); ok {
			return rr
		}
	}
	return r
}

// single returns the code point of s if s encodes exactly one.
func single(s string) (rune, bool) {
	var r rune
	n := 0
	for _, rr := range s {
		r = rr
		n++
	}
	return r, n == 1
}

const MaxRune = '\U0010FFFF'

var asciiCategory = [0x80]Category{}

func init() {
	for i := range asciiCategory {
		c := rune(i)
		var cat Category
		switch {
		case c < 0x20 || c == 0x7F:
			cat = Control
		case c == ' ':
			cat = SeparatorSpace
		case '0' <= c && c <= '9':
			cat = NumberDecimal
		case 'A' <= c && c <= 'Z':
			cat = LetterUppercase
		case 'a' <= c && c <= 'z':
			cat = LetterLowercase
		case c == '$':
			cat = SymbolCurrency
		case c == '+' || c == '<' || c == '=' || c == '>' || c == '|' || c == '~':
			cat = SymbolMath
		case c == '^' || c == '`':
			cat = SymbolModifier
		case c == '(' || c == '[' || c == '{':
			cat = PunctuationOpen
		case c == ')' || c == ']' || c == '}':
			cat = PunctuationClose
		case c == '-':
			cat = PunctuationDash
		case c == '_':
			cat = PunctuationConnector
		default:
			cat = PunctuationOther
		}
		asciiCategory[i] = cat
	}
}
