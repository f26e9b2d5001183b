// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package casemap implements full, locale sensitive, case mapping of UTF-8
// text one segment (a base code point and its combining marks) at a time.
package casemap

import (
	"unicode"

	"github.com/charlievieth/utext/internal/codec"
	"github.com/charlievieth/utext/internal/stream"
	"github.com/charlievieth/utext/internal/tables"
)

// Property is the case mapping applied by a Mapper.
type Property uint8

const (
	Upper Property = iota
	Lower
	Title
	Fold

	identity // code points outside a word when title casing
)

// Locale selects the language specific rules. Only the locales that change
// the result of case mapping are distinguished.
type Locale uint8

const (
	Default Locale = iota
	Greek
	Lithuanian
	Turkish // Turkish and Azeri written in the Latin script
	numLocales
)

// Valid reports whether l is a known locale.
func (l Locale) Valid() bool { return l < numLocales }

func (l Locale) String() string {
	switch l {
	case Default:
		return "Default"
	case Greek:
		return "Greek"
	case Lithuanian:
		return "Lithuanian"
	case Turkish:
		return "Turkish"
	}
	return "Locale(invalid)"
}

const (
	dotAbove         = 0x0307
	capitalSigma     = 0x03A3
	smallSigma       = 0x03C3
	finalSigma       = 0x03C2
	dottedCapitalI   = 0x0130
	dotlessSmallI    = 0x0131
	capitalIOgonek   = 0x012E
	maxMappingLength = 3 // longest full case mapping in code points
)

// A Mapper maps a source buffer segment by segment. Use Next to advance to
// the next segment and Measure or Write to consume its mapping.
type Mapper struct {
	s      stream.Stream
	db     *tables.Database
	prop   Property
	locale Locale

	inWord      bool // title casing: inside a word
	afterLetter bool // a letter, ignoring marks, precedes the segment

	n   int
	out [stream.MaxSegment * maxMappingLength]rune
}

// Init binds m to src, reading case mappings from db. Any previous state
// is discarded.
func (m *Mapper) Init(db *tables.Database, src []byte, prop Property, locale Locale) {
	m.s.Init(db, src, stream.Plain)
	m.db = db
	m.prop = prop
	m.locale = locale
	m.inWord = false
	m.afterLetter = false
	m.n = 0
}

// Next maps the next segment. It returns false when the source is
// exhausted.
func (m *Mapper) Next() bool {
	m.n = 0
	if m.s.Next() == 0 {
		return false
	}
	m.mapSegment(m.s.Window())
	return true
}

// Runes returns the mapping of the current segment.
func (m *Mapper) Runes() []rune { return m.out[:m.n] }

// Measure returns the UTF-8 encoded length of the current mapping.
func (m *Mapper) Measure() int {
	n := 0
	for _, r := range m.out[:m.n] {
		n += codec.EncodedLen(r)
	}
	return n
}

// Write writes the current mapping to dst. If dst is too small it writes
// as many whole code points as fit and reports false.
func (m *Mapper) Write(dst []byte) (int, bool) {
	n := 0
	for _, r := range m.out[:m.n] {
		if r < codec.RuneSelf && n < len(dst) {
			dst[n] = byte(r)
			n++
			continue
		}
		w := codec.Encode(dst[n:], r)
		if w == 0 {
			return n, false
		}
		n += w
	}
	return n, true
}

func (m *Mapper) emit(r rune) {
	if m.n < len(m.out) {
		m.out[m.n] = r
		m.n++
	}
}

func (m *Mapper) emitMapping(r rune, kind tables.Kind) {
	if s, ok := m.db.Mapping(r, kind); ok {
		for _, rr := range s {
			m.emit(rr)
		}
		return
	}
	m.emit(r)
}

func (m *Mapper) mapRune(r rune, p Property) {
	if r < codec.RuneSelf {
		switch p {
		case Upper, Title:
			if 'a' <= r && r <= 'z' {
				r -= 'a' - 'A'
			}
		case Lower, Fold:
			if 'A' <= r && r <= 'Z' {
				r += 'a' - 'A'
			}
		}
		m.emit(r)
		return
	}
	switch p {
	case Upper:
		m.emitMapping(r, tables.Uppercase)
	case Lower:
		m.emitMapping(r, tables.Lowercase)
	case Fold:
		m.emitMapping(r, tables.Casefold)
	case Title:
		// The table has an entry for every code point with an uppercase
		// mapping, so the fallback only applies to uncased code points.
		if s, ok := m.db.Mapping(r, tables.Titlecase); ok {
			for _, rr := range s {
				m.emit(rr)
			}
			return
		}
		m.emitMapping(r, tables.Uppercase)
	default:
		m.emit(r)
	}
}

// wordProperty returns the property applied to the base of a segment when
// title casing and updates the word state.
func (m *Mapper) wordProperty(cat tables.Category) Property {
	switch {
	case cat&(tables.Letter|tables.NumberDecimal|tables.NumberLetter) != 0:
		if m.inWord {
			return Lower
		}
		m.inWord = true
		return Title
	case cat&tables.Mark != 0:
		if m.inWord {
			return Lower
		}
		return identity
	}
	m.inWord = false
	return identity
}

// aboveIndex returns the index of the first mark in marks with combining
// class 230 (Above) if it is U+0307, otherwise -1.
func aboveIndex(marks []stream.Entry) int {
	for i, e := range marks {
		if e.CCC == 230 {
			if e.Rune == dotAbove {
				return i
			}
			break
		}
	}
	return -1
}

func moreAbove(marks []stream.Entry) bool {
	for _, e := range marks {
		if e.CCC == 230 {
			return true
		}
	}
	return false
}

func (m *Mapper) followedByLetter() bool {
	e, ok := m.s.Peek()
	return ok && m.db.Category(e.Rune)&tables.Letter != 0
}

func (m *Mapper) mapSegment(w []stream.Entry) {
	base := w[0].Rune
	marks := w[1:]
	cat := m.db.Category(base)

	prop, markProp := m.prop, m.prop
	if m.prop == Title {
		prop = m.wordProperty(cat)
		markProp = Lower
		if prop == identity {
			markProp = identity
		}
	}
	afterLetter := m.afterLetter
	if cat&tables.Letter != 0 {
		m.afterLetter = true
	} else if cat&tables.Mark == 0 {
		m.afterLetter = false
	}

	skip := -1 // index of a mark consumed by the base mapping
	switch {
	case base == capitalSigma && prop == Lower:
		if afterLetter && !m.followedByLetter() {
			m.emit(finalSigma)
		} else {
			m.emit(smallSigma)
		}
	case m.locale == Turkish && m.mapTurkish(base, prop, marks, &skip):
	case m.locale == Lithuanian && m.mapLithuanian(base, prop, marks, &skip):
	default:
		m.mapRune(base, prop)
	}
	for i, e := range marks {
		if i != skip {
			m.mapRune(e.Rune, markProp)
		}
	}
}

// mapTurkish applies the Turkish and Azeri rules for the dotted and dotless
// letter i. It reports whether base was mapped.
func (m *Mapper) mapTurkish(base rune, prop Property, marks []stream.Entry, skip *int) bool {
	switch prop {
	case Lower:
		switch base {
		case 'I':
			// I followed by U+0307 is the decomposed form of U+0130.
			if i := aboveIndex(marks); i >= 0 {
				*skip = i
				m.emit('i')
			} else {
				m.emit(dotlessSmallI)
			}
			return true
		case dottedCapitalI:
			m.emit('i')
			return true
		}
	case Upper, Title:
		if base == 'i' {
			m.emit(dottedCapitalI)
			return true
		}
	case Fold:
		switch base {
		case 'I':
			m.emit(dotlessSmallI)
			return true
		case dottedCapitalI:
			m.emit('i')
			return true
		}
	}
	return false
}

// mapLithuanian keeps the dot of a lowercase i visible when it is followed
// by other accents above and removes the explicit dot when uppercasing.
// It reports whether base was mapped.
func (m *Mapper) mapLithuanian(base rune, prop Property, marks []stream.Entry, skip *int) bool {
	switch prop {
	case Lower:
		switch base {
		case 'I', 'J', capitalIOgonek:
			if !moreAbove(marks) {
				return false
			}
			m.mapRune(base, Lower)
			m.emit(dotAbove)
			return true
		case 0x00CC, 0x00CD, 0x0128: // Ì Í Ĩ
			m.emit('i')
			m.emit(dotAbove)
			switch base {
			case 0x00CC:
				m.emit(0x0300)
			case 0x00CD:
				m.emit(0x0301)
			default:
				m.emit(0x0303)
			}
			return true
		}
	case Upper, Title:
		if unicode.Is(unicode.Soft_Dotted, base) {
			if i := aboveIndex(marks); i >= 0 {
				*skip = i
				m.mapRune(base, prop)
				return true
			}
		}
	}
	return false
}
