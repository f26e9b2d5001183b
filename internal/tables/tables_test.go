// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package tables

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/charlievieth/utext/internal/tables/assigned"
)

func assignedRunes(t testing.TB) []rune {
	all := assigned.AssignedRunes(unicode.Version)
	if len(all) == 0 {
		t.Fatalf("missing assigned code points for Unicode version: %q", unicode.Version)
	}
	return all
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default returned different databases")
	}
	if v := Default().Version(); v != UnicodeVersion {
		t.Fatalf("Version() = %q; want: %q", v, UnicodeVersion)
	}
}

func TestDefaultAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		db := Default()
		_ = db.Lookup(0x00E9)
		_, _ = db.Mapping(0x00C0, Decompose)
		_, _ = db.Compose('A', 0x0300)
	})
	if allocs != 0 {
		t.Fatalf("Default() allocated: %.1f", allocs)
	}
}

func TestGeneratedTablesSorted(t *testing.T) {
	db := Default()
	for i := 1; i < len(db.records); i++ {
		prev, rr := db.records[i-1], db.records[i]
		if rr.Lo > rr.Hi || prev.Hi >= rr.Lo {
			t.Fatalf("records[%d] = %#x-%#x overlaps or is out of order with %#x-%#x",
				i, rr.Lo, rr.Hi, prev.Lo, prev.Hi)
		}
	}
	if n := len(db.records); n == 0 || db.records[0].Lo != 0 || db.records[n-1].Hi != MaxRune {
		t.Fatal("records do not cover the Unicode range")
	}
	for k := range db.maps {
		e := db.maps[k].entries
		for i := range e {
			if i > 0 && e[i-1].R >= e[i].R {
				t.Fatalf("maps[%d].entries[%d]: %U not sorted", k, i, e[i].R)
			}
			if int(e[i].Off+e[i].Len) > len(db.maps[k].data) || e[i].Len == 0 {
				t.Fatalf("maps[%d].entries[%d]: invalid span %d+%d", k, i, e[i].Off, e[i].Len)
			}
		}
	}
	for i := 1; i < len(db.pairs); i++ {
		if db.pairs[i-1].Key >= db.pairs[i].Key {
			t.Fatalf("pairs[%d]: %#x not sorted", i, db.pairs[i].Key)
		}
	}
}

func TestWithMapping(t *testing.T) {
	base := Default()
	db := base.WithMapping(Decompose, map[rune]string{
		'b': "a",
		'a': "\u00C0",
	})
	if s, ok := db.Mapping('a', Decompose); !ok || s != "\u00C0" {
		t.Errorf("Mapping('a') = %+q, %t", s, ok)
	}
	if s, ok := db.Mapping('b', Decompose); !ok || s != "a" {
		t.Errorf("Mapping('b') = %+q, %t", s, ok)
	}
	if _, ok := db.Mapping(0x00C0, Decompose); ok {
		t.Error("Mapping(U+00C0): replaced table should not have an entry")
	}
	// Other tables and the receiver are unchanged.
	if s, ok := db.Mapping('a', Uppercase); !ok || s != "A" {
		t.Errorf("Mapping('a', Uppercase) = %+q, %t", s, ok)
	}
	if _, ok := base.Mapping('a', Decompose); ok {
		t.Error("WithMapping modified the receiver")
	}
	if s, ok := base.Mapping(0x00C0, Decompose); !ok || s != "A\u0300" {
		t.Errorf("base Mapping(U+00C0) = %+q, %t", s, ok)
	}
	if s, ok := db.WithMapping(numKinds, nil).Mapping('a', Decompose); !ok || s != "\u00C0" {
		t.Error("WithMapping with an invalid kind should not change the tables")
	}
}

func TestCategory(t *testing.T) {
	db := Default()
	for _, r := range assignedRunes(t) {
		cat := db.Category(r)
		rt := unicode.Categories[cat.String()]
		if rt == nil || !unicode.Is(rt, r) {
			t.Errorf("Category(%U) = %s", r, cat)
		}
	}
	tests := []struct {
		r    rune
		want Category
	}{
		{'A', LetterUppercase},
		{'z', LetterLowercase},
		{'5', NumberDecimal},
		{' ', SeparatorSpace},
		{'\t', Control},
		{0x01C5, LetterTitlecase},
		{0x0301, MarkNonSpacing},
		{0x0378, Unassigned},
		{0xD800, Surrogate},
		{0xE000, PrivateUse},
		{MaxRune + 1, Unassigned},
		{-1, Unassigned},
	}
	for _, test := range tests {
		if got := db.Category(test.r); got != test.want {
			t.Errorf("Category(%U) = %s; want: %s", test.r, got, test.want)
		}
	}
}

func TestCombiningClass(t *testing.T) {
	db := Default()
	var buf [utf8.UTFMax]byte
	for _, r := range assignedRunes(t) {
		n := utf8.EncodeRune(buf[:], r)
		want := norm.NFD.Properties(buf[:n]).CCC()
		if got := db.CombiningClass(r); got != want {
			t.Errorf("CombiningClass(%U) = %d; want: %d", r, got, want)
		}
	}
}

func TestDecompositions(t *testing.T) {
	db := Default()
	forms := []struct {
		kind Kind
		form norm.Form
	}{
		{Decompose, norm.NFD},
		{CompatibilityDecompose, norm.NFKD},
	}
	for _, r := range assignedRunes(t) {
		if IsHangulSyllable(r) {
			continue
		}
		s := string(r)
		for _, f := range forms {
			want := f.form.String(s)
			m, ok := db.Mapping(r, f.kind)
			if !ok {
				if want != s {
					t.Errorf("Mapping(%U, %d): missing mapping to %+q", r, f.kind, want)
				}
				continue
			}
			if got := f.form.String(m); got != want {
				t.Errorf("Mapping(%U, %d) = %+q; want equivalent of: %+q", r, f.kind, m, want)
			}
		}
	}
}

func TestMappingInvalidKind(t *testing.T) {
	if s, ok := Default().Mapping(0x00C0, numKinds); ok || s != "" {
		t.Errorf("Mapping(U+00C0, invalid) = %q, %t; want: \"\", false", s, ok)
	}
	if _, ok := Default().Mapping('a', Decompose); ok {
		t.Error("Mapping('a', Decompose): unexpected mapping")
	}
}

func TestHangul(t *testing.T) {
	var buf [3]rune
	if n := DecomposeHangul(0xAC00, &buf); n != 2 || buf[0] != 0x1100 || buf[1] != 0x1161 {
		t.Errorf("DecomposeHangul(U+AC00) = %U", buf[:n])
	}
	if n := DecomposeHangul(0xAC01, &buf); n != 3 || buf[0] != 0x1100 || buf[1] != 0x1161 || buf[2] != 0x11A8 {
		t.Errorf("DecomposeHangul(U+AC01) = %U", buf[:n])
	}
	if n := DecomposeHangul('a', &buf); n != 0 {
		t.Errorf("DecomposeHangul('a') = %d; want: 0", n)
	}
	for r := rune(hangulSBase); r < hangulSBase+hangulSCount; r++ {
		n := DecomposeHangul(r, &buf)
		if got := norm.NFD.String(string(r)); got != string(buf[:n]) {
			t.Fatalf("DecomposeHangul(%U) = %U; want: %U", r, buf[:n], []rune(got))
		}
		c, ok := ComposeHangul(buf[0], buf[1])
		if ok && n == 3 {
			c, ok = ComposeHangul(c, buf[2])
		}
		if !ok || c != r {
			t.Fatalf("ComposeHangul(%U) = %U, %t; want: %U", buf[:n], c, ok, r)
		}
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		a, b rune
		want rune
		ok   bool
	}{
		{'A', 0x0300, 0x00C0, true},
		{'e', 0x0301, 0x00E9, true},
		{0x00C6, 0x0301, 0x01FC, true},
		{0x00C4, 0x0304, 0x01DE, true},
		{0x0CC6, 0x0CC2, 0x0CCA, true},
		{0x0CCA, 0x0CD5, 0x0CCB, true},
		{0x1100, 0x1161, 0xAC00, true},
		{0xAC00, 0x11A8, 0xAC01, true},
		{0xAC01, 0x11A8, 0, false}, // already LVT
		{0x0915, 0x093C, 0, false}, // U+0958 is a composition exclusion
		{0x05D9, 0x05B4, 0, false}, // U+FB1D is a composition exclusion
		{'a', 'b', 0, false},
		{-1, 0x0301, 0, false},
	}
	db := Default()
	for _, test := range tests {
		got, ok := db.Compose(test.a, test.b)
		if got != test.want || ok != test.ok {
			t.Errorf("Compose(%U, %U) = %U, %t; want: %U, %t",
				test.a, test.b, got, ok, test.want, test.ok)
		}
	}
}

func TestComposePairsAreNFC(t *testing.T) {
	db := Default()
	if len(db.pairs) < 800 {
		t.Fatalf("too few composition pairs: %d", len(db.pairs))
	}
	for _, p := range db.pairs {
		a := rune(p.Key >> 21)
		b := rune(p.Key & (1<<21 - 1))
		if got := norm.NFC.String(string([]rune{a, b})); got != string(p.R) {
			t.Errorf("pair (%U, %U) => %U; NFC: %U", a, b, p.R, []rune(got))
		}
	}
}

func TestQuickCheck(t *testing.T) {
	tests := []struct {
		r    rune
		form Form
		want Verdict
	}{
		{'a', NFC, Yes},
		{'a', NFKD, Yes},
		{0x00E9, NFC, Yes},
		{0x00E9, NFD, No},
		{0x0300, NFC, Maybe},
		{0x0300, NFD, Yes},
		{0x0340, NFC, No},
		{0x0958, NFC, No},
		{0x00A0, NFC, Yes},
		{0x00A0, NFKC, No},
		{0x00A0, NFKD, No},
		{0xFB01, NFKC, No},
		{0xAC00, NFC, Yes},
		{0xAC00, NFD, No},
		{0x1161, NFC, Maybe},
		{0x11A8, NFKC, Maybe},
		{0x0301, Form(99), No},
	}
	db := Default()
	for _, test := range tests {
		if got := db.QuickCheck(test.r, test.form); got != test.want {
			t.Errorf("QuickCheck(%U, %d) = %s; want: %s", test.r, test.form, got, test.want)
		}
	}
}

// A Yes verdict must mean the code point is unchanged by the form and a
// No verdict that it is changed.
func TestQuickCheckAgainstNorm(t *testing.T) {
	db := Default()
	forms := []struct {
		form Form
		norm norm.Form
	}{
		{NFC, norm.NFC},
		{NFD, norm.NFD},
		{NFKC, norm.NFKC},
		{NFKD, norm.NFKD},
	}
	for _, r := range assignedRunes(t) {
		s := string(r)
		for _, f := range forms {
			v := db.QuickCheck(r, f.form)
			changed := f.norm.String(s) != s
			if v == Yes && changed || v == No && !changed {
				t.Errorf("QuickCheck(%U, %d) = %s; normalized: %+q", r, f.form, v, f.norm.String(s))
			}
		}
	}
}

func TestCaseMappings(t *testing.T) {
	tests := []struct {
		r    rune
		kind Kind
		want string
	}{
		{'a', Uppercase, "A"},
		{'A', Lowercase, "a"},
		{0x00DF, Uppercase, "SS"},
		{0x00DF, Titlecase, "Ss"},
		{0x00DF, Casefold, "ss"},
		{0x0130, Lowercase, "i\u0307"},
		{0x0149, Uppercase, "\u02BCN"},
		{0x01C6, Titlecase, "\u01C5"},
		{0x01C5, Titlecase, "\u01C5"},
		{0x01C4, Titlecase, "\u01C5"},
		{0x03A3, Lowercase, "\u03C3"},
		{0x03C2, Uppercase, "\u03A3"},
		{0xFB00, Uppercase, "FF"},
		{0x1E9E, Lowercase, "\u00DF"},
		{0x24B6, Lowercase, "\u24D0"},
	}
	db := Default()
	for _, test := range tests {
		got, ok := db.Mapping(test.r, test.kind)
		if !ok || got != test.want {
			t.Errorf("Mapping(%U, %d) = %+q, %t; want: %+q", test.r, test.kind, got, ok, test.want)
		}
	}
	for _, r := range []rune{'1', ' ', 0x4E00, 0x0300} {
		for k := Uppercase; k <= Casefold; k++ {
			if s, ok := db.Mapping(r, k); ok {
				t.Errorf("Mapping(%U, %d) = %+q; want no mapping", r, k, s)
			}
		}
	}
}

func TestCaseFold(t *testing.T) {
	db := Default()
	t.Run("Limits", func(t *testing.T) {
		for r := MaxRune; r < MaxRune+10; r++ {
			x := db.CaseFold(r)
			if x != r {
				t.Errorf("CaseFold(0x%04X) = 0x%04X; want: 0x%04X", r, x, r)
			}
		}
		for r := rune(0); r < ' '; r++ {
			x := db.CaseFold(r)
			if x != r {
				t.Errorf("CaseFold(0x%04X) = 0x%04X; want: 0x%04X", r, x, r)
			}
		}
		if r := db.CaseFold(utf8.RuneError); r != utf8.RuneError {
			t.Errorf("CaseFold(0x%04X) = 0x%04X; want: 0x%04X", utf8.RuneError, r, utf8.RuneError)
		}
	})
	t.Run("Special", func(t *testing.T) {
		tests := []struct{ r, want rune }{
			{'A', 'a'},
			{'k', 'k'},
			{0x212A, 'k'},    // Kelvin
			{0x00B5, 0x03BC}, // micro sign
			{0x0130, 0x0130},
			{0x1E9E, 0x00DF},
			{0x1F88, 0x1F80},
			{0x00DF, 0x00DF},
			{0x13F8, 0x13F0},
		}
		for _, test := range tests {
			if got := db.CaseFold(test.r); got != test.want {
				t.Errorf("CaseFold(%U) = %U; want: %U", test.r, got, test.want)
			}
		}
	})
	// Test against all assigned Unicode code points.
	t.Run("Assigned", func(t *testing.T) {
		n := 0
		for _, r := range assignedRunes(t) {
			sr := db.CaseFold(r)
			if sr != r {
				n++
			}
			if !strings.EqualFold(string(sr), string(r)) {
				t.Errorf("CaseFold(%q) = %q is an invalid fold", r, sr)
			}
		}
		if n == 0 {
			t.Fatal("failed to fold any runes")
		}
	})
}

func BenchmarkLookup(b *testing.B) {
	db := Default()
	runes := [8]rune{'a', 0x00E9, 0x0301, 0x4E00, 0xAC00, 0x1F600, 0x1D400, 0x10FFFF}
	for i := 0; i < b.N; i++ {
		_ = db.Lookup(runes[i%len(runes)])
	}
}
