// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package casemap

import (
	"testing"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/charlievieth/utext/internal/tables"
)

func mapString(src string, prop Property, locale Locale) string {
	var m Mapper
	m.Init(tables.Default(), []byte(src), prop, locale)
	var rs []rune
	for m.Next() {
		rs = append(rs, m.Runes()...)
	}
	return string(rs)
}

type caseTest struct {
	in     string
	locale Locale
	want   string
}

func runCaseTests(t *testing.T, name string, prop Property, tests []caseTest) {
	t.Helper()
	for _, test := range tests {
		got := mapString(test.in, prop, test.locale)
		if got != test.want {
			t.Errorf("%s(%+q, %s) = %+q; want: %+q", name, test.in, test.locale, got, test.want)
		}
	}
}

func TestUpper(t *testing.T) {
	runCaseTests(t, "Upper", Upper, []caseTest{
		{"", Default, ""},
		{"abc XYZ 123", Default, "ABC XYZ 123"},
		{"i", Default, "I"},
		{"i", Turkish, "\u0130"},
		{"\u0131", Turkish, "I"},
		{"stra\u00DFe", Default, "STRASSE"},
		{"\u0149", Default, "\u02BCN"},
		{"\uFB03", Default, "FFI"},
		{"\u0390", Default, "\u0399\u0308\u0301"},
		{"\u03C2\u03C3", Greek, "\u03A3\u03A3"},
		{"a\u0345", Default, "A\u0399"},
		// The explicit dot of a soft dotted letter is removed.
		{"i\u0307", Lithuanian, "I"},
		{"j\u0307", Lithuanian, "J"},
		{"i\u0307", Default, "I\u0307"},
		{"i\u0323\u0307", Lithuanian, "I\u0323"},
		{"i\u0301\u0307", Lithuanian, "I\u0301\u0307"},
		{"\u00ED\u0307", Lithuanian, "\u00CD\u0307"},
		{"\xC0\x80", Default, "\uFFFD"},
	})
}

func TestLower(t *testing.T) {
	runCaseTests(t, "Lower", Lower, []caseTest{
		{"ABC xyz 123", Default, "abc xyz 123"},
		{"\u0130", Default, "i\u0307"},
		{"\u0130", Turkish, "i"},
		{"I", Turkish, "\u0131"},
		{"I\u0307", Turkish, "i"},
		{"I\u0323\u0307", Turkish, "i\u0323"},
		{"I\u0301\u0307", Turkish, "\u0131\u0301\u0307"},
		{"IJ", Default, "ij"},
		{"\u1E9E", Default, "\u00DF"},

		// Final sigma.
		{"\u039F\u0394\u039F\u03A3", Default, "\u03BF\u03B4\u03BF\u03C2"},
		{"\u039F\u0394\u039F\u03A3", Greek, "\u03BF\u03B4\u03BF\u03C2"},
		{"\u03A3", Default, "\u03C3"},
		{"\u03A3\u0391", Default, "\u03C3\u03B1"},
		{"\u0391\u03A3 \u0391", Default, "\u03B1\u03C2 \u03B1"},
		{"\u0386\u03A3", Default, "\u03AC\u03C2"},
		{"\u0391\u03A3\u0301", Default, "\u03B1\u03C2\u0301"},
		{"1\u03A3", Default, "1\u03C3"},

		// Lithuanian retains the dot when more accents follow.
		{"I\u0300", Lithuanian, "i\u0307\u0300"},
		{"J\u0301", Lithuanian, "j\u0307\u0301"},
		{"\u012E\u0303", Lithuanian, "\u012F\u0307\u0303"},
		{"I", Lithuanian, "i"},
		{"I\u0323", Lithuanian, "i\u0323"},
		{"\u00CC", Lithuanian, "i\u0307\u0300"},
		{"\u00CD", Lithuanian, "i\u0307\u0301"},
		{"\u0128", Lithuanian, "i\u0307\u0303"},
		{"\u00CC", Default, "\u00EC"},
	})
}

func TestTitle(t *testing.T) {
	runCaseTests(t, "Title", Title, []caseTest{
		{"RE/wind=cool", Default, "Re/Wind=Cool"},
		{"hello world", Default, "Hello World"},
		{"HELLO wORLD", Default, "Hello World"},
		{"1ST place", Default, "1st Place"},
		{"\u01C6emal", Default, "\u01C5emal"},
		{"\u01C4EMAL", Default, "\u01C5emal"},
		{"\u00DFa", Default, "Ssa"},
		{"\uFB01x", Default, "Fix"},
		{"\u00E9COLE", Default, "\u00C9cole"},
		{"\u0301ab", Default, "\u0301Ab"},
		{"istanbul", Turkish, "\u0130stanbul"},
		{"TITIZ", Turkish, "T\u0131t\u0131z"},
		{"i\u0307x", Lithuanian, "Ix"},
		{"\u039F\u0394\u039F\u03A3 \u03A3", Default, "\u039F\u03B4\u03BF\u03C2 \u03A3"},
		// Letter numbers (Nl) start a word.
		{"\u2177", Default, "\u2167"},
		{"\u2177x", Default, "\u2167x"},
		{"\u2167\u2167 \u2170v", Default, "\u2167\u2177 \u2160v"},
	})
}

func TestFold(t *testing.T) {
	runCaseTests(t, "Fold", Fold, []caseTest{
		{"Stra\u00DFe", Default, "strasse"},
		{"\u212A", Default, "k"},
		{"\u03A3\u03C2", Default, "\u03C3\u03C3"},
		{"\u0130", Default, "i\u0307"},
		{"\u0130", Turkish, "i"},
		{"I", Turkish, "\u0131"},
		{"I", Default, "i"},
		{"\u1F88", Default, "\u1F00\u03B9"},
	})
}

// Outside of the locale rules the mapping must agree with x/text.
func TestAgainstCases(t *testing.T) {
	corpus := []string{
		"The Quick Brown Fox Jumps Over The Lazy Dog",
		"\u00C7a me pla\u00EEt, n'est-ce pas?",
		"\u00C4rger \u00FCber \u00D6l und Stra\u00DFe",
		"\u01C5emal \u01C4 \u01C6",
		"\u1F48\u03B4\u03C5\u03C3\u03C3\u03B5\u03CD\u03C2 \u0391\u03A3 \u0391\u03A3.",
		"\uFB01 \uFB02 \uFB00 \uFB03 \u0149 \u01F0 \u0390",
		"\u041A\u0438\u0440\u0438\u043B\u043B\u0438\u0446\u0430 \u0418 \u0416\u0401\u041B\u0422\u042B\u0419",
		"\u13E3\u13B3\u13A9 \uAB70",
		"\U00010400\U00010428 \U0001E900\U0001E922",
		"\u24D0\u24B6 \u2170\u2160",
	}
	tests := []struct {
		prop  Property
		caser cases.Caser
	}{
		{Upper, cases.Upper(language.Und)},
		{Lower, cases.Lower(language.Und)},
		{Fold, cases.Fold()},
	}
	for _, s := range corpus {
		for _, test := range tests {
			want := test.caser.String(s)
			if got := mapString(s, test.prop, Default); got != want {
				t.Errorf("Mapper(%+q, %d) = %+q; want: %+q", s, test.prop, got, want)
			}
		}
	}
}

func TestMeasureWrite(t *testing.T) {
	var m Mapper
	m.Init(tables.Default(), []byte("stra\u00DFe \u0130"), Upper, Default)
	var out []byte
	total := 0
	for m.Next() {
		n := m.Measure()
		total += n
		buf := make([]byte, n)
		w, ok := m.Write(buf)
		if !ok || w != n {
			t.Fatalf("Write(%d bytes) = %d, %t; want: %d, true", n, w, ok, n)
		}
		if n > 0 {
			if w, ok := m.Write(buf[:n-1]); ok || w >= n {
				t.Fatalf("Write(%d bytes) = %d, %t; want a short write", n-1, w, ok)
			}
		}
		out = append(out, buf...)
	}
	if want := "STRASSE \u0130"; string(out) != want {
		t.Errorf("got: %q; want: %q", out, want)
	}
	if total != len(out) {
		t.Errorf("Measure: %d; want: %d", total, len(out))
	}
}

func TestLocaleValid(t *testing.T) {
	for l := Default; l < numLocales; l++ {
		if !l.Valid() {
			t.Errorf("%s.Valid() = false", l)
		}
	}
	if numLocales.Valid() {
		t.Errorf("Locale(%d).Valid() = true", numLocales)
	}
}

func BenchmarkUpper(b *testing.B) {
	src := []byte("\u00C7a me pla\u00EEt, n'est-ce pas? \u1F48\u03B4\u03C5\u03C3\u03C3\u03B5\u03CD\u03C2 stra\u00DFe")
	b.SetBytes(int64(len(src)))
	var m Mapper
	for i := 0; i < b.N; i++ {
		m.Init(tables.Default(), src, Upper, Default)
		for m.Next() {
		}
	}
}
