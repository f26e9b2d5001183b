// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package compose

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/charlievieth/utext/internal/decompose"
	"github.com/charlievieth/utext/internal/tables"
)

func entries(s string) []Entry {
	var d decompose.Decomposer
	d.Init(tables.Default(), []byte(s), decompose.Canonical)
	var a []Entry
	for {
		e, ok := d.Next()
		if !ok {
			return a
		}
		a = append(a, e)
	}
}

func str(w []Entry) string {
	rs := make([]rune, len(w))
	for i, e := range w {
		rs[i] = e.Rune
	}
	return string(rs)
}

func TestReorder(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"a\u0301\u0323", "a\u0323\u0301"},
		{"a\u0323\u0301", "a\u0323\u0301"},
		{"a\u0301\u0300\u0316\u0317", "a\u0316\u0317\u0301\u0300"},
		// Starters split runs.
		{"\u0301a\u0316", "\u0301a\u0316"},
		{"a\u0301b\u0301\u0323", "a\u0301b\u0323\u0301"},
		{"\u05B8\u05B0", "\u05B0\u05B8"},
	}
	for _, test := range tests {
		w := entries(test.in)
		Reorder(w)
		if got := str(w); got != test.want {
			t.Errorf("Reorder(%+q) = %+q; want: %+q", test.in, got, test.want)
		}
	}
}

func TestReorderStable(t *testing.T) {
	// U+0300, U+0301 and U+0302 all have combining class 230.
	marks := []Entry{
		{Rune: 0x0302, CCC: 230},
		{Rune: 0x0316, CCC: 220},
		{Rune: 0x0300, CCC: 230},
		{Rune: 0x0317, CCC: 220},
		{Rune: 0x0301, CCC: 230},
	}
	w := append([]Entry{{Rune: 'a'}}, marks...)
	Reorder(w)
	want := []Entry{
		{Rune: 'a'},
		{Rune: 0x0316, CCC: 220},
		{Rune: 0x0317, CCC: 220},
		{Rune: 0x0302, CCC: 230},
		{Rune: 0x0300, CCC: 230},
		{Rune: 0x0301, CCC: 230},
	}
	if diff := cmp.Diff(want, w); diff != "" {
		t.Errorf("Reorder: (-want, +got)\n%s", diff)
	}
}

func TestReorderMatchesNorm(t *testing.T) {
	marks := []rune{0x0300, 0x0301, 0x0316, 0x0323, 0x0327, 0x05B0, 0x0E48, 0x0345, 0x035C}
	rr := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		rs := []rune{'a'}
		for j := rr.Intn(8); j >= 0; j-- {
			rs = append(rs, marks[rr.Intn(len(marks))])
		}
		s := string(rs)
		w := entries(s)
		Reorder(w)
		if got, want := str(w), norm.NFD.String(s); got != want {
			t.Fatalf("Reorder(%+q) = %+q; want: %+q", s, got, want)
		}
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a"},
		{"A\u0300", "\u00C0"},
		{"\u00C6\u0301", "\u01FC"},
		{"A\u0308\u0304", "\u01DE"},
		{"s\u0307\u0323", "\u1E69"},
		// U+0323 is not blocked by the earlier U+0301 with a higher class.
		{"a\u0301\u0323", "\u1EA1\u0301"},
		// Two marks of the same class: the second is blocked.
		{"a\u0301\u0301", "\u00E1\u0301"},
		{"a\u0305\u0301", "a\u0305\u0301"},
		{"\u1100\u1161", "\uAC00"},
		{"\u1100\u1161\u11A8", "\uAC01"},
		// U+0958 is excluded from composition.
		{"\u0915\u093C", "\u0915\u093C"},
		{"\u0301a", "\u0301a"},
		{"e\u0301e\u0301", "\u00E9\u00E9"},
	}
	for _, test := range tests {
		w := entries(test.in)
		Reorder(w)
		n := Compose(tables.Default(), w)
		if got := str(w[:n]); got != test.want {
			t.Errorf("Compose(%+q) = %+q; want: %+q", test.in, got, test.want)
		}
	}
}

func TestComposeMatchesNorm(t *testing.T) {
	corpus := []string{
		"\u00C7a me pla\u00EEt, n'est-ce pas?",
		"Ti\u1EBFng Vi\u1EC7t c\u00F3 d\u1EA5u",
		"\u1F04\u03BB\u03C6\u03B1 \u03B2\u1FC6\u03C4\u03B1 \u1F68\u03B9\u03B4\u03AE",
		"\uD55C\uAD6D\uC5B4 \uD14D\uC2A4\uD2B8",
		"\u3094 \u30AC \u30D1",
		"a\u0328\u0301\u0307",
		"\u0CC6\u0CC2\u0CD5",
		"\u0B47\u0B3E",
		"\u00C5 \u03A9 K",
		"\u0F71\u0F72\u0F74",
	}
	for _, s := range corpus {
		w := entries(s)
		Reorder(w)
		n := Compose(tables.Default(), w)
		if got, want := str(w[:n]), norm.NFC.String(s); got != want {
			t.Errorf("Compose(%+q) = %+q; want: %+q", s, got, want)
		}
	}
}

func TestComposeShortWindow(t *testing.T) {
	db := tables.Default()
	require.Equal(t, 0, Compose(db, nil))
	w := []Entry{{Rune: 0x0301, CCC: 230}}
	require.Equal(t, 1, Compose(db, w))
	require.Equal(t, rune(0x0301), w[0].Rune)
}
