// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package stream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/charlievieth/utext/internal/tables"
)

func segments(src string, flags Flags) []string {
	var s Stream
	s.Init(tables.Default(), []byte(src), flags)
	var a []string
	for n := s.Next(); n != 0; n = s.Next() {
		w := s.Window()
		rs := make([]rune, len(w))
		for i, e := range w {
			rs[i] = e.Rune
		}
		a = append(a, string(rs))
	}
	return a
}

func TestSegments(t *testing.T) {
	tests := []struct {
		in    string
		flags Flags
		want  []string
	}{
		{"", Plain, nil},
		{"ab", Plain, []string{"a", "b"}},
		{"a\u0301\u0323b", Plain, []string{"a\u0301\u0323", "b"}},
		{"\u0301\u0302a", Plain, []string{"\u0301\u0302", "a"}},
		{"a\u0301\u0323b", Decompose, []string{"a\u0323\u0301", "b"}},
		{"\u00E9x", Decompose, []string{"e\u0301", "x"}},
		{"\uFB01", Decompose, []string{"\uFB01"}},
		{"\uFB01", Decompose | Compatibility, []string{"f", "i"}},
		{"e\u0301x", Compose, []string{"\u00E9", "x"}},
		{"a\u0301\u0323", Compose, []string{"\u1EA1\u0301"}},
		{"\u1100\u1161\u11A8", Compose, []string{"\uAC01"}},
		{"\u1100\u1161\u11A8\u0301", Compose, []string{"\uAC01\u0301"}},
		{"\u0CC6\u0CC2\u0CD5", Compose, []string{"\u0CCB"}},
		{"\u0B47\u0B3E", Compose, []string{"\u0B4B"}},
		{"\u0915\u093C", Compose, []string{"\u0915\u093C"}},
		{"\u2126", Compose, []string{"\u03A9"}},
		{"\xC0\x80", Compose, []string{"\uFFFD"}},
	}
	for _, test := range tests {
		got := segments(test.in, test.flags)
		assert.Equal(t, test.want, got, "segments(%+q, %d)", test.in, test.flags)
	}
}

func TestStreamSafeSplit(t *testing.T) {
	src := "a" + strings.Repeat("\u0301", MaxNonStarters+5) + "b"
	segs := segments(src, Decompose)
	require.Len(t, segs, 3)
	assert.Equal(t, MaxNonStarters+1, len([]rune(segs[0])))
	assert.Equal(t, strings.Repeat("\u0301", 5), segs[1])
	assert.Equal(t, "b", segs[2])
	assert.Equal(t, src, strings.Join(segs, ""))
}

func TestState(t *testing.T) {
	var s Stream
	s.Init(tables.Default(), []byte("ab"), Plain)
	require.Equal(t, Start, s.State())
	require.Equal(t, 1, s.Next())
	require.Equal(t, Reading, s.State())

	e, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 'b', e.Rune)

	require.Equal(t, 1, s.Next())
	_, ok = s.Peek()
	require.False(t, ok)
	require.Equal(t, 0, s.Next())
	require.Equal(t, Done, s.State())
	require.Equal(t, 0, s.Next(), "Done streams are not restartable")
	require.Equal(t, 2, s.Offset())

	s.Init(tables.Default(), []byte("c"), Plain)
	require.Equal(t, Start, s.State())
	require.Equal(t, 1, s.Next())
	require.Equal(t, 'c', s.Window()[0].Rune)
}

func TestStreamMatchesNorm(t *testing.T) {
	corpus := []string{
		"\u00C7a me pla\u00EEt, n'est-ce pas?",
		"Ti\u1EBFng Vi\u1EC7t c\u00F3 d\u1EA5u",
		"\u1F04\u03BB\u03C6\u03B1 \u03B2\u1FC6\u03C4\u03B1 \u1FA8\u03B4\u03AE",
		"\uD55C\uAD6D\uC5B4 \uD14D\uC2A4\uD2B8 \u1100\u1161\u11A8",
		"\u0CC6\u0CC2\u0CD5 \u0B47\u0B3E\u0B57",
		"\u01C4emal \uFB01nally \u2460 \u338F",
		"a\u0323\u0301\u0302\u0327b\u0308\u0304",
	}
	forms := []struct {
		flags Flags
		form  norm.Form
	}{
		{Decompose, norm.NFD},
		{Compose, norm.NFC},
		{Decompose | Compatibility, norm.NFKD},
		{Compose | Compatibility, norm.NFKC},
	}
	for _, s := range corpus {
		for _, f := range forms {
			got := strings.Join(segments(s, f.flags), "")
			if want := f.form.String(s); got != want {
				t.Errorf("Stream(%+q, %d) = %+q; want: %+q", s, f.flags, got, want)
			}
		}
	}
}

func TestInitDatabase(t *testing.T) {
	db := tables.Default().WithMapping(tables.Decompose, map[rune]string{
		0x00E9: "x\u0301",
	})
	var s Stream
	s.Init(db, []byte("\u00E9\u00E8"), Decompose)
	var got []rune
	for n := s.Next(); n != 0; n = s.Next() {
		for _, e := range s.Window() {
			got = append(got, e.Rune)
		}
	}
	// U+00E8 has no entry in the replaced table.
	assert.Equal(t, []rune{'x', 0x0301, 0x00E8}, got)
}
