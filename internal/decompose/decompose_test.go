// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decompose

import (
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/unicode/norm"

	"github.com/charlievieth/utext/internal/tables"
	"github.com/charlievieth/utext/internal/tables/assigned"
)

func collect(src string, kind Kind) []Entry {
	return collectDB(tables.Default(), src, kind)
}

func collectDB(db *tables.Database, src string, kind Kind) []Entry {
	var d Decomposer
	d.Init(db, []byte(src), kind)
	var a []Entry
	for {
		e, ok := d.Next()
		if !ok {
			break
		}
		a = append(a, e)
	}
	return a
}

func runes(a []Entry) []rune {
	rs := make([]rune, len(a))
	for i, e := range a {
		rs[i] = e.Rune
	}
	return rs
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		want []rune
	}{
		{"", Canonical, nil},
		{"abc", Canonical, []rune("abc")},
		{"\u00C5", None, []rune{0x00C5}},
		{"\u00C5", Canonical, []rune{'A', 0x030A}},
		{"\u212B", Canonical, []rune{'A', 0x030A}},
		{"\u01DE", Canonical, []rune{'A', 0x0308, 0x0304}},
		{"\u1E69", Canonical, []rune{'s', 0x0323, 0x0307}},
		{"\uAC00", Canonical, []rune{0x1100, 0x1161}},
		{"\uD55C", Canonical, []rune{0x1112, 0x1161, 0x11AB}},
		{"\u00A0", Canonical, []rune{0x00A0}},
		{"\u00A0", Compatibility, []rune{' '}},
		{"\uFB01", Compatibility, []rune("fi")},
		{"\u01C4", Compatibility, []rune{'D', 'Z', 0x030C}},
		{"\u2460", Compatibility, []rune{'1'}},
		{"\xC0\x80a", Canonical, []rune{0xFFFD, 'a'}},
		{"\xE2\x82", Compatibility, []rune{0xFFFD}},
	}
	for _, test := range tests {
		got := runes(collect(test.in, test.kind))
		if len(got) == 0 {
			got = nil
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Decompose(%+q, %d): (-want, +got)\n%s", test.in, test.kind, diff)
		}
	}
}

func TestDecomposeLongest(t *testing.T) {
	got := runes(collect("\uFDFA", Compatibility))
	want := []rune(norm.NFKD.String("\uFDFA"))
	if len(want) != 18 {
		t.Fatalf("NFKD(U+FDFA): got %d code points; want: 18", len(want))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decompose(U+FDFA): (-want, +got)\n%s", diff)
	}
}

func TestCombiningClass(t *testing.T) {
	for _, e := range collect("a\u0301\u05B0\u0E48\u0316", Canonical) {
		want := norm.NFD.PropertiesString(string(e.Rune)).CCC()
		if e.CCC != want {
			t.Errorf("CCC(%U) = %d; want: %d", e.Rune, e.CCC, want)
		}
	}
}

// The expansion of a single code point must already be in canonical order,
// so it matches x/text for every assigned code point.
func TestDecomposeAssigned(t *testing.T) {
	forms := []struct {
		kind Kind
		form norm.Form
	}{
		{Canonical, norm.NFD},
		{Compatibility, norm.NFKD},
	}
	for _, r := range assigned.AssignedRunes(unicode.Version) {
		s := string(r)
		for _, f := range forms {
			got := string(runes(collect(s, f.kind)))
			if want := f.form.String(s); got != want {
				t.Errorf("Decompose(%U, %d) = %+q; want: %+q", r, f.kind, got, want)
			}
		}
	}
}

func TestOffset(t *testing.T) {
	var d Decomposer
	src := []byte("a\u01DEb")
	d.Init(tables.Default(), src, Canonical)
	type state struct {
		r        rune
		off      int
		buffered int
	}
	want := []state{
		{'a', 1, 0},
		{'A', 3, 2},
		{0x0308, 3, 1},
		{0x0304, 3, 0},
		{'b', 4, 0},
	}
	for i, w := range want {
		e, ok := d.Next()
		if !ok {
			t.Fatalf("%d: Next returned false", i)
		}
		got := state{e.Rune, d.Offset(), d.Buffered()}
		if got != w {
			t.Errorf("%d: got: %+v; want: %+v", i, got, w)
		}
	}
	if _, ok := d.Next(); ok {
		t.Error("Next: want false at end of input")
	}
	if d.Offset() != len(src) {
		t.Errorf("Offset() = %d; want: %d", d.Offset(), len(src))
	}
}

func TestInitResets(t *testing.T) {
	var d Decomposer
	d.Init(tables.Default(), []byte("\u01DE"), Canonical)
	d.Next()
	d.Init(tables.Default(), []byte("x"), Canonical)
	if e, ok := d.Next(); !ok || e.Rune != 'x' {
		t.Fatalf("Next() = %U, %t; want: %U, true", e.Rune, ok, 'x')
	}
	if _, ok := d.Next(); ok {
		t.Fatal("Next: stale entries after Init")
	}
}

// Cyclic mappings stop expanding at MaxDepth and the code point reached
// there is emitted unexpanded.
func TestMaxDepthCycle(t *testing.T) {
	if MaxDepth != 4 {
		t.Fatalf("MaxDepth = %d; the expected values assume 4", MaxDepth)
	}
	two := tables.Default().WithMapping(tables.Decompose, map[rune]string{
		0x00E0: "\u00E1",
		0x00E1: "\u00E0",
	})
	three := tables.Default().WithMapping(tables.Decompose, map[rune]string{
		0x00E0: "\u00E1",
		0x00E1: "\u00E2",
		0x00E2: "\u00E0",
	})
	tests := []struct {
		db   *tables.Database
		in   string
		want []rune
	}{
		// U+00E0 -> U+00E1 -> U+00E0 -> U+00E1 -> U+00E0
		{two, "\u00E0", []rune{0x00E0}},
		{two, "\u00E1", []rune{0x00E1}},
		// U+00E0 -> U+00E1 -> U+00E2 -> U+00E0 -> U+00E1
		{three, "\u00E0", []rune{0x00E1}},
		{three, "\u00E2b\u00E2", []rune{0x00E0, 'b', 0x00E0}},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, runes(collectDB(test.db, test.in, Canonical))); diff != "" {
			t.Errorf("Decompose(%+q): (-want, +got)\n%s", test.in, diff)
		}
	}
}

func TestMaxDepthFanOut(t *testing.T) {
	double := tables.Default().WithMapping(tables.Decompose, map[rune]string{
		0x00E0: "\u00E0\u00E0",
	})
	got := runes(collectDB(double, "\u00E0", Canonical))
	if len(got) != 1<<MaxDepth {
		t.Fatalf("got %d code points; want: %d", len(got), 1<<MaxDepth)
	}

	// 3^MaxDepth exceeds the queue: the overflow is dropped and decoding
	// continues with the next source code point.
	triple := tables.Default().WithMapping(tables.Decompose, map[rune]string{
		0x00E0: "\u00E0\u00E0\u00E0",
	})
	got = runes(collectDB(triple, "\u00E0x", Canonical))
	if len(got) != queueSize+1 {
		t.Fatalf("got %d code points; want: %d", len(got), queueSize+1)
	}
	for i, r := range got[:queueSize] {
		if r != 0x00E0 {
			t.Fatalf("%d: got %U; want: U+00E0", i, r)
		}
	}
	if got[queueSize] != 'x' {
		t.Fatalf("got %U after the expansion; want: 'x'", got[queueSize])
	}
}

func TestHangulMatchesTables(t *testing.T) {
	var buf [3]rune
	for _, r := range []rune{0xAC00, 0xAC01, 0xD7A3} {
		n := tables.DecomposeHangul(r, &buf)
		if diff := cmp.Diff(buf[:n], runes(collect(string(r), Canonical))); diff != "" {
			t.Errorf("Decompose(%U): (-want, +got)\n%s", r, diff)
		}
	}
}

func BenchmarkDecompose(b *testing.B) {
	src := []byte("\u00C7a me pla\u00EEt: \u01C5emal \uFB01nally \uD55C\uAD6D\uC5B4 r\u00E9sum\u00E9")
	b.SetBytes(int64(len(src)))
	var d Decomposer
	for i := 0; i < b.N; i++ {
		d.Init(tables.Default(), src, Compatibility)
		for {
			if _, ok := d.Next(); !ok {
				break
			}
		}
	}
}
