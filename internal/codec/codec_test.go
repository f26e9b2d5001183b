// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package codec

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

type decodeTest struct {
	in   string
	r    rune
	size int
}

var decodeTests = []decodeTest{
	{"", RuneError, 0},
	{"a", 'a', 1},
	{"\x00", 0, 1},
	{"\x7f", 0x7F, 1},
	{"\u00E9", 0xE9, 2},
	{"\u20AC", 0x20AC, 3},
	{"\U0001F600", 0x1F600, 4},
	{"\U0010FFFF", MaxRune, 4},

	// Overlong forms are a single malformed unit.
	{"\xC0\x80", RuneError, 2},
	{"\xC1\xBF", RuneError, 2},
	{"\xE0\x80\x80", RuneError, 3},
	{"\xE0\x9F\xBF", RuneError, 3},
	{"\xF0\x80\x80\x80", RuneError, 4},
	{"\xF0\x8F\xBF\xBF", RuneError, 4},

	// Surrogates and values above MaxRune.
	{"\xED\xA0\x80", RuneError, 3},
	{"\xED\xBF\xBF", RuneError, 3},
	{"\xF4\x90\x80\x80", RuneError, 4},
	{"\xF7\xBF\xBF\xBF", RuneError, 4},

	// Historic 5 and 6 byte forms.
	{"\xF8\x88\x80\x80\x80", RuneError, 5},
	{"\xFC\x84\x80\x80\x80\x80", RuneError, 6},

	// Invalid lead bytes and stray continuation bytes.
	{"\x80", RuneError, 1},
	{"\xBF", RuneError, 1},
	{"\xFE", RuneError, 1},
	{"\xFF", RuneError, 1},

	// Missing continuation bytes end the unit before the offending byte.
	{"\xC3", RuneError, 1},
	{"\xE2\x82", RuneError, 2},
	{"\xE2\x82A", RuneError, 2},
	{"\xF0\x9F\x98", RuneError, 3},
	{"\xF0\x9F\x98a", RuneError, 3},
	{"\xE2a\x82", RuneError, 1},
	{"\xC3\xC3\xA9", RuneError, 1},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		r, size := Decode([]byte(test.in))
		if r != test.r || size != test.size {
			t.Errorf("Decode(%q) = %U, %d; want: %U, %d", test.in, r, size, test.r, test.size)
		}
		r, size = DecodeString(test.in)
		if r != test.r || size != test.size {
			t.Errorf("DecodeString(%q) = %U, %d; want: %U, %d", test.in, r, size, test.r, test.size)
		}
	}
}

// Each overlong sequence must produce exactly one RuneError.
func TestDecodeOverlongCount(t *testing.T) {
	for _, s := range []string{"\xC0\x80", "\xE0\x80\x80", "\xF0\x80\x80\x80"} {
		if n := Count([]byte(s)); n != 1 {
			t.Errorf("Count(%q) = %d; want: 1", s, n)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	var buf [UTFMax]byte
	for r := rune(0); r <= MaxRune; r++ {
		if surrogateMin <= r && r <= surrogateMax {
			continue
		}
		n := Encode(buf[:], r)
		if want := utf8.RuneLen(r); n != want {
			t.Fatalf("Encode(%U) = %d; want: %d", r, n, want)
		}
		if n != EncodedLen(r) {
			t.Fatalf("EncodedLen(%U) = %d; want: %d", r, EncodedLen(r), n)
		}
		got, size := Decode(buf[:n])
		if got != r || size != n {
			t.Fatalf("Decode(Encode(%U)) = %U, %d; want: %U, %d", r, got, size, r, n)
		}
	}
}

// Surrogates are written as ordinary three byte sequences but rejected on
// read.
func TestSurrogateAsymmetry(t *testing.T) {
	var buf [UTFMax]byte
	n := Encode(buf[:], 0xD800)
	if want := []byte("\xED\xA0\x80"); !bytes.Equal(buf[:n], want) {
		t.Fatalf("Encode(U+D800) = %q; want: %q", buf[:n], want)
	}
	if r, size := Decode(buf[:n]); r != RuneError || size != 3 {
		t.Fatalf("Decode(%q) = %U, %d; want: %U, %d", buf[:n], r, size, RuneError, 3)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{0, "\x00"},
		{'A', "A"},
		{0x7FF, "\xDF\xBF"},
		{0x800, "\xE0\xA0\x80"},
		{0xFFFF, "\xEF\xBF\xBF"},
		{0x1F600, "\xF0\x9F\x98\x80"},
		{MaxRune + 1, "\xEF\xBF\xBD"},
		{-1, "\xEF\xBF\xBD"},
	}
	for _, test := range tests {
		var buf [UTFMax]byte
		n := Encode(buf[:], test.r)
		if got := string(buf[:n]); got != test.want {
			t.Errorf("Encode(%U) = %q; want: %q", test.r, got, test.want)
		}
		if n != EncodedLen(test.r) {
			t.Errorf("EncodedLen(%U) = %d; want: %d", test.r, EncodedLen(test.r), n)
		}
	}
}

func TestEncodeNotEnoughSpace(t *testing.T) {
	buf := []byte{'x', 'x', 'x'}
	if n := Encode(buf, 0x1F600); n != 0 {
		t.Fatalf("Encode: wrote %d bytes into a 3 byte buffer", n)
	}
	if string(buf) != "xxx" {
		t.Fatalf("Encode: modified buffer: %q", buf)
	}
	if n := Encode(nil, 'a'); n != 0 {
		t.Fatalf("Encode(nil): returned %d; want: 0", n)
	}
}

// units splits p into the units found by Decode.
func units(p []byte) []string {
	var a []string
	for len(p) > 0 {
		_, n := Decode(p)
		a = append(a, string(p[:n]))
		p = p[n:]
	}
	return a
}

// reverseUnits splits p into the units found by DecodeLast.
func reverseUnits(p []byte) []string {
	var a []string
	for len(p) > 0 {
		_, n := DecodeLast(p)
		a = append([]string{string(p[len(p)-n:])}, a...)
		p = p[:len(p)-n]
	}
	return a
}

var reverseTests = []string{
	"",
	"abc",
	"h\u00E9llo w\u00F6rld",
	"\U0001F600\u20AC\u00E9a",
	"\xC3\xA9\x80",
	"\x80\x80\x80",
	"\xE2\x28\xA1",
	"\xE0\x80\x80\x80",
	"\xF0\x9F\x98",
	"a\xF0\x9F\x98",
	"\xC0\x80\xC0\x80",
	"\xED\xA0\x80\xED\xB0\x80",
	"\xF8\x88\x80\x80\x80a",
	"\xFE\xFF\xC3",
}

func TestDecodeLast(t *testing.T) {
	for _, s := range reverseTests {
		want := units([]byte(s))
		got := reverseUnits([]byte(s))
		if len(got) != len(want) {
			t.Errorf("DecodeLast(%q): units = %q; want: %q", s, got, want)
			continue
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("DecodeLast(%q): units = %q; want: %q", s, got, want)
				break
			}
		}
	}
}

func TestCount(t *testing.T) {
	for _, s := range reverseTests {
		if got, want := Count([]byte(s)), len(units([]byte(s))); got != want {
			t.Errorf("Count(%q) = %d; want: %d", s, got, want)
		}
	}
}

func FuzzDecode(f *testing.F) {
	for _, test := range decodeTests {
		f.Add([]byte(test.in))
	}
	for _, s := range reverseTests {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, p []byte) {
		var buf [UTFMax]byte
		total := 0
		for q := p; len(q) > 0; {
			r, n := Decode(q)
			if n <= 0 || n > len(q) {
				t.Fatalf("Decode(%q) = %U, %d: invalid size", q, r, n)
			}
			if r != RuneError {
				// Valid input must round trip byte for byte.
				m := Encode(buf[:], r)
				if !bytes.Equal(buf[:m], q[:n]) {
					t.Fatalf("Encode(Decode(%q)) = %q", q[:n], buf[:m])
				}
				if !utf8.Valid(q[:n]) {
					t.Fatalf("Decode accepted invalid UTF-8: %q", q[:n])
				}
			}
			total += n
			q = q[n:]
		}
		if total != len(p) {
			t.Fatalf("decoded %d bytes; want: %d", total, len(p))
		}
		if got, want := reverseUnits(p), units(p); len(got) != len(want) {
			t.Fatalf("DecodeLast(%q): units = %q; want: %q", p, got, want)
		}
	})
}
