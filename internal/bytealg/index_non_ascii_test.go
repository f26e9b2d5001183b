// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package bytealg

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

var nonASCIITests = []string{
	"",
	"a",
	"abc",
	"abcdefg",
	"abcdefgh",
	"abcdefghi",
	"\u00E9",
	"a\u00E9",
	"abcdefg\u00E9",
	"abcdefgh\u00E9",
	"0123456789\u0130\u0130",
	"01234567890123456789\u0130\u0130",
	"\x80",
	"abcdefgh\xff",
	"\U0010FFFF",
	strings.Repeat("a", 64) + "\u03B2",
	strings.Repeat("a", 65),
}

func testIndexNonASCII(t *testing.T, name string, fn func(s string) int) {
	const maxFailures = 80

	index := func(s string) int {
		for i := 0; i < len(s); i++ {
			if s[i] >= utf8.RuneSelf {
				return i
			}
		}
		return -1
	}

	t.Run("Tests", func(t *testing.T) {
		for _, s := range nonASCIITests {
			if got, want := fn(s), index(s); got != want {
				t.Errorf("%s(%q) = %d; want: %d", name, s, got, want)
			}
		}
	})

	t.Run("LongString", func(t *testing.T) {
		fails := 0

		long := strings.Repeat("a", 4096) + "\u03B2a\u03B2a"
		idx := index(long)
		for i := 0; i < len(long); i++ {
			s := long[i:]
			want := idx - i
			if want < 0 {
				want = index(s)
			}
			got := fn(s)
			if got != want {
				fails++
				if fails <= maxFailures {
					t.Errorf("%s(long[%d:]) = %d; want: %d", name, i, got, want)
				}
			}
		}

		if fails > 0 {
			t.Errorf("Failed: %d/%d", fails, len(long))
		}
	})

	// Every offset of the non-ASCII byte within a word.
	t.Run("Offsets", func(t *testing.T) {
		for n := 0; n < 40; n++ {
			b := []byte(strings.Repeat("x", n) + "\xC3\xA9" + "yy")
			if got := fn(string(b)); got != n {
				t.Errorf("%s(%q) = %d; want: %d", name, b, got, n)
			}
		}
	})
}

func TestIndexNonASCII(t *testing.T) {
	testIndexNonASCII(t, "IndexNonASCII", IndexNonASCII)
}

func TestIndexByteNonASCII(t *testing.T) {
	testIndexNonASCII(t, "IndexByteNonASCII", func(s string) int {
		return IndexByteNonASCII([]byte(s))
	})
}

func TestIsASCII(t *testing.T) {
	for _, s := range nonASCIITests {
		want := IndexNonASCII(s) == -1
		if got := IsASCII([]byte(s)); got != want {
			t.Errorf("IsASCII(%q) = %t; want: %t", s, got, want)
		}
	}
}

var indexSizes = []int{10, 32, 4 << 10, 4 << 20, 64 << 20}

var bmbuf []byte

func valName(x int) string {
	if s := x >> 20; s<<20 == x {
		return strconv.Itoa(s) + "M"
	}
	if s := x >> 10; s<<10 == x {
		return strconv.Itoa(s) + "K"
	}
	return strconv.Itoa(x)
}

func benchIndexNonASCII(b *testing.B, sizes []int, f func(b *testing.B, n int)) {
	for _, n := range sizes {
		b.Run(valName(n), func(b *testing.B) {
			if len(bmbuf) < n {
				bmbuf = make([]byte, n)
			}
			b.SetBytes(int64(n))
			f(b, n)
		})
	}
}

func BenchmarkIndexByteNonASCII(b *testing.B) {
	benchIndexNonASCII(b, indexSizes, bmIndexNonASCII(IndexByteNonASCII))
}

func bmIndexNonASCII(index func([]byte) int) func(b *testing.B, n int) {
	return func(b *testing.B, n int) {
		buf := bmbuf[0:n]
		for i := 0; i < b.N; i++ {
			_ = index(buf)
		}
	}
}
