// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var fuzzSeeds = []string{
	"a",
	"Hello, World!",
	"\u1EA0\u030A",
	"\u1E9B\u0323",
	"\u00C6\u0301",
	"\u1100\u1161\u11A8",
	"\uAC01",
	"\uFB01\u2460",
	"\u0CC6\u0CC2\u0CD5",
	"\u0F71\u0F72\u0F80",
	"Stra\u00DFe \u039F\u0394\u039F\u03A3",
	"\u0130 I\u0307 \u0131",
	"\U0001F600",
	"\xC0\x80",
	"a\xE2\x82b",
	"\xED\xA0\x80",
	"\xF4\x90\x80\x80",
	"\xFF\xFE",
}

// measureWrite runs fn to measure and then to write src and checks that
// both agree.
func measureWrite(t *testing.T, name string, src []byte, fn func(dst, src []byte) (int, error)) []byte {
	t.Helper()
	n, err := fn(nil, src)
	if err != nil {
		t.Fatalf("%s(nil, %+q): %v", name, src, err)
	}
	dst := make([]byte, n)
	m, err := fn(dst, src)
	if err != nil {
		t.Fatalf("%s(%+q): %v", name, src, err)
	}
	if m != n {
		t.Fatalf("%s(%+q): measured %d bytes but wrote %d", name, src, n, m)
	}
	if !utf8.Valid(dst) {
		t.Fatalf("%s(%+q) = %+q: invalid UTF-8", name, src, dst)
	}
	return dst
}

// Short strings never reach the 30 non-starter limit, even after a
// compatibility decomposition, so they must match golang.org/x/text.
const maxCompareRunes = 10

func FuzzNormalize(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if len(s) == 0 {
			return
		}
		for _, x := range forms {
			got := measureWrite(t, x.flags.String(), []byte(s), func(dst, src []byte) (int, error) {
				return Normalize(dst, src, x.flags)
			})
			if utf8.ValidString(s) && utf8.RuneCountInString(s) <= maxCompareRunes {
				if want := x.form.String(s); string(got) != want {
					t.Errorf("Normalize(%+q, %s) = %+q; want: %+q", s, x.flags, got, want)
				}
			}
		}
	})
}

func FuzzCase(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}
	upper := cases.Upper(language.Und)
	fold := cases.Fold()
	f.Fuzz(func(t *testing.T, s string) {
		if len(s) == 0 {
			return
		}
		for _, locale := range []Locale{DefaultLocale, Turkish, Lithuanian, Greek} {
			measureWrite(t, "ToLower", []byte(s), func(dst, src []byte) (int, error) {
				return ToLower(dst, src, locale)
			})
			measureWrite(t, "ToTitle", []byte(s), func(dst, src []byte) (int, error) {
				return ToTitle(dst, src, locale)
			})
		}
		if !utf8.ValidString(s) {
			return
		}
		got := measureWrite(t, "ToUpper", []byte(s), func(dst, src []byte) (int, error) {
			return ToUpper(dst, src, DefaultLocale)
		})
		if want := upper.String(s); string(got) != want {
			t.Errorf("ToUpper(%+q) = %+q; want: %+q", s, got, want)
		}
		got = measureWrite(t, "Casefold", []byte(s), func(dst, src []byte) (int, error) {
			return Casefold(dst, src, DefaultLocale)
		})
		if want := fold.String(s); string(got) != want {
			t.Errorf("Casefold(%+q) = %+q; want: %+q", s, got, want)
		}
	})
}

func FuzzConvert(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if len(s) == 0 {
			return
		}
		src := []byte(s)
		n, err := UTF8ToUTF16(nil, src)
		if err != nil {
			t.Fatal(err)
		}
		u := make([]uint16, n)
		if _, err := UTF8ToUTF16(u, src); err != nil {
			t.Fatal(err)
		}
		back := measureWrite(t, "UTF16ToUTF8", src, func(dst, _ []byte) (int, error) {
			return UTF16ToUTF8(dst, u)
		})
		if utf8.ValidString(s) && string(back) != s {
			t.Errorf("UTF16ToUTF8(UTF8ToUTF16(%+q)) = %+q", s, back)
		}

		// Every code point survives a round trip through UTF-32 and is
		// counted once by Len.
		n, err = UTF8ToUTF32(nil, src)
		if err != nil {
			t.Fatal(err)
		}
		if l := Len(src); l != n {
			t.Errorf("Len(%+q) = %d; UTF8ToUTF32 measured: %d", s, l, n)
		}
		rs := make([]rune, n)
		if _, err := UTF8ToUTF32(rs, src); err != nil {
			t.Fatal(err)
		}
		back = measureWrite(t, "UTF32ToUTF8", src, func(dst, _ []byte) (int, error) {
			return UTF32ToUTF8(dst, rs)
		})
		if !bytes.Equal(back, []byte(string(rs))) {
			t.Errorf("UTF32ToUTF8(%U) = %+q; want: %+q", rs, back, string(rs))
		}
	})
}
