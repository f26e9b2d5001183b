// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/charlievieth/utext/internal/tables"
	"github.com/charlievieth/utext/internal/test"
)

func TestUnicodeVersion(t *testing.T) {
	test.UnicodeVersion(t, tables.UnicodeVersion)
}

var forms = []struct {
	flags Flags
	form  norm.Form
}{
	{NFC, norm.NFC},
	{NFD, norm.NFD},
	{NFKC, norm.NFKC},
	{NFKD, norm.NFKD},
}

func normalizeFunc(flags Flags) test.TransformFunc {
	return test.ByteTransformFunc(func(dst, src []byte) (int, error) {
		return Normalize(dst, src, flags)
	})
}

func TestNormalize(t *testing.T) {
	for _, f := range forms {
		t.Run(f.flags.String(), func(t *testing.T) {
			test.Normalize(t, f.form, normalizeFunc(f.flags))
		})
	}
}

func TestNormalizeFuzz(t *testing.T) {
	for _, f := range forms {
		t.Run(f.flags.String(), func(t *testing.T) {
			test.NormalizeFuzz(t, f.form, normalizeFunc(f.flags))
		})
	}
}

func TestNormalizeOutputFuzz(t *testing.T) {
	test.OutputFuzz(t, "Normalize", normalizeFunc(NFKC))
}

func TestNormalizeASCIIPrefix(t *testing.T) {
	tests := []struct {
		in   string
		flag Flags
		want string
	}{
		{"abc", NFC, "abc"},
		{"abcA\u030A", NFC, "abc\u00C5"},
		{"abc\u00C5", NFD, "abcA\u030A"},
		{"abce\u0301x", NFC, "abc\u00E9x"},
		{"\u00C5abc", NFD, "A\u030Aabc"},
	}
	for _, test := range tests {
		dst := make([]byte, 32)
		n, err := Normalize(dst, []byte(test.in), test.flag)
		if err != nil || string(dst[:n]) != test.want {
			t.Errorf("Normalize(%+q, %s) = %+q, %v; want: %+q", test.in, test.flag,
				dst[:n], err, test.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	s := []byte("\u1E9B\u0323 \u00C6\u0301 \u1100\u1161\u11A8 A\u030A \uFB01")
	for _, f := range forms {
		once := make([]byte, 64)
		n, err := Normalize(once, s, f.flags)
		require.NoError(t, err)
		twice := make([]byte, 64)
		m, err := Normalize(twice, once[:n], f.flags)
		require.NoError(t, err)
		assert.Equal(t, once[:n], twice[:m], "%s", f.flags)
	}
}

func TestNormalizeComposedPair(t *testing.T) {
	dst := make([]byte, 8)
	n, err := Normalize(dst, []byte("\xC3\x86\xCC\x81"), NFC)
	require.NoError(t, err)
	assert.Equal(t, "\xC7\xBC", string(dst[:n]))
}

func TestUpper(t *testing.T)    { test.Upper(t, test.ByteCaseFunc(ToUpper)) }
func TestLower(t *testing.T)    { test.Lower(t, test.ByteCaseFunc(ToLower)) }
func TestTitle(t *testing.T)    { test.Title(t, test.ByteCaseFunc(ToTitle)) }
func TestCasefold(t *testing.T) { test.Casefold(t, test.ByteCaseFunc(Casefold)) }

func TestUpperFuzz(t *testing.T) {
	test.CaseFuzz(t, cases.Upper(language.Und), test.ByteCaseFunc(ToUpper))
}

func TestCasefoldFuzz(t *testing.T) {
	test.CaseFuzz(t, cases.Fold(), test.ByteCaseFunc(Casefold))
}

func TestCaseOutputFuzz(t *testing.T) {
	fns := map[string]func(dst, src []byte, locale Locale) (int, error){
		"ToUpper":  ToUpper,
		"ToLower":  ToLower,
		"ToTitle":  ToTitle,
		"Casefold": Casefold,
	}
	for name, fn := range fns {
		fn := fn
		t.Run(name, func(t *testing.T) {
			test.OutputFuzz(t, name, func(s string) (string, error) {
				return test.ByteCaseFunc(fn)(s, Turkish)
			})
		})
	}
}

func TestCaseMapping(t *testing.T) {
	tests := []struct {
		fn     func(dst, src []byte, locale Locale) (int, error)
		name   string
		in     string
		locale Locale
		want   string
	}{
		{ToUpper, "ToUpper", "i", Turkish, "\xC4\xB0"},
		{ToUpper, "ToUpper", "i", DefaultLocale, "I"},
		{ToTitle, "ToTitle", "RE/wind=cool", DefaultLocale, "Re/Wind=Cool"},
		{Casefold, "Casefold", "Stra\u00DFe", DefaultLocale, "strasse"},
		{ToLower, "ToLower", "\u039F\u0394\u039F\u03A3", DefaultLocale, "\u03BF\u03B4\u03BF\u03C2"},
		{ToLower, "ToLower", "\u039F\u0394\u039F\u03A3", Greek, "\u03BF\u03B4\u03BF\u03C2"},
	}
	for _, test := range tests {
		dst := make([]byte, 32)
		n, err := test.fn(dst, []byte(test.in), test.locale)
		if err != nil || string(dst[:n]) != test.want {
			t.Errorf("%s(%+q, %s) = %+q, %v; want: %+q", test.name, test.in, test.locale,
				dst[:n], err, test.want)
		}
	}
}

func TestFoldRune(t *testing.T) {
	tests := []struct{ r, want rune }{
		{'A', 'a'},
		{'a', 'a'},
		{'\u212A', 'k'},
		{'\u00DF', '\u00DF'},
		{'\u1E9E', '\u00DF'},
		{'\u03A3', '\u03C3'},
		{'\u03C2', '\u03C3'},
		{'1', '1'},
	}
	for _, test := range tests {
		if got := FoldRune(test.r); got != test.want {
			t.Errorf("FoldRune(%U) = %U; want: %U", test.r, got, test.want)
		}
	}
}

// textFuncs are all functions that transform UTF-8 text to UTF-8 text.
var textFuncs = map[string]func(dst, src []byte) (int, error){
	"NFC": func(dst, src []byte) (int, error) { return Normalize(dst, src, NFC) },
	"NFKD": func(dst, src []byte) (int, error) {
		return Normalize(dst, src, NFKD)
	},
	"ToUpper": func(dst, src []byte) (int, error) {
		return ToUpper(dst, src, DefaultLocale)
	},
	"ToLower": func(dst, src []byte) (int, error) {
		return ToLower(dst, src, Lithuanian)
	},
	"ToTitle": func(dst, src []byte) (int, error) {
		return ToTitle(dst, src, Turkish)
	},
	"Casefold": func(dst, src []byte) (int, error) {
		return Casefold(dst, src, DefaultLocale)
	},
}

var measureInputs = []string{
	"a",
	"Stra\u00DFe",
	"\u0130stanbul \u0130",
	"\u01FC\uAC01\uFB01\u2460",
	"\u039F\u0394\u039F\u03A3 \u1F80",
	"bad \xC0\x80 \xE2\x82 \xFF utf8",
	strings.Repeat("\u00E1", 40),
	"a" + strings.Repeat("\u0301", 40),
}

// A nil destination returns the exact size of the output.
func TestMeasure(t *testing.T) {
	for name, fn := range textFuncs {
		for _, s := range measureInputs {
			n, err := fn(nil, []byte(s))
			require.NoError(t, err, "%s(nil, %+q)", name, s)
			dst := make([]byte, n)
			m, err := fn(dst, []byte(s))
			require.NoError(t, err, "%s(%+q)", name, s)
			assert.Equal(t, n, m, "%s(%+q): measured and written sizes differ", name, s)
		}
	}
}

func TestNotEnoughSpace(t *testing.T) {
	for name, fn := range textFuncs {
		for _, s := range measureInputs {
			n, err := fn(nil, []byte(s))
			require.NoError(t, err)
			full := make([]byte, n)
			_, err = fn(full, []byte(s))
			require.NoError(t, err)
			if n == 0 {
				continue
			}
			dst := make([]byte, n-1)
			m, err := fn(dst, []byte(s))
			if !errors.Is(err, ErrNotEnoughSpace) {
				t.Errorf("%s(%+q): error = %v; want: %v", name, s, err, ErrNotEnoughSpace)
				continue
			}
			if m > len(dst) || !bytes.Equal(dst[:m], full[:m]) {
				t.Errorf("%s(%+q): partial output = %+q; want prefix of: %+q", name, s, dst[:m], full)
			}
		}
	}
}

func TestNotEnoughSpacePartial(t *testing.T) {
	dst := make([]byte, 5)
	n, err := ToUpper(dst, []byte("stra\u00DFe"), DefaultLocale)
	require.ErrorIs(t, err, ErrNotEnoughSpace)
	assert.Equal(t, "STRAS", string(dst[:n]))

	dst = make([]byte, 1)
	n, err = Normalize(dst, []byte("abcA\u030A"), NFC)
	require.ErrorIs(t, err, ErrNotEnoughSpace)
	assert.Equal(t, "a", string(dst[:n]))

	dst = make([]byte, 1)
	n, err = Normalize(dst, []byte("A\u030A"), NFC)
	require.ErrorIs(t, err, ErrNotEnoughSpace)
	assert.Equal(t, 0, n)
}

func TestStructuralErrors(t *testing.T) {
	for name, fn := range textFuncs {
		n, err := fn(make([]byte, 8), nil)
		if n != 0 || !errors.Is(err, ErrInvalidData) {
			t.Errorf("%s(empty) = %d, %v; want: 0, %v", name, n, err, ErrInvalidData)
		}
	}
	invalidFlags := []Flags{0, Compatibility, Decompose | Compose, NFC | 8}
	for _, flags := range invalidFlags {
		if _, err := Normalize(nil, []byte("a"), flags); !errors.Is(err, ErrInvalidFlag) {
			t.Errorf("Normalize(%d): error = %v; want: %v", flags, err, ErrInvalidFlag)
		}
		if _, _, err := IsNormalized([]byte("a"), flags); !errors.Is(err, ErrInvalidFlag) {
			t.Errorf("IsNormalized(%d): error = %v; want: %v", flags, err, ErrInvalidFlag)
		}
	}
	if _, err := ToUpper(nil, []byte("a"), Locale(99)); !errors.Is(err, ErrInvalidFlag) {
		t.Errorf("ToUpper(invalid locale): error = %v; want: %v", err, ErrInvalidFlag)
	}
	// Empty input is reported before an invalid flag.
	if _, err := Normalize(nil, nil, 0); !errors.Is(err, ErrInvalidData) {
		t.Errorf("Normalize(empty, invalid): error = %v; want: %v", err, ErrInvalidData)
	}
	// An invalid flag is reported before overlap.
	buf := []byte("abcdef")
	if _, err := Normalize(buf, buf, 0); !errors.Is(err, ErrInvalidFlag) {
		t.Errorf("Normalize(overlap, invalid): error = %v; want: %v", err, ErrInvalidFlag)
	}
}

func TestErrors(t *testing.T) {
	errs := []error{
		ErrInvalidData,
		ErrNotEnoughSpace,
		ErrOverlappingParameters,
		ErrInvalidFlag,
		ErrUnmatchedHighSurrogatePair,
		ErrUnmatchedLowSurrogatePair,
	}
	for i, e1 := range errs {
		require.True(t, strings.HasPrefix(e1.Error(), "utext: "), e1.Error())
		for j, e2 := range errs {
			if got := errors.Is(e1, e2); got != (i == j) {
				t.Errorf("errors.Is(%v, %v) = %t", e1, e2, got)
			}
		}
	}
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "NFC", NFC.String())
	assert.Equal(t, "NFD", NFD.String())
	assert.Equal(t, "NFKC", NFKC.String())
	assert.Equal(t, "NFKD", NFKD.String())
	assert.Equal(t, "Flags(invalid)", Flags(0).String())
}
