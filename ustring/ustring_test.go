// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package ustring

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/charlievieth/utext"
	"github.com/charlievieth/utext/internal/test"
)

var forms = []struct {
	flags utext.Flags
	form  norm.Form
}{
	{utext.NFC, norm.NFC},
	{utext.NFD, norm.NFD},
	{utext.NFKC, norm.NFKC},
	{utext.NFKD, norm.NFKD},
}

func normalizeFunc(flags utext.Flags) test.TransformFunc {
	return func(s string) (string, error) { return Normalize(s, flags) }
}

func TestNormalize(t *testing.T) {
	for _, f := range forms {
		t.Run(f.flags.String(), func(t *testing.T) {
			test.Normalize(t, f.form, normalizeFunc(f.flags))
		})
	}
}

func TestNormalizeFuzz(t *testing.T) {
	if testing.Short() {
		t.Skip("short test")
	}
	for _, f := range forms {
		t.Run(f.flags.String(), func(t *testing.T) {
			test.NormalizeFuzz(t, f.form, normalizeFunc(f.flags))
		})
	}
}

func TestUpper(t *testing.T)    { test.Upper(t, ToUpper) }
func TestLower(t *testing.T)    { test.Lower(t, ToLower) }
func TestTitle(t *testing.T)    { test.Title(t, ToTitle) }
func TestCasefold(t *testing.T) { test.Casefold(t, Casefold) }

func TestCasefoldFuzz(t *testing.T) {
	test.CaseFuzz(t, cases.Fold(), Casefold)
}

func TestUpperFuzz(t *testing.T) {
	test.CaseFuzz(t, cases.Upper(language.Und), ToUpper)
}

// The empty string is valid input for every string function.
func TestEmpty(t *testing.T) {
	for _, f := range forms {
		s, err := Normalize("", f.flags)
		assert.NoError(t, err)
		assert.Equal(t, "", s)

		v, n, err := IsNormalized("", f.flags)
		assert.NoError(t, err)
		assert.Equal(t, utext.Yes, v)
		assert.Equal(t, 0, n)
	}
	for name, fn := range map[string]test.CaseFunc{
		"ToUpper":  ToUpper,
		"ToLower":  ToLower,
		"ToTitle":  ToTitle,
		"Casefold": Casefold,
	} {
		s, err := fn("", utext.DefaultLocale)
		assert.NoError(t, err, name)
		assert.Equal(t, "", s, name)
	}
	assert.Nil(t, UTF8ToUTF16(""))
	assert.Equal(t, "", UTF16ToUTF8(nil))
	assert.Nil(t, UTF8ToUTF32(""))
	s, err := UTF32ToUTF8(nil)
	assert.NoError(t, err)
	assert.Equal(t, "", s)
	assert.Nil(t, UTF8ToWide(""))
	s, err = WideToUTF8(nil)
	assert.NoError(t, err)
	assert.Equal(t, "", s)
	assert.Equal(t, 0, Len(""))
	assert.Equal(t, 0, IsCategory("", utext.Letter))
	assert.Equal(t, 0, Seek("", 0, 1, io.SeekStart))
}

func TestInvalidFlags(t *testing.T) {
	_, err := Normalize("a", utext.Compatibility)
	assert.ErrorIs(t, err, utext.ErrInvalidFlag)
	_, _, err = IsNormalized("", utext.Decompose|utext.Compose)
	assert.ErrorIs(t, err, utext.ErrInvalidFlag)
	_, err = ToUpper("a", utext.Locale(99))
	assert.ErrorIs(t, err, utext.ErrInvalidFlag)
}

func TestIsNormalized(t *testing.T) {
	v, n, err := IsNormalized("\u00C5", utext.NFC)
	require.NoError(t, err)
	assert.Equal(t, utext.Yes, v)
	assert.Equal(t, 2, n)

	v, n, err = IsNormalized("a\u0301\u0323", utext.NFD)
	require.NoError(t, err)
	assert.Equal(t, utext.No, v)
	assert.Equal(t, 3, n)
}

func TestEqualFold(t *testing.T) {
	tests := []struct {
		s, t string
		want bool
	}{
		{"", "", true},
		{"Go", "GO", true},
		{"stra\u00DFe", "STRASSE", true},
		{"\u212A", "k", true},
		{"\u1F88", "\u1F00\u03B9", true},
		{"\u03A3\u03C2", "\u03C3\u03C3", true},
		{"a", "b", false},
		{"\u0130", "i", false},
	}
	for _, test := range tests {
		if got := EqualFold(test.s, test.t); got != test.want {
			t.Errorf("EqualFold(%+q, %+q) = %t; want: %t", test.s, test.t, got, test.want)
		}
	}
}

func TestConvert(t *testing.T) {
	s := "a\u20AC\U0001F600"
	u := UTF8ToUTF16(s)
	assert.Equal(t, []uint16{'a', 0x20AC, 0xD83D, 0xDE00}, u)
	assert.Equal(t, s, UTF16ToUTF8(u))

	rs := UTF8ToUTF32(s)
	assert.Equal(t, []rune{'a', 0x20AC, 0x1F600}, rs)
	out, err := UTF32ToUTF8(rs)
	require.NoError(t, err)
	assert.Equal(t, s, out)

	out, err = WideToUTF8(UTF8ToWide(s))
	require.NoError(t, err)
	assert.Equal(t, s, out)

	assert.Equal(t, []rune{'a', 0xFFFD, 'b'}, UTF8ToUTF32("a\xE2\x82b"))
	assert.Equal(t, "\uFFFDa", UTF16ToUTF8([]uint16{0xDC00, 'a'}))
}

// The converted text is returned along with a surrogate error.
func TestUTF32ToUTF8Surrogate(t *testing.T) {
	s, err := UTF32ToUTF8([]rune{'a', 0xD800, 'b'})
	assert.ErrorIs(t, err, utext.ErrUnmatchedHighSurrogatePair)
	assert.Equal(t, "a\uFFFDb", s)

	s, err = UTF32ToUTF8([]rune{0xDC00})
	assert.ErrorIs(t, err, utext.ErrUnmatchedLowSurrogatePair)
	assert.Equal(t, "\uFFFD", s)
}

func TestSeekLen(t *testing.T) {
	s := "a\u20AC\U0001F600b"
	assert.Equal(t, 4, Len(s))
	assert.Equal(t, 4, Seek(s, 0, 2, io.SeekStart))
	assert.Equal(t, 8, Seek(s, 0, -1, io.SeekEnd))
	assert.Equal(t, 1, Seek(s, 4, -1, io.SeekCurrent))
	assert.Equal(t, 2, IsCategory("ab1", utext.Letter))
}

func TestLenIsCategoryMatchBytes(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"a\u20AC\U0001F600b",
		"\xC0\x80",
		"\xED\xA0\x80x",
		"\xF4\x90\x80\x80",
		"\xE2\x82",
		"\xFF\xFEab",
		"\u00C5\u0301 1",
	}
	cats := []utext.Category{utext.Letter, utext.Letter | utext.Mark, utext.Number | utext.Separator}
	for _, s := range tests {
		assert.Equal(t, utext.Len([]byte(s)), Len(s), "Len(%+q)", s)
		for _, c := range cats {
			assert.Equal(t, utext.IsCategory([]byte(s), c), IsCategory(s, c),
				"IsCategory(%+q, %d)", s, c)
		}
	}
	allocs := testing.AllocsPerRun(100, func() {
		_ = Len("a\u20AC\U0001F600b")
		_ = IsCategory("\u00C5\u00E9x", utext.Letter)
	})
	assert.Zero(t, allocs)
}
