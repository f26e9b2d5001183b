// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"encoding/binary"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xunicode "golang.org/x/text/encoding/unicode"
)

func toUTF16(t testing.TB, s string) []uint16 {
	t.Helper()
	n, err := UTF8ToUTF16(nil, []byte(s))
	require.NoError(t, err)
	u := make([]uint16, n)
	m, err := UTF8ToUTF16(u, []byte(s))
	require.NoError(t, err)
	require.Equal(t, n, m)
	return u
}

func TestUTF8ToUTF16(t *testing.T) {
	tests := []struct {
		in   string
		want []uint16
	}{
		{"a", []uint16{'a'}},
		{"a\u20AC\U0001F600", []uint16{'a', 0x20AC, 0xD83D, 0xDE00}},
		{"\U0010FFFF", []uint16{0xDBFF, 0xDFFF}},
		{"\uFFFF", []uint16{0xFFFF}},
		{"\xC0\x80", []uint16{0xFFFD}},
		{"\xED\xA0\x80", []uint16{0xFFFD}},
		{"a\xE2\x82b", []uint16{'a', 0xFFFD, 'b'}},
	}
	for _, test := range tests {
		got := toUTF16(t, test.in)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("UTF8ToUTF16(%+q) mismatch (-want +got):\n%s", test.in, diff)
		}
	}
}

// Valid text must encode the same as golang.org/x/text.
func TestUTF8ToUTF16MatchesXText(t *testing.T) {
	enc := xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM).NewEncoder()
	for _, s := range []string{
		"hello",
		"\u00C7a me pla\u00EEt",
		"\uD55C\uAD6D\uC5B4",
		"\U0001F600\U0001F4A9 \U00010400",
	} {
		b, err := enc.Bytes([]byte(s))
		require.NoError(t, err)
		want := make([]uint16, len(b)/2)
		for i := range want {
			want[i] = binary.LittleEndian.Uint16(b[2*i:])
		}
		assert.Equal(t, want, toUTF16(t, s), "%+q", s)
	}
}

func TestUTF16ToUTF8(t *testing.T) {
	tests := []struct {
		in   []uint16
		want string
	}{
		{[]uint16{'a'}, "a"},
		{[]uint16{0xD83D, 0xDE00}, "\U0001F600"},
		{[]uint16{0xD800, 'a'}, "\uFFFDa"},
		{[]uint16{'a', 0xD800}, "a\uFFFD"},
		{[]uint16{0xDC00, 0xD800}, "\uFFFD\uFFFD"},
		{[]uint16{0xDBFF, 0xDFFF}, "\U0010FFFF"},
	}
	for _, test := range tests {
		n, err := UTF16ToUTF8(nil, test.in)
		require.NoError(t, err)
		dst := make([]byte, n)
		m, err := UTF16ToUTF8(dst, test.in)
		require.NoError(t, err)
		if got := string(dst[:m]); got != test.want || m != n {
			t.Errorf("UTF16ToUTF8(%04X) = %+q, %d; want: %+q, %d", test.in, got, m, test.want, n)
		}
	}
}

func TestUTF8ToUTF32(t *testing.T) {
	src := []byte("a\xE2\x82b\U0001F600")
	n, err := UTF8ToUTF32(nil, src)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	dst := make([]rune, n)
	m, err := UTF8ToUTF32(dst, src)
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 0xFFFD, 'b', 0x1F600}, dst[:m])

	m, err = UTF8ToUTF32(dst[:2], src)
	assert.ErrorIs(t, err, ErrNotEnoughSpace)
	assert.Equal(t, 2, m)
}

func TestUTF32ToUTF8(t *testing.T) {
	tests := []struct {
		in   []rune
		want string
		err  error
	}{
		{[]rune{0x1F600}, "\xF0\x9F\x98\x80", nil},
		{[]rune{'a', 0x20AC}, "a\u20AC", nil},
		{[]rune{0xD83D, 0xDE00}, "\U0001F600", nil},
		{[]rune{0xD800, 'a'}, "\uFFFDa", ErrUnmatchedHighSurrogatePair},
		{[]rune{'a', 0xDC00}, "a\uFFFD", ErrUnmatchedLowSurrogatePair},
		{[]rune{0xDC00, 0xD800}, "\uFFFD\uFFFD", ErrUnmatchedLowSurrogatePair},
		{[]rune{0x110000, -1}, "\uFFFD\uFFFD", nil},
	}
	for _, test := range tests {
		n, err := UTF32ToUTF8(nil, test.in)
		if !errors.Is(err, test.err) && !(err == nil && test.err == nil) {
			t.Errorf("UTF32ToUTF8(nil, %U): error = %v; want: %v", test.in, err, test.err)
		}
		// The size is returned even when a surrogate error is reported.
		dst := make([]byte, n)
		m, err := UTF32ToUTF8(dst, test.in)
		if test.err == nil {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, test.err)
		}
		if got := string(dst[:m]); got != test.want || m != n {
			t.Errorf("UTF32ToUTF8(%U) = %+q, %d; want: %+q, %d", test.in, got, m, test.want, n)
		}
	}
}

func TestConvertNotEnoughSpace(t *testing.T) {
	u := make([]uint16, 3)
	n, err := UTF8ToUTF16(u, []byte("a\u20AC\U0001F600"))
	require.ErrorIs(t, err, ErrNotEnoughSpace)
	assert.Equal(t, 2, n)

	b := make([]byte, 3)
	n, err = UTF16ToUTF8(b, []uint16{'a', 0x20AC})
	require.ErrorIs(t, err, ErrNotEnoughSpace)
	assert.Equal(t, 1, n)

	n, err = UTF32ToUTF8(b, []rune{'a', 'b', 0x1F600})
	require.ErrorIs(t, err, ErrNotEnoughSpace)
	assert.Equal(t, 2, n)
}

func TestConvertInvalidData(t *testing.T) {
	_, err := UTF8ToUTF16(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidData)
	_, err = UTF16ToUTF8(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidData)
	_, err = UTF8ToUTF32(nil, []byte{})
	assert.ErrorIs(t, err, ErrInvalidData)
	_, err = UTF32ToUTF8(nil, []rune{})
	assert.ErrorIs(t, err, ErrInvalidData)
	_, err = UTF8ToWide(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidData)
	_, err = WideToUTF8(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestWideRoundTrip(t *testing.T) {
	for _, s := range []string{"a", "\u00E9\u20AC", "\U0001F600 \U0010FFFF", "\uD55C\uAD6D\uC5B4"} {
		n, err := UTF8ToWide(nil, []byte(s))
		require.NoError(t, err)
		w := make([]Wide, n)
		_, err = UTF8ToWide(w, []byte(s))
		require.NoError(t, err)

		n, err = WideToUTF8(nil, w)
		require.NoError(t, err)
		b := make([]byte, n)
		n, err = WideToUTF8(b, w)
		require.NoError(t, err)
		assert.Equal(t, s, string(b[:n]))
	}
}

func TestUTF16RoundTrip(t *testing.T) {
	var buf [utf8.UTFMax]byte
	for r := rune(0); r <= utf8.MaxRune; r += 97 {
		if 0xD800 <= r && r <= 0xDFFF {
			continue
		}
		s := buf[:utf8.EncodeRune(buf[:], r)]
		u := toUTF16(t, string(s))
		dst := make([]byte, 4)
		n, err := UTF16ToUTF8(dst, u)
		if err != nil || string(dst[:n]) != string(s) {
			t.Fatalf("UTF16ToUTF8(UTF8ToUTF16(%U)) = %+q, %v", r, dst[:n], err)
		}
	}
}
