// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"io"
	"testing"
	"unicode/utf8"
)

func TestSeek(t *testing.T) {
	// Byte offsets: a=0, U+20AC=1, U+1F600=4, b=8, len=9.
	text := []byte("a\u20AC\U0001F600b")
	tests := []struct {
		pos, offset, whence int
		want                int
	}{
		{0, 0, io.SeekStart, 0},
		{0, 1, io.SeekStart, 1},
		{0, 2, io.SeekStart, 4},
		{5, 2, io.SeekStart, 4},
		{1, 1, io.SeekCurrent, 4},
		{4, -1, io.SeekCurrent, 1},
		{4, -10, io.SeekCurrent, 0},
		{0, 0, io.SeekEnd, 9},
		{0, -1, io.SeekEnd, 8},
		{0, -2, io.SeekEnd, 4},
		{0, 10, io.SeekStart, 9},
		{100, 0, io.SeekCurrent, 9},
		{-5, 1, io.SeekCurrent, 1},
		{3, 1, 42, 3},
	}
	for _, test := range tests {
		got := Seek(text, test.pos, test.offset, test.whence)
		if got != test.want {
			t.Errorf("Seek(%+q, %d, %d, %d) = %d; want: %d", text,
				test.pos, test.offset, test.whence, got, test.want)
		}
	}
}

func TestSeekMalformed(t *testing.T) {
	text := []byte("a\xE2\x82b\xFF")
	if got := Seek(text, 0, 2, io.SeekStart); got != 3 {
		t.Errorf("Seek(%+q, 0, 2, SeekStart) = %d; want: %d", text, got, 3)
	}
	if got := Seek(text, 0, -1, io.SeekEnd); got != 4 {
		t.Errorf("Seek(%+q, 0, -1, SeekEnd) = %d; want: %d", text, got, 4)
	}
	if got := Len(text); got != 4 {
		t.Errorf("Len(%+q) = %d; want: %d", text, got, 4)
	}
}

// Seeking forward then backward by the same amount must return to the
// start on valid text.
func TestSeekSymmetric(t *testing.T) {
	text := []byte("\u00C7a me pla\u00EEt \uD55C\uAD6D\uC5B4 \U0001F600 \u1E9B\u0323")
	n := utf8.RuneCount(text)
	if l := Len(text); l != n {
		t.Fatalf("Len(%+q) = %d; want: %d", text, l, n)
	}
	for i := 0; i <= n; i++ {
		pos := Seek(text, 0, i, io.SeekStart)
		if back := Seek(text, pos, -i, io.SeekCurrent); back != 0 {
			t.Errorf("Seek(%d, %d, SeekCurrent) = %d; want: 0", pos, -i, back)
		}
		if end := Seek(text, 0, i-n, io.SeekEnd); end != pos {
			t.Errorf("Seek(0, %d, SeekEnd) = %d; want: %d", i-n, end, pos)
		}
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"\u00E9\u20AC\U0001F600", 3},
		{"\xC0\x80", 1},
		{"\xED\xA0\x80", 1},
		{"\xF0\x9F\x98", 1},
	}
	for _, test := range tests {
		if got := Len([]byte(test.in)); got != test.want {
			t.Errorf("Len(%+q) = %d; want: %d", test.in, got, test.want)
		}
	}
}
