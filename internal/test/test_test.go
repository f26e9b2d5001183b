// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package test

import (
	"errors"
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// Make sure the normalization tests agree with x/text.
func TestNormalizeTests(t *testing.T) {
	for form, tests := range normalizeTests {
		for _, test := range tests {
			if !utf8.ValidString(test.in) {
				continue
			}
			if got := form.String(test.in); got != test.out {
				t.Errorf("invalid test: %d: Normalize(%+q) = %+q; want: %+q", form, test.in, got, test.out)
			}
		}
	}
}

func TestByteTransformFunc(t *testing.T) {
	upper := ByteTransformFunc(func(dst, src []byte) (int, error) {
		if dst == nil {
			return len(src), nil
		}
		for i, c := range src {
			if 'a' <= c && c <= 'z' {
				c -= 'a' - 'A'
			}
			dst[i] = c
		}
		return len(src), nil
	})
	s, err := upper("abc")
	require.NoError(t, err)
	require.Equal(t, "ABC", s)

	short := ByteTransformFunc(func(dst, src []byte) (int, error) {
		if dst == nil {
			return len(src) + 1, nil
		}
		return copy(dst, src), nil
	})
	_, err = short("abc")
	require.Error(t, err)

	errFail := errors.New("fail")
	failing := ByteTransformFunc(func(dst, src []byte) (int, error) {
		return 0, errFail
	})
	_, err = failing("abc")
	require.ErrorIs(t, err, errFail)
}

func TestRandString(t *testing.T) {
	rr := rand.New(rand.NewSource(1))
	buf := make([]rune, 0, 32)
	for i := 0; i < 1000; i++ {
		s := randString(rr, buf, maxFuzzRunes)
		if !utf8.ValidString(s) {
			t.Fatalf("randString: invalid UTF-8: %+q", s)
		}
		if n := utf8.RuneCountInString(s); n == 0 || n > maxFuzzRunes {
			t.Fatalf("randString: invalid length %d: %+q", n, s)
		}
	}
	invalid := 0
	for i := 0; i < 1000; i++ {
		if !utf8.ValidString(randInvalidString(rr, buf, maxFuzzRunes)) {
			invalid++
		}
	}
	if invalid == 0 {
		t.Fatal("randInvalidString: failed to generate any invalid strings")
	}
}
