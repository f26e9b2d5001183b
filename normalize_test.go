// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNormalized(t *testing.T) {
	tests := []struct {
		in       string
		flags    Flags
		want     Verdict
		verified int
	}{
		{"abc", NFC, Yes, 3},
		{"abc", NFKD, Yes, 3},
		{"\u00C5", NFC, Yes, 2},
		{"\u00C5", NFD, No, 0},
		{"A\u030A", NFD, Yes, 3},
		{"abA\u030A", NFC, Maybe, 3},
		{"a\u0323\u0301", NFD, Yes, 5},
		{"a\u0301\u0323", NFD, No, 3},
		{"\uFB01", NFC, Yes, 3},
		{"\uFB01", NFKC, No, 0},
		{"x\uFB01", NFKD, No, 1},
		{"\uAC00", NFC, Yes, 3},
		{"\uAC00", NFD, No, 0},
		{"\u1100\u1161", NFC, Maybe, 3},
		{"a\xFFb", NFC, No, 1},
		{"a\uFFFDb", NFC, Yes, 5},
	}
	for _, test := range tests {
		v, n, err := IsNormalized([]byte(test.in), test.flags)
		require.NoError(t, err)
		if v != test.want || n != test.verified {
			t.Errorf("IsNormalized(%+q, %s) = %s, %d; want: %s, %d",
				test.in, test.flags, v, n, test.want, test.verified)
		}
	}
}

func TestIsNormalizedErrors(t *testing.T) {
	_, _, err := IsNormalized(nil, NFC)
	assert.ErrorIs(t, err, ErrInvalidData)
	_, _, err = IsNormalized([]byte("a"), Decompose|Compose)
	assert.ErrorIs(t, err, ErrInvalidFlag)
	_, _, err = IsNormalized([]byte("a"), Compatibility)
	assert.ErrorIs(t, err, ErrInvalidFlag)
}

// Yes and No must agree with golang.org/x/text. A Maybe is only resolved by
// normalizing.
func TestIsNormalizedAgreesWithNorm(t *testing.T) {
	inputs := []string{
		"The quick brown fox",
		"\u00C7a me pla\u00EEt",
		"C\u0327a me plai\u0302t",
		"\u1F04\u03BB\u03C6\u03B1",
		"\uD55C\uAD6D\uC5B4 \u1100\u1161\u11A8",
		"\u01C4emal \uFB01nally \u2460",
		"a\u0323\u0327\u0301\u0302",
		"a\u0301\u0327",
		"\u0CCB \u0CC6\u0CD5",
	}
	for _, f := range forms {
		for _, s := range inputs {
			v, _, err := IsNormalized([]byte(s), f.flags)
			require.NoError(t, err)
			normalized := f.form.IsNormalString(s)
			switch v {
			case Yes:
				assert.True(t, normalized, "IsNormalized(%+q, %s) = Yes", s, f.flags)
			case No:
				assert.False(t, normalized, "IsNormalized(%+q, %s) = No", s, f.flags)
			}
		}
	}
}

// Normalized output must never be reported as not normalized.
func TestIsNormalizedOutput(t *testing.T) {
	src := []byte("\u1E9B\u0323 \u01FC \uAC01 A\u030A \uFB01 a\u0301\u0323")
	for _, f := range forms {
		n, err := Normalize(nil, src, f.flags)
		require.NoError(t, err)
		dst := make([]byte, n)
		_, err = Normalize(dst, src, f.flags)
		require.NoError(t, err)
		v, _, err := IsNormalized(dst, f.flags)
		require.NoError(t, err)
		assert.NotEqual(t, No, v, "IsNormalized(%+q, %s)", dst, f.flags)
	}
}
