// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/charlievieth/utext"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want utext.Locale
	}{
		{"", utext.DefaultLocale},
		{"C", utext.DefaultLocale},
		{"POSIX", utext.DefaultLocale},
		{"C.UTF-8", utext.DefaultLocale},
		{"en", utext.DefaultLocale},
		{"en_US.UTF-8", utext.DefaultLocale},
		{"tr", utext.Turkish},
		{"tr-TR", utext.Turkish},
		{"tr_TR.UTF-8", utext.Turkish},
		{"az", utext.Turkish},
		{"az_Latn_AZ", utext.Turkish},
		{"az-Cyrl", utext.DefaultLocale},
		{"az-Cyrl-AZ", utext.DefaultLocale},
		{"lt", utext.Lithuanian},
		{"lt_LT@euro", utext.Lithuanian},
		{"el", utext.Greek},
		{"el-GR", utext.Greek},
		{"de-DE", utext.DefaultLocale},
	}
	for _, test := range tests {
		got, err := Parse(test.name)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("Parse(%q) = %s; want: %s", test.name, got, test.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, name := range []string{"not a locale", "!!", "123456789"} {
		l, err := Parse(name)
		assert.ErrorIs(t, err, ErrInvalidLocale, "Parse(%q)", name)
		assert.Equal(t, utext.DefaultLocale, l, "Parse(%q)", name)
	}
}

func TestMatch(t *testing.T) {
	assert.Equal(t, utext.DefaultLocale, Match())
	assert.Equal(t, utext.Turkish, Match(language.MustParse("tr-TR")))
	assert.Equal(t, utext.Lithuanian, Match(language.English, language.Lithuanian))
	assert.Equal(t, utext.Greek, Match(language.Greek, language.Turkish))
	assert.Equal(t, utext.DefaultLocale, Match(language.MustParse("az-Cyrl")))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "")
	require.Equal(t, utext.DefaultLocale, FromEnv())

	t.Setenv("LANG", "lt_LT.UTF-8")
	require.Equal(t, utext.Lithuanian, FromEnv())

	t.Setenv("LC_CTYPE", "tr_TR.UTF-8")
	require.Equal(t, utext.Turkish, FromEnv())

	t.Setenv("LC_ALL", "el_GR")
	require.Equal(t, utext.Greek, FromEnv())

	t.Setenv("LC_ALL", "!!")
	require.Equal(t, utext.DefaultLocale, FromEnv())
}
