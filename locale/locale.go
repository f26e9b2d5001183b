// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package locale resolves locale names to the case mapping rules of the
// utext package.
package locale

import (
	"errors"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/charlievieth/utext"
)

var (
	turkish    = language.Turkish
	azeri      = language.Azerbaijani
	lithuanian = language.Lithuanian
	greek      = language.Greek
	cyrillic   = language.MustParseScript("Cyrl")
)

// ErrInvalidLocale is returned for names that are neither BCP 47 tags nor
// POSIX locale names.
var ErrInvalidLocale = errors.New("locale: invalid locale name")

// Parse returns the utext locale for name. Name may be a BCP 47 tag such
// as "tr-TR" or a POSIX locale name such as "tr_TR.UTF-8" or "lt_LT@euro".
// The empty string and the "C" and "POSIX" locales resolve to
// utext.DefaultLocale.
func Parse(name string) (utext.Locale, error) {
	name = posixToBCP47(name)
	if name == "" {
		return utext.DefaultLocale, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return utext.DefaultLocale, ErrInvalidLocale
	}
	return FromTag(tag), nil
}

// posixToBCP47 strips the codeset and modifier of a POSIX locale name and
// converts it to a BCP 47 tag.
func posixToBCP47(name string) string {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "C", "POSIX":
		return ""
	}
	return strings.ReplaceAll(name, "_", "-")
}

// FromTag returns the utext locale for tag. The Azerbaijani Cyrillic
// script does not use the Turkish dotted and dotless i.
func FromTag(tag language.Tag) utext.Locale {
	base, _ := tag.Base()
	switch base {
	case mustBase(turkish):
		return utext.Turkish
	case mustBase(azeri):
		if script, _ := tag.Script(); script == cyrillic {
			return utext.DefaultLocale
		}
		return utext.Turkish
	case mustBase(lithuanian):
		return utext.Lithuanian
	case mustBase(greek):
		return utext.Greek
	}
	return utext.DefaultLocale
}

func mustBase(tag language.Tag) language.Base {
	b, _ := tag.Base()
	return b
}

var supported = []language.Tag{
	language.Und,
	turkish,
	azeri,
	lithuanian,
	greek,
}

var matcher = language.NewMatcher(supported)

// Match returns the utext locale for the best match of the preferred
// tags, in order of preference.
func Match(preferred ...language.Tag) utext.Locale {
	if len(preferred) == 0 {
		return utext.DefaultLocale
	}
	_, i, conf := matcher.Match(preferred...)
	if conf == language.No {
		return utext.DefaultLocale
	}
	tag := supported[i]
	// Keep the script of the preferred tag so that az-Cyrl is resolved
	// correctly.
	for _, p := range preferred {
		if mustBase(p) == mustBase(tag) {
			return FromTag(p)
		}
	}
	return FromTag(tag)
}

// FromEnv returns the utext locale of the process locale, from the first
// non-empty value of the LC_ALL, LC_CTYPE and LANG environment variables.
// Invalid names resolve to utext.DefaultLocale.
func FromEnv() utext.Locale {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			l, err := Parse(v)
			if err != nil {
				return utext.DefaultLocale
			}
			return l
		}
	}
	return utext.DefaultLocale
}
