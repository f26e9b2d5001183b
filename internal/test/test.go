// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package test contains the test suites shared by the utext and ustring
// packages. Suites take plain functions so that this package does not
// depend on either of them.
package test

import (
	"fmt"
	"runtime"
	"testing"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/charlievieth/utext/internal/casemap"
)

// TransformFunc converts s into a new string.
type TransformFunc func(s string) (string, error)

// ByteTransformFunc adapts a measure-then-write conversion to a
// TransformFunc. The measured size must match the written size.
func ByteTransformFunc(fn func(dst, src []byte) (int, error)) TransformFunc {
	return func(s string) (string, error) {
		src := []byte(s)
		n, err := fn(nil, src)
		if err != nil {
			return "", err
		}
		dst := make([]byte, n)
		m, err := fn(dst, src)
		if err != nil {
			return string(dst[:m]), err
		}
		if m != n {
			return string(dst[:m]), fmt.Errorf("measured %d bytes but wrote %d", n, m)
		}
		return string(dst), nil
	}
}

// CaseFunc maps the case of s using the rules of locale.
type CaseFunc func(s string, locale casemap.Locale) (string, error)

// ByteCaseFunc adapts a measure-then-write case mapping to a CaseFunc.
func ByteCaseFunc(fn func(dst, src []byte, locale casemap.Locale) (int, error)) CaseFunc {
	return func(s string, locale casemap.Locale) (string, error) {
		return ByteTransformFunc(func(dst, src []byte) (int, error) {
			return fn(dst, src, locale)
		})(s)
	}
}

func UnicodeVersion(t *testing.T, version string) {
	if version != unicode.Version {
		t.Skipf("unicode.Version (%s) != UnicodeVersion (%s):\n"+
			"The version of Unicode included in the version of Go (%s) running this test\n"+
			"does not match the Unicode version of golang.org/x/text. Tests that compare\n"+
			"against the unicode package are skipped.",
			unicode.Version, version, runtime.Version())
	}
}

type caseTest struct {
	in     string
	locale casemap.Locale
	out    string
}

var upperTests = []caseTest{
	{"abc XYZ 123", casemap.Default, "ABC XYZ 123"},
	{"i", casemap.Default, "I"},
	{"i", casemap.Turkish, "\u0130"},
	{"\u0131", casemap.Default, "I"},
	{"stra\u00DFe", casemap.Default, "STRASSE"},
	{"\u0149", casemap.Default, "\u02BCN"},
	{"\uFB01", casemap.Default, "FI"},
	{"\u1F80", casemap.Default, "\u1F08\u0399"},
	{"\u01C6", casemap.Default, "\u01C4"},
	{"i\u0307", casemap.Lithuanian, "I"},
	{"i\u0307", casemap.Default, "I\u0307"},
	{"\xC0\x80", casemap.Default, "\uFFFD"},
	{"a\xE2\x82", casemap.Default, "A\uFFFD"},
}

var lowerTests = []caseTest{
	{"ABC xyz 123", casemap.Default, "abc xyz 123"},
	{"\u0130", casemap.Default, "i\u0307"},
	{"\u0130", casemap.Turkish, "i"},
	{"I", casemap.Turkish, "\u0131"},
	{"I\u0307", casemap.Turkish, "i"},
	{"\u039F\u0394\u039F\u03A3", casemap.Default, "\u03BF\u03B4\u03BF\u03C2"},
	{"\u03A3", casemap.Default, "\u03C3"},
	{"\u0391\u03A3 \u0391", casemap.Default, "\u03B1\u03C2 \u03B1"},
	{"I\u0300", casemap.Lithuanian, "i\u0307\u0300"},
	{"\u00CC", casemap.Lithuanian, "i\u0307\u0300"},
	{"\u00CC", casemap.Default, "\u00EC"},
}

var titleTests = []caseTest{
	{"RE/wind=cool", casemap.Default, "Re/Wind=Cool"},
	{"hello world", casemap.Default, "Hello World"},
	{"1ST place", casemap.Default, "1st Place"},
	{"\u01C6emal", casemap.Default, "\u01C5emal"},
	{"\u00DFa", casemap.Default, "Ssa"},
	{"istanbul", casemap.Turkish, "\u0130stanbul"},
	{"TITIZ", casemap.Turkish, "T\u0131t\u0131z"},
	{"\u2177x", casemap.Default, "\u2167x"},
}

var foldTests = []caseTest{
	{"Stra\u00DFe", casemap.Default, "strasse"},
	{"\u212A", casemap.Default, "k"},
	{"\u03A3\u03C2", casemap.Default, "\u03C3\u03C3"},
	{"\u0130", casemap.Default, "i\u0307"},
	{"\u0130", casemap.Turkish, "i"},
	{"I", casemap.Turkish, "\u0131"},
	{"\u1F88", casemap.Default, "\u1F00\u03B9"},
}

func runCaseTests(t *testing.T, name string, fn CaseFunc, tests []caseTest) {
	t.Helper()
	for _, test := range tests {
		got, err := fn(test.in, test.locale)
		if err != nil {
			t.Errorf("%s(%+q, %s): unexpected error: %v", name, test.in, test.locale, err)
			continue
		}
		if got != test.out {
			t.Errorf("%s(%+q, %s) = %+q; want: %+q", name, test.in, test.locale, got, test.out)
		}
	}
}

func Upper(t *testing.T, fn CaseFunc)    { runCaseTests(t, "ToUpper", fn, upperTests) }
func Lower(t *testing.T, fn CaseFunc)    { runCaseTests(t, "ToLower", fn, lowerTests) }
func Title(t *testing.T, fn CaseFunc)    { runCaseTests(t, "ToTitle", fn, titleTests) }
func Casefold(t *testing.T, fn CaseFunc) { runCaseTests(t, "Casefold", fn, foldTests) }

type normalizeTest struct {
	in, out string
}

var normalizeTests = map[norm.Form][]normalizeTest{
	norm.NFD: {
		{"\u00C5", "A\u030A"},
		{"\u212B", "A\u030A"},
		{"\u1E0B\u0323", "d\u0323\u0307"},
		{"\u1E9B\u0323", "\u017F\u0323\u0307"},
		{"a\u0301\u0323", "a\u0323\u0301"},
		{"\uAC01", "\u1100\u1161\u11A8"},
		{"\uFB01", "\uFB01"},
		{"\xFF", "\uFFFD"},
	},
	norm.NFC: {
		{"A\u030A", "\u00C5"},
		{"\u212B", "\u00C5"},
		{"\u00C6\u0301", "\u01FC"},
		{"d\u0323\u0307", "\u1E0D\u0307"},
		{"\u1E9B\u0323", "\u1E9B\u0323"},
		{"\u1100\u1161\u11A8", "\uAC01"},
		{"\u0958", "\u0915\u093C"},
		{"\u0CC6\u0CC2\u0CD5", "\u0CCB"},
		{"\u0B47\u0B3E", "\u0B4B"},
		{"\uFB01", "\uFB01"},
		{"a\xE2\x82b", "a\uFFFDb"},
	},
	norm.NFKD: {
		{"\uFB01", "fi"},
		{"\u1E9B\u0323", "s\u0323\u0307"},
		{"\u2460", "1"},
		{"\u00A0", " "},
		{"\uAC00", "\u1100\u1161"},
	},
	norm.NFKC: {
		{"\uFB01", "fi"},
		{"\u1E9B\u0323", "\u1E69"},
		{"\u2460", "1"},
		{"\u3131\u314F", "\uAC00"},
		{"\u1100\u1161", "\uAC00"},
	},
}

// normalizeCorpus is checked against golang.org/x/text/unicode/norm.
var normalizeCorpus = []string{
	"The quick brown fox",
	"\u00C7a me pla\u00EEt, n'est-ce pas?",
	"Ti\u1EBFng Vi\u1EC7t c\u00F3 d\u1EA5u",
	"\u1F04\u03BB\u03C6\u03B1 \u1FA8\u03B4\u03AE",
	"\uD55C\uAD6D\uC5B4 \uAC01 \u1100\u1161\u11A8",
	"\u01C4emal \uFB01nally \u2460 \u338F",
	"a\u0323\u0327\u0301\u0302b\u0308\u0304",
	"\u0CCB \u0B4C \u0CC6\u0CD5",
	"\u0F71\u0F71\u0F72\u0F80\u0F74",
}

// Normalize tests fn, which must normalize to form.
func Normalize(t *testing.T, form norm.Form, fn TransformFunc) {
	t.Helper()
	tests, ok := normalizeTests[form]
	if !ok {
		t.Fatalf("invalid normalization form: %d", form)
	}
	for _, test := range tests {
		got, err := fn(test.in)
		if err != nil {
			t.Errorf("Normalize(%+q): unexpected error: %v", test.in, err)
			continue
		}
		if got != test.out {
			t.Errorf("Normalize(%+q) = %+q; want: %+q", test.in, got, test.out)
		}
	}
	for _, s := range normalizeCorpus {
		want := form.String(s)
		got, err := fn(s)
		if err != nil {
			t.Errorf("Normalize(%+q): unexpected error: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("Normalize(%+q) = %+q; want: %+q", s, got, want)
		}
		// Normalization is idempotent.
		if again, _ := fn(got); again != got {
			t.Errorf("Normalize(%+q) = %+q; not idempotent: %+q", got, again, got)
		}
	}
}
