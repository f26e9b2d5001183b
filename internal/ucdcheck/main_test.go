// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unicodeDataSample = `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0300;COMBINING GRAVE ACCENT;Mn;230;NSM;;;;;N;NON-SPACING GRAVE;;;;
AC00;<Hangul Syllable, First>;Lo;0;L;;;;;N;;;;;
D7A3;<Hangul Syllable, Last>;Lo;0;L;;;;;N;;;;;
`

const caseFoldingSample = `# CaseFolding-15.0.0.txt
# comment

0041; C; 0061; # LATIN CAPITAL LETTER A
00DF; F; 0073 0073; # LATIN SMALL LETTER SHARP S
0130; T; 0069; # LATIN CAPITAL LETTER I WITH DOT ABOVE
1E9E; F; 0073 0073; # LATIN CAPITAL LETTER SHARP S
1E9E; S; 00DF; # LATIN CAPITAL LETTER SHARP S
`

const normalizationSample = `@Part0 # Specific cases
#
1E0A;1E0A;0044 0307;1E0A;0044 0307; # LATIN CAPITAL LETTER D WITH DOT ABOVE
1E0C 0307;1E0C 0307;0044 0323 0307;1E0C 0307;0044 0323 0307; # comment
FB01;FB01;FB01;0066 0069;0066 0069; # LATIN SMALL LIGATURE FI
AC01;AC01;1100 1161 11A8;AC01;1100 1161 11A8; # Hangul
`

func TestParseUnicodeData(t *testing.T) {
	ranges, err := parseUnicodeData(strings.NewReader(unicodeDataSample))
	require.NoError(t, err)
	want := []unicodeDataRange{
		{Lo: 0x41, Hi: 0x41, Category: "Lu"},
		{Lo: 0x300, Hi: 0x300, Category: "Mn", CCC: 230},
		{Lo: 0xAC00, Hi: 0xD7A3, Category: "Lo"},
	}
	if diff := cmp.Diff(want, ranges); diff != "" {
		t.Errorf("parseUnicodeData() mismatch (-want +got):\n%s", diff)
	}

	_, err = parseUnicodeData(strings.NewReader("D7A3;<Hangul Syllable, Last>;Lo;0;L;;;;;N;;;;;\n"))
	assert.Error(t, err)
	_, err = parseUnicodeData(strings.NewReader("ZZZZ;BAD;Lo;0;L;;;;;N;;;;;\n"))
	assert.Error(t, err)
}

func TestParseCaseFolding(t *testing.T) {
	folds, err := parseCaseFolding(strings.NewReader(caseFoldingSample))
	require.NoError(t, err)
	want := []caseFolding{
		{R: 0x41, Status: 'C', Mapping: []rune{0x61}},
		{R: 0xDF, Status: 'F', Mapping: []rune{0x73, 0x73}},
		{R: 0x130, Status: 'T', Mapping: []rune{0x69}},
		{R: 0x1E9E, Status: 'F', Mapping: []rune{0x73, 0x73}},
		{R: 0x1E9E, Status: 'S', Mapping: []rune{0xDF}},
	}
	if diff := cmp.Diff(want, folds); diff != "" {
		t.Errorf("parseCaseFolding() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNormalizationTest(t *testing.T) {
	tests, err := parseNormalizationTest(strings.NewReader(normalizationSample))
	require.NoError(t, err)
	require.Len(t, tests, 4)
	assert.Equal(t, 3, tests[0].Line)
	assert.Equal(t, [5]string{"\u1E0A", "\u1E0A", "D\u0307", "\u1E0A", "D\u0307"}, tests[0].C)
}

func TestParseRunes(t *testing.T) {
	rs, err := parseRunes("0044 0323  0307")
	require.NoError(t, err)
	assert.Equal(t, []rune{0x44, 0x323, 0x307}, rs)

	_, err = parseRunes("110000")
	assert.Error(t, err)
	_, err = parseRunes("XYZ")
	assert.Error(t, err)
}

func TestChecks(t *testing.T) {
	var c checker
	ranges, err := parseUnicodeData(strings.NewReader(unicodeDataSample))
	require.NoError(t, err)
	c.checkUnicodeData(ranges)

	folds, err := parseCaseFolding(strings.NewReader(caseFoldingSample))
	require.NoError(t, err)
	c.checkCaseFolding(folds)

	tests, err := parseNormalizationTest(strings.NewReader(normalizationSample))
	require.NoError(t, err)
	c.checkNormalization(tests)

	require.Empty(t, c.failures)

	// A wrong expectation must be reported.
	c.checkCaseFolding([]caseFolding{{R: 'A', Status: 'C', Mapping: []rune{'b'}}})
	require.Len(t, c.failures, 2) // Casefold and FoldRune
	names, counts := summarize(c.failures)
	assert.Equal(t, []string{"CaseFolding"}, names)
	assert.Equal(t, 2, counts["CaseFolding"])
}

func TestCheckerMaxErrors(t *testing.T) {
	c := checker{maxErrors: 1}
	c.checkCaseFolding([]caseFolding{
		{R: 'A', Status: 'S', Mapping: []rune{'b'}},
		{R: 'B', Status: 'S', Mapping: []rune{'c'}},
	})
	assert.Len(t, c.failures, 1)
}

func TestFetch(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path != "/15.0.0/ucd/CaseFolding.txt" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(caseFoldingSample))
	}))
	defer srv.Close()

	ctx := context.Background()
	dir := t.TempDir()
	name := filepath.Join(dir, "15.0.0", caseFoldingFile)
	url := fileURL(srv.URL, "15.0.0", caseFoldingFile)

	cached, err := fetch(ctx, srv.Client(), url, name)
	require.NoError(t, err)
	assert.False(t, cached)
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, caseFoldingSample, string(data))

	cached, err = fetch(ctx, srv.Client(), url, name)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, int32(1), requests.Load())

	// Failed downloads must not leave a file behind.
	missing := filepath.Join(dir, "15.0.0", unicodeDataFile)
	_, err = fetch(ctx, srv.Client(), fileURL(srv.URL, "15.0.0", unicodeDataFile), missing)
	require.Error(t, err)
	_, err = os.Stat(missing)
	assert.True(t, os.IsNotExist(err), "file not removed: %v", err)
}

func TestParseFlags(t *testing.T) {
	conf, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"data", "fold", "norm"}, conf.Checks)
	assert.Equal(t, 50, conf.MaxErrors)

	conf, err = parseFlags([]string{"-u", "14.0.0", "--check", "fold", "--offline", "--cache-dir", "/tmp/x"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "14.0.0", conf.Version)
	assert.Equal(t, []string{"fold"}, conf.Checks)
	assert.True(t, conf.Offline)
	assert.Equal(t, filepath.Join("/tmp/x", "14.0.0", caseFoldingFile), conf.filename(caseFoldingFile))

	_, err = parseFlags([]string{"--check", "bogus"}, io.Discard)
	assert.Error(t, err)
}

func TestParseFlagsUsage(t *testing.T) {
	var buf bytes.Buffer
	_, err := parseFlags([]string{"--help"}, &buf)
	require.ErrorIs(t, err, flag.ErrHelp)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Usage: ucdcheck [OPTION]...\n"), "usage: %q", out)
	for _, name := range []string{"--unicode", "--cache-dir", "--offline", "--check"} {
		assert.Contains(t, out, name)
	}
}

func TestRunOffline(t *testing.T) {
	dir := t.TempDir()
	conf := &config{Version: "15.0.0", CacheDir: dir, Offline: true, Checks: []string{"fold"}}
	_, err := run(context.Background(), conf)
	require.Error(t, err)

	name := conf.filename(caseFoldingFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, os.WriteFile(name, []byte(caseFoldingSample), 0644))
	failures, err := run(context.Background(), conf)
	require.NoError(t, err)
	assert.Empty(t, failures)
}
