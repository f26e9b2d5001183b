// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package main

import (
	"bytes"
	"go/format"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"unicode"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/charlievieth/utext/internal/tables"
)

var buildOnce = sync.OnceValue(build)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func skipVersion(t *testing.T) {
	if norm.Version != unicode.Version || tables.UnicodeVersion != unicode.Version {
		t.Skipf("Unicode versions differ: tables: %s norm: %s unicode: %s",
			tables.UnicodeVersion, norm.Version, unicode.Version)
	}
}

// The generated tables must be current with the builder.
func TestTablesUpToDate(t *testing.T) {
	skipVersion(t)
	if testing.Short() {
		t.Skip("short test")
	}
	want := buildOnce()
	db := tables.Default()
	require.Equal(t, want.Version, db.Version())

	forms := []tables.Form{tables.NFC, tables.NFD, tables.NFKC, tables.NFKD}
	for _, rr := range want.Records {
		for r := rr.Lo; r <= rr.Hi; r++ {
			rec := db.Lookup(r)
			if rec.Category != tables.Category(1)<<rr.Cat || rec.CCC != rr.CCC {
				t.Fatalf("Lookup(%U) = %s %d; want: %s %d", r, rec.Category, rec.CCC,
					categoryNames[rr.Cat], rr.CCC)
			}
			for _, f := range forms {
				v := tables.Verdict(rr.QC>>(2*f)) & 3
				if got := rec.QuickCheck(f); got != v {
					t.Fatalf("QuickCheck(%U, %d) = %s; want: %s", r, f, got, v)
				}
			}
		}
	}

	for k := 0; k < numKinds; k++ {
		m := want.Maps[k]
		for r := rune(0); r < normLimit; r++ {
			s, ok := db.Mapping(r, tables.Kind(k))
			exp, found := m[r]
			if ok != found || s != exp {
				t.Errorf("Mapping(%U, %s) = %+q, %t; want: %+q, %t",
					r, kindNames[k].Const, s, ok, exp, found)
			}
		}
	}

	for _, p := range want.Pairs {
		a := rune(p.Key >> 21)
		b := rune(p.Key & (1<<21 - 1))
		if r, ok := db.Compose(a, b); !ok || r != p.R {
			t.Errorf("Compose(%U, %U) = %U, %t; want: %U", a, b, r, ok, p.R)
		}
	}
}

func TestBuildPairs(t *testing.T) {
	skipVersion(t)
	if testing.Short() {
		t.Skip("short test")
	}
	db := buildOnce()
	require.Greater(t, len(db.Pairs), 900)
	for i := 1; i < len(db.Pairs); i++ {
		if db.Pairs[i-1].Key >= db.Pairs[i].Key {
			t.Fatalf("pairs not sorted at %d: %#x >= %#x", i, db.Pairs[i-1].Key, db.Pairs[i].Key)
		}
	}
	for _, p := range db.Pairs {
		s := string([]rune{rune(p.Key >> 21), rune(p.Key & (1<<21 - 1))})
		assert.Equal(t, string(p.R), norm.NFC.String(s))
	}
}

func TestGenerate(t *testing.T) {
	long := strings.Repeat("\u0627\u0644", 40)
	db := &database{
		Version: "15.0.0",
		Records: []recordRange{
			{Lo: 0, Hi: 0x1f, record: record{Cat: 25}},
			{Lo: 0x300, Hi: 0x314, record: record{Cat: 5, CCC: 230, QC: qcMaybe | qcMaybe<<4}},
			{Lo: 0xFDFA, Hi: 0xFDFA, record: record{Cat: 4, QC: qcNo<<4 | qcNo<<6}},
		},
		Pairs: []pair{{Key: pairKey('A', 0x0300), R: 0x00C0}},
	}
	db.Maps[kindDecompose] = map[rune]string{0x00C0: "A\u0300", 0x00C1: "A\u0301"}
	db.Maps[kindCompatibilityDecompose] = map[rune]string{0xFDFA: long}
	db.Maps[kindCasefold] = map[rune]string{0x00DF: "ss"}

	src := generate(db, "tables_gen.go")
	out := string(src)

	formatted, err := format.Source(src)
	require.NoError(t, err)
	assert.Equal(t, out, string(formatted), "output is not gofmt'd")

	assert.True(t, strings.HasPrefix(out, "// Code generated by running"), "missing header")
	assert.Contains(t, out, "DO NOT EDIT.")
	assert.Contains(t, out, "const UnicodeVersion = \"15.0.0\"")
	for _, line := range []string{
		"\t{0x0000, 0x001f, Record{Control, 0, 0x00}},\n",
		"\t{0x0300, 0x0314, Record{MarkNonSpacing, 230, 0x11}},\n",
		"\t{0xfdfa, 0xfdfa, Record{LetterOther, 0, 0xa0}},\n",
		"\t{0x00c0, 0, 3}, {0x00c1, 3, 3},\n",
		"\t{0x00df, 0, 2},\n",
		"\t\"A\\u0300A\\u0301\"\n",
		"\t{0x8200300, 0x00c0},\n",
		"\tCompatibilityDecompose: {entries: compatibilityEntries, data: compatibilityData},\n",
	} {
		assert.Contains(t, out, line)
	}

	// Long data strings are split on code point boundaries.
	i := strings.Index(out, "const compatibilityData string")
	require.True(t, i >= 0)
	n := 0
	for _, line := range strings.Split(out[i:], "\n")[1:] {
		if !strings.HasPrefix(line, "\t\"") {
			break
		}
		n++
		s := strings.TrimSuffix(strings.TrimSpace(line), " +")
		assert.LessOrEqual(t, len(s), maxDataLine+2, "line too long: %q", s)
		assert.Zero(t, strings.Count(s, "\\u")*6+2-len(s), "split inside a code point: %q", s)
	}
	assert.Greater(t, n, 1)
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("internal", "tables", "tables_gen.go"), opts.Output)
	assert.False(t, opts.DryRun)

	opts, err = parseFlags([]string{"-o", "x.go", "--dry-run", "--skip-tests"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, &options{Output: "x.go", DryRun: true, SkipTests: true}, opts)

	_, err = parseFlags([]string{"extra"}, io.Discard)
	assert.Error(t, err)

	var buf bytes.Buffer
	_, err = parseFlags([]string{"--help"}, &buf)
	require.ErrorIs(t, err, flag.ErrHelp)
	assert.True(t, strings.HasPrefix(buf.String(), "Usage: gentables [OPTION]...\n"))
	assert.Contains(t, buf.String(), "--dry-run")
}

func TestDataEqual(t *testing.T) {
	name := filepath.Join(t.TempDir(), "tables_gen.go")
	assert.False(t, dataEqual(name, []byte("package tables\n")))
	writeFile(name, []byte("package tables\n"))
	assert.True(t, dataEqual(name, []byte("package tables\n")))
	assert.False(t, dataEqual(name, []byte("package other\n")))
}
