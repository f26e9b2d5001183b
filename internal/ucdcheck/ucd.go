// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseUCD calls fn with the semicolon separated and trimmed fields of each
// line of r. Comments and blank lines are skipped. Lines starting with '@'
// mark the parts of NormalizationTest.txt and are skipped as well.
func parseUCD(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		s := sc.Text()
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
		if s == "" || s[0] == '@' {
			continue
		}
		fields := strings.Split(s, ";")
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
		if err := fn(n, fields); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

func parseRune(s string) (rune, error) {
	u, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	if u > 0x10FFFF {
		return 0, fmt.Errorf("code point out of range: %s", s)
	}
	return rune(u), nil
}

// parseRunes parses a space separated list of hex code points.
func parseRunes(s string) ([]rune, error) {
	var rs []rune
	for _, f := range strings.Fields(s) {
		r, err := parseRune(f)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, nil
}

// A unicodeDataRange is one line of UnicodeData.txt or a <..., First> and
// <..., Last> pair of lines.
type unicodeDataRange struct {
	Lo, Hi   rune
	Category string
	CCC      uint8
}

// parseUnicodeData parses UnicodeData.txt.
func parseUnicodeData(r io.Reader) ([]unicodeDataRange, error) {
	var ranges []unicodeDataRange
	var first *unicodeDataRange
	err := parseUCD(r, func(_ int, fields []string) error {
		if len(fields) < 4 {
			return fmt.Errorf("invalid number of fields: %d", len(fields))
		}
		cp, err := parseRune(fields[0])
		if err != nil {
			return err
		}
		ccc, err := strconv.ParseUint(fields[3], 10, 8)
		if err != nil {
			return err
		}
		rr := unicodeDataRange{Lo: cp, Hi: cp, Category: fields[2], CCC: uint8(ccc)}
		name := fields[1]
		switch {
		case strings.HasSuffix(name, ", First>"):
			first = &rr
			return nil
		case strings.HasSuffix(name, ", Last>"):
			if first == nil {
				return fmt.Errorf("range end without start: %s", name)
			}
			rr.Lo = first.Lo
			first = nil
		}
		ranges = append(ranges, rr)
		return nil
	})
	return ranges, err
}

// A caseFolding is one line of CaseFolding.txt.
type caseFolding struct {
	R       rune
	Status  byte // C, F, S or T
	Mapping []rune
}

func parseCaseFolding(r io.Reader) ([]caseFolding, error) {
	var folds []caseFolding
	err := parseUCD(r, func(_ int, fields []string) error {
		if len(fields) < 3 || len(fields[1]) != 1 {
			return fmt.Errorf("invalid line: %q", fields)
		}
		cp, err := parseRune(fields[0])
		if err != nil {
			return err
		}
		m, err := parseRunes(fields[2])
		if err != nil {
			return err
		}
		folds = append(folds, caseFolding{R: cp, Status: fields[1][0], Mapping: m})
		return nil
	})
	return folds, err
}

// A normalizationTest is one line of NormalizationTest.txt: the source and
// its NFC, NFD, NFKC and NFKD forms.
type normalizationTest struct {
	Line int
	C    [5]string
}

func parseNormalizationTest(r io.Reader) ([]normalizationTest, error) {
	var tests []normalizationTest
	err := parseUCD(r, func(line int, fields []string) error {
		if len(fields) < 5 {
			return fmt.Errorf("invalid number of fields: %d", len(fields))
		}
		t := normalizationTest{Line: line}
		for i := range t.C {
			rs, err := parseRunes(fields[i])
			if err != nil {
				return err
			}
			t.C[i] = string(rs)
		}
		tests = append(tests, t)
		return nil
	})
	return tests, err
}
