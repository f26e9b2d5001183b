// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"github.com/charlievieth/utext"
	"github.com/charlievieth/utext/internal/tables"
	"github.com/charlievieth/utext/ustring"
)

// A failure is a difference between the UCD and the utext tables.
type failure struct {
	Check string
	Msg   string
}

type checker struct {
	failures  []failure
	maxErrors int
	newBar    func(n int, desc string) *progressbar.ProgressBar
}

func (c *checker) fail(check, format string, args ...any) {
	c.failures = append(c.failures, failure{Check: check, Msg: fmt.Sprintf(format, args...)})
}

func (c *checker) full() bool {
	return c.maxErrors > 0 && len(c.failures) >= c.maxErrors
}

func (c *checker) bar(n int, desc string) *progressbar.ProgressBar {
	if c.newBar == nil {
		return progressbar.DefaultSilent(int64(n), desc)
	}
	return c.newBar(n, desc)
}

func (c *checker) checkUnicodeData(ranges []unicodeDataRange) {
	const name = "UnicodeData"
	db := tables.Default()
	bar := c.bar(len(ranges), name)
	defer bar.Finish()
	for _, rr := range ranges {
		bar.Add(1)
		if c.full() {
			return
		}
		for r := rr.Lo; r <= rr.Hi; r++ {
			if got := utext.CategoryOf(r).String(); got != rr.Category {
				c.fail(name, "CategoryOf(%U) = %s; want: %s", r, got, rr.Category)
				break
			}
			if got := db.CombiningClass(r); got != rr.CCC {
				c.fail(name, "CombiningClass(%U) = %d; want: %d", r, got, rr.CCC)
				break
			}
		}
	}
}

func (c *checker) checkCaseFolding(folds []caseFolding) {
	const name = "CaseFolding"
	bar := c.bar(len(folds), name)
	defer bar.Finish()
	for _, f := range folds {
		bar.Add(1)
		if c.full() {
			return
		}
		want := string(f.Mapping)
		switch f.Status {
		case 'C', 'F':
			got, err := ustring.Casefold(string(f.R), utext.DefaultLocale)
			if err != nil || got != want {
				c.fail(name, "Casefold(%U) = %U, %v; want: %U", f.R, []rune(got), err, f.Mapping)
			}
			if f.Status == 'C' {
				if got := utext.FoldRune(f.R); got != f.Mapping[0] {
					c.fail(name, "FoldRune(%U) = %U; want: %U", f.R, got, f.Mapping[0])
				}
			}
		case 'S':
			if got := utext.FoldRune(f.R); got != f.Mapping[0] {
				c.fail(name, "FoldRune(%U) = %U; want: %U", f.R, got, f.Mapping[0])
			}
		case 'T':
			got, err := ustring.Casefold(string(f.R), utext.Turkish)
			if err != nil || got != want {
				c.fail(name, "Casefold(%U, Turkish) = %U, %v; want: %U", f.R, []rune(got), err, f.Mapping)
			}
		}
	}
}

var normalizationForms = [...]struct {
	name  string
	flags utext.Flags
}{
	{"NFC", utext.NFC},
	{"NFD", utext.NFD},
	{"NFKC", utext.NFKC},
	{"NFKD", utext.NFKD},
}

// checkNormalization runs the conformance tests of NormalizationTest.txt.
// Each column c1..c5 normalizes to a fixed column per form.
func (c *checker) checkNormalization(tests []normalizationTest) {
	const name = "NormalizationTest"
	// Index of the expected column for each source column, per form.
	want := [4][5]int{
		{1, 1, 1, 3, 3}, // NFC
		{2, 2, 2, 4, 4}, // NFD
		{3, 3, 3, 3, 3}, // NFKC
		{4, 4, 4, 4, 4}, // NFKD
	}
	bar := c.bar(len(tests), name)
	defer bar.Finish()
	for _, t := range tests {
		bar.Add(1)
		if c.full() {
			return
		}
		for i, f := range normalizationForms {
			for col, src := range t.C {
				exp := t.C[want[i][col]]
				got, err := ustring.Normalize(src, f.flags)
				if err != nil || got != exp {
					c.fail(name, "line %d: %s(c%d %U) = %U, %v; want: %U",
						t.Line, f.name, col+1, []rune(src), []rune(got), err, []rune(exp))
				}
			}
		}
	}
}
