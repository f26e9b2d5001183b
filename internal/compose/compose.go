// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package compose implements the Canonical Ordering and Canonical
// Composition algorithms on a window of decomposed code points.
package compose

import (
	"github.com/charlievieth/utext/internal/decompose"
	"github.com/charlievieth/utext/internal/tables"
)

type Entry = decompose.Entry

// Reorder sorts each maximal run of non-starters in w by combining class.
// Entries with equal combining classes keep their relative order and
// starters are never moved.
func Reorder(w []Entry) {
	for i := 1; i < len(w); i++ {
		e := w[i]
		if e.CCC == 0 {
			continue
		}
		j := i
		for j > 0 && w[j-1].CCC > e.CCC {
			w[j] = w[j-1]
			j--
		}
		w[j] = e
	}
}

// Compose replaces each unblocked (starter, mark) pair of the canonically
// ordered window w with its primary composite and returns the length of
// the composed window. Composition continues from a composite so chains
// such as A + U+0308 + U+0304 compose to U+01DE.
func Compose(db *tables.Database, w []Entry) int {
	if len(w) < 2 {
		return len(w)
	}
	starter := -1
	if w[0].CCC == 0 {
		starter = 0
	}
	last := w[0].CCC
	n := 1
	for i := 1; i < len(w); i++ {
		e := w[i]
		if starter >= 0 {
			// A mark is blocked by any kept entry between it and the starter
			// with a combining class of zero or one not lower than its own.
			if n == starter+1 || (last != 0 && last < e.CCC) {
				if r, ok := db.Compose(w[starter].Rune, e.Rune); ok {
					w[starter] = Entry{Rune: r, CCC: db.CombiningClass(r)}
					continue
				}
			}
		}
		if e.CCC == 0 {
			starter = n
		}
		last = e.CCC
		w[n] = e
		n++
	}
	return n
}
