// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package decompose expands UTF-8 text into its canonical or compatibility
// decomposition one code point at a time.
package decompose

import (
	"io"
	"log"
	"os"

	"github.com/charlievieth/utext/internal/codec"
	"github.com/charlievieth/utext/internal/tables"
)

// WARN: DEV ONLY
const debug = false

var logger = newLogger()

func newLogger() *log.Logger {
	out := io.Discard
	if debug {
		out = os.Stderr
	}
	return log.New(out, "decompose: ", log.Lshortfile)
}

// Kind is the decomposition applied to each source code point.
type Kind uint8

const (
	None          Kind = iota // code points are passed through unchanged
	Canonical                 // NFD
	Compatibility             // NFKD
)

// MaxDepth bounds the recursive expansion of a mapping. Code points found
// at this depth are emitted as is.
const MaxDepth = 4

// The longest full decomposition (U+FDFA) is 18 code points.
const queueSize = 32

// Entry is a decoded code point and its canonical combining class.
type Entry struct {
	Rune rune
	CCC  uint8
}

// A Decomposer reads code points from a source buffer and expands them.
// The zero value is not usable, call Init first.
type Decomposer struct {
	db    *tables.Database
	src   []byte
	off   int
	kind  Kind
	head  uint8
	tail  uint8
	queue [queueSize]Entry
}

// Init binds d to src, reading mappings from db. Any previous state is
// discarded.
func (d *Decomposer) Init(db *tables.Database, src []byte, kind Kind) {
	*d = Decomposer{
		db:   db,
		src:  src,
		kind: kind,
	}
}

// Offset returns the source offset of the next code point that has not
// been decoded.
func (d *Decomposer) Offset() int { return d.off }

// Buffered returns the number of entries of the last decoded code point
// that have not been returned by Next.
func (d *Decomposer) Buffered() int { return int(d.tail - d.head) }

// Next returns the next entry. It reports false once the source is
// exhausted and every expansion has been returned.
func (d *Decomposer) Next() (Entry, bool) {
	if d.head == d.tail {
		if d.off >= len(d.src) {
			return Entry{}, false
		}
		if c := d.src[d.off]; c < codec.RuneSelf {
			d.off++
			return Entry{Rune: rune(c)}, true
		}
		d.head, d.tail = 0, 0
		r, n := codec.Decode(d.src[d.off:])
		d.off += n
		d.expand(r, 0)
	}
	e := d.queue[d.head]
	d.head++
	return e, true
}

func (d *Decomposer) push(r rune) {
	if int(d.tail) == len(d.queue) {
		logger.Printf("queue overflow: dropping %U", r)
		return
	}
	d.queue[d.tail] = Entry{Rune: r, CCC: d.db.CombiningClass(r)}
	d.tail++
}

func (d *Decomposer) expand(r rune, depth int) {
	if d.kind == None || r < 0xC0 && d.kind == Canonical {
		d.push(r)
		return
	}
	var hangul [3]rune
	if n := tables.DecomposeHangul(r, &hangul); n != 0 {
		for _, rr := range hangul[:n] {
			d.push(rr)
		}
		return
	}
	kind := tables.Decompose
	if d.kind == Compatibility {
		kind = tables.CompatibilityDecompose
	}
	m, ok := d.db.Mapping(r, kind)
	if !ok {
		d.push(r)
		return
	}
	if depth >= MaxDepth {
		logger.Printf("maximum decomposition depth exceeded: %U", r)
		d.push(r)
		return
	}
	for _, rr := range m {
		d.expand(rr, depth+1)
	}
}
