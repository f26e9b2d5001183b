// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package stream splits decomposed text into segments: a starter followed
// by the non-starters attached to it. Segments are held in a fixed size
// window so that they can be reordered and composed in place.
package stream

import (
	"github.com/charlievieth/utext/internal/compose"
	"github.com/charlievieth/utext/internal/decompose"
	"github.com/charlievieth/utext/internal/tables"
)

type Entry = decompose.Entry

// Flags select the transform applied to each segment.
type Flags uint8

const (
	Decompose     Flags = 1 << iota // decompose and canonically reorder
	Compose                         // Decompose, then compose
	Compatibility                   // use compatibility decompositions

	Plain Flags = 0
)

// State is the state of a Stream.
type State uint8

const (
	Start State = iota
	Reading
	Done
)

func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case Reading:
		return "Reading"
	case Done:
		return "Done"
	}
	return "State(invalid)"
}

const (
	// MaxNonStarters is the stream-safe bound on consecutive non-starters.
	MaxNonStarters = 30

	// MaxSegment is the capacity of the window: a starter, its
	// non-starters and one slot for a starter joined by composition.
	MaxSegment = MaxNonStarters + 2
)

// A Stream reads segments from a source buffer.
type Stream struct {
	db      *tables.Database
	dec     decompose.Decomposer
	flags   Flags
	state   State
	hasNext bool
	next    Entry
	n       int
	window  [MaxSegment]Entry
}

// Init binds s to src, reading properties from db. Any previous state is
// discarded.
func (s *Stream) Init(db *tables.Database, src []byte, flags Flags) {
	kind := decompose.None
	if flags&(Decompose|Compose) != 0 {
		kind = decompose.Canonical
		if flags&Compatibility != 0 {
			kind = decompose.Compatibility
		}
	}
	s.db = db
	s.dec.Init(db, src, kind)
	s.flags = flags
	s.state = Start
	s.hasNext = false
	s.next = Entry{}
	s.n = 0
}

// State returns the current state of s.
func (s *Stream) State() State { return s.state }

// Window returns the current segment. It is valid until the next call to
// Next or Init.
func (s *Stream) Window() []Entry { return s.window[:s.n] }

// Peek returns the first entry of the next segment.
func (s *Stream) Peek() (Entry, bool) {
	if !s.hasNext && s.state != Done {
		s.advance()
	}
	return s.next, s.hasNext
}

// Offset returns the number of source bytes consumed, including those of
// the pending entry returned by Peek.
func (s *Stream) Offset() int { return s.dec.Offset() }

func (s *Stream) advance() {
	s.next, s.hasNext = s.dec.Next()
}

// gather appends the non-starters that follow the window.
func (s *Stream) gather() {
	for s.n <= MaxNonStarters {
		s.advance()
		if !s.hasNext || s.next.CCC == 0 {
			return
		}
		s.window[s.n] = s.next
		s.n++
		s.hasNext = false
	}
	// The segment is full: the pending entry, if any, opens the next one.
	s.advance()
}

// Next loads the next segment into the window and returns its length. It
// returns 0 once the source is exhausted.
func (s *Stream) Next() int {
	if s.state == Done {
		return 0
	}
	s.state = Reading
	if !s.hasNext {
		s.advance()
	}
	if !s.hasNext {
		s.state = Done
		s.n = 0
		return 0
	}
	s.window[0] = s.next
	s.hasNext = false
	s.n = 1
	s.gather()

	if s.flags&(Decompose|Compose) == 0 {
		return s.n
	}
	for {
		compose.Reorder(s.window[:s.n])
		if s.flags&Compose == 0 {
			return s.n
		}
		s.n = compose.Compose(s.db, s.window[:s.n])
		if !s.join() {
			return s.n
		}
	}
}

// join composes a window holding a single starter with the starter that
// follows it, as for Hangul LV + T or U+0CCA + U+0CD5. It reports whether
// the window grew and must be reordered and composed again.
func (s *Stream) join() bool {
	if s.n != 1 || !s.hasNext || s.next.CCC != 0 || s.window[0].CCC != 0 {
		return false
	}
	r, ok := s.db.Compose(s.window[0].Rune, s.next.Rune)
	if !ok {
		return false
	}
	s.window[0] = Entry{Rune: r, CCC: s.db.CombiningClass(r)}
	s.hasNext = false
	s.gather()
	return true
}
