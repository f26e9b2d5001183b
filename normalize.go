// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"github.com/charlievieth/utext/internal/bytealg"
	"github.com/charlievieth/utext/internal/codec"
	"github.com/charlievieth/utext/internal/stream"
	"github.com/charlievieth/utext/internal/tables"
)

// Normalize writes the normalization of src selected by flags to dst and
// returns the number of bytes written. Exactly one of Decompose and
// Compose must be set. Malformed input is replaced with U+FFFD.
//
// If dst is nil Normalize returns the number of bytes required.
func Normalize(dst, src []byte, flags Flags) (int, error) {
	if len(src) == 0 {
		return 0, ErrInvalidData
	}
	if !flags.valid() {
		return 0, ErrInvalidFlag
	}
	if overlap(dst, src) {
		return 0, ErrOverlappingParameters
	}

	// ASCII is unchanged by every form but the last ASCII character may
	// be a starter that the following marks attach to.
	n := 0
	if i := bytealg.IndexByteNonASCII(src); i != 0 {
		if i == -1 {
			i = len(src)
		} else {
			i--
		}
		if dst != nil {
			n = copy(dst, src[:i])
			if n < i {
				return n, ErrNotEnoughSpace
			}
		} else {
			n = i
		}
		src = src[i:]
	}

	var s stream.Stream
	s.Init(tables.Default(), src, flags.stream())
	for s.Next() != 0 {
		for _, e := range s.Window() {
			if dst == nil {
				n += codec.EncodedLen(e.Rune)
				continue
			}
			w := codec.Encode(dst[n:], e.Rune)
			if w == 0 {
				return n, ErrNotEnoughSpace
			}
			n += w
		}
	}
	return n, nil
}

// IsNormalized reports whether src is in the normalization form selected
// by flags using the quick check properties and canonical ordering of src.
// It stops at the first code point that is not normalized. The returned
// offset is the length of the prefix of src verified to be normalized.
//
// A Maybe result means src must be normalized and compared to be certain.
func IsNormalized(src []byte, flags Flags) (Verdict, int, error) {
	if len(src) == 0 {
		return No, 0, ErrInvalidData
	}
	if !flags.valid() {
		return No, 0, ErrInvalidFlag
	}

	off := bytealg.IndexByteNonASCII(src)
	if off == -1 {
		return Yes, len(src), nil
	}
	db := tables.Default()
	form := flags.form()
	result := Yes
	verified := off
	var last uint8
	for off < len(src) {
		c := src[off]
		if c < codec.RuneSelf {
			off++
			last = 0
			if result == Yes {
				verified = off
			}
			continue
		}
		r, size := codec.Decode(src[off:])
		if r == codec.RuneError && !isReplacementChar(src[off:off+size]) {
			return No, verified, nil // replaced when normalized
		}
		ccc := db.CombiningClass(r)
		if ccc != 0 && last > ccc {
			return No, verified, nil
		}
		switch db.QuickCheck(r, form) {
		case No:
			return No, verified, nil
		case Maybe:
			result = Maybe
		}
		last = ccc
		off += size
		if result == Yes {
			verified = off
		}
	}
	return result, verified, nil
}

func isReplacementChar(p []byte) bool {
	return len(p) == 3 && p[0] == 0xEF && p[1] == 0xBF && p[2] == 0xBD
}
