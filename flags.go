// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import (
	"github.com/charlievieth/utext/internal/casemap"
	"github.com/charlievieth/utext/internal/stream"
	"github.com/charlievieth/utext/internal/tables"
)

// Flags select a normalization form.
type Flags uint

const (
	Decompose     Flags = 1 << iota // canonical decomposition
	Compose                         // canonical decomposition followed by canonical composition
	Compatibility                   // use compatibility decompositions

	NFD  = Decompose
	NFC  = Compose
	NFKD = Decompose | Compatibility
	NFKC = Compose | Compatibility
)

func (f Flags) String() string {
	switch f {
	case NFD:
		return "NFD"
	case NFC:
		return "NFC"
	case NFKD:
		return "NFKD"
	case NFKC:
		return "NFKC"
	}
	return "Flags(invalid)"
}

// valid reports whether exactly one of Decompose and Compose is set and
// no unknown bits are.
func (f Flags) valid() bool {
	return f&^(Decompose|Compose|Compatibility) == 0 &&
		(f&Decompose != 0) != (f&Compose != 0)
}

func (f Flags) stream() stream.Flags {
	var s stream.Flags
	if f&Decompose != 0 {
		s |= stream.Decompose
	}
	if f&Compose != 0 {
		s |= stream.Compose
	}
	if f&Compatibility != 0 {
		s |= stream.Compatibility
	}
	return s
}

func (f Flags) form() tables.Form {
	switch f {
	case NFC:
		return tables.NFC
	case NFKC:
		return tables.NFKC
	case NFKD:
		return tables.NFKD
	}
	return tables.NFD
}

// Verdict is the result of a normalization check.
type Verdict = tables.Verdict

const (
	Yes   = tables.Yes   // the text is normalized
	Maybe = tables.Maybe // the text may be normalized, normalize it to find out
	No    = tables.No    // the text is not normalized
)

// Locale selects language specific case mapping rules. Use the locale
// package to resolve a locale name.
type Locale = casemap.Locale

const (
	DefaultLocale = casemap.Default
	Greek         = casemap.Greek
	Lithuanian    = casemap.Lithuanian
	Turkish       = casemap.Turkish // Turkish and Azeri (Latin script)
)
