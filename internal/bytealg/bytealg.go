// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytealg provides fast scanning for ASCII text.
package bytealg

import (
	"unicode/utf8"
	"unsafe"
)

// IndexByteNonASCII returns the index of the first byte in b that is not
// ASCII or -1 if b is all ASCII.
func IndexByteNonASCII(b []byte) int {
	i := indexNonASCIIWords(b)
	for ; i < len(b); i++ {
		if b[i]&utf8.RuneSelf != 0 {
			return i
		}
	}
	return -1
}

// IndexNonASCII returns the index of the first byte in s that is not
// ASCII or -1 if s is all ASCII.
func IndexNonASCII(s string) int {
	return IndexByteNonASCII(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// IsASCII reports whether b contains only ASCII bytes.
func IsASCII(b []byte) bool {
	return IndexByteNonASCII(b) == -1
}
