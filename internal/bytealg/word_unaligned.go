// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

//go:build 386 || amd64 || arm64 || ppc64 || ppc64le || s390x

package bytealg

import (
	"math/bits"
	"unsafe"

	"golang.org/x/sys/cpu"
)

const wordSize = int(unsafe.Sizeof(uintptr(0)))

const highBits = ^uintptr(0) / 0xFF * 0x80 // 0x8080...80

// indexNonASCIIWords scans b a machine word at a time and returns the
// index of the first non-ASCII byte, or the index at which the caller
// must resume scanning byte by byte.
func indexNonASCIIWords(b []byte) int {
	i := 0
	for ; i+wordSize <= len(b); i += wordSize {
		w := *(*uintptr)(unsafe.Pointer(&b[i]))
		if m := w & highBits; m != 0 {
			if cpu.IsBigEndian {
				return i + bits.LeadingZeros(uint(m))/8
			}
			return i + bits.TrailingZeros(uint(m))/8
		}
	}
	return i
}
