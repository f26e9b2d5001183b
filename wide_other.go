// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

//go:build !windows

package utext

// Wide is the code unit of the platform wide character encoding: UTF-32.
type Wide = rune

// UTF8ToWide converts src to the platform wide encoding, see UTF8ToUTF32.
func UTF8ToWide(dst []Wide, src []byte) (int, error) {
	return UTF8ToUTF32(dst, src)
}

// WideToUTF8 converts src from the platform wide encoding, see UTF32ToUTF8.
func WideToUTF8(dst []byte, src []Wide) (int, error) {
	return UTF32ToUTF8(dst, src)
}
