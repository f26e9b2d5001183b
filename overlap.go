// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

import "unsafe"

// overlap reports whether the memory of dst and src intersect. Empty
// buffers never overlap.
func overlap[D, S any](dst []D, src []S) bool {
	if len(dst) == 0 || len(src) == 0 {
		return false
	}
	var d D
	var s S
	dp := uintptr(unsafe.Pointer(unsafe.SliceData(dst)))
	sp := uintptr(unsafe.Pointer(unsafe.SliceData(src)))
	dn := uintptr(len(dst)) * unsafe.Sizeof(d)
	sn := uintptr(len(src)) * unsafe.Sizeof(s)
	return dp < sp+sn && sp < dp+dn
}
