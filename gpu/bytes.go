// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import "unsafe"

// Bytes reinterprets a slice of plain values as bytes without copying.
// T must not contain pointers.
func Bytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}
