package util

import (
	"unsafe"
)

// Bytes is a zero copy view of the n bytes starting at ptr.
// The view aliases the pointee, it must not outlive it.
func Bytes(ptr unsafe.Pointer, n uintptr) []byte {
	if ptr == nil || n == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(ptr), n)
}
