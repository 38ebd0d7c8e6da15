package llist

import (
	"encoding/binary"
	"unsafe"

	"github.com/dchest/siphash"

	"github.com/snwfog/llist.go/pkg/util"
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

// bytesof views the element behind e as its size raw bytes.
func bytesof[T any](e *T, size uintptr) []byte {
	return util.Bytes(unsafe.Pointer(e), size)
}

// Digest returns a SipHash-2-4 fingerprint of the length followed by the
// element bytes in list order. Byte equal lists share a digest. Absent lists digest to 0.
func (l *List[T]) Digest() uint64 {
	if !l.valid() {
		return 0
	}

	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], sipHashKey1)
	binary.LittleEndian.PutUint64(key[8:], sipHashKey2)

	h := siphash.New(key[:])
	_, _ = h.Write(binary.LittleEndian.AppendUint64(nil, uint64(l.Size())))
	for n := l.head; n != nil; n = n.next {
		_, _ = h.Write(n.bytes(l.elemsize))
	}

	return h.Sum64()
}
