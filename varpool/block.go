package varpool

import "unsafe"

import "github.com/bnclabs/memalloc"

// header precedes every VarPool block, live or freed, and records the
// block's total size including the header itself. When a block is
// freed, the two words immediately following the header are reused
// as the free list's next/prev links (stored as raw addresses, not Go
// pointers: this memory is never scanned by the garbage collector).
type header struct {
	size int64
}

var headerSize = int64(unsafe.Sizeof(header{}))
var linkSize = int64(unsafe.Sizeof(uintptr(0)))

// minBlock is the smallest block size that can ever be freed: big
// enough to hold the header plus both free-list links.
var minBlock = memalloc.AlignUp(headerSize+2*linkSize, memalloc.WordSize)

func headerAt(blockBase uintptr) *header {
	return (*header)(unsafe.Pointer(blockBase))
}

func sizeOf(blockBase uintptr) int64 {
	return headerAt(blockBase).size
}

func payloadOf(blockBase uintptr) unsafe.Pointer {
	return unsafe.Pointer(blockBase + uintptr(headerSize))
}

func blockOf(payload unsafe.Pointer) uintptr {
	return uintptr(payload) - uintptr(headerSize)
}

func linkNextAddr(blockBase uintptr) *uintptr {
	return (*uintptr)(unsafe.Pointer(blockBase + uintptr(headerSize)))
}

func linkPrevAddr(blockBase uintptr) *uintptr {
	return (*uintptr)(unsafe.Pointer(blockBase + uintptr(headerSize) + uintptr(linkSize)))
}

func zeroPayload(payload unsafe.Pointer, userSize int64) {
	dst := sliceOver(payload, userSize)
	for i := range dst {
		dst[i] = 0
	}
}
