// functions and methods in this file are not re-entrant.
package memalloc

//#include <stdlib.h>
import "C"

import "unsafe"

// Buffer is a contiguous byte region backing an allocator, either
// obtained from the C heap (owning) or supplied by the caller
// (borrowed). Buffer never runs through the Go garbage collector.
type Buffer struct {
	base     unsafe.Pointer
	capacity int64
	owned    bool
}

// NewBuffer acquires `capacity` bytes from the C allocator. The
// caller must eventually call Release.
func NewBuffer(capacity int64) *Buffer {
	if capacity <= 0 {
		panic(ErrZeroCapacity)
	}
	return &Buffer{
		base:     C.malloc(C.size_t(capacity)),
		capacity: capacity,
		owned:    true,
	}
}

// BorrowBuffer wraps a caller-supplied slice. The caller retains
// ownership; Release is a no-op beyond zeroing this Buffer's state.
func BorrowBuffer(buf []byte) *Buffer {
	if len(buf) == 0 {
		panic(ErrZeroCapacity)
	}
	return &Buffer{
		base:     unsafe.Pointer(&buf[0]),
		capacity: int64(len(buf)),
		owned:    false,
	}
}

// Base address of the buffer.
func (b *Buffer) Base() unsafe.Pointer {
	return b.base
}

// Capacity in bytes.
func (b *Buffer) Capacity() int64 {
	return b.capacity
}

// Owned reports whether this buffer will be freed to the C heap on
// Release, as opposed to a borrowed, caller-managed buffer.
func (b *Buffer) Owned() bool {
	return b.owned
}

// Contains reports whether ptr lies within [base, base+capacity).
func (b *Buffer) Contains(ptr unsafe.Pointer) bool {
	if b.base == nil {
		return false
	}
	start := uintptr(b.base)
	off := uintptr(ptr)
	return off >= start && off < start+uintptr(b.capacity)
}

// Zero fills the entire buffer with zero bytes.
func (b *Buffer) Zero() {
	if b.base == nil || b.capacity == 0 {
		return
	}
	var dst []byte
	sliceFromPointer(&dst, b.base, int(b.capacity))
	for i := range dst {
		dst[i] = 0
	}
}

// Release frees the buffer to the C heap if owned; idempotent on a
// borrowed buffer, and safe to call more than once.
func (b *Buffer) Release() {
	if b.owned && b.base != nil {
		C.free(b.base)
	}
	b.base, b.capacity, b.owned = nil, 0, false
}
