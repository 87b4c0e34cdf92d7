package bistack

import "unsafe"

import "github.com/bnclabs/memalloc"

// BiStack is a double-ended bump allocator. front grows upward from
// base; back grows downward from base+capacity. The two regions
// share the same buffer and must never overlap: an allocation that
// would cross the other cursor fails.
type BiStack struct {
	buf      *memalloc.Buffer
	base     uintptr
	capacity int64
	front    uintptr // next byte available to AllocFront
	back     uintptr // next byte available to AllocBack (exclusive, falling)
}

func newBiStack(buf *memalloc.Buffer) *BiStack {
	base := uintptr(buf.Base())
	return &BiStack{
		buf:      buf,
		base:     base,
		capacity: buf.Capacity(),
		front:    base,
		back:     base + uintptr(buf.Capacity()),
	}
}

// New allocates a fresh, owned buffer of capacity bytes and builds a
// BiStack over it.
func New(capacity int64) *BiStack {
	return newBiStack(memalloc.NewBuffer(capacity))
}

// NewFromBuffer builds a BiStack over caller-supplied memory.
func NewFromBuffer(backing []byte) *BiStack {
	return newBiStack(memalloc.BorrowBuffer(backing))
}

// AllocFront carves n bytes off the low end of the buffer, aligned to
// the platform word size. Returns nil if doing so would cross the
// back cursor.
func (bs *BiStack) AllocFront(n int64) unsafe.Pointer {
	if n <= 0 {
		return nil
	}
	aligned := memalloc.AlignUp(n, memalloc.WordSize)
	next := bs.front + uintptr(aligned)
	if next > bs.back {
		memalloc.Warnf("bistack: front alloc of %v bytes would collide with back region", n)
		return nil
	}
	ptr := bs.front
	bs.front = next
	return unsafe.Pointer(ptr)
}

// AllocBack carves n bytes off the high end of the buffer, aligned to
// the platform word size. Returns nil if doing so would cross the
// front cursor.
func (bs *BiStack) AllocBack(n int64) unsafe.Pointer {
	if n <= 0 {
		return nil
	}
	aligned := memalloc.AlignUp(n, memalloc.WordSize)
	if uintptr(aligned) > bs.back-bs.front {
		memalloc.Warnf("bistack: back alloc of %v bytes would collide with front region", n)
		return nil
	}
	bs.back -= uintptr(aligned)
	return unsafe.Pointer(bs.back)
}

// ResetFront discards every block allocated from the front, without
// touching the back region.
func (bs *BiStack) ResetFront() {
	bs.front = bs.base
}

// ResetBack discards every block allocated from the back, without
// touching the front region.
func (bs *BiStack) ResetBack() {
	bs.back = bs.base + uintptr(bs.capacity)
}

// ResetAll discards every block allocated from either end.
func (bs *BiStack) ResetAll() {
	bs.ResetFront()
	bs.ResetBack()
}

// Margins reports bytes claimed by the front region, bytes claimed by
// the back region, and bytes still unclaimed in the middle.
func (bs *BiStack) Margins() (frontUsed, backUsed, free int64) {
	frontUsed = int64(bs.front - bs.base)
	backUsed = int64((bs.base + uintptr(bs.capacity)) - bs.back)
	free = int64(bs.back - bs.front)
	return frontUsed, backUsed, free
}

// FreeSpace reports the bytes still unclaimed between the front and
// back cursors.
func (bs *BiStack) FreeSpace() int64 {
	return int64(bs.back - bs.front)
}

// Cleanup releases the backing buffer. The stack must not be used
// afterwards.
func (bs *BiStack) Cleanup() {
	bs.buf.Release()
	bs.base, bs.front, bs.back, bs.capacity = 0, 0, 0, 0
}
