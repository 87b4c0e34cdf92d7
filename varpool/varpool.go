package varpool

import "fmt"
import "unsafe"

import "github.com/bnclabs/memalloc"
import "github.com/bnclabs/memalloc/lib"

// VarPool is a general-purpose allocator over a single contiguous
// buffer: fresh space is carved off a bump-pointer arena that shrinks
// from the high-address end down to base, while freed blocks are
// recycled through a fixed number of exact-size-class free lists plus
// one catch-all list for blocks too large for any bucket.
//
// VarPool never splits a free block on allocation and never coalesces
// neighbouring free blocks on release. It is not safe for concurrent
// use without external synchronization.
type VarPool struct {
	buf         *memalloc.Buffer
	base        uintptr
	capacity    int64
	cursor      uintptr // bump cursor; falls from base+capacity towards base
	granularity int64
	numBuckets  int64
	buckets     []freelist
	large       freelist

	allocated int64 // bytes currently handed out to callers (payload, not block size)
	live      int64 // number of live blocks
}

// Option configures a VarPool at construction time.
type Option func(*VarPool)

// WithBuckets sets the number of exact-size-class buckets. Default 12.
func WithBuckets(n int64) Option {
	return func(vp *VarPool) { vp.numBuckets = n }
}

// WithGranularity sets the byte span of each bucket's size class.
// Default 4*WordSize (32 bytes on a 64-bit host), rounded up
// internally to a multiple of the platform word size.
func WithGranularity(n int64) Option {
	return func(vp *VarPool) { vp.granularity = n }
}

func newVarPool(buf *memalloc.Buffer, opts ...Option) *VarPool {
	vp := &VarPool{
		buf:         buf,
		base:        uintptr(buf.Base()),
		capacity:    buf.Capacity(),
		granularity: defaultGranularity,
		numBuckets:  defaultBuckets,
	}
	for _, opt := range opts {
		opt(vp)
	}
	vp.granularity = memalloc.AlignUp(vp.granularity, memalloc.WordSize)
	if vp.granularity < 2*linkSize {
		vp.granularity = memalloc.AlignUp(2*linkSize, memalloc.WordSize)
	}
	vp.cursor = vp.base + uintptr(vp.capacity)
	vp.buckets = make([]freelist, vp.numBuckets)
	return vp
}

// New allocates a fresh, owned buffer of capacity bytes and builds a
// VarPool over it.
func New(capacity int64, opts ...Option) *VarPool {
	return newVarPool(memalloc.NewBuffer(capacity), opts...)
}

// NewFromBuffer builds a VarPool over caller-supplied memory. The
// pool never frees backing, only the bytes inside it.
func NewFromBuffer(backing []byte, opts ...Option) *VarPool {
	return newVarPool(memalloc.BorrowBuffer(backing), opts...)
}

// Alloc returns a pointer to at least n freeable bytes, or nil if the
// pool is exhausted. n must be > 0.
func (vp *VarPool) Alloc(n int64) unsafe.Pointer {
	if n <= 0 {
		return nil
	}

	if idx, ok := bucketIndex(n, vp.granularity, vp.numBuckets); ok {
		bl := &vp.buckets[idx]
		if !bl.empty() {
			blockBase := bl.popFront()
			return vp.handout(blockBase)
		}
		size := canonicalSize(idx, vp.granularity)
		if blockBase := vp.bump(size); blockBase != 0 {
			return vp.handout(blockBase)
		}
		memalloc.Warnf("varpool: bucket %v exhausted and arena out of space", idx)
		return nil
	}

	size := requestedBlockSize(n)
	memalloc.Debugf("varpool: routing %v byte request to the large list", n)
	if blockBase := vp.large.firstFit(size); blockBase != 0 {
		return vp.handout(blockBase)
	}
	if blockBase := vp.bump(size); blockBase != 0 {
		return vp.handout(blockBase)
	}
	memalloc.Warnf("varpool: exhausted, %v bytes requested", n)
	return nil
}

func (vp *VarPool) handout(blockBase uintptr) unsafe.Pointer {
	payloadSize := sizeOf(blockBase) - headerSize
	vp.allocated += payloadSize
	vp.live++
	payload := payloadOf(blockBase)
	zeroPayload(payload, payloadSize)
	return payload
}

// bump carves size bytes off the top of the arena and writes a header
// for it. Returns 0 if the arena doesn't have size bytes left.
func (vp *VarPool) bump(size int64) uintptr {
	if int64(vp.cursor-vp.base) < size {
		return 0
	}
	vp.cursor -= uintptr(size)
	headerAt(vp.cursor).size = size
	return vp.cursor
}

// Free returns ptr to its bucket's free list, or the large list if it
// doesn't belong to any bucket. Total: a nil, out-of-range, or
// misaligned pointer is silently ignored.
func (vp *VarPool) Free(ptr unsafe.Pointer) {
	if ptr == nil || !vp.buf.Contains(ptr) {
		return
	}
	addr := uintptr(ptr)
	if addr < vp.base+uintptr(headerSize) {
		return
	}
	if !memalloc.AlignedTo(addr, memalloc.WordSize) {
		return
	}
	blockBase := blockOf(ptr)
	size := sizeOf(blockBase)
	payloadSize := size - headerSize

	if idx, ok := bucketIndex(canonicalPayload(size), vp.granularity, vp.numBuckets); ok && canonicalSize(idx, vp.granularity) == size {
		vp.buckets[idx].pushFront(blockBase)
	} else {
		vp.large.pushBack(blockBase)
	}
	vp.allocated -= payloadSize
	vp.live--
}

// canonicalPayload recovers a payload size that would map to the same
// bucket as a block of total size blockSize, for routing a freed
// block back to the bucket it was handed out from.
func canonicalPayload(blockSize int64) int64 {
	return blockSize - headerSize
}

// Realloc resizes the block at ptr to n bytes, preserving the
// min(old, n) leading bytes. May return a different pointer than ptr;
// never shrinks in place below the block's own canonical size. Passing
// a nil ptr behaves like Alloc; passing n<=0 behaves like Free and
// returns nil.
func (vp *VarPool) Realloc(ptr unsafe.Pointer, n int64) unsafe.Pointer {
	if ptr == nil {
		return vp.Alloc(n)
	}
	if n <= 0 {
		vp.Free(ptr)
		return nil
	}
	blockBase := blockOf(ptr)
	oldPayload := sizeOf(blockBase) - headerSize
	if n <= oldPayload {
		return ptr
	}
	newPtr := vp.Alloc(n)
	if newPtr == nil {
		return nil
	}
	lib.Memcpy(newPtr, ptr, int(oldPayload))
	vp.Free(ptr)
	return newPtr
}

// Reset discards every live and freed block, zeroes the underlying
// buffer, and returns the pool to its initial, empty state. Previously
// handed-out pointers become invalid.
func (vp *VarPool) Reset() {
	vp.cursor = vp.base + uintptr(vp.capacity)
	for i := range vp.buckets {
		vp.buckets[i] = freelist{}
	}
	vp.large = freelist{}
	vp.allocated = 0
	vp.live = 0
	vp.buf.Zero()
}

// Cleanup releases the backing buffer. The pool must not be used
// afterwards. A no-op on a borrowed buffer beyond clearing state.
func (vp *VarPool) Cleanup() {
	vp.buf.Release()
	vp.base, vp.cursor, vp.capacity = 0, 0, 0
}

// FreeSpace reports the bytes available for future allocation: the
// untouched bump-arena region plus every byte currently parked on a
// free list (header included).
func (vp *VarPool) FreeSpace() int64 {
	free := int64(vp.cursor - vp.base)
	for i := range vp.buckets {
		free += vp.buckets[i].n * canonicalSize(int64(i), vp.granularity)
	}
	for cur := vp.large.head; cur != 0; cur = *linkNextAddr(cur) {
		free += sizeOf(cur)
	}
	return free
}

// Stats is a point-in-time snapshot of pool utilization.
type Stats struct {
	Capacity  int64
	Allocated int64
	Live      int64
	FreeSpace int64
}

func (vp *VarPool) Stats() Stats {
	return Stats{
		Capacity:  vp.capacity,
		Allocated: vp.allocated,
		Live:      vp.live,
		FreeSpace: vp.FreeSpace(),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"capacity:%v allocated:%v live:%v free:%v",
		s.Capacity, s.Allocated, s.Live, s.FreeSpace,
	)
}
