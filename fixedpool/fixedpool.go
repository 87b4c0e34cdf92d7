package fixedpool

import "unsafe"

import "github.com/bnclabs/memalloc"

// FixedPool hands out fixed-size cells from a single contiguous
// buffer. Not safe for concurrent use without external
// synchronization.
type FixedPool struct {
	buf       *memalloc.Buffer
	base      uintptr
	capacity  int64
	cellSize  int64
	cellCount int64
	tracker   tracker
}

// Option configures a FixedPool at construction time.
type Option func(*fpConfig)

type fpConfig struct {
	bitmap bool
}

// WithBitmapFreeList selects the single-level bitmap free-tracking
// strategy instead of the default intrusive-link strategy.
func WithBitmapFreeList() Option {
	return func(c *fpConfig) { c.bitmap = true }
}

func newFixedPool(buf *memalloc.Buffer, cellSize int64, opts ...Option) *FixedPool {
	if cellSize <= 0 {
		panic(memalloc.ErrCellTooSmall)
	}
	cellSize = memalloc.AlignUp(cellSize, memalloc.WordSize)
	if cellSize < memalloc.WordSize {
		panic(memalloc.ErrCellTooSmall)
	}
	cfg := &fpConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	cellCount := buf.Capacity() / cellSize
	if cellCount <= 0 {
		panic(memalloc.ErrCapacityTooSmall)
	}
	base := uintptr(buf.Base())
	if !memalloc.AlignedTo(base, memalloc.WordSize) {
		panic(memalloc.ErrCapacityTooSmall)
	}

	fp := &FixedPool{
		buf:       buf,
		base:      base,
		capacity:  buf.Capacity(),
		cellSize:  cellSize,
		cellCount: cellCount,
	}
	if cfg.bitmap {
		memalloc.Debugf("fixedpool: using bitmap free list for %v cells", cellCount)
		fp.tracker = newBitmapTracker(base, cellSize, cellCount)
	} else {
		fp.tracker = newIntrusiveList(base, cellSize, cellCount)
	}
	return fp
}

// New allocates a fresh, owned buffer sized for n cells of cellSize
// bytes each, and builds a FixedPool over it.
func New(cellSize, n int64, opts ...Option) *FixedPool {
	aligned := memalloc.AlignUp(cellSize, memalloc.WordSize)
	return newFixedPool(memalloc.NewBuffer(aligned*n), cellSize, opts...)
}

// NewFromBuffer builds a FixedPool of the given cellSize over
// caller-supplied memory, using as many whole cells as fit.
func NewFromBuffer(backing []byte, cellSize int64, opts ...Option) *FixedPool {
	return newFixedPool(memalloc.BorrowBuffer(backing), cellSize, opts...)
}

// Alloc returns one cell, or nil if the pool is exhausted. The
// returned cell is always cellSize bytes regardless of n; n is
// validated and must not exceed cellSize.
func (fp *FixedPool) Alloc(n int64) unsafe.Pointer {
	if n <= 0 || n > fp.cellSize {
		return nil
	}
	addr, ok := fp.tracker.alloc()
	if !ok {
		memalloc.Warnf("fixedpool: exhausted, %v cells of %v bytes in use", fp.cellCount, fp.cellSize)
		return nil
	}
	return unsafe.Pointer(addr)
}

// Free returns ptr to the pool. Total: a nil, unaligned, or
// out-of-range pointer is silently ignored.
func (fp *FixedPool) Free(ptr unsafe.Pointer) {
	if ptr == nil || !fp.buf.Contains(ptr) {
		return
	}
	off := uintptr(ptr) - fp.base
	if int64(off)%fp.cellSize != 0 {
		return
	}
	idx := int64(off) / fp.cellSize
	if idx < 0 || idx >= fp.cellCount {
		return
	}
	fp.tracker.free(uintptr(ptr))
}

// FreeSpace reports the number of free cells times cellSize.
func (fp *FixedPool) FreeSpace() int64 {
	return fp.tracker.freeCount() * fp.cellSize
}

// CellSize reports the uniform cell size this pool was built with.
func (fp *FixedPool) CellSize() int64 { return fp.cellSize }

// CellCount reports the total number of cells this pool manages.
func (fp *FixedPool) CellCount() int64 { return fp.cellCount }

// Cleanup releases the backing buffer. The pool must not be used
// afterwards.
func (fp *FixedPool) Cleanup() {
	fp.buf.Release()
	fp.base, fp.capacity = 0, 0
}
