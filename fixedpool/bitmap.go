package fixedpool

import "github.com/bnclabs/memalloc/lib"

// bitmapTracker is the WithBitmapFreeList() strategy: one bit per
// cell, packed into bytes via lib.Bit8. A free-offset hint marks the
// lowest byte that might still have a free bit, so alloc doesn't
// rescan bytes it already knows are exhausted — a flattened, single-
// level simplification of the teacher's recursive, cacheline-indexed
// freebits structure, appropriate at the cell counts FixedPool
// expects to manage. Unlike the default intrusiveList strategy, this
// one carries its bookkeeping (the bitmap itself) outside the buffer.
type bitmapTracker struct {
	base     uintptr
	cellSize int64
	bits     []lib.Bit8
	n        int64
	hint     int64 // lowest byte index that might contain a free bit
	nfree    int64
}

func newBitmapTracker(base uintptr, cellSize, n int64) *bitmapTracker {
	nbytes := (n + 7) / 8
	bits := make([]lib.Bit8, nbytes)
	for i := range bits {
		bits[i] = lib.Bit8(0xff)
	}
	if rem := n % 8; rem != 0 {
		var last lib.Bit8
		for i := uint8(0); i < uint8(rem); i++ {
			last = last.Setbit(i)
		}
		bits[nbytes-1] = last
	}
	return &bitmapTracker{base: base, cellSize: cellSize, bits: bits, n: n, nfree: n}
}

func (bt *bitmapTracker) alloc() (uintptr, bool) {
	for i := bt.hint; i < int64(len(bt.bits)); i++ {
		byt := bt.bits[i]
		if byt == 0 {
			continue
		}
		n := byt.Findfirstset()
		idx := i*8 + int64(n)
		if idx >= bt.n {
			return 0, false
		}
		bt.bits[i] = byt.Clearbit(uint8(n))
		bt.hint = i
		bt.nfree--
		return bt.base + uintptr(idx*bt.cellSize), true
	}
	return 0, false
}

func (bt *bitmapTracker) free(addr uintptr) {
	idx := (int64(addr) - int64(bt.base)) / bt.cellSize
	byteIdx := idx / 8
	bitIdx := uint8(idx % 8)
	bt.bits[byteIdx] = bt.bits[byteIdx].Setbit(bitIdx)
	bt.nfree++
	if byteIdx < bt.hint {
		bt.hint = byteIdx
	}
}

func (bt *bitmapTracker) freeCount() int64 { return bt.nfree }
