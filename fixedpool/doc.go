// Package fixedpool implements FixedPool, an allocator over a single
// contiguous buffer sliced into cellCount cells of a uniform cellSize.
// Every cell is the same size, so there is no size-class bookkeeping:
// with the default strategy alloc and free are both O(1).
//
// Two strategies for tracking which cells are free are supported.
// The default carries no bookkeeping memory of its own: a freed
// cell's first pointer-sized word holds the address of the
// previously freed cell, so the free chain lives entirely inside the
// buffer (freedHead/nextFresh, the intrusive-list technique the
// teacher's flist-based pool approximates with an out-of-band index
// array). WithBitmapFreeList selects a single-level bitmap instead,
// one bit per cell kept outside the buffer; alloc scans it for the
// lowest-addressed free cell (grounded on the teacher's bitmap-based
// pool).
//
// FixedPool is not safe for concurrent use without external
// synchronization.
package fixedpool
