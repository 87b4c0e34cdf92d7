// Package varpool implements VarPool, a hybrid allocator combining a
// bump-pointer arena with a fixed number of segregated, exact-size-
// class free lists plus one catch-all list for oversize blocks.
//
// Every live or freed block is preceded by a header recording the
// block's total size in bytes, header included. A freed block's
// payload bytes are reused to hold the free list's next/prev links,
// exactly as the header describes them: once a block is handed back
// to a caller those same bytes become part of the user payload again.
//
// The baseline design never splits a free block on allocation and
// never coalesces adjacent free blocks on release: buckets are
// exact-size-class lists, which keeps alloc/free amortized O(1) at
// the cost of internal fragmentation. This is deliberate, not an
// oversight — see the package's tests for the LIFO reuse guarantee
// that depends on it.
package varpool
