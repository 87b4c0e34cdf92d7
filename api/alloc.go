// Package api defines the narrow, shared contract between the
// allocators in this repository that hand out individually freeable
// blocks. BiStack intentionally does not implement this interface:
// its alloc_front/alloc_back/reset model has no per-block Free, by
// design, so forcing it into a common shape with VarPool and
// FixedPool would misrepresent its contract.
package api

import "unsafe"

// Allocator is satisfied by varpool.VarPool and fixedpool.FixedPool.
// Every method follows the same error taxonomy: Alloc returns nil on
// exhaustion, Free is total (nil or out-of-range pointers are
// silently ignored).
type Allocator interface {
	// Alloc returns a block of at least n bytes, or nil.
	Alloc(n int64) unsafe.Pointer

	// Free returns ptr to the allocator. Total: never panics on
	// caller misuse.
	Free(ptr unsafe.Pointer)

	// FreeSpace reports bytes available for future allocation.
	FreeSpace() int64
}
