package varpool

import "testing"
import "unsafe"

func TestAllocBasic(t *testing.T) {
	vp := New(4096)
	defer vp.Cleanup()

	ptr := vp.Alloc(32)
	if ptr == nil {
		t.Fatalf("expected non-nil pointer")
	}
	stats := vp.Stats()
	if stats.Live != 1 {
		t.Errorf("expected 1 live block, got %v", stats.Live)
	}
}

func TestAllocZeroOrNegativeReturnsNil(t *testing.T) {
	vp := New(1024)
	defer vp.Cleanup()

	if vp.Alloc(0) != nil {
		t.Errorf("expected nil for zero-size request")
	}
	if vp.Alloc(-5) != nil {
		t.Errorf("expected nil for negative-size request")
	}
}

// TestLIFOReuse covers invariant: a freed block of a given size class
// is the very next block handed out for a same-class request (S1).
func TestLIFOReuse(t *testing.T) {
	vp := New(4096)
	defer vp.Cleanup()

	a := vp.Alloc(10)
	vp.Free(a)
	b := vp.Alloc(10)
	if b != a {
		t.Errorf("expected LIFO reuse of freed block: got %p, want %p", b, a)
	}
}

// TestBucketExactMatch: requests that map to the same bucket get
// blocks of identical canonical size (invariant 4/5 family).
func TestBucketExactMatch(t *testing.T) {
	vp := New(4096)
	defer vp.Cleanup()

	a := vp.Alloc(5)
	vp.Free(a)
	b := vp.Alloc(12)
	if a != b {
		t.Errorf("expected requests in the same size class to reuse the same block")
	}
}

// TestLargeBlockFirstFit covers oversize requests routed past every
// bucket onto the catch-all list (S3-style scenario).
func TestLargeBlockFirstFit(t *testing.T) {
	vp := New(1 << 20)
	defer vp.Cleanup()

	big := defaultBuckets*defaultGranularity + 1024
	p1 := vp.Alloc(big)
	if p1 == nil {
		t.Fatalf("expected large alloc to succeed")
	}
	vp.Free(p1)
	p2 := vp.Alloc(big - 100)
	if p2 != p1 {
		t.Errorf("expected first-fit reuse of the freed large block")
	}
}

func TestFreeSpaceAccounting(t *testing.T) {
	vp := New(4096)
	defer vp.Cleanup()

	before := vp.FreeSpace()
	ptr := vp.Alloc(64)
	after := vp.FreeSpace()
	if after >= before {
		t.Errorf("expected free space to shrink after alloc: before=%v after=%v", before, after)
	}
	vp.Free(ptr)
	restored := vp.FreeSpace()
	if restored != before {
		t.Errorf("expected free space to be restored after free: before=%v restored=%v", before, restored)
	}
}

func TestExhaustion(t *testing.T) {
	vp := New(256, WithBuckets(1), WithGranularity(16))
	defer vp.Cleanup()

	var ptrs []unsafe.Pointer
	for {
		p := vp.Alloc(16)
		if p == nil {
			break
		}
		ptrs = append(ptrs, p)
	}
	if len(ptrs) == 0 {
		t.Fatalf("expected at least one successful alloc before exhaustion")
	}
}

func TestReallocGrowsAndPreservesData(t *testing.T) {
	vp := New(4096)
	defer vp.Cleanup()

	ptr := vp.Alloc(8)
	sh := sliceOver(ptr, 8)
	copy(sh, []byte("abcdefgh"))

	grown := vp.Realloc(ptr, 64)
	if grown == nil {
		t.Fatalf("expected realloc to succeed")
	}
	got := sliceOver(grown, 8)
	if string(got) != "abcdefgh" {
		t.Errorf("expected data preserved across realloc, got %q", string(got))
	}
}

func TestReallocShrinkKeepsPointer(t *testing.T) {
	vp := New(4096)
	defer vp.Cleanup()

	ptr := vp.Alloc(64)
	same := vp.Realloc(ptr, 4)
	if same != ptr {
		t.Errorf("expected shrink-in-place to keep the same pointer")
	}
}

func TestReallocNilActsAsAlloc(t *testing.T) {
	vp := New(1024)
	defer vp.Cleanup()

	p := vp.Realloc(nil, 16)
	if p == nil {
		t.Errorf("expected Realloc(nil, n) to behave like Alloc")
	}
}

func TestReallocZeroActsAsFree(t *testing.T) {
	vp := New(1024)
	defer vp.Cleanup()

	p := vp.Alloc(16)
	if out := vp.Realloc(p, 0); out != nil {
		t.Errorf("expected Realloc(ptr, 0) to return nil")
	}
}

func TestReset(t *testing.T) {
	vp := New(4096)
	defer vp.Cleanup()

	vp.Alloc(16)
	vp.Alloc(32)
	before := vp.FreeSpace()
	vp.Reset()
	after := vp.FreeSpace()
	if after <= before {
		t.Errorf("expected Reset to restore free space, before=%v after=%v", before, after)
	}
	if vp.Stats().Live != 0 {
		t.Errorf("expected 0 live blocks after reset")
	}
}

func TestFreeIgnoresForeignPointer(t *testing.T) {
	vp := New(1024)
	defer vp.Cleanup()

	var x int
	vp.Free(unsafe.Pointer(&x)) // must not panic
	vp.Free(nil)                // must not panic
}

// TestFreeIgnoresPointerBelowHeaderOffset covers spec.md §4.1 step 1:
// a pointer that falls inside the buffer but before base+header_size
// can never be a valid payload pointer, and must be silently ignored
// rather than underflowing blockOf's arithmetic.
func TestFreeIgnoresPointerBelowHeaderOffset(t *testing.T) {
	vp := New(1024)
	defer vp.Cleanup()

	vp.Free(unsafe.Pointer(vp.base)) // exactly base, below base+headerSize
}

// TestFreeIgnoresMisalignedPointer covers the alignment half of the
// same guard: an in-range pointer that isn't word-aligned can't be a
// real payload pointer either.
func TestFreeIgnoresMisalignedPointer(t *testing.T) {
	vp := New(1024)
	defer vp.Cleanup()

	ptr := vp.Alloc(32)
	misaligned := unsafe.Pointer(uintptr(ptr) + 1)
	vp.Free(misaligned) // must not panic or corrupt the real block
	stats := vp.Stats()
	if stats.Live != 1 {
		t.Errorf("expected the real block to remain live, got %v", stats.Live)
	}
}

// TestAllocReturnsZeroedBlock covers spec.md §4.1's "returns a zeroed
// block" contract and invariant 8: a payload freshly carved off the
// bump arena must be all zero.
func TestAllocReturnsZeroedBlock(t *testing.T) {
	vp := New(4096)
	defer vp.Cleanup()

	ptr := vp.Alloc(64)
	for i, b := range sliceOver(ptr, 64) {
		if b != 0 {
			t.Fatalf("expected byte %v of fresh block to be zero, got %v", i, b)
		}
	}
}

// TestFreedBlockIsRezeroedOnReuse covers the same contract on the
// recycled-block path: garbage written into a block while it was live
// must not resurface once the block is freed and handed out again.
func TestFreedBlockIsRezeroedOnReuse(t *testing.T) {
	vp := New(4096)
	defer vp.Cleanup()

	a := vp.Alloc(32)
	copy(sliceOver(a, 32), []byte("garbage-left-behind-by-caller!!"))
	vp.Free(a)

	b := vp.Alloc(32)
	if b != a {
		t.Fatalf("expected LIFO reuse of the freed block")
	}
	for i, byt := range sliceOver(b, 32) {
		if byt != 0 {
			t.Fatalf("expected byte %v of reused block to be zeroed, got %v", i, byt)
		}
	}
}

func TestNewFromBufferDoesNotOwnBacking(t *testing.T) {
	backing := make([]byte, 2048)
	vp := NewFromBuffer(backing)
	ptr := vp.Alloc(16)
	if ptr == nil {
		t.Fatalf("expected alloc to succeed over borrowed buffer")
	}
	vp.Cleanup()
	// backing slice itself is untouched by Cleanup; no crash expected
	// when the caller keeps using it.
	backing[0] = 1
}
