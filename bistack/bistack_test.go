package bistack

import "testing"

func TestAllocFrontAndBack(t *testing.T) {
	bs := New(256)
	defer bs.Cleanup()

	f := bs.AllocFront(16)
	b := bs.AllocBack(16)
	if f == nil || b == nil {
		t.Fatalf("expected both allocations to succeed")
	}
	if uintptr(f) >= uintptr(b) {
		t.Errorf("expected front allocation to sit below back allocation")
	}
}

func TestAllocFrontAdvancesUpward(t *testing.T) {
	bs := New(256)
	defer bs.Cleanup()

	a := bs.AllocFront(8)
	b := bs.AllocFront(8)
	if uintptr(b) <= uintptr(a) {
		t.Errorf("expected successive front allocations to advance upward")
	}
}

func TestAllocBackAdvancesDownward(t *testing.T) {
	bs := New(256)
	defer bs.Cleanup()

	a := bs.AllocBack(8)
	b := bs.AllocBack(8)
	if uintptr(b) >= uintptr(a) {
		t.Errorf("expected successive back allocations to advance downward")
	}
}

// TestCollision covers the invariant that front and back regions must
// never overlap: once combined usage exceeds capacity, further
// allocations from either end fail.
func TestCollision(t *testing.T) {
	bs := New(64)
	defer bs.Cleanup()

	if bs.AllocFront(40) == nil {
		t.Fatalf("expected first front alloc to succeed")
	}
	if bs.AllocBack(40) != nil {
		t.Errorf("expected back alloc to fail once it would cross the front cursor")
	}
}

func TestResetFrontLeavesBackIntact(t *testing.T) {
	bs := New(256)
	defer bs.Cleanup()

	bs.AllocFront(16)
	b := bs.AllocBack(16)
	bs.ResetFront()
	_, backUsed, _ := bs.Margins()
	if backUsed != 16 {
		t.Errorf("expected back region untouched by ResetFront, got %v", backUsed)
	}
	if bs.AllocFront(200) == nil {
		t.Errorf("expected front region fully reclaimed after ResetFront")
	}
	_ = b
}

func TestResetAll(t *testing.T) {
	bs := New(256)
	defer bs.Cleanup()

	bs.AllocFront(16)
	bs.AllocBack(16)
	bs.ResetAll()
	frontUsed, backUsed, free := bs.Margins()
	if frontUsed != 0 || backUsed != 0 || free != 256 {
		t.Errorf("expected full reset, got front=%v back=%v free=%v", frontUsed, backUsed, free)
	}
}

func TestMarginsAccounting(t *testing.T) {
	bs := New(128)
	defer bs.Cleanup()

	bs.AllocFront(32)
	bs.AllocBack(16)
	frontUsed, backUsed, free := bs.Margins()
	if frontUsed != 32 || backUsed != 16 || free != 80 {
		t.Errorf("unexpected margins: front=%v back=%v free=%v", frontUsed, backUsed, free)
	}
	if bs.FreeSpace() != free {
		t.Errorf("expected FreeSpace to match Margins' free value")
	}
}
