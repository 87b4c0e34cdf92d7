package fixedpool

import "unsafe"

// intrusiveList is the default cell tracker: no bookkeeping memory
// outside the buffer itself. freedHead chains freed cells through
// their own first pointer-sized word; nextFresh marks the boundary
// between the untouched tail and everything that has ever been
// touched. A cell is either live (owned by the caller), linked into
// the freed chain reachable from freedHead, or still in the untouched
// tail past nextFresh — the three sets partition the cells.
type intrusiveList struct {
	base      uintptr
	cellSize  int64
	end       uintptr
	freedHead uintptr // 0 means empty
	nextFresh uintptr
	nfree     int64
}

func newIntrusiveList(base uintptr, cellSize, cellCount int64) *intrusiveList {
	return &intrusiveList{
		base:      base,
		cellSize:  cellSize,
		end:       base + uintptr(cellSize*cellCount),
		nextFresh: base,
		nfree:     cellCount,
	}
}

func (il *intrusiveList) nextOf(cell uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(cell))
}

func (il *intrusiveList) setNextOf(cell, next uintptr) {
	*(*uintptr)(unsafe.Pointer(cell)) = next
}

// alloc pops the freed chain's head if non-empty, else consumes the
// next untouched cell. Returns ok=false once both are spent.
func (il *intrusiveList) alloc() (uintptr, bool) {
	if il.freedHead != 0 {
		cell := il.freedHead
		il.freedHead = il.nextOf(cell)
		il.nfree--
		return cell, true
	}
	if il.nextFresh < il.end {
		cell := il.nextFresh
		il.nextFresh += uintptr(il.cellSize)
		il.nfree--
		return cell, true
	}
	return 0, false
}

// free writes the current freedHead into addr's first word and makes
// addr the new head.
func (il *intrusiveList) free(addr uintptr) {
	il.setNextOf(addr, il.freedHead)
	il.freedHead = addr
	il.nfree++
}

func (il *intrusiveList) freeCount() int64 { return il.nfree }
