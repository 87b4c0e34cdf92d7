package fixedpool

// tracker records which cells of a FixedPool are free and hands out
// cell addresses on request. Swappable so FixedPool can pick between
// the default intrusive-link strategy and the bitmap strategy.
type tracker interface {
	// alloc returns the address of a free cell, or ok=false if none
	// remain.
	alloc() (addr uintptr, ok bool)
	// free returns the cell at addr to the pool of available cells.
	free(addr uintptr)
	// freeCount reports how many cells are currently available.
	freeCount() int64
}
