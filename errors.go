package memalloc

import "errors"

// ErrZeroCapacity is the panic value when a component is constructed
// with a zero or negative capacity.
var ErrZeroCapacity = errors.New("memalloc.zerocapacity")

// ErrCapacityTooSmall is the panic value when a FixedPool buffer
// cannot hold even one cell, or its base is not word-aligned.
var ErrCapacityTooSmall = errors.New("memalloc.capacitytoosmall")

// ErrCellTooSmall is the panic value when FixedPool is asked for a
// zero or negative cell size. Positive sizes smaller than a word are
// rounded up to WordSize instead.
var ErrCellTooSmall = errors.New("memalloc.celltoosmall")
