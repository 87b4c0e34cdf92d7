package lib

var lookupffs = [256]int8{
	-1, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0, 4, 0, 1, 0, 2, 0, 1, 0,
	3, 0, 1, 0, 2, 0, 1, 0, 5, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0,
	4, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0, 6, 0, 1, 0, 2, 0, 1, 0,
	3, 0, 1, 0, 2, 0, 1, 0, 4, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0,
	5, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0, 4, 0, 1, 0, 2, 0, 1, 0,
	3, 0, 1, 0, 2, 0, 1, 0, 7, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0,
	4, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0, 5, 0, 1, 0, 2, 0, 1, 0,
	3, 0, 1, 0, 2, 0, 1, 0, 4, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0,
	6, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0, 4, 0, 1, 0, 2, 0, 1, 0,
	3, 0, 1, 0, 2, 0, 1, 0, 5, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0,
	4, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0,
}

// Bit8 alias for byte, provides bit twiddling methods on an 8-bit number.
type Bit8 byte

// Findfirstset returns the index, from the LSB, of the first set bit,
// or -1 if no bit is set.
func (b Bit8) Findfirstset() int8 { // move this to ASM.
	return lookupffs[b]
}

// Clearbit clears the n-th bit.
func (b Bit8) Clearbit(n uint8) Bit8 { // move this to ASM.
	return b & (0xff ^ (1 << n))
}

// Setbit sets the n-th bit.
func (b Bit8) Setbit(n uint8) Bit8 { // move this to ASM.
	return b | (1 << n)
}

// Ones counts the number of set bits.
func (b Bit8) Ones() (c int8) { // move this to ASM.
	for v := b; v != 0; v >>= 1 {
		c += int8(v & 1)
	}
	return c
}

// Zeros counts the number of unset bits.
func (b Bit8) Zeros() int8 {
	return 8 - b.Ones()
}
