package varpool

// freelist is a doubly linked list of freed blocks threaded through
// the blocks' own payload bytes. Bucket lists are exact-size-class:
// every block on a given bucket list was rounded up to that bucket's
// canonical size at allocation time, so popping the head always
// satisfies any request that maps to the bucket, in O(1), LIFO.
//
// The large list holds oversize blocks of varying size and is
// searched first-fit in insertion order, oldest first; it is
// the only list where alloc is not O(1).
type freelist struct {
	head uintptr
	tail uintptr
	n    int64
}

func (fl *freelist) empty() bool { return fl.head == 0 }

// pushFront adds blockBase to the head of the list. Used by free for
// bucket lists, giving LIFO reuse (invariant: most-recently-freed
// block of a given size class is the next one handed out).
func (fl *freelist) pushFront(blockBase uintptr) {
	*linkNextAddr(blockBase) = fl.head
	*linkPrevAddr(blockBase) = 0
	if fl.head != 0 {
		*linkPrevAddr(fl.head) = blockBase
	} else {
		fl.tail = blockBase
	}
	fl.head = blockBase
	fl.n++
}

// popFront removes and returns the head block, or 0 if empty.
func (fl *freelist) popFront() uintptr {
	if fl.head == 0 {
		return 0
	}
	blockBase := fl.head
	next := *linkNextAddr(blockBase)
	fl.head = next
	if next != 0 {
		*linkPrevAddr(next) = 0
	} else {
		fl.tail = 0
	}
	fl.n--
	return blockBase
}

// remove unlinks blockBase from the list, wherever it sits. Used by
// the large list's first-fit pop, which may need to take a block
// that isn't the head.
func (fl *freelist) remove(blockBase uintptr) {
	prev := *linkPrevAddr(blockBase)
	next := *linkNextAddr(blockBase)
	if prev != 0 {
		*linkNextAddr(prev) = next
	} else {
		fl.head = next
	}
	if next != 0 {
		*linkPrevAddr(next) = prev
	} else {
		fl.tail = prev
	}
	fl.n--
}

// firstFit scans from head for the first block whose recorded size
// is >= size, removes it, and returns its block base. Returns 0 if
// none qualifies.
func (fl *freelist) firstFit(size int64) uintptr {
	for cur := fl.head; cur != 0; cur = *linkNextAddr(cur) {
		if sizeOf(cur) >= size {
			fl.remove(cur)
			return cur
		}
	}
	return 0
}

func (fl *freelist) pushBack(blockBase uintptr) {
	*linkNextAddr(blockBase) = 0
	*linkPrevAddr(blockBase) = fl.tail
	if fl.tail != 0 {
		*linkNextAddr(fl.tail) = blockBase
	} else {
		fl.head = blockBase
	}
	fl.tail = blockBase
	fl.n++
}
