package varpool

import "github.com/bnclabs/memalloc"

// defaultBuckets and defaultGranularity pick a bucket ladder of
// granularity, 2*granularity, ... numBuckets*granularity, each an
// exact size class. Requests larger than the top bucket bound fall
// through to the large list.
const defaultBuckets = 12
const defaultGranularity = 4 * memalloc.WordSize

// bucketIndex returns the bucket whose size class covers a request of
// n payload bytes, and whether n fits in any bucket at all (false means: route to
// the large list instead). Mirrors the binary-search bucket lookup
// the teacher's arena code used for its size-class ladder, reduced
// to the closed-form case possible when classes are evenly spaced.
func bucketIndex(n, granularity int64, numBuckets int64) (int64, bool) {
	if n <= 0 {
		return 0, false
	}
	idx := (n - 1) / granularity
	if idx >= numBuckets {
		return 0, false
	}
	return idx, true
}

// canonicalSize returns the total block size (payload + header,
// rounded to this bucket's exact class) that every block handed out
// of bucket idx must have.
func canonicalSize(idx, granularity int64) int64 {
	payload := (idx + 1) * granularity
	return memalloc.AlignUp(headerSize+payload, memalloc.WordSize)
}

// requestedBlockSize is the total block size (header included) a
// raw user request of n bytes needs, before bucket rounding.
func requestedBlockSize(n int64) int64 {
	size := memalloc.AlignUp(headerSize+n, memalloc.WordSize)
	if size < minBlock {
		size = minBlock
	}
	return size
}
