// Command blocksizes reports the bucket ladder a varpool.VarPool would
// build for a given configuration: each bucket's request range, the
// payload size every request in it is rounded up to, and the
// worst-case internal-fragmentation ratio a request landing at the
// bottom of that bucket's range would incur.
package main

import "flag"
import "fmt"

import "github.com/dustin/go-humanize"

import "github.com/bnclabs/memalloc"
import "github.com/bnclabs/memalloc/varpool"

// settings holds the merged configuration this run will report on:
// memalloc.VarpoolSettings()'s defaults, overridden by whatever the
// caller passed on the command line.
var settings memalloc.Settings

// argParse takes flag.Int64's defaults from VarpoolSettings() so
// -help always echoes the library's own defaults, then mixes the
// parsed values back into settings.
func argParse() {
	defaults := memalloc.VarpoolSettings()

	buckets := flag.Int64(
		"buckets", defaults.Int64("buckets"), "number of exact-size-class buckets")
	granularity := flag.Int64(
		"granularity", defaults.Int64("granularity"),
		"byte span of each bucket's size class")
	flag.Parse()

	settings = defaults.Mixin(memalloc.Settings{
		"buckets":     *buckets,
		"granularity": *granularity,
	})
}

func main() {
	argParse()
	report()
}

// bucketRange describes one bucket's request range and worst-case
// internal-fragmentation ratio: a request at the low end of the range
// pays for the whole hi-sized block.
type bucketRange struct {
	index int64
	lo    int64
	hi    int64
	worst float64
}

func bucketRanges(buckets, granularity int64) []bucketRange {
	ranges := make([]bucketRange, buckets)
	for i := int64(0); i < buckets; i++ {
		lo := i*granularity + 1
		hi := (i + 1) * granularity
		ranges[i] = bucketRange{index: i, lo: lo, hi: hi, worst: float64(hi) / float64(lo)}
	}
	return ranges
}

func report() {
	buckets := settings.Int64("buckets")
	granularity := settings.Int64("granularity")
	capacity := buckets * granularity * 8
	vp := varpool.New(
		capacity,
		varpool.WithBuckets(buckets),
		varpool.WithGranularity(granularity),
	)
	defer vp.Cleanup()

	fmt.Printf(
		"%v buckets, granularity %v, arena %v\n",
		buckets, granularity, humanize.Bytes(uint64(capacity)),
	)
	for _, r := range bucketRanges(buckets, granularity) {
		fmt.Printf(
			"bucket %3v: requests %4v..%4v -> %v (worst-case waste %.2fx)\n",
			r.index, r.lo, r.hi, humanize.Bytes(uint64(r.hi)), r.worst,
		)
	}
	fmt.Printf(
		"requests above %v route to the large, first-fit list\n",
		humanize.Bytes(uint64(buckets*granularity)),
	)
	fmt.Println(vp.Stats())
}
