package memalloc

import s "github.com/bnclabs/gosettings"

// Settings is a map of configuration parameters, re-used from
// gosettings so that cmd/blocksizes and any embedding application can
// share one settings vocabulary with the rest of the bnclabs stack.
type Settings = s.Settings

// VarpoolSettings default settings for a varpool.VarPool.
//
// "buckets" (int64, default: 12)
//		Number of segregated free-list buckets, one of 8/12/16.
//
// "granularity" (int64, default: 4*WordSize)
//		Size-class width, in bytes, of each bucket.
func VarpoolSettings() Settings {
	return Settings{
		"buckets":     int64(12),
		"granularity": 4 * WordSize,
	}
}
