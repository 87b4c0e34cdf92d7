package main

import "testing"

import "github.com/stretchr/testify/require"

func TestBucketRanges(t *testing.T) {
	ranges := bucketRanges(4, 16)
	require.Len(t, ranges, 4)
	require.Equal(t, int64(1), ranges[0].lo)
	require.Equal(t, int64(16), ranges[0].hi)
	require.Equal(t, int64(17), ranges[1].lo)
	require.Equal(t, int64(32), ranges[1].hi)
}

func TestBucketRangesWorstCaseRatio(t *testing.T) {
	ranges := bucketRanges(1, 16)
	require.InDelta(t, 16.0, ranges[0].worst, 0.0001)
}
