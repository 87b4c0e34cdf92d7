// Package memalloc supplies a small family of custom memory allocators
// for use in place of the Go heap when an algorithm's memory behaviour
// is known ahead of time and needs to live outside the garbage
// collector's reach: embedded targets, game-engine subsystems, arena
// style parsers and interpreters.
//
// Three independent engines are provided as sub-packages:
//
//	varpool
//		Arbitrary-size allocation over a segregated set of free
//		lists backed by a bump region, for workloads whose request
//		sizes vary but repeat.
//
//	fixedpool
//		Allocation of uniformly sized cells carved from one buffer,
//		for workloads that only ever need one object size at a
//		time (node pools, connection pools, fixed-size records).
//
//	bistack
//		A pair of bump allocators sharing one buffer and growing
//		towards each other, for short-lived scratch allocations
//		that naturally split into two independent streams (front
//		for one kind of scratch data, back for another).
//
// None of the three share implementation code, and a block obtained
// from one must never be passed to another. None of the three types
// are safe for concurrent use; callers sharing an instance across
// goroutines must provide their own mutual exclusion around every
// method, including read-only accessors such as Stats and Margins.
//
// This package itself holds only what the three engines share: buffer
// acquisition/release (owning vs. borrowed buffers), platform-word
// alignment arithmetic, and an opt-in logging gate.
package memalloc
