// SPDX-License-Identifier: MIT
// Package expectation - deterministic per-group seed derivation.
//
// Groups are dispatched concurrently, so they must not share one sampling
// stream: each group gets an independent seed mixed from the estimator seed
// and the group index. Same estimator seed ⇒ identical per-group seeds,
// regardless of dispatch order.
package expectation

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer (Vigna 2014): small input changes produce large,
// well-distributed output changes, decorrelating the substreams.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
