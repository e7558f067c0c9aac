// SPDX-License-Identifier: MIT
// Package grouping: compatibility graph over an operator's Pauli strings.
//
// The graph is the full pairwise relation demanded by clique packing, stored
// as one bitset row per string. Building it is O(n²·m); no sparsification is
// attempted because the packing algorithms need complete adjacency. The edge
// set depends only on the label sequences and the input order, never on
// wall-clock or map iteration, so identical operators always yield identical
// graphs (a prerequisite for partition memoization).
package grouping

import (
	"math/bits"

	"github.com/katalvlaran/paulifam/pauli"
)

const wordBits = 64

// bitset is a fixed-capacity set of small non-negative integers.
type bitset []uint64

func newBitset(n int) bitset { return make(bitset, (n+wordBits-1)/wordBits) }

func (b bitset) set(i int)      { b[i/wordBits] |= 1 << uint(i%wordBits) }
func (b bitset) clear(i int)    { b[i/wordBits] &^= 1 << uint(i%wordBits) }
func (b bitset) has(i int) bool { return b[i/wordBits]&(1<<uint(i%wordBits)) != 0 }

func (b bitset) count() int {
	c := 0
	for _, w := range b {
		c += bits.OnesCount64(w)
	}
	return c
}

// andCount returns |b ∩ other| without allocating.
func (b bitset) andCount(other bitset) int {
	c := 0
	for i, w := range b {
		c += bits.OnesCount64(w & other[i])
	}
	return c
}

// intersect keeps only the bits also present in other.
func (b bitset) intersect(other bitset) {
	for i := range b {
		b[i] &= other[i]
	}
}

func (b bitset) clone() bitset {
	cp := make(bitset, len(b))
	copy(cp, b)
	return cp
}

func (b bitset) empty() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

// forEach calls fn for every set bit in ascending order; fn returning false
// stops the iteration.
func (b bitset) forEach(fn func(i int) bool) {
	for wi, w := range b {
		for w != 0 {
			i := wi*wordBits + bits.TrailingZeros64(w)
			if !fn(i) {
				return
			}
			w &= w - 1
		}
	}
}

// compatGraph is the undirected compatibility graph: node i ↔ the operator's
// i-th string, adj[i] the bitset of compatible partners. Self-loops are not
// recorded; every string is trivially compatible with itself.
type compatGraph struct {
	n   int
	adj []bitset
}

// buildCompatGraph evaluates the predicate for every unordered pair.
// Complexity: O(n²) predicate calls, each O(1) on ≤64 qubits.
func buildCompatGraph(strs []pauli.String, compatible func(a, b pauli.String) bool) *compatGraph {
	n := len(strs)
	g := &compatGraph{n: n, adj: make([]bitset, n)}
	for i := 0; i < n; i++ {
		g.adj[i] = newBitset(n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if compatible(strs[i], strs[j]) {
				g.adj[i].set(j)
				g.adj[j].set(i)
			}
		}
	}
	return g
}

// degreeWithin returns how many members of the set are compatible with i.
func (g *compatGraph) degreeWithin(i int, set bitset) int {
	return g.adj[i].andCount(set)
}
