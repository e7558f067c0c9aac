// SPDX-License-Identifier: MIT
// Package grouping: greedy clique packing (the most-constrained-first heuristic).
//
// Tie-break rules (part of the public contract, relied on for reproducibility):
//   - Seeding: the ungrouped string with the FEWEST remaining compatible
//     partners opens a new group; ties go to the lowest input index.
//   - Extension: among the candidates compatible with every current member,
//     the one with the MOST remaining compatible partners joins next (it
//     constrains future groups the least); ties go to the lowest input index.
//
// Complexity: O(n²) bitset words per group in the worst case, O(n³/64)
// overall — negligible for the few hundred strings of typical operators.
package grouping

// greedyCover packs the graph's nodes into cliques and returns the groups as
// ascending index slices, ordered by their seed's discovery.
func greedyCover(g *compatGraph) [][]int {
	remaining := newBitset(g.n)
	for i := 0; i < g.n; i++ {
		remaining.set(i)
	}
	var groups [][]int
	left := g.n

	for left > 0 {
		// Most-constrained seed: fewest compatible partners among remaining.
		seed, seedDeg := -1, g.n+1
		remaining.forEach(func(i int) bool {
			if d := g.degreeWithin(i, remaining); d < seedDeg {
				seed, seedDeg = i, d
			}
			return true
		})

		group := []int{seed}
		remaining.clear(seed)
		left--

		// Candidates must be compatible with every member; intersecting with
		// each new member's adjacency maintains that invariant.
		cand := g.adj[seed].clone()
		cand.intersect(remaining)

		for !cand.empty() {
			// Most-extensible candidate: highest remaining degree.
			best, bestDeg := -1, -1
			cand.forEach(func(i int) bool {
				if d := g.degreeWithin(i, remaining); d > bestDeg {
					best, bestDeg = i, d
				}
				return true
			})
			group = append(group, best)
			remaining.clear(best)
			left--
			cand.clear(best)
			cand.intersect(g.adj[best])
		}

		groups = append(groups, sortedAscending(group))
	}
	return groups
}

// sortedAscending sorts a small index slice in place (insertion sort; groups
// are tiny and already nearly ordered).
func sortedAscending(a []int) []int {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
	return a
}
