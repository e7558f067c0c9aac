// SPDX-License-Identifier: MIT
// Package grouping: canonical symplectic-spread partition.
//
// The full set of 4^m−1 non-identity Pauli strings on m qubits splits into
// exactly 2^m+1 families of 2^m−1 strings each, every family mutually
// commuting — the theoretical minimum number of simultaneously measurable
// groups, 2^m times fewer than naive one-string-per-measurement and (3/2)^m
// times fewer than per-qubit grouping (which needs at least 3^m groups on
// the full set).
//
// Construction. Identify a string with its symplectic pair (x, z) ∈ F2^m×F2^m
// and coordinates with GF(2^m) through a trace-self-dual basis, so that the
// commutation form x1·z2 + x2·z1 becomes tr(a1·b2 + a2·b1). The families are
// the lines of the symplectic spread:
//
//	L_∞ = {(0, b) : b ≠ 0}                     (the pure-Z family)
//	L_λ = {(a, λ·a) : a ≠ 0},  λ ∈ GF(2^m)     (λ=0 is the pure-X family)
//
// Each L_λ is totally isotropic — tr(λ(a1·a2 + a2·a1)) vanishes in
// characteristic 2 — the lines intersect only at the origin, and together
// they cover every nonzero pair exactly once. Any string therefore belongs
// to exactly one family: λ = elem(z)/elem(x) when x ≠ 0, and L_∞ otherwise.
//
// Arbitrary operators are bucketed into their families and empty families
// are dropped; on the complete operator this yields the optimum directly, on
// dense subsets a near-optimal partition at O(n·m) cost after the O(m²)
// field setup.
package grouping

import "github.com/katalvlaran/paulifam/pauli"

// spreadCover buckets the strings into canonical spread families. Identity
// strings commute with everything and are appended to the first non-empty
// family (or form their own when nothing else is present). Families are
// returned ordered by their smallest member index.
func spreadCover(strs []pauli.String, m int) ([][]int, error) {
	f, err := newField(m)
	if err != nil {
		return nil, err
	}

	// familyOf: λ as 0..2^m−1, 2^m for L_∞.
	inf := uint64(1) << uint(m)
	buckets := make(map[uint64][]int)
	var order []uint64 // family keys by first appearance = smallest member
	var identities []int

	for i, p := range strs {
		if p.IsIdentity() {
			identities = append(identities, i)
			continue
		}
		var key uint64
		if p.XMask() == 0 {
			key = inf
		} else {
			a := f.toElement(p.XMask())
			b := f.toElement(p.ZMask())
			key = f.mul(b, f.inv(a)) // λ = b/a
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], i)
	}

	groups := make([][]int, 0, len(order)+1)
	for _, key := range order {
		groups = append(groups, buckets[key])
	}
	if len(identities) > 0 {
		if len(groups) == 0 {
			groups = append(groups, identities)
		} else {
			groups[0] = append(groups[0], identities...)
			groups[0] = sortedAscending(groups[0])
		}
	}
	return groups, nil
}
