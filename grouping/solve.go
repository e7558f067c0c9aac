// SPDX-License-Identifier: MIT
// Package grouping - unified dispatcher for partition computation.
//
// This file provides the canonical entry point:
//
//   - ComputePartition: accept a *pauli.Operator, build the compatibility
//     graph for the requested strategy, and route to the algorithms
//     (greedy packing / canonical spread / exact clique cover), returning
//     the smallest partition found.
//
// Design principles:
//   - Deterministic: fixed tie-breaks, no time-based randomness; identical
//     inputs always produce identical partitions.
//   - Strict sentinels: only errors from errors.go; no fmt.Errorf where a
//     sentinel suffices.
//   - Standalone: a pure function from operator to partition, no dependency
//     on any host framework's object model.
package grouping

import "github.com/katalvlaran/paulifam/pauli"

// ComputePartition partitions op's Pauli strings into simultaneously
// measurable groups under the configured strategy.
//
// Routing:
//   - Naive: one group per string.
//   - QubitWise: greedy most-constrained clique packing on the per-qubit
//     compatibility graph; refined by exact minimum clique cover when
//     op.Len() ≤ ExactLimit.
//   - Dense: best of greedy packing on the commutation graph, the canonical
//     symplectic-spread bucketing (m ≤ 16), and the exact cover (small
//     inputs). Fewest groups wins; ties resolve by the fixed precedence
//     exact > spread > greedy.
//
// Errors: ErrNilOperator, ErrOptionViolation, or ctx cancellation from the
// exact search.
//
// Complexity: graph O(n²), greedy O(n³/64) worst case, spread O(n·m + m²),
// exact exponential but bounded by ExactLimit.
func ComputePartition(op *pauli.Operator, opts ...Option) (*Partition, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	strs := op.Strings()
	n := len(strs)

	var groups [][]int
	switch o.Strategy {
	case Naive:
		groups = make([][]int, n)
		for i := 0; i < n; i++ {
			groups[i] = []int{i}
		}

	case QubitWise, Dense:
		g := buildCompatGraph(strs, o.Strategy.compatible)
		groups = greedyCover(g)

		if o.Strategy == Dense {
			if spread, err := spreadCover(strs, op.Qubits()); err == nil && len(spread) <= len(groups) {
				groups = spread
			}
		}
		if o.ExactLimit > 0 && n <= o.ExactLimit {
			exact, err := exactCover(o.Ctx, g)
			if err != nil {
				return nil, err
			}
			if len(exact) <= len(groups) {
				groups = exact
			}
		}

	default:
		return nil, ErrUnknownStrategy
	}

	return &Partition{
		Strategy: o.Strategy,
		Qubits:   op.Qubits(),
		Groups:   canonicalGroups(groups),
	}, nil
}

// canonicalGroups sorts members ascending and orders groups by their first
// member, giving every algorithm the same output shape.
func canonicalGroups(raw [][]int) []Group {
	out := make([]Group, len(raw))
	for i, members := range raw {
		out[i] = Group{Members: sortedAscending(members)}
	}
	// Insertion sort on first member; group counts are small.
	for i := 1; i < len(out); i++ {
		g := out[i]
		j := i - 1
		for j >= 0 && out[j].Members[0] > g.Members[0] {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = g
	}
	return out
}
