// SPDX-License-Identifier: MIT
// Package grouping: measurement-basis resolution for groups.
package grouping

import (
	"fmt"

	"github.com/katalvlaran/paulifam/pauli"
)

// Basis describes the single measurement configuration shared by all members
// of a group.
//
// For groups whose members agree per qubit (every QubitWise or Naive group,
// and many Dense groups), PerQubit holds one label per qubit: X, Y or Z
// where some member is non-I, and I as "don't care" where every member is I.
//
// Dense groups may instead consist of strings that commute globally without
// sharing per-qubit labels (e.g. XX, YY, ZZ); those need a joint eigenbasis
// of the whole family rather than independent per-qubit rotations, and are
// marked Joint with PerQubit nil. Backends diagonalize such families from
// the member list itself.
type Basis struct {
	PerQubit []pauli.Label
	Joint    bool
}

// ResolveBasis derives the measurement configuration of group g over strs
// (the operator's strings in original order).
//
// At each qubit the unique non-I label used by any member becomes the
// measurement axis. If two members disagree at a non-I position, the group
// is only legitimate when all members still commute pairwise — then a joint
// eigenbasis exists and the Joint marker is returned. Otherwise the group
// violates the grouping invariant and ErrInconsistentGroup is returned; this
// must never happen for partitions produced by ComputePartition and is
// checked defensively.
//
// Complexity: O(|g|·m), plus O(|g|²) commutation checks on disagreement.
func ResolveBasis(strs []pauli.String, g Group) (Basis, error) {
	if len(g.Members) == 0 {
		return Basis{}, fmt.Errorf("%w: empty group", ErrInconsistentGroup)
	}
	m := strs[g.Members[0]].Len()
	per := make([]pauli.Label, m)
	for q := range per {
		per[q] = pauli.I
	}

	for _, idx := range g.Members {
		s := strs[idx]
		for q := 0; q < m; q++ {
			l := s.Label(q)
			if l == pauli.I {
				continue
			}
			switch per[q] {
			case pauli.I:
				per[q] = l
			case l:
				// agreement
			default:
				return resolveJoint(strs, g)
			}
		}
	}
	return Basis{PerQubit: per}, nil
}

// resolveJoint verifies pairwise commutation and returns the Joint marker,
// or ErrInconsistentGroup naming the offending pair.
func resolveJoint(strs []pauli.String, g Group) (Basis, error) {
	for i := 0; i < len(g.Members); i++ {
		for j := i + 1; j < len(g.Members); j++ {
			a, b := strs[g.Members[i]], strs[g.Members[j]]
			if !pauli.Commutes(a, b) {
				return Basis{}, fmt.Errorf("%w: %s and %s do not commute", ErrInconsistentGroup, a, b)
			}
		}
	}
	return Basis{Joint: true}, nil
}

// ResolveBases resolves every group of the partition in order.
func (p *Partition) ResolveBases(op *pauli.Operator) ([]Basis, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	strs := op.Strings()
	out := make([]Basis, len(p.Groups))
	for i, g := range p.Groups {
		b, err := ResolveBasis(strs, g)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}
