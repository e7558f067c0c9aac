// SPDX-License-Identifier: MIT
// Package expectation: coefficient-weighted aggregation of group outcomes.
package expectation

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/paulifam/grouping"
	"github.com/katalvlaran/paulifam/pauli"
)

// Aggregate combines per-group outcomes into ⟨H⟩ = Σ cᵢ·⟨Pᵢ⟩.
//
// outcomes[i] answers part.Groups[i]. For per-qubit bases each member's
// eigenvalue on a bitstring b is the parity (−1)^|b ∧ support(P)| — qubits
// outside the support are "don't care" and cancel out. For joint bases the
// backend already reports one value per member and the parity step is skipped.
//
// Failure is total: a missing or ambiguous outcome for any group aborts the
// evaluation with ErrMissingResult or ErrResultMismatch; no partial sums are
// ever returned.
//
// Complexity: O(Σ_g |outcome_g| · |members_g|).
func Aggregate(op *pauli.Operator, part *grouping.Partition, outcomes []Outcome) (complex128, error) {
	if op == nil {
		return 0, ErrNilOperator
	}
	if part == nil || len(outcomes) != part.Size() {
		return 0, fmt.Errorf("%w: %d outcomes for %d groups", ErrMissingResult, len(outcomes), part.Size())
	}

	var total complex128
	for gi, g := range part.Groups {
		sum, err := aggregateGroup(op, g, outcomes[gi])
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", gi, err)
		}
		total += sum
	}
	return total, nil
}

// aggregateGroup resolves one group's contribution from whichever payload the
// outcome carries.
func aggregateGroup(op *pauli.Operator, g grouping.Group, out Outcome) (complex128, error) {
	payloads := 0
	if out.Counts != nil {
		payloads++
	}
	if out.Probabilities != nil {
		payloads++
	}
	if out.MemberValues != nil {
		payloads++
	}
	switch {
	case payloads == 0:
		return 0, ErrMissingResult
	case payloads > 1:
		return 0, fmt.Errorf("%w: ambiguous outcome payload", ErrResultMismatch)
	}

	var sum complex128
	switch {
	case out.MemberValues != nil:
		if len(out.MemberValues) != len(g.Members) {
			return 0, fmt.Errorf("%w: %d member values for %d members",
				ErrResultMismatch, len(out.MemberValues), len(g.Members))
		}
		for j, idx := range g.Members {
			t := op.Term(idx)
			sum += t.Coefficient * complex(out.MemberValues[j], 0)
		}

	case out.Probabilities != nil:
		if len(out.Probabilities) != 1<<uint(op.Qubits()) {
			return 0, fmt.Errorf("%w: probability vector of length %d for %d qubits",
				ErrResultMismatch, len(out.Probabilities), op.Qubits())
		}
		for _, idx := range g.Members {
			t := op.Term(idx)
			val := 0.0
			for b, p := range out.Probabilities {
				val += p * paritySign(uint64(b), t.String.Support())
			}
			sum += t.Coefficient * complex(val, 0)
		}

	default: // Counts
		shots := 0
		for _, n := range out.Counts {
			shots += n
		}
		if shots <= 0 {
			return 0, fmt.Errorf("%w: zero total shots", ErrResultMismatch)
		}
		for _, idx := range g.Members {
			t := op.Term(idx)
			acc := 0
			for b, n := range out.Counts {
				if bits.OnesCount64(b&t.String.Support())%2 == 1 {
					acc -= n
				} else {
					acc += n
				}
			}
			sum += t.Coefficient * complex(float64(acc)/float64(shots), 0)
		}
	}
	return sum, nil
}

// paritySign is (−1)^|b ∧ mask| as a float.
func paritySign(b, mask uint64) float64 {
	if bits.OnesCount64(b&mask)%2 == 1 {
		return -1
	}
	return 1
}
