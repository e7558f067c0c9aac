// SPDX-License-Identifier: MIT
// Package expectation: the backend contract and measurement payloads.
package expectation

import (
	"context"

	"github.com/katalvlaran/paulifam/grouping"
	"github.com/katalvlaran/paulifam/pauli"
)

// MeasurementSpec is one group's measurement request: the resolved basis, the
// group's member strings, and the sampling policy.
type MeasurementSpec struct {
	// Basis is the group's shared configuration: per-qubit labels, or the
	// Joint marker for families without a tensor-product eigenbasis.
	Basis grouping.Basis

	// Members holds the group's Pauli strings in group order. Joint outcomes
	// report one value per entry of this slice.
	Members []pauli.String

	// Shots is the number of samples to draw; 0 requests exact evaluation.
	Shots int

	// Seed drives the backend's sampling stream. Estimators derive one
	// independent seed per group so concurrent dispatch stays reproducible.
	Seed uint64
}

// Outcome is a backend's answer for one group. Exactly one payload field is
// populated:
//
//   - Counts: sampled bitstring histogram in the rotated computational basis
//     (per-qubit bases, Shots > 0). Bit q of a key corresponds to qubit q.
//   - Probabilities: exact probability vector over the rotated computational
//     basis, length 2^m (per-qubit bases, Shots == 0).
//   - MemberValues: one expectation estimate per member string, in member
//     order (joint bases, exact or sampled).
//
// Aggregate rejects outcomes with zero or more than one payload.
type Outcome struct {
	Counts        map[uint64]int
	Probabilities []float64
	MemberValues  []float64
}

// Backend executes one group measurement on an opaque state descriptor.
// Implementations must be safe for concurrent Measure calls: the estimator
// dispatches all groups of a partition at once.
//
// The state argument is passed through from Estimate untouched; its concrete
// type is a private contract between caller and backend (the statevector
// simulator takes *statevector.State).
type Backend interface {
	Measure(ctx context.Context, spec MeasurementSpec, state any) (Outcome, error)
}
