// SPDX-License-Identifier: MIT
// Package statevector: per-qubit rotation into a measurement basis.
package statevector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paulifam/pauli"
)

// applyH applies the Hadamard gate to qubit q in place.
func (s *State) applyH(q int) {
	mask := uint64(1) << uint(q)
	inv := complex(1/math.Sqrt2, 0)
	for b := uint64(0); b < uint64(len(s.amps)); b++ {
		if b&mask != 0 {
			continue
		}
		a0, a1 := s.amps[b], s.amps[b|mask]
		s.amps[b] = (a0 + a1) * inv
		s.amps[b|mask] = (a0 - a1) * inv
	}
}

// applySdg applies S† = diag(1, −i) to qubit q in place.
func (s *State) applySdg(q int) {
	mask := uint64(1) << uint(q)
	for b := uint64(0); b < uint64(len(s.amps)); b++ {
		if b&mask != 0 {
			s.amps[b] *= -1i
		}
	}
}

// rotateToBasis rotates the state in place so that a computational-basis
// measurement realizes the given per-qubit Pauli measurement:
// X → H, Y → H·S† (S† first), Z and I → nothing.
func (s *State) rotateToBasis(labels []pauli.Label) error {
	if len(labels) != s.qubits {
		return fmt.Errorf("%w: %d labels for %d qubits", ErrBasisMismatch, len(labels), s.qubits)
	}
	for q, l := range labels {
		switch l {
		case pauli.X:
			s.applyH(q)
		case pauli.Y:
			s.applySdg(q)
			s.applyH(q)
		case pauli.Z, pauli.I:
			// computational basis already
		default:
			return fmt.Errorf("%w: label %q", ErrBasisMismatch, byte(l))
		}
	}
	return nil
}
