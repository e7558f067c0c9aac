// SPDX-License-Identifier: MIT
// Package statevector: symplectic Pauli action and exact expectations.
package statevector

import (
	"math/bits"
	"math/cmplx"

	"github.com/katalvlaran/paulifam/pauli"
)

// iPower is i^k for k mod 4; the global phase of a Pauli string is i^{#Y}.
var iPower = [4]complex128{1, 1i, -1, -1i}

// ApplyPauli returns P|s⟩ as a new state (the receiver is untouched).
//
// The symplectic action is P|b⟩ = i^{#Y} (−1)^{b·z} |b⊕x⟩ with x, z the
// string's masks, so the result at index c reads i^{#Y} (−1)^{(c⊕x)·z} ψ[c⊕x].
//
// Complexity: O(2^m).
func (s *State) ApplyPauli(p pauli.String) (*State, error) {
	if p.Len() != s.qubits {
		return nil, ErrBasisMismatch
	}
	x, z := p.XMask(), p.ZMask()
	phase := iPower[p.YCount()%4]
	out := make([]complex128, len(s.amps))
	for c := range out {
		src := uint64(c) ^ x
		sign := phase
		if bits.OnesCount64(src&z)%2 == 1 {
			sign = -sign
		}
		out[c] = sign * s.amps[src]
	}
	return &State{qubits: s.qubits, amps: out}, nil
}

// Expectation returns ⟨s|P|s⟩. P is Hermitian, so the value is real.
//
// Complexity: O(2^m), no intermediate state allocation.
func (s *State) Expectation(p pauli.String) (float64, error) {
	if p.Len() != s.qubits {
		return 0, ErrBasisMismatch
	}
	x, z := p.XMask(), p.ZMask()
	phase := iPower[p.YCount()%4]
	var acc complex128
	for c := range s.amps {
		src := uint64(c) ^ x
		sign := phase
		if bits.OnesCount64(src&z)%2 == 1 {
			sign = -sign
		}
		acc += cmplx.Conj(s.amps[c]) * sign * s.amps[src]
	}
	return real(acc), nil
}
