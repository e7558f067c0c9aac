// SPDX-License-Identifier: MIT
// Package statevector: the amplitude-vector state and its validation.
package statevector

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
)

// Sentinel errors for state construction and measurement.
var (
	// ErrBadQubitCount is returned for qubit counts outside 1..MaxQubits.
	ErrBadQubitCount = errors.New("statevector: bad qubit count")

	// ErrBadAmplitudes is returned when an amplitude slice is not a power of
	// two in length.
	ErrBadAmplitudes = errors.New("statevector: amplitude count is not a power of two")

	// ErrNotNormalized is returned when Σ|a|² deviates from 1 beyond tolerance.
	ErrNotNormalized = errors.New("statevector: state is not normalized")

	// ErrBadState is returned when a measurement receives a state descriptor
	// that is not a *State of the right width.
	ErrBadState = errors.New("statevector: bad state descriptor")

	// ErrBasisMismatch is returned when a per-qubit basis does not match the
	// state's qubit count.
	ErrBasisMismatch = errors.New("statevector: basis does not match state width")
)

// MaxQubits bounds the simulator; 2^26 complex128 amplitudes is 1 GiB.
const MaxQubits = 26

// normTolerance is the accepted deviation of Σ|a|² from 1.
const normTolerance = 1e-9

// State is a pure m-qubit state as a dense amplitude vector of length 2^m.
// Bit q of a basis index corresponds to qubit q, and qubit 0 is the leftmost
// label of a Pauli string.
//
// A State is mutable through the measurement routines only on private clones;
// the public surface never modifies a caller's state.
type State struct {
	qubits int
	amps   []complex128
}

// Zero returns |0…0⟩ on m qubits.
func Zero(m int) (*State, error) {
	if m < 1 || m > MaxQubits {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrBadQubitCount, m, MaxQubits)
	}
	amps := make([]complex128, 1<<uint(m))
	amps[0] = 1
	return &State{qubits: m, amps: amps}, nil
}

// New wraps a copy of amps as a state, validating the length (a power of two,
// at least 2) and the normalization Σ|a|² = 1 within 1e-9.
func New(amps []complex128) (*State, error) {
	n := len(amps)
	if n < 2 || bits.OnesCount(uint(n)) != 1 {
		return nil, fmt.Errorf("%w: %d amplitudes", ErrBadAmplitudes, n)
	}
	m := bits.TrailingZeros(uint(n))
	if m > MaxQubits {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrBadQubitCount, m, MaxQubits)
	}
	norm := 0.0
	for _, a := range amps {
		norm += real(a)*real(a) + imag(a)*imag(a)
	}
	if math.Abs(norm-1) > normTolerance {
		return nil, fmt.Errorf("%w: Σ|a|² = %g", ErrNotNormalized, norm)
	}
	cp := make([]complex128, n)
	copy(cp, amps)
	return &State{qubits: m, amps: cp}, nil
}

// Qubits returns the qubit count m.
func (s *State) Qubits() int { return s.qubits }

// Amplitude returns the amplitude of basis state |b⟩.
func (s *State) Amplitude(b uint64) complex128 { return s.amps[b] }

// Clone returns an independent copy.
func (s *State) Clone() *State {
	cp := make([]complex128, len(s.amps))
	copy(cp, s.amps)
	return &State{qubits: s.qubits, amps: cp}
}

// renormalize rescales the amplitudes to unit norm after a projection.
func (s *State) renormalize() {
	norm := 0.0
	for _, a := range s.amps {
		norm += real(a)*real(a) + imag(a)*imag(a)
	}
	if norm == 0 {
		return
	}
	scale := complex(1/math.Sqrt(norm), 0)
	for i := range s.amps {
		s.amps[i] *= scale
	}
}

// probability returns |amps[b]|².
func (s *State) probability(b uint64) float64 {
	return real(s.amps[b] * cmplx.Conj(s.amps[b]))
}
