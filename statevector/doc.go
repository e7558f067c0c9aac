// Package statevector is a dense pure-state simulator narrow enough to back
// the expectation estimator: it holds an amplitude vector, applies Pauli
// strings by their symplectic action, rotates into per-qubit measurement
// frames, and samples bitstrings or projective outcomes deterministically
// from a seed.
//
// Conventions
//
//	Bit q of a basis-state index corresponds to qubit q, and qubit 0 is the
//	leftmost label of a Pauli string. A string acts as
//	P|b⟩ = i^{#Y} (−1)^{b·z} |b⊕x⟩ with (x, z) its symplectic masks.
//
// Measurement
//
//   - Per-qubit bases: rotate a clone (X → H, Y → H·S†), then read the exact
//     probability vector or sample a seeded histogram.
//   - Joint families: exact per-member expectations, or sequential projective
//     measurement per shot — valid because the members commute pairwise.
//
// Determinism
//
//	All randomness flows from the MeasurementSpec seed; there are no
//	time-based sources. Same state, spec and seed ⇒ same outcome.
//
// The package implements expectation.Backend via Simulator and bounds itself
// at MaxQubits = 26 (1 GiB of amplitudes).
package statevector
