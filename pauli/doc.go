// Package pauli provides the primitive data model for Pauli-string
// observables: single-qubit labels, fixed-length Pauli strings, weighted-sum
// operators, and the two compatibility predicates the grouping engine builds
// on.
//
// What
//
//   - Label: one of I, X, Y, Z; anything else is rejected at construction.
//   - String: an immutable, validated sequence of Labels of fixed length m
//     (the qubit count), carrying a symplectic bit representation
//     (x-mask, z-mask) alongside the canonical text.
//   - Operator: an ordered list of (complex coefficient, String) terms of
//     uniform length; Key() exposes a coefficient-independent structural
//     identity for memoization.
//   - Predicates:
//   - QubitWiseCompatible(a, b): per qubit, the labels are identical or at
//     least one is I. Strings satisfying this pairwise within a set share a
//     single per-qubit measurement basis (tensor-product basis).
//   - Commutes(a, b): the operators commute as matrices — the number of
//     qubit positions where the single-qubit Paulis anticommute is even.
//     Strings satisfying this pairwise within a set share a joint
//     eigenbasis and can be measured simultaneously.
//
// Symplectic representation
//
//	Each String stores two bit masks over qubits: bit q of the x-mask is set
//	when label q has an X component (X or Y), bit q of the z-mask when it has
//	a Z component (Z or Y). Commutation reduces to the symplectic criterion
//	popcount(a.x & b.z) + popcount(a.z & b.x) being even, and qubit-wise
//	compatibility to a three-mask AND — both O(1) on ≤64 qubits.
//
// Determinism
//
//	Strings compare and hash by their canonical text. All(m) enumerates every
//	Pauli string on m qubits in lexicographic label order (I < X < Y < Z), so
//	derived structures are reproducible.
//
// Errors
//
//   - ErrInvalidLabel    on any label outside {I,X,Y,Z}.
//   - ErrTooManyQubits   on strings longer than MaxQubits (64).
//   - ErrLengthMismatch  on operators mixing string lengths.
//   - ErrEmptyOperator   on operators with no terms.
package pauli
