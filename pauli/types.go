// Package pauli: sentinel errors and the single-qubit label alphabet.
package pauli

import "errors"

// Sentinel errors for construction and validation.
var (
	// ErrInvalidLabel is returned when a label outside {I,X,Y,Z} is supplied.
	ErrInvalidLabel = errors.New("pauli: invalid label")

	// ErrTooManyQubits is returned when a string exceeds MaxQubits labels.
	ErrTooManyQubits = errors.New("pauli: too many qubits")

	// ErrLengthMismatch is returned when operator terms disagree on qubit count.
	ErrLengthMismatch = errors.New("pauli: operator strings differ in length")

	// ErrEmptyOperator is returned when an operator is built from zero terms.
	ErrEmptyOperator = errors.New("pauli: operator has no terms")
)

// MaxQubits bounds the string length so that the symplectic masks fit a
// single machine word.
const MaxQubits = 64

// Label is a single-qubit Pauli label.
type Label byte

// The four valid labels.
const (
	I Label = 'I'
	X Label = 'X'
	Y Label = 'Y'
	Z Label = 'Z'
)

// Valid reports whether l is one of I, X, Y, Z.
func (l Label) Valid() bool {
	return l == I || l == X || l == Y || l == Z
}

// String returns the textual form of the label.
func (l Label) String() string { return string(rune(l)) }

// symplectic returns the (x, z) component bits of the label.
// I=(0,0), X=(1,0), Z=(0,1), Y=(1,1).
func (l Label) symplectic() (x, z uint64) {
	switch l {
	case X:
		return 1, 0
	case Z:
		return 0, 1
	case Y:
		return 1, 1
	default:
		return 0, 0
	}
}
