// SPDX-License-Identifier: MIT
// Package decompose converts between 2^m×2^m complex matrices and Pauli
// operators: any matrix H expands uniquely as Σ c_P·P over the 4^m Pauli
// strings with c_P = tr(P·H)/2^m, and the expansion reverses by summation.
//
// The trace is evaluated through the symplectic action of each string — one
// O(2^m) pass per string instead of a dense matrix product — so a full
// decomposition costs O(8^m) and stays practical for the small m this
// library targets.
package decompose

import (
	"errors"
	"fmt"
	"math/bits"
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/paulifam/pauli"
)

// Sentinel errors.
var (
	// ErrNonSquare is returned for a non-square input matrix.
	ErrNonSquare = errors.New("decompose: matrix is not square")

	// ErrNotPowerOfTwo is returned when the dimension is not 2^m with m ≥ 1.
	ErrNotPowerOfTwo = errors.New("decompose: dimension is not a power of two")

	// ErrZeroMatrix is returned when every Pauli coefficient is below
	// tolerance; an Operator must carry at least one term.
	ErrZeroMatrix = errors.New("decompose: all coefficients below tolerance")
)

// defaultTolerance drops numerically-zero coefficients.
const defaultTolerance = 1e-12

// iPower is i^k for k mod 4.
var iPower = [4]complex128{1, 1i, -1, -1i}

// qubitCount validates h and returns m with dim = 2^m.
func qubitCount(h *mat.CDense) (int, error) {
	r, c := h.Dims()
	if r != c {
		return 0, fmt.Errorf("%w: %d×%d", ErrNonSquare, r, c)
	}
	if r < 2 || bits.OnesCount(uint(r)) != 1 {
		return 0, fmt.Errorf("%w: dimension %d", ErrNotPowerOfTwo, r)
	}
	return bits.TrailingZeros(uint(r)), nil
}

// Decompose expands h in the Pauli basis, keeping coefficients with
// |c| > 1e-12. The resulting terms follow the canonical string enumeration
// order (I < X < Y < Z lexicographically), identity first.
func Decompose(h *mat.CDense) (*pauli.Operator, error) {
	m, err := qubitCount(h)
	if err != nil {
		return nil, err
	}
	dim := 1 << uint(m)
	all, err := pauli.All(m)
	if err != nil {
		return nil, err
	}

	scale := complex(1/float64(dim), 0)
	var terms []pauli.Term
	for _, p := range all {
		x, z := p.XMask(), p.ZMask()
		phase := iPower[p.YCount()%4]
		// tr(P·H) = Σ_c i^{#Y} (−1)^{(c⊕x)·z} H[c⊕x, c].
		var tr complex128
		for c := 0; c < dim; c++ {
			row := c ^ int(x)
			v := h.At(row, c)
			if bits.OnesCount64(uint64(row)&z)%2 == 1 {
				v = -v
			}
			tr += v
		}
		coeff := phase * tr * scale
		if cmplx.Abs(coeff) > defaultTolerance {
			terms = append(terms, pauli.Term{Coefficient: coeff, String: p})
		}
	}
	if len(terms) == 0 {
		return nil, ErrZeroMatrix
	}
	return pauli.NewOperator(terms...)
}

// Reconstruct sums Σ c·P back into a dense matrix.
func Reconstruct(op *pauli.Operator) (*mat.CDense, error) {
	if op == nil {
		return nil, pauli.ErrEmptyOperator
	}
	m := op.Qubits()
	dim := 1 << uint(m)
	out := mat.NewCDense(dim, dim, nil)
	for i := 0; i < op.Len(); i++ {
		t := op.Term(i)
		x, z := t.String.XMask(), t.String.ZMask()
		phase := iPower[t.String.YCount()%4]
		for c := 0; c < dim; c++ {
			// P[c⊕x, c] = i^{#Y} (−1)^{c·z}.
			row := c ^ int(x)
			v := t.Coefficient * phase
			if bits.OnesCount64(uint64(c)&z)%2 == 1 {
				v = -v
			}
			out.Set(row, c, out.At(row, c)+v)
		}
	}
	return out, nil
}

// RandomHermitian returns a seeded Gaussian Hermitian matrix (A+A†)/2 on m
// qubits, for tests and benchmarks.
func RandomHermitian(m int, seed uint64) (*mat.CDense, error) {
	if m < 1 || m > 16 {
		return nil, fmt.Errorf("%w: m=%d (want 1..16)", ErrNotPowerOfTwo, m)
	}
	dim := 1 << uint(m)
	rng := rand.New(rand.NewSource(int64(seed)))
	a := mat.NewCDense(dim, dim, nil)
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			a.Set(r, c, complex(rng.NormFloat64(), rng.NormFloat64()))
		}
	}
	out := mat.NewCDense(dim, dim, nil)
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			out.Set(r, c, (a.At(r, c)+cmplx.Conj(a.At(c, r)))/2)
		}
	}
	return out, nil
}
