package decompose

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/paulifam/pauli"
)

func TestDecompose_SinglePaulis(t *testing.T) {
	cases := map[string]*mat.CDense{
		"I": mat.NewCDense(2, 2, []complex128{1, 0, 0, 1}),
		"X": mat.NewCDense(2, 2, []complex128{0, 1, 1, 0}),
		"Y": mat.NewCDense(2, 2, []complex128{0, -1i, 1i, 0}),
		"Z": mat.NewCDense(2, 2, []complex128{1, 0, 0, -1}),
	}
	for label, h := range cases {
		op, err := Decompose(h)
		require.NoError(t, err, label)
		require.Equal(t, 1, op.Len(), label)
		require.Equal(t, label, op.Term(0).String.String())
		require.InDelta(t, 1, real(op.Term(0).Coefficient), 1e-12, label)
		require.InDelta(t, 0, imag(op.Term(0).Coefficient), 1e-12, label)
	}
}

func TestDecompose_TwoQubitMix(t *testing.T) {
	// H = 2·II − ZZ. Diagonal (bit q of the index = qubit q): ZZ contributes
	// (−1)^{parity(c)} to entry c.
	h := mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 3, 0,
		0, 0, 0, 1,
	})
	op, err := Decompose(h)
	require.NoError(t, err)
	require.Equal(t, 2, op.Len())
	require.Equal(t, "II", op.Term(0).String.String())
	require.InDelta(t, 2, real(op.Term(0).Coefficient), 1e-12)
	require.Equal(t, "ZZ", op.Term(1).String.String())
	require.InDelta(t, -1, real(op.Term(1).Coefficient), 1e-12)
}

func TestDecompose_Errors(t *testing.T) {
	_, err := Decompose(mat.NewCDense(2, 2, nil))
	require.ErrorIs(t, err, ErrZeroMatrix)
}

func TestQubitCount_Validation(t *testing.T) {
	_, err := qubitCount(mat.NewCDense(3, 3, nil))
	require.ErrorIs(t, err, ErrNotPowerOfTwo)
	_, err = qubitCount(mat.NewCDense(1, 1, nil))
	require.ErrorIs(t, err, ErrNotPowerOfTwo)
}

func TestRoundTrip_RandomHermitian(t *testing.T) {
	for m := 1; m <= 3; m++ {
		h, err := RandomHermitian(m, uint64(m)*17)
		require.NoError(t, err)
		op, err := Decompose(h)
		require.NoError(t, err)

		// Hermitian input ⇒ real coefficients.
		for i := 0; i < op.Len(); i++ {
			require.InDelta(t, 0, imag(op.Term(i).Coefficient), 1e-10, "m=%d", m)
		}

		back, err := Reconstruct(op)
		require.NoError(t, err)
		dim := 1 << uint(m)
		for r := 0; r < dim; r++ {
			for c := 0; c < dim; c++ {
				require.InDelta(t, 0, cmplx.Abs(h.At(r, c)-back.At(r, c)), 1e-9,
					"m=%d entry (%d,%d)", m, r, c)
			}
		}
	}
}

func TestRoundTrip_NonHermitian(t *testing.T) {
	// The Pauli basis spans all complex matrices; round-tripping works for
	// arbitrary input, with complex coefficients.
	h := mat.NewCDense(2, 2, []complex128{1 + 2i, 3, 0, -1i})
	op, err := Decompose(h)
	require.NoError(t, err)
	back, err := Reconstruct(op)
	require.NoError(t, err)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			require.InDelta(t, 0, cmplx.Abs(h.At(r, c)-back.At(r, c)), 1e-12)
		}
	}
}

func TestReconstruct_NilOperator(t *testing.T) {
	_, err := Reconstruct(nil)
	require.ErrorIs(t, err, pauli.ErrEmptyOperator)
}

func TestDecompose_RoundTripThroughOperator(t *testing.T) {
	// Build an operator, reconstruct its matrix, decompose again: the term
	// sets must agree (decomposition order is canonical).
	op, err := pauli.ParseOperator(
		[]complex128{0.5, -0.25, 1},
		[]string{"IX", "YZ", "ZZ"},
	)
	require.NoError(t, err)
	h, err := Reconstruct(op)
	require.NoError(t, err)
	got, err := Decompose(h)
	require.NoError(t, err)

	require.Equal(t, 3, got.Len())
	want := map[string]complex128{"IX": 0.5, "YZ": -0.25, "ZZ": 1}
	for i := 0; i < got.Len(); i++ {
		tm := got.Term(i)
		w, ok := want[tm.String.String()]
		require.True(t, ok, "unexpected term %s", tm.String)
		require.InDelta(t, 0, cmplx.Abs(tm.Coefficient-w), 1e-12)
	}
}
