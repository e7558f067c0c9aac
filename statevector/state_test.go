package statevector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paulifam/pauli"
)

func bell(t *testing.T) *State {
	t.Helper()
	inv := complex(1/math.Sqrt2, 0)
	st, err := New([]complex128{inv, 0, 0, inv})
	require.NoError(t, err)
	return st
}

func TestZero(t *testing.T) {
	st, err := Zero(3)
	require.NoError(t, err)
	require.Equal(t, 3, st.Qubits())
	require.Equal(t, complex128(1), st.Amplitude(0))
	require.Equal(t, complex128(0), st.Amplitude(5))

	_, err = Zero(0)
	require.ErrorIs(t, err, ErrBadQubitCount)
	_, err = Zero(MaxQubits + 1)
	require.ErrorIs(t, err, ErrBadQubitCount)
}

func TestNew_Validation(t *testing.T) {
	_, err := New([]complex128{1, 0, 0})
	require.ErrorIs(t, err, ErrBadAmplitudes)

	_, err = New([]complex128{1})
	require.ErrorIs(t, err, ErrBadAmplitudes)

	_, err = New([]complex128{0.5, 0.5, 0, 0})
	require.ErrorIs(t, err, ErrNotNormalized)

	st, err := New([]complex128{0, 1i})
	require.NoError(t, err)
	require.Equal(t, 1, st.Qubits())
}

func TestClone_Independent(t *testing.T) {
	st := bell(t)
	cp := st.Clone()
	cp.amps[0] = 0
	require.NotEqual(t, complex128(0), st.Amplitude(0))
}

func TestApplyPauli_SingleQubit(t *testing.T) {
	zero, err := Zero(1)
	require.NoError(t, err)

	// X|0⟩ = |1⟩
	x, err := zero.ApplyPauli(pauli.MustParse("X"))
	require.NoError(t, err)
	require.Equal(t, complex128(0), x.Amplitude(0))
	require.Equal(t, complex128(1), x.Amplitude(1))

	// Y|0⟩ = i|1⟩
	y, err := zero.ApplyPauli(pauli.MustParse("Y"))
	require.NoError(t, err)
	require.Equal(t, complex128(1i), y.Amplitude(1))

	// Z|1⟩ = −|1⟩
	z, err := x.ApplyPauli(pauli.MustParse("Z"))
	require.NoError(t, err)
	require.Equal(t, complex128(-1), z.Amplitude(1))
}

func TestApplyPauli_LengthMismatch(t *testing.T) {
	st := bell(t)
	_, err := st.ApplyPauli(pauli.MustParse("XXX"))
	require.ErrorIs(t, err, ErrBasisMismatch)
	_, err = st.Expectation(pauli.MustParse("X"))
	require.ErrorIs(t, err, ErrBasisMismatch)
}

func TestExpectation_BellStabilizers(t *testing.T) {
	st := bell(t)
	for label, want := range map[string]float64{
		"XX": 1,
		"YY": -1,
		"ZZ": 1,
		"XI": 0,
		"IZ": 0,
		"II": 1,
	} {
		got, err := st.Expectation(pauli.MustParse(label))
		require.NoError(t, err)
		require.InDelta(t, want, got, 1e-12, "⟨%s⟩", label)
	}
}

func TestRotateToBasis_MeasuresPauli(t *testing.T) {
	// Measuring qubit 0 of |0⟩ in the X basis must give a fair coin; in the
	// rotated frame that is amplitude 1/√2 on both indices.
	st, err := Zero(1)
	require.NoError(t, err)
	work := st.Clone()
	require.NoError(t, work.rotateToBasis([]pauli.Label{pauli.X}))
	require.InDelta(t, 0.5, work.probability(0), 1e-12)
	require.InDelta(t, 0.5, work.probability(1), 1e-12)

	// |+i⟩ = (|0⟩ + i|1⟩)/√2 is the +1 eigenstate of Y: the Y-basis
	// measurement is deterministic.
	inv := complex(1/math.Sqrt2, 0)
	plusI, err := New([]complex128{inv, inv * 1i})
	require.NoError(t, err)
	work = plusI.Clone()
	require.NoError(t, work.rotateToBasis([]pauli.Label{pauli.Y}))
	require.InDelta(t, 1.0, work.probability(0), 1e-12)

	require.ErrorIs(t, work.rotateToBasis([]pauli.Label{pauli.X, pauli.Z}), ErrBasisMismatch)
}
