package pauli_test

import (
	"testing"

	"github.com/katalvlaran/paulifam/pauli"
	"github.com/stretchr/testify/require"
)

func TestNewOperator_LengthMismatch(t *testing.T) {
	_, err := pauli.NewOperator(
		pauli.Term{Coefficient: 1, String: pauli.MustParse("XX")},
		pauli.Term{Coefficient: 1, String: pauli.MustParse("XXX")},
	)
	require.ErrorIs(t, err, pauli.ErrLengthMismatch)
}

func TestNewOperator_Empty(t *testing.T) {
	_, err := pauli.NewOperator()
	require.ErrorIs(t, err, pauli.ErrEmptyOperator)
}

func TestParseOperator(t *testing.T) {
	op, err := pauli.ParseOperator(
		[]complex128{1, 0.5, -0.5},
		[]string{"ZZ", "XX", "YY"},
	)
	require.NoError(t, err)
	require.Equal(t, 2, op.Qubits())
	require.Equal(t, 3, op.Len())
	require.Equal(t, complex128(-0.5), op.Term(2).Coefficient)
	require.Equal(t, "YY", op.Term(2).String.String())
}

func TestParseOperator_InvalidLabel(t *testing.T) {
	_, err := pauli.ParseOperator([]complex128{1}, []string{"XA"})
	require.ErrorIs(t, err, pauli.ErrInvalidLabel)
}

func TestKey_CoefficientIndependent(t *testing.T) {
	a, err := pauli.ParseOperator([]complex128{1, 2}, []string{"XI", "IZ"})
	require.NoError(t, err)
	b, err := pauli.ParseOperator([]complex128{-3, 0.25i}, []string{"XI", "IZ"})
	require.NoError(t, err)
	require.Equal(t, a.Key(), b.Key())
	require.Equal(t, "XI|IZ", a.Key())

	// Order matters: the key tracks structural identity, not a set.
	c, err := pauli.ParseOperator([]complex128{1, 2}, []string{"IZ", "XI"})
	require.NoError(t, err)
	require.NotEqual(t, a.Key(), c.Key())
}

func TestStrings_Copy(t *testing.T) {
	op, err := pauli.ParseOperator([]complex128{1, 1}, []string{"X", "Z"})
	require.NoError(t, err)
	ss := op.Strings()
	ss[0] = pauli.MustParse("Y")
	require.Equal(t, "X", op.Term(0).String.String())
}
