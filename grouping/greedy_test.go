package grouping

import (
	"context"
	"testing"

	"github.com/katalvlaran/paulifam/pauli"
	"github.com/stretchr/testify/require"
)

func mustStrings(texts ...string) []pauli.String {
	out := make([]pauli.String, len(texts))
	for i, s := range texts {
		out[i] = pauli.MustParse(s)
	}
	return out
}

func TestGreedyCover_SeedsMostConstrained(t *testing.T) {
	// Commutation graph: XI is compatible only with XX; the heuristic must
	// seed with XI (degree 1), not the well-connected XX (degree 3), and
	// still finish with the optimal two groups.
	strs := mustStrings("XX", "YY", "ZZ", "XI")
	g := buildCompatGraph(strs, pauli.Commutes)
	groups := greedyCover(g)
	require.Equal(t, [][]int{{0, 3}, {1, 2}}, groups)
}

func TestGreedyCover_Deterministic(t *testing.T) {
	strs := mustStrings("XX", "XI", "IX", "ZZ", "ZI", "IZ", "YY")
	g := buildCompatGraph(strs, pauli.QubitWiseCompatible)
	first := greedyCover(g)
	second := greedyCover(buildCompatGraph(strs, pauli.QubitWiseCompatible))
	require.Equal(t, first, second)
}

func TestGreedyCover_CoversEverything(t *testing.T) {
	strs := nonIdentity(t, 3)
	g := buildCompatGraph(strs, pauli.Commutes)
	groups := greedyCover(g)
	covered := make([]bool, len(strs))
	for _, grp := range groups {
		for i := 0; i < len(grp); i++ {
			require.False(t, covered[grp[i]])
			covered[grp[i]] = true
			for j := i + 1; j < len(grp); j++ {
				require.True(t, pauli.Commutes(strs[grp[i]], strs[grp[j]]))
			}
		}
	}
	for i, ok := range covered {
		require.True(t, ok, "missing %s", strs[i])
	}
}

func TestExactCover_Optimal(t *testing.T) {
	// Minimum clique cover is 2: {XX, XI} and {YY, ZZ}.
	strs := mustStrings("XX", "YY", "ZZ", "XI")
	g := buildCompatGraph(strs, pauli.Commutes)
	groups, err := exactCover(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, groups, 2)
}

func TestExactCover_QubitWiseTriangleFree(t *testing.T) {
	// Under the per-qubit predicate XX/YY/ZZ are pairwise incompatible:
	// the minimum is 3 groups.
	strs := mustStrings("XX", "YY", "ZZ", "XI")
	g := buildCompatGraph(strs, pauli.QubitWiseCompatible)
	groups, err := exactCover(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, groups, 3)
}

func TestExactCover_NeverWorseThanGreedy(t *testing.T) {
	strs := mustStrings("XZ", "ZY", "YX", "XY", "YZ", "ZX", "XX", "YY", "ZZ")
	g := buildCompatGraph(strs, pauli.Commutes)
	greedy := greedyCover(g)
	exact, err := exactCover(context.Background(), g)
	require.NoError(t, err)
	require.LessOrEqual(t, len(exact), len(greedy))
	// These nine strings are the three entangled families of two qubits.
	require.Len(t, exact, 3)
}

func TestExactCover_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	strs := nonIdentity(t, 2)
	g := buildCompatGraph(strs, pauli.Commutes)
	_, err := exactCover(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBitset_Basics(t *testing.T) {
	b := newBitset(130)
	b.set(0)
	b.set(64)
	b.set(129)
	require.True(t, b.has(64))
	require.False(t, b.has(63))
	require.Equal(t, 3, b.count())

	var seen []int
	b.forEach(func(i int) bool {
		seen = append(seen, i)
		return true
	})
	require.Equal(t, []int{0, 64, 129}, seen)

	b.clear(64)
	require.False(t, b.has(64))
	require.False(t, b.empty())

	other := newBitset(130)
	other.set(0)
	require.Equal(t, 1, b.andCount(other))
	b.intersect(other)
	require.Equal(t, 1, b.count())
}
