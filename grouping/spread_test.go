package grouping

import (
	"testing"

	"github.com/katalvlaran/paulifam/pauli"
	"github.com/stretchr/testify/require"
)

// nonIdentity returns all 4^m−1 non-identity strings on m qubits in the
// canonical enumeration order.
func nonIdentity(t *testing.T, m int) []pauli.String {
	t.Helper()
	all, err := pauli.All(m)
	require.NoError(t, err)
	out := make([]pauli.String, 0, len(all)-1)
	for _, p := range all {
		if !p.IsIdentity() {
			out = append(out, p)
		}
	}
	return out
}

func TestSpreadCover_FullSet(t *testing.T) {
	for m := 1; m <= 4; m++ {
		strs := nonIdentity(t, m)
		groups, err := spreadCover(strs, m)
		require.NoError(t, err)

		wantGroups := (1 << uint(m)) + 1
		wantSize := (1 << uint(m)) - 1
		require.Len(t, groups, wantGroups, "m=%d", m)

		covered := make([]bool, len(strs))
		for _, g := range groups {
			require.Len(t, g, wantSize, "m=%d", m)
			for _, idx := range g {
				require.False(t, covered[idx], "m=%d duplicate %s", m, strs[idx])
				covered[idx] = true
			}
			// Every pair inside a family must commute.
			for i := 0; i < len(g); i++ {
				for j := i + 1; j < len(g); j++ {
					require.True(t, pauli.Commutes(strs[g[i]], strs[g[j]]),
						"m=%d %s vs %s", m, strs[g[i]], strs[g[j]])
				}
			}
		}
		for idx, ok := range covered {
			require.True(t, ok, "m=%d missing %s", m, strs[idx])
		}
	}
}

func TestSpreadCover_SubsetBucketing(t *testing.T) {
	// Strings from distinct families end up in distinct buckets; strings
	// from the same line share one.
	strs := []pauli.String{
		pauli.MustParse("XI"), // pure-X family
		pauli.MustParse("IX"),
		pauli.MustParse("ZI"), // pure-Z family
		pauli.MustParse("XX"), // pure-X family again
	}
	groups, err := spreadCover(strs, 2)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, []int{0, 1, 3}, groups[0])
	require.Equal(t, []int{2}, groups[1])
}

func TestSpreadCover_IdentityJoinsFirstFamily(t *testing.T) {
	strs := []pauli.String{
		pauli.MustParse("II"),
		pauli.MustParse("ZZ"),
		pauli.MustParse("XI"),
	}
	groups, err := spreadCover(strs, 2)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	// Identity joins the first non-empty family (ZZ's, discovered first).
	require.Equal(t, []int{0, 1}, groups[0])
	require.Equal(t, []int{2}, groups[1])
}

func TestSpreadCover_IdentityOnly(t *testing.T) {
	strs := []pauli.String{pauli.MustParse("III")}
	groups, err := spreadCover(strs, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}}, groups)
}

func TestSpreadCover_TooManyQubits(t *testing.T) {
	strs := []pauli.String{pauli.MustParse("XIXIXIXIXIXIXIXIX")} // 17 qubits
	_, err := spreadCover(strs, 17)
	require.ErrorIs(t, err, ErrSpreadUnavailable)
}
