package grouping_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/paulifam/grouping"
	"github.com/katalvlaran/paulifam/pauli"
)

func benchOperator(b *testing.B, m int) *pauli.Operator {
	b.Helper()
	all, err := pauli.All(m)
	if err != nil {
		b.Fatal(err)
	}
	var terms []pauli.Term
	for _, p := range all {
		if !p.IsIdentity() {
			terms = append(terms, pauli.Term{Coefficient: 1, String: p})
		}
	}
	op, err := pauli.NewOperator(terms...)
	if err != nil {
		b.Fatal(err)
	}
	return op
}

func BenchmarkComputePartition_Dense(b *testing.B) {
	for _, m := range []int{2, 3, 4, 5} {
		op := benchOperator(b, m)
		b.Run(fmt.Sprintf("m=%d", m), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := grouping.ComputePartition(op); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkComputePartition_QubitWise(b *testing.B) {
	op := benchOperator(b, 4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := grouping.ComputePartition(op, grouping.WithStrategy(grouping.QubitWise)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResolveBases(b *testing.B) {
	op := benchOperator(b, 4)
	part, err := grouping.ComputePartition(op)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := part.ResolveBases(op); err != nil {
			b.Fatal(err)
		}
	}
}
