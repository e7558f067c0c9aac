// SPDX-License-Identifier: MIT
// Package grouping: strategies, functional options, and result types.
package grouping

import (
	"context"
	"fmt"

	"github.com/katalvlaran/paulifam/pauli"
)

// Strategy selects the compatibility predicate and the partitioning policy.
type Strategy uint8

const (
	// Dense partitions under full commutation into near-minimum families.
	// On the complete set of 4^m−1 non-identity strings it achieves the
	// theoretical minimum of 2^m+1 groups.
	Dense Strategy = iota

	// QubitWise partitions under the per-qubit identical-or-I predicate;
	// every group shares a single per-qubit measurement basis.
	QubitWise

	// Naive places every string in its own group; the baseline.
	Naive
)

// String returns the canonical lowercase strategy name.
func (s Strategy) String() string {
	switch s {
	case Dense:
		return "dense"
	case QubitWise:
		return "qwc"
	case Naive:
		return "naive"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps the configuration names "dense", "qwc" and "naive"
// onto strategies; anything else yields ErrUnknownStrategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "dense":
		return Dense, nil
	case "qwc":
		return QubitWise, nil
	case "naive":
		return Naive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// compatible returns the pairwise predicate backing the strategy.
// Naive has no merging predicate; it never consults one.
func (s Strategy) compatible(a, b pauli.String) bool {
	switch s {
	case Dense:
		return pauli.Commutes(a, b)
	case QubitWise:
		return pauli.QubitWiseCompatible(a, b)
	default:
		return false
	}
}

// DefaultExactLimit is the largest input size for which the dispatcher runs
// the exact minimum clique cover; branch-and-bound is exponential and this
// bound keeps it fast enough for interactive use.
const DefaultExactLimit = 12

// Option configures ComputePartition via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when the
// partition is computed.
type Option func(*Options)

// Options holds the parameters of a partition computation.
type Options struct {
	// Ctx allows cancellation of the exact search on large inputs.
	Ctx context.Context

	// Strategy selects Dense, QubitWise or Naive. Default: Dense.
	Strategy Strategy

	// ExactLimit enables the exact minimum clique cover for inputs of at
	// most this many strings. 0 disables exact search entirely.
	ExactLimit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, Dense strategy and
// DefaultExactLimit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Strategy:   Dense,
		ExactLimit: DefaultExactLimit,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the grouping strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s > Naive {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithExactLimit bounds the exact minimum-clique-cover search.
//
//	n > 0: run exact search for inputs of at most n strings
//	n == 0: disable exact search
//	n < 0: invalid option → ErrOptionViolation
func WithExactLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ExactLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ExactLimit = n
	}
}

// Group is one simultaneously measurable family: indices into the operator's
// term list, ascending.
type Group struct {
	Members []int
}

// Partition is a disjoint cover of an operator's strings by groups. Groups
// are canonically ordered by their first member, members ascending, so equal
// inputs always produce byte-identical partitions.
type Partition struct {
	// Strategy that produced the partition.
	Strategy Strategy

	// Qubits is the operator's common string length.
	Qubits int

	// Groups covers every term index exactly once.
	Groups []Group
}

// Size returns the number of groups.
func (p *Partition) Size() int { return len(p.Groups) }

// Validate defensively re-checks the partition invariants against op:
// exact coverage (ErrCoverage) and pairwise compatibility inside every group
// under the partition's strategy (ErrIncompatiblePair). Naive partitions
// only require singleton coverage.
func (p *Partition) Validate(op *pauli.Operator) error {
	if op == nil {
		return ErrNilOperator
	}
	seen := make([]bool, op.Len())
	covered := 0
	for gi, g := range p.Groups {
		for _, idx := range g.Members {
			if idx < 0 || idx >= op.Len() || seen[idx] {
				return fmt.Errorf("%w: term %d in group %d", ErrCoverage, idx, gi)
			}
			seen[idx] = true
			covered++
		}
		if p.Strategy == Naive && len(g.Members) != 1 {
			return fmt.Errorf("%w: naive group %d has %d members", ErrIncompatiblePair, gi, len(g.Members))
		}
		for i := 0; i < len(g.Members); i++ {
			for j := i + 1; j < len(g.Members); j++ {
				a, b := op.Term(g.Members[i]).String, op.Term(g.Members[j]).String
				if p.Strategy != Naive && !p.Strategy.compatible(a, b) {
					return fmt.Errorf("%w: %s and %s in group %d", ErrIncompatiblePair, a, b, gi)
				}
			}
		}
	}
	if covered != op.Len() {
		return fmt.Errorf("%w: %d of %d terms covered", ErrCoverage, covered, op.Len())
	}
	return nil
}
