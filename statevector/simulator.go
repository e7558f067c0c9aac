// SPDX-License-Identifier: MIT
// Package statevector - the measurement backend.
package statevector

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/paulifam/expectation"
	"github.com/katalvlaran/paulifam/pauli"
)

// Simulator executes group measurements against *State descriptors. It holds
// no mutable state of its own and is safe for concurrent Measure calls.
type Simulator struct{}

// NewSimulator returns a ready backend.
func NewSimulator() *Simulator { return &Simulator{} }

// Measure implements expectation.Backend.
//
// Per-qubit bases rotate a clone of the state into the measurement frame and
// return either the exact probability vector (Shots == 0) or a seeded
// bitstring histogram. Joint bases return one value per member: the exact
// expectation when Shots == 0, otherwise the mean of sequential projective
// measurements — legitimate because joint families commute pairwise.
func (*Simulator) Measure(ctx context.Context, spec expectation.MeasurementSpec, state any) (expectation.Outcome, error) {
	st, ok := state.(*State)
	if !ok || st == nil {
		return expectation.Outcome{}, ErrBadState
	}
	if err := ctx.Err(); err != nil {
		return expectation.Outcome{}, err
	}

	if spec.Basis.Joint {
		return measureJoint(ctx, st, spec)
	}
	return measurePerQubit(ctx, st, spec)
}

// measurePerQubit rotates into the shared tensor-product frame and reads the
// computational basis exactly or by sampling.
func measurePerQubit(ctx context.Context, st *State, spec expectation.MeasurementSpec) (expectation.Outcome, error) {
	work := st.Clone()
	if err := work.rotateToBasis(spec.Basis.PerQubit); err != nil {
		return expectation.Outcome{}, err
	}

	if spec.Shots == 0 {
		probs := make([]float64, len(work.amps))
		for b := range probs {
			probs[b] = work.probability(uint64(b))
		}
		return expectation.Outcome{Probabilities: probs}, nil
	}

	rng := rand.New(rand.NewSource(int64(spec.Seed)))
	counts := make(map[uint64]int)
	for shot := 0; shot < spec.Shots; shot++ {
		if shot%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return expectation.Outcome{}, err
			}
		}
		counts[work.sampleBitstring(rng)]++
	}
	return expectation.Outcome{Counts: counts}, nil
}

// measureJoint evaluates every member directly on the state.
func measureJoint(ctx context.Context, st *State, spec expectation.MeasurementSpec) (expectation.Outcome, error) {
	values := make([]float64, len(spec.Members))

	if spec.Shots == 0 {
		for j, p := range spec.Members {
			v, err := st.Expectation(p)
			if err != nil {
				return expectation.Outcome{}, err
			}
			values[j] = v
		}
		return expectation.Outcome{MemberValues: values}, nil
	}

	rng := rand.New(rand.NewSource(int64(spec.Seed)))
	sums := make([]int, len(spec.Members))
	for shot := 0; shot < spec.Shots; shot++ {
		if err := ctx.Err(); err != nil {
			return expectation.Outcome{}, err
		}
		work := st.Clone()
		for j, p := range spec.Members {
			eig, err := work.measureProjective(p, rng)
			if err != nil {
				return expectation.Outcome{}, err
			}
			sums[j] += eig
		}
	}
	for j, s := range sums {
		values[j] = float64(s) / float64(spec.Shots)
	}
	return expectation.Outcome{MemberValues: values}, nil
}

// sampleBitstring draws one basis index from the state's distribution by
// inverse-CDF walk.
func (s *State) sampleBitstring(rng *rand.Rand) uint64 {
	r := rng.Float64()
	acc := 0.0
	last := uint64(len(s.amps) - 1)
	for b := uint64(0); b < last; b++ {
		acc += s.probability(b)
		if r < acc {
			return b
		}
	}
	// Numerical slack lands on the final index.
	return last
}

// measureProjective measures Pauli observable p on the state in place:
// draws the ±1 outcome from p_± = (1 ± ⟨P⟩)/2, projects with (I ± P)/2 and
// renormalizes. Returns the eigenvalue.
func (s *State) measureProjective(p pauli.String, rng *rand.Rand) (int, error) {
	exp, err := s.Expectation(p)
	if err != nil {
		return 0, err
	}
	pPlus := (1 + exp) / 2
	if pPlus < 0 {
		pPlus = 0
	} else if pPlus > 1 {
		pPlus = 1
	}

	eig := 1
	if rng.Float64() >= pPlus {
		eig = -1
	}

	applied, err := s.ApplyPauli(p)
	if err != nil {
		return 0, err
	}
	sign := complex(float64(eig), 0)
	for i := range s.amps {
		s.amps[i] = (s.amps[i] + sign*applied.amps[i]) / 2
	}
	s.renormalize()
	return eig, nil
}
