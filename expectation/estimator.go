// SPDX-License-Identifier: MIT
// Package expectation - the Estimator: memoized grouping + concurrent dispatch.
package expectation

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/paulifam/grouping"
	"github.com/katalvlaran/paulifam/pauli"
)

// Estimator evaluates ⟨ψ|H|ψ⟩ by grouping the operator once, measuring every
// group through a Backend, and aggregating the outcomes.
//
// Partitions depend only on the operator's label structure (Operator.Key()),
// never on its coefficients, so they are memoized across evaluations — the
// dominant use case is an optimization loop re-evaluating the same operator
// shape with updated coefficients or states.
//
// An Estimator is safe for concurrent use.
type Estimator struct {
	backend     Backend
	strategy    grouping.Strategy
	shots       int
	seed        uint64
	memoize     bool
	parallelism int
	logger      *zap.Logger

	cache  sync.Map // key string → *grouping.Partition
	flight singleflight.Group
}

// EstimatorOption configures NewEstimator. Invalid options are recorded and
// surfaced as ErrOptionViolation.
type EstimatorOption func(*estimatorOptions)

type estimatorOptions struct {
	strategy    grouping.Strategy
	shots       int
	seed        uint64
	memoize     bool
	parallelism int
	logger      *zap.Logger
	err         error
}

// WithStrategy selects the grouping strategy. Default: Dense.
func WithStrategy(s grouping.Strategy) EstimatorOption {
	return func(o *estimatorOptions) {
		if s > grouping.Naive {
			o.err = fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, s)
			return
		}
		o.strategy = s
	}
}

// WithShots sets the per-group sample count; 0 requests exact evaluation.
// Default: 0.
func WithShots(n int) EstimatorOption {
	return func(o *estimatorOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: shots cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.shots = n
	}
}

// WithSeed fixes the root of the per-group seed streams. Default: 0.
func WithSeed(seed uint64) EstimatorOption {
	return func(o *estimatorOptions) { o.seed = seed }
}

// WithMemoization toggles the partition cache. Default: enabled.
func WithMemoization(enabled bool) EstimatorOption {
	return func(o *estimatorOptions) { o.memoize = enabled }
}

// WithParallelism bounds concurrent group measurements; 0 means GOMAXPROCS.
// Default: 0.
func WithParallelism(n int) EstimatorOption {
	return func(o *estimatorOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: parallelism cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.parallelism = n
	}
}

// WithLogger attaches a structured logger; evaluations log at Debug level.
// Default: zap.NewNop().
func WithLogger(l *zap.Logger) EstimatorOption {
	return func(o *estimatorOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewEstimator builds an Estimator around the given backend.
func NewEstimator(backend Backend, opts ...EstimatorOption) (*Estimator, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	o := estimatorOptions{
		strategy: grouping.Dense,
		memoize:  true,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Estimator{
		backend:     backend,
		strategy:    o.strategy,
		shots:       o.shots,
		seed:        o.seed,
		memoize:     o.memoize,
		parallelism: o.parallelism,
		logger:      o.logger,
	}, nil
}

// Config is the flat configuration surface of the estimator, matching the
// keys accepted in configuration files.
type Config struct {
	// GroupingStrategy is "dense", "qwc" or "naive"; empty means "dense".
	GroupingStrategy string `json:"grouping_strategy" yaml:"grouping_strategy"`

	// Shots is the per-group sample count when Approximate is set.
	Shots int `json:"shots" yaml:"shots"`

	// Seed roots the sampling streams.
	Seed uint64 `json:"seed" yaml:"seed"`

	// Approximate selects sampled evaluation (Shots must be positive);
	// false forces exact evaluation regardless of Shots.
	Approximate bool `json:"approximate" yaml:"approximate"`
}

// FromConfig builds an Estimator from the flat Config surface.
func FromConfig(backend Backend, cfg Config, opts ...EstimatorOption) (*Estimator, error) {
	strategy := grouping.Dense
	if cfg.GroupingStrategy != "" {
		s, err := grouping.ParseStrategy(cfg.GroupingStrategy)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
		}
		strategy = s
	}
	shots := 0
	if cfg.Approximate {
		if cfg.Shots <= 0 {
			return nil, fmt.Errorf("%w: approximate evaluation needs positive shots (%d)",
				ErrOptionViolation, cfg.Shots)
		}
		shots = cfg.Shots
	}
	base := []EstimatorOption{
		WithStrategy(strategy),
		WithShots(shots),
		WithSeed(cfg.Seed),
	}
	return NewEstimator(backend, append(base, opts...)...)
}

// Partition returns the operator's partition under the estimator's strategy,
// serving repeated calls from the cache. Concurrent callers computing the
// same key share a single computation via singleflight.
func (e *Estimator) Partition(ctx context.Context, op *pauli.Operator) (*grouping.Partition, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	if !e.memoize {
		return grouping.ComputePartition(op,
			grouping.WithStrategy(e.strategy), grouping.WithContext(ctx))
	}

	key := e.strategy.String() + "|" + op.Key()
	if cached, ok := e.cache.Load(key); ok {
		return cached.(*grouping.Partition), nil
	}
	v, err, _ := e.flight.Do(key, func() (any, error) {
		part, err := grouping.ComputePartition(op,
			grouping.WithStrategy(e.strategy), grouping.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		e.cache.Store(key, part)
		return part, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*grouping.Partition), nil
}

// Estimate evaluates ⟨state|op|state⟩: partition (memoized), resolve bases,
// measure every group concurrently through the backend, aggregate.
//
// Group measurements are order-agnostic; outcomes land in an indexed slice
// and per-group seeds are derived from the estimator seed and the group
// index, so results are reproducible under any scheduling. Backend errors
// propagate unmodified; there are no intrinsic retries.
func (e *Estimator) Estimate(ctx context.Context, op *pauli.Operator, state any) (complex128, error) {
	part, err := e.Partition(ctx, op)
	if err != nil {
		return 0, err
	}
	bases, err := part.ResolveBases(op)
	if err != nil {
		return 0, err
	}

	e.logger.Debug("estimating expectation value",
		zap.String("strategy", e.strategy.String()),
		zap.Int("terms", op.Len()),
		zap.Int("groups", part.Size()),
		zap.Int("shots", e.shots),
	)

	strs := op.Strings()
	outcomes := make([]Outcome, part.Size())

	eg, ctx := errgroup.WithContext(ctx)
	limit := e.parallelism
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	eg.SetLimit(limit)

	for gi := range part.Groups {
		gi := gi
		eg.Go(func() error {
			members := make([]pauli.String, len(part.Groups[gi].Members))
			for j, idx := range part.Groups[gi].Members {
				members[j] = strs[idx]
			}
			spec := MeasurementSpec{
				Basis:   bases[gi],
				Members: members,
				Shots:   e.shots,
				Seed:    deriveSeed(e.seed, uint64(gi)),
			}
			out, err := e.backend.Measure(ctx, spec, state)
			if err != nil {
				return fmt.Errorf("group %d: %w", gi, err)
			}
			outcomes[gi] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	return Aggregate(op, part, outcomes)
}
