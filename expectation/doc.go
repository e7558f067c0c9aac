// Package expectation turns a grouped operator into a single expectation
// value: it defines the backend contract for measuring one group, the
// aggregation of group outcomes into ⟨H⟩ = Σ cᵢ·⟨Pᵢ⟩, and an Estimator that
// wires grouping, dispatch and aggregation together.
//
// What
//
//   - Backend: one method, Measure(ctx, spec, state) → Outcome, executed once
//     per group. The state descriptor is opaque to this package.
//   - Outcome: exactly one of sampled counts, an exact probability vector, or
//     per-member values (joint bases).
//   - Aggregate: parity extraction over each member's support for per-qubit
//     bases; direct values for joint bases; coefficient-weighted complex sum.
//   - Estimator: memoized partitions (sync.Map + singleflight keyed by
//     Operator.Key() and strategy), concurrent per-group dispatch (errgroup),
//     derived per-group seeds, structured logging (zap, Debug level).
//
// Why
//
//	One backend call per group instead of one per term is the entire payoff
//	of dense grouping. The estimator keeps that payoff across evaluations:
//	partitions depend only on label structure, so an optimization loop pays
//	for grouping once.
//
// Determinism
//
//	Same operator, state, seed and shots ⇒ same result, regardless of how the
//	scheduler interleaves group measurements: each group's seed is derived
//	from (estimator seed, group index) and outcomes land in an indexed slice.
//
// Usage
//
//	est, err := expectation.NewEstimator(backend,
//	    expectation.WithStrategy(grouping.Dense),
//	    expectation.WithShots(4096),
//	    expectation.WithSeed(7),
//	)
//	value, err := est.Estimate(ctx, op, state)
//
// Errors
//
//   - ErrNilBackend / ErrNilOperator on missing inputs.
//   - ErrOptionViolation on invalid options or Config fields.
//   - ErrMissingResult / ErrResultMismatch when aggregation cannot trust the
//     outcomes; evaluation fails as a whole, never partially.
//   - Backend errors propagate unmodified, wrapped with the group index.
package expectation
