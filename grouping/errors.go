// SPDX-License-Identifier: MIT
// Package grouping: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// grouping package. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is. No algorithm panics on user-triggered
// error conditions.

package grouping

import "errors"

var (
	// ErrNilOperator is returned when a nil *pauli.Operator is passed in.
	ErrNilOperator = errors.New("grouping: operator is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grouping: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names
	// and by the dispatcher for strategies outside the declared set.
	ErrUnknownStrategy = errors.New("grouping: unknown strategy")

	// ErrInconsistentGroup signals an internal invariant violation: a group
	// whose members cannot share a measurement configuration. It indicates a
	// grouping bug and must never be silently recovered.
	ErrInconsistentGroup = errors.New("grouping: inconsistent group")

	// ErrCoverage is returned by Validate when the partition does not cover
	// every operator string exactly once.
	ErrCoverage = errors.New("grouping: partition does not cover operator exactly once")

	// ErrIncompatiblePair is returned by Validate when two members of one
	// group fail the strategy's compatibility predicate.
	ErrIncompatiblePair = errors.New("grouping: incompatible pair within group")

	// ErrSpreadUnavailable signals that the canonical spread construction is
	// not available for the requested qubit count; the dispatcher treats it
	// as "fall back to greedy", tests may observe it directly.
	ErrSpreadUnavailable = errors.New("grouping: spread construction unavailable")
)
