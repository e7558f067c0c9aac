// SPDX-License-Identifier: MIT
// Package expectation: sentinel errors.
package expectation

import "errors"

var (
	// ErrNilBackend is returned when an Estimator is built without a backend.
	ErrNilBackend = errors.New("expectation: nil backend")

	// ErrNilOperator is returned when a nil operator is evaluated.
	ErrNilOperator = errors.New("expectation: nil operator")

	// ErrMissingResult is returned when aggregation receives no outcome for a
	// group, or an outcome carrying no payload at all.
	ErrMissingResult = errors.New("expectation: missing group result")

	// ErrResultMismatch is returned when a group outcome does not match its
	// measurement: ambiguous payloads, wrong probability-vector length, wrong
	// member-value count, or zero total shots.
	ErrResultMismatch = errors.New("expectation: result does not match measurement")

	// ErrOptionViolation is returned when an Estimator option or Config field
	// is invalid.
	ErrOptionViolation = errors.New("expectation: option violation")
)
