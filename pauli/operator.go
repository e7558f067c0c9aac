package pauli

import (
	"fmt"
	"strings"
)

// Term is one weighted Pauli string of an Operator.
type Term struct {
	// Coefficient is the term's linear weight; real observables simply carry
	// a zero imaginary part. Aggregation preserves the complex type end to end.
	Coefficient complex128

	// String is the term's Pauli string.
	String String
}

// Operator is an ordered collection of (coefficient, Pauli-string) terms over
// a common qubit count. It is immutable after construction; the grouping
// engine and the aggregator address terms by their index in the original
// order.
type Operator struct {
	qubits int
	terms  []Term
}

// NewOperator validates and wraps the given terms.
// All strings must share the same length; at least one term is required.
func NewOperator(terms ...Term) (*Operator, error) {
	if len(terms) == 0 {
		return nil, ErrEmptyOperator
	}
	m := terms[0].String.Len()
	for i, t := range terms {
		if t.String.Len() != m {
			return nil, fmt.Errorf("%w: term %d has %d qubits, want %d",
				ErrLengthMismatch, i, t.String.Len(), m)
		}
	}
	cp := make([]Term, len(terms))
	copy(cp, terms)
	return &Operator{qubits: m, terms: cp}, nil
}

// ParseOperator is a convenience constructor from parallel coefficient and
// label-text slices; it validates every string via Parse.
func ParseOperator(coefficients []complex128, labels []string) (*Operator, error) {
	if len(coefficients) != len(labels) {
		return nil, fmt.Errorf("%w: %d coefficients, %d strings",
			ErrLengthMismatch, len(coefficients), len(labels))
	}
	terms := make([]Term, len(labels))
	for i, s := range labels {
		p, err := Parse(s)
		if err != nil {
			return nil, err
		}
		terms[i] = Term{Coefficient: coefficients[i], String: p}
	}
	return NewOperator(terms...)
}

// Qubits returns the common string length m.
func (o *Operator) Qubits() int { return o.qubits }

// Len returns the number of terms.
func (o *Operator) Len() int { return len(o.terms) }

// Term returns the i-th term in original order.
func (o *Operator) Term(i int) Term { return o.terms[i] }

// Strings returns the Pauli strings in original order. The slice is freshly
// allocated; the Operator itself stays immutable.
func (o *Operator) Strings() []String {
	out := make([]String, len(o.terms))
	for i, t := range o.terms {
		out[i] = t.String
	}
	return out
}

// Key returns the operator's structural identity: the label sequences joined
// in original order, independent of coefficients. Two operators with equal
// keys always produce identical partitions, which makes Key the memoization
// key for partition caches reused across evaluations with varying
// coefficients (e.g. inside an optimization loop).
func (o *Operator) Key() string {
	var b strings.Builder
	b.Grow(len(o.terms) * (o.qubits + 1))
	for i, t := range o.terms {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(t.String.String())
	}
	return b.String()
}
