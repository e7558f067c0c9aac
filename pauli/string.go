package pauli

import (
	"fmt"
	"math/bits"
)

// String is an immutable Pauli string: one label per qubit, fixed length.
//
// The zero value is the empty string over zero qubits; construct real
// strings with Parse, MustParse or FromLabels so that validation and the
// symplectic masks are established exactly once.
type String struct {
	text string // canonical label sequence, e.g. "XIZ"
	x, z uint64 // symplectic masks; bit q corresponds to label position q
}

// Parse validates s and returns the corresponding String.
// Every byte must be one of I, X, Y, Z; at most MaxQubits labels.
func Parse(s string) (String, error) {
	if len(s) > MaxQubits {
		return String{}, fmt.Errorf("%w: %d labels (max %d)", ErrTooManyQubits, len(s), MaxQubits)
	}
	var x, z uint64
	for q := 0; q < len(s); q++ {
		l := Label(s[q])
		if !l.Valid() {
			return String{}, fmt.Errorf("%w: %q at position %d in %q", ErrInvalidLabel, s[q], q, s)
		}
		lx, lz := l.symplectic()
		x |= lx << uint(q)
		z |= lz << uint(q)
	}
	return String{text: s, x: x, z: z}, nil
}

// MustParse is Parse that panics on invalid input; intended for literals in
// tests and examples.
func MustParse(s string) String {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// FromLabels builds a String from a label slice.
func FromLabels(labels []Label) (String, error) {
	buf := make([]byte, len(labels))
	for i, l := range labels {
		buf[i] = byte(l)
	}
	return Parse(string(buf))
}

// Len returns the qubit count m.
func (p String) Len() int { return len(p.text) }

// Label returns the label at qubit position q (0-based, leftmost first).
func (p String) Label(q int) Label { return Label(p.text[q]) }

// String returns the canonical label sequence. Two Strings are equal exactly
// when their canonical sequences are equal, so this value doubles as a map key.
func (p String) String() string { return p.text }

// IsIdentity reports whether every label is I.
func (p String) IsIdentity() bool { return p.x == 0 && p.z == 0 }

// Weight returns the number of non-I labels.
func (p String) Weight() int { return bits.OnesCount64(p.x | p.z) }

// Support returns a bit mask over qubit positions carrying a non-I label.
// Bit q corresponds to label position q.
func (p String) Support() uint64 { return p.x | p.z }

// XMask returns the symplectic x-mask (X and Y positions).
func (p String) XMask() uint64 { return p.x }

// ZMask returns the symplectic z-mask (Z and Y positions).
func (p String) ZMask() uint64 { return p.z }

// YCount returns the number of Y labels; the phase of the symplectic action
// P|b⟩ = i^YCount · (−1)^(b·z) |b⊕x⟩ depends on it.
func (p String) YCount() int { return bits.OnesCount64(p.x & p.z) }

// QubitWiseCompatible reports whether a and b can share a per-qubit
// (tensor-product) measurement basis: at every position the labels are
// identical or at least one is I.
func QubitWiseCompatible(a, b String) bool {
	// Positions where both are non-I and the labels differ.
	conflict := a.Support() & b.Support() & ((a.x ^ b.x) | (a.z ^ b.z))
	return a.Len() == b.Len() && conflict == 0
}

// Commutes reports whether a and b commute as operators: the count of
// positions where the single-qubit labels anticommute (both non-I, different)
// is even. This is the symplectic criterion
// popcount(a.x&b.z) ⊕ popcount(a.z&b.x) == 0.
func Commutes(a, b String) bool {
	s := bits.OnesCount64(a.x&b.z) + bits.OnesCount64(a.z&b.x)
	return a.Len() == b.Len() && s%2 == 0
}

// Identity returns the all-I string on m qubits.
func Identity(m int) (String, error) {
	if m > MaxQubits {
		return String{}, fmt.Errorf("%w: %d labels (max %d)", ErrTooManyQubits, m, MaxQubits)
	}
	buf := make([]byte, m)
	for i := range buf {
		buf[i] = byte(I)
	}
	return String{text: string(buf)}, nil
}

// All enumerates every Pauli string on m qubits (4^m of them, identity
// included) in lexicographic label order I < X < Y < Z. The order is part of
// the package contract: derived structures rely on it for reproducibility.
//
// Complexity: O(m·4^m) time and memory; intended for small m.
func All(m int) ([]String, error) {
	if m > MaxQubits {
		return nil, fmt.Errorf("%w: %d labels (max %d)", ErrTooManyQubits, m, MaxQubits)
	}
	alphabet := []byte{byte(I), byte(X), byte(Y), byte(Z)}
	total := 1
	for i := 0; i < m; i++ {
		total *= 4
	}
	out := make([]String, 0, total)
	buf := make([]byte, m)
	var gen func(pos int)
	gen = func(pos int) {
		if pos == m {
			p, _ := Parse(string(buf)) // labels are valid by construction
			out = append(out, p)
			return
		}
		for _, c := range alphabet {
			buf[pos] = c
			gen(pos + 1)
		}
	}
	gen(0)
	return out, nil
}
