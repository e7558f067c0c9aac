// SPDX-License-Identifier: MIT
// Package grouping: GF(2^m) arithmetic for the symplectic-spread construction.
//
// Elements are polynomials over F2 packed into a uint64 (bit i = coefficient
// of x^i), reduced modulo a fixed low-weight irreducible polynomial. The
// construction additionally needs a trace-self-dual basis {d_1..d_m} with
// tr(d_i·d_j) = δ_ij, computed once per field by symmetric Gram–Schmidt over
// F2; such a basis exists for every m (Lempel 1975).
package grouping

import "fmt"

// spreadMaxQubits bounds the canonical spread construction to the qubit
// counts with an entry in the irreducible-polynomial table. Beyond it the
// dispatcher silently falls back to greedy packing.
const spreadMaxQubits = 16

// irreduciblePoly[m] is a minimal-weight irreducible polynomial of degree m
// over F2 (bit m and bit 0 always set). Trinomials where they exist,
// pentanomials for m = 8, 13, 16.
var irreduciblePoly = [spreadMaxQubits + 1]uint64{
	0,       // unused
	0x3,     // x + 1
	0x7,     // x² + x + 1
	0xB,     // x³ + x + 1
	0x13,    // x⁴ + x + 1
	0x25,    // x⁵ + x² + 1
	0x43,    // x⁶ + x + 1
	0x83,    // x⁷ + x + 1
	0x11B,   // x⁸ + x⁴ + x³ + x + 1
	0x203,   // x⁹ + x + 1
	0x409,   // x¹⁰ + x³ + 1
	0x805,   // x¹¹ + x² + 1
	0x1009,  // x¹² + x³ + 1
	0x201B,  // x¹³ + x⁴ + x³ + x + 1
	0x4021,  // x¹⁴ + x⁵ + 1
	0x8003,  // x¹⁵ + x + 1
	0x1002B, // x¹⁶ + x⁵ + x³ + x + 1
}

// field is GF(2^m) with a fixed reduction polynomial and a cached
// trace-self-dual basis.
type field struct {
	m        int
	poly     uint64
	selfDual []uint64 // selfDual[i] = d_i, tr(d_i·d_j) = δ_ij
}

// newField constructs GF(2^m) and its self-dual basis.
func newField(m int) (*field, error) {
	if m < 1 || m > spreadMaxQubits {
		return nil, fmt.Errorf("%w: %d qubits (spread supports 1..%d)", ErrSpreadUnavailable, m, spreadMaxQubits)
	}
	f := &field{m: m, poly: irreduciblePoly[m]}
	f.selfDual = f.selfDualBasis()
	return f, nil
}

// mul is carry-less polynomial multiplication with on-the-fly reduction.
// Complexity: O(m).
func (f *field) mul(a, b uint64) uint64 {
	var acc uint64
	for b != 0 {
		if b&1 != 0 {
			acc ^= a
		}
		b >>= 1
		a <<= 1
		if a&(1<<uint(f.m)) != 0 {
			a ^= f.poly
		}
	}
	return acc
}

// square is mul(a, a); kept separate for readability in pow and trace.
func (f *field) square(a uint64) uint64 { return f.mul(a, a) }

// pow computes a^e by square-and-multiply.
func (f *field) pow(a uint64, e uint64) uint64 {
	result := uint64(1)
	base := a
	for e != 0 {
		if e&1 != 0 {
			result = f.mul(result, base)
		}
		base = f.square(base)
		e >>= 1
	}
	return result
}

// inv returns a^(2^m−2), the multiplicative inverse of a ≠ 0.
func (f *field) inv(a uint64) uint64 {
	return f.pow(a, (uint64(1)<<uint(f.m))-2)
}

// trace is the F2-linear absolute trace tr(a) = a + a² + a⁴ + … + a^(2^(m−1)),
// which always lands in {0, 1}.
func (f *field) trace(a uint64) uint64 {
	sum := a
	cur := a
	for i := 1; i < f.m; i++ {
		cur = f.square(cur)
		sum ^= cur
	}
	return sum // ∈ {0,1}: the sum is fixed by Frobenius, hence in F2
}

// bilinear is the nondegenerate symmetric form b(u,v) = tr(u·v).
func (f *field) bilinear(u, v uint64) uint64 { return f.trace(f.mul(u, v)) }

// selfDualBasis computes a basis {d_i} with tr(d_i·d_j) = δ_ij by symmetric
// Gram–Schmidt over F2. Since tr(p·p) = tr(p²) = tr(p), the form is never
// alternating on the full space, and whenever the remaining complement turns
// alternating the standard three-vector exchange restores progress:
// for accepted v and pending w1,w2 with tr(w1·w2)=1 and tr(wᵢ²)=0, the
// vectors v+w1, v+w2, v+w1+w2 form an orthonormal triple orthogonal to the
// rest of the accepted set.
func (f *field) selfDualBasis() []uint64 {
	// Pending spans the orthogonal complement of the accepted set; start
	// with the polynomial basis {1, x, …, x^(m−1)}.
	pending := make([]uint64, f.m)
	for i := range pending {
		pending[i] = 1 << uint(i)
	}
	accepted := make([]uint64, 0, f.m)

	// orthogonalize removes the component of every pending vector along the
	// unit vector v (tr(v·v) = 1).
	orthogonalize := func(v uint64) {
		for i, q := range pending {
			if f.bilinear(q, v) == 1 {
				pending[i] = q ^ v
			}
		}
	}

	for len(pending) > 0 {
		// Look for a pending vector with unit self-product.
		unit := -1
		for i, p := range pending {
			if f.bilinear(p, p) == 1 {
				unit = i
				break
			}
		}

		if unit >= 0 {
			v := pending[unit]
			pending = append(pending[:unit], pending[unit+1:]...)
			orthogonalize(v)
			accepted = append(accepted, v)
			continue
		}

		// Alternating complement: find w1, w2 with tr(w1·w2) = 1 (exists by
		// nondegeneracy) and exchange with the last accepted vector.
		var w1, w2 uint64
		found := false
		for i := 0; i < len(pending) && !found; i++ {
			for j := i + 1; j < len(pending) && !found; j++ {
				if f.bilinear(pending[i], pending[j]) == 1 {
					w1, w2 = pending[i], pending[j]
					// Remove j first so index i stays valid.
					pending = append(pending[:j], pending[j+1:]...)
					pending = append(pending[:i], pending[i+1:]...)
					found = true
				}
			}
		}
		v := accepted[len(accepted)-1]
		accepted = accepted[:len(accepted)-1]

		for _, u := range []uint64{v ^ w1, v ^ w2, v ^ w1 ^ w2} {
			orthogonalize(u)
			accepted = append(accepted, u)
		}
	}
	return accepted
}

// toVector maps a field element onto F2^m coordinates in the self-dual
// basis: bit i of the result is tr(e·d_i). In a self-dual basis this is the
// coordinate functional, and the standard dot product of coordinate vectors
// equals tr(u·v).
func (f *field) toVector(e uint64) uint64 {
	var v uint64
	for i, d := range f.selfDual {
		v |= f.bilinear(e, d) << uint(i)
	}
	return v
}

// toElement is the inverse of toVector: the sum of basis vectors selected by
// the coordinate bits.
func (f *field) toElement(v uint64) uint64 {
	var e uint64
	for i, d := range f.selfDual {
		if v&(1<<uint(i)) != 0 {
			e ^= d
		}
	}
	return e
}
