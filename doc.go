// Package paulifam groups Pauli-string observables into simultaneously
// measurable families and estimates expectation values from grouped
// measurements.
//
// 🚀 What is paulifam?
//
//	A deterministic library that brings together:
//		• Pauli primitives: validated Pauli strings & weighted-sum operators
//		• Compatibility graphs: qubit-wise and full-commutation predicates
//		• Dense grouping: near-minimum partitions into measurable families
//		  (greedy clique packing, exact clique cover for small inputs, and
//		  the GF(2^m) symplectic-spread construction for dense operators)
//		• Basis resolution: one measurement configuration per family
//		• Expectation aggregation: per-string contributions recombined into
//		  a single scalar, exact or sampled
//		• A statevector simulator satisfying the execution-backend contract
//		• Matrix ⇄ Pauli-operator decomposition on top of gonum
//
// ✨ Why choose paulifam?
//
//   - Minimum measurements – a full 4^m−1 Pauli decomposition needs only
//     2^m+1 measurement families instead of 3^m qubit-wise groups
//   - Reproducible – fixed seeds and documented tie-breaks, identical
//     partitions on every run
//   - Pure Go core – the grouping engine is a standalone function with no
//     dependency on any host framework's object model
//   - Pluggable – any execution backend satisfying the narrow Measure
//     contract can run the grouped configurations, sequentially or in
//     parallel
//
// Under the hood, everything is organized under five subpackages:
//
//	pauli/       — Pauli labels, strings, operators & compatibility predicates
//	grouping/    — compatibility graph, grouping engine & basis resolver
//	expectation/ — aggregator, estimator, backend contract
//	statevector/ — exact/sampled simulator backend
//	decompose/   — Hermitian matrix ⇄ Pauli operator conversion (gonum)
//
// Quick sketch:
//
//	op  := …                        // Σ cᵢ·Pᵢ
//	part, _ := grouping.ComputePartition(op)           // few families
//	est, _  := expectation.NewEstimator(statevector.NewSimulator())
//	val, _  := est.Estimate(ctx, op, state)            // ⟨ψ|H|ψ⟩
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/paulifam
package paulifam
