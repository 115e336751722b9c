// Package rowreduce is a small, dependable home for elementary row
// operations and Gauss–Jordan reduction over dense float64 matrices.
//
// 🚀 What is rowreduce?
//
//	A compact, pure-Go linear-algebra primitive that brings together:
//		• Dense matrices: row-major storage with strict bounds checking
//		• Normalization: coerce any rectangular numeric input into an owned matrix
//		• Elementary operations: RowSwap, RowScale, RowReplace — always copy-on-write
//		• RREF engine: Gauss–Jordan elimination with partial pivoting and
//		  tolerance-based cleanup
//		• YAML converters: ingest and export matrices as plain nested sequences
//
// ✨ Why choose rowreduce?
//
//   - Value semantics – every operation returns a brand-new matrix; no aliasing, ever
//   - Deterministic – fixed loop orders, strict pivot tie rule, reproducible output
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure Go – no cgo, no heavy numeric dependencies
//
// Everything lives in a single subpackage:
//
//	matrix/ — Dense storage, normalization, elementary row operations, RREF
//
// Quick sketch:
//
//	    ⎡0  3 −6⎤            ⎡1 0 −2⎤
//	    ⎢3 −7  8⎥  ──RREF──▶ ⎢0 1 −2⎥
//	    ⎣3 −9 12⎦            ⎣0 0  0⎦
//
// rowreduce is deliberately not a full matrix library: no decompositions,
// no sparse storage, no parallel kernels. It does one thing carefully.
//
//	go get github.com/katalvlaran/rowreduce/matrix
package rowreduce
