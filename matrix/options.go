// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for normalization and the RREF
// engine. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Epsilon plays two roles inside RREF — pivot admissibility and final
//     cleanup — and both intentionally share the single configured value.
//     Splitting them would let a value be zeroed by cleanup yet treated as a
//     usable pivot (or vice versa), which is a correctness bug, so no second
//     knob is offered.
//   - NaN/Inf validation is opt-in here: normalization mirrors the behavior
//     of plain float conversion and passes every numeric value through
//     unless WithValidateNaNInf is requested.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the magnitude threshold below which a value is
	// treated as numerically zero by the RREF engine: candidate pivots must
	// exceed it, and the final cleanup pass zeroes anything at or under it.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion. Disabled by default: NaN/±Inf propagate like any float.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps            float64 // ≥ 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// isNonFinite reports whether v is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the zero-magnitude tolerance eps used by the RREF engine.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - eps governs BOTH pivot admissibility and final cleanup; see RREF.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - eps=0 demands exact zeros; prefer a small positive eps (the default
//     1e-12) for double-precision data, and something looser (~1e-6) when
//     reducing matrices that came in as single precision.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation on ingestion.
// When enabled, Normalize rejects NaN and ±Inf elements with ErrNaNInf.
// Complexity: O(1).
//
// AI-Hints:
//   - Enable when ingesting external data with unknown hygiene; elimination
//     on a matrix containing NaN silently poisons whole rows otherwise.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Internal resolution ----------

// gatherOptions applies opts over the documented defaults and returns the
// effective configuration. Deterministic: later options win.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
