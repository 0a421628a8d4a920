// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, never by redefining sentinels.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//   • Graph-shape violations surface as core.ErrInvalidGraphSpec, unwrapped
//     from GraphSpec.Validate with method context added.

package builder

import (
	"errors"
)

// ErrUnsupportedTopology indicates the weight model cannot produce the
// requested graph shape. PositionDerived only supports complete graphs.
// Usage: if errors.Is(err, ErrUnsupportedTopology) { /* ask for E = V*(V-1)/2 */ }.
var ErrUnsupportedTopology = errors.New("builder: unsupported topology")

// ErrInvalidDimensions indicates a negative dimensionality for PositionDerived.
var ErrInvalidDimensions = errors.New("builder: invalid dimensions")

// ErrInvalidWeightModel indicates a nil model, a precision outside
// [MinPrecision, MaxPrecision], a non-finite bound, or min > max.
var ErrInvalidWeightModel = errors.New("builder: invalid weight model")

// ErrNeedRandSource indicates no random source was configured and none
// could be seeded from OS entropy.
var ErrNeedRandSource = errors.New("builder: random source is required")

// ErrConstructFailed indicates a constructor could not keep its invariants:
// a requested count exceeds the free pairs, a pair was already present
// where none may be, or the final edge count disagrees with the spec.
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Priority when several validations fail (checked in this order):
//    • core.ErrInvalidGraphSpec - V, E bounds.
//    • ErrInvalidWeightModel    - nil model, precision, range.
//    • ErrInvalidDimensions     - PositionDerived.Dimensions < 0.
//    • ErrUnsupportedTopology   - PositionDerived on a non-complete spec.
//    • ErrNeedRandSource        - entropy seeding failed.
//    • ErrConstructFailed       - invariant broken inside a constructor.
//
// 2) No partial success: every error path returns a nil *core.EdgeSet.
