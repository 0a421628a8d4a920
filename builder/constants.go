// Package builder defines shared constants used by the generators, ensuring
// consistent defaults and validation across constructors and entry points.
package builder

import "math"

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildEdgeSet is the canonical name for the BuildEdgeSet orchestrator.
	MethodBuildEdgeSet = "BuildEdgeSet"
	// MethodGenerate is the canonical name for the Generate entry point.
	MethodGenerate = "Generate"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodSpanningTree is the canonical name for the SpanningTree constructor.
	MethodSpanningTree = "SpanningTree"
	// MethodRemainder is the canonical name for the Remainder constructor.
	MethodRemainder = "Remainder"
	// MethodPositions is the canonical name for the Positions constructor.
	MethodPositions = "Positions"
)

//-----------------------------------------------------------------------------
// Weight defaults and bounds
//-----------------------------------------------------------------------------

// MinPrecision and MaxPrecision bound the number of decimal digits kept per
// weight. Doubles cannot faithfully carry more than 15.
const (
	MinPrecision = 1
	MaxPrecision = 15
)

// DefaultPrecision is the number of decimals used when the caller has no preference.
const DefaultPrecision = 1

// DefaultMinWeight and DefaultMaxWeight describe the default uniform range.
const (
	DefaultMinWeight = 0.0
	DefaultMaxWeight = 100000.0
)

//-----------------------------------------------------------------------------
// Remainder strategies
//-----------------------------------------------------------------------------

// StrategyComplete, StrategyRejection and StrategyHeap name the fill method
// recorded in Summary.Strategy.
const (
	StrategyComplete  = "complete"
	StrategyRejection = "rejection"
	StrategyHeap      = "heap"
)

// denseDisabled keeps rejection sampling for every density: no percent of
// max exceeds +Inf.
var denseDisabled = math.Inf(1)
