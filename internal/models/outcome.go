package models

import "math"

// OutcomeKind tells whether an inversion produced a number.
type OutcomeKind int

const (
	// Finite carries a usable value.
	Finite OutcomeKind = iota
	// Unreachable means the inversion has no answer for the inputs.
	Unreachable
	// Infinite means the target is only approached asymptotically.
	Infinite
)

func (k OutcomeKind) String() string {
	switch k {
	case Finite:
		return "finite"
	case Unreachable:
		return "unreachable"
	case Infinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// Outcome is the result of solving an exponential model for an unknown.
// Value is meaningful only when Kind == Finite.
type Outcome struct {
	Kind  OutcomeKind
	Value float64
}

func FiniteOutcome(v float64) Outcome { return Outcome{Kind: Finite, Value: v} }

func UnreachableOutcome() Outcome { return Outcome{Kind: Unreachable} }

func InfiniteOutcome() Outcome { return Outcome{Kind: Infinite, Value: math.Inf(1)} }

// Get returns the value and whether it is finite.
func (o Outcome) Get() (float64, bool) {
	return o.Value, o.Kind == Finite
}

func (o Outcome) IsInfinite() bool    { return o.Kind == Infinite }
func (o Outcome) IsUnreachable() bool { return o.Kind == Unreachable }
