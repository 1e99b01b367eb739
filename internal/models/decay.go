package models

// DecayPoint is one row of a decay table.
type DecayPoint struct {
	Time             float64 `json:"time"`
	Quantity         float64 `json:"quantity"`
	PercentRemaining float64 `json:"percent_remaining"`
}

// DecayFit holds the decay constant recovered from experimental data.
// HalfLife is Infinite when no decay was observed (K == 0).
type DecayFit struct {
	K        float64
	HalfLife Outcome
}
