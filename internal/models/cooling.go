package models

// CoolingPoint is one row of a temperature table.
type CoolingPoint struct {
	Time        float64 `json:"time"`
	Temperature float64 `json:"temperature"`
}

// Process classifies a trajectory by the sign of K.
type Process string

const (
	ProcessCooling  Process = "cooling"
	ProcessHeating  Process = "heating"
	ProcessConstant Process = "constant"
)

// ProcessForRate returns the process implied by rate constant k.
func ProcessForRate(k float64) Process {
	switch {
	case k < 0:
		return ProcessCooling
	case k > 0:
		return ProcessHeating
	default:
		return ProcessConstant
	}
}

// CoolingFit holds constants recovered from two temperature readings.
type CoolingFit struct {
	K       float64
	C       float64
	Process Process
}

// OffsetClass classifies the offset constant C = T0 - Tm.
type OffsetClass string

const (
	OffsetPositive OffsetClass = "positive"
	OffsetNegative OffsetClass = "negative"
	OffsetZero     OffsetClass = "zero"
)

// Description is a human-readable reading of the class.
func (c OffsetClass) Description() string {
	switch c {
	case OffsetPositive:
		return "object is warmer than the ambient medium"
	case OffsetNegative:
		return "object is cooler than the ambient medium"
	default:
		return "object is already at ambient temperature"
	}
}

// Behavior describes how the object evolves for this class.
func (c OffsetClass) Behavior() string {
	switch c {
	case OffsetPositive:
		return "with a negative K the object cools toward Tm"
	case OffsetNegative:
		return "with a positive K the object warms toward Tm"
	default:
		return "temperature stays constant over time"
	}
}
