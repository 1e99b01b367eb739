package service

import "growth_decay/internal/models"

// DefaultMaxTablePoints bounds table responses when no limit is configured.
const DefaultMaxTablePoints = 1000

// Limits are the collaborator-side guards applied before tabulation.
type Limits struct {
	MaxTablePoints int
}

func (l Limits) maxPoints() int {
	if l.MaxTablePoints <= 0 {
		return DefaultMaxTablePoints
	}
	return l.MaxTablePoints
}

// ---- Newton cooling ----

type TemperatureParams struct {
	Tm float64 // ambient temperature
	C  float64 // initial offset T0 - Tm
	K  float64 // rate constant
	T  float64 // elapsed time, >= 0
}

type TemperatureResult struct {
	Temperature float64
	Time        float64
	Formula     string
}

type CoolingTimeParams struct {
	Tm     float64
	C      float64
	K      float64
	Target float64
}

// CoolingTimeResult is either a finite time or Infinite (target == Tm).
type CoolingTimeResult struct {
	Infinite bool
	Minutes  float64
	Hours    float64
	Target   float64
}

type CoolingRateParams struct {
	T0      float64 // temperature at t = 0
	Tm      float64
	TempAtT float64 // temperature measured at T
	T       float64 // > 0
}

type CoolingRateResult struct {
	K            float64
	C            float64
	Tm           float64
	T0           float64
	Verification float64 // T(T) recomputed from the fitted constants
	At           float64
	Process      models.Process
	Formula      string
}

type OffsetParams struct {
	Initial float64
	Tm      float64
}

type OffsetResult struct {
	C       float64
	Initial float64
	Tm      float64
	Class   models.OffsetClass
	Formula string
}

type CoolingTableParams struct {
	Tm    float64
	C     float64
	K     float64
	Total float64 // > 0
	Step  float64 // > 0
}

type CoolingTableResult struct {
	Points []models.CoolingPoint
	Tm     float64
	C      float64
	K      float64
}

// ---- Radioactive decay ----

type QuantityParams struct {
	N0 float64 // > 0
	K  float64 // > 0
	T  float64 // >= 0
}

type QuantityResult struct {
	N       float64
	Percent float64
	N0      float64
	K       float64
	T       float64
	Formula string
}

type DecayTimeParams struct {
	N0     float64
	Target float64 // 0 <= Target <= N0
	K      float64
}

type DecayTimeResult struct {
	Infinite bool
	Time     float64
	Target   float64
	Percent  float64
	N0       float64
	K        float64
}

// DecayRateParams selects the half-life path when HalfLife is set, the
// experimental-data path (N0, NAtT, T) otherwise.
type DecayRateParams struct {
	HalfLife *float64
	N0       float64
	NAtT     float64
	T        float64
}

type DecayRateResult struct {
	K            float64
	HalfLife     models.Outcome
	FromHalfLife bool
	N0           float64
	NAtT         float64
	T            float64
	Percent      float64
	Verification float64 // N(T) recomputed from the fitted k
	Formula      string
}

type InitialQuantityParams struct {
	N float64 // >= 0
	K float64 // > 0
	T float64 // >= 0
}

type InitialQuantityResult struct {
	N0      float64
	N       float64
	K       float64
	T       float64
	Formula string
}

type HalfLifeResult struct {
	K        float64
	HalfLife float64
}

type DecayTableParams struct {
	N0    float64
	K     float64
	Total float64
	Step  float64
}

type DecayTableResult struct {
	Points   []models.DecayPoint
	N0       float64
	K        float64
	HalfLife float64
}
