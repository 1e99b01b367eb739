// Package calc holds the closed-form solutions of Newton's law of cooling,
// T(t) = Tm + C·e^(K·t), and of radioactive decay, N(t) = N0·e^(-k·t).
//
// Every function is pure. Inversions that have no answer report it through
// models.Outcome or a comma-ok bool instead of an error.
package calc

import (
	"math"

	"growth_decay/internal/models"
)

// Temperature evaluates T(t) = Tm + C·e^(K·t).
func Temperature(tm, c, k, t float64) float64 {
	return tm + c*math.Exp(k*t)
}

// TimeToTemperature solves T(t) = target for t.
//
// A target equal to Tm is reached only asymptotically and yields an Infinite
// outcome (unless C == 0). Targets on the wrong side of Tm, or lying in the
// past for this K, are Unreachable.
func TimeToTemperature(tm, c, k, target float64) models.Outcome {
	if target == tm && c != 0 {
		return models.InfiniteOutcome()
	}
	if c == 0 {
		return models.UnreachableOutcome()
	}

	arg := (target - tm) / c
	if !(arg > 0) {
		return models.UnreachableOutcome()
	}
	if arg == 1 {
		// target is the starting temperature
		return models.FiniteOutcome(0)
	}
	if k == 0 {
		return models.UnreachableOutcome()
	}

	t := math.Log(arg) / k
	if math.IsNaN(t) || t < 0 {
		return models.UnreachableOutcome()
	}
	return models.FiniteOutcome(t)
}

// SolveCoolingRate recovers K and C = T0 - Tm from the initial temperature t0
// and a reading tAt taken t time units later.
func SolveCoolingRate(t0, tm, tAt, t float64) (models.CoolingFit, bool) {
	c := t0 - tm
	if t == 0 || c == 0 {
		return models.CoolingFit{}, false
	}

	arg := (tAt - tm) / c
	if !(arg > 0) {
		return models.CoolingFit{}, false
	}

	k := math.Log(arg) / t
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return models.CoolingFit{}, false
	}
	return models.CoolingFit{K: k, C: c, Process: models.ProcessForRate(k)}, true
}

// CoolingOffset returns C = T_initial - Tm and its sign classification.
func CoolingOffset(initial, tm float64) (float64, models.OffsetClass) {
	c := initial - tm
	switch {
	case c > 0:
		return c, models.OffsetPositive
	case c < 0:
		return c, models.OffsetNegative
	default:
		return c, models.OffsetZero
	}
}

// CoolingTable samples T(t) at t = 0, step, 2·step, ... up to total inclusive.
// Callers must bound total/step; see PointCount.
func CoolingTable(tm, c, k, total, step float64) []models.CoolingPoint {
	times := sampleTimes(total, step)
	if times == nil {
		return nil
	}
	out := make([]models.CoolingPoint, len(times))
	for i, t := range times {
		out[i] = models.CoolingPoint{Time: t, Temperature: Temperature(tm, c, k, t)}
	}
	return out
}
