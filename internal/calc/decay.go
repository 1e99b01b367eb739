package calc

import (
	"math"

	"growth_decay/internal/models"
)

// DecayConstant converts a half-life into k = ln2 / t_half.
func DecayConstant(halfLife float64) (float64, bool) {
	if !(halfLife > 0) {
		return 0, false
	}
	return math.Ln2 / halfLife, true
}

// HalfLife converts a decay constant into t_half = ln2 / k.
func HalfLife(k float64) (float64, bool) {
	if !(k > 0) {
		return 0, false
	}
	return math.Ln2 / k, true
}

// Quantity evaluates N(t) = N0·e^(-k·t).
func Quantity(n0, k, t float64) (float64, bool) {
	if n0 < 0 || !(k > 0) || t < 0 {
		return 0, false
	}
	return n0 * math.Exp(-k*t), true
}

// TimeToQuantity solves N(t) = n for t. n must lie in [0, N0]; n == 0 is
// reached only asymptotically.
func TimeToQuantity(n0, n, k float64) models.Outcome {
	if !(n0 > 0) || !(k > 0) {
		return models.UnreachableOutcome()
	}
	if !(n >= 0) || n > n0 {
		return models.UnreachableOutcome()
	}
	if n == 0 {
		return models.InfiniteOutcome()
	}
	if n == n0 {
		return models.FiniteOutcome(0)
	}
	return models.FiniteOutcome(math.Log(n0/n) / k)
}

// InitialQuantity recovers N0 = N·e^(k·t).
func InitialQuantity(n, k, t float64) (float64, bool) {
	if n < 0 || !(k > 0) || t < 0 {
		return 0, false
	}
	return n * math.Exp(k*t), true
}

// FitDecay recovers k = ln(N0/N) / t from two measurements and the matching
// half-life. When no decay was observed (N == N0) the fit is k = 0 with an
// infinite half-life.
func FitDecay(n0, n, t float64) (models.DecayFit, bool) {
	if !(n0 > 0) || !(n > 0) || !(t > 0) {
		return models.DecayFit{}, false
	}
	if n > n0 {
		return models.DecayFit{}, false
	}
	if n == n0 {
		return models.DecayFit{K: 0, HalfLife: models.InfiniteOutcome()}, true
	}

	k := math.Log(n0/n) / t
	if hl, ok := HalfLife(k); ok {
		return models.DecayFit{K: k, HalfLife: models.FiniteOutcome(hl)}, true
	}
	// n0/n rounded to 1
	return models.DecayFit{K: k, HalfLife: models.InfiniteOutcome()}, true
}

// DecayTable samples N(t) and the percentage of N0 left at t = 0, step, ...
// up to total inclusive. It returns nil unless N0 > 0 and k > 0.
func DecayTable(n0, k, total, step float64) []models.DecayPoint {
	if !(n0 > 0) || !(k > 0) {
		return nil
	}
	times := sampleTimes(total, step)
	if times == nil {
		return nil
	}
	out := make([]models.DecayPoint, len(times))
	for i, t := range times {
		n := n0 * math.Exp(-k*t)
		out[i] = models.DecayPoint{Time: t, Quantity: n, PercentRemaining: n / n0 * 100}
	}
	return out
}
