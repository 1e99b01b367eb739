package calc

import "math"

// endpointTolerance is the relative gap under which total still counts as a
// multiple of step. 0.3/0.1 is 2.9999999999999996 in binary, yet t = 0.3
// belongs in the table.
const endpointTolerance = 1e-14

// maxPointCount keeps the float-to-int conversion defined for absurd ranges.
const maxPointCount = math.MaxInt32

func tabulable(total, step float64) bool {
	return step > 0 && total >= 0 && !math.IsInf(total, 0) && !math.IsInf(step, 0)
}

// NominalPointCount is floor(total/step) + 1, the figure the point cap is
// checked against. It returns 0 when the range cannot be tabulated
// (step <= 0, total < 0, or a non-finite argument).
func NominalPointCount(total, step float64) int {
	if !tabulable(total, step) {
		return 0
	}
	q := math.Floor(total / step)
	if q >= maxPointCount-1 {
		return maxPointCount
	}
	return int(q) + 1
}

// PointCount returns how many samples a table over [0, total] holds. It is
// NominalPointCount plus the endpoint when total is a multiple of step that
// binary division rounded just below an integer.
func PointCount(total, step float64) int {
	n := NominalPointCount(total, step)
	if n == 0 || n == maxPointCount {
		return n
	}
	next := float64(n) * step
	if next <= total || next-total <= endpointTolerance*total {
		return n + 1
	}
	return n
}

// sampleTimes returns t_i = i*step for every sample of the range. No sample
// exceeds total.
func sampleTimes(total, step float64) []float64 {
	n := PointCount(total, step)
	if n == 0 {
		return nil
	}
	times := make([]float64, n)
	for i := range times {
		times[i] = math.Min(float64(i)*step, total)
	}
	return times
}
