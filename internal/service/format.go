package service

import (
	"math"
	"strconv"
)

// num prints a value the shortest way that round-trips.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// round rounds half away from zero to the given number of decimals.
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// fixed prints v rounded to decimals, without trailing zeros.
func fixed(v float64, decimals int) string {
	return num(round(v, decimals))
}
