package handlers

import (
	"math"
	"net/http"
	"strings"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		decimals int
		want     float64
	}{
		{"half away from zero", 2.5, 0, 3},
		{"negative half", -2.5, 0, -3},
		{"two decimals", 49.4303, 2, 49.43},
		{"too large to scale", 1e308, 4, 1e308},
		{"max float", math.MaxFloat64, 6, math.MaxFloat64},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := round(tc.v, tc.decimals); got != tc.want {
				t.Fatalf("round(%v, %d) = %v, want %v", tc.v, tc.decimals, got, tc.want)
			}
		})
	}
}

func TestOverflowingResultsAreNotComputable(t *testing.T) {
	r := newRealRouter()

	tests := []struct {
		name string
		path string
		body string
	}{
		{"temperature", "/api/v1/cooling/temperature", `{"tm":20,"c":80,"k":1,"t":1000}`},
		{"initial quantity", "/api/v1/decay/initial", `{"n":1,"k":1,"t":1000}`},
		{"cooling table", "/api/v1/cooling/table", `{"tm":20,"c":80,"k":1,"total_time":1000,"step":100}`},
		{"half-life", "/api/v1/decay/half-life", `{"k":5e-324}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, tc.path, tc.body)
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status=%d body=%q", w.Code, w.Body.String())
			}
			out := decode(t, w)
			if out.Success || !strings.Contains(out.Error, "overflows") {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}

func TestLargeFiniteResultKeepsItsBody(t *testing.T) {
	r := newRealRouter()

	w := postJSON(r, "/api/v1/decay/quantity", `{"n0":1e308,"k":0.1,"t":0}`)
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Fatalf("status=%d body=%q", w.Code, w.Body.String())
	}
	out := decode(t, w)
	if !out.Success || out.Raw["n"] != 1e308 || out.Raw["percent"] != float64(100) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
