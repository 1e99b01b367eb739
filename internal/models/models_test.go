package models

import (
	"math"
	"testing"
)

func TestOutcome(t *testing.T) {
	if v, ok := FiniteOutcome(2.5).Get(); !ok || v != 2.5 {
		t.Fatalf("finite: got %v, %v", v, ok)
	}
	inf := InfiniteOutcome()
	if _, ok := inf.Get(); ok || !inf.IsInfinite() || !math.IsInf(inf.Value, 1) {
		t.Fatalf("infinite: %+v", inf)
	}
	if u := UnreachableOutcome(); !u.IsUnreachable() || u.IsInfinite() {
		t.Fatalf("unreachable: %+v", u)
	}
	for kind, want := range map[OutcomeKind]string{Finite: "finite", Unreachable: "unreachable", Infinite: "infinite", 9: "unknown"} {
		if kind.String() != want {
			t.Fatalf("%d.String() = %q, want %q", kind, kind.String(), want)
		}
	}
}

func TestProcessForRate(t *testing.T) {
	cases := map[float64]Process{-0.05: ProcessCooling, 0.05: ProcessHeating, 0: ProcessConstant}
	for k, want := range cases {
		if got := ProcessForRate(k); got != want {
			t.Fatalf("ProcessForRate(%v) = %q, want %q", k, got, want)
		}
	}
}

func TestOffsetClassText(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range []OffsetClass{OffsetPositive, OffsetNegative, OffsetZero} {
		if c.Description() == "" || c.Behavior() == "" {
			t.Fatalf("%s: empty text", c)
		}
		if seen[c.Description()] {
			t.Fatalf("%s: duplicate description", c)
		}
		seen[c.Description()] = true
	}
}
