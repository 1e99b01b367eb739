package calc

import (
	"math"
	"testing"

	"growth_decay/internal/models"
)

func TestDecayConstantAndHalfLife_AreInverse(t *testing.T) {
	for _, x := range []float64{1e-6, 0.5, 1, 5730, 4.468e9} {
		k, ok := DecayConstant(x)
		if !ok {
			t.Fatalf("DecayConstant(%v) not computable", x)
		}
		back, ok := HalfLife(k)
		if !ok || !almostEqual(back/x, 1, 1e-12) {
			t.Fatalf("HalfLife(DecayConstant(%v)) = %v", x, back)
		}
	}
}

func TestDecayConstant_RejectsNonPositive(t *testing.T) {
	for _, x := range []float64{0, -1, math.NaN()} {
		if _, ok := DecayConstant(x); ok {
			t.Fatalf("DecayConstant(%v) should fail", x)
		}
		if _, ok := HalfLife(x); ok {
			t.Fatalf("HalfLife(%v) should fail", x)
		}
	}
}

func TestQuantity(t *testing.T) {
	n, ok := Quantity(100, 0.1, 0)
	if !ok || n != 100 {
		t.Fatalf("Quantity at t=0: got %v ok=%v", n, ok)
	}

	prev := 100.0
	for _, tt := range []float64{0.1, 1, 5, 10, 50} {
		n, ok := Quantity(100, 0.1, tt)
		if !ok {
			t.Fatalf("Quantity(t=%v) not computable", tt)
		}
		if n >= prev {
			t.Fatalf("quantity should strictly decrease: N(%v)=%v, previous %v", tt, n, prev)
		}
		prev = n
	}

	for _, tc := range []struct{ n0, k, t float64 }{
		{-1, 0.1, 1},
		{100, 0, 1},
		{100, -0.1, 1},
		{100, 0.1, -1},
	} {
		if _, ok := Quantity(tc.n0, tc.k, tc.t); ok {
			t.Fatalf("Quantity(%+v) should fail", tc)
		}
	}
}

func TestTimeToQuantity(t *testing.T) {
	cases := []struct {
		name      string
		n0, n, k  float64
		kind      models.OutcomeKind
		wantValue float64
	}{
		{"same quantity", 100, 100, 0.2, models.Finite, 0},
		{"extinction", 100, 0, 0.2, models.Infinite, 0},
		{"above initial", 100, 101, 0.2, models.Unreachable, 0},
		{"negative target", 100, -1, 0.2, models.Unreachable, 0},
		{"non-positive initial", 0, 0, 0.2, models.Unreachable, 0},
		{"non-positive k", 100, 50, 0, models.Unreachable, 0},
		{"half", 100, 50, math.Ln2 / 10, models.Finite, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TimeToQuantity(tc.n0, tc.n, tc.k)
			if got.Kind != tc.kind {
				t.Fatalf("kind: got %v, want %v", got.Kind, tc.kind)
			}
			if tc.kind == models.Finite && !almostEqual(got.Value, tc.wantValue, 1e-9) {
				t.Fatalf("value: got %v, want %v", got.Value, tc.wantValue)
			}
		})
	}
}

func TestTimeToQuantity_RoundTrip(t *testing.T) {
	for _, n0 := range []float64{1, 100, 6.02e23} {
		for _, k := range []float64{0.001, 0.1, 3} {
			for _, tt := range []float64{0, 0.25, 1, 10, 100} {
				n, _ := Quantity(n0, k, tt)
				out := TimeToQuantity(n0, n, k)
				v, ok := out.Get()
				if !ok {
					// e^(-k·t) underflowed to zero
					if n == 0 && out.IsInfinite() {
						continue
					}
					t.Fatalf("n0=%v k=%v t=%v: unexpected outcome %v", n0, k, tt, out.Kind)
				}
				back, _ := Quantity(n0, k, v)
				if !almostEqual(back/n0, n/n0, 1e-9) {
					t.Fatalf("n0=%v k=%v t=%v: got %v, want %v", n0, k, tt, back, n)
				}
			}
		}
	}
}

func TestInitialQuantity(t *testing.T) {
	n, _ := Quantity(250, 0.07, 12)
	n0, ok := InitialQuantity(n, 0.07, 12)
	if !ok || !almostEqual(n0, 250, 1e-9) {
		t.Fatalf("InitialQuantity = %v ok=%v, want 250", n0, ok)
	}
	for _, tc := range []struct{ n, k, t float64 }{
		{-1, 0.1, 1},
		{10, 0, 1},
		{10, 0.1, -1},
	} {
		if _, ok := InitialQuantity(tc.n, tc.k, tc.t); ok {
			t.Fatalf("InitialQuantity(%+v) should fail", tc)
		}
	}
}

func TestFitDecay(t *testing.T) {
	t.Run("half in ten", func(t *testing.T) {
		fit, ok := FitDecay(100, 50, 10)
		if !ok {
			t.Fatalf("expected a fit")
		}
		if !almostEqual(fit.K, 0.0693147, 1e-7) {
			t.Fatalf("k: got %v", fit.K)
		}
		hl, finite := fit.HalfLife.Get()
		if !finite || !almostEqual(hl, 10, 1e-9) {
			t.Fatalf("half-life: got %v finite=%v", hl, finite)
		}
	})

	t.Run("no decay observed", func(t *testing.T) {
		fit, ok := FitDecay(100, 100, 10)
		if !ok || fit.K != 0 || !fit.HalfLife.IsInfinite() {
			t.Fatalf("unexpected fit %+v ok=%v", fit, ok)
		}
	})

	for _, tc := range []struct {
		name     string
		n0, n, t float64
	}{
		{"zero initial", 0, 1, 1},
		{"zero measured", 100, 0, 1},
		{"zero time", 100, 50, 0},
		{"growth", 100, 150, 10},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if fit, ok := FitDecay(tc.n0, tc.n, tc.t); ok {
				t.Fatalf("expected not computable, got %+v", fit)
			}
		})
	}
}

func TestDecayTable_Scenario(t *testing.T) {
	table := DecayTable(100, 0.1, 20, 5)
	if len(table) != 5 {
		t.Fatalf("got %d points, want 5", len(table))
	}
	for i, want := range []float64{0, 5, 10, 15, 20} {
		if table[i].Time != want {
			t.Fatalf("point %d time: got %v, want %v", i, table[i].Time, want)
		}
	}
	if table[0].Quantity != 100 || table[0].PercentRemaining != 100 {
		t.Fatalf("first point: %+v", table[0])
	}
	for i := 1; i < len(table); i++ {
		if table[i].Quantity >= table[i-1].Quantity {
			t.Fatalf("quantity should decrease: %+v", table)
		}
		if !almostEqual(table[i].PercentRemaining, table[i].Quantity, 1e-9) {
			t.Fatalf("percent of 100 should equal quantity: %+v", table[i])
		}
	}
}

func TestDecayTable_RejectsInvalidModel(t *testing.T) {
	if got := DecayTable(0, 0.1, 20, 5); got != nil {
		t.Fatalf("N0=0 should yield no points")
	}
	if got := DecayTable(100, 0, 20, 5); got != nil {
		t.Fatalf("k=0 should yield no points")
	}
}
