package service

import (
	"errors"
	"math"
	"testing"
)

func TestDecayService_Quantity(t *testing.T) {
	svc := NewDecayService(Limits{})

	res, err := svc.Quantity(QuantityParams{N0: 100, K: math.Ln2 / 10, T: 10})
	if err != nil {
		t.Fatalf("Quantity: %v", err)
	}
	if math.Abs(res.N-50) > 1e-9 || math.Abs(res.Percent-50) > 1e-9 {
		t.Fatalf("unexpected result: %+v", res)
	}

	cases := []QuantityParams{
		{N0: 100, K: 0.1, T: -1},
		{N0: 0, K: 0.1, T: 1},
		{N0: 100, K: 0, T: 1},
	}
	for _, p := range cases {
		if _, err := svc.Quantity(p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", p, err)
		}
	}
}

func TestDecayService_TimeToReach(t *testing.T) {
	svc := NewDecayService(Limits{})

	res, err := svc.TimeToReach(DecayTimeParams{N0: 100, Target: 25, K: math.Ln2 / 10})
	if err != nil {
		t.Fatalf("TimeToReach: %v", err)
	}
	if res.Infinite || math.Abs(res.Time-20) > 1e-9 || res.Percent != 25 {
		t.Fatalf("unexpected result: %+v", res)
	}

	res, err = svc.TimeToReach(DecayTimeParams{N0: 100, Target: 0, K: 0.1})
	if err != nil || !res.Infinite {
		t.Fatalf("zero target should be infinite: %+v, %v", res, err)
	}

	if _, err := svc.TimeToReach(DecayTimeParams{N0: 100, Target: 150, K: 0.1}); !errors.Is(err, ErrNotComputable) {
		t.Fatalf("expected ErrNotComputable for target above N0, got %v", err)
	}
	if _, err := svc.TimeToReach(DecayTimeParams{N0: 100, Target: -5, K: 0.1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative target, got %v", err)
	}
}

func TestDecayService_SolveRate(t *testing.T) {
	svc := NewDecayService(Limits{})

	t.Run("from data", func(t *testing.T) {
		res, err := svc.SolveRate(DecayRateParams{N0: 100, NAtT: 50, T: 10})
		if err != nil {
			t.Fatalf("SolveRate: %v", err)
		}
		hl, finite := res.HalfLife.Get()
		if math.Abs(res.K-0.0693147) > 1e-7 || !finite || math.Abs(hl-10) > 1e-9 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if math.Abs(res.Verification-50) > 1e-9 || res.FromHalfLife {
			t.Fatalf("unexpected verification: %+v", res)
		}
	})

	t.Run("from half-life", func(t *testing.T) {
		hl := 5730.0
		res, err := svc.SolveRate(DecayRateParams{HalfLife: &hl})
		if err != nil {
			t.Fatalf("SolveRate: %v", err)
		}
		if !res.FromHalfLife || math.Abs(res.K-math.Ln2/5730) > 1e-15 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("no decay observed", func(t *testing.T) {
		res, err := svc.SolveRate(DecayRateParams{N0: 100, NAtT: 100, T: 10})
		if err != nil {
			t.Fatalf("SolveRate: %v", err)
		}
		if res.K != 0 || !res.HalfLife.IsInfinite() || res.Verification != 100 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		zero := 0.0
		for _, p := range []DecayRateParams{
			{HalfLife: &zero},
			{N0: 100, NAtT: 0, T: 10},
			{N0: 100, NAtT: 120, T: 10},
		} {
			if _, err := svc.SolveRate(p); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput for %+v, got %v", p, err)
			}
		}
	})
}

func TestDecayService_InitialQuantityAndHalfLife(t *testing.T) {
	svc := NewDecayService(Limits{})

	res, err := svc.InitialQuantity(InitialQuantityParams{N: 50, K: math.Ln2 / 10, T: 10})
	if err != nil {
		t.Fatalf("InitialQuantity: %v", err)
	}
	if math.Abs(res.N0-100) > 1e-9 {
		t.Fatalf("N0: got %v, want 100", res.N0)
	}

	hl, err := svc.HalfLife(math.Ln2 / 8)
	if err != nil || math.Abs(hl.HalfLife-8) > 1e-12 {
		t.Fatalf("HalfLife: %+v, %v", hl, err)
	}
	if _, err := svc.HalfLife(0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for k=0, got %v", err)
	}
}

func TestDecayService_Table(t *testing.T) {
	svc := NewDecayService(Limits{})

	res, err := svc.Table(DecayTableParams{N0: 100, K: 0.1, Total: 20, Step: 5})
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if len(res.Points) != 5 {
		t.Fatalf("got %d points, want 5", len(res.Points))
	}
	if math.Abs(res.HalfLife-math.Ln2/0.1) > 1e-12 {
		t.Fatalf("half-life: got %v", res.HalfLife)
	}

	_, err = svc.Table(DecayTableParams{N0: 100, K: 0.1, Total: 2000, Step: 1})
	var tooMany *TooManyPointsError
	if !errors.As(err, &tooMany) || tooMany.Count != 2001 {
		t.Fatalf("expected TooManyPointsError(2001), got %v", err)
	}
}

func TestDecayService_OverflowIsNotComputable(t *testing.T) {
	svc := NewDecayService(Limits{})

	_, err := svc.InitialQuantity(InitialQuantityParams{N: 1, K: 1, T: 1000})
	if !errors.Is(err, ErrNotComputable) {
		t.Fatalf("InitialQuantity: expected ErrNotComputable, got %v", err)
	}

	_, err = svc.TimeToReach(DecayTimeParams{N0: 1e300, Target: 1e-300, K: 1e-300})
	if !errors.Is(err, ErrNotComputable) {
		t.Fatalf("TimeToReach: expected ErrNotComputable, got %v", err)
	}

	_, err = svc.HalfLife(5e-324)
	if !errors.Is(err, ErrNotComputable) {
		t.Fatalf("HalfLife: expected ErrNotComputable, got %v", err)
	}

	tiny := 5e-324
	_, err = svc.SolveRate(DecayRateParams{HalfLife: &tiny})
	if !errors.Is(err, ErrNotComputable) {
		t.Fatalf("SolveRate: expected ErrNotComputable, got %v", err)
	}

	res, err := svc.Quantity(QuantityParams{N0: 1e308, K: 0.1, T: 0})
	if err != nil || res.N != 1e308 {
		t.Fatalf("a large finite quantity is still a result: %+v, %v", res, err)
	}
}
