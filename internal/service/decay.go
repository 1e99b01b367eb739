package service

import (
	"fmt"

	"growth_decay/internal/calc"
	"growth_decay/internal/models"
)

// DecayService validates requests for N(t) = N0·e^(-k·t).
type DecayService struct {
	limits Limits
}

func NewDecayService(limits Limits) *DecayService {
	return &DecayService{limits: limits}
}

func (s *DecayService) Quantity(p QuantityParams) (QuantityResult, error) {
	if err := requireFinite(field{"n0", p.N0}, field{"k", p.K}, field{"t", p.T}); err != nil {
		return QuantityResult{}, err
	}
	switch {
	case p.T < 0:
		return QuantityResult{}, invalidf("time must be greater than or equal to 0")
	case p.N0 <= 0:
		return QuantityResult{}, invalidf("initial quantity N0 must be greater than 0")
	case p.K <= 0:
		return QuantityResult{}, invalidf("decay constant k must be greater than 0")
	}

	n, ok := calc.Quantity(p.N0, p.K, p.T)
	if !ok {
		return QuantityResult{}, notComputable("quantity cannot be computed with these parameters")
	}
	if err := finiteResult(n); err != nil {
		return QuantityResult{}, err
	}
	return QuantityResult{
		N:       n,
		Percent: n / p.N0 * 100,
		N0:      p.N0,
		K:       p.K,
		T:       p.T,
		Formula: fmt.Sprintf("N(%s) = %s * e^(-%s*%s)", num(p.T), num(p.N0), num(p.K), num(p.T)),
	}, nil
}

// TimeToReach solves for the time at which N(t) = p.Target. A zero target
// yields Infinite.
func (s *DecayService) TimeToReach(p DecayTimeParams) (DecayTimeResult, error) {
	if err := requireFinite(field{"n0", p.N0}, field{"target_n", p.Target}, field{"k", p.K}); err != nil {
		return DecayTimeResult{}, err
	}
	switch {
	case p.N0 <= 0:
		return DecayTimeResult{}, invalidf("initial quantity N0 must be greater than 0")
	case p.Target < 0:
		return DecayTimeResult{}, invalidf("target quantity must be greater than or equal to 0")
	case p.K <= 0:
		return DecayTimeResult{}, invalidf("decay constant k must be greater than 0")
	}

	out := calc.TimeToQuantity(p.N0, p.Target, p.K)
	switch out.Kind {
	case models.Infinite:
		return DecayTimeResult{Infinite: true, Target: p.Target, N0: p.N0, K: p.K}, nil
	case models.Unreachable:
		return DecayTimeResult{}, notComputable("the target quantity cannot be reached; it must not exceed N0")
	}
	if err := finiteResult(out.Value); err != nil {
		return DecayTimeResult{}, err
	}
	return DecayTimeResult{
		Time:    out.Value,
		Target:  p.Target,
		Percent: p.Target / p.N0 * 100,
		N0:      p.N0,
		K:       p.K,
	}, nil
}

// SolveRate computes k either from a half-life or from two measurements.
func (s *DecayService) SolveRate(p DecayRateParams) (DecayRateResult, error) {
	if p.HalfLife != nil {
		return s.rateFromHalfLife(*p.HalfLife)
	}

	if err := requireFinite(field{"n0", p.N0}, field{"n_at_t", p.NAtT}, field{"t", p.T}); err != nil {
		return DecayRateResult{}, err
	}
	if p.N0 <= 0 || p.NAtT <= 0 || p.T <= 0 {
		return DecayRateResult{}, invalidf("all values must be greater than 0")
	}
	if p.NAtT > p.N0 {
		return DecayRateResult{}, invalidf("quantity at time t must be less than or equal to N0")
	}

	fit, ok := calc.FitDecay(p.N0, p.NAtT, p.T)
	if !ok {
		return DecayRateResult{}, notComputable("k cannot be computed from these measurements")
	}
	if err := finiteResult(fit.K); err != nil {
		return DecayRateResult{}, err
	}
	verification, _ := calc.Quantity(p.N0, fit.K, p.T)
	if fit.K == 0 {
		verification = p.N0
	}
	return DecayRateResult{
		K:            fit.K,
		HalfLife:     fit.HalfLife,
		N0:           p.N0,
		NAtT:         p.NAtT,
		T:            p.T,
		Percent:      p.NAtT / p.N0 * 100,
		Verification: verification,
		Formula:      fmt.Sprintf("N(t) = %s * e^(-%s*t)", num(p.N0), fixed(fit.K, 6)),
	}, nil
}

func (s *DecayService) rateFromHalfLife(halfLife float64) (DecayRateResult, error) {
	if err := requireFinite(field{"half_life", halfLife}); err != nil {
		return DecayRateResult{}, err
	}
	if halfLife <= 0 {
		return DecayRateResult{}, invalidf("half-life must be greater than 0")
	}
	k, ok := calc.DecayConstant(halfLife)
	if !ok {
		return DecayRateResult{}, notComputable("k cannot be computed from this half-life")
	}
	if err := finiteResult(k); err != nil {
		return DecayRateResult{}, err
	}
	return DecayRateResult{
		K:            k,
		HalfLife:     models.FiniteOutcome(halfLife),
		FromHalfLife: true,
		Formula:      fmt.Sprintf("k = ln(2) / %s = %s", num(halfLife), fixed(k, 6)),
	}, nil
}

// InitialQuantity recovers N0 from N measured after time t.
func (s *DecayService) InitialQuantity(p InitialQuantityParams) (InitialQuantityResult, error) {
	if err := requireFinite(field{"n", p.N}, field{"k", p.K}, field{"t", p.T}); err != nil {
		return InitialQuantityResult{}, err
	}
	switch {
	case p.N < 0:
		return InitialQuantityResult{}, invalidf("quantity N must be greater than or equal to 0")
	case p.K <= 0:
		return InitialQuantityResult{}, invalidf("decay constant k must be greater than 0")
	case p.T < 0:
		return InitialQuantityResult{}, invalidf("time must be greater than or equal to 0")
	}

	n0, ok := calc.InitialQuantity(p.N, p.K, p.T)
	if !ok {
		return InitialQuantityResult{}, notComputable("N0 cannot be computed with these parameters")
	}
	if err := finiteResult(n0); err != nil {
		return InitialQuantityResult{}, err
	}
	return InitialQuantityResult{
		N0:      n0,
		N:       p.N,
		K:       p.K,
		T:       p.T,
		Formula: fmt.Sprintf("N0 = %s * e^(%s*%s) = %s", num(p.N), num(p.K), num(p.T), fixed(n0, 4)),
	}, nil
}

// HalfLife converts k into t_half.
func (s *DecayService) HalfLife(k float64) (HalfLifeResult, error) {
	if err := requireFinite(field{"k", k}); err != nil {
		return HalfLifeResult{}, err
	}
	if k <= 0 {
		return HalfLifeResult{}, invalidf("decay constant k must be greater than 0")
	}
	hl, ok := calc.HalfLife(k)
	if !ok {
		return HalfLifeResult{}, notComputable("half-life cannot be computed for this k")
	}
	if err := finiteResult(hl); err != nil {
		return HalfLifeResult{}, err
	}
	return HalfLifeResult{K: k, HalfLife: hl}, nil
}

// Table tabulates N(t) over [0, Total] after enforcing the point cap.
func (s *DecayService) Table(p DecayTableParams) (DecayTableResult, error) {
	if err := requireFinite(field{"n0", p.N0}, field{"k", p.K}, field{"total_time", p.Total}, field{"step", p.Step}); err != nil {
		return DecayTableResult{}, err
	}
	switch {
	case p.N0 <= 0:
		return DecayTableResult{}, invalidf("initial quantity N0 must be greater than 0")
	case p.K <= 0:
		return DecayTableResult{}, invalidf("decay constant k must be greater than 0")
	}
	if err := checkRange(p.Total, p.Step, s.limits.maxPoints()); err != nil {
		return DecayTableResult{}, err
	}

	points := calc.DecayTable(p.N0, p.K, p.Total, p.Step)
	for _, pt := range points {
		if err := finiteResult(pt.Quantity, pt.PercentRemaining); err != nil {
			return DecayTableResult{}, err
		}
	}
	hl, _ := calc.HalfLife(p.K)
	if err := finiteResult(hl); err != nil {
		return DecayTableResult{}, err
	}
	return DecayTableResult{
		Points:   points,
		N0:       p.N0,
		K:        p.K,
		HalfLife: hl,
	}, nil
}
