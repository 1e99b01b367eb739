package service

import (
	"fmt"

	"growth_decay/internal/calc"
	"growth_decay/internal/models"
)

// CoolingService validates requests for Newton's law of cooling and runs them
// through the closed-form solutions in calc.
type CoolingService struct {
	limits Limits
}

func NewCoolingService(limits Limits) *CoolingService {
	return &CoolingService{limits: limits}
}

// Temperature evaluates T(t) for t >= 0.
func (s *CoolingService) Temperature(p TemperatureParams) (TemperatureResult, error) {
	if err := requireFinite(field{"tm", p.Tm}, field{"c", p.C}, field{"k", p.K}, field{"t", p.T}); err != nil {
		return TemperatureResult{}, err
	}
	if p.T < 0 {
		return TemperatureResult{}, invalidf("time must be greater than or equal to 0")
	}

	temp := calc.Temperature(p.Tm, p.C, p.K, p.T)
	if err := finiteResult(temp); err != nil {
		return TemperatureResult{}, err
	}
	return TemperatureResult{
		Temperature: temp,
		Time:        p.T,
		Formula:     fmt.Sprintf("T(%s) = %s + %s * e^(%s*%s)", num(p.T), num(p.Tm), num(p.C), num(p.K), num(p.T)),
	}, nil
}

// TimeToReach solves for the time at which the object reaches p.Target.
// A target equal to the ambient temperature yields Infinite, not an error.
func (s *CoolingService) TimeToReach(p CoolingTimeParams) (CoolingTimeResult, error) {
	if err := requireFinite(field{"tm", p.Tm}, field{"c", p.C}, field{"k", p.K}, field{"target_temp", p.Target}); err != nil {
		return CoolingTimeResult{}, err
	}

	out := calc.TimeToTemperature(p.Tm, p.C, p.K, p.Target)
	switch out.Kind {
	case models.Infinite:
		return CoolingTimeResult{Infinite: true, Target: p.Target}, nil
	case models.Unreachable:
		return CoolingTimeResult{}, notComputable("the target temperature cannot be reached with these parameters")
	}
	if err := finiteResult(out.Value); err != nil {
		return CoolingTimeResult{}, err
	}
	return CoolingTimeResult{
		Minutes: out.Value,
		Hours:   out.Value / 60,
		Target:  p.Target,
	}, nil
}

// SolveRate fits K and C from the initial temperature and one later reading.
func (s *CoolingService) SolveRate(p CoolingRateParams) (CoolingRateResult, error) {
	if err := requireFinite(field{"t0", p.T0}, field{"tm", p.Tm}, field{"temp_at_t", p.TempAtT}, field{"t", p.T}); err != nil {
		return CoolingRateResult{}, err
	}
	if p.T <= 0 {
		return CoolingRateResult{}, invalidf("time must be greater than 0")
	}

	fit, ok := calc.SolveCoolingRate(p.T0, p.Tm, p.TempAtT, p.T)
	if !ok {
		return CoolingRateResult{}, notComputable("K cannot be computed from these readings; check that they are consistent")
	}
	verification := calc.Temperature(p.Tm, fit.C, fit.K, p.T)
	if err := finiteResult(fit.C, verification); err != nil {
		return CoolingRateResult{}, err
	}
	return CoolingRateResult{
		K:            fit.K,
		C:            fit.C,
		Tm:           p.Tm,
		T0:           p.T0,
		Verification: verification,
		At:           p.T,
		Process:      fit.Process,
		Formula:      fmt.Sprintf("T(t) = %s + %s * e^(%s*t)", num(p.Tm), fixed(fit.C, 2), fixed(fit.K, 6)),
	}, nil
}

// Offset computes C = T_initial - Tm and classifies its sign.
func (s *CoolingService) Offset(p OffsetParams) (OffsetResult, error) {
	if err := requireFinite(field{"initial_temp", p.Initial}, field{"tm", p.Tm}); err != nil {
		return OffsetResult{}, err
	}

	c, class := calc.CoolingOffset(p.Initial, p.Tm)
	if err := finiteResult(c); err != nil {
		return OffsetResult{}, err
	}
	return OffsetResult{
		C:       c,
		Initial: p.Initial,
		Tm:      p.Tm,
		Class:   class,
		Formula: fmt.Sprintf("C = %s - %s = %s", num(p.Initial), num(p.Tm), fixed(c, 2)),
	}, nil
}

// Table tabulates T(t) over [0, Total] after enforcing the point cap.
func (s *CoolingService) Table(p CoolingTableParams) (CoolingTableResult, error) {
	if err := requireFinite(field{"tm", p.Tm}, field{"c", p.C}, field{"k", p.K}, field{"total_time", p.Total}, field{"step", p.Step}); err != nil {
		return CoolingTableResult{}, err
	}
	if err := checkRange(p.Total, p.Step, s.limits.maxPoints()); err != nil {
		return CoolingTableResult{}, err
	}

	points := calc.CoolingTable(p.Tm, p.C, p.K, p.Total, p.Step)
	for _, pt := range points {
		if err := finiteResult(pt.Temperature); err != nil {
			return CoolingTableResult{}, err
		}
	}
	return CoolingTableResult{
		Points: points,
		Tm:     p.Tm,
		C:      p.C,
		K:      p.K,
	}, nil
}

// checkRange validates a tabulation range and the resulting point count.
func checkRange(total, step float64, max int) error {
	if total <= 0 {
		return invalidf("total time must be greater than 0")
	}
	if step <= 0 {
		return invalidf("step must be greater than 0")
	}
	if n := calc.NominalPointCount(total, step); n > max {
		return &TooManyPointsError{Count: n, Max: max}
	}
	return nil
}
