package service

// Cooling exposes Newton's law of cooling, T(t) = Tm + C·e^(K·t).
type Cooling interface {
	Temperature(p TemperatureParams) (TemperatureResult, error)
	TimeToReach(p CoolingTimeParams) (CoolingTimeResult, error)
	SolveRate(p CoolingRateParams) (CoolingRateResult, error)
	Offset(p OffsetParams) (OffsetResult, error)
	Table(p CoolingTableParams) (CoolingTableResult, error)
}

// Decay exposes radioactive decay, N(t) = N0·e^(-k·t).
type Decay interface {
	Quantity(p QuantityParams) (QuantityResult, error)
	TimeToReach(p DecayTimeParams) (DecayTimeResult, error)
	SolveRate(p DecayRateParams) (DecayRateResult, error)
	InitialQuantity(p InitialQuantityParams) (InitialQuantityResult, error)
	HalfLife(k float64) (HalfLifeResult, error)
	Table(p DecayTableParams) (DecayTableResult, error)
}

// Service aggregates the calculators used by the HTTP and console layers.
type Service struct {
	Cooling Cooling
	Decay   Decay
}

func NewService(limits Limits) *Service {
	return &Service{
		Cooling: NewCoolingService(limits),
		Decay:   NewDecayService(limits),
	}
}
