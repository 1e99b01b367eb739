package console

// CoolingConstants describe one cooling trajectory.
type CoolingConstants struct {
	Tm float64
	C  float64
	K  float64
}

// DecayConstants describe one decay law. N0 is zero until it is known.
type DecayConstants struct {
	N0       float64
	K        float64
	HalfLife float64
}

// Session carries the constants computed so far between menu actions.
type Session struct {
	cooling    CoolingConstants
	hasCooling bool
	decay      DecayConstants
	hasDecay   bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Cooling() (CoolingConstants, bool) {
	return s.cooling, s.hasCooling
}

func (s *Session) SetCooling(c CoolingConstants) {
	s.cooling, s.hasCooling = c, true
}

func (s *Session) Decay() (DecayConstants, bool) {
	return s.decay, s.hasDecay
}

// SetDecay replaces the decay constants. A zero N0 keeps the known one.
func (s *Session) SetDecay(d DecayConstants) {
	if d.N0 == 0 && s.hasDecay {
		d.N0 = s.decay.N0
	}
	s.decay, s.hasDecay = d, true
}

// Reset forgets everything.
func (s *Session) Reset() {
	*s = Session{}
}
