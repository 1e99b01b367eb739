package console

import (
	"context"
	"fmt"

	"growth_decay/internal/service"
)

var decayItems = []menuItem{
	{"1", "Quantity at time t"},
	{"2", "Time to reach a quantity"},
	{"3", "Decay constant from half-life"},
	{"4", "Decay constant from measurements"},
	{"5", "Initial quantity N0"},
	{"6", "Half-life from k"},
	{"7", "Quantity table and chart"},
	{"8", "Enter new constants"},
	{"0", "Back to main menu"},
}

func (c *Console) decayMenu(ctx context.Context) error {
	for ctx.Err() == nil {
		c.view.clear()
		c.view.heading("RADIOACTIVE DECAY")
		if dc, ok := c.session.Decay(); ok {
			c.view.note(describeDecay(dc))
		}
		c.view.menu(decayItems)

		sel, err := c.prompt.choice("Select an option (0-8): ")
		if err != nil {
			return err
		}
		switch sel {
		case "1":
			err = c.decayQuantity()
		case "2":
			err = c.decayTime()
		case "3":
			err = c.decayRateFromHalfLife()
		case "4":
			err = c.decayRateFromData()
		case "5":
			err = c.decayInitial()
		case "6":
			err = c.decayHalfLife()
		case "7":
			err = c.decayTable()
		case "8":
			_, err = c.enterDecayConstants()
		case "0", "b":
			return nil
		default:
			c.view.failure("invalid option, choose 0 to 8")
		}
		if err != nil {
			return err
		}
		if err := c.pause(); err != nil {
			return err
		}
	}
	return nil
}

func describeDecay(dc DecayConstants) string {
	if dc.N0 > 0 {
		return fmt.Sprintf("Current constants: N0 = %g | k = %s | t_half = %s", dc.N0, fmt6(dc.K), fmt4(dc.HalfLife))
	}
	return fmt.Sprintf("Current constants: k = %s | t_half = %s", fmt6(dc.K), fmt4(dc.HalfLife))
}

// decayConstants offers complete session constants, or asks for new ones.
func (c *Console) decayConstants() (DecayConstants, error) {
	if dc, ok := c.session.Decay(); ok && dc.N0 > 0 && dc.K > 0 {
		reuse, err := c.prompt.confirm(fmt.Sprintf("Use N0=%g, k=%s? [Y/n]: ", dc.N0, fmt6(dc.K)), true)
		if err != nil || reuse {
			return dc, err
		}
	}
	return c.enterDecayConstants()
}

// enterDecayConstants asks for N0 and either k or the half-life.
func (c *Console) enterDecayConstants() (DecayConstants, error) {
	var dc DecayConstants
	var err error

	fmt.Fprintln(c.view.out, "\nEnter the decay constants:")
	if dc.N0, err = c.prompt.number("  Initial quantity N0: ", above(0)); err != nil {
		return dc, err
	}
	byHalfLife, err := c.prompt.confirm("  Enter the half-life instead of k? [y/N]: ", false)
	if err != nil {
		return dc, err
	}
	if byHalfLife {
		if dc.HalfLife, err = c.prompt.number("  Half-life t_half: ", above(0)); err != nil {
			return dc, err
		}
		res, err := c.services.Decay.SolveRate(service.DecayRateParams{HalfLife: &dc.HalfLife})
		if err != nil {
			c.report(err)
			return dc, nil
		}
		dc.K = res.K
		c.view.success(res.Formula)
	} else {
		if dc.K, err = c.prompt.number("  Decay constant k: ", above(0)); err != nil {
			return dc, err
		}
		res, err := c.services.Decay.HalfLife(dc.K)
		if err != nil {
			c.report(err)
			return dc, nil
		}
		dc.HalfLife = res.HalfLife
	}
	c.session.SetDecay(dc)
	return dc, nil
}

func (c *Console) decayQuantity() error {
	dc, err := c.decayConstants()
	if err != nil || dc.K <= 0 {
		return err
	}
	t, err := c.prompt.number("  Elapsed time t: ", atLeast(0))
	if err != nil {
		return err
	}
	res, err := c.services.Decay.Quantity(service.QuantityParams{N0: dc.N0, K: dc.K, T: t})
	if err != nil {
		c.report(err)
		return nil
	}
	c.view.separator()
	c.view.field(fmt.Sprintf("Quantity after t=%g", t), fmt4(res.N))
	c.view.field("Remaining", fmt2(res.Percent)+" %")
	c.view.note(res.Formula)
	c.view.separator()
	return nil
}

func (c *Console) decayTime() error {
	dc, err := c.decayConstants()
	if err != nil || dc.K <= 0 {
		return err
	}
	target, err := c.prompt.number("  Target quantity N: ", atLeast(0))
	if err != nil {
		return err
	}
	res, err := c.services.Decay.TimeToReach(service.DecayTimeParams{N0: dc.N0, Target: target, K: dc.K})
	if err != nil {
		c.report(err)
		return nil
	}
	c.view.separator()
	if res.Infinite {
		c.view.warning("reaching exactly 0 takes infinite time")
	} else {
		c.view.field("Time needed", fmt4(res.Time))
		c.view.field("Remaining at that time", fmt2(res.Percent)+" %")
	}
	c.view.separator()
	return nil
}

func (c *Console) decayRateFromHalfLife() error {
	hl, err := c.prompt.number("  Half-life t_half: ", above(0))
	if err != nil {
		return err
	}
	res, err := c.services.Decay.SolveRate(service.DecayRateParams{HalfLife: &hl})
	if err != nil {
		c.report(err)
		return nil
	}
	c.session.SetDecay(DecayConstants{K: res.K, HalfLife: hl})

	c.view.separator()
	c.view.field("Decay constant k", fmt6(res.K))
	c.view.note(res.Formula)
	c.view.separator()
	return nil
}

func (c *Console) decayRateFromData() error {
	var p service.DecayRateParams
	var err error

	fmt.Fprintln(c.view.out, "\nEnter the measurements:")
	if p.N0, err = c.prompt.number("  Initial quantity N0: ", above(0)); err != nil {
		return err
	}
	if p.NAtT, err = c.prompt.number("  Quantity measured at time t: ", above(0)); err != nil {
		return err
	}
	if p.T, err = c.prompt.number("  Time t of the measurement: ", above(0)); err != nil {
		return err
	}
	res, err := c.services.Decay.SolveRate(p)
	if err != nil {
		c.report(err)
		return nil
	}

	c.view.separator()
	c.view.field("Decay constant k", fmt6(res.K))
	if hl, ok := res.HalfLife.Get(); ok {
		c.view.field("Half-life", fmt4(hl))
		c.session.SetDecay(DecayConstants{N0: res.N0, K: res.K, HalfLife: hl})
	} else {
		c.view.warning("no decay observed: the half-life is infinite")
	}
	c.view.field("Remaining at t", fmt2(res.Percent)+" %")
	c.view.field(fmt.Sprintf("Check at t=%g", res.T), fmt4(res.Verification))
	c.view.note(res.Formula)
	c.view.separator()
	return nil
}

func (c *Console) decayInitial() error {
	var p service.InitialQuantityParams
	var err error

	if p.N, err = c.prompt.number("  Quantity N at time t: ", atLeast(0)); err != nil {
		return err
	}
	if p.K, err = c.prompt.number("  Decay constant k: ", above(0)); err != nil {
		return err
	}
	if p.T, err = c.prompt.number("  Elapsed time t: ", atLeast(0)); err != nil {
		return err
	}
	res, err := c.services.Decay.InitialQuantity(p)
	if err != nil {
		c.report(err)
		return nil
	}
	c.view.separator()
	c.view.field("Initial quantity N0", fmt4(res.N0))
	c.view.note(res.Formula)
	c.view.separator()
	return nil
}

func (c *Console) decayHalfLife() error {
	k, err := c.prompt.number("  Decay constant k: ", above(0))
	if err != nil {
		return err
	}
	res, err := c.services.Decay.HalfLife(k)
	if err != nil {
		c.report(err)
		return nil
	}
	c.view.separator()
	c.view.field("Half-life", fmt4(res.HalfLife))
	c.view.separator()
	return nil
}

func (c *Console) decayTable() error {
	dc, err := c.decayConstants()
	if err != nil || dc.K <= 0 {
		return err
	}
	total, err := c.prompt.number("  Total time: ", above(0))
	if err != nil {
		return err
	}
	step, err := c.prompt.number("  Interval between readings: ", above(0))
	if err != nil {
		return err
	}
	res, err := c.services.Decay.Table(service.DecayTableParams{N0: dc.N0, K: dc.K, Total: total, Step: step})
	if err != nil {
		c.report(err)
		return nil
	}

	caption := fmt.Sprintf("N(t) = %g·e^(-%s·t)", res.N0, fmt6(res.K))
	c.view.heading("TABLE  " + caption)
	c.view.note("t_half = " + fmt4(res.HalfLife))
	rows := make([][]string, len(res.Points))
	values := make([]float64, len(res.Points))
	for i, p := range res.Points {
		rows[i] = []string{fmt4(p.Time), fmt4(p.Quantity), fmt2(p.PercentRemaining)}
		values[i] = p.Quantity
	}
	c.view.table([]string{"Time", "Quantity N", "Remaining (%)"}, rows)
	c.view.chart(values, caption)
	return nil
}
