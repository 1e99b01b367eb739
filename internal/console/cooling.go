package console

import (
	"context"
	"fmt"

	"growth_decay/internal/models"
	"growth_decay/internal/service"
)

var coolingItems = []menuItem{
	{"1", "Temperature at time t"},
	{"2", "Time to reach a temperature"},
	{"3", "Fit K from two readings"},
	{"4", "Offset constant C"},
	{"5", "Temperature table and chart"},
	{"6", "Enter new constants"},
	{"0", "Back to main menu"},
}

func (c *Console) coolingMenu(ctx context.Context) error {
	for ctx.Err() == nil {
		c.view.clear()
		c.view.heading("NEWTON'S LAW OF COOLING")
		if cc, ok := c.session.Cooling(); ok {
			c.view.note(fmt.Sprintf("Current constants: Tm = %g °C | C = %g | K = %g", cc.Tm, cc.C, cc.K))
		}
		c.view.menu(coolingItems)

		sel, err := c.prompt.choice("Select an option (0-6): ")
		if err != nil {
			return err
		}
		switch sel {
		case "1":
			err = c.coolingTemperature()
		case "2":
			err = c.coolingTime()
		case "3":
			err = c.coolingRate()
		case "4":
			err = c.coolingOffset()
		case "5":
			err = c.coolingTable()
		case "6":
			_, err = c.enterCoolingConstants()
		case "0", "b":
			return nil
		default:
			c.view.failure("invalid option, choose 0 to 6")
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

// coolingConstants offers the session constants, or asks for new ones.
func (c *Console) coolingConstants() (CoolingConstants, error) {
	if cc, ok := c.session.Cooling(); ok {
		reuse, err := c.prompt.confirm(fmt.Sprintf("Use Tm=%g, C=%g, K=%g? [Y/n]: ", cc.Tm, cc.C, cc.K), true)
		if err != nil || reuse {
			return cc, err
		}
	}
	return c.enterCoolingConstants()
}

func (c *Console) enterCoolingConstants() (CoolingConstants, error) {
	var cc CoolingConstants
	var err error

	fmt.Fprintln(c.view.out, "\nEnter the model constants:")
	if cc.Tm, err = c.prompt.number("  Ambient temperature Tm (°C): "); err != nil {
		return cc, err
	}
	derive, err := c.prompt.confirm("  Derive C from the initial temperature? [y/N]: ", false)
	if err != nil {
		return cc, err
	}
	if derive {
		t0, err := c.prompt.number("  Initial temperature T(0) (°C): ")
		if err != nil {
			return cc, err
		}
		res, err := c.services.Cooling.Offset(service.OffsetParams{Initial: t0, Tm: cc.Tm})
		if err != nil {
			c.report(err)
			derive = false
		} else {
			cc.C = res.C
			c.view.success("C computed: " + res.Formula)
		}
	}
	if !derive {
		if cc.C, err = c.prompt.number("  Constant C: "); err != nil {
			return cc, err
		}
	}
	if cc.K, err = c.prompt.number("  Constant K (negative for cooling): "); err != nil {
		return cc, err
	}
	c.session.SetCooling(cc)
	return cc, nil
}

func (c *Console) coolingTemperature() error {
	cc, err := c.coolingConstants()
	if err != nil {
		return err
	}
	t, err := c.prompt.number("  Elapsed time t (min): ", atLeast(0))
	if err != nil {
		return err
	}
	res, err := c.services.Cooling.Temperature(service.TemperatureParams{Tm: cc.Tm, C: cc.C, K: cc.K, T: t})
	if err != nil {
		c.report(err)
		return nil
	}
	c.view.separator()
	c.view.field(fmt.Sprintf("Temperature after %g min", t), fmt2(res.Temperature)+" °C")
	c.view.note(res.Formula)
	c.view.separator()
	return nil
}

func (c *Console) coolingTime() error {
	cc, err := c.coolingConstants()
	if err != nil {
		return err
	}
	target, err := c.prompt.number("  Target temperature (°C): ")
	if err != nil {
		return err
	}
	res, err := c.services.Cooling.TimeToReach(service.CoolingTimeParams{Tm: cc.Tm, C: cc.C, K: cc.K, Target: target})
	if err != nil {
		c.report(err)
		return nil
	}
	c.view.separator()
	if res.Infinite {
		c.view.warning("the object never reaches exactly that temperature")
	} else {
		c.view.field("Time needed", fmt.Sprintf("%s min (%s h)", fmt2(res.Minutes), fmt2(res.Hours)))
	}
	c.view.separator()
	return nil
}

func (c *Console) coolingRate() error {
	var p service.CoolingRateParams
	var err error

	fmt.Fprintln(c.view.out, "\nEnter the readings:")
	if p.T0, err = c.prompt.number("  Initial temperature T(0) (°C): "); err != nil {
		return err
	}
	if p.Tm, err = c.prompt.number("  Ambient temperature Tm (°C): "); err != nil {
		return err
	}
	if p.TempAtT, err = c.prompt.number("  Temperature measured at time t (°C): "); err != nil {
		return err
	}
	if p.T, err = c.prompt.number("  Time t of the measurement (min): ", above(0)); err != nil {
		return err
	}

	res, err := c.services.Cooling.SolveRate(p)
	if err != nil {
		c.report(err)
		return nil
	}
	c.session.SetCooling(CoolingConstants{Tm: res.Tm, C: res.C, K: res.K})

	c.view.separator()
	c.view.field("Constant K", fmt6(res.K)+" 1/min")
	c.view.field("Constant C", fmt2(res.C)+" °C")
	c.view.note(res.Formula)
	c.view.field(fmt.Sprintf("Check at t=%g min", res.At), fmt2(res.Verification)+" °C")
	c.view.note(processNote(res.Process))
	c.view.separator()
	return nil
}

func processNote(p models.Process) string {
	switch p {
	case models.ProcessCooling:
		return "K < 0: the object is cooling"
	case models.ProcessHeating:
		return "K > 0: the object is heating"
	default:
		return "K = 0: the temperature stays constant"
	}
}

func (c *Console) coolingOffset() error {
	initial, err := c.prompt.number("  Initial temperature T(0) (°C): ")
	if err != nil {
		return err
	}
	tm, err := c.prompt.number("  Ambient temperature Tm (°C): ")
	if err != nil {
		return err
	}
	res, err := c.services.Cooling.Offset(service.OffsetParams{Initial: initial, Tm: tm})
	if err != nil {
		c.report(err)
		return nil
	}
	c.view.separator()
	c.view.field("Constant C", fmt2(res.C))
	c.view.note(res.Formula)
	c.view.field("Type", string(res.Class))
	c.view.note(res.Class.Description())
	c.view.note(res.Class.Behavior())
	c.view.separator()
	return nil
}

func (c *Console) coolingTable() error {
	cc, err := c.coolingConstants()
	if err != nil {
		return err
	}
	total, err := c.prompt.number("  Total time to simulate (min): ", above(0))
	if err != nil {
		return err
	}
	step, err := c.prompt.number("  Interval between readings (min): ", above(0))
	if err != nil {
		return err
	}
	res, err := c.services.Cooling.Table(service.CoolingTableParams{
		Tm: cc.Tm, C: cc.C, K: cc.K, Total: total, Step: step,
	})
	if err != nil {
		c.report(err)
		return nil
	}

	caption := fmt.Sprintf("T(t) = %g + %g·e^(%g·t)", res.Tm, res.C, res.K)
	c.view.heading("TABLE  " + caption)
	rows := make([][]string, len(res.Points))
	temps := make([]float64, len(res.Points))
	for i, p := range res.Points {
		rows[i] = []string{fmt2(p.Time), fmt2(p.Temperature)}
		temps[i] = p.Temperature
	}
	c.view.table([]string{"Time (min)", "Temperature (°C)"}, rows)
	c.view.chart(temps, caption)
	return nil
}
