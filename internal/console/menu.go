// Package console implements the interactive text menu over an
// io.Reader/io.Writer pair.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"growth_decay/internal/logger"
	"growth_decay/internal/service"
)

const appTitle = "GROWTH & DECAY CALCULATOR"

type menuItem struct {
	key   string
	label string
}

var mainMenu = []menuItem{
	{"1", "Newton's law of cooling"},
	{"2", "Radioactive decay"},
	{"3", "About the models"},
	{"4", "Clear saved constants"},
	{"5", "Exit"},
}

// Console runs menu sessions against the calculators.
type Console struct {
	services *service.Service
	session  *Session
	prompt   *prompter
	view     *display
	log      *logger.Logger
}

// New builds a console reading answers from in and writing to out.
// log may be nil.
func New(services *service.Service, in io.Reader, out io.Writer, log *logger.Logger) *Console {
	view := newDisplay(out)
	return &Console{
		services: services,
		session:  NewSession(),
		prompt:   newPrompter(in, out, view.ui),
		view:     view,
		log:      log,
	}
}

// Session exposes the constants accumulated so far.
func (c *Console) Session() *Session { return c.session }

// Run shows the main menu until the user exits, input ends or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	if c.log != nil {
		c.log.Debugw("menu_session_started")
	}
	for {
		if ctx.Err() != nil {
			return nil
		}
		c.view.clear()
		c.view.heading(appTitle)
		c.view.menu(mainMenu)

		sel, err := c.prompt.choice("Select an option (1-5): ")
		if err != nil {
			return c.finish(err)
		}
		switch sel {
		case "1":
			err = c.coolingMenu(ctx)
		case "2":
			err = c.decayMenu(ctx)
		case "3":
			c.about()
			err = c.pause()
		case "4":
			c.session.Reset()
			c.view.success("Saved constants cleared.")
			err = c.pause()
		case "5", "q", "exit":
			c.view.success("Thanks for using the calculator.")
			return c.finish(nil)
		default:
			c.view.failure("invalid option, choose 1 to 5")
			err = c.pause()
		}
		if err != nil {
			return c.finish(err)
		}
	}
}

// finish treats exhausted input as a normal end of session.
func (c *Console) finish(err error) error {
	if errors.Is(err, errEndOfInput) {
		err = nil
	}
	if c.log != nil {
		c.log.Debugw("menu_session_ended", "err", err)
	}
	return err
}

// pause waits for ENTER on a terminal so results stay visible before the
// next clear. Piped input is never consumed.
func (c *Console) pause() error {
	if !c.view.interactive {
		return nil
	}
	_, err := c.prompt.line("\nPress ENTER to continue...")
	return err
}

// report shows a calculator error. Unexpected errors are logged, not shown.
func (c *Console) report(err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrNotComputable):
		c.view.failure(err.Error())
	default:
		if c.log != nil {
			c.log.Errorw("menu_calculation_failed", "err", err)
		}
		c.view.failure("calculation failed")
	}
}

func (c *Console) about() {
	c.view.heading("ABOUT THE MODELS")
	fmt.Fprintln(c.view.out, `
  Newton's law of cooling
    T(t) = Tm + C·e^(K·t)
    Tm  ambient temperature
    C   initial offset, T(0) - Tm
    K   rate constant: negative cools, positive heats, zero keeps T constant
    The object approaches Tm but never reaches it in finite time.

  Radioactive decay
    N(t) = N0·e^(-k·t)
    N0      initial quantity (> 0)
    k       decay constant (> 0)
    t_half  half-life, t_half = ln2 / k
    Exact extinction (N = 0) is only reached asymptotically.`)
}
