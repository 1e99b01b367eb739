package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// errEndOfInput ends the session when the input stream is exhausted.
var errEndOfInput = errors.New("end of input")

// prompter reads answers line by line and re-asks until they are acceptable.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	ui  *styles
}

func newPrompter(in io.Reader, out io.Writer, ui *styles) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, ui: ui}
}

// line prints label and returns the trimmed answer.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, p.ui.prompt.Render(label))
	s, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimSpace(s), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", errEndOfInput
		}
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// bounds restrict accepted numbers. A nil end is open.
type bounds struct {
	min      *float64
	max      *float64
	strictly bool // min is exclusive
}

type numberOpt func(*bounds)

func atLeast(v float64) numberOpt {
	return func(b *bounds) { b.min, b.strictly = &v, false }
}

func above(v float64) numberOpt {
	return func(b *bounds) { b.min, b.strictly = &v, true }
}

func atMost(v float64) numberOpt {
	return func(b *bounds) { b.max = &v }
}

// number asks for a finite float until the answer parses and fits the bounds.
func (p *prompter) number(label string, opts ...numberOpt) (float64, error) {
	var b bounds
	for _, o := range opts {
		o(&b)
	}
	for {
		s, err := p.line(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			p.fail("please enter a valid number")
			continue
		}
		if b.min != nil && b.strictly && v <= *b.min {
			p.fail(fmt.Sprintf("the value must be greater than %g", *b.min))
			continue
		}
		if b.min != nil && !b.strictly && v < *b.min {
			p.fail(fmt.Sprintf("the value must be greater than or equal to %g", *b.min))
			continue
		}
		if b.max != nil && v > *b.max {
			p.fail(fmt.Sprintf("the value must be less than or equal to %g", *b.max))
			continue
		}
		return v, nil
	}
}

// choice returns the lower-cased answer.
func (p *prompter) choice(label string) (string, error) {
	s, err := p.line(label)
	return strings.ToLower(s), err
}

// confirm accepts y/yes and n/no; an empty answer takes def.
func (p *prompter) confirm(label string, def bool) (bool, error) {
	for {
		s, err := p.choice(label)
		if err != nil {
			return false, err
		}
		switch s {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.fail("please answer y or n")
	}
}

func (p *prompter) fail(msg string) {
	fmt.Fprintln(p.out, p.ui.err.Render("✗ "+msg))
}
