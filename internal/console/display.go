package console

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-isatty"
)

const (
	lineWidth   = 60
	chartHeight = 10
	chartWidth  = 60
)

// styles are bound to the output's renderer so colours degrade to plain
// text when out is not a terminal.
type styles struct {
	title  lipgloss.Style
	rule   lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	subtle lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	err    lipgloss.Style
	prompt lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
}

func newStyles(out io.Writer) *styles {
	r := lipgloss.NewRenderer(out)
	return &styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff")),
		rule:   r.NewStyle().Foreground(lipgloss.Color("#444466")),
		label:  r.NewStyle().Foreground(lipgloss.Color("#888899")),
		value:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88")),
		subtle: r.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true),
		ok:     r.NewStyle().Foreground(lipgloss.Color("#00ff88")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("#ffaa00")),
		err:    r.NewStyle().Foreground(lipgloss.Color("#ff4444")),
		prompt: r.NewStyle().Foreground(lipgloss.Color("#ff00ff")),
		header: r.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#00ccff")),
		cell:   r.NewStyle().Padding(0, 1).Align(lipgloss.Right),
	}
}

// display renders menus and results.
type display struct {
	out         io.Writer
	ui          *styles
	interactive bool
}

func newDisplay(out io.Writer) *display {
	return &display{out: out, ui: newStyles(out), interactive: isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (d *display) clear() {
	if d.interactive {
		fmt.Fprint(d.out, "\033[H\033[2J")
	}
}

func (d *display) heading(title string) {
	rule := d.ui.rule.Render(strings.Repeat("=", lineWidth))
	fmt.Fprintf(d.out, "\n%s\n  %s\n%s\n", rule, d.ui.title.Render(title), rule)
}

func (d *display) separator() {
	fmt.Fprintln(d.out, d.ui.rule.Render(strings.Repeat("-", lineWidth)))
}

// menu prints numbered options; keys are shown as given.
func (d *display) menu(items []menuItem) {
	fmt.Fprintln(d.out)
	for _, it := range items {
		fmt.Fprintf(d.out, "  %s. %s\n", d.ui.value.Render(it.key), it.label)
	}
	fmt.Fprintln(d.out)
}

func (d *display) field(label string, value string) {
	fmt.Fprintf(d.out, "  %s %s\n", d.ui.label.Render(label+":"), d.ui.value.Render(value))
}

func (d *display) note(msg string) {
	fmt.Fprintln(d.out, "  "+d.ui.subtle.Render(msg))
}

func (d *display) success(msg string) {
	fmt.Fprintln(d.out, d.ui.ok.Render("✓ "+msg))
}

func (d *display) warning(msg string) {
	fmt.Fprintln(d.out, d.ui.warn.Render("⚠ "+msg))
}

func (d *display) failure(msg string) {
	fmt.Fprintln(d.out, d.ui.err.Render("✗ "+msg))
}

// table renders rows under headers with right-aligned cells.
func (d *display) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(d.ui.rule).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return d.ui.header
			}
			return d.ui.cell
		})
	fmt.Fprintln(d.out, t.Render())
}

// chart plots values; trajectories with fewer than two or non-finite points
// are skipped.
func (d *display) chart(values []float64, caption string) {
	if len(values) < 2 {
		return
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, graph)
}

func fmt2(v float64) string { return fmt.Sprintf("%.2f", v) }
func fmt4(v float64) string { return fmt.Sprintf("%.4f", v) }
func fmt6(v float64) string { return fmt.Sprintf("%.6f", v) }
