// Package ui renders human-facing status lines for the CLI.
//
// Styling is applied only when stdout is a terminal; piped output stays
// plain so it can be grepped.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorDim    = lipgloss.Color("#6b7280")

	okStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	failStyle = lipgloss.NewStyle().Foreground(colorRed)
	warnStyle = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	okMark   = "[OK]"
	failMark = "[!!]"
	warnMark = "[??]"
)

// Printer writes status lines to a destination, styled when that
// destination is a terminal.
type Printer struct {
	out     io.Writer
	colored bool
}

// NewPrinter returns a Printer for stdout.
func NewPrinter() *Printer {
	return &Printer{
		out:     os.Stdout,
		colored: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// NewPlainPrinter returns an uncolored Printer for the given writer.
// Used in tests and when output is piped.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{out: w}
}

// Successf prints a green [OK] status line.
func (p *Printer) Successf(format string, args ...any) {
	p.line(okStyle, okMark, format, args...)
}

// Failf prints a red [!!] status line.
func (p *Printer) Failf(format string, args ...any) {
	p.line(failStyle, failMark, format, args...)
}

// Warnf prints a yellow [??] status line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(warnStyle, warnMark, format, args...)
}

// Detailf prints a dimmed detail line without a status mark.
func (p *Printer) Detailf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.colored {
		msg = dimStyle.Render(msg)
	}
	fmt.Fprintf(p.out, "  %s\n", msg)
}

func (p *Printer) line(style lipgloss.Style, mark, format string, args ...any) {
	if p.colored {
		mark = style.Render(mark)
	}
	fmt.Fprintf(p.out, "%s %s\n", mark, fmt.Sprintf(format, args...))
}
