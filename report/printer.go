// Package report renders statistics and raw trip pages to the console.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

// RuleWidth is the width of the dashed separator printed between sections.
const RuleWidth = 40

// ResolveColors decides whether to colour output. An explicit disable wins,
// then NO_COLOR and TERM=dumb, then the configured default.
func ResolveColors(disabled, configColors bool) bool {
	if disabled {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return configColors
}

// Printer handles formatted output to the terminal
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
	renderer  *lipgloss.Renderer
	styles    styles
}

// NewPrinter creates a printer writing to out and err.
func NewPrinter(out, err io.Writer, useColors bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if !useColors {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		out:       out,
		err:       err,
		useColors: useColors,
		renderer:  r,
		styles:    newStyles(r),
	}
}

// Out returns the writer regular output goes to.
func (p *Printer) Out() io.Writer { return p.out }

// Print prints a plain line.
func (p *Printer) Print(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Prompt prints text without a trailing newline.
func (p *Printer) Prompt(text string) {
	fmt.Fprint(p.out, text)
}

// Info prints an informational message
func (p *Printer) Info(format string, args ...any) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Invalid reports rejected user input. It goes to regular output so it stays
// in line with the prompt it refers to.
func (p *Printer) Invalid(format string, args ...any) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Error prints an error message
func (p *Printer) Error(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
	}
}

// Rule prints the dashed section separator.
func (p *Printer) Rule() {
	fmt.Fprintln(p.out, strings.Repeat("-", RuleWidth))
}

// Heading prints a section title surrounded by blank lines.
func (p *Printer) Heading(title string) {
	fmt.Fprintf(p.out, "\n%s\n\n", p.styles.heading.Render(title))
}

// Label renders a statistic label.
func (p *Printer) Label(text string) string {
	return p.styles.label.Render(text)
}

// Dim returns dimmed text
func (p *Printer) Dim(text string) string {
	return p.styles.dim.Render(text)
}
