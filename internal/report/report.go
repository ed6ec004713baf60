// Package report prints diagnostics, run summaries and before/after diffs
// for the command line.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"dts-restore/internal/diagnostic"
	"dts-restore/internal/resolve"
)

// ColorEnabled reports whether w is a terminal.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes human-readable reports.
type Printer struct {
	w io.Writer

	warnColor *color.Color
	infoColor *color.Color
	codeColor *color.Color
	addColor  *color.Color
	delColor  *color.Color
}

// NewPrinter creates a Printer writing to w, with or without ANSI colors.
func NewPrinter(w io.Writer, useColor bool) *Printer {
	p := &Printer{
		w:         w,
		warnColor: color.New(color.FgYellow, color.Bold),
		infoColor: color.New(color.FgCyan),
		codeColor: color.RGB(74, 92, 138),
		addColor:  color.New(color.FgGreen),
		delColor:  color.New(color.FgRed),
	}

	for _, c := range p.colors() {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *Printer) colors() []*color.Color {
	return []*color.Color{p.warnColor, p.infoColor, p.codeColor, p.addColor, p.delColor}
}

func (p *Printer) severity(s diagnostic.Severity) *color.Color {
	if s == diagnostic.SeverityWarning {
		return p.warnColor
	}

	return p.infoColor
}

// Diagnostics writes one line per diagnostic, warnings first.
func (p *Printer) Diagnostics(d *diagnostic.Diagnostics) error {
	if d == nil {
		return nil
	}

	for _, diag := range d.All() {
		err := p.diagnostic(diag)
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) diagnostic(d diagnostic.Diagnostic) error {
	where := d.Subject
	if d.Property != "" {
		where += ": " + d.Property
	}

	line := fmt.Sprintf("%s %s %s", p.severity(d.Severity).Sprint(d.Severity.String()), p.codeColor.Sprint("["+d.Code+"]"), d.Message)
	if where != "" {
		line = where + ": " + line
	}

	if len(d.Suggestions) > 0 {
		line += fmt.Sprintf(" (did you mean %s?)", d.Suggestions[0])
	}

	_, err := fmt.Fprintln(p.w, line)

	return err
}

// Summary writes a one-line count of what a resolution pass did.
func (p *Printer) Summary(stats resolve.Stats, d *diagnostic.Diagnostics) error {
	warnings := 0
	if d != nil {
		warnings = len(d.Warnings)
	}

	counts := fmt.Sprintf("%d warnings", warnings)
	if warnings > 0 {
		counts = p.warnColor.Sprint(counts)
	}

	_, err := fmt.Fprintf(p.w, "resolved %d of %d list properties, split %d string properties, %s\n",
		stats.Matched, stats.Lists, stats.Split, counts)

	return err
}
