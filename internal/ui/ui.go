// Package ui renders human-facing status output for the tempo CLI on stderr.
package ui

import (
	"fmt"
	"os"

	"github.com/papapumpkin/tempo/internal/ansi"
	"github.com/papapumpkin/tempo/internal/inspect"
)

// Printer writes colored status lines to stderr. Set NoColor to emit plain
// text, e.g. when output is not a terminal.
type Printer struct {
	NoColor bool
}

// New returns a Printer with color enabled.
func New() *Printer {
	return &Printer{}
}

// c returns the escape sequence, or nothing when color is disabled.
func (p *Printer) c(code string) string {
	if p.NoColor {
		return ""
	}
	return code
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, p.c(ansi.Red+ansi.Bold)+"error: "+p.c(ansi.Reset)+"%s\n", msg)
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, p.c(ansi.Dim)+"%s"+p.c(ansi.Reset)+"\n", msg)
}

// CheckReport prints one line per checked key followed by a summary. With
// verbose set, valid keys also show the parsed duration.
func (p *Printer) CheckReport(r *inspect.Report, verbose bool) {
	for _, f := range r.Findings {
		switch {
		case f.OK() && f.NeedsRewrite():
			fmt.Fprintf(os.Stderr, "  "+p.c(ansi.Yellow)+"~ %s"+p.c(ansi.Reset)+" %q → %s\n", f.Key, f.Text, f.Canonical)
		case f.OK():
			fmt.Fprintf(os.Stderr, "  "+p.c(ansi.Green)+"✓ %s"+p.c(ansi.Reset)+" %s\n", f.Key, f.Text)
		default:
			fmt.Fprintf(os.Stderr, "  "+p.c(ansi.Red)+"✗ %s"+p.c(ansi.Reset)+" %s: %v\n", f.Key, f.Status, f.Err)
		}
		if verbose && f.OK() {
			fmt.Fprintf(os.Stderr, "    "+p.c(ansi.Dim)+"= %v"+p.c(ansi.Reset)+"\n", f.Duration)
		}
	}

	if failed := r.Failed(); failed > 0 {
		fmt.Fprintf(os.Stderr, p.c(ansi.Red+ansi.Bold)+"✗ %s"+p.c(ansi.Reset)+" — %d of %d key(s) invalid\n", r.Path, failed, len(r.Findings))
		return
	}
	fmt.Fprintf(os.Stderr, p.c(ansi.Green+ansi.Bold)+"✓ %s"+p.c(ansi.Reset)+" — %d key(s) valid\n", r.Path, len(r.Findings))
}

// Canonicalized prints the values rewritten by check --fix.
func (p *Printer) Canonicalized(path string, changes []inspect.Change) {
	if len(changes) == 0 {
		fmt.Fprintf(os.Stderr, p.c(ansi.Dim)+"%s already canonical"+p.c(ansi.Reset)+"\n", path)
		return
	}
	for _, ch := range changes {
		fmt.Fprintf(os.Stderr, "  "+p.c(ansi.Cyan)+"↻ %s"+p.c(ansi.Reset)+" %q → %q\n", ch.Key, ch.Old, ch.New)
	}
	fmt.Fprintf(os.Stderr, p.c(ansi.Cyan+ansi.Bold)+"rewrote %d value(s) in %s"+p.c(ansi.Reset)+"\n", len(changes), path)
}

// Watching announces that a file is being watched.
func (p *Printer) Watching(path, debounce string) {
	fmt.Fprintf(os.Stderr, "\n"+p.c(ansi.Bold+ansi.Cyan)+"watching %s"+p.c(ansi.Reset)+p.c(ansi.Dim)+" (debounce %s, ctrl-c to stop)"+p.c(ansi.Reset)+"\n", path, debounce)
}

// FileChanged prints a separator before a re-check.
func (p *Printer) FileChanged(path string) {
	fmt.Fprintf(os.Stderr, "\n"+p.c(ansi.Bold)+"── %s changed ──"+p.c(ansi.Reset)+"\n", path)
}

// FileRemoved reports that the watched file disappeared.
func (p *Printer) FileRemoved(path string) {
	fmt.Fprintf(os.Stderr, p.c(ansi.Yellow+ansi.Bold)+"⚠ %s removed"+p.c(ansi.Reset)+" — waiting for it to reappear\n", path)
}
