package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"overload-resolver/internal/diagnostic"
)

type palette struct {
	ok, fail, err, warn, info, dim *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		ok:   color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		err:  color.New(color.FgRed),
		warn: color.New(color.FgYellow),
		info: color.New(color.FgCyan),
		dim:  color.New(color.Faint),
	}

	for _, c := range []*color.Color{p.ok, p.fail, p.err, p.warn, p.info, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// WriteText writes one line per result followed by the diagnostics and a
// summary line.
func WriteText(w io.Writer, r Report, useColor bool) error {
	p := newPalette(useColor)

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", p.dim.Sprint("scenario"), r.Scenario)

	for _, res := range r.Results {
		mark := p.ok.Sprint("ok  ")
		if !res.Met {
			mark = p.fail.Sprint("FAIL")
		}

		fmt.Fprintf(&b, "%s %-12s %s -> %s", mark, res.Site, res.Expression, res.Got)

		if res.Phase != "" {
			fmt.Fprintf(&b, " %s", p.dim.Sprintf("[%s]", res.Phase))
		}

		if res.Constant != "" {
			fmt.Fprintf(&b, " %s", p.dim.Sprintf("= %s", res.Constant))
		}

		if !res.Met {
			fmt.Fprintf(&b, " %s", p.fail.Sprintf("(expected %s)", res.Expect))
		}

		b.WriteByte('\n')
	}

	writeDiagnostics(&b, p.err, r.Diagnostics.Errors)
	writeDiagnostics(&b, p.warn, r.Diagnostics.Warnings)
	writeDiagnostics(&b, p.info, r.Diagnostics.Infos)

	summary := fmt.Sprintf("%d results, %d failed, %d errors, %d warnings",
		len(r.Results), r.Failed(), len(r.Diagnostics.Errors), len(r.Diagnostics.Warnings))
	if r.Failed() > 0 || r.Diagnostics.HasErrors() {
		summary = p.fail.Sprint(summary)
	} else {
		summary = p.ok.Sprint(summary)
	}

	b.WriteString(summary)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())

	return err
}

func writeDiagnostics(b *strings.Builder, c *color.Color, diags []diagnostic.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(b, "%s %s\n", c.Sprintf("%-7s", d.Severity), d.String())
	}
}
