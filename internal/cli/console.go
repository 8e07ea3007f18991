package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/shivanshkc/ctbench/pkg/ctbench"
	"github.com/shivanshkc/ctbench/pkg/harness"
	"github.com/shivanshkc/ctbench/pkg/utils/miscutils"
)

// console renders harness events as text.
type console struct {
	w io.Writer
	// width is the longest bench name, for alignment.
	width   int
	results []harness.Event
}

func newConsole(w io.Writer, benches []harness.Bench) *console {
	c := &console{w: w}
	for _, b := range benches {
		c.width = max(c.width, len(b.Name))
	}
	return c
}

func (c *console) handle(e harness.Event) error {
	var err error
	switch e.Kind {
	case harness.EventBegin:
		noun := "benches"
		if len(e.Names) == 1 {
			noun = "bench"
		}
		_, err = fmt.Fprintf(c.w, "\nrunning %d %s\n", len(e.Names), noun)
	case harness.EventContinuousStart:
		_, err = fmt.Fprintln(c.w, "running 1 benchmark continuously")
	case harness.EventSeed:
		_, err = fmt.Fprintf(c.w, "bench %s seeded with 0x%016x\n", c.pad(e.Name), e.Seed)
	case harness.EventWait:
		_, err = fmt.Fprintf(c.w, "bench %s ... ", c.pad(e.Name))
	case harness.EventResult:
		c.results = append(c.results, e)
		_, err = fmt.Fprintf(c.w, ": %s\n", resultLine(e))
	}
	return err
}

func (c *console) pad(name string) string {
	return miscutils.PadRight(name, c.width)
}

// finish prints the summary table after a one-shot run.
func (c *console) finish(continuous bool) error {
	if !continuous && len(c.results) > 0 {
		renderSummary(c.w, c.results)
	}
	_, err := fmt.Fprint(c.w, "\nctbench benches complete\n\n")
	return err
}

func resultLine(e harness.Event) string {
	if e.Err != nil {
		return "insufficient data"
	}
	return e.Report.String()
}

func verdict(e harness.Event) string {
	switch {
	case errors.Is(e.Err, ctbench.ErrInsufficientData):
		return text.FgYellow.Sprint("insufficient data")
	case e.Report.Leaky():
		return text.FgRed.Sprint("likely leak")
	default:
		return text.FgGreen.Sprint("no evidence")
	}
}

// renderSummary writes one table row per bench result.
func renderSummary(w io.Writer, results []harness.Event) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Bench", "n", "max t", "max tau", "(5/tau)^2", "median L", "median R", "verdict"})

	for _, e := range results {
		if e.Err != nil {
			t.AppendRow(table.Row{e.Name, "-", "-", "-", "-", "-", "-", verdict(e)})
			continue
		}
		r := e.Report
		t.AppendRow(table.Row{
			e.Name,
			r.N,
			fmt.Sprintf("%+0.5f", r.MaxT),
			fmt.Sprintf("%+0.5f", r.MaxTau),
			fmt.Sprintf("%.0f", r.MeasurementsToSignificance),
			miscutils.FormatTicks(r.Left.Median),
			miscutils.FormatTicks(r.Right.Median),
			verdict(e),
		})
	}
	fmt.Fprintln(w)
	t.Render()
}
