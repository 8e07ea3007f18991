// Package csvexport writes raw ctbench samples as CSV.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/shivanshkc/ctbench/pkg/ctbench"
)

// Header is the first row of every export.
var Header = []string{"bench", "class", "duration"}

// Writer appends one row per sample: bench name, class literal (L or R), duration in ticks.
type Writer struct {
	w *csv.Writer
}

// NewWriter writes the header to w and returns a Writer for the sample rows.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}
	return &Writer{w: cw}, nil
}

// WriteSamples writes every sample of seq, in order, and flushes.
func (w *Writer) WriteSamples(bench string, seq iter.Seq2[ctbench.Class, uint64]) error {
	row := make([]string, 3)
	row[0] = bench
	for class, ticks := range seq {
		row[1] = class.String()
		row[2] = strconv.FormatUint(ticks, 10)
		if err := w.w.Write(row); err != nil {
			return fmt.Errorf("error writing samples of %s: %w", bench, err)
		}
	}
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return fmt.Errorf("error writing samples of %s: %w", bench, err)
	}
	return nil
}
