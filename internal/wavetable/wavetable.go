// Package wavetable formats per-shutter wavelength limits as a report: an
// in-memory table plus a fixed-width text form with a two-line column header
// (names, then dashes) under a short "##" metadata block.
package wavetable

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/signalsfoundry/msaviz/core"
	"github.com/signalsfoundry/msaviz/model"
	"github.com/signalsfoundry/msaviz/refdata"
)

// Masked is the placeholder written for absent wavelengths.
const Masked = "--"

// Columns names the table columns in order. Wavelengths are in microns.
var Columns = []string{"Quadrant", "Column", "Row", "NRS1-min", "NRS1-max", "NRS2-min", "NRS2-max"}

// ErrMalformedTable is returned by Parse for text that is not a wavelength table.
var ErrMalformedTable = errors.New("malformed wavelength table")

// Meta is the report header.
type Meta struct {
	ConfigFile string
	Filter     string
	Grating    string
}

// Row is one open shutter.
type Row struct {
	Quadrant, Column, Row int
	Limits                model.ShutterLimits
}

// Table is a wavelength report sorted by quadrant, column and row.
type Table struct {
	Meta Meta
	Rows []Row
}

// Build turns per-shutter limits into a sorted table.
func Build(limits map[model.Shutter]model.ShutterLimits, meta Meta) *Table {
	t := &Table{Meta: meta, Rows: make([]Row, 0, len(limits))}
	for sh, lim := range limits {
		q, c, r := sh.MSA()
		t.Rows = append(t.Rows, Row{Quadrant: q, Column: c, Row: r, Limits: lim})
	}
	sort.Slice(t.Rows, func(a, b int) bool { return t.Rows[a].less(t.Rows[b]) })
	return t
}

// FromResult builds the table of a completed computation, naming the filter
// and grating as the caller supplied them.
func FromResult(res *core.Result, filter, grating string) *Table {
	return Build(res.Limits, Meta{ConfigFile: res.ConfigPath, Filter: filter, Grating: grating})
}

// Calculate parses an MSA configuration file, computes the limits of its
// open shutters and returns them as a table.
func Calculate(ctx context.Context, reg *refdata.Registry, path, filter, grating string, opts ...core.MSAConfigOption) (*Table, error) {
	res, err := core.CalculateWavelengths(ctx, reg, path, filter, grating, opts...)
	if err != nil {
		return nil, err
	}
	return FromResult(res, filter, grating), nil
}

func (r Row) less(o Row) bool {
	if r.Quadrant != o.Quadrant {
		return r.Quadrant < o.Quadrant
	}
	if r.Column != o.Column {
		return r.Column < o.Column
	}
	return r.Row < o.Row
}

// cells renders the row in column order.
func (r Row) cells() []string {
	out := []string{strconv.Itoa(r.Quadrant), strconv.Itoa(r.Column), strconv.Itoa(r.Row)}
	for side := 0; side < model.Sides; side++ {
		lim := r.Limits[side]
		if !lim.Valid {
			out = append(out, Masked, Masked)
			continue
		}
		out = append(out, formatMicrons(lim.Min), formatMicrons(lim.Max))
	}
	return out
}

func formatMicrons(v float64) string { return fmt.Sprintf("%6.4f", v) }

// WriteTo writes the text form of the table.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	fmt.Fprintf(cw, "## MSA Config File: %s\n", t.Meta.ConfigFile)
	fmt.Fprintf(cw, "## %d open shutters\n", len(t.Rows))
	fmt.Fprintf(cw, "## Filter: %s\n", t.Meta.Filter)
	fmt.Fprintf(cw, "## Grating: %s\n", t.Meta.Grating)
	fmt.Fprintln(cw)

	body := make([][]string, len(t.Rows))
	widths := make([]int, len(Columns))
	for k, name := range Columns {
		widths[k] = len(name)
	}
	for k, row := range t.Rows {
		body[k] = row.cells()
		for c, cell := range body[k] {
			widths[c] = max(widths[c], len(cell))
		}
	}

	dashes := make([]string, len(Columns))
	for k, wd := range widths {
		dashes[k] = strings.Repeat("-", wd)
	}
	writeLine(cw, Columns, widths)
	writeLine(cw, dashes, widths)
	for _, cells := range body {
		writeLine(cw, cells, widths)
	}

	if cw.err != nil {
		return cw.n, cw.err
	}
	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

func writeLine(w io.Writer, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for k, cell := range cells {
		padded[k] = fmt.Sprintf("%*s", widths[k], cell)
	}
	fmt.Fprintln(w, strings.Join(padded, " "))
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

// Parse reads the text form written by WriteTo. Column positions come from
// the dashes line, so any consistent column widths are accepted.
func Parse(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	t := &Table{}
	declared := -1
	lineNo := 0

	var names string
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "##") {
			names = line
			break
		}
		meta := strings.TrimSpace(strings.TrimPrefix(line, "##"))
		switch {
		case strings.HasPrefix(meta, "MSA Config File:"):
			t.Meta.ConfigFile = strings.TrimSpace(strings.TrimPrefix(meta, "MSA Config File:"))
		case strings.HasPrefix(meta, "Filter:"):
			t.Meta.Filter = strings.TrimSpace(strings.TrimPrefix(meta, "Filter:"))
		case strings.HasPrefix(meta, "Grating:"):
			t.Meta.Grating = strings.TrimSpace(strings.TrimPrefix(meta, "Grating:"))
		case strings.HasSuffix(meta, "open shutters"):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(meta, "open shutters")))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad shutter count", ErrMalformedTable, lineNo)
			}
			declared = n
		}
	}
	if names == "" {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: no column header", ErrMalformedTable)
	}
	if got := strings.Fields(names); strings.Join(got, " ") != strings.Join(Columns, " ") {
		return nil, fmt.Errorf("%w: line %d: columns %v", ErrMalformedTable, lineNo, got)
	}

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing dashes line", ErrMalformedTable)
	}
	lineNo++
	spans, err := columnSpans(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedTable, lineNo, err)
	}

	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := parseRow(line, spans)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedTable, lineNo, err)
		}
		t.Rows = append(t.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if declared >= 0 && declared != len(t.Rows) {
		return nil, fmt.Errorf("%w: header declares %d shutters, found %d", ErrMalformedTable, declared, len(t.Rows))
	}
	return t, nil
}

type span struct{ start, end int }

func columnSpans(dashes string) ([]span, error) {
	var spans []span
	start := -1
	for k, ch := range dashes + " " {
		switch {
		case ch == '-' && start < 0:
			start = k
		case ch == ' ' && start >= 0:
			spans = append(spans, span{start, k})
			start = -1
		case ch != '-' && ch != ' ':
			return nil, fmt.Errorf("unexpected %q in dashes line", ch)
		}
	}
	if len(spans) != len(Columns) {
		return nil, fmt.Errorf("dashes line has %d columns, want %d", len(spans), len(Columns))
	}
	return spans, nil
}

func parseRow(line string, spans []span) (Row, error) {
	cells := make([]string, len(spans))
	for k, sp := range spans {
		if sp.start >= len(line) {
			return Row{}, fmt.Errorf("row too short for column %s", Columns[k])
		}
		cells[k] = strings.TrimSpace(line[sp.start:min(sp.end, len(line))])
	}

	var row Row
	ints := []*int{&row.Quadrant, &row.Column, &row.Row}
	for k, dst := range ints {
		v, err := strconv.Atoi(cells[k])
		if err != nil {
			return Row{}, fmt.Errorf("%s: %v", Columns[k], err)
		}
		*dst = v
	}
	if _, err := model.NewShutter(row.Quadrant, row.Column, row.Row); err != nil {
		return Row{}, err
	}

	for side := 0; side < model.Sides; side++ {
		lo, hi := cells[3+2*side], cells[4+2*side]
		if lo == Masked && hi == Masked {
			continue
		}
		wmin, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return Row{}, fmt.Errorf("%s: %v", Columns[3+2*side], err)
		}
		wmax, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return Row{}, fmt.Errorf("%s: %v", Columns[4+2*side], err)
		}
		row.Limits[side] = model.Limit{Min: wmin, Max: wmax, Valid: true}
	}
	return row, nil
}
