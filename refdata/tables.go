package refdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path"
	"sort"

	"github.com/jszwec/csvutil"

	"github.com/signalsfoundry/msaviz/model"
)

// dispersionCSV is one row of disp/<grating>.csv.
type dispersionCSV struct {
	Wavelength float64 `csv:"WAVELENGTH"`
	DLDS       float64 `csv:"DLDS"`
}

// prismCSV is one row of prism/q<N>.csv. Empty cells decode as nil.
type prismCSV struct {
	I int `csv:"I"`
	J int `csv:"J"`

	Pix491Start *float64 `csv:"PIX491_START"`
	Pix491End   *float64 `csv:"PIX491_END"`
	Wav491      *float64 `csv:"WAV491"`
	Par491C0    *float64 `csv:"PAR491_0"`
	Par491C1    *float64 `csv:"PAR491_1"`
	Par491C2    *float64 `csv:"PAR491_2"`
	Par491C3    *float64 `csv:"PAR491_3"`

	Pix492Start *float64 `csv:"PIX492_START"`
	Pix492End   *float64 `csv:"PIX492_END"`
	Wav492      *float64 `csv:"WAV492"`
	Par492C0    *float64 `csv:"PAR492_0"`
	Par492C1    *float64 `csv:"PAR492_1"`
	Par492C2    *float64 `csv:"PAR492_2"`
	Par492C3    *float64 `csv:"PAR492_3"`
}

func loadDispersion(fsys fs.FS, grating string) (*Dispersion, error) {
	name := path.Join(dispersionDir, grating+".csv")
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	dec, err := csvutil.NewDecoder(newCSVReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w: %s header: %v", ErrInvalidReference, name, err)
	}
	var rows []dispersionCSV
	if err := dec.Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidReference, name, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %s has %d rows, need at least 2", ErrInvalidReference, name, len(rows))
	}

	sort.Slice(rows, func(a, b int) bool { return rows[a].Wavelength < rows[b].Wavelength })
	d := &Dispersion{
		Wavelength: make([]float64, len(rows)),
		DLDS:       make([]float64, len(rows)),
	}
	for k, row := range rows {
		if !finite(row.Wavelength) || !finite(row.DLDS) {
			return nil, fmt.Errorf("%w: %s row %d is not finite", ErrInvalidReference, name, k+1)
		}
		if k > 0 && row.Wavelength == rows[k-1].Wavelength {
			return nil, fmt.Errorf("%w: %s repeats wavelength %v", ErrInvalidReference, name, row.Wavelength)
		}
		d.Wavelength[k] = row.Wavelength
		d.DLDS[k] = row.DLDS
	}
	return d, nil
}

func (r *Registry) loadPrism(fsys fs.FS) error {
	for q := 0; q < model.Quadrants; q++ {
		name := path.Join(prismDir, fmt.Sprintf("q%d.csv", q+1))
		rows, err := readPrismTable(fsys, name)
		if err != nil {
			return err
		}
		table := make(map[shutterKey]PrismRow, len(rows))
		for _, row := range rows {
			table[shutterKey{column: row.Column, row: row.Row}] = row
		}
		r.prism[q] = table
	}
	r.hasPrism = true
	return nil
}

func readPrismTable(fsys fs.FS, name string) ([]PrismRow, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	dec, err := csvutil.NewDecoder(newCSVReader(f))
	if errors.Is(err, io.EOF) {
		// empty quadrant
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s header: %v", ErrInvalidReference, name, err)
	}
	var raw []prismCSV
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidReference, name, err)
	}

	out := make([]PrismRow, 0, len(raw))
	for k, rr := range raw {
		if rr.I < 1 || rr.I > model.Columns || rr.J < 1 || rr.J > model.Rows {
			return nil, fmt.Errorf("%w: %s row %d names shutter (%d,%d)", ErrInvalidReference, name, k+1, rr.I, rr.J)
		}
		out = append(out, PrismRow{
			Column: rr.I,
			Row:    rr.J,
			Sides: [model.Sides]PrismSide{
				{
					PixStart:   orNaN(rr.Pix491Start),
					PixEnd:     orNaN(rr.Pix491End),
					Wavelength: orNaN(rr.Wav491),
					Correction: [4]float64{orZero(rr.Par491C0), orZero(rr.Par491C1), orZero(rr.Par491C2), orZero(rr.Par491C3)},
				},
				{
					PixStart:   orNaN(rr.Pix492Start),
					PixEnd:     orNaN(rr.Pix492End),
					Wavelength: orNaN(rr.Wav492),
					Correction: [4]float64{orZero(rr.Par492C0), orZero(rr.Par492C1), orZero(rr.Par492C2), orZero(rr.Par492C3)},
				},
			},
		})
	}
	return out, nil
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// newCSVReader tolerates '#' comment lines and padding after commas, which
// hand-maintained reference tables tend to carry.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	return cr
}
