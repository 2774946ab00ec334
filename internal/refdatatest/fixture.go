// Package refdatatest provides a small in-memory reference data set with
// analytically known answers for tests.
//
// Gratings use a constant dispersion of GratingDLDS microns per pixel, so a
// spectrum anchored at λ0 on pixel p0 is λ0 + GratingDLDS*(p-p0). The prism
// uses a constant PrismDLDS.
//
// ExponentialFS adds f290lp/g395h, whose dispersion is linear in wavelength
// (ExpRate*λ), so its spectra are λ0*exp(ExpRate*(p-p0)).
package refdatatest

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing/fstest"

	"github.com/signalsfoundry/msaviz/model"
)

const (
	GratingDLDS = 0.0003
	PrismDLDS   = 0.002

	// f070lp/g140m science window.
	G140MLo = 0.7
	G140MHi = 1.27

	// Quadrant 1 f070lp/g140m initial conditions at shutter (1,1,1):
	// NRS1 anchored at pixel 0, NRS2 anchored at pixel 2047.
	Q1NRS1Start = 0.8
	Q1NRS2Start = 1.35

	// Row and column slopes of the quadrant 1 NRS1 model.
	Q1RowSlope    = 0.001
	Q1ColumnSlope = 0.0001

	// f290lp/g395h: DLDS = ExpRate*λ, anchored at pixel 0 on NRS1 and at
	// pixel 2047 on NRS2 in every quadrant.
	ExpRate      = 1e-4
	ExpNRS1Start = 3.0
	ExpNRS2Start = 5.0

	// Prism quadrant 1 shutter (4,1) NRS1 span and cubic correction.
	CubicPixStart = 100
	CubicPixEnd   = 1900
	CubicStart    = 1.0
)

// CubicCorrection is the c0..c3 correction of prism shutter (1,4,1) NRS1.
var CubicCorrection = [4]float64{0.001, 1e-5, -2e-9, 3e-13}

const ranges = `
  "f070lp/g140m": [0.7, 1.27],
  "f100lp/g140m": [0.97, 1.89],
  "f170lp/g235m": [1.66, 3.17],
  "clear/prism": [0.6, 5.3]`

const expRanges = `
  "f290lp/g395h": [2.87, 5.27]`

// Quadrants are keyed "0".."3" as in the instrument's edges.json.
const edges = `
  "f070lp/g140m": {
    "0": ["f070lp", "g140m", 0, "poly2d", [0.8, 0.001, 0, 0.0001, 0, 0], 0, "poly2d", [1.35, 0, 0, 0, 0, 0], 2047],
    "1": ["f070lp", "g140m", 1, null, null, null, "poly2d", [1.0, 0, 0, 0, 0, 0], 0],
    "2": ["f070lp", "g140m", 2, "poly2d", [0.8, 0.001, 0, 0.0001, 0, 0], 0, "poly2d", [1.35, 0, 0, 0, 0, 0], 2047],
    "3": ["f070lp", "g140m", 3, "poly2d", [0.8, 0, 0, 0, 0, 0], 0, null, null, null]
  },
  "f100lp/g140m": {
    "0": ["f100lp", "g140m", 0, "poly2d", [1.0, 0, 0, 0, 0, 0], 0, null, null, null]
  },
  "f170lp/g235m": {
    "0": ["f170lp", "g235m", 0, "poly2d", [1.7, 0, 0, 0, 0, 0], 0, null, null, null]
  }`

const expEdges = `
  "f290lp/g395h": {
    "0": ["f290lp", "g395h", 0, "poly2d", [3.0, 0, 0, 0, 0, 0], 0, "poly2d", [5.0, 0, 0, 0, 0, 0], 2047],
    "1": ["f290lp", "g395h", 1, "poly2d", [3.0, 0, 0, 0, 0, 0], 0, "poly2d", [5.0, 0, 0, 0, 0, 0], 2047],
    "2": ["f290lp", "g395h", 2, "poly2d", [3.0, 0, 0, 0, 0, 0], 0, "poly2d", [5.0, 0, 0, 0, 0, 0], 2047],
    "3": ["f290lp", "g395h", 3, "poly2d", [3.0, 0, 0, 0, 0, 0], 0, "poly2d", [5.0, 0, 0, 0, 0, 0], 2047]
  }`

const prismHeader = "I,J,PIX491_START,PIX491_END,WAV491,PAR491_0,PAR491_1,PAR491_2,PAR491_3,PIX492_START,PIX492_END,WAV492,PAR492_0,PAR492_1,PAR492_2,PAR492_3\n"

// Prism quadrant 1 rows:
//
//	(1,1): NRS1 over [500,1500] from 1.0 µm, no correction; no NRS2.
//	(2,1): NRS1 as (1,1) plus a 0.01 µm offset; NRS2 over [10.5,20.25] from 2.0 µm.
//	(3,1): NRS1 wavelength missing.
//	(4,1): NRS1 over [CubicPixStart,CubicPixEnd] from CubicStart with CubicCorrection.
const prismQ1 = prismHeader +
	"1,1,500,1500,1.0,0,0,0,0,,,,,,,\n" +
	"2,1,500,1500,1.0,0.01,0,0,0,10.5,20.25,2.0,0,0,0,0\n" +
	"3,1,500,1500,,0,0,0,0,,,,,,,\n" +
	"4,1,100,1900,1.0,0.001,1e-5,-2e-9,3e-13,,,,,,,\n"

// FS returns a fresh copy of the fixture file system.
func FS() fstest.MapFS {
	return fstest.MapFS{
		"ranges.json":    {Data: []byte(jsonObject(ranges))},
		"edges.json":     {Data: []byte(jsonObject(edges))},
		"disp/g140m.csv": {Data: []byte(dispersion([]float64{0.6, 0.7, 0.8, 0.9, 1.0, 1.1, 1.2, 1.3, 1.4, 1.5, 1.6, 1.8, 2.0}, GratingDLDS))},
		"disp/prism.csv": {Data: []byte(dispersion([]float64{0.5, 1.0, 2.0, 3.0, 5.0}, PrismDLDS))},
		"prism/q1.csv":   {Data: []byte(prismQ1)},
		"prism/q2.csv":   {Data: []byte(prismHeader)},
		"prism/q3.csv":   {Data: []byte(prismHeader)},
		"prism/q4.csv":   {Data: []byte(prismHeader)},
	}
}

// ExponentialFS returns FS plus the f290lp/g395h pair.
func ExponentialFS() fstest.MapFS {
	fsys := FS()
	fsys["ranges.json"] = &fstest.MapFile{Data: []byte(jsonObject(ranges, expRanges))}
	fsys["edges.json"] = &fstest.MapFile{Data: []byte(jsonObject(edges, expEdges))}

	waves := make([]float64, 0, 13)
	for w := 2.5; w <= 5.51; w += 0.25 {
		waves = append(waves, w)
	}
	var b strings.Builder
	b.WriteString("WAVELENGTH,DLDS\n")
	for _, w := range waves {
		b.WriteString(strconv.FormatFloat(w, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(ExpRate*w, 'g', -1, 64))
		b.WriteByte('\n')
	}
	fsys["disp/g395h.csv"] = &fstest.MapFile{Data: []byte(b.String())}
	return fsys
}

func jsonObject(members ...string) string {
	return "{" + strings.Join(members, ",") + "\n}"
}

// WriteDir materialises the fixture under dir for code that reads reference
// data from disk.
func WriteDir(dir string) error {
	for name, f := range FS() {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func dispersion(waves []float64, dlds float64) string {
	var b strings.Builder
	b.WriteString("WAVELENGTH,DLDS\n")
	for _, w := range waves {
		b.WriteString(strconv.FormatFloat(w, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(dlds, 'g', -1, 64))
		b.WriteByte('\n')
	}
	return b.String()
}

// ConfigGrid renders an MSA configuration file with every shutter set to
// fill except those listed in set.
func ConfigGrid(fill string, set map[model.Shutter]string) string {
	grid := make([][]string, model.GridWidth)
	for x := range grid {
		row := make([]string, model.GridHeight)
		for y := range row {
			row[y] = fill
		}
		grid[x] = row
	}
	for s, code := range set {
		x, y := s.XY()
		grid[x][y] = code
	}

	var b strings.Builder
	b.WriteString("# MSA configuration\n")
	for _, row := range grid {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// Shutter builds a shutter from 1-based coordinates, panicking on bad input.
func Shutter(quadrant, column, row int) model.Shutter {
	s, err := model.NewShutter(quadrant, column, row)
	if err != nil {
		panic(err)
	}
	return s
}
