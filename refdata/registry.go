// Package refdata loads the read-only calibration reference data: per
// filter/grating initial-condition models, science wavelength ranges,
// tabulated grating dispersion and the prism shutter lookup tables.
//
// A Registry is loaded once with Load or LoadFS and then shared by every
// solver; nothing in it changes after loading.
package refdata

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/signalsfoundry/msaviz/model"
)

// PrismGrating is the disperser name that selects the prism model.
const PrismGrating = "prism"

// Reference file layout inside a data directory.
const (
	EdgesFile     = "edges.json"
	RangesFile    = "ranges.json"
	dispersionDir = "disp"
	prismDir      = "prism"
)

var (
	// ErrUnknownInstrument is returned for a filter/grating pair that has no
	// complete set of reference data.
	ErrUnknownInstrument = errors.New("unknown filter/grating pair")
	// ErrInvalidReference indicates a malformed reference file.
	ErrInvalidReference = errors.New("invalid reference data")
)

// UnknownInstrumentError names the pair that could not be resolved.
type UnknownInstrumentError struct {
	Filter  string
	Grating string
	Reason  string
}

func (e *UnknownInstrumentError) Error() string {
	msg := fmt.Sprintf("unknown filter/grating pair %q", e.Filter+"/"+e.Grating)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *UnknownInstrumentError) Is(target error) bool {
	return target == ErrUnknownInstrument
}

// Instrument is a filter/grating pair.
type Instrument struct {
	Filter  string
	Grating string
}

// Key returns the "filter/grating" form used by the reference files.
func (i Instrument) Key() string { return i.Filter + "/" + i.Grating }

func (i Instrument) String() string { return i.Key() }

// IsPrism reports whether the pair uses the prism model.
func (i Instrument) IsPrism() bool { return i.Grating == PrismGrating }

// ParseInstrument splits a "filter/grating" key.
func ParseInstrument(key string) (Instrument, error) {
	f, g, ok := strings.Cut(key, "/")
	if !ok || f == "" || g == "" {
		return Instrument{}, fmt.Errorf("%w: malformed instrument key %q", ErrInvalidReference, key)
	}
	return Instrument{Filter: strings.ToLower(f), Grating: strings.ToLower(g)}, nil
}

// ScienceRange is the calibrated wavelength window in microns.
type ScienceRange struct {
	Lo, Hi float64
}

// SideModel is the initial-condition model for one detector side.
type SideModel struct {
	Type       string
	Poly       Poly2D
	StartPixel int
}

// QuadrantModel holds the per-side models of one quadrant; a nil side means
// the quadrant's spectra do not reach that detector.
type QuadrantModel struct {
	Quadrant int
	Sides    [model.Sides]*SideModel
}

// Dispersion is a tabulated dispersion curve, sorted by wavelength.
type Dispersion struct {
	Wavelength []float64
	DLDS       []float64
}

// PrismSide is one side of a prism lookup row.
type PrismSide struct {
	PixStart   float64
	PixEnd     float64
	Wavelength float64
	Correction [4]float64
}

// PrismRow is the prism lookup entry for one shutter.
type PrismRow struct {
	Column int
	Row    int
	Sides  [model.Sides]PrismSide
}

type shutterKey struct{ column, row int }

// Registry is the immutable in-memory reference data set.
type Registry struct {
	gratingModels map[Instrument]*[model.Quadrants]QuadrantModel
	ranges        map[Instrument]ScienceRange
	dispersion    map[string]*Dispersion
	prism         [model.Quadrants]map[shutterKey]PrismRow
	hasPrism      bool
}

// Load reads reference data from a directory on disk.
func Load(dir string) (*Registry, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("reference data directory: %w", err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads reference data from fsys. edges.json and ranges.json are
// required; dispersion tables are read for every grating named by them and
// the prism tables are read when a prism pair is configured.
func LoadFS(fsys fs.FS) (*Registry, error) {
	r := &Registry{
		gratingModels: make(map[Instrument]*[model.Quadrants]QuadrantModel),
		ranges:        make(map[Instrument]ScienceRange),
		dispersion:    make(map[string]*Dispersion),
	}

	if err := r.loadRanges(fsys); err != nil {
		return nil, err
	}
	if err := r.loadEdges(fsys); err != nil {
		return nil, err
	}

	gratings := make(map[string]bool)
	for inst := range r.ranges {
		gratings[inst.Grating] = true
	}
	for inst := range r.gratingModels {
		gratings[inst.Grating] = true
	}
	for g := range gratings {
		d, err := loadDispersion(fsys, g)
		if errors.Is(err, fs.ErrNotExist) {
			// pairs on this grating resolve as unknown
			continue
		}
		if err != nil {
			return nil, err
		}
		r.dispersion[g] = d
	}

	if gratings[PrismGrating] {
		if err := r.loadPrism(fsys); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return r, nil
}

// Lookup resolves a filter/grating pair, failing with an
// *UnknownInstrumentError unless every piece of reference data it needs is
// present.
func (r *Registry) Lookup(filter, grating string) (Instrument, error) {
	inst := Instrument{Filter: strings.ToLower(filter), Grating: strings.ToLower(grating)}
	if _, ok := r.ranges[inst]; !ok {
		return inst, &UnknownInstrumentError{Filter: filter, Grating: grating, Reason: "no science range"}
	}
	if _, ok := r.dispersion[inst.Grating]; !ok {
		return inst, &UnknownInstrumentError{Filter: filter, Grating: grating, Reason: "no dispersion table"}
	}
	if inst.IsPrism() {
		if !r.hasPrism {
			return inst, &UnknownInstrumentError{Filter: filter, Grating: grating, Reason: "no prism lookup tables"}
		}
		return inst, nil
	}
	if _, ok := r.gratingModels[inst]; !ok {
		return inst, &UnknownInstrumentError{Filter: filter, Grating: grating, Reason: "no quadrant models"}
	}
	return inst, nil
}

// Instruments lists every resolvable pair, sorted by key.
func (r *Registry) Instruments() []Instrument {
	var out []Instrument
	for inst := range r.ranges {
		if _, err := r.Lookup(inst.Filter, inst.Grating); err == nil {
			out = append(out, inst)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Key() < out[b].Key() })
	return out
}

// ScienceRange returns the science window for a resolved pair.
func (r *Registry) ScienceRange(inst Instrument) (ScienceRange, bool) {
	sr, ok := r.ranges[inst]
	return sr, ok
}

// QuadrantModels returns the four quadrant models of a grating pair,
// indexed by zero-based quadrant.
func (r *Registry) QuadrantModels(inst Instrument) ([model.Quadrants]QuadrantModel, bool) {
	qm, ok := r.gratingModels[inst]
	if !ok {
		return [model.Quadrants]QuadrantModel{}, false
	}
	return *qm, true
}

// Dispersion returns the tabulated dispersion of a grating.
func (r *Registry) Dispersion(grating string) (*Dispersion, bool) {
	d, ok := r.dispersion[strings.ToLower(grating)]
	return d, ok
}

// PrismRow returns the prism lookup entry for a shutter given its
// zero-based quadrant and 1-based column and row.
func (r *Registry) PrismRow(quadrant0, column, row int) (PrismRow, bool) {
	if quadrant0 < 0 || quadrant0 >= model.Quadrants || r.prism[quadrant0] == nil {
		return PrismRow{}, false
	}
	pr, ok := r.prism[quadrant0][shutterKey{column: column, row: row}]
	return pr, ok
}

// PrismRows counts the prism lookup entries of a quadrant.
func (r *Registry) PrismRows(quadrant0 int) int {
	if quadrant0 < 0 || quadrant0 >= model.Quadrants {
		return 0
	}
	return len(r.prism[quadrant0])
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
