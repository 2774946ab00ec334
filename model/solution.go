package model

import "math"

// Pixels is the number of detector pixel columns per side.
const Pixels = 2048

// Side selects one of the two detectors.
type Side int

const (
	NRS1 Side = iota
	NRS2

	Sides = 2
)

func (s Side) String() string {
	switch s {
	case NRS1:
		return "NRS1"
	case NRS2:
		return "NRS2"
	default:
		return "NRS?"
	}
}

// Valid reports whether s names a detector.
func (s Side) Valid() bool { return s == NRS1 || s == NRS2 }

// Solution is the wavelength map of one shutter on one detector side. An
// absent solution means the shutter's spectrum does not land on that side.
type Solution struct {
	wave        []float64
	first, last int
}

// NoSpectrum is the absent solution.
func NoSpectrum() Solution { return Solution{} }

// NewSolution wraps a full-length wavelength array whose illuminated pixels
// are first..last inclusive. Pixels outside that span carry fill values and
// do not take part in Range.
func NewSolution(wave []float64, first, last int) Solution {
	return Solution{wave: wave, first: first, last: last}
}

// Present reports whether the solution carries a spectrum.
func (s Solution) Present() bool { return s.wave != nil }

// Wavelengths returns the per-pixel wavelengths in ascending pixel order, or
// nil when absent. The slice is owned by the solution.
func (s Solution) Wavelengths() []float64 { return s.wave }

// Span returns the first and last illuminated pixel.
func (s Solution) Span() (first, last int) { return s.first, s.last }

// Range returns the minimum and maximum wavelength over the illuminated span.
// Zero fill outside the span is ignored, so a prism spectrum's minimum is its
// first illuminated wavelength rather than 0. A prism limit therefore starts
// at that wavelength instead of collapsing to the science lower bound.
func (s Solution) Range() (lo, hi float64) {
	if !s.Present() {
		return math.NaN(), math.NaN()
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, w := range s.wave[s.first : s.last+1] {
		lo = math.Min(lo, w)
		hi = math.Max(hi, w)
	}
	return lo, hi
}

// Limit is a wavelength interval clipped to the science range. A zero Limit
// is masked.
type Limit struct {
	Min, Max float64
	Valid    bool
}

// ShutterLimits holds one Limit per detector side.
type ShutterLimits [Sides]Limit

// ClipToScience returns the part of the solution's wavelength range inside
// [lo, hi], or a masked Limit when the spectrum never enters it.
func ClipToScience(s Solution, lo, hi float64) Limit {
	if !s.Present() {
		return Limit{}
	}
	wmin, wmax := s.Range()
	if wmin <= hi && wmax >= lo {
		return Limit{Min: math.Max(wmin, lo), Max: math.Min(wmax, hi), Valid: true}
	}
	return Limit{}
}
