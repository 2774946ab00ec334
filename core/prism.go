package core

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/msaviz/model"
	"github.com/signalsfoundry/msaviz/refdata"
)

// prismModel takes each shutter's anchor and pixel span from the prism
// lookup tables, integrates an interpolated dispersion curve over that span
// and adds the row's cubic correction. Pixels outside the span are zero.
type prismModel struct {
	solver *Solver
	reg    *refdata.Registry
	disp   *Linear
}

func newPrismModel(s *Solver, reg *refdata.Registry, table *refdata.Dispersion) (*prismModel, error) {
	if table == nil {
		return nil, fmt.Errorf("no dispersion table")
	}
	disp, err := NewLinear(table.Wavelength, table.DLDS)
	if err != nil {
		return nil, fmt.Errorf("dispersion: %w", err)
	}
	return &prismModel{solver: s, reg: reg, disp: disp}, nil
}

func (p *prismModel) kind() string { return "prism" }

func (p *prismModel) evaluate(sh model.Shutter, side model.Side) (model.Solution, error) {
	row, ok := p.reg.PrismRow(sh.Quadrant()-1, sh.Column(), sh.Row())
	if !ok {
		return model.NoSpectrum(), nil
	}
	ps := row.Sides[side]
	if !finite(ps.Wavelength) || !finite(ps.PixStart) || !finite(ps.PixEnd) {
		return model.NoSpectrum(), nil
	}

	first := int(math.Max(0, math.Ceil(ps.PixStart)))
	last := int(math.Min(model.Pixels-1, math.Floor(ps.PixEnd)))
	if first > last {
		return model.NoSpectrum(), nil
	}

	// Integration starts at the (possibly fractional) anchor pixel and
	// reports at every whole pixel of the span.
	pixels := make([]float64, 0, last-first+2)
	pixels = append(pixels, ps.PixStart)
	for x := first; x <= last; x++ {
		pixels = append(pixels, float64(x))
	}
	base, err := p.solver.integrate(sh, side, p.disp.Eval, ps.Wavelength, pixels)
	if err != nil {
		return model.NoSpectrum(), err
	}

	correction := Cubic(ps.Correction)
	wave := make([]float64, model.Pixels)
	for x := first; x <= last; x++ {
		wave[x] = base[x-first+1] + correction.Eval(float64(x))
	}
	if err := p.solver.checkPlausible(sh, side, wave[first:last+1]); err != nil {
		return model.NoSpectrum(), err
	}
	return model.NewSolution(wave, first, last), nil
}
