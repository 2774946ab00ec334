package core

import (
	"fmt"

	"github.com/signalsfoundry/msaviz/model"
	"github.com/signalsfoundry/msaviz/refdata"
)

// gratingModel anchors each spectrum with a quadrant polynomial and
// integrates a fitted dispersion polynomial across the whole detector.
type gratingModel struct {
	solver *Solver
	quads  [model.Quadrants]refdata.QuadrantModel
	disp   Poly1D

	// pixel grids walking away from either anchor pixel
	forward, backward []float64
}

func newGratingModel(s *Solver, quads [model.Quadrants]refdata.QuadrantModel, table *refdata.Dispersion) (*gratingModel, error) {
	if table == nil {
		return nil, fmt.Errorf("no dispersion table")
	}
	disp, err := FitPoly1D(table.Wavelength, table.DLDS, DispersionDegree)
	if err != nil {
		return nil, fmt.Errorf("dispersion fit: %w", err)
	}

	forward := make([]float64, model.Pixels)
	backward := make([]float64, model.Pixels)
	for p := 0; p < model.Pixels; p++ {
		forward[p] = float64(p)
		backward[p] = float64(model.Pixels - 1 - p)
	}
	return &gratingModel{
		solver:   s,
		quads:    quads,
		disp:     disp,
		forward:  forward,
		backward: backward,
	}, nil
}

func (g *gratingModel) kind() string { return "grating" }

func (g *gratingModel) evaluate(sh model.Shutter, side model.Side) (model.Solution, error) {
	sm := g.quads[sh.Quadrant()-1].Sides[side]
	if sm == nil {
		return model.NoSpectrum(), nil
	}

	// The quadrant models take the zero-based row first.
	col0, row0 := float64(sh.Column()-1), float64(sh.Row()-1)
	lam0 := sm.Poly.Eval(row0, col0)
	if !finite(lam0) {
		return model.NoSpectrum(), nil
	}

	pixels := g.forward
	if sm.StartPixel != 0 {
		pixels = g.backward
	}
	out, err := g.solver.integrate(sh, side, g.disp.Eval, lam0, pixels)
	if err != nil {
		return model.NoSpectrum(), err
	}
	if sm.StartPixel != 0 {
		for a, b := 0, len(out)-1; a < b; a, b = a+1, b-1 {
			out[a], out[b] = out[b], out[a]
		}
	}
	if err := g.solver.checkPlausible(sh, side, out); err != nil {
		return model.NoSpectrum(), err
	}
	return model.NewSolution(out, 0, model.Pixels-1), nil
}
