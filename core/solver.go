package core

import (
	"context"
	"fmt"
	"math"

	"github.com/signalsfoundry/msaviz/internal/logging"
	"github.com/signalsfoundry/msaviz/model"
	"github.com/signalsfoundry/msaviz/refdata"
)

// DefaultDivergenceLimit is the largest plausible wavelength in microns. A
// solution that exceeds it points at inconsistent reference data.
const DefaultDivergenceLimit = 20.0

// evaluator is the per-disperser wavelength model chosen when the solver is
// built.
type evaluator interface {
	evaluate(s model.Shutter, side model.Side) (model.Solution, error)
	kind() string
}

// Solver maps shutters to per-pixel wavelengths for one filter/grating pair.
// It is immutable after construction and safe for concurrent use.
type Solver struct {
	inst       refdata.Instrument
	science    refdata.ScienceRange
	tol        Tolerance
	divergence float64
	log        logging.Logger

	eval evaluator
}

// SolverOption customises Solver construction.
type SolverOption func(*Solver)

// WithTolerance sets the integrator's relative and absolute tolerances.
// Non-positive values keep the defaults.
func WithTolerance(rel, abs float64) SolverOption {
	return func(s *Solver) {
		s.tol = Tolerance{Rel: rel, Abs: abs}
	}
}

// WithDivergenceLimit sets the plausibility bound in microns. Non-positive
// values keep DefaultDivergenceLimit.
func WithDivergenceLimit(microns float64) SolverOption {
	return func(s *Solver) {
		if microns > 0 {
			s.divergence = microns
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l logging.Logger) SolverOption {
	return func(s *Solver) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSolver builds the solver for a filter/grating pair. Unknown pairs fail
// with an error matching refdata.ErrUnknownInstrument.
func NewSolver(reg *refdata.Registry, filter, grating string, opts ...SolverOption) (*Solver, error) {
	if reg == nil {
		return nil, fmt.Errorf("NewSolver: registry is nil")
	}
	inst, err := reg.Lookup(filter, grating)
	if err != nil {
		return nil, err
	}
	return newSolverFor(reg, inst, opts...)
}

// newSolverFor builds the solver for a resolved instrument. Every table the
// model needs must be present in reg.
func newSolverFor(reg *refdata.Registry, inst refdata.Instrument, opts ...SolverOption) (*Solver, error) {
	missing := func(what string) error {
		return &refdata.UnknownInstrumentError{Filter: inst.Filter, Grating: inst.Grating, Reason: "no " + what}
	}
	science, ok := reg.ScienceRange(inst)
	if !ok {
		return nil, missing("science range")
	}
	disp, ok := reg.Dispersion(inst.Grating)
	if !ok {
		return nil, missing("dispersion table")
	}

	s := &Solver{
		inst:       inst,
		science:    science,
		divergence: DefaultDivergenceLimit,
		log:        logging.Noop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.tol = s.tol.withDefaults()

	var err error
	if inst.IsPrism() {
		s.eval, err = newPrismModel(s, reg, disp)
	} else {
		models, ok := reg.QuadrantModels(inst)
		if !ok {
			return nil, missing("quadrant models")
		}
		s.eval, err = newGratingModel(s, models, disp)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inst, err)
	}

	s.log.Debug(context.Background(), "solver ready",
		logging.String("instrument", inst.Key()),
		logging.String("model", s.eval.kind()),
		logging.Float("science_lo", science.Lo),
		logging.Float("science_hi", science.Hi),
	)
	return s, nil
}

// Instrument returns the resolved filter/grating pair.
func (s *Solver) Instrument() refdata.Instrument { return s.inst }

// ScienceRange returns the calibrated wavelength window.
func (s *Solver) ScienceRange() refdata.ScienceRange { return s.science }

// IsPrism reports whether the prism model is in use.
func (s *Solver) IsPrism() bool { return s.inst.IsPrism() }

// Evaluate returns the wavelength of every detector pixel for one shutter on
// one side. A shutter whose light misses the side yields an absent solution
// and a nil error. A solution that fails the plausibility check is returned
// absent together with a *DivergenceError.
func (s *Solver) Evaluate(sh model.Shutter, side model.Side) (model.Solution, error) {
	if !sh.Valid() {
		return model.NoSpectrum(), model.ErrShutterOutOfRange
	}
	if !side.Valid() {
		return model.NoSpectrum(), fmt.Errorf("%w: %d", ErrInvalidSide, int(side))
	}
	return s.eval.evaluate(sh, side)
}

// Limits evaluates both sides of a shutter and clips them to the science
// range.
func (s *Solver) Limits(sh model.Shutter) (model.ShutterLimits, error) {
	var lim model.ShutterLimits
	for side := model.NRS1; side < model.Sides; side++ {
		sol, err := s.Evaluate(sh, side)
		if err != nil {
			return lim, err
		}
		lim[side] = model.ClipToScience(sol, s.science.Lo, s.science.Hi)
	}
	return lim, nil
}

// integrate runs the dispersion law dλ/dx = d(λ) from lam0 at pixels[0]
// and returns λ at every entry of pixels.
func (s *Solver) integrate(sh model.Shutter, side model.Side, d func(float64) float64, lam0 float64, pixels []float64) ([]float64, error) {
	out, err := Integrate(func(_, lam float64) float64 { return d(lam) }, lam0, pixels, s.tol)
	if err != nil {
		return nil, &DivergenceError{Shutter: sh, Side: side, Max: math.NaN(), Limit: s.divergence, Err: err}
	}
	return out, nil
}

func (s *Solver) checkPlausible(sh model.Shutter, side model.Side, wave []float64) error {
	peak := math.Inf(-1)
	for _, w := range wave {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return &DivergenceError{Shutter: sh, Side: side, Max: w, Limit: s.divergence}
		}
		peak = math.Max(peak, w)
	}
	if peak > s.divergence {
		return &DivergenceError{Shutter: sh, Side: side, Max: peak, Limit: s.divergence}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
