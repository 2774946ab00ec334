// Package wavesvc serves shutter wavelength predictions over gRPC as the
// msaviz.v1.WavelengthService.
package wavesvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/signalsfoundry/msaviz/core"
	msavizv1 "github.com/signalsfoundry/msaviz/internal/genproto/msaviz/v1"
	"github.com/signalsfoundry/msaviz/internal/logging"
	"github.com/signalsfoundry/msaviz/internal/wavetable"
	"github.com/signalsfoundry/msaviz/model"
	"github.com/signalsfoundry/msaviz/refdata"
)

// Server implements msavizv1.WavelengthServiceServer on top of a reference
// registry. Solvers are built on first use per instrument and shared by later
// requests.
type Server struct {
	msavizv1.UnimplementedWavelengthServiceServer

	reg        *refdata.Registry
	log        logging.Logger
	solverOpts []core.SolverOption
	configOpts []core.MSAConfigOption
	metrics    core.EvaluationRecorder

	mu      sync.Mutex
	solvers map[string]*core.Solver
}

var _ msavizv1.WavelengthServiceServer = (*Server)(nil)

// ServerOption customises Server construction.
type ServerOption func(*Server)

// WithSolverOptions forwards options to every solver the server builds.
func WithSolverOptions(opts ...core.SolverOption) ServerOption {
	return func(s *Server) {
		s.solverOpts = append(s.solverOpts, opts...)
	}
}

// WithMSAConfigOptions forwards options to the aggregator used by Table.
func WithMSAConfigOptions(opts ...core.MSAConfigOption) ServerOption {
	return func(s *Server) {
		s.configOpts = append(s.configOpts, opts...)
	}
}

// WithMetricsRecorder reports the outcome of every side evaluated by
// Evaluate and Limits.
func WithMetricsRecorder(m core.EvaluationRecorder) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewServer returns a Server backed by reg.
func NewServer(reg *refdata.Registry, log logging.Logger, opts ...ServerOption) *Server {
	if log == nil {
		log = logging.Noop()
	}
	s := &Server{
		reg:     reg,
		log:     log,
		solvers: make(map[string]*core.Solver),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Server) ensureReady() error {
	if s == nil || s.reg == nil {
		return core.ErrNotReady
	}
	return nil
}

func (s *Server) solver(filter, grating string) (*core.Solver, error) {
	inst, err := s.reg.Lookup(filter, grating)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sv, ok := s.solvers[inst.Key()]; ok {
		return sv, nil
	}
	opts := append([]core.SolverOption{core.WithLogger(s.log)}, s.solverOpts...)
	sv, err := core.NewSolver(s.reg, inst.Filter, inst.Grating, opts...)
	if err != nil {
		return nil, err
	}
	s.solvers[inst.Key()] = sv
	return sv, nil
}

func (s *Server) observe(side model.Side, sol model.Solution, err error) {
	if s.metrics == nil {
		return
	}
	switch {
	case errors.Is(err, core.ErrIntegrationDivergence):
		s.metrics.ObserveEvaluation(side, core.OutcomeDiverged)
	case err != nil:
	case sol.Present():
		s.metrics.ObserveEvaluation(side, core.OutcomeSpectrum)
	default:
		s.metrics.ObserveEvaluation(side, core.OutcomeNoSpectrum)
	}
}

// Evaluate returns the illuminated part of one shutter's trace on one side.
func (s *Server) Evaluate(ctx context.Context, in *msavizv1.EvaluateRequest) (*msavizv1.EvaluateResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, ToStatusError(err)
	}
	log := logging.FromContext(ctx, s.log)

	if err := instrumentFields(in.GetFilter(), in.GetGrating()); err != nil {
		return nil, ToStatusError(err)
	}
	sh, err := ShutterFromProto(in.GetShutter())
	if err != nil {
		return nil, ToStatusError(err)
	}
	side, err := SideFromProto(in.GetSide())
	if err != nil {
		return nil, ToStatusError(err)
	}
	sv, err := s.solver(in.GetFilter(), in.GetGrating())
	if err != nil {
		return nil, ToStatusError(err)
	}

	_, span := startSpan(ctx, "Solver.Evaluate",
		attribute.String("instrument", sv.Instrument().Key()),
		attribute.String("shutter", sh.String()),
		attribute.String("side", side.String()),
	)
	sol, err := sv.Evaluate(sh, side)
	span.End()

	s.observe(side, sol, err)

	resp := &msavizv1.EvaluateResponse{}
	switch {
	case errors.Is(err, core.ErrIntegrationDivergence):
		log.Warn(ctx, "trace diverged",
			logging.String("shutter", sh.String()),
			logging.String("side", side.String()),
			logging.Err(err),
		)
		resp.Diverged = true
		resp.Reason = err.Error()
	case err != nil:
		return nil, ToStatusError(err)
	case sol.Present():
		first, last := sol.Span()
		resp.Present = true
		resp.FirstPixel, resp.LastPixel = int32(first), int32(last)
		resp.Wavelengths = append([]float64(nil), sol.Wavelengths()[first:last+1]...)
	}
	return resp, nil
}

// Limits returns the science-clipped limits of each requested shutter.
// Diverged sides are masked.
func (s *Server) Limits(ctx context.Context, in *msavizv1.LimitsRequest) (*msavizv1.LimitsResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, ToStatusError(err)
	}
	log := logging.FromContext(ctx, s.log)

	if err := instrumentFields(in.GetFilter(), in.GetGrating()); err != nil {
		return nil, ToStatusError(err)
	}
	if len(in.GetShutters()) == 0 {
		return nil, ToStatusError(fmt.Errorf("%w: no shutters requested", ErrInvalidRequest))
	}
	shutters := make([]model.Shutter, len(in.GetShutters()))
	for k, pb := range in.GetShutters() {
		sh, err := ShutterFromProto(pb)
		if err != nil {
			return nil, ToStatusError(fmt.Errorf("shutters[%d]: %w", k, err))
		}
		shutters[k] = sh
	}
	sv, err := s.solver(in.GetFilter(), in.GetGrating())
	if err != nil {
		return nil, ToStatusError(err)
	}
	sci := sv.ScienceRange()

	ctx, span := startSpan(ctx, "Solver.Limits",
		attribute.String("instrument", sv.Instrument().Key()),
		attribute.Int("shutters", len(shutters)),
	)
	defer span.End()

	resp := &msavizv1.LimitsResponse{Limits: make([]*msavizv1.ShutterLimits, 0, len(shutters))}
	for _, sh := range shutters {
		if err := ctx.Err(); err != nil {
			return nil, ToStatusError(err)
		}
		var lim model.ShutterLimits
		for side := model.NRS1; side < model.Sides; side++ {
			sol, err := sv.Evaluate(sh, side)
			s.observe(side, sol, err)
			if errors.Is(err, core.ErrIntegrationDivergence) {
				log.Warn(ctx, "trace diverged; side masked",
					logging.String("shutter", sh.String()),
					logging.String("side", side.String()),
					logging.Err(err),
				)
				continue
			}
			if err != nil {
				return nil, ToStatusError(err)
			}
			lim[side] = model.ClipToScience(sol, sci.Lo, sci.Hi)
		}
		resp.Limits = append(resp.Limits, shutterLimitsToProto(sh, lim))
	}
	return resp, nil
}

// Table parses the MSA configuration text in the request and returns the
// wavelength table of its open shutters.
func (s *Server) Table(ctx context.Context, in *msavizv1.TableRequest) (*msavizv1.TableResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, ToStatusError(err)
	}
	log := logging.FromContext(ctx, s.log)

	if err := instrumentFields(in.GetFilter(), in.GetGrating()); err != nil {
		return nil, ToStatusError(err)
	}
	if in.GetConfig() == "" {
		return nil, ToStatusError(fmt.Errorf("%w: config is required", ErrInvalidRequest))
	}
	cfg, err := core.ParseMSAConfig(strings.NewReader(in.GetConfig()))
	if err != nil {
		return nil, ToStatusError(err)
	}
	cfg.Path = in.GetName()

	msa := core.NewMSAConfig(s.reg, log, s.configOpts...)
	if err := msa.SetInstrument(ctx, in.GetFilter(), in.GetGrating()); err != nil {
		return nil, ToStatusError(err)
	}
	if err := msa.SetShutters(ctx, cfg); err != nil {
		return nil, ToStatusError(err)
	}

	table := wavetable.FromResult(msa.Result(), in.GetFilter(), in.GetGrating())
	var text strings.Builder
	if _, err := table.WriteTo(&text); err != nil {
		return nil, ToStatusError(err)
	}
	rows, err := rowsToProto(table.Rows)
	if err != nil {
		return nil, ToStatusError(err)
	}
	return &msavizv1.TableResponse{
		ConfigFile: table.Meta.ConfigFile,
		Filter:     table.Meta.Filter,
		Grating:    table.Meta.Grating,
		Rows:       rows,
		Text:       text.String(),
	}, nil
}

// ListInstruments returns every supported filter/grating pair with its
// science range.
func (s *Server) ListInstruments(ctx context.Context, _ *msavizv1.ListInstrumentsRequest) (*msavizv1.ListInstrumentsResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, ToStatusError(err)
	}
	insts := s.reg.Instruments()
	resp := &msavizv1.ListInstrumentsResponse{Instruments: make([]*msavizv1.Instrument, 0, len(insts))}
	for _, inst := range insts {
		sci, ok := s.reg.ScienceRange(inst)
		if !ok {
			return nil, ToStatusError(fmt.Errorf("no science range for %s", inst))
		}
		resp.Instruments = append(resp.Instruments, &msavizv1.Instrument{
			Filter:    inst.Filter,
			Grating:   inst.Grating,
			ScienceLo: sci.Lo,
			ScienceHi: sci.Hi,
		})
	}
	return resp, nil
}
