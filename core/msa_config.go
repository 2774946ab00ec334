package core

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/signalsfoundry/msaviz/internal/logging"
	"github.com/signalsfoundry/msaviz/model"
	"github.com/signalsfoundry/msaviz/refdata"
)

const tracerName = "github.com/signalsfoundry/msaviz/core"

// Halves is the number of detector halves a quadrant can land on.
const Halves = 2

// defaultBatchSize bounds how many shutters hold full solutions in memory at
// once during Compute.
const defaultBatchSize = 256

// Evaluation outcomes reported to an EvaluationRecorder.
const (
	OutcomeSpectrum   = "spectrum"
	OutcomeNoSpectrum = "no_spectrum"
	OutcomeDiverged   = "diverged"
)

// Detector holds full-resolution wavelengths for every detector row, indexed
// [side][half][170-row0][pixel] where half = 1 - quadrant0%2. Pixels without
// a spectrum are zero.
type Detector [model.Sides][Halves][model.Rows][model.Pixels]float64

// Half returns the detector half a zero-based quadrant lands on.
func Half(quadrant0 int) int { return 1 - quadrant0%2 }

// DetectorRow returns the detector row index of a zero-based shutter row.
func DetectorRow(row0 int) int { return model.Rows - 1 - row0 }

// ShutterFailure records a shutter side whose solution was discarded.
type ShutterFailure struct {
	Shutter model.Shutter
	Side    model.Side
	Err     error
}

// PixelBounds is the detector pixel span, inclusive, whose wavelengths lie in
// the science range. A zero PixelBounds is empty.
type PixelBounds struct {
	First, Last int
	Valid       bool
}

// Result is one full-grid computation.
type Result struct {
	Instrument   refdata.Instrument
	ScienceRange refdata.ScienceRange
	ConfigPath   string

	// Chosen holds deliberately opened shutters, Stuck the stuck-open ones.
	// Where several shutters share a detector row the last one in
	// quadrant, column, row order wins.
	Chosen *Detector
	Stuck  *Detector

	// Limits holds the science-clipped wavelength range of every open,
	// non-stuck shutter.
	Limits map[model.Shutter]model.ShutterLimits

	Failures []ShutterFailure
}

// Shutters returns the keys of Limits in quadrant, column, row order.
func (r *Result) Shutters() []model.Shutter {
	out := make([]model.Shutter, 0, len(r.Limits))
	for sh := range r.Limits {
		out = append(out, sh)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Less(out[b]) })
	return out
}

// SelectBounds returns, per side, the pixels of the shutter's detector row in
// Chosen whose wavelengths fall inside the science range.
func (r *Result) SelectBounds(sh model.Shutter) [model.Sides]PixelBounds {
	var out [model.Sides]PixelBounds
	if r == nil || r.Chosen == nil || !sh.Valid() {
		return out
	}
	half, row := Half(sh.Quadrant()-1), DetectorRow(sh.Row()-1)
	for side := 0; side < model.Sides; side++ {
		wave := &r.Chosen[side][half][row]
		b := PixelBounds{First: -1}
		for p, w := range wave {
			if w >= r.ScienceRange.Lo && w <= r.ScienceRange.Hi {
				if b.First < 0 {
					b.First = p
				}
				b.Last = p
			}
		}
		if b.First >= 0 {
			b.Valid = true
			out[side] = b
		}
	}
	return out
}

// EvaluationRecorder receives per-shutter evaluation outcomes and compute
// timings.
type EvaluationRecorder interface {
	ObserveEvaluation(side model.Side, outcome string)
	ObserveCompute(instrument string, shutters int, elapsed time.Duration)
}

// ProgressFunc is called once per evaluated shutter with the running count.
type ProgressFunc func(done, total int)

// MSAConfig combines an instrument choice with a shutter configuration and
// recomputes the detector wavelength maps whenever either changes. Its
// methods are serialised; concurrent callers wait for a running Compute.
type MSAConfig struct {
	mu sync.Mutex

	reg        *refdata.Registry
	log        logging.Logger
	metrics    EvaluationRecorder
	progress   ProgressFunc
	workers    int
	batch      int
	solverOpts []SolverOption

	solver   *Solver
	shutters *ShutterConfig
	result   *Result
}

// MSAConfigOption customises MSAConfig construction.
type MSAConfigOption func(*MSAConfig)

// WithMetricsRecorder attaches an optional evaluation recorder.
func WithMetricsRecorder(m EvaluationRecorder) MSAConfigOption {
	return func(c *MSAConfig) {
		c.metrics = m
	}
}

// WithProgress attaches a per-shutter progress callback. It is called from
// the goroutine running Compute.
func WithProgress(fn ProgressFunc) MSAConfigOption {
	return func(c *MSAConfig) {
		c.progress = fn
	}
}

// WithWorkers bounds the number of concurrent shutter evaluations.
// Non-positive values use GOMAXPROCS.
func WithWorkers(n int) MSAConfigOption {
	return func(c *MSAConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithBatchSize bounds how many shutters are evaluated before their
// solutions are folded into the result.
func WithBatchSize(n int) MSAConfigOption {
	return func(c *MSAConfig) {
		if n > 0 {
			c.batch = n
		}
	}
}

// WithSolverOptions forwards options to every solver the MSAConfig builds.
func WithSolverOptions(opts ...SolverOption) MSAConfigOption {
	return func(c *MSAConfig) {
		c.solverOpts = append(c.solverOpts, opts...)
	}
}

// NewMSAConfig returns an MSAConfig with neither an instrument nor shutters.
func NewMSAConfig(reg *refdata.Registry, log logging.Logger, opts ...MSAConfigOption) *MSAConfig {
	if log == nil {
		log = logging.Noop()
	}
	c := &MSAConfig{
		reg:     reg,
		log:     log,
		workers: runtime.GOMAXPROCS(0),
		batch:   defaultBatchSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// SetInstrument selects the filter/grating pair and recomputes when shutters
// are already loaded. An unknown pair leaves the previous instrument in place.
func (c *MSAConfig) SetInstrument(ctx context.Context, filter, grating string) error {
	opts := append([]SolverOption{WithLogger(c.log)}, c.solverOpts...)
	solver, err := NewSolver(c.reg, filter, grating, opts...)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.solver = solver
	c.result = nil
	if c.shutters == nil {
		return nil
	}
	_, err = c.computeLocked(ctx)
	return err
}

// SetShutters installs a parsed shutter configuration and recomputes when an
// instrument is already selected.
func (c *MSAConfig) SetShutters(ctx context.Context, cfg *ShutterConfig) error {
	if cfg == nil {
		return fmt.Errorf("SetShutters: configuration is nil")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shutters = cfg
	c.result = nil
	if c.solver == nil {
		return nil
	}
	_, err := c.computeLocked(ctx)
	return err
}

// LoadShutters parses an MSA configuration file and installs it.
func (c *MSAConfig) LoadShutters(ctx context.Context, path string) error {
	cfg, err := LoadMSAConfig(path)
	if err != nil {
		return err
	}
	c.log.Info(ctx, "msa configuration loaded",
		logging.String("path", path),
		logging.Int("open", len(cfg.Open)),
		logging.Int("stuck", cfg.Open.Stuck()),
	)
	return c.SetShutters(ctx, cfg)
}

// Ready reports whether both an instrument and shutters are present.
func (c *MSAConfig) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.solver != nil && c.shutters != nil
}

// Solver returns the current solver, or nil.
func (c *MSAConfig) Solver() *Solver {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.solver
}

// Result returns the most recent computation, or nil if none is current.
func (c *MSAConfig) Result() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// SelectBounds reports the science-range pixel span of a shutter's detector
// row in the current result.
func (c *MSAConfig) SelectBounds(sh model.Shutter) [model.Sides]PixelBounds {
	return c.Result().SelectBounds(sh)
}

// Compute recomputes the detector maps and limits from the current
// instrument and shutters. It fails with ErrNotReady until both are set.
func (c *MSAConfig) Compute(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.computeLocked(ctx)
}

type shutterJob struct {
	shutter model.Shutter
	stuck   bool
	sol     [model.Sides]model.Solution
	err     [model.Sides]error
}

func (c *MSAConfig) computeLocked(ctx context.Context) (*Result, error) {
	if c.solver == nil || c.shutters == nil {
		return nil, ErrNotReady
	}
	solver, cfg := c.solver, c.shutters
	inst := solver.Instrument()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "MSAConfig.Compute")
	defer span.End()
	log := logging.FromContext(ctx, c.log).With(logging.String("instrument", inst.Key()))

	start := time.Now()
	keys := cfg.Open.Sorted()
	span.SetAttributes(
		attribute.String("instrument", inst.Key()),
		attribute.Int("shutters.open", len(keys)),
	)

	res := &Result{
		Instrument:   inst,
		ScienceRange: solver.ScienceRange(),
		ConfigPath:   cfg.Path,
		Chosen:       new(Detector),
		Stuck:        new(Detector),
		Limits:       make(map[model.Shutter]model.ShutterLimits, len(keys)),
	}
	lo, hi := res.ScienceRange.Lo, res.ScienceRange.Hi

	jobs := make([]shutterJob, min(c.batch, len(keys)))
	done := 0
	for offset := 0; offset < len(keys); offset += c.batch {
		chunk := keys[offset:min(offset+c.batch, len(keys))]
		batch := jobs[:len(chunk)]

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.workers)
		for k, key := range chunk {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				sh, err := model.FromQIJ(key)
				if err != nil {
					return err
				}
				job := shutterJob{shutter: sh, stuck: cfg.Open[key]}
				for side := model.NRS1; side < model.Sides; side++ {
					job.sol[side], job.err[side] = solver.Evaluate(sh, side)
					if job.err[side] != nil && !errors.Is(job.err[side], ErrIntegrationDivergence) {
						return job.err[side]
					}
				}
				batch[k] = job
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		for k := range batch {
			job := &batch[k]
			c.fold(ctx, log, res, job, lo, hi)
			*job = shutterJob{}
			done++
			if c.progress != nil {
				c.progress(done, len(keys))
			}
		}
	}

	elapsed := time.Since(start)
	if c.metrics != nil {
		c.metrics.ObserveCompute(inst.Key(), len(keys), elapsed)
	}
	span.SetAttributes(
		attribute.Int("shutters.limits", len(res.Limits)),
		attribute.Int("shutters.failed", len(res.Failures)),
	)
	log.Info(ctx, "wavelength maps computed",
		logging.Int("open", len(keys)),
		logging.Int("failures", len(res.Failures)),
		logging.String("elapsed", elapsed.String()),
	)
	c.result = res
	return res, nil
}

// fold writes one shutter's solutions into the result.
func (c *MSAConfig) fold(ctx context.Context, log logging.Logger, res *Result, job *shutterJob, lo, hi float64) {
	sh := job.shutter
	half, row := Half(sh.Quadrant()-1), DetectorRow(sh.Row()-1)
	dst := res.Chosen
	if job.stuck {
		dst = res.Stuck
	}

	var lim model.ShutterLimits
	for side := model.NRS1; side < model.Sides; side++ {
		outcome := OutcomeSpectrum
		switch sol := job.sol[side]; {
		case job.err[side] != nil:
			outcome = OutcomeDiverged
			res.Failures = append(res.Failures, ShutterFailure{Shutter: sh, Side: side, Err: job.err[side]})
			log.Warn(ctx, "discarding implausible wavelength solution",
				logging.String("shutter", sh.String()),
				logging.String("side", side.String()),
				logging.Err(job.err[side]),
			)
		case !sol.Present():
			outcome = OutcomeNoSpectrum
		default:
			copy(dst[side][half][row][:], sol.Wavelengths())
			if !job.stuck {
				lim[side] = model.ClipToScience(sol, lo, hi)
			}
		}
		if c.metrics != nil {
			c.metrics.ObserveEvaluation(side, outcome)
		}
	}
	if !job.stuck {
		res.Limits[sh] = lim
	}
}

// CalculateWavelengths parses a configuration file and returns the limits of
// every open, non-stuck shutter for one instrument without keeping any state.
func CalculateWavelengths(ctx context.Context, reg *refdata.Registry, path, filter, grating string, opts ...MSAConfigOption) (*Result, error) {
	c := NewMSAConfig(reg, nil, opts...)
	if err := c.SetInstrument(ctx, filter, grating); err != nil {
		return nil, fmt.Errorf("invalid filter/grating pair: %w", err)
	}
	if err := c.LoadShutters(ctx, path); err != nil {
		return nil, err
	}
	return c.Result(), nil
}
