package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/msaviz/core"
	"github.com/signalsfoundry/msaviz/internal/logging"
	"github.com/signalsfoundry/msaviz/model"
)

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		filter, grating string
		side            string
		pixels          bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate <quadrant,column,row>",
		Short: "Evaluate the trace of one shutter",
		Long: `Integrates the wavelength trace of a single shutter and prints, per
detector side, the illuminated pixel span, its wavelength range and the range
clipped to the science window. With --pixels every illuminated pixel is
listed as "<side> <pixel> <wavelength>".`,
		Example: "  msaviz evaluate 1,183,85 --filter f070lp --grating g140m",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sh, err := parseShutter(args[0])
			if err != nil {
				return err
			}
			sides, err := parseSides(side)
			if err != nil {
				return err
			}

			reg, err := a.registry(ctx)
			if err != nil {
				return err
			}
			opts := append(a.settings.SolverOptions(), core.WithLogger(a.log))
			sv, err := core.NewSolver(reg, filter, grating, opts...)
			if err != nil {
				return err
			}
			sci := sv.ScienceRange()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s %s science range [%.4f, %.4f] µm\n", sh, sv.Instrument(), sci.Lo, sci.Hi)
			for _, sd := range sides {
				sol, err := sv.Evaluate(sh, sd)
				if errors.Is(err, core.ErrIntegrationDivergence) {
					a.log.Warn(ctx, "trace diverged", logging.String("side", sd.String()), logging.Err(err))
					fmt.Fprintf(out, "%s diverged: %v\n", sd, err)
					continue
				}
				if err != nil {
					return err
				}
				if !sol.Present() {
					fmt.Fprintf(out, "%s no spectrum\n", sd)
					continue
				}
				first, last := sol.Span()
				lo, hi := sol.Range()
				clipped := model.ClipToScience(sol, sci.Lo, sci.Hi)
				fmt.Fprintf(out, "%s pixels %d-%d wavelengths %.4f-%.4f", sd, first, last, lo, hi)
				if clipped.Valid {
					fmt.Fprintf(out, " science %.4f-%.4f\n", clipped.Min, clipped.Max)
				} else {
					fmt.Fprintln(out, " science --")
				}
				if pixels {
					wave := sol.Wavelengths()
					for p := first; p <= last; p++ {
						fmt.Fprintf(out, "%s %d %.6f\n", sd, p, wave[p])
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "filter name")
	cmd.Flags().StringVar(&grating, "grating", "", "grating name")
	cmd.Flags().StringVar(&side, "side", "both", "detector side: NRS1, NRS2 or both")
	cmd.Flags().BoolVar(&pixels, "pixels", false, "list every illuminated pixel")
	_ = cmd.MarkFlagRequired("filter")
	_ = cmd.MarkFlagRequired("grating")
	return cmd
}

// parseShutter reads a 1-based "quadrant,column,row" triple.
func parseShutter(arg string) (model.Shutter, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 3 {
		return model.Shutter{}, fmt.Errorf("shutter %q: want quadrant,column,row", arg)
	}
	var msa [3]int
	for k, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return model.Shutter{}, fmt.Errorf("shutter %q: %w", arg, err)
		}
		msa[k] = n
	}
	return model.NewShutter(msa[0], msa[1], msa[2])
}

func parseSides(s string) ([]model.Side, error) {
	switch strings.ToLower(s) {
	case "both", "":
		return []model.Side{model.NRS1, model.NRS2}, nil
	case "nrs1", "1":
		return []model.Side{model.NRS1}, nil
	case "nrs2", "2":
		return []model.Side{model.NRS2}, nil
	default:
		return nil, fmt.Errorf("side %q: want NRS1, NRS2 or both", s)
	}
}
