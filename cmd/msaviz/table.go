package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/msaviz/core"
	"github.com/signalsfoundry/msaviz/internal/logging"
	"github.com/signalsfoundry/msaviz/internal/wavetable"
)

func newTableCmd(a *app) *cobra.Command {
	var (
		filter, grating string
		output          string
		progress        bool
	)

	cmd := &cobra.Command{
		Use:   "table <msa-config.csv>",
		Short: "Write the wavelength limits of every open shutter",
		Long: `Parses an MSA shutter configuration file and writes, for every open
shutter that is not stuck, the minimum and maximum wavelength reaching NRS1
and NRS2 within the science range of the filter/grating pair. Sides without
light, or whose trace failed, are written as "--".`,
		Example: "  msaviz table config.csv --filter f070lp --grating g140m -o limits.txt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stop, err := a.startTracing(ctx, cmd)
			if err != nil {
				return err
			}
			defer stop()

			reg, err := a.registry(ctx)
			if err != nil {
				return err
			}

			opts := a.settings.MSAConfigOptions()
			if progress {
				opts = append(opts, core.WithProgress(progressPrinter(cmd.ErrOrStderr())))
			}
			table, err := wavetable.Calculate(ctx, reg, args[0], filter, grating, opts...)
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			if _, err := table.WriteTo(out); err != nil {
				return fmt.Errorf("write table: %w", err)
			}
			a.log.Info(ctx, "wavelength table written",
				logging.String("config", args[0]),
				logging.Int("shutters", len(table.Rows)),
				logging.String("output", outputName(output)),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "filter name, e.g. f070lp or clear")
	cmd.Flags().StringVar(&grating, "grating", "", "grating name, e.g. g140m or prism")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the table to this file instead of stdout")
	cmd.Flags().BoolVar(&progress, "progress", false, "report progress on stderr")
	_ = cmd.MarkFlagRequired("filter")
	_ = cmd.MarkFlagRequired("grating")
	return cmd
}

// progressPrinter reports every tenth of the way through.
func progressPrinter(w io.Writer) core.ProgressFunc {
	last := -1
	return func(done, total int) {
		if total == 0 {
			return
		}
		step := done * 10 / total
		if step != last {
			last = step
			fmt.Fprintf(w, "evaluated %d/%d shutters\n", done, total)
		}
	}
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
