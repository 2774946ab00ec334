package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/msaviz/internal/logging"
	"github.com/signalsfoundry/msaviz/internal/observability"
	"github.com/signalsfoundry/msaviz/internal/settings"
	"github.com/signalsfoundry/msaviz/refdata"
)

// app carries state shared by the subcommands once the root pre-run has
// loaded settings.
type app struct {
	configPath string
	envFile    string
	refData    string
	logLevel   string

	settings *settings.Settings
	log      logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "msaviz",
		Short: "Map NIRSpec micro-shutters to detector wavelengths",
		Long: `msaviz predicts the wavelength that each open micro-shutter of the
NIRSpec MSA sends to every pixel of the NRS1 and NRS2 detectors, for a given
filter/grating pair or the prism.

Settings come from an optional YAML file, MSAVIZ_* environment variables and
an optional .env file, in increasing order of precedence for the environment.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML settings file")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before settings (skipped when absent)")
	flags.StringVar(&a.refData, "refdata", "", "reference data directory (overrides settings)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides settings)")

	root.AddCommand(
		newTableCmd(a),
		newEvaluateCmd(a),
		newInstrumentsCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := settings.LoadDotEnv(a.envFile); err != nil {
			return err
		}
	}
	s, err := settings.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.refData != "" {
		s.RefData = a.refData
	}
	if a.logLevel != "" {
		s.Log.Level = a.logLevel
	}
	a.settings = s
	a.log = s.Logger(cmd.ErrOrStderr())
	return nil
}

func (a *app) registry(ctx context.Context) (*refdata.Registry, error) {
	reg, err := refdata.Load(a.settings.RefData)
	if err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}
	a.log.Debug(ctx, "reference data loaded",
		logging.String("dir", a.settings.RefData),
		logging.Int("instruments", len(reg.Instruments())),
	)
	return reg, nil
}

// startTracing initialises tracing from settings and returns its shutdown.
func (a *app) startTracing(ctx context.Context, cmd *cobra.Command) (func(), error) {
	cfg := a.settings.Tracing
	if cfg.Writer == nil {
		cfg.Writer = cmd.ErrOrStderr()
	}
	shutdown, err := observability.InitTracing(ctx, cfg, a.log)
	if err != nil {
		return nil, err
	}
	return func() { observability.ShutdownWithTimeout(context.Background(), shutdown, a.log) }, nil
}
