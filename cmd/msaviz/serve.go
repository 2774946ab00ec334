package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/signalsfoundry/msaviz/core"
	msavizv1 "github.com/signalsfoundry/msaviz/internal/genproto/msaviz/v1"
	"github.com/signalsfoundry/msaviz/internal/logging"
	"github.com/signalsfoundry/msaviz/internal/observability"
	"github.com/signalsfoundry/msaviz/internal/settings"
	"github.com/signalsfoundry/msaviz/internal/wavesvc"
	"github.com/signalsfoundry/msaviz/refdata"
)

func newServeCmd(a *app) *cobra.Command {
	var grpcAddr, metricsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve wavelength predictions over gRPC",
		Long: `Starts the msaviz.v1.WavelengthService gRPC server and, unless the
metrics address is empty, a Prometheus /metrics endpoint. The server stops
gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if grpcAddr != "" {
				a.settings.Server.GRPCAddr = grpcAddr
			}
			if cmd.Flags().Changed("metrics-addr") {
				a.settings.Server.MetricsAddr = metricsAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stopTracing, err := a.startTracing(ctx, cmd)
			if err != nil {
				return err
			}
			defer stopTracing()

			reg, err := a.registry(ctx)
			if err != nil {
				return err
			}

			lis, err := net.Listen("tcp", a.settings.Server.GRPCAddr)
			if err != nil {
				a.log.Error(ctx, "failed to listen for gRPC", logging.String("addr", a.settings.Server.GRPCAddr), logging.Err(err))
				return err
			}
			return run(ctx, a.settings, reg, a.log, lis, prometheus.NewRegistry())
		},
	}

	cmd.Flags().StringVar(&grpcAddr, "grpc-addr", "", "TCP address the gRPC server listens on (overrides settings)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "HTTP address for Prometheus /metrics; empty disables it (overrides settings)")
	return cmd
}

// run serves the wavelength service on lis until ctx is cancelled.
func run(ctx context.Context, s *settings.Settings, reg *refdata.Registry, log logging.Logger, lis net.Listener, promReg *prometheus.Registry) error {
	if log == nil {
		log = logging.Noop()
	}
	if err := promReg.Register(collectors.NewGoCollector()); err != nil {
		return err
	}
	if err := promReg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return err
	}
	rpcMetrics, err := observability.NewRPCCollector(promReg)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.Err(err))
		return err
	}
	computeMetrics, err := observability.NewComputeCollector(promReg)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.Err(err))
		return err
	}

	configOpts := append(s.MSAConfigOptions(), core.WithMetricsRecorder(computeMetrics))
	svc := wavesvc.NewServer(reg, log,
		wavesvc.WithSolverOptions(s.SolverOptions()...),
		wavesvc.WithMSAConfigOptions(configOpts...),
		wavesvc.WithMetricsRecorder(computeMetrics),
	)

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			wavesvc.RequestIDUnaryServerInterceptor(log),
			wavesvc.TracingUnaryServerInterceptor(),
			rpcMetrics.UnaryServerInterceptor(),
		),
	)
	msavizv1.RegisterWavelengthServiceServer(server, svc)

	metricsSrv := serveMetrics(s.Server.MetricsAddr, rpcMetrics, log)

	log.Info(ctx, "starting wavelength gRPC server",
		logging.String("addr", lis.Addr().String()),
		logging.Int("instruments", len(reg.Instruments())),
	)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(lis)
	}()

	var exitErr error
	select {
	case <-ctx.Done():
		log.Info(context.Background(), "shutting down wavelength server")
		server.GracefulStop()
	case exitErr = <-serveErr:
		log.Error(context.Background(), "gRPC server exited", logging.Err(exitErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	if errors.Is(exitErr, grpc.ErrServerStopped) {
		return nil
	}
	return exitErr
}

func serveMetrics(addr string, collector *observability.RPCCollector, log logging.Logger) *http.Server {
	if addr == "" || collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn(context.Background(), "metrics server exited", logging.Err(err))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}
