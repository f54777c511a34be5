package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/san-kum/quadlab/internal/experiment"
	"github.com/san-kum/quadlab/internal/metrics"
	"github.com/san-kum/quadlab/internal/quad"
)

var (
	logger         = zerolog.Nop()
	promRegistry   *prometheus.Registry
	collector      *metrics.Collector
	tracerProvider *sdktrace.TracerProvider
)

func setupObservability(cmd *cobra.Command, args []string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()

	if metricsOut != "" {
		promRegistry = prometheus.NewRegistry()
		collector = metrics.NewCollector(promRegistry)
	}

	if spans {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(os.Stderr), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("span exporter: %w", err)
		}
		tracerProvider = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	}
	return nil
}

func shutdownObservability(ctx context.Context) error {
	if promRegistry != nil {
		if err := prometheus.WriteToTextfile(metricsOut, promRegistry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info().Str("path", metricsOut).Msg("metrics written")
	}
	if tracerProvider != nil {
		return tracerProvider.Shutdown(ctx)
	}
	return nil
}

// observers returns the report observers enabled by the global flags.
func observers(ctx context.Context) []quad.Observer {
	obs := make([]quad.Observer, 0, 2)
	if collector != nil {
		obs = append(obs, collector)
	}
	if tracerProvider != nil {
		obs = append(obs, metrics.NewSpanObserver(ctx, tracerProvider))
	}
	return obs
}

func observeError(res *experiment.Result) {
	if collector != nil {
		collector.ObserveError(res.Report.Method, res.AbsErr)
	}
}

func newRegistry() *experiment.Registry {
	reg := experiment.NewRegistry()
	reg.SetLogger(logger)
	return reg
}
