package metrics

import (
	"context"
	"errors"
	"net/http"
	"tempest/internal/core/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const shutdownGrace = 5 * time.Second

// Prometheus records command invocations on its own registry.
type Prometheus struct {
	registry    *prometheus.Registry
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func NewPrometheus() *Prometheus {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	factory := promauto.With(registry)

	return &Prometheus{
		registry: registry,
		invocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tempest_command_invocations_total",
				Help: "Total number of dispatched commands by command and outcome",
			},
			[]string{"command", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tempest_command_duration_seconds",
				Help:    "Duration of dispatched commands in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"command"},
		),
	}
}

func (p *Prometheus) RecordInvocation(command string, outcome domain.Outcome, elapsed time.Duration) {
	p.invocations.WithLabelValues(command, string(outcome)).Inc()
	p.duration.WithLabelValues(command).Observe(elapsed.Seconds())
}

func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (p *Prometheus) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", p.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("failed to stop metrics server")
		}
	}()

	log.Info().Str("addr", addr).Msg("serving metrics")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
