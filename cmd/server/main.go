// Package main is the entry point for the relationship registry. It wires
// dependencies with samber/do v2, applies the configured declarations,
// optionally pushes the catalog to the host platform, serves the HTTP API
// and shuts down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/relationship-registry/internal/adapters/clients/host"
	adapthttp "github.com/jsamuelsen11/relationship-registry/internal/adapters/http"
	"github.com/jsamuelsen11/relationship-registry/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/relationship-registry/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/relationship-registry/internal/app"
	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/config"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/health"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/httpclient"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/logging"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/telemetry"
	"github.com/jsamuelsen11/relationship-registry/internal/ports"
	"github.com/jsamuelsen11/relationship-registry/internal/registry"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	hostServiceName = "host-api"
	registryCheck   = "registry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// The catalog is ready once the configured declarations are in.
	var declared atomic.Bool
	checks := do.MustInvoke[ports.HealthRegistry](injector)
	checks.Register(health.Check{
		CheckName: registryCheck,
		Fn: func(context.Context) error {
			if !declared.Load() {
				return errors.New("declarations not applied")
			}
			return nil
		},
	})
	if cfg.Host.Enabled {
		checks.Register(do.MustInvoke[*host.Client](injector))
	}

	svc := do.MustInvoke[ports.RelationshipService](injector)
	if err := svc.Declare(ctx, declarations(cfg.Registry)); err != nil {
		return fmt.Errorf("applying declarations: %w", err)
	}
	declared.Store(true)

	if cfg.Host.Enabled && cfg.Registry.SyncOnStartup {
		syncOnStartup(ctx, svc, logger)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// syncOnStartup pushes the catalog to the host. Failures are logged and do
// not stop the service; POST /api/v1/host/sync can retry them.
func syncOnStartup(ctx context.Context, svc ports.RelationshipService, logger *slog.Logger) {
	res, err := svc.SyncHost(ctx)
	if err != nil {
		logger.Error("startup host sync failed", slog.Any("error", err))
		return
	}
	if len(res.Errors) > 0 {
		logger.Warn("startup host sync incomplete",
			slog.Int("registered", res.Registered),
			slog.Int("failed", len(res.Errors)),
		)
	}
}

func declarations(cfg config.RegistryConfig) ports.Declarations {
	decls := ports.Declarations{
		TypeToType:  make([]ports.TypeToTypeDeclaration, 0, len(cfg.TypeToType)),
		TypeToActor: make([]ports.TypeToActorDeclaration, 0, len(cfg.TypeToActor)),
	}
	for _, d := range cfg.TypeToType {
		decls.TypeToType = append(decls.TypeToType, ports.TypeToTypeDeclaration{TypeA: d.TypeA, TypeB: d.TypeB, Name: d.Name})
	}
	for _, d := range cfg.TypeToActor {
		decls.TypeToActor = append(decls.TypeToActor, ports.TypeToActorDeclaration{Type: d.Type, Role: d.Role})
	}
	return decls
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tc := cfg.Telemetry
	tp, err := telemetry.InitTracer(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, tc.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp, metrics: metrics}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.RelationshipRegistry, error) {
		return registry.New(relationship.NewFactory()), nil
	})

	do.Provide(injector, func(i do.Injector) (*host.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return host.New(httpclient.New(&cfg.Host, hostServiceName, metrics, logger), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RelationshipService, error) {
		opts := []app.Option{
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
			app.WithSyncWorkers(cfg.Registry.SyncWorkers),
		}
		if cfg.Host.Enabled {
			opts = append(opts, app.WithHostClient(do.MustInvoke[*host.Client](i)))
		}
		return app.NewRelationshipService(do.MustInvoke[ports.RelationshipRegistry](i), logger, opts...), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.RelationshipHandler, error) {
		return handlers.NewRelationshipHandler(do.MustInvoke[ports.RelationshipService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		// The host is reported on /health/ready but does not gate readiness.
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), registryCheck), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.RelationshipHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
