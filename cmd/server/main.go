// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, serves the HTTP API, and shuts down gracefully on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/dataworks/internal/adapters/http"
	"github.com/jsamuelsen11/dataworks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/dataworks/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/dataworks/internal/adapters/capabilities/htmlselect"
	"github.com/jsamuelsen11/dataworks/internal/adapters/capabilities/imagecodec"
	"github.com/jsamuelsen11/dataworks/internal/adapters/capabilities/markdown"
	"github.com/jsamuelsen11/dataworks/internal/adapters/capabilities/sqlengine"
	"github.com/jsamuelsen11/dataworks/internal/adapters/capabilities/tabular"
	"github.com/jsamuelsen11/dataworks/internal/adapters/clients/web"
	"github.com/jsamuelsen11/dataworks/internal/app"
	"github.com/jsamuelsen11/dataworks/internal/domain/pathguard"
	"github.com/jsamuelsen11/dataworks/internal/platform/config"
	"github.com/jsamuelsen11/dataworks/internal/platform/health"
	"github.com/jsamuelsen11/dataworks/internal/platform/httpclient"
	"github.com/jsamuelsen11/dataworks/internal/platform/logging"
	"github.com/jsamuelsen11/dataworks/internal/platform/telemetry"
	"github.com/jsamuelsen11/dataworks/internal/ports"

	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, telemetry, logger.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if otel.logger != nil {
		logger = logging.WithOTelBridge(logger, cfg.Telemetry.ServiceName, otel.logger)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))

	logger.Info("task service configured",
		slog.String("allowed_root", cfg.Tasks.AllowedRoot),
		slog.String("guard_mode", cfg.Tasks.GuardMode),
	)

	// Serve blocks until the signal context is canceled, then drains
	// in-flight requests within the configured shutdown timeout.
	serveErr := server.Serve(ctx)
	if serveErr != nil {
		logger.Error("server failed", slog.Any("error", serveErr))
	} else {
		logger.Info("received shutdown signal")
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	if serveErr != nil {
		return fmt.Errorf("server failed: %w", serveErr)
	}
	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	logger  *sdklog.LoggerProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes every provider. Nil-safe.
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
	if o.logger != nil {
		if err := o.logger.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("logger shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	o := &otelProviders{}
	fail := func(err error) (*otelProviders, error) {
		_ = o.Shutdown(ctx)
		return nil, err
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	o.tracer = tp

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return fail(fmt.Errorf("init meter: %w", err))
	}
	o.meter = mp

	lp, err := telemetry.InitLogger(ctx, cfg.Telemetry.ServiceName)
	if err != nil {
		return fail(fmt.Errorf("init logger: %w", err))
	}
	o.logger = lp

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		return fail(fmt.Errorf("creating metrics: %w", err))
	}
	o.metrics = metrics

	return o, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "web", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Fetcher, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return web.NewClient(client, cfg.Client.MaxBodyBytes, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*pathguard.Guard, error) {
		return pathguard.New(cfg.Tasks.AllowedRoot, pathguard.Mode(cfg.Tasks.GuardMode), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		guard := do.MustInvoke[*pathguard.Guard](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		caps := app.Capabilities{
			Fetcher:    do.MustInvoke[ports.Fetcher](i),
			Embedded:   sqlengine.NewSQLite(),
			Analytical: sqlengine.NewDuckDB(),
			Server:     sqlengine.NewPostgres(),
			Selector:   htmlselect.New(),
			Images:     imagecodec.New(),
			Markdown:   markdown.New(),
			Tabular:    tabular.New(),
		}
		return app.NewTaskService(guard, caps, logger,
			app.WithRecorder(metrics),
			app.WithMaxCSVBytes(cfg.Tasks.MaxCSVBytes),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.FilterHandler, error) {
		svc := do.MustInvoke[ports.TaskService](i)
		return handlers.NewFilterHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		filterH := do.MustInvoke[*handlers.FilterHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(filterH, healthH,
			middleware.Stack(middleware.StackConfig{
				Logger:  logger,
				Metrics: metrics,
				Timeout: cfg.Server.WriteTimeout,
			}),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
