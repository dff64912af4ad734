// Package main runs the assignment schedule service: it wires the platform
// client, the schedule service and the HTTP adapter with samber/do, serves
// until SIGINT or SIGTERM and then drains.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/http"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/app"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/config"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/health"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/logging"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/ports"
)

const (
	platformServiceName = "platform-api"
	telemetryFlushLimit = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "assignment-schedule-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE must be set (local, dev, qa or prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryFlushLimit)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("flushing telemetry", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	provide(injector)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring: %w", err)
	}

	logger.InfoContext(ctx, "service configured",
		slog.String("profile", profile),
		slog.String("platform_url", cfg.Client.BaseURL),
		slog.Int("bulk_max_workers", cfg.Bulk.MaxWorkers),
		slog.Bool("telemetry", cfg.Telemetry.Enabled),
	)

	if err := server.Run(ctx); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

// provide registers the service graph. Everything resolves lazily from
// the *adapthttp.Server request in run.
func provide(i do.Injector) {
	do.Provide(i, func(i do.Injector) (*httpclient.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return httpclient.New(&cfg.Client, platformServiceName,
			do.MustInvoke[*telemetry.Metrics](i), do.MustInvoke[*slog.Logger](i)), nil
	})

	do.Provide(i, func(i do.Injector) (*acl.PlatformClient, error) {
		return acl.NewPlatformClient(do.MustInvoke[*httpclient.Client](i), do.MustInvoke[*slog.Logger](i)), nil
	})

	do.Provide(i, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*acl.PlatformClient](i))
		return registry, nil
	})

	do.Provide(i, func(i do.Injector) (ports.ScheduleService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		opts := []app.Option{app.WithMaxWorkers(cfg.Bulk.MaxWorkers)}
		if m := do.MustInvoke[*telemetry.Metrics](i); m != nil {
			opts = append(opts, app.WithRecorder(m))
		}
		return app.NewScheduleService(do.MustInvoke[*acl.PlatformClient](i), do.MustInvoke[*slog.Logger](i), opts...), nil
	})

	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		return adapthttp.NewRouter(
			handlers.NewScheduleHandler(do.MustInvoke[ports.ScheduleService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
			middleware.AppContext(),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), do.MustInvoke[*slog.Logger](i)), nil
	})
}
