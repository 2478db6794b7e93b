// Package server assembles the Fiber application and runs it with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	_ "greeter/docs"
	"greeter/internal/config"
	handlers "greeter/internal/http/handler"
	"greeter/internal/http/middleware"
	"greeter/internal/service"
)

// Deps are the collaborators the HTTP application is built from.
type Deps struct {
	Config  *config.AppConfig
	Logger  logrus.FieldLogger
	Greeter service.GreetingService
	// Disasters and Places back the /api routes, which are not registered when nil.
	Disasters service.DisasterService
	Places    service.PlacesService
	// DB is pinged by /health. Nil means no database is configured.
	DB *sql.DB
	// Registry receives the HTTP metrics and backs /metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

// New builds the Fiber application: error handler, middleware, routes and the
// terminal not-found handler, in that order.
func New(d Deps) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               d.Config.ServiceName,
		DisableStartupMessage: true,
		CaseSensitive:         true,
		StrictRouting:         true,
		ErrorHandler:          handlers.ErrorHandler(d.Logger),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Tracing())
	app.Use(middleware.Logger(d.Logger))

	if d.Config.MetricsEnabled {
		reg := d.Registry
		if reg == nil {
			reg = prometheus.NewRegistry()
		}
		prom, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			return nil, fmt.Errorf("register http metrics: %w", err)
		}
		app.Use(prom.Handler())
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	// Innermost, so logging and metrics observe recovered panics as 500s.
	app.Use(recover.New())

	handlers.RegisterRoutes(app, d.Greeter)

	var db handlers.Pinger
	if d.DB != nil {
		db = d.DB
	}
	app.Get("/health", handlers.ReadinessProbe(db))

	if d.Disasters != nil {
		handlers.RegisterDisasterRoutes(app, d.Disasters)
	}
	if d.Places != nil {
		handlers.RegisterPlacesRoutes(app, d.Places)
	}

	if d.Config.SwaggerEnabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	app.Use(handlers.NotFound())

	return app, nil
}

// Run listens on addr and serves app until ctx is cancelled, then shuts down
// gracefully within timeout.
func Run(ctx context.Context, app *fiber.App, addr string, timeout time.Duration, log logrus.FieldLogger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return Serve(ctx, app, ln, timeout, log)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, app *fiber.App, ln net.Listener, timeout time.Duration, log logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(ln)
	}()

	log.WithField("addr", ln.Addr().String()).Info("server_started")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.WithField("timeout_sec", timeout.Seconds()).Info("server_shutting_down")
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	log.Info("server_stopped")
	return nil
}
