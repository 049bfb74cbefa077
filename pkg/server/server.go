package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boerenkompas/dashboard/pkg/handlers/health"
	kpihandlers "github.com/boerenkompas/dashboard/pkg/handlers/kpi"
	dashboardmiddleware "github.com/boerenkompas/dashboard/pkg/server/middleware"
	"github.com/boerenkompas/dashboard/pkg/services/kpi"
	"github.com/boerenkompas/dashboard/pkg/services/tenant"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	defaultUserHeader      = "X-User-ID"
)

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	KPI     kpi.Service
	Tenants tenant.Resolver
	Store   health.Pinger
	Logger  zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	UserHeader      string
	DebugEnabled    bool
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	logger := config.Dependencies.Logger
	userHeader := config.UserHeader
	if userHeader == "" {
		userHeader = defaultUserHeader
	}

	kpiHandler := kpihandlers.NewHandler(config.Dependencies.KPI)
	healthHandler := health.NewHandler(config.Dependencies.Store)

	router := chi.NewRouter()

	router.Use(dashboardmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", healthHandler.Check)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(dashboardmiddleware.Tenant(config.Dependencies.Tenants, userHeader))

		r.Get("/dashboard/kpis", kpiHandler.GetKpis)
		if config.DebugEnabled {
			r.Get("/dashboard/kpis/debug", kpiHandler.GetDebugSnapshot)
		}
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	logger := config.Dependencies.Logger
	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WebAPI{
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           ConfigureRouter(config),
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
