package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/dono-tools/receipt-atlas/pkg/handlers/receipt"
	receiptmiddleware "github.com/dono-tools/receipt-atlas/pkg/server/middleware"
	"github.com/dono-tools/receipt-atlas/pkg/services/config"
	"github.com/dono-tools/receipt-atlas/pkg/services/history"
)

type Dependencies struct {
	Registry config.Registry
	History  *history.Service
	Fetcher  handlers.FetcherFactory
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewWebAPI(logger zerolog.Logger, cfg Config) *WebAPI {
	handler := handlers.NewHandler(
		cfg.Dependencies.Registry,
		cfg.Dependencies.History,
		cfg.Dependencies.Fetcher,
	)

	router := chi.NewRouter()

	router.Use(receiptmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/profiles", handler.ListProfiles)
		r.Get("/profiles/{profile}/donations", handler.GetDonations)
		r.Get("/profiles/{profile}/company", handler.GetCompanyInfo)
		r.Get("/profiles/{profile}/history", handler.GetHistory)
		r.Post("/profiles/{profile}/campaigns", handler.RecordCampaign)
	})

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    cfg.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Router exposes the configured mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
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
