package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/clearpath-aba/clearpath/pkg/handlers/dashboard"
	clearpathmiddleware "github.com/clearpath-aba/clearpath/pkg/server/middleware"
	"github.com/clearpath-aba/clearpath/pkg/services/dashboard"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Dashboard dashboard.Service
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	handler := handlers.NewHandler(config.Dependencies.Dashboard)

	router := chi.NewRouter()
	router.Use(clearpathmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/options", handler.GetFilterOptions)
		r.Get("/clients", handler.ListClients)
		r.Post("/programs/query", handler.QueryPrograms)
		r.Post("/summary", handler.GetSummary)
		r.Post("/series", handler.GetSeries)
		r.Post("/overview", handler.GetOverview)
		r.Get("/programs/{program}", handler.GetProgramDetail)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	return &WebAPI{
		logger:          &config.Dependencies.Logger,
		shutdownTimeout: config.ShutdownTimeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: ConfigureRouter(config),
		},
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
