package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventPortal/internal/auth"
	"eventPortal/internal/catalog"
	"eventPortal/internal/config"
	"eventPortal/internal/http-server/handlers/auth/login"
	"eventPortal/internal/http-server/handlers/event/createEvent"
	"eventPortal/internal/http-server/handlers/event/getAllEvents"
	"eventPortal/internal/http-server/handlers/intake/downloadSummary"
	"eventPortal/internal/http-server/handlers/intake/getConfirmation"
	"eventPortal/internal/http-server/handlers/intake/resetRequest"
	"eventPortal/internal/http-server/handlers/intake/submitRequest"
	"eventPortal/internal/http-server/handlers/report/getBudget"
	"eventPortal/internal/http-server/handlers/report/getDashboard"
	"eventPortal/internal/http-server/handlers/report/getLeadership"
	"eventPortal/internal/http-server/handlers/report/getPlanners"
	"eventPortal/internal/http-server/handlers/venue/getAllVenues"
	"eventPortal/internal/http-server/handlers/venue/getVenue"
	"eventPortal/internal/http-server/middleware/mwauth"
	"eventPortal/internal/http-server/middleware/mwlogger"
	"eventPortal/internal/intake/submission"
	"eventPortal/internal/lib/logger/handlers/slogpretty"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/notifier/simulated"
	"eventPortal/internal/storage/memory"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event portal", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage := memory.NewWithSeed(memory.SeedEvents())
	venues := catalog.NewVenueCatalog()
	reference := catalog.NewReference()

	authService := auth.New(log, cfg.Auth)
	notifier := simulated.New(log, cfg.Notifier)
	workflow := submission.New(log, notifier, storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/auth/login", login.New(log, authService))

	router.Get("/events", getAllEvents.New(log, storage))
	router.Get("/venues", getAllVenues.New(log, venues))
	router.Get("/venues/{id}", getVenue.New(log, venues))

	router.Get("/planners", getPlanners.New(log, reference))
	router.Get("/leadership", getLeadership.New(log, reference))
	router.Get("/budget", getBudget.New(log, reference))
	router.Get("/dashboard", getDashboard.New(log, storage, reference))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, authService))

		r.Post("/events", createEvent.New(log, storage))

		r.Route("/intake", func(r chi.Router) {
			r.Post("/", submitRequest.New(log, workflow))
			r.Post("/reset", resetRequest.New(log, workflow))
			r.Get("/confirmation", getConfirmation.New(log, workflow))
			r.Get("/confirmation/download", downloadSummary.New(log, workflow))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
