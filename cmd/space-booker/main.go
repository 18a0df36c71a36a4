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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spaceBooker/internal/booking"
	"spaceBooker/internal/config"
	"spaceBooker/internal/http-server/handlers/booking/createBooking"
	"spaceBooker/internal/http-server/handlers/booking/createBookings"
	"spaceBooker/internal/http-server/handlers/room/getRoomBookings"
	"spaceBooker/internal/http-server/middleware/mwlogger"
	"spaceBooker/internal/lib/logger/handlers/slogpretty"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/storage/postgres"
	"spaceBooker/internal/storage/rediscache"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting space booker", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	var directory booking.Directory = storage

	if cfg.Redis.Enabled {
		client := rediscache.NewClient(cfg.Redis)
		if err = rediscache.Ping(context.Background(), client); err != nil {
			log.Warn("redis unavailable, directory cache disabled", sl.Err(err))
		} else {
			directory = rediscache.New(log, storage, client, cfg.Redis.TTL)
			log.Info("directory cache enabled", slog.String("address", cfg.Redis.Address))
		}
	}

	service := booking.New(log, directory, storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/api/bookings", createBooking.New(log, service))
	router.Post("/api/bookings/multiple", createBookings.New(log, service))
	router.Get("/api/rooms/{id}/bookings", getRoomBookings.New(log, service))
	router.Handle("/metrics", promhttp.Handler())

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
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
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
