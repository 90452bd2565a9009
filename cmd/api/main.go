package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zacharypellouchoud1/stringup-backend/internal/app"
	"github.com/zacharypellouchoud1/stringup-backend/internal/clock"
	"github.com/zacharypellouchoud1/stringup-backend/internal/config"
	"github.com/zacharypellouchoud1/stringup-backend/internal/storage/postgres"
	transporthttp "github.com/zacharypellouchoud1/stringup-backend/internal/transport/http"
	"github.com/zacharypellouchoud1/stringup-backend/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("connect to db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		logger.Error("db ping", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		logger.Error("apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := postgres.SeedStringers(startupCtx, pool); err != nil {
		logger.Error("seed stringers", slog.String("error", err.Error()))
		os.Exit(1)
	}

	stringerRepo := postgres.NewStringerRepository(pool)
	stringerSvc := app.NewStringerService(stringerRepo)
	bookingRepo := postgres.NewBookingRepository(pool)
	bookingSvc := app.NewBookingService(bookingRepo, clock.NewSystem())

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/stringers", transporthttp.HandleStringers(stringerSvc))
	mux.Handle("/stringers/", transporthttp.HandleStringerByID(stringerSvc))
	mux.Handle("/bookings", transporthttp.HandleCreateBooking(bookingSvc))
	mux.Handle("/", transporthttp.NotFoundHandler())

	corsOrigins := parseCSV(cfg.CORSOrigins)
	handler := transporthttp.RequestLogger(transporthttp.CORS(corsOrigins, mux), logger)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler,
	}

	logger.Info("api listening", slog.String("port", cfg.HTTPPort))

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}

func parseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
