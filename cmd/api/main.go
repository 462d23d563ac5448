package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-sage/internal/config"
	"github.com/Dan9191/finance-sage/internal/handler"
	"github.com/Dan9191/finance-sage/internal/integrations/cbr"
	"github.com/Dan9191/finance-sage/internal/repository"
	"github.com/Dan9191/finance-sage/internal/search"
	"github.com/Dan9191/finance-sage/internal/service"
	"github.com/Dan9191/finance-sage/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Initialize storage
	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize store: %v", err)
	}
	defer closeStore()

	properties, err := store.ListProperties(context.Background())
	if err != nil {
		logger.Fatalf("Failed to load properties: %v", err)
	}
	index, err := search.NewPropertyIndex(properties)
	if err != nil {
		logger.Fatalf("Failed to build property index: %v", err)
	}
	defer index.Close()

	// Initialize layers
	authService := service.NewAuthService(store, logger, cfg)
	bookingService := service.NewBookingService(store, email.NewSender(cfg, logger), index, cfg, logger)
	router := handler.NewRouter(handler.Services{
		Finance: service.NewFinanceService(logger),
		Booking: bookingService,
		Auth:    authService,
		KeyRate: cbr.NewCBRClient(cfg, logger),
	}, logger)

	// Cancel bookings whose payment never arrived
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.ExpirySchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := bookingService.ExpireStale(ctx); err != nil {
			logger.WithError(err).Error("Failed to expire stale bookings")
		}
	})
	if err != nil {
		logger.Fatalf("Invalid BOOKING_EXPIRY_SCHEDULE %q: %v", cfg.ExpirySchedule, err)
	}
	scheduler.Start()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	<-scheduler.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server stopped")
}

// openStore connects to PostgreSQL when DB_CONN is set and falls back to
// the seeded in-memory store otherwise.
func openStore(cfg *config.Config, logger *logrus.Logger) (repository.Store, func(), error) {
	if cfg.DBConn == "" {
		logger.Warn("DB_CONN not set, using in-memory store")
		return repository.NewMemoryStore(repository.SeedProperties()), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := repository.NewPostgresStore(db)
	if err := store.Migrate(ctx, repository.SeedProperties()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, func() { db.Close() }, nil
}
