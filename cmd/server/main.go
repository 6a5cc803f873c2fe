package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/okhotnikov/libman/internal/audit"
	"github.com/okhotnikov/libman/internal/config"
	"github.com/okhotnikov/libman/internal/logging"
	"github.com/okhotnikov/libman/internal/search"
	"github.com/okhotnikov/libman/internal/server"
	"github.com/okhotnikov/libman/pkg/db"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.JWTSecret, "JWT_SECRET")
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	producer := audit.NewProducer(cfg.KafkaAddresses, "audit_events")
	recorder := &audit.Recorder{DB: database, Producer: producer, Log: logger}

	esClient, err := search.NewClient(cfg)
	if err != nil {
		log.Fatalf("elasticsearch init error: %v", err)
	}

	secret := []byte(cfg.JWTSecret)
	tokenTTL := time.Duration(cfg.TokenTTLMin) * time.Minute

	e := echo.New()
	e.Use(middleware.Recover(), middleware.RequestID(), server.ContextLogger(logger))

	deps := &server.Deps{
		DB:         database,
		JWTSecret:  secret,
		Auth:       &server.AuthHandler{DB: database, JWTSecret: secret, TokenTTL: tokenTTL, Audit: recorder},
		Books:      &server.BookHandler{DB: database, Audit: recorder, ES: esClient, ESIndex: cfg.ESIndex},
		Copies:     &server.CopyHandler{DB: database, Audit: recorder},
		Loans:      &server.LoanHandler{DB: database, Audit: recorder},
		Users:      &server.UserHandler{DB: database, Audit: recorder},
		Roles:      &server.RoleHandler{DB: database, Audit: recorder},
		Logs:       &server.LogHandler{DB: database},
		Restricted: &server.RestrictedHandler{DB: database, Audit: recorder},
		Catalog:    &server.CatalogHandler{DB: database, ES: esClient, ESIndex: cfg.ESIndex},
	}
	server.Register(e, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "err", err)
		}
	}
	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "err", err)
	}

	logger.Info("shutdown complete")
}
