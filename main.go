package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/matahj/autobus-api/config"
	"github.com/matahj/autobus-api/handlers"
	"github.com/matahj/autobus-api/middleware"
	"github.com/matahj/autobus-api/store"
)

func newLogger() (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	logConfig.OutputPaths = []string{"stdout"}
	logConfig.ErrorOutputPaths = []string{"stderr"}
	logConfig.EncoderConfig.TimeKey = "timestamp"
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return logConfig.Build()
}

func main() {
	log, err := newLogger()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	if err := config.LoadEnv(); err != nil {
		log.Warn("could not load .env file", zap.Error(err))
	}
	cfg := config.Load()

	ctx := context.Background()
	st, err := store.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to connect to storage", zap.Error(err))
	}

	r := mux.NewRouter()
	r.Use(middleware.RecoveryMiddleware(log))
	r.Use(middleware.LoggingMiddleware(log))

	handlers.NewHealthHandler(st, log).Register(r)
	handlers.NewTerminalHandler(st, log).Register(r)
	handlers.NewBusHandler(st, log).Register(r)
	handlers.NewDriverHandler(st, log).Register(r)
	handlers.NewAdministratorHandler(st, log).Register(r)
	handlers.NewCustomerHandler(st, log).Register(r)
	handlers.NewTripHandler(st, log).Register(r)
	handlers.NewTicketHandler(st, log).Register(r)

	corsHandler := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Origin"},
		MaxAge:         86400,
	})

	srv := &http.Server{
		Handler:           corsHandler.Handler(r),
		Addr:              ":" + cfg.Port,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutdown signal received")
	case err := <-serverErrors:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("error during server shutdown", zap.Error(err))
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Error("error closing storage connection", zap.Error(err))
	}
	log.Info("server stopped")
}
