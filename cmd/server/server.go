package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/janhq/agent-memory-store/internal/config"
	"github.com/janhq/agent-memory-store/internal/infrastructure/logger"
	"github.com/janhq/agent-memory-store/internal/infrastructure/observability"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver"
)

// @title Agent Memory Store API
// @version 1.0
// @description Persistence for conversations, messages, steps, working memory and workflow state.
// @contact.name Jan Server Team
// @contact.url https://github.com/janhq/agent-memory-store
// @BasePath /
type Application struct {
	httpServer *httpserver.HTTPServer
	cfg        *config.Config
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HTTPServer, cfg *config.Config, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		cfg:        cfg,
		log:        log,
	}
}

// Start runs the HTTP server, plus the pprof listener when PPROF_ADDR is set, until ctx ends.
func (a *Application) Start(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return a.httpServer.Run(ctx)
	})
	if a.cfg.PprofAddr != "" {
		eg.Go(func() error {
			return a.runPprof(ctx)
		})
	}
	return eg.Wait()
}

func (a *Application) runPprof(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.cfg.PprofAddr,
		Handler:           http.DefaultServeMux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	a.log.Info().Str("addr", a.cfg.PprofAddr).Msg("pprof listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	loadEnvFiles()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, cleanup, err := CreateApplication()
	if err != nil {
		log := logger.GetLogger()
		log.Fatal().Err(err).Msg("create application")
	}
	defer cleanup()

	cfg, log := application.cfg, application.log

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := shutdownTelemetry(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	if err := application.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}
	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
