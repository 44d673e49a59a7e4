// Command api runs the commerce HTTP service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stocklot/commerce-api/internal/config"
	"github.com/stocklot/commerce-api/internal/database"
	"github.com/stocklot/commerce-api/internal/handler"
	"github.com/stocklot/commerce-api/internal/logger"
	"github.com/stocklot/commerce-api/internal/middleware"
	"github.com/stocklot/commerce-api/internal/repository"
	"github.com/stocklot/commerce-api/internal/router"
	"github.com/stocklot/commerce-api/internal/server"
	"github.com/stocklot/commerce-api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		// config.New logs fatally on its own; this is the last resort.
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()
	if err := database.Migrate(ctx, &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	s, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	middlewares := middleware.NewMiddlewares(s)
	handlers := handler.NewHandlers(s, services)

	e := router.New(s, middlewares, handlers)
	s.SetupHTTPServer(e)

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
