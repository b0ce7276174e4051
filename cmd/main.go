package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel_planner/internal/config"
	"travel_planner/internal/handlers"
	"travel_planner/internal/logger"
	"travel_planner/internal/repository"
	"travel_planner/internal/server"
	"travel_planner/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// bootstrap logger until the configured one is known
	log := logger.Get(logger.InfoLevel)

	cfg, err := config.Load("configs")
	if err != nil {
		log.Fatalw("error reading config", "err", err)
	}
	log = logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// a store that cannot be reached at startup is fatal
	repos, closeStore, err := repository.Open(context.Background(), cfg.DB)
	if err != nil {
		log.Fatalw("failed to open store", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if cerr := closeStore(ctx); cerr != nil {
			log.Errorw("failed to close store", "err", cerr)
		}
	}()
	log.Infow("store connected", "driver", cfg.DB.Driver)

	services := service.NewService(repos, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		LegacyRoutes: cfg.Server.LegacyRoutes,
		CORSOrigins:  cfg.Server.CORSOrigins,
	})
	if cfg.Server.LegacyRoutes {
		log.Warnw("unauthenticated /api routes are enabled")
	}

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Server.Port, apiHandler, log)

	waitForShutdown(srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
