package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "courses_api/docs"
	"courses_api/internal/config"
	"courses_api/internal/handlers"
	"courses_api/internal/logger"
	"courses_api/internal/repository"
	"courses_api/internal/repository/db"
	"courses_api/internal/server"
	"courses_api/internal/service"
	"courses_api/internal/validation"

	"github.com/gin-gonic/gin"
)

const startupTimeout = 15 * time.Second

// @title           Courses API
// @version         1.0
// @description     REST API for users and the courses they own, with HTTP Basic authentication.
// @BasePath        /
// @securityDefinitions.basic  BasicAuth
func main() {
	cfg, err := config.Load("configs")
	if err != nil {
		logger.New(logger.Options{}).Fatalw("error reading config", "err", err)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer func() { _ = log.Sync() }()

	if cfg.LogLevel != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := openDB(cfg.DB, log)
	if err != nil {
		log.Fatalw("failed to open database", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close database", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn, db.Dialect(cfg.DB.Driver))
	services := service.NewService(repos, validation.New())
	apiHandler := handlers.NewHandler(services, log, handlers.WithErrorLogging(cfg.EnableGlobalErrorLogging))

	srv := server.New(server.Timeouts{
		ReadHeader: cfg.HTTP.ReadHeaderTimeout,
		Write:      cfg.HTTP.WriteTimeout,
		Idle:       cfg.HTTP.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, cfg.HTTP.ShutdownTimeout, log)
}

// openDB connects to the configured store and applies migrations.
func openDB(cfg config.DBConfig, log *logger.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	log.Infow("opening database", "driver", cfg.Driver)
	return db.Open(ctx, db.Dialect(cfg.Driver), cfg.DataSource())
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, timeout time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
