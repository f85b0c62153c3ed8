package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"ActorsMoviesAPI/config"
	"ActorsMoviesAPI/internal/database"
	"ActorsMoviesAPI/internal/handlers"
	"ActorsMoviesAPI/internal/logging"
	"ActorsMoviesAPI/internal/repositories"
	"ActorsMoviesAPI/internal/routes"
	"ActorsMoviesAPI/internal/server"
	"ActorsMoviesAPI/internal/services"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cfg *config.Config) error {
	logger, syncLogs, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return err
	}
	defer syncLogs()
	for _, warning := range cfg.Warnings {
		logger.Info("Ignoring configuration value", "warning", warning)
	}
	if !cfg.LogDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectDB(ctx, cfg.GetDBConnectionString(), cfg.DB.MaxConns, logger)
	if err != nil {
		logger.Error(err, "Failed to connect to database")
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	// Dependency Injection
	actorRepo := repositories.NewActorRepository(db)
	movieRepo := repositories.NewMovieRepository(db)

	actorService := services.NewActorService(actorRepo)
	movieService := services.NewMovieService(movieRepo)

	actorHandler := handlers.NewActorHandler(actorService)
	movieHandler := handlers.NewMovieHandler(movieService)

	// Set up routes
	router := routes.SetupRouter(logger, cfg.RateLimit, actorHandler, movieHandler)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := server.Run(ctx, srv, cfg.ShutdownTimeout, logger); err != nil {
		logger.Error(err, "Server exited with error")
		return err
	}
	return nil
}
