package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hackathon-registration-backend/internal/api/routes"
	"hackathon-registration-backend/internal/config"
	"hackathon-registration-backend/internal/database"
	"hackathon-registration-backend/internal/events"
	"hackathon-registration-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "hackathon-registration-backend/docs" // This is needed for swag
)

//	@title			Hackathon Registration API
//	@version		1.0
//	@description	Registration, capacity and team-formation backend for hackathons: students register individually or as teams, administrators form temporary teams from the individual pool and review applicants.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		SkipMigrate:  cfg.DBSkipMigrate,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Events are optional; without NATS the service runs with a no-op publisher
	deps := &routes.Dependencies{
		DB:        db,
		Config:    cfg,
		Publisher: events.NoopPublisher{},
	}
	var eventsClient *events.Client
	if cfg.EventsEnabled() {
		eventsClient, err = connectEvents(cfg)
		if err != nil {
			logrus.WithError(err).Warn("Event publishing disabled, NATS unavailable")
		} else {
			deps.Publisher = events.NewJetStreamPublisher(eventsClient)
			deps.Broker = eventsClient
		}
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(deps)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}

	if eventsClient != nil {
		if err := eventsClient.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close NATS connection")
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func connectEvents(cfg *config.Config) (*events.Client, error) {
	client, err := events.NewClient(&events.Config{
		URL:           cfg.NATSURL,
		Stream:        cfg.NATSStream,
		MaxReconnect:  cfg.NATSMaxReconnect,
		ReconnectWait: cfg.NATSReconnectWait(),
		Timeout:       cfg.NATSTimeout(),
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.NATSTimeout())
	defer cancel()
	if err := client.EnsureStream(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
