package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/config"
	"github.com/teatime-labs/moodgate/pkg/dependency_container"
	"github.com/teatime-labs/moodgate/pkg/infra/database"
	infraLogger "github.com/teatime-labs/moodgate/pkg/infra/logger"
	_ "github.com/teatime-labs/moodgate/pkg/infra/migrations"
	"github.com/teatime-labs/moodgate/pkg/infra/prometheus"
	"github.com/teatime-labs/moodgate/pkg/server"
	"github.com/teatime-labs/moodgate/pkg/server/router"
	"github.com/teatime-labs/moodgate/pkg/version"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger("gateway")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	prometheus.Initialize(prometheus.MetricsConfig{
		EnableLatency: cfg.Metrics.EnableLatency,
	})

	db, err := database.NewDB(logger, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Error("failed to close database")
		}
	}()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
		DB:     db,
	})
	if err != nil {
		logger.Fatalf("failed to initialize dependencies: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.WithError(err).Error("failed to release dependencies")
		}
	}()

	srv, err := server.NewGatewayServer(server.GatewayServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewAPIRouter(container.MiddlewareTransport, container.HandlerTransport),
		},
	})
	if err != nil {
		logger.Fatalf("failed to build server: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"version":  version.Version,
		"provider": cfg.Classifier.Provider,
		"model":    cfg.Classifier.Model,
	}).Info("moodgate starting")

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}
