package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MedicalAssistant/internal/config"
	"MedicalAssistant/internal/middleware"
	"MedicalAssistant/pkg/log"
	"MedicalAssistant/pkg/redis"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	validator := config.NewValidator()
	appConfig, err := config.LoadAppConfig(os.Getenv("CONFIG_FILE"), validator)
	if err != nil {
		logger.Fatal(err)
	}

	options := []config.ServerOption{
		config.WithFiber(config.NewFiber(logger)),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithMiddleware(middleware.Options{
			RatePerSecond: appConfig.RateLimitPerSecond,
			Burst:         appConfig.RateLimitBurst,
		}),
		config.WithUtils(),
		config.WithPort(appConfig.Port),
	}
	switch appConfig.DatasetSource {
	case config.DatasetSourcePostgres:
		options = append(options, config.WithDatabase())
	case config.DatasetSourceS3:
		options = append(options, config.WithS3Client())
	}
	if appConfig.RedisAddress != "" {
		options = append(options, config.WithRedisServer(redis.New(logger, appConfig.PredictionCacheTTL)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	options = append(options, config.WithDiagnosisEngine(ctx, appConfig))
	server, err := config.NewServer(options...)
	cancel()
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
