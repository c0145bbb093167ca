package main

import (
	"fmt"
	"os"
	"os/signal"

	"payout-service/src/internal/config"
	"payout-service/src/pkg/log"

	"github.com/hibiken/asynq"
)

func main() {

	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "PAYOUT_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	log.InitLogger(viperConfig)
	config.NewKafkaConfig(viperConfig)
	logger := log.GetLogger()
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis(viperConfig, logger)
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	asynqClient := config.NewAsynqClient(viperConfig)
	asynqMux := asynq.NewServeMux()
	app := config.NewFiber(viperConfig)
	config.Bootstrap(&config.BootstrapConfig{
		DB:          db,
		App:         app,
		Log:         logger,
		Validate:    validate,
		Config:      viperConfig,
		Producer:    producer,
		Redis:       redisClient,
		AsynqClient: asynqClient,
		Async:       asynqMux,
	})

	asynqServer := config.NewAsynqServer(viperConfig)
	go func() {
		if err := asynqServer.Run(asynqMux); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start asynq worker: %v", err), "main", "")
		}
	}()

	webPort := viperConfig.GetInt("web.port")
	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("main", "Server payout-service is shutting down...", "graceful", "")

	asynqServer.Shutdown()
	if err := app.Shutdown(); err != nil {
		logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
	}
	if err := asynqClient.Close(); err != nil {
		logger.Error("main", fmt.Sprintf("Error closing asynq client: %v", err), "graceful", "")
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
