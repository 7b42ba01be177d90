package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"Blood-Donation-Admin/cmd/config"
	migration "Blood-Donation-Admin/cmd/database/migrate"
	"Blood-Donation-Admin/internal/utils"
)

func main() {
	utils.LoadConfig()
	logger := utils.NewLogger()
	defer logger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := migration.SeedStaff(db, utils.GetConfig("STAFF_EMAIL"), utils.GetConfig("STAFF_PASSWORD")); err != nil {
		log.Fatalf("seed staff: %v", err)
	}

	redisClient := config.ConnectRedis()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Warn("redis unavailable, appointment list will not be cached", zap.Error(err))
	}
	defer redisClient.Close()

	app, err := config.NewApp(db, redisClient, logger)
	if err != nil {
		log.Fatalf("app: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		_ = app.Shutdown()
	}()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
