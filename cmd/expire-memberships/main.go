package main

import (
	"context"
	"os"
	"time"

	"github.com/OmarZuritaEC/vitalgym/internal/config"
	"github.com/OmarZuritaEC/vitalgym/internal/db"
	"github.com/OmarZuritaEC/vitalgym/internal/email"
	"github.com/OmarZuritaEC/vitalgym/internal/logger"
	"github.com/OmarZuritaEC/vitalgym/internal/membership"
)

// Notifies every customer whose membership ends today. Meant to run once a
// day from cron.
func main() {
	logger.Init()
	logger.Info("Starting membership expiry sweep")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	emailService := email.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer emailService.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sweep := membership.NewExpirySweep(membership.NewRepository(database), emailService, time.Now)

	notified, failed, err := sweep.Run(ctx)
	if err != nil {
		logger.Fatalf("Expiry sweep failed: %v", err)
	}

	logger.Info("Expiry sweep completed", "notified", notified, "failed", failed)

	if failed > 0 {
		os.Exit(1)
	}
}
