package main

import (
	"context"
	"time"

	"doctor-triage/cmd/bootstrap"
	"doctor-triage/config"
	"doctor-triage/internal/infrastructure/database"
	"doctor-triage/internal/repository"
	"doctor-triage/internal/seed"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := bootstrap.NewLogger(cfg.App.LogLevel)

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed.Run(ctx, db, log, repository.NewDoctorRepository(), seed.Doctors()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}
