package main

import (
	"github.com/sirupsen/logrus"

	"chirp/internal/config"
	"chirp/internal/database"
	"chirp/internal/repository"
	"chirp/internal/server"
	"chirp/internal/service"
	"chirp/internal/ws"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		logrus.Fatalf("DB connect error: %v", err)
	}

	// RunMigrations is tolerant of a missing directory
	if err := database.RunMigrations(db, "migrations"); err != nil {
		logrus.Fatalf("migrations error: %v", err)
	}

	svc := service.New(repository.New(db))
	srv := server.NewServer(":"+cfg.Port, svc, ws.NewHub())
	if err := srv.Run(); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
