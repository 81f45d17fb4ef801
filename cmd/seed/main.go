package main

import (
	"context"
	"employee-directory/internal/seeder"
	"employee-directory/pkg/config"
	"employee-directory/pkg/logger"
	"employee-directory/pkg/postgres"
	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
)

func main() {
	config.GlobalConfig.Init()
	cfg := config.GlobalConfig
	logger.Setup(cfg.Log)

	ctx := context.Background()
	db, err := postgres.New(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("can't connect to postgres: %s", err.Error())
	}
	defer db.Close()

	if err := postgres.MigrateDB(db.DB(), cfg.DB); err != nil {
		log.Fatalf("can't migrate postgres: %s", err.Error())
	}

	s := seeder.New(db.DB(), gofakeit.New(0))
	if err := s.SeedReference(ctx); err != nil {
		log.Fatalf("seed reference data: %s", err.Error())
	}
	log.Info("roles, departments and job titles are seeded")

	users, err := s.SeedUsers(ctx, cfg.Seed.Users)
	if err != nil {
		log.Fatalf("seed users: %s", err.Error())
	}
	for _, u := range users {
		log.WithFields(log.Fields{"id": u.ID, "login": u.Login, "password": u.Password}).Info("seeded user")
	}
}
