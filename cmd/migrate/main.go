package main

import (
	"log"

	"ontoquiz/internal/config"
	"ontoquiz/internal/database"
	"ontoquiz/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Logger)
	l := logger.Get()
	defer l.Sync()

	dsn := cfg.GetDSN()
	if dsn == "" {
		log.Fatal("Database connection is not configured; set DB_HOST and related settings")
	}

	db, err := database.NewMigrateOracleDB(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, "database/migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}
