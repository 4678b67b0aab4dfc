package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/AlexTLDR/phonenorm/internal/config"
	"github.com/AlexTLDR/phonenorm/internal/database"
	"github.com/AlexTLDR/phonenorm/internal/logger"
	"github.com/AlexTLDR/phonenorm/internal/server"
)

func main() {
	// Load .env file (ignore error if a file doesn't exist)
	// Use Overload to force to overwrite any existing environment variables
	envErr := godotenv.Overload()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "production").Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.Env)
	if envErr != nil {
		log.Warn("no .env file loaded", "error", envErr)
	}

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func(db *database.DB) {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}(db)

	// Run migrations
	if err := db.Migrate(); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Create and start the server
	srv, err := server.New(cfg, db, log, nil)
	if err != nil {
		log.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	log.Info("starting server", "port", cfg.Port, "default_country", cfg.DefaultCountry)
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
