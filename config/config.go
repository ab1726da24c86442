package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. It is
// built once in main and handed to the collaborators that need it instead
// of being read globally.
type Config struct {
	DatabaseURL  string
	AllowOrigins string
	MailUsername string
	MailPassword string
}

// Load reads a .env file if one exists and collects the configuration
// from the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg := Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		AllowOrigins: os.Getenv("ALLOW_ORIGINS"),
		MailUsername: os.Getenv("EMAIL"),
		MailPassword: os.Getenv("PASS"),
	}
	if strings.TrimSpace(cfg.AllowOrigins) == "" {
		cfg.AllowOrigins = "https://inventory-management-frontend-5bio.onrender.com"
	}

	return cfg
}
