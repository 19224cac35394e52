package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath   string
	Currency string
}

func Load() Config {
	// A missing .env file is fine, the defaults below cover it.
	_ = godotenv.Load()

	return Config{
		DBPath:   getenv("HOTEL_DB_PATH", "db.json"),
		Currency: getenv("HOTEL_CURRENCY", "$"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
