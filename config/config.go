package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	MongoDB     string
	ServerPort  string
	Environment string
}

func Load() Config {
	// Try to load a .env file, but don't fail if it doesn't exist
	// (containers set environment variables directly)
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file loaded")
	}

	return Config{
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     getEnv("MONGO_DB", "amazons"),
		ServerPort:  getEnv("PORT", "8080"),
		Environment: os.Getenv("ENVIRONMENT"),
	}
}

// getEnv retrieves an environment variable with a default value
func getEnv(key string, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
