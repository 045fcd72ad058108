package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	Port     string
	MongoURI string
	DBName   string
	// NominalGoalCount normalizes the stack-day intensity formula
	// (completed goals / nominal count). The original tracker hard-coded 4.
	NominalGoalCount int
}

// LoadConfig reads configuration from a .env file if present, falling back
// to the process environment and sensible defaults.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:           getEnv("DB_NAME", "lifestack"),
		NominalGoalCount: getEnvInt("STACK_NOMINAL_GOALS", 4),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithField("key", key).Warnf("Invalid integer value %q, using default %d", value, fallback)
		return fallback
	}
	return parsed
}
