package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the process needs at startup. It is built once in
// main and handed down explicitly; nothing in this package keeps global state.
type Config struct {
	Port           string
	MongoURI       string
	MongoDBName    string
	RequestTimeout time.Duration
	ConnectRetries int
}

func Load() Config {
	return Config{
		Port:           getEnvWithDefault("PORT_SERVER", "8080"),
		MongoURI:       getEnvWithDefault("MONGO_LOCAL_URL", "mongodb://localhost:27017"),
		MongoDBName:    getEnvWithDefault("MONGO_DB_NAME", "autobuses"),
		RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 5*time.Second),
		ConnectRetries: getEnvAsInt("MONGO_CONNECT_RETRIES", 5),
	}
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
