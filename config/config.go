package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
	"time"
)

type ApiConfig struct {
	BaseUri string
	Timeout time.Duration
}

type Config struct {
	DSN                  string
	LogsDirectory        string
	LogLevel             string
	HTTPAddr             string
	ShipmentSyncSchedule string
	SessionFile          string
	Api                  *ApiConfig
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return &Config{
		DSN:                  os.Getenv("DATABASE_DSN"),
		LogsDirectory:        os.Getenv("LOGS_DIRECTORY"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		ShipmentSyncSchedule: getEnv("SHIPMENT_SYNC_SCHEDULE", "*/30 * * * *"),
		SessionFile:          os.Getenv("FLEETCTL_SESSION"),
		Api: &ApiConfig{
			BaseUri: os.Getenv("API_URL"),
			Timeout: time.Duration(getEnvAsInt("API_TIMEOUT", 20)) * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
