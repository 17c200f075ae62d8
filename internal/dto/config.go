package dto

import (
	"encoding/base64"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port           string
	DatabaseURL    string
	RedisURL       string
	RabbitMQURL    string
	CatalogBaseURL string
	CatalogAPIKey  string
	FirebaseKey    string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Infof("No .env file loaded: %v", err)
	}

	return Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		CatalogBaseURL: getEnv("CATALOG_BASE_URL", "https://api.themoviedb.org/3"),
		CatalogAPIKey:  os.Getenv("CATALOG_API_KEY"),
		FirebaseKey:    os.Getenv("FIREBASE_KEY"),
	}
}

// DecodeFirebaseKey decodes the base64-encoded service account JSON.
func (c Config) DecodeFirebaseKey() ([]byte, error) {
	return base64.StdEncoding.DecodeString(c.FirebaseKey)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
