package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	FrontendURL string

	// Local blob storage for the report collection
	DataFile   string
	QuotaBytes int64

	// Gemini advisory; an empty key runs the service in "AI disabled" mode
	GeminiAPIKey string
	GeminiModel  string

	// Google Maps reverse geocoding; empty key disables it
	MapsAPIKey string

	// Map fallback location when no coordinates are available
	DefaultLat float64
	DefaultLng float64
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		AppEnv:       getEnv("APP_ENV", "development"),
		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:3000"),
		DataFile:     getEnv("DATA_FILE", "geofuite_data.json"),
		QuotaBytes:   getEnvInt64("BLOB_QUOTA_BYTES", 5*1024*1024),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		MapsAPIKey:   getEnv("MAPS_API_KEY", ""),
		DefaultLat:   getEnvFloat("DEFAULT_LAT", 48.8566),
		DefaultLng:   getEnvFloat("DEFAULT_LNG", 2.3522),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
