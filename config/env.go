package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv           string
	Port             string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	JWTSecret        string
	JWTExpiry        string
	OpenRouterAPIKey string
	OpenRouterURL    string
	ChatModel        string
	CatalogFeedURL   string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:           GetEnv("APP_ENV", "development"),
		Port:             GetEnv("APP_PORT", GetEnv("PORT", "5000")),
		DBHost:           GetEnv("DB_HOST", "localhost"),
		DBPort:           GetEnv("DB_PORT", "5432"),
		DBUser:           GetEnv("DB_USER", "postgres"),
		DBPassword:       GetEnv("DB_PASSWORD", "postgres"),
		DBName:           GetEnv("DB_NAME", "storefront"),
		DBSSLMode:        GetEnv("DB_SSLMODE", "disable"),
		JWTSecret:        GetEnv("JWT_SECRET", "secret"),
		JWTExpiry:        GetEnv("JWT_EXPIRY", "24h"),
		OpenRouterAPIKey: GetEnv("OPENROUTER_API_KEY", ""),
		OpenRouterURL:    GetEnv("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions"),
		ChatModel:        GetEnv("CHAT_MODEL", "openai/gpt-3.5-turbo"),
		CatalogFeedURL:   GetEnv("CATALOG_FEED_URL", "https://fakestoreapi.com/products"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
