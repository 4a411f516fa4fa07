package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	ClerkWebhookSecret string
	ClerkSecretKey     string
	ClerkJWTPublicKey  string
	ClerkAPIURL        string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		ClerkWebhookSecret: getEnvOrPanic("CLERK_WEBHOOK_SECRET"),
		ClerkSecretKey:     getEnv("CLERK_SECRET_KEY", ""),
		ClerkJWTPublicKey:  getEnv("CLERK_JWT_PUBLIC_KEY", ""),
		ClerkAPIURL:        getEnv("CLERK_API_URL", "https://api.clerk.com/v1"),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
