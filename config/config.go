package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and passed to the components that need it.
type Config struct {
	PostgresURL string
	MongoURL    string
	DBType      string
	Port        string

	SecretKey  string
	SessionTTL time.Duration

	R2Bucket          string
	R2AccountID       string
	R2PublicURL       string
	R2AccessKeyID     string
	R2SecretAccessKey string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL: os.Getenv("POSTGRES_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),
		DBType:      os.Getenv("DB_TYPE"),
		Port:        os.Getenv("PORT"),
		SecretKey:   os.Getenv("SECRET_KEY"),

		R2Bucket:          os.Getenv("R2_BUCKET"),
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2PublicURL:       os.Getenv("R2_PUBLIC_URL"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBType == "" {
		cfg.DBType = "postgres"
	}

	cfg.SessionTTL = 12 * time.Hour
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("invalid SESSION_TTL %q, keeping default: %v", raw, err)
		} else {
			cfg.SessionTTL = ttl
		}
	}

	return cfg
}
