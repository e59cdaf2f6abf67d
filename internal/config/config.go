package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	JWTSecret        string
	ServerPort       string
	EvaluatorAPIURL  string
	EvaluatorAPIKey  string
	EvaluatorModel   string
	EvaluatorTimeout int
	WebhookLogSize   int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	return &Config{
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "linguaexam"),
		JWTSecret:        getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		EvaluatorAPIURL:  getEnv("EVALUATOR_API_URL", ""),
		EvaluatorAPIKey:  getEnv("EVALUATOR_API_KEY", ""),
		EvaluatorModel:   getEnv("EVALUATOR_MODEL", "gpt-4o-mini"),
		EvaluatorTimeout: getEnvInt("EVALUATOR_TIMEOUT_SECONDS", 10),
		WebhookLogSize:   getEnvInt("WEBHOOK_LOG_SIZE", 200),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
