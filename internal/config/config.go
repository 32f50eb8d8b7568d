package config

import (
	"log"
	"os"
	"strconv"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Config struct {
	Port               string
	MongoURI           string
	MongoDatabase      string
	RabbitURI          string
	RabbitExchange     string
	JWTSecret          string
	RefreshSecret      string
	AccessExpiryHours  int
	RefreshExpiryHours int
	AllowOrigins       []string
	SMTP               SMTPConfig
}

func New() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		MongoURI:           getEnv("MONGO_URI", ""),
		MongoDatabase:      getEnv("MONGO_DATABASE", "quizhub"),
		RabbitURI:          getEnv("RABBITMQ_URI", ""),
		RabbitExchange:     getEnv("RABBITMQ_EXCHANGE", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		RefreshSecret:      getEnv("REFRESH_TOKEN_SECRET", ""),
		AccessExpiryHours:  getEnvInt("TOKEN_EXPIRY_HOURS", 1),
		RefreshExpiryHours: getEnvInt("REFRESH_EXPIRY_HOURS", 24*7),
		AllowOrigins:       []string{getEnv("FE_ADDR", "http://localhost:3000")},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "quiz-team@localhost"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, fallback)
		return fallback
	}
	return n
}
