package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port             string
	DatabaseURL      string
	RedisURL         string
	APIKey           string
	TelegramBotToken string
	CORSOrigins      []string

	PricePollSecs      int
	AdapterTimeoutSecs int
}

func Load() *Config {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		APIKey:           os.Getenv("API_KEY"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	cfg.Port = strings.TrimSpace(os.Getenv("PORT"))
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set, transactions and status checks will be unavailable")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}
	if cfg.APIKey == "" {
		log.Println("Warning: API_KEY not set, authentication disabled")
	}
	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set")
	}

	cfg.CORSOrigins = []string{"*"}
	if v := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); v != "" {
		cfg.CORSOrigins = cfg.CORSOrigins[:0]
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	cfg.PricePollSecs = 60
	if v := os.Getenv("PRICE_POLL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PricePollSecs = n
		}
	}

	cfg.AdapterTimeoutSecs = 10
	if v := strings.TrimSpace(os.Getenv("ADAPTER_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AdapterTimeoutSecs = n
		}
	}

	return cfg
}
