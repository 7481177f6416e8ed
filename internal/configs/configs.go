package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	RedisFilterPrefix      string
	EmailAPIURL            string
	EmailAPIKey            string
	EmailFrom              string
	AttachmentDir          string
	AttachmentBucket       string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "board.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisFilterPrefix:      getEnv("REDIS_FILTER_PREFIX", "saved_filters"),
		EmailAPIURL:            getEnv("EMAIL_API_URL", ""),
		EmailAPIKey:            getEnv("EMAIL_API_KEY", ""),
		EmailFrom:              getEnv("EMAIL_FROM", "no-reply@sprint-board-system.com"),
		AttachmentDir:          getEnv("ATTACHMENT_DIR", "data/attachments"),
		AttachmentBucket:       getEnv("ATTACHMENT_BUCKET", "attachments"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.AttachmentDir == "" {
		log.Fatal("ATTACHMENT_DIR must not be empty")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
