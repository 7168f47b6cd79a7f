package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port       int
	OutDir     string
	Seed       int64
	MaxRetries int
	LogLevel   string

	DatabaseURL string
	NatsURL     string
	NatsToken   string

	Platform     string
	Participants int

	AttachmentLikelihood float64
	SentLikelihood       float64
	DeliveredLikelihood  float64
	ReadLikelihood       float64
	DeletedLikelihood    float64
}

func Load() Config {
	return Config{
		Port:       envInt("CHATGEN_PORT", 8760),
		OutDir:     envStr("CHATGEN_OUT_DIR", "generated_chats"),
		Seed:       envInt64("CHATGEN_SEED", 0),
		MaxRetries: envInt("CHATGEN_MAX_RETRIES", 1000),
		LogLevel:   envStr("LOG_LEVEL", "info"),

		DatabaseURL: envStr("DATABASE_URL", ""),
		NatsURL:     envStr("NATS_URL", ""),
		NatsToken:   envStr("NATS_TOKEN", ""),

		Platform:     envStr("CHATGEN_PLATFORM", ""),
		Participants: envInt("CHATGEN_PARTICIPANTS", 0),

		AttachmentLikelihood: envFloat("CHATGEN_ATTACHMENT_LIKELIHOOD", 0.3),
		SentLikelihood:       envFloat("CHATGEN_SENT_LIKELIHOOD", 0.98),
		DeliveredLikelihood:  envFloat("CHATGEN_DELIVERED_LIKELIHOOD", 0.9),
		ReadLikelihood:       envFloat("CHATGEN_READ_LIKELIHOOD", 0.75),
		DeletedLikelihood:    envFloat("CHATGEN_DELETED_LIKELIHOOD", 0.05),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
