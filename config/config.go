package config

import (
	"fmt"
	"os"
)

type Config struct {
	HTTPAddr    string
	PostgresURL string
	RedisAddr   string

	PubSubProviderURL string
	TopicRef          string

	EmailProviderURL string
	EmailFrom        string
	EmailTo          string

	WSAllowedOrigin string
	JaegerEndpoint  string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load collects configuration from the environment. The connection strings
// have no sane defaults and are required.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		PostgresURL:       os.Getenv("POSTGRES_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		PubSubProviderURL: os.Getenv("PUBSUB_PROVIDER_URL"),
		TopicRef:          os.Getenv("TOPIC_REF"),
		EmailProviderURL:  os.Getenv("EMAIL_PROVIDER_URL"),
		EmailFrom:         getenv("EMAIL_FROM", "orders@storefront.local"),
		EmailTo:           os.Getenv("EMAIL_TO"),
		WSAllowedOrigin:   getenv("WS_ALLOWED_ORIGIN", "*"),
		JaegerEndpoint:    os.Getenv("JAEGER_ENDPOINT"),
	}

	if cfg.PostgresURL == "" {
		return Config{}, fmt.Errorf("POSTGRES_URL is required")
	}
	if cfg.RedisAddr == "" {
		return Config{}, fmt.Errorf("REDIS_ADDR is required")
	}
	if cfg.PubSubProviderURL == "" {
		return Config{}, fmt.Errorf("PUBSUB_PROVIDER_URL is required")
	}
	if cfg.EmailProviderURL == "" {
		return Config{}, fmt.Errorf("EMAIL_PROVIDER_URL is required")
	}

	return cfg, nil
}
