package config

import (
	"os"
	"time"
)

const (
	defaultPort             = "8080"
	defaultViaCEPBaseURL    = "https://viacep.com.br/ws"
	defaultBrasilAPIBaseURL = "https://brasilapi.com.br/api"
	defaultFormTTL          = 30 * time.Minute
)

// Config holds all application configuration values
type Config struct {
	Port               string
	GinMode            string
	ViaCEPBaseURL      string
	BrasilAPIBaseURL   string
	FormTTL            time.Duration
	CORSAllowedOrigins string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", defaultPort),
		GinMode:            getEnv("GIN_MODE", "debug"),
		ViaCEPBaseURL:      getEnv("VIACEP_BASE_URL", defaultViaCEPBaseURL),
		BrasilAPIBaseURL:   getEnv("BRASILAPI_BASE_URL", defaultBrasilAPIBaseURL),
		FormTTL:            getDuration("FORM_TTL", defaultFormTTL),
		CORSAllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration falls back when the variable is unset, unparsable or not positive.
func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
