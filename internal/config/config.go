package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/i474232898/weather-forecast-notifier/internal/weather/providers"
)

type AppConfig struct {
	// WeatherAPIBaseURL is the forecast endpoint; the city code is appended after "/".
	WeatherAPIBaseURL string

	// SlackAPIURL overrides the Slack Web API base URL (empty = slack.com).
	SlackAPIURL string

	// HTTPTimeout bounds the forecast request (0 = no timeout).
	HTTPTimeout time.Duration

	LogLevel zapcore.Level

	// ZipkinEndpoint enables span export when set.
	ZipkinEndpoint string

	// EnvFileErr is the result of loading .env; a missing file is not fatal.
	EnvFileErr error
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	cfg.EnvFileErr = godotenv.Load()

	cfg.WeatherAPIBaseURL = getenvDefault("WEATHER_API_BASE_URL", providers.DefaultTsukumijimaBaseURL)
	cfg.SlackAPIURL = os.Getenv("SLACK_API_URL")
	cfg.ZipkinEndpoint = os.Getenv("ZIPKIN_ENDPOINT")

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must not be negative")
	}
	cfg.HTTPTimeout = timeout

	level, err := zapcore.ParseLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
