// Package config loads process settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/alexanderramin/healthbot/internal/llm"
)

type Config struct {
	// Application
	AppEnv string
	DBPath string

	// Telegram
	BotToken        string
	TelegramDebug   bool
	TelegramWorkers int

	// Weather
	WeatherAPIKey   string
	WeatherEndpoint string
	WeatherTimeout  time.Duration

	// Sessions (Redis optional; memory store when REDIS_ADDR is empty)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration

	// Observability (optional)
	MetricsAddr string
	SentryDSN   string

	LLM llm.LLMConfig
}

// Load reads the configuration. A missing .env file is not an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		AppEnv: envString("APP_ENV", "development"),
		DBPath: envString("HEALTHBOT_DB", defaultDBPath()),

		BotToken:        envString("BOT_TOKEN", ""),
		TelegramDebug:   envBool("TELEGRAM_DEBUG", false),
		TelegramWorkers: envInt("TELEGRAM_WORKERS", 4),

		WeatherAPIKey:   envString("OPEN_WEATHER_MAP_API_KEY", ""),
		WeatherEndpoint: envString("OPEN_WEATHER_MAP_ENDPOINT", "https://api.openweathermap.org"),
		WeatherTimeout:  envDuration("WEATHER_TIMEOUT", 10*time.Second),

		RedisAddr:     envString("REDIS_ADDR", ""),
		RedisPassword: envString("REDIS_PASSWORD", ""),
		RedisDB:       envInt("REDIS_DB", 0),
		SessionTTL:    envDuration("SESSION_TTL", 30*time.Minute),

		MetricsAddr: envString("METRICS_ADDR", ""),
		SentryDSN:   envString("SENTRY_DSN", ""),

		LLM: llm.LoadConfig(),
	}
}

// ValidateBot checks the settings the Telegram bot cannot run without.
func (c *Config) ValidateBot() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN is required")
	}
	if c.IsProduction() && c.WeatherAPIKey == "" {
		return errors.New("OPEN_WEATHER_MAP_API_KEY is required in production")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "healthbot.db"
	}
	return home + "/.healthbot/healthbot.db"
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}
