package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database  DatabaseConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Calendar  CalendarConfig
	Events    EventsConfig
	Generator GeneratorConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CalendarConfig tunes the calendar view-model endpoints.
type CalendarConfig struct {
	PixelsPerHour    int
	DebounceWindow   time.Duration
	MaxEventsPerCell int
}

// EventsConfig governs the event query cache.
type EventsConfig struct {
	CacheTTL     time.Duration
	CacheIdleTTL time.Duration
}

// GeneratorConfig controls the background recurrence expansion queue.
type GeneratorConfig struct {
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
	Horizon    time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Calendar = CalendarConfig{
		PixelsPerHour:    v.GetInt("CALENDAR_PIXELS_PER_HOUR"),
		DebounceWindow:   parseDuration(v.GetString("CALENDAR_DEBOUNCE_WINDOW"), 300*time.Millisecond),
		MaxEventsPerCell: v.GetInt("CALENDAR_MAX_EVENTS_PER_CELL"),
	}

	cfg.Events = EventsConfig{
		CacheTTL:     parseDuration(v.GetString("EVENTS_CACHE_TTL"), 15*time.Minute),
		CacheIdleTTL: parseDuration(v.GetString("EVENTS_CACHE_IDLE_TTL"), 30*time.Minute),
	}

	cfg.Generator = GeneratorConfig{
		Workers:    v.GetInt("GENERATOR_WORKERS"),
		MaxRetries: v.GetInt("GENERATOR_MAX_RETRIES"),
		RetryDelay: parseDuration(v.GetString("GENERATOR_RETRY_DELAY"), time.Second),
		Horizon:    parseDuration(v.GetString("GENERATOR_HORIZON"), 365*24*time.Hour),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "agenda")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CALENDAR_PIXELS_PER_HOUR", 128)
	v.SetDefault("CALENDAR_DEBOUNCE_WINDOW", "300ms")
	v.SetDefault("CALENDAR_MAX_EVENTS_PER_CELL", 3)

	v.SetDefault("EVENTS_CACHE_TTL", "15m")
	v.SetDefault("EVENTS_CACHE_IDLE_TTL", "30m")

	v.SetDefault("GENERATOR_WORKERS", 1)
	v.SetDefault("GENERATOR_MAX_RETRIES", 3)
	v.SetDefault("GENERATOR_RETRY_DELAY", "1s")
	v.SetDefault("GENERATOR_HORIZON", "8760h")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
