package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	OrderCacheTTL      time.Duration
	LowStockThreshold  int
	LowStockSchedule   string
	SeedData           bool
	LogLevel           string
	CORSAllowedOrigins []string
}

// LoadConfig reads the configuration through getenv (normally os.Getenv after the
// optional .env file has been loaded). Unset or unparsable optional keys fall back
// to their defaults.
func LoadConfig(getenv func(string) string) Config {
	env := envReader(getenv)
	return Config{
		HTTPPort:           env.str("HTTP_PORT", "8080"),
		DBHost:             env.str("DB_HOST", "localhost"),
		DBPort:             env.str("DB_PORT", "5432"),
		DBUser:             env.str("DB_USER", "postgres"),
		DBPassword:         env.str("DB_PASSWORD", ""),
		DBName:             env.str("DB_NAME", "shop"),
		DBSslMode:          env.str("DB_SSLMODE", "disable"),
		RedisAddr:          env.str("REDIS_ADDR", ""),
		RedisPassword:      env.str("REDIS_PASSWORD", ""),
		RedisDB:            env.integer("REDIS_DB", 0),
		OrderCacheTTL:      env.duration("ORDER_CACHE_TTL", 5*time.Minute),
		LowStockThreshold:  env.integer("LOW_STOCK_THRESHOLD", 10),
		LowStockSchedule:   env.str("LOW_STOCK_SCHEDULE", "0 * * * * *"),
		SeedData:           env.boolean("SEED_DATA", false),
		LogLevel:           env.str("LOG_LEVEL", "info"),
		CORSAllowedOrigins: env.list("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// DSN returns the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// CacheEnabled reports whether a Redis address is configured.
func (c Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

type envReader func(string) string

func (r envReader) str(key, def string) string {
	if v := strings.TrimSpace(r(key)); v != "" {
		return v
	}
	return def
}

func (r envReader) integer(key string, def int) int {
	n, err := strconv.Atoi(r.str(key, ""))
	if err != nil {
		return def
	}
	return n
}

func (r envReader) boolean(key string, def bool) bool {
	b, err := strconv.ParseBool(r.str(key, ""))
	if err != nil {
		return def
	}
	return b
}

func (r envReader) duration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(r.str(key, ""))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func (r envReader) list(key string, def []string) []string {
	raw := r.str(key, "")
	if raw == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
