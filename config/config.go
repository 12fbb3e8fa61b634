package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// Server settings
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	// Application paths
	LogDir string

	// API key for bearer auth; empty disables authentication
	APIKey string

	// Pagination defaults applied when the request omits them
	ChunkSize int
	MaxChunks int

	// Rate limiting
	RateLimit RateLimitConfig

	// Outbound proxy for the YouTube client only
	Proxy ProxyConfig
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	BurstSize         int
}

type ProxyConfig struct {
	Enabled  bool
	Username string
	Password string
}

func Load() *Config {
	cfg := &Config{
		ServerPort:      GetEnv("SERVER_PORT", "8080"),
		ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:     getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		RequestTimeout:  getEnvAsDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		LogDir: GetEnv("LOG_DIR", "./logs"),

		APIKey: GetEnv("API_KEY", ""),

		ChunkSize: getEnvAsInt("CHUNK_SIZE", 5000),
		MaxChunks: getEnvAsInt("MAX_CHUNKS", 5),

		RateLimit: RateLimitConfig{
			Enabled:           getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RequestsPerMinute: getEnvAsInt("RATE_LIMIT_RPM", 60),
			BurstSize:         getEnvAsInt("RATE_LIMIT_BURST", 10),
		},

		Proxy: ProxyConfig{
			Enabled:  getEnvAsBool("USE_PROXY", false),
			Username: GetEnv("WEBSHARE_PROXY_USERNAME", ""),
			Password: GetEnv("WEBSHARE_PROXY_PASSWORD", ""),
		},
	}

	if cfg.APIKey == "" {
		logrus.Warn("API_KEY not set; API will run without authentication")
	}

	return cfg
}

func Validate(cfg *Config) error {
	if cfg.ServerPort == "" {
		return errors.New("server port is required")
	}
	if cfg.ReadTimeout <= 0 {
		return errors.New("read timeout must be greater than 0")
	}
	if cfg.WriteTimeout <= 0 {
		return errors.New("write timeout must be greater than 0")
	}
	if cfg.IdleTimeout <= 0 {
		return errors.New("idle timeout must be greater than 0")
	}
	if cfg.RequestTimeout <= 0 {
		return errors.New("request timeout must be greater than 0")
	}
	if cfg.ChunkSize <= 0 {
		return errors.New("default chunk size must be greater than 0")
	}
	if cfg.MaxChunks <= 0 {
		return errors.New("default max chunks must be greater than 0")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMinute <= 0 {
		return errors.New("rate limit must be greater than 0 when enabled")
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid duration, using default")
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid integer, using default")
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid boolean, using default")
	}
	return defaultValue
}
