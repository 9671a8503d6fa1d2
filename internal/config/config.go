package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Tracking TrackingConfig
	Scoring  ScoringConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// RedisConfig holds Redis connection settings. Redis is optional: the
// leaderboard cache and rate limiter degrade to Postgres/in-memory without it.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds event streaming configuration. An empty broker list
// disables event publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// TrackingConfig holds settings for the incremental tracking job
type TrackingConfig struct {
	DiscoveryURLs  []string      // mirror search endpoints, tried in order
	RequestTimeout time.Duration // per-call timeout against the discovery layer
	Interval       time.Duration // how often the scheduler runs a tracking cycle
	SchedulerOn    bool
}

// ScoringConfig holds overrides for the MSP policy. Zero values keep the defaults.
type ScoringConfig struct {
	LikeWeight    float64
	RetweetWeight float64
	ReplyWeight   float64
	QuoteWeight   float64
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port          int
	WebAppURI     string
	AdminRateRPM  int // admin endpoint requests allowed per minute per caller
	PublicRateRPM int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Database.SSLMode = getEnvWithDefault("DB_SSLMODE", "require")

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Redis configuration
	if cfg.Redis.Enabled, err = parseBool("REDIS_ENABLED", "false"); err != nil {
		return nil, err
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = parseInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = parseInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	// Kafka configuration
	cfg.Kafka.Brokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "hive-events")

	// Tracking configuration
	cfg.Tracking.DiscoveryURLs = splitList(os.Getenv("DISCOVERY_URLS"))
	if len(cfg.Tracking.DiscoveryURLs) == 0 {
		return nil, fmt.Errorf("DISCOVERY_URLS is not set: %w", ErrEmptyEnvironmentVariable)
	}
	if cfg.Tracking.RequestTimeout, err = parseDuration("DISCOVERY_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.Tracking.Interval, err = parseDuration("TRACKING_INTERVAL", "10m"); err != nil {
		return nil, err
	}
	if cfg.Tracking.SchedulerOn, err = parseBool("TRACKING_SCHEDULER_ENABLED", "true"); err != nil {
		return nil, err
	}

	// Scoring overrides
	if cfg.Scoring.LikeWeight, err = parseFloat("MSP_LIKE_WEIGHT"); err != nil {
		return nil, err
	}
	if cfg.Scoring.RetweetWeight, err = parseFloat("MSP_RETWEET_WEIGHT"); err != nil {
		return nil, err
	}
	if cfg.Scoring.ReplyWeight, err = parseFloat("MSP_REPLY_WEIGHT"); err != nil {
		return nil, err
	}
	if cfg.Scoring.QuoteWeight, err = parseFloat("MSP_QUOTE_WEIGHT"); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	if cfg.Server.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}
	if cfg.Server.AdminRateRPM, err = parseInt("ADMIN_RATE_LIMIT_RPM", "30"); err != nil {
		return nil, err
	}
	if cfg.Server.PublicRateRPM, err = parseInt("PUBLIC_RATE_LIMIT_RPM", "120"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// Addr returns the host:port address of the Redis server
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseInt(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func parseBool(key, defaultValue string) (bool, error) {
	v, err := strconv.ParseBool(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	v, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

// parseFloat returns 0 when the variable is unset.
func parseFloat(key string) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
