// Файл: pkg/config/config.go
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type SessionConfig struct {
	SecretKey    string
	CookieName   string
	CookieSecure bool
	// PasswordTTL applies to password logins, CodeTTL to one-time-code logins.
	PasswordTTL time.Duration
	CodeTTL     time.Duration
}

// RateLimitConfig holds the values used when the settings store has no usable document.
type RateLimitConfig struct {
	Enabled     bool
	Window      time.Duration
	MaxRequests int
}

type AuthConfig struct {
	CodeTTL         time.Duration
	CodeLength      int
	MaxCodeAttempts int
}

type LogConfig struct {
	Level    string
	FilePath string
}

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig
	Log       LogConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "fitness-center"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			SecretKey:    getEnv("SESSION_SECRET", ""),
			CookieName:   getEnv("SESSION_COOKIE_NAME", "session"),
			CookieSecure: getEnvBool("SESSION_COOKIE_SECURE", true),
			PasswordTTL:  time.Hour * 24,
			CodeTTL:      time.Hour * 24 * 7,
		},
		RateLimit: RateLimitConfig{
			Enabled:     getEnvBool("RATE_LIMIT_ENABLED", true),
			Window:      time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
			MaxRequests: getEnvInt("RATE_LIMIT_MAX_REQUESTS", 10),
		},
		Auth: AuthConfig{
			CodeTTL:         time.Minute * 5,
			CodeLength:      6,
			MaxCodeAttempts: 5,
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			FilePath: getEnv("LOG_FILE", ""),
		},
	}
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	if len(c.Session.SecretKey) < 32 {
		return errors.New("SESSION_SECRET must be at least 32 characters")
	}
	if c.RateLimit.Window <= 0 || c.RateLimit.MaxRequests <= 0 {
		return errors.New("rate limit window and max requests must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Warning: %s is not a number, using %d", key, fallback)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
