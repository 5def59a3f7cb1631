package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

type Config struct {
	ListenAddr string
	DBPath     string

	JWTSecret string
	TokenTTL  time.Duration

	RecipeBackend string
	MealDBBaseURL string
	ClaudeAPIKey  string
	ClaudeModel   string

	AMQPURL       string
	AMQPExchange  string
	AMQPQueue     string
	AlertInterval time.Duration
	AlertWindow   time.Duration

	LogLevel string
	LogFile  string
}

func Load() *Config {
	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		DBPath:     getEnv("DB_PATH", "/data/shelfwise.db"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 24*time.Hour),

		RecipeBackend: getEnv("RECIPE_BACKEND", "mealdb"),
		MealDBBaseURL: getEnv("MEALDB_BASE_URL", "https://www.themealdb.com/api/json/v1/1"),
		ClaudeAPIKey:  getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:   getEnv("CLAUDE_MODEL", "claude-3-5-haiku-latest"),

		AMQPURL:       getEnv("AMQP_URL", ""),
		AMQPExchange:  getEnv("AMQP_EXCHANGE", "shelfwise"),
		AMQPQueue:     getEnv("AMQP_QUEUE", "expiry_alerts"),
		AlertInterval: getEnvDuration("ALERT_INTERVAL", time.Hour),
		AlertWindow:   getEnvDuration("ALERT_WINDOW", 24*time.Hour),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
	}
}

// Validate reports every configuration problem at once so a broken deployment
// fails with the complete picture instead of one error per restart.
func (c *Config) Validate() error {
	var errs []string

	if c.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	}
	if c.TokenTTL < time.Minute {
		errs = append(errs, fmt.Sprintf("invalid token TTL %v: must be at least 1 minute", c.TokenTTL))
	}

	switch c.RecipeBackend {
	case "mealdb":
	case "claude":
		if c.ClaudeAPIKey == "" {
			errs = append(errs, "CLAUDE_API_KEY is required when RECIPE_BACKEND=claude")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid recipe backend '%s': must be 'mealdb' or 'claude'", c.RecipeBackend))
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errs = append(errs, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
		if c.AlertInterval < time.Minute {
			errs = append(errs, fmt.Sprintf("invalid alert interval %v: must be at least 1 minute", c.AlertInterval))
		}
		if c.AlertWindow < time.Hour {
			errs = append(errs, fmt.Sprintf("invalid alert window %v: must be at least 1 hour", c.AlertWindow))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
