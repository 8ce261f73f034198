package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultEndpoint is the Practicum homework status API.
	DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

	defaultRetryInterval  = 600 * time.Second
	defaultRequestTimeout = 10 * time.Second
)

// Credentials are the three secrets the bot cannot run without. They are
// read once at startup and never mutated; the poll loop re-checks
// Complete() before every cycle.
type Credentials struct {
	PracticumToken string
	TelegramToken  string
	ChatID         int64
}

// Complete reports whether all three credentials are present.
func (c Credentials) Complete() bool {
	return c.PracticumToken != "" && c.TelegramToken != "" && c.ChatID != 0
}

// AppConfig holds all configuration for the application.
type AppConfig struct {
	Credentials    Credentials
	Endpoint       string
	RetryInterval  time.Duration
	RequestTimeout time.Duration
	DatabaseURL    string // empty selects the in-memory state store
	DigestCronSpec string // empty disables the health digest job
	MetricsAddr    string // empty disables the metrics endpoint
	LogLevel       string
	Environment    string
}

// fileConfig is the optional YAML tuning file pointed at by CONFIG_PATH.
// Secrets never live here.
type fileConfig struct {
	Endpoint              string `yaml:"endpoint"`
	RetryIntervalSeconds  int    `yaml:"retry_interval_seconds"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	DigestCronSpec        string `yaml:"digest_cron_spec"`
	MetricsAddr           string `yaml:"metrics_addr"`
	LogLevel              string `yaml:"log_level"`
	Environment           string `yaml:"environment"`
}

// Load reads configuration from environment variables, the .env file (if
// present) and the optional YAML tuning file. Precedence: defaults, then the
// file, then environment variables.
//
// Missing credentials are NOT a load error: the poll loop's credential guard
// decides what to do about them. A malformed TELEGRAM_CHAT_ID is an error,
// since that is a broken value rather than an absent one.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables; errors are
	// ignored if the file doesn't exist.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Endpoint:       DefaultEndpoint,
		RetryInterval:  defaultRetryInterval,
		RequestTimeout: defaultRequestTimeout,
		LogLevel:       "info",
		Environment:    "development",
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.Credentials.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	cfg.Credentials.TelegramToken = os.Getenv("TELEGRAM_TOKEN")

	if chatIDStr := os.Getenv("TELEGRAM_CHAT_ID"); chatIDStr != "" {
		chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.Credentials.ChatID = chatID
	}

	if v := os.Getenv("ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("RETRY_INTERVAL_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid RETRY_INTERVAL_SECONDS: %q", v)
		}
		cfg.RetryInterval = time.Duration(seconds) * time.Second
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT_SECONDS: %q", v)
		}
		cfg.RequestTimeout = time.Duration(seconds) * time.Second
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if v := os.Getenv("DIGEST_CRON_SPEC"); v != "" {
		cfg.DigestCronSpec = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := strings.ToLower(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.ToLower(os.Getenv("ENVIRONMENT")); v != "" {
		cfg.Environment = v
	}

	return cfg, nil
}

func applyFile(cfg *AppConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Endpoint != "" {
		cfg.Endpoint = fc.Endpoint
	}
	if fc.RetryIntervalSeconds < 0 || fc.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("config file %s: intervals must be positive", path)
	}
	if fc.RetryIntervalSeconds > 0 {
		cfg.RetryInterval = time.Duration(fc.RetryIntervalSeconds) * time.Second
	}
	if fc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(fc.RequestTimeoutSeconds) * time.Second
	}
	if fc.DigestCronSpec != "" {
		cfg.DigestCronSpec = fc.DigestCronSpec
	}
	if fc.MetricsAddr != "" {
		cfg.MetricsAddr = fc.MetricsAddr
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(fc.LogLevel)
	}
	if fc.Environment != "" {
		cfg.Environment = strings.ToLower(fc.Environment)
	}
	return nil
}
