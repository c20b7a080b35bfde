package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StrategyTable = "table"
	StrategyItems = "items"

	FetchHTTP    = "http"
	FetchBrowser = "browser"

	PolicyAbort = "abort"
	PolicySkip  = "skip"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	TargetURL        string
	UserAgent        string
	RequestTimeoutMs int
	FetchMode        string
	FetchAttempts    int
	ChromeBin        string

	Strategy                 string
	ItemSelector             string
	ItemTitleSelector        string
	ItemPriceSelector        string
	ItemAvailabilitySelector string
	MissingFieldPolicy       string

	TextColumn string
	TopN       int
	FillerWord string

	OutputPath string

	PostgresEnabled  bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		TargetURL:        getEnv("TARGET_URL", "https://books.toscrape.com/"),
		UserAgent:        getEnv("USER_AGENT", "Mozilla/5.0"),
		RequestTimeoutMs: getEnvInt("REQUEST_TIMEOUT_MS", 5000),
		FetchMode:        strings.ToLower(getEnv("FETCH_MODE", FetchHTTP)),
		FetchAttempts:    getEnvInt("FETCH_ATTEMPTS", 1),
		ChromeBin:        getEnv("CHROME_BIN", ""),

		Strategy:                 strings.ToLower(getEnv("EXTRACT_STRATEGY", StrategyTable)),
		ItemSelector:             getEnv("ITEM_SELECTOR", "article.product_pod"),
		ItemTitleSelector:        getEnv("ITEM_TITLE_SELECTOR", "h3 a[title]"),
		ItemPriceSelector:        getEnv("ITEM_PRICE_SELECTOR", "p.price_color"),
		ItemAvailabilitySelector: getEnv("ITEM_AVAILABILITY_SELECTOR", "p.availability"),
		MissingFieldPolicy:       strings.ToLower(getEnv("MISSING_FIELD_POLICY", PolicyAbort)),

		TextColumn: getEnv("TEXT_COLUMN", "0"),
		TopN:       getEnvInt("TOP_N", 5),
		FillerWord: getEnv("FILLER_WORD", "conocimiento"),

		OutputPath: getEnv("OUTPUT_PATH", "datos_web_estatica.xlsx"),

		PostgresEnabled:  getEnvBool("POSTGRES_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scraper"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scraper123"),
		PostgresDB:       getEnv("POSTGRES_DB", "scraper_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// Validate reports the first configuration value that cannot drive a run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TargetURL) == "" {
		return errors.New("config: TARGET_URL is empty")
	}
	switch c.Strategy {
	case StrategyTable, StrategyItems:
	default:
		return fmt.Errorf("config: unknown EXTRACT_STRATEGY %q", c.Strategy)
	}
	switch c.FetchMode {
	case FetchHTTP, FetchBrowser:
	default:
		return fmt.Errorf("config: unknown FETCH_MODE %q", c.FetchMode)
	}
	switch c.MissingFieldPolicy {
	case PolicyAbort, PolicySkip:
	default:
		return fmt.Errorf("config: unknown MISSING_FIELD_POLICY %q", c.MissingFieldPolicy)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("config: TOP_N must be positive, got %d", c.TopN)
	}
	if c.RequestTimeoutMs <= 0 {
		return fmt.Errorf("config: REQUEST_TIMEOUT_MS must be positive, got %d", c.RequestTimeoutMs)
	}
	if c.FetchAttempts <= 0 {
		return fmt.Errorf("config: FETCH_ATTEMPTS must be positive, got %d", c.FetchAttempts)
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return errors.New("config: OUTPUT_PATH is empty")
	}
	return nil
}

// RequestTimeout returns the fetch timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
