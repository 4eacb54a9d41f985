package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Crawl    CrawlConfig
	Browser  BrowserConfig
	Database DatabaseConfig
	Metrics  MetricsConfig
	Logging  LoggingConfig
}

type CrawlConfig struct {
	// StartURL is the first listing page; every further page comes from
	// the site's own next-page links.
	StartURL string
	// SourcesDir holds raw page captures, ExportDir the import units.
	// The two must be distinct directories.
	SourcesDir string
	ExportDir  string
}

type BrowserConfig struct {
	Headless       bool
	Timeout        time.Duration
	ViewportWidth  int
	ViewportHeight int
	AcceptLanguage string
	TimezoneID     string
	Locale         string
}

type DatabaseConfig struct {
	// URL enables the optional crawl journal when non-empty.
	URL string
}

type MetricsConfig struct {
	Enabled bool
	Port    string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Crawl: CrawlConfig{
			StartURL:   getEnvOrDefault("CRAWL_START_URL", "https://www.climatico.ro/aer-conditionat/vrv"),
			SourcesDir: getEnvOrDefault("PAGE_SOURCES_DIR", "./out/climatico/sources"),
			ExportDir:  getEnvOrDefault("EXPORT_DIR", "./out/climatico/product_info"),
		},
		Browser: BrowserConfig{
			Headless:       getBoolOrDefault("BROWSER_HEADLESS", true),
			Timeout:        getDurationOrDefault("BROWSER_TIMEOUT", 30*time.Second),
			ViewportWidth:  getIntOrDefault("BROWSER_VIEWPORT_WIDTH", 1920),
			ViewportHeight: getIntOrDefault("BROWSER_VIEWPORT_HEIGHT", 1080),
			AcceptLanguage: getEnvOrDefault("BROWSER_ACCEPT_LANGUAGE", "ro-RO,ro;q=0.9,en;q=0.8"),
			TimezoneID:     getEnvOrDefault("BROWSER_TIMEZONE", "Europe/Bucharest"),
			Locale:         getEnvOrDefault("BROWSER_LOCALE", "ro-RO"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Metrics: MetricsConfig{
			Enabled: getBoolOrDefault("METRICS_ENABLED", false),
			Port:    getEnvOrDefault("METRICS_PORT", "9090"),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

// Validate performs the pre-flight checks: work must not start with a
// configuration that could make the extractor read its own writes.
func (c *Config) Validate() error {
	if c.Crawl.StartURL == "" {
		return fmt.Errorf("CRAWL_START_URL must not be empty")
	}

	if c.Crawl.SourcesDir == "" || c.Crawl.ExportDir == "" {
		return fmt.Errorf("PAGE_SOURCES_DIR and EXPORT_DIR must not be empty")
	}

	if filepath.Clean(c.Crawl.SourcesDir) == filepath.Clean(c.Crawl.ExportDir) {
		return fmt.Errorf("PAGE_SOURCES_DIR and EXPORT_DIR must be distinct directories")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
