package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers understood by the mock API.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	App     AppConfig
	Larek   LarekConfig
	Server  ServerConfig
	Store   StoreConfig
	DB      PostgresConfig
	Kafka   KafkaConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Name string
	Env  string
}

// LarekConfig points the storefront at a Web-Larek API.
type LarekConfig struct {
	Origin        string
	APIPath       string
	CDNPath       string
	Timeout       time.Duration
	RetryAttempts int
}

type ServerConfig struct {
	Host string
	Port int
}

type StoreConfig struct {
	Driver     string
	SQLitePath string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type KafkaConfig struct {
	Enabled       bool
	Brokers       []string
	OrderTopic    string
	ConsumerGroup string
}

type CatalogConfig struct {
	SeedPath  string
	ImagesDir string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "weblarek"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Larek: LarekConfig{
			Origin:        getEnv("API_ORIGIN", "http://localhost:8030"),
			APIPath:       getEnv("API_PATH", "/api/weblarek"),
			CDNPath:       getEnv("CDN_PATH", "/content/weblarek"),
			Timeout:       time.Duration(getEnvAsInt("API_TIMEOUT_MS", 10000)) * time.Millisecond,
			RetryAttempts: getEnvAsInt("API_RETRY_ATTEMPTS", 0),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8030),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(getEnv("ORDER_STORE", StoreMemory)),
			SQLitePath: getEnv("SQLITE_PATH", "file:weblarek.db?cache=shared"),
		},
		DB: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "weblarek"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Kafka: KafkaConfig{
			Enabled:       getEnvAsBool("KAFKA_ENABLED", false),
			Brokers:       splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")),
			OrderTopic:    getEnv("KAFKA_ORDER_TOPIC", "weblarek.orders"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "weblarek-api"),
		},
		Catalog: CatalogConfig{
			SeedPath:  getEnv("CATALOG_SEED_PATH", ""),
			ImagesDir: getEnv("CATALOG_IMAGES_DIR", ""),
		},
	}

	return cfg, cfg.validate()
}

// BaseURL is the root every API route hangs off.
func (l LarekConfig) BaseURL() string {
	return strings.TrimRight(l.Origin, "/") + l.APIPath
}

// CDNURL is prepended to image paths returned by the API.
func (l LarekConfig) CDNURL() string {
	return strings.TrimRight(l.Origin, "/") + l.CDNPath
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if _, err := url.ParseRequestURI(c.Larek.BaseURL()); err != nil {
		return fmt.Errorf("API_ORIGIN is invalid: %w", err)
	}
	if c.Larek.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT_MS must be positive")
	}
	if c.Larek.RetryAttempts < 0 {
		return fmt.Errorf("API_RETRY_ATTEMPTS must not be negative")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	switch c.Store.Driver {
	case StoreMemory:
	case StoreSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is empty")
		}
	case StorePostgres:
		if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("database config is incomplete")
		}
	default:
		return fmt.Errorf("ORDER_STORE %q is not supported", c.Store.Driver)
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka brokers is empty")
		}
		if c.Kafka.OrderTopic == "" {
			return fmt.Errorf("KAFKA_ORDER_TOPIC is empty")
		}
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
