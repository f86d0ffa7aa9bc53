package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	IncidentSourceCSV      = "csv"
	IncidentSourcePostgres = "postgres"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Incident dataset
	IncidentSource    string  `env:"INCIDENT_SOURCE" envDefault:"csv"`
	CrimeDataPath     string  `env:"CRIME_DATA_PATH" envDefault:"data/crime_data.csv"`
	SeedSampleData    bool    `env:"SEED_SAMPLE_DATA" envDefault:"false"`
	SearchRadiusKm    float64 `env:"SEARCH_RADIUS_KM" envDefault:"2.0"`
	DatasetReloadCron string  `env:"DATASET_RELOAD_CRON"` // пусто - перезагрузка выключена

	// Redis Config
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPass       string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	GeocodeCacheTTL time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"1h"`

	// External lookups
	NominatimURL    string        `env:"NOMINATIM_URL"`
	BigDataCloudURL string        `env:"BIGDATACLOUD_URL"`
	OpenMeteoURL    string        `env:"OPEN_METEO_URL"`
	OverpassURL     string        `env:"OVERPASS_URL"`
	LookupTimeout   time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"8s"`
	LookupUserAgent string        `env:"LOOKUP_USER_AGENT"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		IncidentSource:         strings.ToLower(getEnv("INCIDENT_SOURCE", IncidentSourceCSV)),
		CrimeDataPath:          getEnv("CRIME_DATA_PATH", "data/crime_data.csv"),
		SeedSampleData:         getEnvAsBool("SEED_SAMPLE_DATA", false),
		SearchRadiusKm:         getEnvAsFloat("SEARCH_RADIUS_KM", 2.0),
		DatasetReloadCron:      os.Getenv("DATASET_RELOAD_CRON"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		GeocodeCacheTTL:        getEnvAsDuration("GEOCODE_CACHE_TTL", time.Hour),
		NominatimURL:           getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		BigDataCloudURL:        getEnv("BIGDATACLOUD_URL", "https://api.bigdatacloud.net"),
		OpenMeteoURL:           getEnv("OPEN_METEO_URL", "https://api.open-meteo.com"),
		OverpassURL:            os.Getenv("OVERPASS_URL"),
		LookupTimeout:          getEnvAsDuration("LOOKUP_TIMEOUT", 8*time.Second),
		LookupUserAgent:        getEnv("LOOKUP_USER_AGENT", "geo-safety-risk/1.0"),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.IncidentSource {
	case IncidentSourceCSV:
	case IncidentSourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when INCIDENT_SOURCE=%s", IncidentSourcePostgres)
		}
	default:
		return fmt.Errorf("unsupported INCIDENT_SOURCE %q", c.IncidentSource)
	}

	if c.SearchRadiusKm <= 0 {
		return fmt.Errorf("SEARCH_RADIUS_KM must be positive, got %v", c.SearchRadiusKm)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
