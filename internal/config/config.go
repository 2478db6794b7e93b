package config

import (
	"os"
	"strconv"
	"time"
	_ "time/tzdata"
)

// DatabaseConfig holds PostgreSQL connection settings for the disaster store.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database is configured. Without one the
// disaster store routes are not registered.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// MinIOConfig holds object storage settings used to archive upstream feeds.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether object storage is configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// UpstreamConfig holds the base URLs and credentials of the public APIs
// behind the disaster and places routes.
type UpstreamConfig struct {
	FCCBaseURL          string
	FEMABaseURL         string
	GeoapifyBaseURL     string
	PlacesAPIKey        string
	EONETBaseURL        string
	NominatimBaseURL    string
	UserAgent           string
	TimeoutSec          int
	GeocodeIntervalMs   int
	RecentDisasterLimit int
}

// Timeout returns the per-request timeout for upstream calls.
func (c UpstreamConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// GeocodeInterval returns the pause between consecutive reverse-geocoding calls.
func (c UpstreamConfig) GeocodeInterval() time.Duration {
	return time.Duration(c.GeocodeIntervalMs) * time.Millisecond
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost            string
	Port               string
	LogLevel           string
	Location           *time.Location
	ShutdownTimeoutSec int
	MetricsEnabled     bool
	SwaggerEnabled     bool
	ServiceName        string
	Database           DatabaseConfig
	MinIO              MinIOConfig
	Upstream           UpstreamConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:            getEnv("APP_HOST", "localhost:8080"),
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Location:           getEnvLocation("APP_TIMEZONE", time.UTC),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		SwaggerEnabled:     getEnvBool("SWAGGER_ENABLED", true),
		ServiceName:        getEnv("OTEL_SERVICE_NAME", "greeter"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Upstream: UpstreamConfig{
			FCCBaseURL:          getEnv("FCC_BASE_URL", "https://geo.fcc.gov"),
			FEMABaseURL:         getEnv("FEMA_BASE_URL", "https://www.fema.gov"),
			GeoapifyBaseURL:     getEnv("GEOAPIFY_BASE_URL", "https://api.geoapify.com"),
			PlacesAPIKey:        getEnv("PLACE_API_KEY", getEnv("PLACE_API", "")),
			EONETBaseURL:        getEnv("EONET_BASE_URL", "https://eonet.gsfc.nasa.gov"),
			NominatimBaseURL:    getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
			UserAgent:           getEnv("UPSTREAM_USER_AGENT", "greeter/1.0"),
			TimeoutSec:          getEnvInt("UPSTREAM_TIMEOUT_SEC", 15),
			GeocodeIntervalMs:   getEnvInt("GEOCODE_INTERVAL_MS", 1000),
			RecentDisasterLimit: getEnvInt("RECENT_DISASTER_LIMIT", 10),
		},
	}
}

// ListenAddr returns the address the HTTP server binds to.
func (c *AppConfig) ListenAddr() string {
	return ":" + c.Port
}

// ShutdownTimeout returns the graceful shutdown budget.
func (c *AppConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvLocation(key string, def *time.Location) *time.Location {
	if v := os.Getenv(key); v != "" {
		loc, err := time.LoadLocation(v)
		if err == nil {
			return loc
		}
	}
	return def
}
