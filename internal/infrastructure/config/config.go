package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

// Modes accepted by gin.SetMode.
const (
	GinModeDebug   = "debug"
	GinModeRelease = "release"
	GinModeTest    = "test"
)

// Config holds application configuration read from the environment.
// A .env file is loaded by cmd/api through godotenv/autoload.
type Config struct {
	HTTPAddr       string
	GinMode        string
	LogLevel       string
	SwaggerEnabled bool
	MetricsEnabled bool

	Storage StorageConfig
	Catalog CatalogConfig
	Export  ExportConfig
}

type StorageConfig struct {
	Driver    string
	KeyPrefix string

	SQLitePath  string
	DatabaseURL string

	DynamoDB DynamoDBConfig
}

type DynamoDBConfig struct {
	Table           string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type CatalogConfig struct {
	// SearchPaths are the directories scanned for catalog.yml.
	SearchPaths []string
}

type ExportConfig struct {
	Currency string
}

func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", "127.0.0.1:8080"),
		GinMode:        normalizeGinMode(os.Getenv("GIN_MODE")),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		SwaggerEnabled: getenvBool("SWAGGER_ENABLED", true),
		MetricsEnabled: getenvBool("METRICS_ENABLED", true),
		Storage: StorageConfig{
			Driver:      normalizeDriver(getenv("STORAGE_DRIVER", DriverSQLite)),
			KeyPrefix:   os.Getenv("STORAGE_KEY_PREFIX"),
			SQLitePath:  getenv("SQLITE_PATH", "./data/calcplanner.db"),
			DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
			DynamoDB: DynamoDBConfig{
				Table:           getenv("KV_TABLE", "calcplanner_kv"),
				Region:          getenv("AWS_REGION", "us-east-1"),
				AccessKeyID:     getenv("AWS_ACCESS_KEY_ID", "local"),
				SecretAccessKey: getenv("AWS_SECRET_ACCESS_KEY", "local"),
				Endpoint:        strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
			},
		},
		Catalog: CatalogConfig{
			SearchPaths: getenvList("CATALOG_FILE_PATHS", []string{".", "/etc/calcplanner"}),
		},
		Export: ExportConfig{
			Currency: getenv("EXPORT_CURRENCY", "€"),
		},
	}
}

// normalizeGinMode maps anything gin.SetMode would reject to release.
func normalizeGinMode(raw string) string {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case GinModeDebug, GinModeRelease, GinModeTest:
		return v
	default:
		return GinModeRelease
	}
}

func normalizeDriver(raw string) string {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case "sqlite3":
		return DriverSQLite
	case "postgresql", "pg":
		return DriverPostgres
	case "dynamo":
		return DriverDynamoDB
	default:
		return v
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return def
}

func getenvList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
