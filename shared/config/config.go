package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendFS = "fs"
	BackendS3 = "s3"
)

type Config struct {
	AppPort        int    `mapstructure:"APP_PORT"`
	UploadDir      string `mapstructure:"UPLOAD_DIR"`
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`

	// --- S3 ---
	S3Endpoint  string `mapstructure:"S3_ENDPOINT"`
	S3Region    string `mapstructure:"S3_REGION"`
	S3Bucket    string `mapstructure:"S3_BUCKET"`
	S3AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"S3_SECRET_KEY"`
	S3UseSSL    bool   `mapstructure:"S3_USE_SSL"`
	S3PathStyle bool   `mapstructure:"S3_PATH_STYLE"`

	// --- Ledger ---
	LedgerEnabled bool   `mapstructure:"LEDGER_ENABLED"`
	SQLiteDBPath  string `mapstructure:"SQLITE_DB_PATH"`

	MaxUploadBytes          int64 `mapstructure:"MAX_UPLOAD_BYTES"`
	MaxPlaceholderDimension int   `mapstructure:"MAX_PLACEHOLDER_DIMENSION"`
	MaxTransformDimension   int   `mapstructure:"MAX_TRANSFORM_DIMENSION"`
	JPEGQuality             int   `mapstructure:"JPEG_QUALITY"`

	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]any{
	"APP_PORT":                  8080,
	"UPLOAD_DIR":                "./uploads",
	"STORAGE_BACKEND":           BackendFS,
	"S3_ENDPOINT":               "",
	"S3_REGION":                 "",
	"S3_BUCKET":                 "",
	"S3_ACCESS_KEY":             "",
	"S3_SECRET_KEY":             "",
	"S3_USE_SSL":                false,
	"S3_PATH_STYLE":             false,
	"LEDGER_ENABLED":            true,
	"SQLITE_DB_PATH":            "./uploads.db",
	"MAX_UPLOAD_BYTES":          10 << 20,
	"MAX_PLACEHOLDER_DIMENSION": 4096,
	"MAX_TRANSFORM_DIMENSION":   4096,
	"JPEG_QUALITY":              80,
	"LOG_LEVEL":                 "info",
	"LOG_FORMAT":                "json",
	"SHUTDOWN_TIMEOUT":          "5s",
}

func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  AppPort: %d\n", c.AppPort))
	sb.WriteString(fmt.Sprintf("  StorageBackend: %s\n", c.StorageBackend))
	sb.WriteString(fmt.Sprintf("  UploadDir: %s\n", c.UploadDir))

	sb.WriteString(fmt.Sprintf("  S3Endpoint: %s\n", c.S3Endpoint))
	sb.WriteString(fmt.Sprintf("  S3Region: %s\n", c.S3Region))
	sb.WriteString(fmt.Sprintf("  S3Bucket: %s\n", c.S3Bucket))
	sb.WriteString(fmt.Sprintf("  S3AccessKey: %s\n", mask(c.S3AccessKey)))
	sb.WriteString(fmt.Sprintf("  S3SecretKey: %s\n", mask(c.S3SecretKey)))
	sb.WriteString(fmt.Sprintf("  S3UseSSL: %v\n", c.S3UseSSL))
	sb.WriteString(fmt.Sprintf("  S3PathStyle: %v\n", c.S3PathStyle))

	sb.WriteString(fmt.Sprintf("  LedgerEnabled: %v\n", c.LedgerEnabled))
	sb.WriteString(fmt.Sprintf("  SQLiteDBPath: %s\n", c.SQLiteDBPath))

	sb.WriteString(fmt.Sprintf("  MaxUploadBytes: %d\n", c.MaxUploadBytes))
	sb.WriteString(fmt.Sprintf("  MaxPlaceholderDimension: %d\n", c.MaxPlaceholderDimension))
	sb.WriteString(fmt.Sprintf("  MaxTransformDimension: %d\n", c.MaxTransformDimension))
	sb.WriteString(fmt.Sprintf("  JPEGQuality: %d\n", c.JPEGQuality))
	sb.WriteString(fmt.Sprintf("  LogLevel: %s\n", c.LogLevel))
	sb.WriteString(fmt.Sprintf("  LogFormat: %s\n", c.LogFormat))
	sb.WriteString(fmt.Sprintf("  ShutdownTimeout: %s\n", c.ShutdownTimeout))

	return sb.String()
}

func mask(secret string) string {
	if secret == "" {
		return "(empty)"
	}
	return "********"
}

// LoadFromEnv reads configuration from the environment, loading a local .env
// file first when one exists.
func LoadFromEnv() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.New("failed to load .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	for k, d := range defaults {
		v.SetDefault(k, d)
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.AppPort <= 0 || c.AppPort > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT out of range: %d", c.AppPort))
	}

	switch c.StorageBackend {
	case BackendFS:
		if c.UploadDir == "" {
			errs = append(errs, errors.New("UPLOAD_DIR is required for the fs backend"))
		}
	case BackendS3:
		if c.S3Endpoint == "" || c.S3Bucket == "" {
			errs = append(errs, errors.New("S3_ENDPOINT and S3_BUCKET are required for the s3 backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend))
	}

	if c.LedgerEnabled && c.SQLiteDBPath == "" {
		errs = append(errs, errors.New("SQLITE_DB_PATH is required when the ledger is enabled"))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_UPLOAD_BYTES must be positive: %d", c.MaxUploadBytes))
	}
	if c.MaxPlaceholderDimension <= 0 {
		errs = append(errs, fmt.Errorf("MAX_PLACEHOLDER_DIMENSION must be positive: %d", c.MaxPlaceholderDimension))
	}
	if c.MaxTransformDimension <= 0 {
		errs = append(errs, fmt.Errorf("MAX_TRANSFORM_DIMENSION must be positive: %d", c.MaxTransformDimension))
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("JPEG_QUALITY must be between 1 and 100: %d", c.JPEGQuality))
	}

	return errors.Join(errs...)
}
