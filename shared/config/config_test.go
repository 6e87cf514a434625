package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// chdir moves into dir for the duration of the test so no stray .env is read.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadFromEnvDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(dir+"/.env", []byte("JPEG_QUALITY=55\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	chdir(t, dir)
	t.Cleanup(func() { _ = os.Unsetenv("JPEG_QUALITY") })

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.JPEGQuality != 55 {
		t.Errorf("JPEGQuality = %d, want 55", cfg.JPEGQuality)
	}
}

func TestLoadFromEnvDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.AppPort != 8080 {
		t.Errorf("AppPort = %d, want 8080", cfg.AppPort)
	}
	if cfg.StorageBackend != BackendFS || cfg.UploadDir != "./uploads" {
		t.Errorf("storage = %s %s", cfg.StorageBackend, cfg.UploadDir)
	}
	if !cfg.LedgerEnabled || cfg.SQLiteDBPath != "./uploads.db" {
		t.Errorf("ledger = %v %s", cfg.LedgerEnabled, cfg.SQLiteDBPath)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
	if cfg.MaxPlaceholderDimension != 4096 || cfg.JPEGQuality != 80 {
		t.Errorf("MaxPlaceholderDimension = %d JPEGQuality = %d", cfg.MaxPlaceholderDimension, cfg.JPEGQuality)
	}
	if cfg.MaxTransformDimension != 4096 {
		t.Errorf("MaxTransformDimension = %d", cfg.MaxTransformDimension)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %s", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("S3_ENDPOINT", "localhost:9000")
	t.Setenv("S3_BUCKET", "images")
	t.Setenv("S3_USE_SSL", "true")
	t.Setenv("LEDGER_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.AppPort != 9090 || cfg.StorageBackend != BackendS3 || cfg.S3Bucket != "images" || !cfg.S3UseSSL {
		t.Errorf("overrides not applied: %s", cfg)
	}
	if cfg.LedgerEnabled {
		t.Error("LedgerEnabled = true, want false")
	}
	if cfg.ShutdownTimeout != 250*time.Millisecond {
		t.Errorf("ShutdownTimeout = %s", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnvRejectsZeroPlaceholderDimension(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MAX_PLACEHOLDER_DIMENSION", "0")

	if _, err := LoadFromEnv(); err == nil || !strings.Contains(err.Error(), "MAX_PLACEHOLDER_DIMENSION") {
		t.Errorf("LoadFromEnv() error = %v, want MAX_PLACEHOLDER_DIMENSION error", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			AppPort:        8080,
			UploadDir:      "./uploads",
			StorageBackend: BackendFS,
			MaxUploadBytes: 1,
			JPEGQuality:    80,

			MaxPlaceholderDimension: 4096,
			MaxTransformDimension:   4096,
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{name: "Valid", mutate: func(*Config) {}, expectErr: false},
		{name: "Bad port", mutate: func(c *Config) { c.AppPort = 0 }, expectErr: true},
		{name: "Unknown backend", mutate: func(c *Config) { c.StorageBackend = "ftp" }, expectErr: true},
		{name: "S3 without bucket", mutate: func(c *Config) { c.StorageBackend = BackendS3; c.S3Endpoint = "x" }, expectErr: true},
		{name: "Ledger without path", mutate: func(c *Config) { c.LedgerEnabled = true }, expectErr: true},
		{name: "Zero placeholder dimension", mutate: func(c *Config) { c.MaxPlaceholderDimension = 0 }, expectErr: true},
		{name: "Negative placeholder dimension", mutate: func(c *Config) { c.MaxPlaceholderDimension = -1 }, expectErr: true},
		{name: "Zero transform dimension", mutate: func(c *Config) { c.MaxTransformDimension = 0 }, expectErr: true},
		{name: "Bad quality", mutate: func(c *Config) { c.JPEGQuality = 101 }, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.expectErr != (err != nil) {
				t.Errorf("Validate() error = %v, expectErr %v", err, tt.expectErr)
			}
		})
	}
}

func TestStringMasksSecrets(t *testing.T) {
	cfg := Config{S3AccessKey: "AKIA123", S3SecretKey: "hunter2"}
	out := cfg.String()
	if strings.Contains(out, "AKIA123") || strings.Contains(out, "hunter2") {
		t.Errorf("String() leaked a secret:\n%s", out)
	}
	if !strings.Contains(out, "S3SecretKey: ********") {
		t.Errorf("String() did not mask secret:\n%s", out)
	}
}
