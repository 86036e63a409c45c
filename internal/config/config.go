package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Storage   StorageConfig   `yaml:"storage"`
	Minio     MinioConfig     `yaml:"minio"`
	Redis     RedisConfig     `yaml:"redis"`
	Log       LogConfig       `yaml:"log"`
	History   HistoryConfig   `yaml:"history"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// JWTConfig contains JWT token settings
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	AccessTokenExpiry int    `yaml:"access_token_expiry_minutes"`
}

// StorageConfig contains upload storage settings
type StorageConfig struct {
	Type         string   `yaml:"type"`       // "local" or "minio"
	UploadDir    string   `yaml:"upload_dir"` // for local storage
	MaxFileSize  int64    `yaml:"max_file_size_mb"`
	AllowedTypes []string `yaml:"allowed_types"`
}

// MinioConfig is used when storage.type is "minio".
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// RedisConfig enables the settings cache when Addr is set.
type RedisConfig struct {
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// HistoryConfig controls how much of a customer's record the history endpoint loads.
type HistoryConfig struct {
	PaymentWindow int `yaml:"payment_window"` // 0 loads every payment
	NotesLimit    int `yaml:"notes_limit"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	MarkOverdueLoans string `yaml:"mark_overdue_loans"`
	RefreshRiskZones string `yaml:"refresh_risk_zones"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Storage
	if val := os.Getenv("STORAGE_TYPE"); val != "" {
		c.Storage.Type = val
	}
	if val := os.Getenv("UPLOAD_DIR"); val != "" {
		c.Storage.UploadDir = val
	}

	// MinIO
	if val := os.Getenv("MINIO_ENDPOINT"); val != "" {
		c.Minio.Endpoint = val
	}
	if val := os.Getenv("MINIO_ACCESS_KEY"); val != "" {
		c.Minio.AccessKey = val
	}
	if val := os.Getenv("MINIO_SECRET_KEY"); val != "" {
		c.Minio.SecretKey = val
	}
	if val := os.Getenv("MINIO_BUCKET"); val != "" {
		c.Minio.Bucket = val
	}

	// Redis
	if val := os.Getenv("REDIS_ADDR"); val != "" {
		c.Redis.Addr = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		c.Redis.Password = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.AccessTokenExpiry <= 0 {
		c.JWT.AccessTokenExpiry = 60
	}

	// Storage
	if c.Storage.Type == "" {
		c.Storage.Type = "local"
	}
	switch c.Storage.Type {
	case "local":
		if c.Storage.UploadDir == "" {
			return fmt.Errorf("upload directory is required")
		}
	case "minio":
		if c.Minio.Endpoint == "" || c.Minio.Bucket == "" {
			return fmt.Errorf("minio endpoint and bucket are required for minio storage")
		}
	default:
		return fmt.Errorf("unknown storage type: %s", c.Storage.Type)
	}
	if c.Storage.MaxFileSize <= 0 {
		c.Storage.MaxFileSize = 2
	}
	if len(c.Storage.AllowedTypes) == 0 {
		c.Storage.AllowedTypes = []string{"image/png", "image/jpeg", "image/jpg"}
	}

	if c.Redis.TTLSeconds <= 0 {
		c.Redis.TTLSeconds = 300
	}

	if c.History.PaymentWindow < 0 {
		return fmt.Errorf("history.payment_window must not be negative")
	}
	if c.History.NotesLimit <= 0 {
		c.History.NotesLimit = 20
	}

	// Scheduler defaults
	if c.Scheduler.MarkOverdueLoans == "" {
		c.Scheduler.MarkOverdueLoans = "0 0 1 * * *" // 1 AM UTC
	}
	if c.Scheduler.RefreshRiskZones == "" {
		c.Scheduler.RefreshRiskZones = "0 30 1 * * *" // 1:30 AM UTC, after overdue marking
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// MaxUploadBytes is the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.Storage.MaxFileSize * 1024 * 1024
}

// AccessTokenTTL is the lifetime of issued access tokens.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTokenExpiry) * time.Minute
}

// RedisTTL is how long cached settings live.
func (c *Config) RedisTTL() time.Duration {
	return time.Duration(c.Redis.TTLSeconds) * time.Second
}
