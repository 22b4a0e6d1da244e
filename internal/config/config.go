package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Archive provider names accepted by ArchiveConfig.Provider.
const (
	ArchiveProviderNone = "none"
	ArchiveProviderS3   = "s3"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Upload  UploadConfig
	Archive ArchiveConfig
	Log     LogConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// UploadConfig holds workbook upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload size cap in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// ArchiveConfig holds raw-workbook archival settings.
type ArchiveConfig struct {
	Provider        string `mapstructure:"provider"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	ForcePathStyle  bool   `mapstructure:"force_path_style"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the SHEETVET_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHEETVET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "sheetvet")
	v.SetDefault("db.password", "sheetvet_secret")
	v.SetDefault("db.name", "sheetvet_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 25)

	// Archive defaults
	v.SetDefault("archive.provider", ArchiveProviderNone)
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("archive.bucket", "")
	v.SetDefault("archive.endpoint", "")
	v.SetDefault("archive.access_key_id", "")
	v.SetDefault("archive.secret_access_key", "")
	v.SetDefault("archive.force_path_style", false)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "SHEETVET_SERVER_PORT",
		"server.read_timeout":       "SHEETVET_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "SHEETVET_SERVER_WRITE_TIMEOUT",
		"server.environment":        "SHEETVET_SERVER_ENVIRONMENT",
		"db.host":                   "SHEETVET_DB_HOST",
		"db.port":                   "SHEETVET_DB_PORT",
		"db.user":                   "SHEETVET_DB_USER",
		"db.password":               "SHEETVET_DB_PASSWORD",
		"db.name":                   "SHEETVET_DB_NAME",
		"db.sslmode":                "SHEETVET_DB_SSLMODE",
		"db.max_open_conns":         "SHEETVET_DB_MAX_OPEN_CONNS",
		"db.max_idle_conns":         "SHEETVET_DB_MAX_IDLE_CONNS",
		"upload.max_file_size_mb":   "SHEETVET_UPLOAD_MAX_FILE_SIZE_MB",
		"archive.provider":          "SHEETVET_ARCHIVE_PROVIDER",
		"archive.region":            "SHEETVET_ARCHIVE_REGION",
		"archive.bucket":            "SHEETVET_ARCHIVE_BUCKET",
		"archive.endpoint":          "SHEETVET_ARCHIVE_ENDPOINT",
		"archive.access_key_id":     "SHEETVET_ARCHIVE_ACCESS_KEY_ID",
		"archive.secret_access_key": "SHEETVET_ARCHIVE_SECRET_ACCESS_KEY",
		"archive.force_path_style":  "SHEETVET_ARCHIVE_FORCE_PATH_STYLE",
		"log.level":                 "SHEETVET_LOG_LEVEL",
		"log.format":                "SHEETVET_LOG_FORMAT",
		"cors.allowed_origins":      "SHEETVET_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SHEETVET_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SHEETVET_SERVER_PORT") == "" {
		serverPort = ":" + port
	}
	if !strings.HasPrefix(serverPort, ":") {
		serverPort = ":" + serverPort
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:         v.GetString("db.host"),
		Port:         v.GetInt("db.port"),
		User:         v.GetString("db.user"),
		Password:     v.GetString("db.password"),
		Name:         v.GetString("db.name"),
		SSLMode:      v.GetString("db.sslmode"),
		MaxOpenConns: v.GetInt("db.max_open_conns"),
		MaxIdleConns: v.GetInt("db.max_idle_conns"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Archive = ArchiveConfig{
		Provider:        v.GetString("archive.provider"),
		Region:          v.GetString("archive.region"),
		Bucket:          v.GetString("archive.bucket"),
		Endpoint:        v.GetString("archive.endpoint"),
		AccessKeyID:     v.GetString("archive.access_key_id"),
		SecretAccessKey: v.GetString("archive.secret_access_key"),
		ForcePathStyle:  v.GetBool("archive.force_path_style"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	port := strings.TrimPrefix(c.Server.Port, ":")
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid server port %q", c.Server.Port)
	}
	if c.Upload.MaxFileSizeMB <= 0 {
		return fmt.Errorf("upload max file size must be positive, got %d MB", c.Upload.MaxFileSizeMB)
	}
	switch c.Archive.Provider {
	case ArchiveProviderNone:
	case ArchiveProviderS3:
		if c.Archive.Bucket == "" {
			return fmt.Errorf("archive provider %q requires a bucket", c.Archive.Provider)
		}
	default:
		return fmt.Errorf("unknown archive provider %q", c.Archive.Provider)
	}
	return nil
}
