// Package config reads service settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port         string
	StaticDir    string
	TemplatesDir string
	UploadDir    string
	FontPath     string
	LogoName     string
	LogLevel     logrus.Level
	CORSOrigins  []string

	FetchTimeout  time.Duration
	FetchMaxBytes int64
	CacheTTL      time.Duration

	StorageType      string
	LocalStoragePath string
	S3BucketName     string
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:             get("PORT", "3006"),
		StaticDir:        get("STATIC_DIR", "static"),
		TemplatesDir:     get("TEMPLATES_DIR", "templates"),
		UploadDir:        get("UPLOAD_DIR", "uploads"),
		LogoName:         get("LOGO_NAME", "logo.png"),
		StorageType:      get("STORAGE_TYPE", "filesystem"),
		LocalStoragePath: get("LOCAL_STORAGE_PATH", "outputs"),
		S3BucketName:     get("S3_BUCKET_NAME", ""),
	}
	cfg.FontPath = get("FONT_PATH", cfg.StaticDir+"/Montserrat-Bold.ttf")

	for _, o := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	var err error
	if cfg.LogLevel, err = logrus.ParseLevel(get("LOG_LEVEL", "info")); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.FetchTimeout, err = time.ParseDuration(get("FETCH_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("FETCH_TIMEOUT: %w", err)
	}
	if cfg.CacheTTL, err = time.ParseDuration(get("CACHE_TTL", "1h")); err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}
	if cfg.FetchMaxBytes, err = strconv.ParseInt(get("FETCH_MAX_BYTES", "15728640"), 10, 64); err != nil {
		return nil, fmt.Errorf("FETCH_MAX_BYTES: %w", err)
	}

	switch cfg.StorageType {
	case "memory", "filesystem":
	case "s3":
		if cfg.S3BucketName == "" {
			return nil, fmt.Errorf("S3_BUCKET_NAME must be set for s3 storage")
		}
	default:
		return nil, fmt.Errorf("STORAGE_TYPE: unknown value %q", cfg.StorageType)
	}
	return cfg, nil
}
