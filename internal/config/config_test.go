package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("FromEnv() failed: %v", err)
	}

	if cfg.Port != "3006" {
		t.Errorf("Port = %q, want 3006", cfg.Port)
	}
	if cfg.FontPath != "static/Montserrat-Bold.ttf" {
		t.Errorf("FontPath = %q", cfg.FontPath)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %v, want 10s", cfg.FetchTimeout)
	}
	if cfg.FetchMaxBytes != 15<<20 {
		t.Errorf("FetchMaxBytes = %d, want %d", cfg.FetchMaxBytes, 15<<20)
	}
	if cfg.LogLevel != logrus.InfoLevel {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.StorageType != "filesystem" {
		t.Errorf("StorageType = %q, want filesystem", cfg.StorageType)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"PORT":            "8080",
		"STATIC_DIR":      "/srv/static",
		"CACHE_TTL":       "30m",
		"FETCH_MAX_BYTES": "1024",
		"LOG_LEVEL":       "debug",
		"CORS_ORIGINS":    "https://a.example, https://b.example",
		"STORAGE_TYPE":    "memory",
	}))
	if err != nil {
		t.Fatalf("FromEnv() failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.FontPath != "/srv/static/Montserrat-Bold.ttf" {
		t.Errorf("FontPath = %q", cfg.FontPath)
	}
	if cfg.CacheTTL != 30*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.FetchMaxBytes != 1024 {
		t.Errorf("FetchMaxBytes = %d", cfg.FetchMaxBytes)
	}
	if cfg.LogLevel != logrus.DebugLevel {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad ttl", map[string]string{"CACHE_TTL": "forever"}},
		{"bad timeout", map[string]string{"FETCH_TIMEOUT": "10"}},
		{"bad max bytes", map[string]string{"FETCH_MAX_BYTES": "lots"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
		{"unknown storage", map[string]string{"STORAGE_TYPE": "ftp"}},
		{"s3 without bucket", map[string]string{"STORAGE_TYPE": "s3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(envMap(tt.env)); err == nil {
				t.Error("FromEnv() expected error, got nil")
			}
		})
	}
}
