// Package config reads application settings from the environment. A .env
// and .env.local in the working directory are honored without overriding
// variables that are already set.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	for _, f := range []string{".env", ".env.local"} {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s file: %v\n", f, err)
			}
		}
	}
}

type Config struct {
	Env      string
	DataDir  string // SQLite database and exports live here
	Language string // initial document language
	Zoom     float64
	Strict   bool // report unknown element ids as errors

	GeminiAPIKey string // falls back to the OS keyring when empty
	GeminiModel  string

	ExportDir string
	MCPAddr   string // desktop app serves MCP over HTTP here when set

	MetricsAddr string // Prometheus /metrics listener, off when empty

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
}

const (
	defaultEnv         = "dev"
	defaultLanguage    = "en"
	defaultZoom        = 0.7
	defaultGeminiModel = "gemini-2.5-flash"
	defaultS3Region    = "us-east-1"
)

// Load builds a Config from the environment, applying defaults for anything
// unset. Malformed numbers and booleans are errors.
func Load() (Config, error) {
	cfg := Config{
		Env:          getEnv("PROPROFILE_ENV", defaultEnv),
		DataDir:      getEnv("PROPROFILE_DATA_DIR", defaultDataDir()),
		Language:     getEnv("PROPROFILE_LANGUAGE", defaultLanguage),
		Zoom:         defaultZoom,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("PROPROFILE_GEMINI_MODEL", defaultGeminiModel),
		S3Endpoint:   os.Getenv("PROPROFILE_S3_ENDPOINT"),
		S3Region:     getEnv("PROPROFILE_S3_REGION", defaultS3Region),
		S3Bucket:     os.Getenv("PROPROFILE_S3_BUCKET"),
		S3AccessKey:  os.Getenv("PROPROFILE_S3_ACCESS_KEY"),
		S3SecretKey:  os.Getenv("PROPROFILE_S3_SECRET_KEY"),
	}
	cfg.MCPAddr = os.Getenv("PROPROFILE_MCP_ADDR")
	cfg.MetricsAddr = os.Getenv("PROPROFILE_METRICS_ADDR")
	cfg.ExportDir = getEnv("PROPROFILE_EXPORT_DIR", filepath.Join(cfg.DataDir, "exports"))

	if v, ok := os.LookupEnv("PROPROFILE_ZOOM"); ok && v != "" {
		z, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("PROPROFILE_ZOOM: %w", err)
		}
		cfg.Zoom = z
	}
	if v, ok := os.LookupEnv("PROPROFILE_STRICT"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("PROPROFILE_STRICT: %w", err)
		}
		cfg.Strict = b
	}
	return cfg, nil
}

// DBPath is the SQLite file inside DataDir.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "proprofile.db")
}

// S3Enabled reports whether exports should also go to a bucket.
func (c Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".proprofile"
	}
	return filepath.Join(home, ".local", "share", "proprofile")
}

// getEnv retrieves an environment variable value, returning a fallback if not set or empty
func getEnv(key, fallback string) string {
	if v, exists := os.LookupEnv(key); exists && v != "" {
		return v
	}
	return fallback
}
