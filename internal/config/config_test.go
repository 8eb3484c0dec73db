package config

import (
	"path/filepath"
	"testing"
)

var allVars = []string{
	"PROPROFILE_ENV", "PROPROFILE_DATA_DIR", "PROPROFILE_LANGUAGE", "PROPROFILE_ZOOM",
	"PROPROFILE_STRICT", "GEMINI_API_KEY", "PROPROFILE_GEMINI_MODEL", "PROPROFILE_EXPORT_DIR",
	"PROPROFILE_S3_ENDPOINT", "PROPROFILE_S3_REGION", "PROPROFILE_S3_BUCKET",
	"PROPROFILE_S3_ACCESS_KEY", "PROPROFILE_S3_SECRET_KEY", "PROPROFILE_MCP_ADDR",
	"PROPROFILE_METRICS_ADDR",
}

func clearEnv(t *testing.T) {
	for _, k := range allVars {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Env != "dev" || cfg.Language != "en" || cfg.Zoom != 0.7 || cfg.Strict {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("GeminiModel = %v", cfg.GeminiModel)
	}
	if cfg.ExportDir != filepath.Join(cfg.DataDir, "exports") {
		t.Errorf("ExportDir = %v, want under %v", cfg.ExportDir, cfg.DataDir)
	}
	if cfg.S3Enabled() {
		t.Error("S3 should be disabled without a bucket")
	}
	if cfg.MCPAddr != "" || cfg.MetricsAddr != "" {
		t.Errorf("MCPAddr = %q, MetricsAddr = %q, want both disabled", cfg.MCPAddr, cfg.MetricsAddr)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("PROPROFILE_DATA_DIR", dir)
	t.Setenv("PROPROFILE_LANGUAGE", "id")
	t.Setenv("PROPROFILE_ZOOM", "1.25")
	t.Setenv("PROPROFILE_STRICT", "true")
	t.Setenv("PROPROFILE_S3_BUCKET", "profiles")
	t.Setenv("PROPROFILE_METRICS_ADDR", "127.0.0.1:9464")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != dir || cfg.DBPath() != filepath.Join(dir, "proprofile.db") {
		t.Errorf("paths not derived from data dir: %+v", cfg)
	}
	if cfg.Language != "id" || cfg.Zoom != 1.25 || !cfg.Strict || !cfg.S3Enabled() {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.MetricsAddr != "127.0.0.1:9464" {
		t.Errorf("MetricsAddr = %v", cfg.MetricsAddr)
	}
	if cfg.S3Region != "us-east-1" {
		t.Errorf("S3Region = %v", cfg.S3Region)
	}
}

func TestLoad_Malformed(t *testing.T) {
	for _, tc := range []struct{ key, val string }{
		{"PROPROFILE_ZOOM", "wide"},
		{"PROPROFILE_STRICT", "maybe"},
	} {
		t.Run(tc.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tc.key, tc.val)
			}
		})
	}
}
