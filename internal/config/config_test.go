package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Upload.MaxFileSizeMB != 50 {
		t.Errorf("Expected default 50MB upload cap, got %d", cfg.Upload.MaxFileSizeMB)
	}
	if cfg.Upload.MaxFileSizeBytes() != 50*1024*1024 {
		t.Errorf("Unexpected byte cap: %d", cfg.Upload.MaxFileSizeBytes())
	}
	if cfg.Test.DefaultAlpha != 0.05 {
		t.Errorf("Expected default alpha 0.05, got %f", cfg.Test.DefaultAlpha)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPLOAD_MAX_MB", "10")
	t.Setenv("DEFAULT_ALPHA", "0.01")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Upload.MaxFileSizeMB != 10 {
		t.Errorf("Expected 10MB upload cap, got %d", cfg.Upload.MaxFileSizeMB)
	}
	if cfg.Test.DefaultAlpha != 0.01 {
		t.Errorf("Expected alpha 0.01, got %f", cfg.Test.DefaultAlpha)
	}
}

func TestLoad_RejectsBadAlpha(t *testing.T) {
	t.Setenv("DEFAULT_ALPHA", "1.5")

	if _, err := Load(); err == nil {
		t.Fatal("Expected validation error for DEFAULT_ALPHA=1.5")
	}
}
