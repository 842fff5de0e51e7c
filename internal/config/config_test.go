package config

import (
	"testing"
	"time"
)

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("EMAIL_SMTP_HOST", "")
	t.Setenv("EMAIL_SENDER", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing required configuration")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/school")
	t.Setenv("EMAIL_SMTP_HOST", "smtp.noshahi.edu.pk")
	t.Setenv("EMAIL_SENDER", "noreply@noshahi.edu.pk")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Email.SMTPPort != 587 {
		t.Fatalf("expected default port 587, got %d", cfg.Email.SMTPPort)
	}
	if cfg.Email.MaxRetryAttempts != 3 {
		t.Fatalf("expected default max attempts 3, got %d", cfg.Email.MaxRetryAttempts)
	}
	if cfg.Email.RetryDelay != 5*time.Second {
		t.Fatalf("expected default retry delay 5s, got %v", cfg.Email.RetryDelay)
	}
	if !cfg.Email.EnableLogging {
		t.Fatal("expected logging enabled by default")
	}
	if cfg.API.BasePath != "/api/v0" {
		t.Fatalf("unexpected base path %q", cfg.API.BasePath)
	}
}

func TestLoadClampsRetryAttempts(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/school")
	t.Setenv("EMAIL_SMTP_HOST", "smtp.noshahi.edu.pk")
	t.Setenv("EMAIL_SENDER", "noreply@noshahi.edu.pk")
	t.Setenv("EMAIL_MAX_RETRY_ATTEMPTS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Email.MaxRetryAttempts < 1 {
		t.Fatalf("retry attempts must be at least 1, got %d", cfg.Email.MaxRetryAttempts)
	}
}
