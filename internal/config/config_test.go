package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://localhost/engage
delivery:
  from_email: hello@engage.test
  sparkpost:
    api_key: k
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.Host != "localhost" {
		t.Errorf("server defaults not applied: %+v", cfg.Server)
	}
	if cfg.Delivery.Provider != "sparkpost" {
		t.Errorf("provider default not applied: %q", cfg.Delivery.Provider)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://file/engage
`)
	t.Setenv("DATABASE_URL", "postgres://env/engage")
	t.Setenv("DELIVERY_PROVIDER", "ses")
	t.Setenv("AWS_SES_ACCESS_KEY", "ak")
	t.Setenv("AWS_SES_SECRET_KEY", "sk")
	t.Setenv("DELIVERY_FROM_EMAIL", "hello@engage.test")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := LoadFromEnv(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.URL != "postgres://env/engage" {
		t.Errorf("env override lost: %q", cfg.Database.URL)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("redis env not applied: %+v", cfg.Redis)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config: %v", err)
	}
}

func TestValidateFailsFast(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing database", Config{
			Delivery: DeliveryConfig{Provider: "sparkpost", FromEmail: "a@b.c",
				SparkPost: SparkPostConfig{APIKey: "k"}},
		}},
		{"missing sparkpost key", Config{
			Database: DatabaseConfig{URL: "postgres://x"},
			Delivery: DeliveryConfig{Provider: "sparkpost", FromEmail: "a@b.c"},
		}},
		{"missing ses credentials", Config{
			Database: DatabaseConfig{URL: "postgres://x"},
			Delivery: DeliveryConfig{Provider: "ses", FromEmail: "a@b.c"},
		}},
		{"unknown provider", Config{
			Database: DatabaseConfig{URL: "postgres://x"},
			Delivery: DeliveryConfig{Provider: "pigeon", FromEmail: "a@b.c"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Error("expected validation failure")
			}
		})
	}
}
