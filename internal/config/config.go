// Package config loads application configuration from a YAML file with
// environment-variable overrides. Missing required values (database URL,
// active provider credentials) are a fatal startup condition, never a
// runtime-recoverable error.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Delivery DeliveryConfig `yaml:"delivery"`
	Redis    RedisConfig    `yaml:"redis"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds the Postgres connection string.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// DeliveryConfig selects and configures the transactional email provider.
type DeliveryConfig struct {
	Provider  string          `yaml:"provider"` // "sparkpost" or "ses"
	FromName  string          `yaml:"from_name"`
	FromEmail string          `yaml:"from_email"`
	SparkPost SparkPostConfig `yaml:"sparkpost"`
	SES       SESConfig       `yaml:"ses"`
}

// SparkPostConfig holds SparkPost API configuration.
type SparkPostConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// SESConfig holds AWS SES API configuration.
type SESConfig struct {
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Region    string `yaml:"region"`
}

// RedisConfig holds the analytics cache configuration. Disabled simply
// means analytics queries always hit the database.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// TTL is how long cached analytics stay fresh.
const AnalyticsCacheTTL = 30 * time.Second

// Load reads and parses the configuration file, applying defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides. A
// .env file (if present) is loaded first, so secrets can live in .env
// locally and in real env vars in production. A missing config file is fine
// as long as the environment supplies everything required.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("DELIVERY_PROVIDER"); v != "" {
		cfg.Delivery.Provider = v
	}
	if v := os.Getenv("DELIVERY_FROM_NAME"); v != "" {
		cfg.Delivery.FromName = v
	}
	if v := os.Getenv("DELIVERY_FROM_EMAIL"); v != "" {
		cfg.Delivery.FromEmail = v
	}
	if v := os.Getenv("SPARKPOST_API_KEY"); v != "" {
		cfg.Delivery.SparkPost.APIKey = v
	}
	if v := os.Getenv("SPARKPOST_BASE_URL"); v != "" {
		cfg.Delivery.SparkPost.BaseURL = v
	}
	if v := os.Getenv("AWS_SES_ACCESS_KEY"); v != "" {
		cfg.Delivery.SES.AccessKey = v
	}
	if v := os.Getenv("AWS_SES_SECRET_KEY"); v != "" {
		cfg.Delivery.SES.SecretKey = v
	}
	if v := os.Getenv("AWS_SES_REGION"); v != "" {
		cfg.Delivery.SES.Region = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
		cfg.Redis.Enabled = true
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Delivery.Provider == "" {
		c.Delivery.Provider = "sparkpost"
	}
	if c.Delivery.SES.Region == "" {
		c.Delivery.SES.Region = "us-east-1"
	}
}

// Validate fails fast on missing required values. Called once at startup.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("config: database url is required (DATABASE_URL)")
	}
	if c.Delivery.FromEmail == "" {
		return fmt.Errorf("config: delivery from_email is required (DELIVERY_FROM_EMAIL)")
	}
	switch c.Delivery.Provider {
	case "sparkpost":
		if c.Delivery.SparkPost.APIKey == "" {
			return fmt.Errorf("config: sparkpost api key is required (SPARKPOST_API_KEY)")
		}
	case "ses":
		if c.Delivery.SES.AccessKey == "" || c.Delivery.SES.SecretKey == "" {
			return fmt.Errorf("config: SES credentials are required (AWS_SES_ACCESS_KEY, AWS_SES_SECRET_KEY)")
		}
	default:
		return fmt.Errorf("config: unknown delivery provider %q", c.Delivery.Provider)
	}
	return nil
}
