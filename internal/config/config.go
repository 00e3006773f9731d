package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Payment  PaymentConfig  `yaml:"payment"`
	Push     PushConfig     `yaml:"push"`
	SMS      SMSConfig      `yaml:"sms"`
	Admin    AdminConfig    `yaml:"admin"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type PaymentConfig struct {
	BaseURL   string `yaml:"base_url"`
	SecretKey string `yaml:"secret_key"`
}

type PushConfig struct {
	BaseURL string `yaml:"base_url"`
	AppID   string `yaml:"app_id"`
	APIKey  string `yaml:"api_key"`
}

type SMSConfig struct {
	BaseURL  string `yaml:"base_url"`
	SenderID string `yaml:"sender_id"`
	APIKey   string `yaml:"api_key"`
}

type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Load reads the yaml config file and applies environment overrides for
// secrets, so credentials never have to live in the file itself.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()

	return &cfg, nil
}

func (c *Config) applyEnv() {
	override(&c.Database.Password, "DB_PASSWORD")
	override(&c.Payment.SecretKey, "PAYMENT_SECRET_KEY")
	override(&c.Push.AppID, "PUSH_APP_ID")
	override(&c.Push.APIKey, "PUSH_API_KEY")
	override(&c.SMS.APIKey, "SMS_API_KEY")
	override(&c.Admin.Email, "ADMIN_EMAIL")
	override(&c.Admin.Password, "ADMIN_PASSWORD")
}

func override(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
