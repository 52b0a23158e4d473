package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Gemini - LLM
	Gemini GeminiConfig

	// WhatsApp - Messaging channel
	WhatsApp WhatsAppConfig

	// Catalog - Product spreadsheet
	Catalog CatalogConfig

	// Session - Conversation state lifetime
	Session SessionConfig

	// Redis - Webhook deduplication (optional)
	Redis RedisConfig

	// Kafka - Turn analytics events (optional)
	Kafka KafkaConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig is the configuration for Google Gemini (LLM). Same shape as pkg/gemini.GeminiConfig.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// WhatsAppConfig is the configuration for the WhatsApp Cloud API.
type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	VerifyToken   string
	BaseURL       string
}

// CatalogConfig points at the product spreadsheet.
type CatalogConfig struct {
	FilePath string
	Sheet    string
}

// SessionConfig controls conversation state eviction. Values are in seconds.
type SessionConfig struct {
	TTL              int
	EvictionInterval int
}

// RedisConfig is the configuration for Redis. An empty Host disables Redis
// and webhook deduplication with it.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka. Empty Brokers disable event
// publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("jewel-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/jewelbot/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini - LLM
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")

	// WhatsApp - Messaging channel
	cfg.WhatsApp.AccessToken = viper.GetString("whatsapp.access_token")
	cfg.WhatsApp.PhoneNumberID = viper.GetString("whatsapp.phone_number_id")
	cfg.WhatsApp.VerifyToken = viper.GetString("whatsapp.verify_token")
	cfg.WhatsApp.BaseURL = viper.GetString("whatsapp.base_url")

	// Catalog - Product spreadsheet
	cfg.Catalog.FilePath = viper.GetString("catalog.file_path")
	cfg.Catalog.Sheet = viper.GetString("catalog.sheet")

	// Session - Conversation state lifetime
	cfg.Session.TTL = viper.GetInt("session.ttl")
	cfg.Session.EvictionInterval = viper.GetInt("session.eviction_interval")

	// Redis - Webhook deduplication (optional)
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka - Turn analytics events (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. Gemini
	viper.SetDefault("gemini.model", "gemini-2.0-flash")

	// 2. WhatsApp Cloud API
	viper.SetDefault("whatsapp.base_url", "https://graph.facebook.com/v21.0")

	// 3. Catalog
	viper.SetDefault("catalog.file_path", "./data/products.xlsx")
	viper.SetDefault("catalog.sheet", "")

	// 4. Session (30 minutes idle, swept every 5)
	viper.SetDefault("session.ttl", 1800)
	viper.SetDefault("session.eviction_interval", 300)

	// 5. Redis (host left empty: disabled unless configured)
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 6. Kafka (brokers left empty: disabled unless configured)
	viper.SetDefault("kafka.topic", "jewelbot.turn.events")
}

func validate(cfg *Config) error {
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}
	if cfg.WhatsApp.AccessToken == "" {
		return fmt.Errorf("whatsapp.access_token is required")
	}
	if cfg.WhatsApp.PhoneNumberID == "" {
		return fmt.Errorf("whatsapp.phone_number_id is required")
	}
	if cfg.WhatsApp.VerifyToken == "" {
		return fmt.Errorf("whatsapp.verify_token is required")
	}
	if cfg.Catalog.FilePath == "" {
		return fmt.Errorf("catalog.file_path is required")
	}
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if cfg.Session.EvictionInterval <= 0 {
		return fmt.Errorf("session.eviction_interval must be positive")
	}
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when brokers are set")
	}
	return nil
}
