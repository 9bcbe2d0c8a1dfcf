package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderPicoApps = "picoapps"
	ProviderGemini   = "gemini"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// SehriMilan specifics
	Auth      AuthConfig
	Storage   StorageConfig
	Cache     CacheConfig
	Generator GeneratorConfig
	Chat      ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AuthConfig struct {
	JWTSecret   string
	DemoEnabled bool
}

type StorageConfig struct {
	SQLitePath string
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// GeneratorConfig selects and tunes the text-generation transport.
type GeneratorConfig struct {
	Provider        string
	URL             string
	AppID           string
	ChunkSize       int
	MaxDays         int
	RateLimitPerMin int
	StrictSections  bool

	// Gemini only
	Model  string
	APIKey string
}

// ChatConfig tunes the assistant endpoint. Its limit is separate from generation.
type ChatConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// fromViper builds a Config from v with env overrides and defaults applied.
func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Auth
	cfg.Auth.JWTSecret = v.GetString("auth.jwt_secret")
	cfg.Auth.DemoEnabled = v.GetBool("auth.demo_enabled")

	// Storage & cache
	cfg.Storage.SQLitePath = v.GetString("storage.sqlite_path")
	cfg.Cache.Size = v.GetInt("cache.size")
	cfg.Cache.TTL = v.GetDuration("cache.ttl")

	// Generator
	cfg.Generator.Provider = strings.ToLower(v.GetString("generator.provider"))
	cfg.Generator.URL = v.GetString("generator.url")
	cfg.Generator.AppID = v.GetString("generator.app_id")
	cfg.Generator.ChunkSize = v.GetInt("generator.chunk_size")
	cfg.Generator.MaxDays = v.GetInt("generator.max_days")
	cfg.Generator.RateLimitPerMin = v.GetInt("generator.rate_limit_per_min")
	cfg.Generator.StrictSections = v.GetBool("generator.strict_sections")
	cfg.Generator.Model = v.GetString("generator.model")
	cfg.Generator.APIKey = v.GetString("generator.api_key")
	if geminiKey := v.GetString("gemini_api_key"); geminiKey != "" && cfg.Generator.APIKey == "" {
		cfg.Generator.APIKey = geminiKey
	}

	// Chat
	cfg.Chat.RateLimitPerMin = v.GetInt("chat.rate_limit_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	switch cfg.Generator.Provider {
	case ProviderPicoApps:
	case ProviderGemini:
		if cfg.Generator.APIKey == "" {
			return errors.New("generator.api_key is required for the gemini provider")
		}
	default:
		return fmt.Errorf("generator.provider %q is not one of %s, %s", cfg.Generator.Provider, ProviderPicoApps, ProviderGemini)
	}
	if cfg.Generator.ChunkSize <= 0 {
		return errors.New("generator.chunk_size must be positive")
	}
	if cfg.Generator.MaxDays <= 0 {
		return errors.New("generator.max_days must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("auth.demo_enabled", true)
	v.SetDefault("storage.sqlite_path", "data/sehrimilan.db")
	v.SetDefault("cache.size", 1000)
	v.SetDefault("cache.ttl", "30m")

	v.SetDefault("generator.provider", ProviderPicoApps)
	v.SetDefault("generator.url", "wss://backend.buildpicoapps.com/ask_ai_streaming_v2")
	v.SetDefault("generator.app_id", "early-ahead")
	v.SetDefault("generator.chunk_size", 5)
	v.SetDefault("generator.max_days", 30)
	v.SetDefault("generator.rate_limit_per_min", 6)
	v.SetDefault("generator.strict_sections", false)
	v.SetDefault("generator.model", "gemini-2.5-flash")

	v.SetDefault("chat.rate_limit_per_min", 30)
}
