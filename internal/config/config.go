package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Chat     ChatConfig
	Gemini   ProviderConfig
	OpenAI   ProviderConfig `mapstructure:"openai"`
	Session  SessionConfig
}

type AppConfig struct {
	Env string
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Driver string // "sqlite" or "postgres"
	DSN    string // "memory" for an in-memory SQLite database
}

type ChatConfig struct {
	Provider      string        // "keyword", "gemini" or "openai"
	ResponseDelay time.Duration `mapstructure:"response_delay"`
	Timeout       time.Duration
}

type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string
	BaseURL string `mapstructure:"base_url"`
}

type SessionConfig struct {
	TTL         time.Duration
	SweepPeriod time.Duration `mapstructure:"sweep_period"`
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

const (
	ProviderKeyword = "keyword"
	ProviderGemini  = "gemini"
	ProviderOpenAI  = "openai"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "memory")
	v.SetDefault("chat.provider", ProviderKeyword)
	v.SetDefault("chat.response_delay", "1500ms")
	v.SetDefault("chat.timeout", "30s")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("session.ttl", "2h")
	v.SetDefault("session.sweep_period", "5m")
}

// Load reads .env (if present), an optional config.yaml and the environment, in
// increasing order of precedence. Nested keys map to env vars with "_" for ".",
// e.g. CHAT_PROVIDER or GEMINI_API_KEY.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables and defaults")
	}
	return load(viper.New(), true)
}

func load(v *viper.Viper, readFile bool) (*Config, error) {
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if readFile {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	switch c.Chat.Provider {
	case ProviderKeyword, ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown chat provider %q", c.Chat.Provider)
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server shutdown timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Chat.Timeout <= 0 {
		return fmt.Errorf("chat timeout must be positive, got %s", c.Chat.Timeout)
	}
	if c.Chat.ResponseDelay < 0 {
		return fmt.Errorf("chat response delay must not be negative, got %s", c.Chat.ResponseDelay)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Session.SweepPeriod <= 0 {
		return fmt.Errorf("session sweep period must be positive, got %s", c.Session.SweepPeriod)
	}
	return nil
}
