package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/clinicore/health-api/internal/middleware"
	"github.com/clinicore/health-api/pkg/auth"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	API       APIConfig       `mapstructure:"api"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type APIConfig struct {
	KeyHeader string `mapstructure:"key_header"`
	Key       string `mapstructure:"key"`
	KeyHash   string `mapstructure:"key_hash"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Verifier builds the credential-verification capability from config: a
// bcrypt hash when provided, otherwise constant-time plaintext comparison.
func (c APIConfig) Verifier() auth.Verifier {
	if c.KeyHash != "" {
		return auth.NewBcryptVerifier(c.KeyHash)
	}
	return auth.NewStaticVerifier(c.Key)
}

// envOverrides are applied on top of the config file, so deployments can set
// HEALTH_API_KEY etc. without shipping a file.
type envOverrides struct {
	Port         int    `envconfig:"PORT"`
	APIKey       string `envconfig:"API_KEY"`
	APIKeyHeader string `envconfig:"API_KEY_NAME"`
	APIKeyHash   string `envconfig:"API_KEY_HASH"`
	LogLevel     string `envconfig:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Second)
	viper.SetDefault("api.key_header", middleware.DefaultAPIKeyHeader)
	viper.SetDefault("api.key", "securekey123")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("rate_limit.requests_per_second", 50.0)
	viper.SetDefault("rate_limit.burst", 100)

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("health", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if env.Port != 0 {
		config.Server.Port = env.Port
	}
	if env.APIKey != "" {
		config.API.Key = env.APIKey
	}
	if env.APIKeyHeader != "" {
		config.API.KeyHeader = env.APIKeyHeader
	}
	if env.APIKeyHash != "" {
		config.API.KeyHash = env.APIKeyHash
	}
	if env.LogLevel != "" {
		config.Log.Level = env.LogLevel
	}

	return &config, nil
}
