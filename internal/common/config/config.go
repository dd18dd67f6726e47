// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Address        string `mapstructure:"address"`
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Mongo MongoConfig `mapstructure:"mongo"`
	Redis RedisConfig `mapstructure:"redis"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
	Timeout  int    `mapstructure:"timeout"` // milliseconds, connect/ping
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AssistantConfig holds the tunables of the question-answering core.
type AssistantConfig struct {
	QueryTimeout        int     `mapstructure:"query_timeout"` // milliseconds, per store call
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	MemoTTL             int     `mapstructure:"memo_ttl"` // seconds, 0 = no expiry
}

// GetQueryTimeout returns the per-store-call timeout as a duration.
func (a AssistantConfig) GetQueryTimeout() time.Duration {
	return time.Duration(a.QueryTimeout) * time.Millisecond
}

// GetMemoTTL returns the answer memo TTL as a duration.
func (a AssistantConfig) GetMemoTTL() time.Duration {
	return time.Duration(a.MemoTTL) * time.Second
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.Database.Mongo.URI == "" {
		return fmt.Errorf("database.mongo.uri is required")
	}
	if cfg.Database.Mongo.Database == "" {
		return fmt.Errorf("database.mongo.database is required")
	}
	if cfg.Assistant.SimilarityThreshold < 0 || cfg.Assistant.SimilarityThreshold > 1 {
		return fmt.Errorf("assistant.similarity_threshold must be within [0,1]")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "nexora-assistant"
	}
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8000"
	}
	if cfg.HTTP.RequestTimeout == 0 {
		cfg.HTTP.RequestTimeout = 30000
	}
	if cfg.Database.Mongo.Timeout == 0 {
		cfg.Database.Mongo.Timeout = 10000
	}
	if cfg.Assistant.QueryTimeout == 0 {
		cfg.Assistant.QueryTimeout = 5000
	}
	if cfg.Assistant.SimilarityThreshold == 0 {
		cfg.Assistant.SimilarityThreshold = 0.1
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
