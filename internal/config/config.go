package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port int `toml:"port"`
}

type LLMConfig struct {
	Provider       string   `toml:"provider"`
	Model          string   `toml:"model"`
	FallbackModels []string `toml:"fallback_models"`
	EmbeddingModel string   `toml:"embedding_model"`
	APIKey         string   `toml:"api_key"`
	BaseURL        string   `toml:"base_url"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
	MaxRetries     int      `toml:"max_retries"`
	WebSearch      bool     `toml:"web_search"`
}

type DataAPIConfig struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type LocationConfig struct {
	SlugAPIURL     string `toml:"slug_api_url"`
	DataAPIURL     string `toml:"data_api_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type VectorConfig struct {
	IndexDir            string  `toml:"index_dir"`
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	TopK                int     `toml:"top_k"`
}

type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

type PromptsConfig struct {
	Franchise string `toml:"franchise"`
	Parent    string `toml:"parent"`
	General   string `toml:"general"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	LLM      LLMConfig      `toml:"llm"`
	DataAPI  DataAPIConfig  `toml:"data_api"`
	Location LocationConfig `toml:"location"`
	Vector   VectorConfig   `toml:"vector"`
	Cache    CacheConfig    `toml:"cache"`
	Prompts  PromptsConfig  `toml:"prompts"`
	Logging  LoggingConfig  `toml:"logging"`
}

// Default returns a config with every default applied and no file read.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = 180
	}
	if c.LLM.MaxRetries == 0 {
		c.LLM.MaxRetries = 3
	}
	if c.DataAPI.TimeoutSeconds == 0 {
		c.DataAPI.TimeoutSeconds = 15
	}
	if c.Location.TimeoutSeconds == 0 {
		c.Location.TimeoutSeconds = 10
	}
	if c.Vector.SimilarityThreshold == 0 {
		c.Vector.SimilarityThreshold = 1.2
	}
	if c.Vector.TopK == 0 {
		c.Vector.TopK = 1
	}
	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = 300
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
