package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OpenAIEmbedderConfig holds configuration for the OpenAI-compatible embedder.
type OpenAIEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// EmbedderConfig selects and configures the text embedder implementation.
type EmbedderConfig struct {
	Type   string                `yaml:"type"`
	OpenAI *OpenAIEmbedderConfig `yaml:"openai,omitempty"`
}

// Config is the root application configuration. It is loaded once at process
// start and passed explicitly to every component that needs it.
type Config struct {
	PDFPaths        []string       `yaml:"pdf_paths"`
	ChromaDir       string         `yaml:"chroma_dir"`
	DefaultQuery    string         `yaml:"default_query"`
	DefaultKResults int            `yaml:"default_k_results"`
	Embedder        EmbedderConfig `yaml:"embedder"`
}

// Load reads and validates a config from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.ChromaDir == "" {
		return errors.New("config: chroma_dir is required")
	}
	if len(cfg.PDFPaths) == 0 {
		return errors.New("config: pdf_paths must list at least one PDF path or glob")
	}
	if cfg.DefaultKResults < 0 {
		return fmt.Errorf("config: default_k_results must be positive, got %d", cfg.DefaultKResults)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.DefaultKResults == 0 {
		cfg.DefaultKResults = 5
	}
	if cfg.Embedder.Type == "openai" && cfg.Embedder.OpenAI != nil {
		if cfg.Embedder.OpenAI.BaseURL == "" {
			cfg.Embedder.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Embedder.OpenAI.APIKeyEnv == "" {
			cfg.Embedder.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Embedder.OpenAI.Model == "" {
			cfg.Embedder.OpenAI.Model = "text-embedding-3-small"
		}
		if cfg.Embedder.OpenAI.TimeoutSecs == 0 {
			cfg.Embedder.OpenAI.TimeoutSecs = 30
		}
	}
}
