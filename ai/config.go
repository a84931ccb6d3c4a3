// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"fmt"
	"time"
)

// Supported embedding providers.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// Config holds configuration for embedding providers.
type Config struct {
	// Provider selects the embedding implementation.
	// One of ProviderOllama or ProviderOpenAI.
	Provider string

	// Host is the base URL of the embedding service.
	// Example: "http://localhost:11434" for a local Ollama server.
	Host string

	// Model is the model identifier to use for text embeddings.
	// Example: "nomic-embed-text", "text-embedding-3-small"
	Model string

	// Dimension is the width of the vectors the model produces. It is used
	// to size placeholder vectors in degraded mode; real embeddings are
	// stored at whatever width the provider returns.
	Dimension int

	// Timeout bounds each embedding request.
	Timeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithProvider selects the embedding implementation.
func WithProvider(provider string) ConfigOption {
	return func(c *Config) {
		c.Provider = provider
	}
}

// WithHost sets the embedding service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the embedding model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithDimension sets the expected embedding width.
func WithDimension(dim int) ConfigOption {
	return func(c *Config) {
		c.Dimension = dim
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// DefaultConfig returns a Config with sensible defaults for a local Ollama
// server.
func DefaultConfig() *Config {
	return &Config{
		Provider:  ProviderOllama,
		Host:      "http://localhost:11434",
		Model:     "nomic-embed-text",
		Dimension: 768,
		Timeout:   30 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("http://ollama:11434"),
//	    ai.WithModel("embeddinggemma"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is valid and complete.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOllama, ProviderOpenAI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.Dimension <= 0 {
		return fmt.Errorf("ai config: %w", ErrInvalidDimension)
	}
	if c.Timeout <= 0 {
		return errors.New("ai config: Timeout must be positive")
	}
	return nil
}
