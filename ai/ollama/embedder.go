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


// Package ollama implements ai.Embedder against the native Ollama API.
package ollama

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"

	"github.com/poiesic/docvec/ai"
)

// Embedder implements ai.Embedder using the Ollama embeddings endpoint.
type Embedder struct {
	client *api.Client
	model  string
	logger *slog.Logger
}

// NewEmbedder creates an embedder talking to the Ollama server named in the
// configuration.
//
// Returns the ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(config.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", config.Host, err)
	}

	client := api.NewClient(base, &http.Client{Timeout: config.Timeout})

	return &Embedder{
		client: client,
		model:  config.Model,
		logger: slog.Default().With("component", "ollama-embedder"),
	}, nil
}

// EmbedText generates a vector embedding for a single text string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.Embeddings(ctx, &api.EmbeddingRequest{
		Model:  e.model,
		Prompt: text,
	})
	if err != nil {
		e.logger.Error("failed to generate embedding", "model", e.model, "err", err)
		return nil, err
	}

	vector := make([]float32, len(resp.Embedding))
	for i, v := range resp.Embedding {
		vector[i] = float32(v)
	}
	return vector, nil
}

// EmbedTexts generates vector embeddings for multiple text strings. The
// Ollama embeddings endpoint takes one prompt per call, so the batch is a
// sequence of single requests; the first failure aborts the batch.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := e.EmbedText(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("text %d of %d: %w", i+1, len(texts), err)
		}
		vectors[i] = vector
	}
	return vectors, nil
}
