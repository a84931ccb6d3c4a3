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
	"context"
	"log/slog"
	"math/rand/v2"
)

// Embedding is the result of embedding one chunk of text. When the provider
// is unavailable, Vector holds a random placeholder, Degraded is true and
// Reason carries the provider error.
type Embedding struct {
	Vector   []float32
	Degraded bool
	Reason   string
}

// Generator produces an embedding for every input. Provider failures never
// surface as errors; they yield degraded placeholder vectors instead, so a
// document always finishes ingestion and can be repaired later.
type Generator struct {
	embedder  Embedder
	dimension int
	logger    *slog.Logger
}

// NewGenerator creates a Generator around the given embedder. dimension sets
// the width of placeholder vectors and must be positive.
func NewGenerator(embedder Embedder, dimension int) (*Generator, error) {
	if embedder == nil {
		return nil, ErrNilEmbedder
	}
	if dimension <= 0 {
		return nil, ErrInvalidDimension
	}
	return &Generator{
		embedder:  embedder,
		dimension: dimension,
		logger:    slog.Default().With("component", "embedding-generator"),
	}, nil
}

// Generate embeds text, falling back to a degraded placeholder vector when
// the provider fails. It never returns an error.
func (g *Generator) Generate(ctx context.Context, text string) Embedding {
	vector, err := g.embedder.EmbedText(ctx, text)
	if err == nil && len(vector) > 0 {
		return Embedding{Vector: vector}
	}

	reason := "provider returned an empty embedding"
	if err != nil {
		reason = err.Error()
	}
	g.logger.Warn("embedding degraded to placeholder vector",
		"dimension", g.dimension, "reason", reason)

	return Embedding{
		Vector:   placeholderVector(g.dimension),
		Degraded: true,
		Reason:   reason,
	}
}

// placeholderVector fills a vector with uniform values in [0, 1). The values
// carry no meaning; they only keep the record shape intact until the chunk is
// re-embedded.
func placeholderVector(dim int) []float32 {
	vector := make([]float32, dim)
	for i := range vector {
		vector[i] = rand.Float32()
	}
	return vector
}
