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


// Package ai provides the embedding abstractions used by the ingestion
// pipeline.
//
// The package defines the Embedder interface for turning text into vectors,
// and the Generator, which wraps an Embedder with a degraded-mode fallback:
// when the provider is unreachable, Generate synthesizes a random placeholder
// vector and tags it as degraded rather than failing the document.
//
// # Implementation Packages
//
//   - ai/ollama: embeddings through the native Ollama API
//   - ai/openai: embeddings through any OpenAI-compatible API
//   - ai/mock: deterministic test doubles with behavior injection
//
// Public constructors in the implementation packages return the ai.Embedder
// interface; the mock package returns concrete types so tests can inject
// behavior and assert on call counts.
package ai
