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


// Package document turns files into sequences of text chunks.
//
// It covers the three front stages of the ingestion pipeline:
//
//   - Extraction: Extractor renders a PDF or Markdown file to raw text,
//     with a layout-aware primary path and a simpler fallback for PDFs.
//   - Normalization: Normalize collapses whitespace into a canonical form.
//   - Chunking: Chunker splits normalized text into overlapping,
//     word-boundary-aware segments with stable indices.
//
// Extraction always normalizes its output. An empty extraction result is not
// an error at this layer; callers decide whether an empty document is a
// failure.
package document
