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


package document

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/poiesic/docvec/core"
)

const (
	// DefaultChunkSize is the default chunk window in characters.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is the default number of characters shared
	// between consecutive chunks.
	DefaultChunkOverlap = 200
)

// Chunker splits normalized text into overlapping segments. Cuts prefer word
// boundaries in the back half of the window and fall back to a hard cut when
// none exists, so a single long token cannot stall the cursor.
//
// Chunker is stateless after construction and safe for concurrent use.
type Chunker struct {
	size    int
	overlap int
}

// NewChunker returns a Chunker with the given window size and overlap, both
// in characters. The parameters must satisfy 0 <= overlap < size.
func NewChunker(size, overlap int) (*Chunker, error) {
	if err := core.ValidateChunkParams(size, overlap); err != nil {
		return nil, err
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// Split chunks text into segments of at most the configured size. Each chunk
// is trimmed of surrounding whitespace; chunks that trim to empty are
// dropped. Indices are assigned in emission order starting at zero.
//
// Splitting the empty string yields no chunks.
func (c *Chunker) Split(text string) []core.Chunk {
	runes := []rune(text)

	var chunks []core.Chunk
	start := 0
	for start < len(runes) {
		end := start + c.size
		if end >= len(runes) {
			c.emit(&chunks, runes[start:])
			break
		}

		window := runes[start:end]
		var next int
		if cut := lastWhitespace(window); cut > c.size/2 {
			// Cut at the word boundary; the separator itself is
			// dropped.
			c.emit(&chunks, window[:cut])
			next = start + cut + 1
		} else {
			c.emit(&chunks, window)
			next = end
		}

		// Step back so the next window re-includes the tail of this one.
		next -= c.overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}

	return chunks
}

func (c *Chunker) emit(chunks *[]core.Chunk, rs []rune) {
	trimmed := strings.TrimSpace(string(rs))
	if trimmed == "" {
		return
	}
	*chunks = append(*chunks, core.Chunk{
		Index: len(*chunks),
		Text:  trimmed,
		Size:  utf8.RuneCountInString(trimmed),
	})
}

func lastWhitespace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if unicode.IsSpace(rs[i]) {
			return i
		}
	}
	return -1
}
