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
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Extractor renders supported files to normalized plain text. Dispatch is by
// file extension, case-insensitive.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates an Extractor that logs through the default slog
// handler.
func NewExtractor() *Extractor {
	return &Extractor{
		logger: slog.Default().With("component", "extractor"),
	}
}

// SupportedType reports whether the file name carries an extension the
// Extractor can handle.
func SupportedType(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf", ".md":
		return true
	}
	return false
}

// Extract reads the file at path and returns its normalized text content.
// Unsupported extensions return ErrUnsupportedType; failures in a supported
// extractor are wrapped in ErrExtractionFailed. An empty result is not an
// error.
func (e *Extractor) Extract(path string) (string, error) {
	var (
		text string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		text, err = e.extractPDF(path)
	case ".md":
		text, err = e.extractMarkdown(path)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	return Normalize(text), nil
}
