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
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF extracts text from a PDF file. The primary path walks pages in
// row order, which preserves reading layout; if it fails on any page the
// whole file is retried through the reader's plain-text stream.
//
// The pdf parser panics on some malformed inputs, so both paths run behind a
// recover and report the panic as an error.
func (e *Extractor) extractPDF(path string) (string, error) {
	text, rowErr := pdfTextByRows(path)
	if rowErr == nil {
		return text, nil
	}
	e.logger.Warn("row-ordered pdf extraction failed, falling back to plain text",
		"path", path, "error", rowErr)

	text, plainErr := pdfPlainText(path)
	if plainErr != nil {
		return "", fmt.Errorf("rows: %v; plain text: %v", rowErr, plainErr)
	}
	return text, nil
}

func pdfTextByRows(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		for _, row := range rows {
			for _, word := range row.Content {
				sb.WriteString(word.S)
				sb.WriteByte(' ')
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

func pdfPlainText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
