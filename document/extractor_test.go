package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedType(t *testing.T) {
	assert.True(t, SupportedType("report.pdf"))
	assert.True(t, SupportedType("README.md"))
	assert.True(t, SupportedType("REPORT.PDF"))
	assert.False(t, SupportedType("notes.txt"))
	assert.False(t, SupportedType("archive.docx"))
	assert.False(t, SupportedType("noextension"))
}

func TestExtractMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	content := "# Title\n\nSome *emphasized* text.\n\n- item one\n- item two\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := NewExtractor().Extract(path)
	require.NoError(t, err)

	assert.Contains(t, text, "Title")
	assert.Contains(t, text, "Some emphasized text.")
	assert.Contains(t, text, "item one")
	assert.Contains(t, text, "item two")

	// Markup must be gone and whitespace collapsed.
	assert.NotContains(t, text, "<")
	assert.NotContains(t, text, "#")
	assert.NotContains(t, text, "*")
	assert.NotContains(t, text, "\n")
}

func TestExtractUnsupportedType(t *testing.T) {
	_, err := NewExtractor().Extract("/data/notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractMissingMarkdown(t *testing.T) {
	_, err := NewExtractor().Extract(filepath.Join(t.TempDir(), "gone.md"))
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractCorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	_, err := NewExtractor().Extract(path)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}
