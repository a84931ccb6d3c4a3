package document

import (
	"os"
	"regexp"

	"github.com/russross/blackfriday/v2"
)

var markupTag = regexp.MustCompile(`<[^>]+>`)

// extractMarkdown renders a Markdown file to HTML and strips the markup,
// leaving only the visible text. Rendering first keeps the handling of
// nested Markdown constructs out of this package.
func (e *Extractor) extractMarkdown(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	html := blackfriday.Run(content)
	return markupTag.ReplaceAllString(string(html), ""), nil
}
