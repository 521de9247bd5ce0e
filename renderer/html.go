package renderer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown converts markdown with the GitHub flavor, so that tables are rendered.
// Raw HTML in the source is not rendered.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a markdown document into an HTML fragment.
func HTML(md string) (string, error) {
	var b bytes.Buffer
	if err := markdown.Convert([]byte(md), &b); err != nil {
		return "", fmt.Errorf("cannot convert markdown to html: %w", err)
	}
	return b.String(), nil
}
