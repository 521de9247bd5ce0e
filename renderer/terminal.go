package renderer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Terminal renders a markdown document for the terminal, wrapped at width columns.
func Terminal(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("cannot create terminal renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("cannot render markdown: %w", err)
	}
	return out, nil
}

// PrintMarkdown writes md to w rendered for the terminal. If the rendering
// fails, the raw markdown is written instead.
func PrintMarkdown(w io.Writer, md string) {
	out, err := Terminal(md, 100)
	if err != nil {
		out = md
	}
	fmt.Fprint(w, out)
}
