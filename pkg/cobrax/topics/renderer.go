package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats a topic's raw content; ext is the topic file extension
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics as written
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}

// MarkdownRenderer renders .md topics with glamour. Other extensions, and
// any content glamour rejects, are printed as written.
type MarkdownRenderer struct {
	// Style is a glamour standard style name ("dark", "light", "notty") or a
	// path to a JSON style. Empty picks one from the terminal background.
	Style string
	// Width wraps lines; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer returns a markdown renderer that detects the terminal style
func NewGlamourRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// NewPlainMarkdownRenderer returns a markdown renderer for output that is not a terminal
func NewPlainMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "notty"}
}

func (r *MarkdownRenderer) options() []glamour.TermRendererOption {
	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	return options
}

// Render converts markdown to terminal output
func (r *MarkdownRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	tr, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return content
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
