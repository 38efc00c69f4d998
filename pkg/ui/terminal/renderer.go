// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"io"

	"github.com/arthur-debert/doksnet/pkg/ui/styles"
	"github.com/arthur-debert/doksnet/pkg/ui/text"
)

// Renderer provides rich terminal output. It shares the text layout and
// applies lipgloss styles from the style registry.
type Renderer struct {
	*text.Renderer
}

// New creates a new terminal renderer
func New(w io.Writer, previewLimit int) (*Renderer, error) {
	inner, err := text.NewStyled(w, previewLimit, styles.Render)
	if err != nil {
		return nil, err
	}
	return &Renderer{Renderer: inner}, nil
}
