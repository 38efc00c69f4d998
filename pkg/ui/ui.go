// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), JSON and JUnit XML output formats.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/ui/json"
	"github.com/arthur-debert/doksnet/pkg/ui/junit"
	"github.com/arthur-debert/doksnet/pkg/ui/terminal"
	"github.com/arthur-debert/doksnet/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
// It provides methods for rendering different types of data and messages.
type Renderer interface {
	// RenderResult renders a verification report or result, a record, or one
	// of the display view models
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Options tune renderer output
type Options struct {
	// PreviewLimit caps content previews, in characters. 0 is unlimited.
	PreviewLimit int
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	return NewRendererWithOptions(format, output, Options{})
}

// NewRendererWithOptions is NewRenderer with explicit options
func NewRendererWithOptions(format Format, output io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatAuto:
		// Detect terminal capabilities and choose appropriate format
		if file, ok := output.(*os.File); ok {
			return NewRendererWithOptions(DetectFormat(file), output, opts)
		}
		// If not a file, default to plain text
		return NewRendererWithOptions(FormatText, output, opts)
	case FormatTerminal:
		return terminal.New(output, opts.PreviewLimit)
	case FormatText:
		return text.New(output, opts.PreviewLimit)
	case FormatJSON:
		return json.New(output)
	case FormatJUnit:
		return junit.New(output, opts.PreviewLimit)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
