// Package styles holds the named lipgloss styles used by the terminal
// renderer and the CLI's error output. The theme ships embedded as
// styles.yaml; every color is adaptive so one theme serves light and dark
// terminals.
package styles

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var embeddedTheme []byte

// Spec is one entry of the styles map. Foreground and Background name a
// palette color.
type Spec struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	MarginTop    int    `yaml:"marginTop,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
}

type themeFile struct {
	Colors map[string]lipgloss.AdaptiveColor `yaml:"colors"`
	Styles map[string]Spec                   `yaml:"styles"`
}

// Theme maps style names to built styles
type Theme struct {
	styles map[string]lipgloss.Style
}

var (
	mu      sync.RWMutex
	current = &Theme{styles: map[string]lipgloss.Style{}}
)

func init() {
	if theme, err := ParseTheme(embeddedTheme); err == nil {
		current = theme
	}
}

// ParseTheme builds a theme from YAML. A style naming a color missing from
// the palette is an error.
func ParseTheme(data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	theme := &Theme{styles: make(map[string]lipgloss.Style, len(file.Styles))}
	for name, spec := range file.Styles {
		style, err := spec.build(file.Colors)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", name, err)
		}
		theme.styles[name] = style
	}
	return theme, nil
}

// LoadTheme reads a theme file and makes it current
func LoadTheme(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	theme, err := ParseTheme(data)
	if err != nil {
		return err
	}
	Use(theme)
	return nil
}

// Use makes theme the one GetStyle and Render consult
func Use(theme *Theme) {
	mu.Lock()
	defer mu.Unlock()
	current = theme
}

// Default returns the embedded theme
func Default() *Theme {
	theme, err := ParseTheme(embeddedTheme)
	if err != nil {
		return &Theme{styles: map[string]lipgloss.Style{}}
	}
	return theme
}

// Has reports whether the theme defines name
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}

// Style returns the named style, or an unstyled one
func (t *Theme) Style(name string) lipgloss.Style {
	if style, ok := t.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

func (s Spec) build(palette map[string]lipgloss.AdaptiveColor) (lipgloss.Style, error) {
	style := lipgloss.NewStyle().
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline).
		MarginTop(s.MarginTop).
		MarginBottom(s.MarginBottom).
		PaddingLeft(s.PaddingLeft)

	if s.Foreground != "" {
		color, ok := palette[s.Foreground]
		if !ok {
			return style, fmt.Errorf("unknown color %q", s.Foreground)
		}
		style = style.Foreground(color)
	}
	if s.Background != "" {
		color, ok := palette[s.Background]
		if !ok {
			return style, fmt.Errorf("unknown color %q", s.Background)
		}
		style = style.Background(color)
	}
	return style, nil
}

// GetStyle returns the named style of the current theme
func GetStyle(name string) lipgloss.Style {
	mu.RLock()
	defer mu.RUnlock()
	return current.Style(name)
}

// Render applies the named style to text
func Render(name, text string) string {
	return GetStyle(name).Render(text)
}
