// Package prompt collects interactive input on the terminal.
package prompt

import (
	"github.com/pterm/pterm"
)

// Asker is the low-level question primitive. Console builds doksnet's
// dialogs on top of it.
type Asker interface {
	Select(title string, options []string) (string, error)
	Confirm(title string, def bool) (bool, error)
	Input(title string) (string, error)
}

// PtermAsker asks through pterm's interactive printers
type PtermAsker struct{}

// Select shows a single-choice menu
func (PtermAsker) Select(title string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(title).
		Show()
}

// Confirm asks a yes/no question
func (PtermAsker) Confirm(title string, def bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultText(title).
		WithDefaultValue(def).
		Show()
}

// Input reads one line of text
func (PtermAsker) Input(title string) (string, error) {
	return pterm.DefaultInteractiveTextInput.
		WithDefaultText(title).
		Show()
}
