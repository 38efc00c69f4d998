package prompt

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/doksnet/pkg/core"
	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/reconcile"
	"github.com/arthur-debert/doksnet/pkg/ui"
	"github.com/arthur-debert/doksnet/pkg/ui/display"
	"github.com/arthur-debert/doksnet/pkg/verify"
)

// Menu entries for a failing link
const (
	OptionAccept = "Accept current content"
	OptionEdit   = "Edit link"
	OptionRemove = "Remove link"
	OptionSkip   = "Skip"
	OptionQuit   = "Quit"
)

// Menu entries for the edit dialog
const (
	EditDoc         = "Documentation partition"
	EditCode        = "Code partition"
	EditDescription = "Description"
	EditBoth        = "Both partitions"
	EditCancel      = "Cancel"
)

var actionOptions = map[string]reconcile.Action{
	OptionAccept: reconcile.ActionAccept,
	OptionEdit:   reconcile.ActionEdit,
	OptionRemove: reconcile.ActionRemove,
	OptionSkip:   reconcile.ActionSkip,
}

// Console implements the interactive dialogs of doksnet
type Console struct {
	Asker    Asker
	Renderer ui.Renderer
}

// NewConsole returns a console asking through pterm
func NewConsole(renderer ui.Renderer) *Console {
	return &Console{Asker: PtermAsker{}, Renderer: renderer}
}

var _ reconcile.Prompter = (*Console)(nil)

// Choose shows a failing link with its current content and asks what to do
func (c *Console) Choose(item verify.Result, pos, total int) (reconcile.Action, error) {
	if err := c.Renderer.RenderMessage(fmt.Sprintf("\n[%d/%d]", pos, total)); err != nil {
		return reconcile.ActionSkip, err
	}
	if err := c.Renderer.RenderResult(item); err != nil {
		return reconcile.ActionSkip, err
	}

	choice, err := c.Asker.Select("What do you want to do?",
		[]string{OptionAccept, OptionEdit, OptionRemove, OptionSkip, OptionQuit})
	if err != nil {
		return reconcile.ActionSkip, errors.Wrap(err, errors.ErrIO, "failed to read choice")
	}
	if choice == OptionQuit {
		return reconcile.ActionSkip, reconcile.ErrInterrupted
	}

	action, ok := actionOptions[choice]
	if !ok {
		return reconcile.ActionSkip, errors.Newf(errors.ErrInvalidInput, "unknown choice %q", choice)
	}
	return action, nil
}

// EditRequest asks which fields to replace and reads their new values
func (c *Console) EditRequest(item verify.Result) (core.EditRequest, error) {
	field, err := c.Asker.Select("What do you want to edit?",
		[]string{EditDoc, EditCode, EditDescription, EditBoth, EditCancel})
	if err != nil {
		return core.EditRequest{}, errors.Wrap(err, errors.ErrIO, "failed to read choice")
	}

	var req core.EditRequest
	switch field {
	case EditDoc:
		req.Doc, err = c.askPartition("New documentation partition", item.Doc.Partition)
	case EditCode:
		req.Code, err = c.askPartition("New code partition", item.Code.Partition)
	case EditBoth:
		req.Doc, err = c.askPartition("New documentation partition", item.Doc.Partition)
		if err == nil {
			req.Code, err = c.askPartition("New code partition", item.Code.Partition)
		}
	case EditDescription:
		var desc string
		desc, err = c.Asker.Input(fmt.Sprintf("New description (current: %q)", item.Description))
		if err == nil {
			req.Description = &desc
		}
	default:
		return core.EditRequest{}, errors.New(errors.ErrCancelled, "edit cancelled")
	}
	if err != nil {
		return core.EditRequest{}, err
	}
	return req, nil
}

func (c *Console) askPartition(title, current string) (*string, error) {
	value, err := c.Asker.Input(fmt.Sprintf("%s (current: %s, empty keeps it)", title, current))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "failed to read partition")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		value = current
	}
	return &value, nil
}

// ConfirmRemoval lists the failing links and asks once before removing them
func (c *Console) ConfirmRemoval(failed []verify.Result) (bool, error) {
	if err := c.Renderer.RenderMessage(fmt.Sprintf("%d link(s) fail verification:", len(failed))); err != nil {
		return false, err
	}
	for _, res := range failed {
		if err := c.Renderer.RenderResult(res); err != nil {
			return false, err
		}
	}
	ok, err := c.Asker.Confirm(fmt.Sprintf("Remove %d failing link(s)?", len(failed)), false)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrIO, "failed to read confirmation")
	}
	return ok, nil
}

// ChooseFile asks which of the candidates to use; a single candidate is
// returned without asking
func (c *Console) ChooseFile(title string, candidates []string) (string, error) {
	switch len(candidates) {
	case 0:
		return "", nil
	case 1:
		return candidates[0], nil
	}
	choice, err := c.Asker.Select(title, candidates)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIO, "failed to read choice")
	}
	return choice, nil
}

// AskPartition reads a partition, falling back to def on empty input
func (c *Console) AskPartition(title, def string) (string, error) {
	if def != "" {
		title = fmt.Sprintf("%s (empty uses %s)", title, def)
	}
	value, err := c.Asker.Input(title)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIO, "failed to read partition")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	return value, nil
}

// AskText reads a free-form line
func (c *Console) AskText(title string) (string, error) {
	value, err := c.Asker.Input(title)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIO, "failed to read input")
	}
	return strings.TrimSpace(value), nil
}

// Preview shows the content a partition addresses
func (c *Console) Preview(label, partition, text string) error {
	return c.Renderer.RenderResult(&display.Preview{Label: label, Partition: partition, Text: text})
}

// Confirm asks a yes/no question
func (c *Console) Confirm(title string, def bool) (bool, error) {
	ok, err := c.Asker.Confirm(title, def)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrIO, "failed to read confirmation")
	}
	return ok, nil
}
