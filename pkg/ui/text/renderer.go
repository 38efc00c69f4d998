// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/doksnet/pkg/reconcile"
	"github.com/arthur-debert/doksnet/pkg/store"
	"github.com/arthur-debert/doksnet/pkg/ui/display"
	"github.com/arthur-debert/doksnet/pkg/verify"
)

// StyleFunc decorates text with a named style
type StyleFunc func(style, text string) string

func plain(_, text string) string { return text }

// Renderer provides plain text output. The same layout is reused by the
// terminal renderer with a StyleFunc that adds color.
type Renderer struct {
	output       io.Writer
	previewLimit int
	style        StyleFunc
}

// New creates a new text renderer
func New(output io.Writer, previewLimit int) (*Renderer, error) {
	return NewStyled(output, previewLimit, nil)
}

// NewStyled creates a text renderer that styles its output with style
func NewStyled(output io.Writer, previewLimit int, style StyleFunc) (*Renderer, error) {
	if style == nil {
		style = plain
	}
	return &Renderer{output: output, previewLimit: previewLimit, style: style}, nil
}

// RenderResult renders any result type as text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *verify.Report:
		return r.renderReport(v)
	case verify.Result:
		return r.renderResult(v)
	case *verify.Result:
		return r.renderResult(*v)
	case store.Record:
		return r.renderRecord(v)
	case *store.Record:
		return r.renderRecord(*v)
	case *display.CommandResult:
		return r.renderCommand(v)
	case *display.Preview:
		return r.renderPreview(v)
	case *display.Removal:
		return r.renderRemoval(v)
	case *display.SessionResult:
		return r.renderSession(v.Summary)
	case *display.Listing:
		return r.renderListing(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "%s %s\n", r.style("Error", "Error:"), display.ErrorMessage(err))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) println(parts ...string) {
	fmt.Fprintln(r.output, strings.Join(parts, ""))
}

func (r *Renderer) renderReport(rep *verify.Report) error {
	if rep.Total() == 0 {
		r.println(r.style("Muted", "No links found. Use 'doksnet add' to create some first."))
		return nil
	}

	r.println(r.style("Header", fmt.Sprintf("Testing %d documentation-code links", rep.Total())))
	for _, res := range rep.Results {
		r.resultLine(res)
	}

	r.println()
	r.println(r.style("Bold", "Summary: "),
		r.style("Success", fmt.Sprintf("%d passed", rep.Passed)), ", ",
		r.failedCount(rep.Failed),
		fmt.Sprintf(" (%d total)", rep.Total()))

	if rep.OK() {
		r.println(r.style("Success", "All links are up to date."))
	} else {
		r.println(r.style("Muted", "Use 'doksnet test-interactive' to review failures or 'doksnet edit <id>' to fix a link."))
	}
	return nil
}

func (r *Renderer) failedCount(n int) string {
	text := fmt.Sprintf("%d failed", n)
	if n == 0 {
		return r.style("Muted", text)
	}
	return r.style("Error", text)
}

func (r *Renderer) resultLine(res verify.Result) {
	mark := r.style("Success", "PASS")
	if !res.Passed() {
		mark = r.style("Error", "FAIL")
	}

	line := []string{mark, " ", r.style("ID", display.ShortID(res.RecordID)), "  ",
		r.style("Partition", res.Doc.Partition), " -> ", r.style("Partition", res.Code.Partition)}
	if res.Description != "" {
		line = append(line, "  ", r.style("Description", res.Description))
	}
	r.println(line...)

	for _, d := range display.Details(res) {
		r.println(r.style("Detail", "    - "+d))
	}
}

func (r *Renderer) renderResult(res verify.Result) error {
	r.resultLine(res)
	if res.Passed() {
		return nil
	}
	if !res.Doc.Passed() && res.Doc.Status == verify.StatusDrift {
		r.preview("current documentation", res.Doc.Partition, res.Doc.CurrentText)
	}
	if !res.Code.Passed() && res.Code.Status == verify.StatusDrift {
		r.preview("current code", res.Code.Partition, res.Code.CurrentText)
	}
	return nil
}

func (r *Renderer) preview(label, partition, text string) {
	r.println(r.style("Bold", label+": "), r.style("Partition", partition))
	r.println(r.style("Preview", display.Indent(display.Truncate(text, r.previewLimit), "    ")))
}

func (r *Renderer) renderPreview(p *display.Preview) error {
	r.preview(p.Label, p.Partition, p.Text)
	return nil
}

func (r *Renderer) renderRecord(rec store.Record) error {
	r.println(r.style("Bold", "id:          "), r.style("ID", rec.ID))
	r.println(r.style("Bold", "doc:         "), r.style("Partition", rec.DocPartition))
	r.println(r.style("Bold", "code:        "), r.style("Partition", rec.CodePartition))
	if rec.Description != "" {
		r.println(r.style("Bold", "description: "), r.style("Description", rec.Description))
	}
	return nil
}

func (r *Renderer) renderCommand(c *display.CommandResult) error {
	if c.Message != "" {
		r.println(r.style("Success", c.Message))
	}
	if c.Record != nil {
		if err := r.renderRecord(*c.Record); err != nil {
			return err
		}
	}
	if c.Check != nil {
		r.println()
		return r.renderResult(*c.Check)
	}
	return nil
}

func (r *Renderer) renderRemoval(rm *display.Removal) error {
	if len(rm.Removed) == 0 {
		r.println(r.style("Success", "No failing links to remove."))
		return nil
	}
	for _, res := range rm.Removed {
		r.resultLine(res)
	}
	r.println()
	r.println(r.style("Success", fmt.Sprintf("Removed %d failing link(s)", len(rm.Removed))),
		r.style("Muted", fmt.Sprintf("; %d remaining.", rm.Remaining)))
	return nil
}

func (r *Renderer) renderSession(s reconcile.Summary) error {
	if s.Interrupted {
		r.println(r.style("Warning", "Session interrupted; earlier decisions were saved."))
	}
	r.println(r.style("Bold", "Reviewed: "), fmt.Sprintf("%d", s.Total()))
	r.println("  accepted: ", fmt.Sprintf("%d", len(s.Accepted)))
	r.println("  edited:   ", fmt.Sprintf("%d", len(s.Edited)))
	r.println("  removed:  ", fmt.Sprintf("%d", len(s.Removed)))
	r.println("  skipped:  ", fmt.Sprintf("%d", len(s.Skipped)))
	return nil
}

func (r *Renderer) renderListing(l *display.Listing) error {
	if l.DefaultDoc != "" {
		r.println(r.style("Muted", "default doc: "+l.DefaultDoc))
	}
	if len(l.Records) == 0 {
		r.println(r.style("Muted", "No links found."))
		return nil
	}
	for _, rec := range l.Records {
		line := []string{r.style("ID", rec.ShortID()), "  ", r.style("Partition", rec.DocPartition),
			" -> ", r.style("Partition", rec.CodePartition)}
		if rec.Description != "" {
			line = append(line, "  ", r.style("Description", rec.Description))
		}
		r.println(line...)
	}
	return nil
}
