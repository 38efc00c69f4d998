// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/ui/display"
	"github.com/arthur-debert/doksnet/pkg/verify"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

type sideJSON struct {
	verify.Side
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

type resultJSON struct {
	ID          string   `json:"id"`
	Description string   `json:"description,omitempty"`
	Passed      bool     `json:"passed"`
	Reasons     []string `json:"reasons,omitempty"`
	Doc         sideJSON `json:"doc"`
	Code        sideJSON `json:"code"`
}

type reportJSON struct {
	OK      bool         `json:"ok"`
	Total   int          `json:"total"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Results []resultJSON `json:"results"`
}

func toSide(s verify.Side) sideJSON {
	out := sideJSON{Side: s}
	if s.Err != nil {
		out.Error = display.ErrorMessage(s.Err)
		out.ErrorCode = string(s.ErrorCode())
	}
	return out
}

func toResult(r verify.Result) resultJSON {
	return resultJSON{
		ID:          r.RecordID,
		Description: r.Description,
		Passed:      r.Passed(),
		Reasons:     r.Reasons(),
		Doc:         toSide(r.Doc),
		Code:        toSide(r.Code),
	}
}

func toResults(rs []verify.Result) []resultJSON {
	out := make([]resultJSON, 0, len(rs))
	for _, r := range rs {
		out = append(out, toResult(r))
	}
	return out
}

// RenderResult renders any result type as JSON
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *verify.Report:
		return r.encoder.Encode(reportJSON{
			OK:      v.OK(),
			Total:   v.Total(),
			Passed:  v.Passed,
			Failed:  v.Failed,
			Results: toResults(v.Results),
		})
	case verify.Result:
		return r.encoder.Encode(toResult(v))
	case *verify.Result:
		return r.encoder.Encode(toResult(*v))
	case *display.Removal:
		return r.encoder.Encode(struct {
			Removed   []resultJSON `json:"removed"`
			Remaining int          `json:"remaining"`
		}{toResults(v.Removed), v.Remaining})
	case *display.CommandResult:
		out := struct {
			Message string      `json:"message,omitempty"`
			Record  interface{} `json:"record,omitempty"`
			Check   *resultJSON `json:"check,omitempty"`
		}{Message: v.Message}
		if v.Record != nil {
			out.Record = v.Record
		}
		if v.Check != nil {
			check := toResult(*v.Check)
			out.Check = &check
		}
		return r.encoder.Encode(out)
	default:
		return r.encoder.Encode(result)
	}
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": display.ErrorMessage(err),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		errorObj["code"] = string(code)
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
