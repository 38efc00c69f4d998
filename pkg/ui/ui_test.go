package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/doksnet/pkg/digest"
	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/reconcile"
	"github.com/arthur-debert/doksnet/pkg/store"
	"github.com/arthur-debert/doksnet/pkg/ui"
	"github.com/arthur-debert/doksnet/pkg/ui/display"
	"github.com/arthur-debert/doksnet/pkg/verify"
)

func report() *verify.Report {
	return &verify.Report{
		Results: []verify.Result{
			{
				RecordID:    "aaaaaaaa-1111",
				Description: "install",
				Doc:         verify.Side{Partition: "README.md:3", Status: verify.StatusPass},
				Code:        verify.Side{Partition: "Makefile:1", Status: verify.StatusPass},
			},
			{
				RecordID: "bbbbbbbb-2222",
				Doc: verify.Side{
					Partition:     "README.md:9",
					Status:        verify.StatusDrift,
					StoredDigest:  digest.Sum("a"),
					CurrentDigest: digest.Sum("b"),
					CurrentText:   "b",
				},
				Code: verify.Side{
					Partition: "gone.go",
					Status:    verify.StatusMissing,
					Err:       errors.New(errors.ErrFileNotFound, "file not found: gone.go"),
				},
			},
		},
		Passed: 1,
		Failed: 1,
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{"create terminal renderer", ui.FormatTerminal, false},
		{"create text renderer", ui.FormatText, false},
		{"create json renderer", ui.FormatJSON, false},
		{"create junit renderer", ui.FormatJUnit, false},
		{"create auto renderer with buffer", ui.FormatAuto, false},
		{"unknown format", ui.Format(999), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r, err := ui.NewRenderer(tt.format, &buf)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestTextRendererReport(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(report()))

	out := buf.String()
	assert.Contains(t, out, "Testing 2 documentation-code links")
	assert.Contains(t, out, "PASS aaaaaaaa  README.md:3 -> Makefile:1  install")
	assert.Contains(t, out, "FAIL bbbbbbbb  README.md:9 -> gone.go")
	assert.Contains(t, out, "documentation content has changed")
	assert.Contains(t, out, "code missing: file not found: gone.go")
	assert.Contains(t, out, "Summary: 1 passed, 1 failed (2 total)")
	assert.NotContains(t, out, "\x1b[", "text output carries no escape codes")
}

func TestTextRendererEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(&verify.Report{}))
	assert.Contains(t, buf.String(), "No links found")
}

func TestTextRendererPreviewLimit(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRendererWithOptions(ui.FormatText, &buf, ui.Options{PreviewLimit: 4})
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(&display.Preview{Label: "doc", Partition: "README.md", Text: "abcdefgh"}))

	assert.Contains(t, buf.String(), "doc: README.md")
	assert.Contains(t, buf.String(), "    abcd...")
}

func TestTextRendererViews(t *testing.T) {
	rec := store.Record{ID: "cccccccc-3333", DocPartition: "a.md", CodePartition: "b.go", Description: "note"}

	tests := []struct {
		name   string
		result interface{}
		want   []string
	}{
		{"command", &display.CommandResult{Message: "Link added", Record: &rec}, []string{"Link added", "id:          cccccccc-3333", "description: note"}},
		{"removal", &display.Removal{Removed: report().Failures(), Remaining: 1}, []string{"Removed 1 failing link(s)", "1 remaining"}},
		{"nothing removed", &display.Removal{}, []string{"No failing links to remove."}},
		{"session", &display.SessionResult{Summary: reconcile.Summary{Accepted: []string{"x"}, Skipped: []string{"y"}, Interrupted: true}}, []string{"interrupted", "Reviewed: 2", "accepted: 1"}},
		{"listing", &display.Listing{DefaultDoc: "README.md", Records: []store.Record{rec}}, []string{"default doc: README.md", "cccccccc  a.md -> b.go  note"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r, err := ui.NewRenderer(ui.FormatText, &buf)
			require.NoError(t, err)
			require.NoError(t, r.RenderResult(tt.result))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestTerminalRendererUsesTextLayout(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(report()))
	assert.Contains(t, buf.String(), "bbbbbbbb")
	assert.Contains(t, buf.String(), "1 passed")
}

func TestJSONRendererReport(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(report()))

	var parsed struct {
		OK      bool `json:"ok"`
		Total   int  `json:"total"`
		Failed  int  `json:"failed"`
		Results []struct {
			ID      string   `json:"id"`
			Passed  bool     `json:"passed"`
			Reasons []string `json:"reasons"`
			Code    struct {
				Status    string `json:"status"`
				ErrorCode string `json:"error_code"`
			} `json:"code"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.False(t, parsed.OK)
	assert.Equal(t, 2, parsed.Total)
	assert.Equal(t, 1, parsed.Failed)
	require.Len(t, parsed.Results, 2)
	assert.True(t, parsed.Results[0].Passed)
	assert.Equal(t, []string{"documentation", "code"}, parsed.Results[1].Reasons)
	assert.Equal(t, "missing", parsed.Results[1].Code.Status)
	assert.Equal(t, "FILE_NOT_FOUND", parsed.Results[1].Code.ErrorCode)
}

func TestJSONRendererError(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderError(errors.New(errors.ErrAmbiguousID, "id prefix matches 2 records")))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, "AMBIGUOUS_ID", parsed["code"])
	assert.Equal(t, "id prefix matches 2 records", parsed["error"])
}

func TestTextRendererError(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderError(errors.New(errors.ErrRecordNotFound, "no record")))
	assert.Equal(t, "Error: no record\n", buf.String())
}
