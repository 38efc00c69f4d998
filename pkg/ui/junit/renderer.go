// Package junit renders verification reports as JUnit XML, so CI systems can
// show each link as a test case. Output other than reports falls back to
// plain text.
package junit

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/doksnet/pkg/ui/display"
	"github.com/arthur-debert/doksnet/pkg/ui/text"
	"github.com/arthur-debert/doksnet/pkg/verify"
)

// SuiteName is the name of the single test suite
const SuiteName = "doksnet"

// Renderer writes JUnit XML
type Renderer struct {
	output       io.Writer
	previewLimit int
	fallback     *text.Renderer
}

// New creates a new JUnit renderer
func New(output io.Writer, previewLimit int) (*Renderer, error) {
	fallback, err := text.New(output, previewLimit)
	if err != nil {
		return nil, err
	}
	return &Renderer{output: output, previewLimit: previewLimit, fallback: fallback}, nil
}

// RenderResult renders reports as XML and anything else as text
func (r *Renderer) RenderResult(result interface{}) error {
	if rep, ok := result.(*verify.Report); ok {
		return r.writeReport(rep)
	}
	return r.fallback.RenderResult(result)
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	return r.fallback.RenderError(err)
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	return r.fallback.RenderMessage(msg)
}

// Document builds the XML document for a report
func (r *Renderer) Document(rep *verify.Report) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	suites := doc.CreateElement("testsuites")
	suites.CreateAttr("name", SuiteName)
	suites.CreateAttr("tests", fmt.Sprint(rep.Total()))
	suites.CreateAttr("failures", fmt.Sprint(rep.Failed))

	suite := suites.CreateElement("testsuite")
	suite.CreateAttr("name", SuiteName)
	suite.CreateAttr("tests", fmt.Sprint(rep.Total()))
	suite.CreateAttr("failures", fmt.Sprint(rep.Failed))
	suite.CreateAttr("errors", "0")

	for _, res := range rep.Results {
		tc := suite.CreateElement("testcase")
		tc.CreateAttr("classname", res.Doc.Partition)
		tc.CreateAttr("name", caseName(res))

		if res.Passed() {
			continue
		}

		failure := tc.CreateElement("failure")
		failure.CreateAttr("message", strings.Join(res.Reasons(), ", ")+" out of date")
		failure.CreateAttr("type", failureType(res))
		failure.SetText(r.failureBody(res))
	}

	doc.Indent(2)
	return doc
}

func (r *Renderer) writeReport(rep *verify.Report) error {
	_, err := r.Document(rep).WriteTo(r.output)
	return err
}

func caseName(res verify.Result) string {
	name := display.ShortID(res.RecordID) + " " + res.Code.Partition
	if res.Description != "" {
		name += " (" + res.Description + ")"
	}
	return name
}

// failureType is the worst status among the two sides
func failureType(res verify.Result) string {
	rank := map[verify.Status]int{
		verify.StatusPass:         0,
		verify.StatusDrift:        1,
		verify.StatusInvalidRange: 2,
		verify.StatusMissing:      3,
	}
	worst := res.Doc.Status
	if rank[res.Code.Status] > rank[worst] {
		worst = res.Code.Status
	}
	return string(worst)
}

func (r *Renderer) failureBody(res verify.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "id: %s\n", res.RecordID)
	fmt.Fprintf(&b, "doc: %s\ncode: %s\n", res.Doc.Partition, res.Code.Partition)
	for _, d := range display.Details(res) {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	if res.Code.Status == verify.StatusDrift {
		fmt.Fprintf(&b, "current code:\n%s\n", display.Truncate(res.Code.CurrentText, r.previewLimit))
	}
	return b.String()
}
