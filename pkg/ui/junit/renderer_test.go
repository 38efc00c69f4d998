package junit

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/doksnet/pkg/digest"
	"github.com/arthur-debert/doksnet/pkg/verify"
)

func sampleReport() *verify.Report {
	pass := verify.Result{
		RecordID:    "11111111-aaaa",
		Description: "install",
		Doc:         verify.Side{Partition: "README.md:1", Status: verify.StatusPass},
		Code:        verify.Side{Partition: "Makefile:1", Status: verify.StatusPass},
	}
	fail := verify.Result{
		RecordID: "22222222-bbbb",
		Doc:      verify.Side{Partition: "README.md:2", Status: verify.StatusPass},
		Code: verify.Side{
			Partition:     "main.go:3",
			Status:        verify.StatusDrift,
			StoredDigest:  digest.Sum("old"),
			CurrentDigest: digest.Sum("new"),
			CurrentText:   "new",
		},
	}
	return &verify.Report{Results: []verify.Result{pass, fail}, Passed: 1, Failed: 1}
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, 0)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(sampleReport()))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	suites := doc.SelectElement("testsuites")
	require.NotNil(t, suites)
	assert.Equal(t, "2", suites.SelectAttrValue("tests", ""))
	assert.Equal(t, "1", suites.SelectAttrValue("failures", ""))

	cases := suites.FindElements("./testsuite/testcase")
	require.Len(t, cases, 2)
	assert.Equal(t, "11111111 Makefile:1 (install)", cases[0].SelectAttrValue("name", ""))
	assert.Nil(t, cases[0].SelectElement("failure"))

	failure := cases[1].SelectElement("failure")
	require.NotNil(t, failure)
	assert.Equal(t, "drift", failure.SelectAttrValue("type", ""))
	assert.Equal(t, "code out of date", failure.SelectAttrValue("message", ""))
	assert.Contains(t, failure.Text(), "current code:\nnew")
}

func TestFailureTypePicksWorstSide(t *testing.T) {
	res := verify.Result{
		Doc:  verify.Side{Status: verify.StatusDrift},
		Code: verify.Side{Status: verify.StatusMissing},
	}
	assert.Equal(t, "missing", failureType(res))
}

func TestNonReportFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, 0)
	require.NoError(t, err)
	require.NoError(t, r.RenderMessage("hello"))
	assert.Equal(t, "hello\n", buf.String())
}
