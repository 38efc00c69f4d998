package verify

import (
	"github.com/arthur-debert/doksnet/pkg/errors"
)

// Status is the outcome of checking one side of a record
type Status string

const (
	// StatusPass means the current content matches the stored digest
	StatusPass Status = "pass"

	// StatusDrift means the content is readable but changed
	StatusDrift Status = "drift"

	// StatusMissing means the content could not be read at all
	StatusMissing Status = "missing"

	// StatusInvalidRange means the file exists but the range does not fit it
	StatusInvalidRange Status = "invalid_range"
)

// Side names used in failure reasons
const (
	SideDoc  = "documentation"
	SideCode = "code"
)

// Side is the verification outcome for one partition of a record
type Side struct {
	Partition     string `json:"partition"`
	Status        Status `json:"status"`
	StoredDigest  string `json:"stored_digest"`
	CurrentDigest string `json:"current_digest,omitempty"`
	CurrentText   string `json:"-"`
	Err           error  `json:"-"`
}

// Passed reports whether the side matched
func (s Side) Passed() bool {
	return s.Status == StatusPass
}

// ErrorCode returns the code of the extraction error, if any
func (s Side) ErrorCode() errors.ErrorCode {
	if s.Err == nil {
		return ""
	}
	return errors.GetErrorCode(s.Err)
}

// Result is the verification outcome for one record
type Result struct {
	RecordID    string `json:"id"`
	Description string `json:"description,omitempty"`
	Doc         Side   `json:"doc"`
	Code        Side   `json:"code"`
}

// Passed reports whether both sides matched
func (r Result) Passed() bool {
	return r.Doc.Passed() && r.Code.Passed()
}

// Reasons lists the failing sides, documentation first
func (r Result) Reasons() []string {
	var reasons []string
	if !r.Doc.Passed() {
		reasons = append(reasons, SideDoc)
	}
	if !r.Code.Passed() {
		reasons = append(reasons, SideCode)
	}
	return reasons
}

// ShortID returns the 8-character id prefix used in listings
func (r Result) ShortID() string {
	if len(r.RecordID) <= 8 {
		return r.RecordID
	}
	return r.RecordID[:8]
}

// Report aggregates the results of a verification run in store order
type Report struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// Total returns the number of checked records
func (r *Report) Total() int {
	return len(r.Results)
}

// OK reports whether every record passed. An empty report is OK.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the failing results in store order
func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, res)
		}
	}
	return failed
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	if res.Passed() {
		r.Passed++
	} else {
		r.Failed++
	}
}
