// Package display holds the view models handed to renderers, and the small
// text helpers every renderer shares.
package display

import (
	"github.com/arthur-debert/doksnet/pkg/reconcile"
	"github.com/arthur-debert/doksnet/pkg/store"
	"github.com/arthur-debert/doksnet/pkg/verify"
)

// CommandResult is the output of a command that changed one link:
//
//	<Message>
//	<record>
//	<optional fresh verification>
type CommandResult struct {
	Message string         `json:"message,omitempty"`
	Record  *store.Record  `json:"record,omitempty"`
	Check   *verify.Result `json:"check,omitempty"`
}

// Preview shows the content a partition currently addresses
type Preview struct {
	Label     string `json:"label"`
	Partition string `json:"partition"`
	Text      string `json:"text"`
}

// Removal is the output of a bulk removal
type Removal struct {
	Removed   []verify.Result `json:"removed"`
	Remaining int             `json:"remaining"`
}

// SessionResult is the output of an interactive reconciliation
type SessionResult struct {
	Summary reconcile.Summary `json:"summary"`
}

// Listing is a plain list of records
type Listing struct {
	DefaultDoc string         `json:"default_doc"`
	Records    []store.Record `json:"records"`
}
