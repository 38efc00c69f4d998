package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/doksnet/pkg/digest"
	"github.com/arthur-debert/doksnet/pkg/verify"
)

// Truncate shortens text to limit characters, marking the cut. A limit of 0
// or less keeps everything.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// Indent prefixes every line of text
func Indent(text, prefix string) string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return prefix
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + strings.TrimRight(l, "\r")
	}
	return strings.Join(lines, "\n")
}

// ShortID returns the 8-character display prefix of id
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// SideDetail explains why a side failed, in one line
func SideDetail(name string, s verify.Side) string {
	switch s.Status {
	case verify.StatusDrift:
		return fmt.Sprintf("%s content has changed (expected %s, actual %s)",
			name, digest.Short(s.StoredDigest), digest.Short(s.CurrentDigest))
	case verify.StatusMissing, verify.StatusInvalidRange:
		if s.Err != nil {
			return fmt.Sprintf("%s %s: %s", name, StatusLabel(s.Status), ErrorMessage(s.Err))
		}
		return fmt.Sprintf("%s %s", name, StatusLabel(s.Status))
	default:
		return fmt.Sprintf("%s ok", name)
	}
}

// StatusLabel is the human form of a status
func StatusLabel(s verify.Status) string {
	switch s {
	case verify.StatusPass:
		return "pass"
	case verify.StatusDrift:
		return "drift"
	case verify.StatusMissing:
		return "missing"
	case verify.StatusInvalidRange:
		return "invalid range"
	default:
		return string(s)
	}
}

// Details lists the failing sides of a result
func Details(r verify.Result) []string {
	var details []string
	if !r.Doc.Passed() {
		details = append(details, SideDetail("documentation", r.Doc))
	}
	if !r.Code.Passed() {
		details = append(details, SideDetail("code", r.Code))
	}
	return details
}
