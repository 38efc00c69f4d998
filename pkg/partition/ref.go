package partition

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/doksnet/pkg/errors"
)

// Delimiter is the store's field separator. References containing it could
// not be persisted, so the parser refuses them.
const Delimiter = "|"

// Ref is a parsed partition reference. Zero line fields mean the reference
// has no line segment; zero column fields mean it has no column segment.
type Ref struct {
	Path      string
	StartLine int
	EndLine   int
	StartCol  int
	EndCol    int
}

// HasLines reports whether the reference carries a line segment
func (r Ref) HasLines() bool {
	return r.StartLine > 0
}

// HasColumns reports whether the reference carries a column segment
func (r Ref) HasColumns() bool {
	return r.StartCol > 0
}

// String renders the canonical form of the reference
func (r Ref) String() string {
	var b strings.Builder
	b.WriteString(r.Path)
	if r.HasLines() {
		if r.StartLine == r.EndLine {
			fmt.Fprintf(&b, ":%d", r.StartLine)
		} else {
			fmt.Fprintf(&b, ":%d-%d", r.StartLine, r.EndLine)
		}
	}
	if r.HasColumns() {
		fmt.Fprintf(&b, "@%d-%d", r.StartCol, r.EndCol)
	}
	return b.String()
}

// Validate checks the structural invariants of a reference
func (r Ref) Validate() error {
	return r.validate(r.String())
}

func (r Ref) validate(raw string) error {
	if r.Path == "" {
		return syntaxError(raw, "file path is empty")
	}
	if filepath.IsAbs(r.Path) || strings.HasPrefix(r.Path, "/") {
		return syntaxError(raw, "file path must be relative")
	}
	if strings.Contains(r.Path, Delimiter) || strings.ContainsAny(r.Path, "\r\n") {
		return syntaxError(raw, "file path contains a reserved character")
	}
	if strings.TrimSpace(r.Path) != r.Path {
		return syntaxError(raw, "file path has surrounding whitespace")
	}
	if escapesRoot(r.Path) {
		return syntaxError(raw, "file path leaves the project directory")
	}
	if r.StartLine < 0 || r.EndLine < 0 || (r.StartLine == 0) != (r.EndLine == 0) {
		return syntaxError(raw, "line numbers must be positive")
	}
	if r.EndLine < r.StartLine {
		return syntaxError(raw, fmt.Sprintf("end line %d is before start line %d", r.EndLine, r.StartLine))
	}
	if r.StartCol < 0 || r.EndCol < 0 || (r.StartCol == 0) != (r.EndCol == 0) {
		return syntaxError(raw, "column numbers must be positive")
	}
	if r.EndCol < r.StartCol {
		return syntaxError(raw, fmt.Sprintf("end column %d is before start column %d", r.EndCol, r.StartCol))
	}
	return nil
}

// Parse turns a raw reference into a Ref. It only validates syntax; the file
// and the range are not checked here.
func Parse(raw string) (Ref, error) {
	if strings.TrimSpace(raw) == "" {
		return Ref{}, syntaxError(raw, "reference is empty")
	}
	if strings.TrimSpace(raw) != raw {
		return Ref{}, syntaxError(raw, "reference has surrounding whitespace")
	}
	if strings.Contains(raw, Delimiter) || strings.ContainsAny(raw, "\r\n") {
		return Ref{}, syntaxError(raw, "reference contains a reserved character")
	}

	// Range segments may only appear in the final path element, which keeps
	// directories named "v1:beta" or "@scope" addressable.
	base := strings.LastIndexAny(raw, `/\`) + 1
	tail := raw[base:]

	lineAt := strings.IndexByte(tail, ':')
	colAt := strings.IndexByte(tail, '@')

	cut := len(tail)
	if lineAt >= 0 {
		cut = lineAt
	}
	if colAt >= 0 && colAt < cut {
		cut = colAt
	}

	ref := Ref{Path: raw[:base] + tail[:cut]}
	if tail[:cut] == "" {
		return Ref{}, syntaxError(raw, "file name is empty")
	}

	rest := tail[cut:]
	if strings.HasPrefix(rest, ":") {
		lineSeg := rest[1:]
		rest = ""
		if at := strings.IndexByte(lineSeg, '@'); at >= 0 {
			rest = lineSeg[at:]
			lineSeg = lineSeg[:at]
		}
		if lineSeg != "" {
			start, end, err := parseRange(lineSeg, true)
			if err != nil {
				return Ref{}, syntaxError(raw, "line segment "+err.Error())
			}
			ref.StartLine, ref.EndLine = start, end
		}
	}

	if strings.HasPrefix(rest, "@") {
		start, end, err := parseRange(rest[1:], false)
		if err != nil {
			return Ref{}, syntaxError(raw, "column segment "+err.Error())
		}
		ref.StartCol, ref.EndCol = start, end
	}

	if err := ref.validate(raw); err != nil {
		return Ref{}, err
	}
	return ref, nil
}

// escapesRoot reports whether p, once cleaned, climbs above the directory
// it is relative to
func escapesRoot(p string) bool {
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(p)))
	return clean == ".." || strings.HasPrefix(clean, "../")
}

// MustParse is Parse for references known to be valid, such as test fixtures
func MustParse(raw string) Ref {
	ref, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return ref
}

func parseRange(seg string, allowSingle bool) (int, int, error) {
	parts := strings.Split(seg, "-")
	switch {
	case len(parts) == 1 && allowSingle:
		n, err := parsePositive(parts[0])
		if err != nil {
			return 0, 0, err
		}
		return n, n, nil
	case len(parts) == 2:
		start, err := parsePositive(parts[0])
		if err != nil {
			return 0, 0, err
		}
		end, err := parsePositive(parts[1])
		if err != nil {
			return 0, 0, err
		}
		return start, end, nil
	case allowSingle:
		return 0, 0, fmt.Errorf("%q must be N or N-M", seg)
	default:
		return 0, 0, fmt.Errorf("%q must be N-M", seg)
	}
}

func parsePositive(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("has an empty bound")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("bound %q is not a number", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bound %q is out of range", s)
	}
	if n == 0 {
		return 0, fmt.Errorf("bounds are 1-indexed, got 0")
	}
	return n, nil
}

func syntaxError(raw, reason string) *errors.DoksError {
	return errors.Newf(errors.ErrInvalidPartitionSyntax, "invalid partition %q: %s", raw, reason).
		WithDetail("partition", raw).
		WithDetail("reason", reason)
}
