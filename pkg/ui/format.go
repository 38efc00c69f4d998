package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/doksnet/pkg/errors"
)

// Format selects how command results are written
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText from the output stream
	FormatAuto Format = iota
	// FormatTerminal is styled, colored output
	FormatTerminal
	// FormatText is the same layout without styling
	FormatText
	// FormatJSON is one JSON document per result
	FormatJSON
	// FormatJUnit writes verification reports as JUnit XML
	FormatJUnit
)

// formatNames holds the accepted --format / output.format values, in the
// order of the Format constants
var formatNames = [...]string{"auto", "term", "text", "json", "junit"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// FormatNames lists the names ParseFormat accepts
func FormatNames() []string {
	return append([]string(nil), formatNames[:]...)
}

// ParseFormat maps a format name to its Format. Matching ignores case and
// the empty string means auto.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormatAuto, nil
	}
	for i, candidate := range formatNames {
		if candidate == name {
			return Format(i), nil
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s (want one of %s)",
		s, strings.Join(formatNames[:], ", ")).WithDetail("format", s)
}

// DetectFormat resolves FormatAuto for output: styled only when it is a
// color-capable terminal and NO_COLOR is unset
func DetectFormat(output *os.File) Format {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return FormatText
	}
	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.NewOutput(output).Profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
