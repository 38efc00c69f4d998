package partition

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/arthur-debert/doksnet/pkg/errors"
)

// Extract resolves ref against root and returns the exact text it addresses.
// Refs that fail Validate are rejected before any file is read.
func Extract(fsys afero.Fs, root string, ref Ref) (string, error) {
	if err := ref.Validate(); err != nil {
		return "", err
	}
	full := filepath.Join(root, filepath.FromSlash(ref.Path))

	info, err := fsys.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrFileNotFound, "file not found: %s", ref.Path).
				WithDetail("path", full)
		}
		return "", errors.Wrapf(err, errors.ErrIO, "cannot stat %s", ref.Path).
			WithDetail("path", full)
	}
	if info.IsDir() {
		return "", errors.Newf(errors.ErrFileNotFound, "%s is a directory", ref.Path).
			WithDetail("path", full)
	}

	data, err := afero.ReadFile(fsys, full)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "cannot read %s", ref.Path).
			WithDetail("path", full)
	}
	if !utf8.Valid(data) {
		return "", errors.Newf(errors.ErrNotDecodable, "%s is not valid UTF-8 text", ref.Path).
			WithDetail("path", full)
	}

	text := string(data)

	if ref.HasLines() {
		lines := SplitLines(text)
		if ref.EndLine > len(lines) {
			return "", errors.Newf(errors.ErrLineOutOfRange,
				"line %d is past the end of %s (%d lines)", ref.EndLine, ref.Path, len(lines)).
				WithDetail("path", ref.Path).
				WithDetail("lines", len(lines))
		}
		text = strings.Join(lines[ref.StartLine-1:ref.EndLine], "")
	}

	if ref.HasColumns() {
		chars := []rune(text)
		if ref.StartCol > len(chars) {
			return "", errors.Newf(errors.ErrColumnOutOfRange,
				"column %d is past the end of the selection in %s (%d characters)", ref.StartCol, ref.Path, len(chars)).
				WithDetail("path", ref.Path).
				WithDetail("characters", len(chars))
		}
		end := ref.EndCol
		if end > len(chars) {
			end = len(chars)
		}
		text = string(chars[ref.StartCol-1 : end])
	}

	return text, nil
}

// Resolve parses raw and extracts the text it addresses
func Resolve(fsys afero.Fs, root, raw string) (Ref, string, error) {
	ref, err := Parse(raw)
	if err != nil {
		return Ref{}, "", err
	}
	text, err := Extract(fsys, root, ref)
	if err != nil {
		return ref, "", err
	}
	return ref, text, nil
}

// SplitLines splits text into lines, each keeping its "\n" terminator. A
// final line without a terminator is still a line; "" has no lines.
func SplitLines(text string) []string {
	var lines []string
	for text != "" {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}
	return lines
}
