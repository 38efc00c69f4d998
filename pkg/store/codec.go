package store

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/doksnet/pkg/errors"
)

// DefaultDocKey is the key of the configuration line
const DefaultDocKey = "default_doc"

var header = []string{
	"# doksnet link store: documentation partitions linked to code partitions.",
	"# Managed by doksnet; edit with care.",
	"# fields: id|doc_partition|code_partition|doc_digest|code_digest|description",
}

// Decode parses a store file. Any line that is not a comment, blank, or the
// configuration line must be a six-field record; otherwise the whole store is
// rejected with CORRUPT_STORE naming the line.
func Decode(r io.Reader) (*Store, error) {
	s := &Store{}
	seenConfig := false
	ids := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "#"):
			continue
		case strings.HasPrefix(trimmed, DefaultDocKey+"="):
			if seenConfig {
				return nil, corrupt(lineNo, line, "duplicate %s line", DefaultDocKey)
			}
			seenConfig = true
			s.DefaultDoc = strings.TrimSpace(strings.TrimPrefix(trimmed, DefaultDocKey+"="))
			continue
		}

		fields := strings.Split(line, Delimiter)
		if len(fields) != FieldCount {
			return nil, corrupt(lineNo, line, "expected %d fields, found %d", FieldCount, len(fields))
		}
		rec := recordFromFields(fields)
		if rec.ID == "" {
			return nil, corrupt(lineNo, line, "record id is empty")
		}
		if first, dup := ids[rec.ID]; dup {
			return nil, corrupt(lineNo, line, "id %s already used on line %d", rec.ID, first)
		}
		ids[rec.ID] = lineNo
		s.Records = append(s.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrCorruptStore, "cannot read store after line %d", lineNo).
			WithDetail("line", lineNo+1)
	}

	return s, nil
}

// Encode writes the store in file form: header comments, the configuration
// line, a blank separator, then one line per record in order.
func Encode(w io.Writer, s *Store) error {
	for _, rec := range s.Records {
		if err := rec.Validate(); err != nil {
			return err
		}
	}
	if strings.ContainsAny(s.DefaultDoc, "\r\n") {
		return errors.New(errors.ErrInvalidInput, "default doc must be a single line")
	}

	bw := bufio.NewWriter(w)
	for _, line := range header {
		fmt.Fprintln(bw, line)
	}
	fmt.Fprintf(bw, "%s=%s\n", DefaultDocKey, s.DefaultDoc)
	fmt.Fprintln(bw)
	for _, rec := range s.Records {
		fmt.Fprintln(bw, strings.Join(rec.fields(), Delimiter))
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to write store")
	}
	return nil
}

// Marshal encodes the store to bytes
func Marshal(s *Store) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func corrupt(lineNo int, line, format string, args ...interface{}) *errors.DoksError {
	return errors.Newf(errors.ErrCorruptStore, "line %d: %s", lineNo, fmt.Sprintf(format, args...)).
		WithDetail("line", lineNo).
		WithDetail("content", line)
}
