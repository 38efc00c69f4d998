package store

import (
	"strings"

	"github.com/arthur-debert/doksnet/pkg/errors"
)

// Store is the ordered set of link records plus the default documentation
// file. Order is insertion order.
type Store struct {
	DefaultDoc string
	Records    []Record
}

// New returns an empty store
func New(defaultDoc string) *Store {
	return &Store{DefaultDoc: defaultDoc}
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.Records)
}

// Clone returns a deep copy of the store
func (s *Store) Clone() *Store {
	c := &Store{DefaultDoc: s.DefaultDoc}
	if s.Records != nil {
		c.Records = append(make([]Record, 0, len(s.Records)), s.Records...)
	}
	return c
}

// Index returns the position of the record with the exact id, or -1
func (s *Store) Index(id string) int {
	for i, r := range s.Records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the record with the exact id
func (s *Store) Get(id string) (Record, bool) {
	if i := s.Index(id); i >= 0 {
		return s.Records[i], true
	}
	return Record{}, false
}

// Append validates rec and adds it at the end
func (s *Store) Append(rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if s.Index(rec.ID) >= 0 {
		return errors.Newf(errors.ErrInvalidInput, "record %s already exists", rec.ID).
			WithDetail("id", rec.ID)
	}
	s.Records = append(s.Records, rec)
	return nil
}

// Replace validates rec and overwrites the record with the same id in place
func (s *Store) Replace(rec Record) error {
	i := s.Index(rec.ID)
	if i < 0 {
		return errors.Newf(errors.ErrRecordNotFound, "no record with id %s", rec.ID).
			WithDetail("id", rec.ID)
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	s.Records[i] = rec
	return nil
}

// Lookup resolves an id prefix to a single record. An exact id match wins
// over longer ids sharing the prefix.
func (s *Store) Lookup(prefix string) (Record, error) {
	if prefix == "" {
		return Record{}, errors.New(errors.ErrInvalidInput, "record id is empty")
	}
	if rec, ok := s.Get(prefix); ok {
		return rec, nil
	}

	var matches []Record
	for _, r := range s.Records {
		if strings.HasPrefix(r.ID, prefix) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return Record{}, errors.Newf(errors.ErrRecordNotFound, "no record with id starting with %q", prefix).
			WithDetail("prefix", prefix)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		return Record{}, errors.Newf(errors.ErrAmbiguousID, "id prefix %q matches %d records", prefix, len(matches)).
			WithDetail("prefix", prefix).
			WithDetail("matches", ids)
	}
}

// Delete removes the record with the exact id
func (s *Store) Delete(id string) error {
	i := s.Index(id)
	if i < 0 {
		return errors.Newf(errors.ErrRecordNotFound, "no record with id %s", id).
			WithDetail("id", id)
	}
	s.Records = append(s.Records[:i:i], s.Records[i+1:]...)
	return nil
}

// DeleteMany removes every record whose id is in ids, keeping the order of
// the rest, and returns how many were removed
func (s *Store) DeleteMany(ids []string) int {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := make([]Record, 0, len(s.Records))
	for _, r := range s.Records {
		if !drop[r.ID] {
			kept = append(kept, r)
		}
	}
	removed := len(s.Records) - len(kept)
	s.Records = kept
	return removed
}
