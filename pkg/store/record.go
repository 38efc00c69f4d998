package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/partition"
)

// Delimiter separates the fields of a record line
const Delimiter = partition.Delimiter

// FieldCount is the number of fields in a record line
const FieldCount = 6

// Record links a documentation partition to a code partition. The digests
// are those of the content accepted when the record was created or last
// updated.
type Record struct {
	ID            string `json:"id"`
	DocPartition  string `json:"doc_partition"`
	CodePartition string `json:"code_partition"`
	DocDigest     string `json:"doc_digest"`
	CodeDigest    string `json:"code_digest"`
	Description   string `json:"description,omitempty"`
}

// NewID returns a fresh record id
func NewID() string {
	return uuid.NewString()
}

// ShortID returns the 8-character prefix used in listings
func (r Record) ShortID() string {
	if len(r.ID) <= 8 {
		return r.ID
	}
	return r.ID[:8]
}

// Validate checks that every field can be written without corrupting the file
func (r Record) Validate() error {
	if r.ID == "" {
		return errors.New(errors.ErrInvalidInput, "record id is empty")
	}
	if err := checkField("id", r.ID); err != nil {
		return err
	}
	if err := checkField("doc digest", r.DocDigest); err != nil {
		return err
	}
	if err := checkField("code digest", r.CodeDigest); err != nil {
		return err
	}
	for _, p := range []string{r.DocPartition, r.CodePartition} {
		if p == "" || strings.Contains(p, Delimiter) || strings.ContainsAny(p, "\r\n") {
			return errors.Newf(errors.ErrInvalidPartitionSyntax, "partition %q cannot be stored", p).
				WithDetail("id", r.ID).
				WithDetail("partition", p)
		}
	}
	return ValidateDescription(r.Description)
}

func checkField(name, value string) error {
	if strings.Contains(value, Delimiter) || strings.ContainsAny(value, "\r\n") {
		return errors.Newf(errors.ErrInvalidInput, "record %s contains a reserved character", name).
			WithDetail(name, value)
	}
	return nil
}

// ValidateDescription refuses descriptions that cannot be stored verbatim
func ValidateDescription(description string) error {
	if strings.Contains(description, Delimiter) {
		return errors.Newf(errors.ErrInvalidDescription,
			"description must not contain %q", Delimiter).
			WithDetail("description", description)
	}
	if strings.ContainsAny(description, "\r\n") {
		return errors.New(errors.ErrInvalidDescription, "description must be a single line").
			WithDetail("description", description)
	}
	return nil
}

func (r Record) fields() []string {
	return []string{r.ID, r.DocPartition, r.CodePartition, r.DocDigest, r.CodeDigest, r.Description}
}

// recordFromFields ignores whitespace around every field but the
// description, which is kept verbatim
func recordFromFields(fields []string) Record {
	return Record{
		ID:            strings.TrimSpace(fields[0]),
		DocPartition:  strings.TrimSpace(fields[1]),
		CodePartition: strings.TrimSpace(fields[2]),
		DocDigest:     strings.TrimSpace(fields[3]),
		CodeDigest:    strings.TrimSpace(fields[4]),
		Description:   fields[5],
	}
}
