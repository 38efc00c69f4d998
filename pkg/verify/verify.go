package verify

import (
	"github.com/spf13/afero"

	"github.com/arthur-debert/doksnet/pkg/digest"
	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/logging"
	"github.com/arthur-debert/doksnet/pkg/partition"
	"github.com/arthur-debert/doksnet/pkg/store"
)

// Verify checks every record of s against the files under root
func Verify(fsys afero.Fs, root string, s *store.Store) *Report {
	logger := logging.GetLogger("verify")
	logger.Debug().Str("root", root).Int("records", s.Len()).Msg("Verifying store")

	report := &Report{Results: make([]Result, 0, s.Len())}
	for _, rec := range s.Records {
		report.add(Record(fsys, root, rec))
	}

	logger.Info().
		Int("passed", report.Passed).
		Int("failed", report.Failed).
		Msg("Verification complete")
	return report
}

// Record checks a single record
func Record(fsys afero.Fs, root string, rec store.Record) Result {
	res := Result{
		RecordID:    rec.ID,
		Description: rec.Description,
		Doc:         checkSide(fsys, root, rec.DocPartition, rec.DocDigest),
		Code:        checkSide(fsys, root, rec.CodePartition, rec.CodeDigest),
	}

	if !res.Passed() {
		logger := logging.GetLogger("verify")
		logger.Debug().
			Str("id", rec.ID).
			Str("doc", string(res.Doc.Status)).
			Str("code", string(res.Code.Status)).
			Msg("Record failed verification")
	}
	return res
}

func checkSide(fsys afero.Fs, root, raw, stored string) Side {
	side := Side{Partition: raw, StoredDigest: stored}

	_, text, err := partition.Resolve(fsys, root, raw)
	if err != nil {
		side.Status = classify(err)
		side.Err = err
		return side
	}

	side.CurrentText = text
	side.CurrentDigest = digest.Sum(text)
	if side.CurrentDigest == stored {
		side.Status = StatusPass
	} else {
		side.Status = StatusDrift
	}
	return side
}

func classify(err error) Status {
	switch errors.GetErrorCode(err) {
	case errors.ErrLineOutOfRange, errors.ErrColumnOutOfRange:
		return StatusInvalidRange
	default:
		return StatusMissing
	}
}
