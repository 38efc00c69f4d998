package core

import (
	"github.com/arthur-debert/doksnet/pkg/digest"
	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/logging"
	"github.com/arthur-debert/doksnet/pkg/store"
	"github.com/arthur-debert/doksnet/pkg/verify"
)

// AddRequest describes a new link.
type AddRequest struct {
	// Doc is the documentation partition. Empty means the whole default doc.
	Doc string
	// Code is the code partition.
	Code string
	// Description is an optional single-line note.
	Description string
}

// EditRequest lists the fields to replace. Nil fields are left unchanged.
type EditRequest struct {
	Doc         *string
	Code        *string
	Description *string
}

// IsEmpty reports whether the request changes nothing
func (r EditRequest) IsEmpty() bool {
	return r.Doc == nil && r.Code == nil && r.Description == nil
}

// ConfirmFunc is asked once before a bulk removal
type ConfirmFunc func(failed []verify.Result) (bool, error)

type side struct {
	partition string
	digest    string
}

func (w *Workspace) resolveSide(raw string) (side, error) {
	canonical, text, err := w.Extract(raw)
	if err != nil {
		return side{}, err
	}
	return side{partition: canonical, digest: digest.Sum(text)}, nil
}

// Add links a documentation partition to a code partition
func (w *Workspace) Add(req AddRequest) (store.Record, error) {
	log := logging.GetLogger("core.operations")

	docRaw := req.Doc
	if docRaw == "" {
		docRaw = w.Store.DefaultDoc
	}
	if docRaw == "" {
		return store.Record{}, errors.New(errors.ErrInvalidInput,
			"no documentation partition given and the store has no default doc")
	}
	if req.Code == "" {
		return store.Record{}, errors.New(errors.ErrInvalidInput, "no code partition given")
	}
	if err := store.ValidateDescription(req.Description); err != nil {
		return store.Record{}, err
	}

	doc, err := w.resolveSide(docRaw)
	if err != nil {
		return store.Record{}, err
	}
	code, err := w.resolveSide(req.Code)
	if err != nil {
		return store.Record{}, err
	}

	rec := store.Record{
		ID:            store.NewID(),
		DocPartition:  doc.partition,
		CodePartition: code.partition,
		DocDigest:     doc.digest,
		CodeDigest:    code.digest,
		Description:   req.Description,
	}

	if err := w.commit(func(s *store.Store) error { return s.Append(rec) }); err != nil {
		return store.Record{}, notWritable(err, "new link")
	}

	log.Info().
		Str("id", rec.ID).
		Str("doc", rec.DocPartition).
		Str("code", rec.CodePartition).
		Msg("Link added")
	return rec, nil
}

// Edit replaces the supplied fields of the record matching prefix. Only the
// digest of a replaced side is recomputed.
func (w *Workspace) Edit(prefix string, req EditRequest) (store.Record, error) {
	log := logging.GetLogger("core.operations")

	rec, err := w.Store.Lookup(prefix)
	if err != nil {
		return store.Record{}, err
	}
	if req.IsEmpty() {
		return store.Record{}, errors.New(errors.ErrInvalidInput, "nothing to edit").
			WithDetail("id", rec.ID)
	}

	updated := rec
	if req.Description != nil {
		if err := store.ValidateDescription(*req.Description); err != nil {
			return store.Record{}, err
		}
		updated.Description = *req.Description
	}
	if req.Doc != nil {
		doc, err := w.resolveSide(*req.Doc)
		if err != nil {
			return store.Record{}, err
		}
		updated.DocPartition, updated.DocDigest = doc.partition, doc.digest
	}
	if req.Code != nil {
		code, err := w.resolveSide(*req.Code)
		if err != nil {
			return store.Record{}, err
		}
		updated.CodePartition, updated.CodeDigest = code.partition, code.digest
	}

	if err := w.commit(func(s *store.Store) error { return s.Replace(updated) }); err != nil {
		return store.Record{}, notWritable(err, "edit")
	}

	log.Info().
		Str("id", updated.ID).
		Bool("doc", req.Doc != nil).
		Bool("code", req.Code != nil).
		Bool("description", req.Description != nil).
		Msg("Link edited")
	return updated, nil
}

// Remove deletes the record matching prefix
func (w *Workspace) Remove(prefix string) (store.Record, error) {
	rec, err := w.Store.Lookup(prefix)
	if err != nil {
		return store.Record{}, err
	}

	if err := w.commit(func(s *store.Store) error { return s.Delete(rec.ID) }); err != nil {
		return store.Record{}, notWritable(err, "removal")
	}

	logger := logging.GetLogger("core.operations")

	logger.Info().Str("id", rec.ID).Msg("Link removed")
	return rec, nil
}

// Accept stores the current digests of both sides of the record matching
// prefix. Nothing changes unless both sides can be extracted.
func (w *Workspace) Accept(prefix string) (store.Record, error) {
	rec, err := w.Store.Lookup(prefix)
	if err != nil {
		return store.Record{}, err
	}

	doc, err := w.resolveSide(rec.DocPartition)
	if err != nil {
		return store.Record{}, errors.Wrapf(err, errors.GetErrorCode(err),
			"cannot accept %s: documentation side is unreadable", rec.ShortID()).
			WithDetail("id", rec.ID)
	}
	code, err := w.resolveSide(rec.CodePartition)
	if err != nil {
		return store.Record{}, errors.Wrapf(err, errors.GetErrorCode(err),
			"cannot accept %s: code side is unreadable", rec.ShortID()).
			WithDetail("id", rec.ID)
	}

	updated := rec
	updated.DocDigest = doc.digest
	updated.CodeDigest = code.digest

	if err := w.commit(func(s *store.Store) error { return s.Replace(updated) }); err != nil {
		return store.Record{}, notWritable(err, "accept")
	}

	logger := logging.GetLogger("core.operations")

	logger.Info().Str("id", rec.ID).Msg("Current content accepted")
	return updated, nil
}

// RemoveFailed verifies the store and, once confirm approves, removes every
// failing record in a single write. A nil confirm approves. The removed
// results are returned; none are removed when confirm declines.
func (w *Workspace) RemoveFailed(confirm ConfirmFunc) ([]verify.Result, error) {
	log := logging.GetLogger("core.operations")

	failed := w.Verify().Failures()
	if len(failed) == 0 {
		log.Info().Msg("No failing links to remove")
		return nil, nil
	}

	if confirm != nil {
		ok, err := confirm(failed)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Info().Int("failed", len(failed)).Msg("Bulk removal declined")
			return nil, nil
		}
	}

	ids := make([]string, len(failed))
	for i, res := range failed {
		ids[i] = res.RecordID
	}

	if err := w.commit(func(s *store.Store) error {
		s.DeleteMany(ids)
		return nil
	}); err != nil {
		return nil, notWritable(err, "bulk removal")
	}

	log.Info().Int("removed", len(failed)).Int("remaining", w.Store.Len()).Msg("Failing links removed")
	return failed, nil
}
