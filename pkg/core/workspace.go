package core

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/logging"
	"github.com/arthur-debert/doksnet/pkg/partition"
	"github.com/arthur-debert/doksnet/pkg/store"
	"github.com/arthur-debert/doksnet/pkg/verify"
)

// Workspace is a loaded store bound to its project root
type Workspace struct {
	FS    afero.Fs
	Root  string
	Path  string
	Store *store.Store
}

// OpenOptions defines how a workspace store is found.
type OpenOptions struct {
	// StartDir is where the upward search for the store begins.
	StartDir string
	// FileName is the store file name searched for. Defaults to .doks.
	FileName string
	// Path, when set, names the store file directly and skips the search.
	Path string
}

// Open locates and loads the store
func Open(fsys afero.Fs, opts OpenOptions) (*Workspace, error) {
	log := logging.GetLogger("core.workspace")

	path := opts.Path
	if path == "" {
		var err error
		path, err = store.Locate(fsys, opts.StartDir, opts.FileName)
		if err != nil {
			return nil, err
		}
	}

	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}

	s, err := store.Load(fsys, path)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("store", path).Int("records", s.Len()).Msg("Workspace opened")
	return &Workspace{FS: fsys, Root: filepath.Dir(path), Path: path, Store: s}, nil
}

// Init creates a new store in dir and returns its workspace
func Init(fsys afero.Fs, dir, fileName, defaultDoc string) (*Workspace, error) {
	if defaultDoc != "" {
		if _, err := partition.Parse(defaultDoc); err != nil {
			return nil, err
		}
	}

	path, s, err := store.Init(fsys, dir, fileName, defaultDoc)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("core.workspace")

	logger.Info().
		Str("store", path).
		Str("default_doc", defaultDoc).
		Msg("Store initialized")
	return &Workspace{FS: fsys, Root: dir, Path: path, Store: s}, nil
}

// Extract parses raw and returns its canonical form and current content
func (w *Workspace) Extract(raw string) (string, string, error) {
	ref, text, err := partition.Resolve(w.FS, w.Root, raw)
	if err != nil {
		return "", "", err
	}
	return ref.String(), text, nil
}

// Verify checks every record against the working tree
func (w *Workspace) Verify() *verify.Report {
	return verify.Verify(w.FS, w.Root, w.Store)
}

// VerifyRecord checks the record matching the id prefix
func (w *Workspace) VerifyRecord(prefix string) (verify.Result, error) {
	rec, err := w.Store.Lookup(prefix)
	if err != nil {
		return verify.Result{}, err
	}
	return verify.Record(w.FS, w.Root, rec), nil
}

// commit applies mutate to a copy of the store, persists the copy and then
// swaps it in
func (w *Workspace) commit(mutate func(s *store.Store) error) error {
	next := w.Store.Clone()
	if err := mutate(next); err != nil {
		return err
	}
	if err := store.Save(w.FS, w.Path, next); err != nil {
		return err
	}
	w.Store = next
	return nil
}

func notWritable(err error, op string) error {
	if errors.IsErrorCode(err, errors.ErrIO) {
		return errors.Wrapf(err, errors.ErrIO, "%s was not saved", op)
	}
	return err
}
