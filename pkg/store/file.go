package store

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/filesystem"
	"github.com/arthur-debert/doksnet/pkg/logging"
)

// DefaultFileName is the store file name looked up in the working tree
const DefaultFileName = ".doks"

// Load reads and decodes the store at path
func Load(fsys afero.Fs, path string) (*Store, error) {
	logger := logging.GetLogger("store")

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrStoreNotFound, "no store at %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot read store %s", path).
			WithDetail("path", path)
	}

	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		if de, ok := err.(*errors.DoksError); ok {
			de.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().Str("path", path).Int("records", s.Len()).Msg("Store loaded")
	return s, nil
}

// Save encodes the whole store and atomically replaces the file at path.
// Nothing is written if encoding fails.
func Save(fsys afero.Fs, path string, s *Store) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := filesystem.WriteFileAtomic(fsys, path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot write store %s", path).
			WithDetail("path", path)
	}

	logger := logging.GetLogger("store")

	logger.Debug().Str("path", path).Int("records", s.Len()).Msg("Store saved")
	return nil
}

// Init creates an empty store named fileName in dir
func Init(fsys afero.Fs, dir, fileName, defaultDoc string) (string, *Store, error) {
	if fileName == "" {
		fileName = DefaultFileName
	}
	path := filepath.Join(dir, fileName)

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrIO, "cannot check %s", path)
	}
	if exists {
		return "", nil, errors.Newf(errors.ErrStoreExists, "a store already exists at %s", path).
			WithDetail("path", path)
	}
	if !filesystem.IsDir(fsys, dir) {
		return "", nil, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", dir).
			WithDetail("path", dir)
	}

	s := New(defaultDoc)
	if err := Save(fsys, path, s); err != nil {
		return "", nil, err
	}
	return path, s, nil
}

// Locate walks from startDir up to the filesystem root looking for fileName
func Locate(fsys afero.Fs, startDir, fileName string) (string, error) {
	if fileName == "" {
		fileName = DefaultFileName
	}

	dir := filepath.Clean(startDir)
	for {
		candidate := filepath.Join(dir, fileName)
		if ok, err := afero.Exists(fsys, candidate); err == nil && ok && !filesystem.IsDir(fsys, candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.Newf(errors.ErrStoreNotFound,
		"no %s file found in %s or any parent directory; run 'doksnet new' first", fileName, startDir).
		WithDetail("start", startDir)
}
