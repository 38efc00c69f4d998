package store

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/doksnet/pkg/errors"
)

func TestSaveAndLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/repo", 0755))
	path := "/repo/.doks"

	s := storeWith(t, "a", "b")
	require.NoError(t, Save(fsys, path, s))

	loaded, err := Load(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	entries, err := afero.ReadDir(fsys, "/repo")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestSaveLogsComponent(t *testing.T) {
	previous, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(level)
	})
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/repo", 0755))
	require.NoError(t, Save(fsys, "/repo/.doks", storeWith(t, "a", "b")))

	out := buf.String()
	assert.Contains(t, out, `"component":"store"`)
	assert.Contains(t, out, `"records":2`)
	assert.Contains(t, out, "Store saved")
}

func TestSaveFailureLeavesFileUntouched(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/repo", 0755))
	path := "/repo/.doks"

	require.NoError(t, Save(fsys, path, storeWith(t, "a")))
	before, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)

	bad := storeWith(t, "a")
	bad.Records[0].Description = "broken|description"
	err = Save(fsys, path, bad)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidDescription))

	after, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSaveToReadOnlyFs(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/repo", 0755))
	fsys := afero.NewReadOnlyFs(base)

	err := Save(fsys, "/repo/.doks", New(""))
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}

func TestLoadErrors(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := Load(fsys, "/nowhere/.doks")
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreNotFound))

	require.NoError(t, afero.WriteFile(fsys, "/repo/.doks", []byte("garbage\n"), 0644))
	_, err = Load(fsys, "/repo/.doks")
	assert.True(t, errors.IsErrorCode(err, errors.ErrCorruptStore))
	assert.Equal(t, "/repo/.doks", errors.GetErrorDetails(err)["path"])
}

func TestInit(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/repo", 0755))

	path, s, err := Init(fsys, "/repo", "", "README.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/repo", DefaultFileName), path)
	assert.Equal(t, "README.md", s.DefaultDoc)

	loaded, err := Load(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "README.md", loaded.DefaultDoc)
	assert.Equal(t, 0, loaded.Len())

	_, _, err = Init(fsys, "/repo", "", "other.md")
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreExists))

	_, _, err = Init(fsys, "/missing", "", "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLocate(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/repo/src/deep/er", 0755))
	require.NoError(t, afero.WriteFile(fsys, "/repo/.doks", []byte(""), 0644))

	for _, start := range []string{"/repo", "/repo/src", "/repo/src/deep/er"} {
		path, err := Locate(fsys, start, "")
		require.NoError(t, err, start)
		assert.Equal(t, "/repo/.doks", path)
	}

	_, err := Locate(fsys, "/elsewhere", "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreNotFound))

	path, err := Locate(fsys, "/repo/src", ".doks")
	require.NoError(t, err)
	assert.Equal(t, "/repo/.doks", path)
}

func TestLocateNearestWins(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/repo/sub", 0755))
	require.NoError(t, afero.WriteFile(fsys, "/repo/.doks", nil, 0644))
	require.NoError(t, afero.WriteFile(fsys, "/repo/sub/.doks", nil, 0644))

	path, err := Locate(fsys, "/repo/sub", "")
	require.NoError(t, err)
	assert.Equal(t, "/repo/sub/.doks", path)
}
