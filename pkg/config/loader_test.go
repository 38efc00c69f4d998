package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/doksnet/pkg/errors"
)

func writeTOML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func noUserFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.toml")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ".doks", cfg.Store.File)
	assert.Equal(t, 300, cfg.Preview.Limit)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.True(t, cfg.Log.Persist)
}

func TestLoadLayers(t *testing.T) {
	userDir := t.TempDir()
	userFile := writeTOML(t, userDir, "config.toml", "[preview]\nlimit = 80\n[output]\nformat = \"text\"\n")

	project := t.TempDir()
	writeTOML(t, project, ProjectFileName, "[output]\nformat = \"json\"\n")

	cfg, err := Load(LoadOptions{ProjectDir: project, UserFile: userFile})
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Preview.Limit, "user layer applies")
	assert.Equal(t, "json", cfg.Output.Format, "project layer wins over user")
	assert.Equal(t, ".doks", cfg.Store.File, "defaults fill the rest")
}

func TestLoadEnvironmentWins(t *testing.T) {
	project := t.TempDir()
	writeTOML(t, project, ProjectFileName, "[output]\nformat = \"json\"\n")
	t.Setenv("DOKSNET_OUTPUT_FORMAT", "JUnit")
	t.Setenv("DOKSNET_PREVIEW_LIMIT", "12")
	t.Setenv("DOKSNET_LOG_PERSIST", "false")

	cfg, err := Load(LoadOptions{ProjectDir: project, UserFile: noUserFile(t)})
	require.NoError(t, err)
	assert.Equal(t, "junit", cfg.Output.Format)
	assert.Equal(t, 12, cfg.Preview.Limit)
	assert.False(t, cfg.Log.Persist)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DOKSNET_OUTPUT_FORMAT", "json")
	cfg, err := Load(LoadOptions{
		UserFile:  noUserFile(t),
		Overrides: map[string]interface{}{"output.format": "text", "store.file": "links.doks"},
	})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "links.doks", cfg.Store.File)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{"unknown format", "[output]\nformat = \"yaml\"\n", "output.format"},
		{"negative preview", "[preview]\nlimit = -1\n", "preview.limit"},
		{"store file with path", "[store]\nfile = \"sub/.doks\"\n", "store.file"},
		{"store file with pipe", "[store]\nfile = \"a|b\"\n", "store.file"},
		{"empty store file", "[store]\nfile = \"\"\n", "store.file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := t.TempDir()
			writeTOML(t, project, ProjectFileName, tt.content)

			_, err := Load(LoadOptions{ProjectDir: project, UserFile: noUserFile(t)})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	project := t.TempDir()
	writeTOML(t, project, ProjectFileName, "[output\nformat = \n")

	_, err := Load(LoadOptions{ProjectDir: project, UserFile: noUserFile(t)})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[store]\n")
	assert.Contains(t, content, "# file = \".doks\"")
	assert.Contains(t, content, "# limit = 300")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}

	var parsed map[string]interface{}
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
}

func TestMarshalEffective(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = "json"

	out, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[output]")
	assert.Regexp(t, `format = ["']json["']`, out)

	var back Config
	require.NoError(t, toml.Unmarshal([]byte(out), &back))
	assert.Equal(t, *cfg, back)
}
