package config

import (
	"bufio"
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/doksnet/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultsTOML []byte

// defaultsProvider feeds the embedded defaults to koanf as raw TOML
type defaultsProvider struct{}

func (defaultsProvider) ReadBytes() ([]byte, error) { return defaultsTOML, nil }

func (defaultsProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("defaults provider only supports ReadBytes")
}

// GenerateConfigContent returns the documented defaults with every setting
// commented out. Saved as a user or project file it changes nothing until
// a line is uncommented.
func GenerateConfigContent() string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(string(defaultsTOML)))
	for scanner.Scan() {
		line := scanner.Text()
		if isSetting(line) {
			b.WriteString("# ")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// isSetting reports whether a TOML line assigns a value, as opposed to a
// blank line, a comment or a table header
func isSetting(line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "", strings.HasPrefix(trimmed, "#"):
		return false
	case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
		return false
	}
	return true
}

// Marshal renders the effective configuration as TOML
func Marshal(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}
