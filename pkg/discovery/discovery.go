// Package discovery suggests documentation files for a new store.
package discovery

import (
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/logging"
)

// knownNames are documentation file names recognized regardless of extension
var knownNames = []string{
	"README.md", "README.rst", "README.txt", "README",
	"DOCS.md", "DOCUMENTATION.md", "GUIDE.md", "MANUAL.md",
}

// FindDocumentationFiles lists documentation files directly inside dir:
// well-known names (case-insensitive) and any .md file. README variants come
// first, then the rest in name order.
func FindDocumentationFiles(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot list %s", dir).
			WithDetail("path", dir)
	}

	var found []string
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		if IsDocumentationFile(entry.Name()) {
			found = append(found, entry.Name())
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		ri, rj := isReadme(found[i]), isReadme(found[j])
		if ri != rj {
			return ri
		}
		return found[i] < found[j]
	})

	logger := logging.GetLogger("discovery")

	logger.Debug().
		Str("dir", dir).
		Strs("files", found).
		Msg("Documentation files found")
	return found, nil
}

// IsDocumentationFile reports whether name looks like documentation
func IsDocumentationFile(name string) bool {
	if strings.HasSuffix(strings.ToLower(name), ".md") {
		return true
	}
	for _, known := range knownNames {
		if strings.EqualFold(name, known) {
			return true
		}
	}
	return false
}

func isReadme(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), "readme")
}
