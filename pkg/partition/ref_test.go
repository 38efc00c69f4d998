package partition

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/doksnet/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Ref
	}{
		{"file only", "src/main.go", Ref{Path: "src/main.go"}},
		{"single line", "README.md:3", Ref{Path: "README.md", StartLine: 3, EndLine: 3}},
		{"line range", "src/main.go:10-20", Ref{Path: "src/main.go", StartLine: 10, EndLine: 20}},
		{"line and column range", "src/main.go:10-20@5-15", Ref{Path: "src/main.go", StartLine: 10, EndLine: 20, StartCol: 5, EndCol: 15}},
		{"columns without lines", "notes.txt@1-40", Ref{Path: "notes.txt", StartCol: 1, EndCol: 40}},
		{"trailing colon means whole file", "README.md:", Ref{Path: "README.md"}},
		{"colon in directory name", "v1:beta/api.md:2", Ref{Path: "v1:beta/api.md", StartLine: 2, EndLine: 2}},
		{"at sign in directory name", "node_modules/@scope/pkg/README.md:1-4", Ref{Path: "node_modules/@scope/pkg/README.md", StartLine: 1, EndLine: 4}},
		{"dot relative path", "./docs/guide.md:7", Ref{Path: "./docs/guide.md", StartLine: 7, EndLine: 7}},
		{"parent segment that stays inside", "docs/../README.md:1", Ref{Path: "docs/../README.md", StartLine: 1, EndLine: 1}},
		{"dots inside a file name", "notes..md", Ref{Path: "notes..md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsInvalidSyntax(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"end line before start", "path:5-2"},
		{"end column before start", "path:1@9-3"},
		{"zero line", "path:0"},
		{"zero column", "path:1-2@0-3"},
		{"negative looking line", "path:-3"},
		{"non numeric line", "path:abc"},
		{"signed number", "path:+3"},
		{"too many line bounds", "path:1-2-3"},
		{"single column bound", "path:1@5"},
		{"empty column segment", "path:1@"},
		{"malformed column segment", "path:1@a-b"},
		{"empty path", ":3"},
		{"directory only", "docs/:3"},
		{"absolute path", "/etc/passwd:1"},
		{"store delimiter", "a|b.md:1"},
		{"newline", "a.md\n:1"},
		{"overflowing number", "path:99999999999999999999999"},
		{"column before line segment", "path@1-2:3"},
		{"parent directory", "../secret.txt:1"},
		{"parent directory only", "..:1"},
		{"climbs out through a subdirectory", "docs/../../secret.txt"},
		{"leading whitespace", " a.md:1"},
		{"trailing whitespace", "a.md:1 "},
		{"whitespace before range", "a.md :1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPartitionSyntax), "got %v", err)
		})
	}
}

func TestParseErrorCarriesPartition(t *testing.T) {
	_, err := Parse("path:5-2")
	require.Error(t, err)
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "path:5-2", details["partition"])
	assert.Contains(t, err.Error(), "before start line")
}

func TestRefString(t *testing.T) {
	tests := []struct {
		ref  Ref
		want string
	}{
		{Ref{Path: "a.md"}, "a.md"},
		{Ref{Path: "a.md", StartLine: 4, EndLine: 4}, "a.md:4"},
		{Ref{Path: "a.md", StartLine: 4, EndLine: 9}, "a.md:4-9"},
		{Ref{Path: "a.md", StartLine: 4, EndLine: 4, StartCol: 2, EndCol: 2}, "a.md:4@2-2"},
		{Ref{Path: "a.md", StartCol: 1, EndCol: 10}, "a.md@1-10"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.String())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	paths := []string{"README.md", "docs/guide.md", "src/lib/core.go", "v2:rc/notes.txt", "@org/x.md"}

	for i := 0; i < 2000; i++ {
		ref := Ref{Path: paths[rng.Intn(len(paths))]}
		if rng.Intn(3) > 0 {
			ref.StartLine = 1 + rng.Intn(500)
			ref.EndLine = ref.StartLine + rng.Intn(50)
		}
		if rng.Intn(2) == 0 {
			ref.StartCol = 1 + rng.Intn(200)
			ref.EndCol = ref.StartCol + rng.Intn(200)
		}

		raw := ref.String()
		parsed, err := Parse(raw)
		require.NoError(t, err, "parse %q", raw)
		require.Equal(t, ref, parsed, "round trip of %q", raw)
		require.Equal(t, raw, parsed.String())
	}
}

func TestRoundTripOfNonCanonicalInput(t *testing.T) {
	for _, raw := range []string{"a.md:3-3", "a.md:", "a.md:1-1@4-9"} {
		t.Run(raw, func(t *testing.T) {
			first, err := Parse(raw)
			require.NoError(t, err)
			second, err := Parse(first.String())
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Ref{Path: "a", StartLine: 1, EndLine: 1}.Validate())
	assert.Error(t, Ref{Path: "a", StartLine: 1}.Validate(), "half a line range")
	assert.Error(t, Ref{Path: "a", EndCol: 3}.Validate(), "half a column range")
	assert.Error(t, Ref{}.Validate())
}

func TestMustParsePanics(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("a.md:1") })
	assert.Panics(t, func() { MustParse(fmt.Sprintf("a.md:%d-%d", 3, 1)) })
}
