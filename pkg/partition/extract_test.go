package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/testutil"
)

const root = testutil.Root

func TestExtract(t *testing.T) {
	fsys := testutil.Tree(t, map[string]string{
		"hello.txt":  "Hello\nWorld\n",
		"crlf.txt":   "one\r\ntwo\r\nthree",
		"nofinal.md": "alpha\nbeta",
		"utf8.md":    "héllo wörld\n日本語\n",
		"empty.txt":  "",
	})

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"first line keeps terminator", "hello.txt:1", "Hello\n"},
		{"flattened columns across lines", "hello.txt:1-2@1-3", "Hel"},
		{"columns span the line break", "hello.txt:1-2@5-8", "o\nWo"},
		{"whole file", "hello.txt", "Hello\nWorld\n"},
		{"whole file with columns", "hello.txt@7-11", "World"},
		{"end column clamped", "hello.txt:2@3-100", "rld\n"},
		{"crlf preserved", "crlf.txt:1-2", "one\r\ntwo\r\n"},
		{"unterminated last line", "nofinal.md:2", "beta"},
		{"runes not bytes", "utf8.md:1@2-5", "éllo"},
		{"multi byte line", "utf8.md:2", "日本語\n"},
		{"empty file whole", "empty.txt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(fsys, root, MustParse(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractErrors(t *testing.T) {
	fsys := testutil.Tree(t, map[string]string{
		"hello.txt":  "Hello\nWorld\n",
		"binary.bin": string([]byte{0xff, 0xfe, 0x00, 0x80}),
		"empty.txt":  "",
		"dir/x.md":   "x",
	})

	tests := []struct {
		name string
		raw  string
		code errors.ErrorCode
	}{
		{"missing file", "nope.md:1", errors.ErrFileNotFound},
		{"directory", "dir", errors.ErrFileNotFound},
		{"invalid utf8", "binary.bin", errors.ErrNotDecodable},
		{"line past end", "hello.txt:2-3", errors.ErrLineOutOfRange},
		{"line in empty file", "empty.txt:1", errors.ErrLineOutOfRange},
		{"column past end", "hello.txt:1@7-9", errors.ErrColumnOutOfRange},
		{"column in empty file", "empty.txt@1-1", errors.ErrColumnOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(fsys, root, MustParse(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "want %s, got %v", tt.code, err)
		})
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	fsys := testutil.Tree(t, map[string]string{"a.go": "package a\n\nfunc A() {}\n"})
	ref := MustParse("a.go:1-3@3-20")

	first, err := Extract(fsys, root, ref)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Extract(fsys, root, ref)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolve(t *testing.T) {
	fsys := testutil.Tree(t, map[string]string{"hello.txt": "Hello\nWorld\n"})

	ref, text, err := Resolve(fsys, root, "hello.txt:2")
	require.NoError(t, err)
	assert.Equal(t, "hello.txt:2", ref.String())
	assert.Equal(t, "World\n", text)

	_, _, err = Resolve(fsys, root, "hello.txt:5-2")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPartitionSyntax))
}

func TestExtractStaysUnderRoot(t *testing.T) {
	fsys := testutil.Tree(t, map[string]string{"README.md": "# Title\n"})
	testutil.WriteFile(t, fsys, "/secret.txt", "top secret\n")

	_, _, err := Resolve(fsys, root, "../secret.txt")
	testutil.AssertErrorCode(t, err, errors.ErrInvalidPartitionSyntax)

	// hand-built refs get the same check
	_, err = Extract(fsys, root, Ref{Path: "../secret.txt"})
	testutil.AssertErrorCode(t, err, errors.ErrInvalidPartitionSyntax)

	_, err = Extract(fsys, root, Ref{Path: "README.md", StartLine: 3, EndLine: 1})
	testutil.AssertErrorCode(t, err, errors.ErrInvalidPartitionSyntax)

	text, err := Extract(fsys, root, Ref{Path: "docs/../README.md"})
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", text)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a\n"}, SplitLines("a\n"))
	assert.Equal(t, []string{"a\n", "b"}, SplitLines("a\nb"))
	assert.Equal(t, []string{"\n", "\n"}, SplitLines("\n\n"))
	assert.Equal(t, []string{"a\r\n", "b\r\n"}, SplitLines("a\r\nb\r\n"))
}
