// Command doksnet-completions writes the shell completion scripts for every
// supported shell into a directory, for release packaging:
//
//	doksnet-completions dist/completions
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/doksnet/cmd/doksnet"
)

var scripts = []struct {
	file string
	gen  func(*cobra.Command, io.Writer) error
}{
	{"doksnet.bash", func(c *cobra.Command, w io.Writer) error { return c.GenBashCompletionV2(w, true) }},
	{"_doksnet", func(c *cobra.Command, w io.Writer) error { return c.GenZshCompletion(w) }},
	{"doksnet.fish", func(c *cobra.Command, w io.Writer) error { return c.GenFishCompletion(w, true) }},
	{"doksnet.ps1", func(c *cobra.Command, w io.Writer) error { return c.GenPowerShellCompletionWithDesc(w) }},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(2)
	}
	if err := writeAll(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "doksnet-completions: %v\n", err)
		os.Exit(1)
	}
}

func writeAll(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	root := doksnet.NewRootCmd()
	for _, s := range scripts {
		path := filepath.Join(dir, s.file)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		genErr := s.gen(root, f)
		if err := f.Close(); err != nil && genErr == nil {
			genErr = err
		}
		if genErr != nil {
			return fmt.Errorf("%s: %w", path, genErr)
		}
	}
	return nil
}
