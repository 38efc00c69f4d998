package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/doksnet/cmd/doksnet"
	"github.com/arthur-debert/doksnet/internal/version"
)

func main() {
	rootCmd := doksnet.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOKSNET",
		Section: "1",
		Source:  "doksnet " + version.Version,
		Manual:  "doksnet manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
