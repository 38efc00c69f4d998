package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/arthur-debert/doksnet/cmd/doksnet"
	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/ui/display"
	"github.com/arthur-debert/doksnet/pkg/ui/styles"
)

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	rootCmd := doksnet.NewRootCmd()
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	errorStyle := styles.GetStyle("Error")
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+display.ErrorMessage(err)))

	// Usage help only for command line mistakes: cobra's own argument and
	// flag errors carry no code
	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown || code == errors.ErrInvalidInput {
		fmt.Fprintln(os.Stderr)
		_ = cmd.Usage()
	}

	os.Exit(1)
}
