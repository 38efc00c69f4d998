package doksnet

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func stdoutIsTerminal() bool { return isTerminal(os.Stdout) }

func stdinIsTerminal() bool { return isTerminal(os.Stdin) }

// heading styles usage section titles. Piped help stays plain.
func heading(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// initTemplateFormatting registers the usage template helpers
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      heading,
		"boldUpper": func(s string) string { return heading(strings.ToUpper(s)) },
	})
}
