// Package topics adds long-form help pages to a Cobra command tree. Pages
// are files in an fs.FS (normally embedded); each file becomes a topic
// named after its base name and is shown by "<app> help <topic>".
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Topic is one help page
type Topic struct {
	Name string
	// Title is the first markdown heading, or the first non-blank line
	Title   string
	Path    string
	Content string
}

// Options configures a Manager
type Options struct {
	// Extensions selects the files that are topics. Default: .md and .txt.
	Extensions []string
	// Renderer formats topic content. Default: PlainRenderer.
	Renderer Renderer
}

// Manager holds the topics found in a filesystem
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Load scans fsys for topic files. A nil fsys yields no topics.
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{topics: map[string]*Topic{}, renderer: opts.Renderer}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".md", ".txt"}
	}
	if fsys == nil {
		return m, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := path.Ext(p)
		if !slices.Contains(exts, ext) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Title: title(string(data)), Path: p, Content: string(data)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

func title(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}

// Get looks a topic up by name
func (m *Manager) Get(name string) (*Topic, bool) {
	t, ok := m.topics[name]
	return t, ok
}

// Names returns the topic names, sorted
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Render formats a topic for display
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, path.Ext(t.Path))
}

// WriteIndex lists the topics with their titles
func (m *Manager) WriteIndex(w io.Writer, app string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	fmt.Fprintln(w, "Help topics:")
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, m.topics[name].Title)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\nRun '%s help <topic>' to read one.\n", app)
}

// Install loads the topics and replaces root's help command with one that
// also knows them. "help topics" prints the index; names that are neither
// topics nor commands fall back to root's usage.
func Install(root *cobra.Command, fsys fs.FS, opts Options) (*Manager, error) {
	m, err := Load(fsys, opts)
	if err != nil {
		return nil, err
	}

	commandHelp := root.HelpFunc()
	app := root.Name()

	root.SetHelpCommand(&cobra.Command{
		Use:   "help [command | topic]",
		Short: "Help about any command or topic",
		Long:  "Show help for a command, or read a help topic.\nRun '" + app + " help topics' for the list of topics.",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			names := append([]string{"topics"}, m.Names()...)
			for _, c := range root.Commands() {
				if c.IsAvailableCommand() {
					names = append(names, c.Name())
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				commandHelp(root, args)
			case args[0] == "topics":
				m.WriteIndex(out, app)
			default:
				if t, ok := m.Get(args[0]); ok {
					fmt.Fprint(out, m.Render(t))
					return
				}
				target, _, err := root.Find(args)
				if err != nil || target == nil {
					target = root
				}
				commandHelp(target, args)
			}
		},
	})
	return m, nil
}
