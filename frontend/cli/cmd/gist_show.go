package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/furisto/gistpad/backend/gist"
	"github.com/furisto/gistpad/backend/pad"
	"github.com/furisto/gistpad/frontend/cli/pkg/terminal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type gistShowOptions struct {
	Raw   bool
	Picks []string
}

func NewGistShowCmd() *cobra.Command {
	var options gistShowOptions

	cmd := &cobra.Command{
		Use:   "show <id>[/<file>] [flags]",
		Short: "Print a file of a gist",
		Long: `Print a file of a gist. Without a file name, a gist with a single file shows
that file and a gist with several files asks which one to show.

In a terminal, Markdown files are rendered and source files are highlighted.
Use --raw to print the content unchanged.`,
		Example: `  # Show the only file of a gist
  gistpad gist show aa5a315d61ae9438b18d

  # Show a nested file without formatting
  gistpad gist show aa5a315d61ae9438b18d/src/main.go --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := getGistStore(ctx)

			id, name, err := gist.ParseGistRef(args[0])
			if err != nil {
				return err
			}

			g, err := store.GetGist(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get gist %s: %w", id, err)
			}

			var uri *gist.URI
			if name != "" {
				if _, ok := g.File(name); !ok {
					return &gist.FileNotFoundError{URI: gist.NewURI(id, name)}
				}
				uri = &gist.URI{GistID: id, Filename: name}
			} else {
				uri, err = pad.NewFileFilter(store, newUI(cmd, options.Picks)).ResolveFile(ctx, *g)
				if err != nil || uri == nil {
					return err
				}
			}

			content, err := store.ReadFile(ctx, *uri)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", uri, err)
			}

			out := cmd.OutOrStdout()
			if options.Raw || !terminal.IsInteractive(cmd.InOrStdin(), out) {
				_, err = out.Write(content)
				return err
			}
			return printFormatted(out, gist.DecodeDirectoryName(uri.Filename), string(content))
		},
	}

	cmd.Flags().BoolVar(&options.Raw, "raw", false, "print the content without formatting")
	addPickFlag(cmd, &options.Picks)
	return cmd
}

func printFormatted(out io.Writer, filename, content string) error {
	if !terminal.IsMarkdown(filename) {
		return terminal.Highlight(out, filename, content)
	}

	width := 80
	if file, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(file.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	rendered, err := terminal.RenderMarkdown(content, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, rendered)
	return err
}
