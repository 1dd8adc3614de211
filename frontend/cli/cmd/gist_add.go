package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/furisto/gistpad/backend/gist"
	"github.com/furisto/gistpad/backend/pad"
	"github.com/spf13/cobra"
)

type gistAddOptions struct {
	Tab       string
	Lines     string
	Notebook  string
	GistFiles []string
	Stdin     bool
	Name      string
	Picks     []string
}

func NewGistAddCmd() *cobra.Command {
	var options gistAddOptions

	cmd := &cobra.Command{
		Use:   "add [<path>...] [flags]",
		Short: "Add files to a new or existing gist",
		Long: `Add files to a new public or secret gist, or append them to one of your gists.

Content can come from files and directories, a line range of a file (--tab),
a notebook (--notebook), files of other gists (--gist-file) or stdin (--stdin).
Files inside directories keep their relative path; the path separator is
stored as "___" in the gist file name.`,
		Example: `  # Create a gist from two files, choosing public or secret interactively
  gistpad gist add main.go go.mod

  # Add lines 10 to 42 of a file to an existing gist
  gistpad gist add --tab server.go --lines 10:42 --pick "http handlers"

  # Create a secret gist from stdin without any prompt
  git diff | gistpad gist add --stdin --name fix.diff --pick "Create new secret gist"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := getGistStore(ctx)

			promptIn, closePrompts, err := addPromptInput(cmd, &options)
			if err != nil {
				return err
			}
			defer closePrompts()

			sources, err := collectSources(cmd, args, &options)
			if err != nil {
				return err
			}

			ignore := getConfigStore(ctx).IgnorePatterns()
			files, err := pad.NewNormalizer(getFileSystem(ctx), store, ignore).Normalize(ctx, sources...)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no files to add: every file matched an ignore pattern")
			}

			snapshot, err := store.ListGists(ctx)
			if err != nil {
				return fmt.Errorf("failed to list gists: %w", err)
			}

			dispatch, err := pad.NewTargetResolver(store, newPrompterUI(cmd, promptIn, options.Picks)).Resolve(ctx, files, snapshot)
			if err != nil {
				return err
			}
			if dispatch == nil {
				return nil
			}

			out := cmd.OutOrStdout()
			switch choice := dispatch.Choice.(type) {
			case pad.CreateNew:
				if dispatch.Created == nil {
					fmt.Fprintf(out, "Created %s gist\n", visibility(choice.Public))
					return nil
				}
				fmt.Fprintf(out, "Created %s gist %s\n", visibility(choice.Public), dispatch.Created.ID)
				if dispatch.Created.HTMLURL != "" {
					fmt.Fprintln(out, dispatch.Created.HTMLURL)
				}
			case pad.ExistingGist:
				fmt.Fprintf(out, "Added %d %s to gist %s\n", len(dispatch.Written), pluralize(len(dispatch.Written), "file"), choice.ID)
			default:
				return fmt.Errorf("unsupported gist target %T", choice)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&options.Tab, "tab", "", "add the content of an open document")
	cmd.Flags().StringVar(&options.Lines, "lines", "", "only add lines START:END of the --tab document")
	cmd.Flags().StringVar(&options.Notebook, "notebook", "", "add a notebook file")
	cmd.Flags().StringArrayVar(&options.GistFiles, "gist-file", nil, "add a file of another gist, as ID/NAME (repeatable)")
	cmd.Flags().BoolVar(&options.Stdin, "stdin", false, "add text read from stdin")
	cmd.Flags().StringVar(&options.Name, "name", "", "file name for --stdin or --tab content")
	addPickFlag(cmd, &options.Picks)

	return cmd
}

func collectSources(cmd *cobra.Command, args []string, options *gistAddOptions) ([]pad.Source, error) {
	if options.Lines != "" && options.Tab == "" {
		return nil, errors.New("--lines requires --tab")
	}

	cwd, err := getUserInfo(cmd.Context()).Cwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	resolve := func(path string) string {
		if filepath.IsAbs(path) {
			return filepath.Clean(path)
		}
		return filepath.Join(cwd, path)
	}

	var sources []pad.Source
	for _, path := range args {
		sources = append(sources, pad.ExplorerSource{Path: resolve(path)})
	}

	if options.Tab != "" {
		tab := pad.TabSource{Path: resolve(options.Tab)}
		if !options.Stdin {
			tab.Filename = options.Name
		}
		if options.Lines != "" {
			lines, err := pad.ParseLineRange(options.Lines)
			if err != nil {
				return nil, err
			}
			tab.Lines = lines
		}
		sources = append(sources, tab)
	}

	if options.Notebook != "" {
		sources = append(sources, pad.NotebookSource{Path: resolve(options.Notebook)})
	}

	for _, ref := range options.GistFiles {
		id, name, err := gist.ParseGistRef(ref)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, fmt.Errorf("invalid gist file %q: expected ID/NAME", ref)
		}
		sources = append(sources, pad.GistTreeSource{GistID: id, Filename: name})
	}

	if options.Stdin {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		sources = append(sources, pad.BufferSource{Name: options.Name, Text: string(text)})
	}

	if len(sources) == 0 {
		return nil, errors.New("nothing to add: pass a path or one of --tab, --notebook, --gist-file or --stdin")
	}
	return sources, nil
}

// addPromptInput returns where prompts are read from. With --stdin the
// content occupies stdin, so prompts move to the controlling terminal.
// Without a terminal only --name and --pick can answer them, and the
// optional description is left empty.
func addPromptInput(cmd *cobra.Command, options *gistAddOptions) (io.Reader, func(), error) {
	noop := func() {}
	if !options.Stdin || getUI(cmd.Context()) != nil {
		return cmd.InOrStdin(), noop, nil
	}

	tty, err := getTerminalOpener(cmd.Context())()
	if err == nil {
		return tty, func() { tty.Close() }, nil
	}

	slog.Debug("no terminal for prompts", "error", err)
	if options.Name == "" || len(options.Picks) == 0 {
		return nil, noop, errors.New("--stdin needs --name and --pick when no terminal is available")
	}
	return strings.NewReader(""), noop, nil
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
