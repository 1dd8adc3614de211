package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/furisto/gistpad/backend/gist"
	"github.com/furisto/gistpad/backend/pad"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type gistPasteOptions struct {
	Language string
	Into     string
	Line     int
	Picks    []string
}

func NewGistPasteCmd() *cobra.Command {
	var options gistPasteOptions

	cmd := &cobra.Command{
		Use:   "paste [flags]",
		Short: "Paste a gist file into a document",
		Long: `Select a gist and one of its files and paste its content.

Only gists with at least one file matching the language of the target document
are offered. The language is detected from the --into file name unless
--language is given; languages without a mapping show all gists. Files whose
extension ends with "_" match the language of the extension without it.`,
		Example: `  # Paste a python snippet at line 12 of app.py
  gistpad gist paste --into app.py --line 12

  # Print a gist file to stdout, picking the gist by name
  gistpad gist paste --pick "dotfiles" --pick ".bashrc"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := getGistStore(ctx)

			if options.Line < 0 {
				return fmt.Errorf("invalid line %d: must not be negative", options.Line)
			}

			language := options.Language
			if language == "" {
				language = pad.PlainText
				if options.Into != "" {
					language = pad.DetectLanguage(options.Into)
				}
			}

			snapshot, err := store.ListGists(ctx)
			if err != nil {
				return fmt.Errorf("failed to list gists: %w", err)
			}

			var inserter pad.Inserter = &writerInserter{out: cmd.OutOrStdout()}
			if options.Into != "" {
				path, err := resolvePath(ctx, options.Into)
				if err != nil {
					return err
				}
				inserter = &fileInserter{fs: getFileSystem(ctx), path: path, line: options.Line}
			}

			uri, err := pad.NewFileFilter(store, newUI(cmd, options.Picks)).Paste(ctx, language, snapshot, languageMappings(ctx), inserter)
			if err != nil {
				return err
			}
			if uri == nil || options.Into == "" {
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Pasted %s from gist %s into %s\n", gist.DecodeDirectoryName(uri.Filename), uri.GistID, options.Into)
			return nil
		},
	}

	cmd.Flags().StringVarP(&options.Language, "language", "l", "", "language of the target document (detected from --into by default)")
	cmd.Flags().StringVar(&options.Into, "into", "", "file to paste into instead of stdout")
	cmd.Flags().IntVar(&options.Line, "line", 0, "insert before this 1-based line of --into (appends by default)")
	addPickFlag(cmd, &options.Picks)

	return cmd
}

func resolvePath(ctx context.Context, path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	cwd, err := getUserInfo(ctx).Cwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return filepath.Join(cwd, path), nil
}

type writerInserter struct {
	out io.Writer
}

func (w *writerInserter) Insert(ctx context.Context, text string) error {
	_, err := io.WriteString(w.out, text)
	return err
}

// fileInserter inserts text before a 1-based line of a file. Line 0, or a
// line past the end, appends. A missing file is created.
type fileInserter struct {
	fs   *afero.Afero
	path string
	line int
}

func (f *fileInserter) Insert(ctx context.Context, text string) error {
	var existing string
	content, err := f.fs.ReadFile(f.path)
	switch {
	case err == nil:
		existing = string(content)
	case os.IsNotExist(err):
	default:
		return fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	lines := strings.SplitAfter(existing, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var updated string
	if f.line == 0 || f.line > len(lines) {
		if existing != "" && !strings.HasSuffix(existing, "\n") {
			existing += "\n"
		}
		updated = existing + text
	} else {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		before := strings.Join(lines[:f.line-1], "")
		after := strings.Join(lines[f.line-1:], "")
		updated = before + text + after
	}

	mode := os.FileMode(0644)
	if info, err := f.fs.Stat(f.path); err == nil {
		mode = info.Mode().Perm()
	}
	return f.fs.WriteFile(f.path, []byte(updated), mode)
}
