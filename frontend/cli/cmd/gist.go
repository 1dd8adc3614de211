package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/furisto/gistpad/backend/gist"
	"github.com/furisto/gistpad/backend/pad"
	"github.com/furisto/gistpad/frontend/cli/pkg/terminal"
	"github.com/spf13/cobra"
)

func NewGistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gist",
		Short: "Add files to gists and paste gist files",
		Long: `Add local files, selections, notebooks or stdin to a new or existing gist,
and paste gist files into documents.

Selections are made with a fuzzy finder when running in a terminal and from a
numbered list otherwise. Use --pick to answer selections non-interactively;
each --pick answers one selection, in order.`,
		GroupID: "core",
	}

	cmd.AddCommand(NewGistAddCmd())
	cmd.AddCommand(NewGistPasteCmd())
	cmd.AddCommand(NewGistListCmd())
	cmd.AddCommand(NewGistShowCmd())
	cmd.AddCommand(NewGistDeleteCmd())

	return cmd
}

func addPickFlag(cmd *cobra.Command, picks *[]string) {
	cmd.Flags().StringArrayVar(picks, "pick", nil, "answer the next selection with the best fuzzy match (repeatable)")
}

// newUI builds the prompter for selections and text prompts. Prompts go
// to stderr so that stdout carries only command output.
func newUI(cmd *cobra.Command, picks []string) pad.UI {
	return newPrompterUI(cmd, cmd.InOrStdin(), picks)
}

func newPrompterUI(cmd *cobra.Command, in io.Reader, picks []string) pad.UI {
	if ui := getUI(cmd.Context()); ui != nil {
		return ui
	}

	out := cmd.ErrOrStderr()
	return terminal.NewPrompter(in, out,
		terminal.WithPicks(picks...),
		terminal.WithInteractive(terminal.IsInteractive(in, out)),
	)
}

func languageMappings(ctx context.Context) pad.LanguageMap {
	if store := getConfigStore(ctx); store != nil {
		return pad.LanguageMap(store.LanguageMappings())
	}
	return pad.LanguageMap{}
}

type GistDisplay struct {
	ID          string `json:"id" yaml:"id" detail:"default"`
	Description string `json:"description" yaml:"description" detail:"default"`
	Files       string `json:"files" yaml:"files" detail:"default"`
	Visibility  string `json:"visibility" yaml:"visibility" detail:"default"`
	Updated     string `json:"updated" yaml:"updated" detail:"default"`
	Owner       string `json:"owner" yaml:"owner" detail:"wide"`
	URL         string `json:"url" yaml:"url" detail:"wide"`
}

func displayFilenames(g gist.Gist) string {
	names := make([]string, 0, len(g.Files))
	for _, f := range g.Files {
		names = append(names, gist.DecodeDirectoryName(f.Filename))
	}
	return strings.Join(names, ", ")
}

func visibility(public bool) string {
	if public {
		return "public"
	}
	return "secret"
}
