package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/furisto/gistpad/backend/gist"
	"github.com/furisto/gistpad/backend/pad"
	"github.com/spf13/cobra"
)

type gistListOptions struct {
	Language      string
	RenderOptions RenderOptions
}

func NewGistListCmd() *cobra.Command {
	var options gistListOptions

	cmd := &cobra.Command{
		Use:     "list [flags]",
		Short:   "List your gists",
		Aliases: []string{"ls"},
		Example: `  # List all gists
  gistpad gist list

  # List gists that contain python files, as JSON
  gistpad gist list --language python --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gists, err := getGistStore(cmd.Context()).ListGists(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list gists: %w", err)
			}

			if options.Language != "" {
				allowed := pad.AllowedExtensions(languageMappings(cmd.Context()), options.Language)
				gists = pad.FilterGists(gists, allowed)
			}

			displays := make([]*GistDisplay, 0, len(gists))
			for _, g := range gists {
				displays = append(displays, toGistDisplay(g))
			}

			return getRenderer(cmd.Context()).Render(cmd.OutOrStdout(), displays, &options.RenderOptions)
		},
	}

	cmd.Flags().StringVarP(&options.Language, "language", "l", "", "only list gists with files of this language")
	addRenderOptions(cmd, &options.RenderOptions)
	return cmd
}

func toGistDisplay(g gist.Gist) *GistDisplay {
	display := &GistDisplay{
		ID:          g.ID,
		Description: g.Description,
		Files:       displayFilenames(g),
		Visibility:  visibility(g.Public),
		Owner:       g.Owner,
		URL:         g.HTMLURL,
	}
	if !g.UpdatedAt.IsZero() {
		display.Updated = humanize.Time(g.UpdatedAt)
	}
	return display
}
