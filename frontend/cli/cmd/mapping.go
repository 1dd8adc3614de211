package cmd

import (
	"fmt"
	"strings"

	"github.com/furisto/gistpad/backend/pad"
	"github.com/spf13/cobra"
)

func NewMappingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Configure which file extensions belong to a language",
		Long: `Configure the language to file extension mapping used by 'gist paste' and
'gist list --language'.

A language without a mapping is not restricted: all gists are shown. A mapped
language shows gists with at least one file of a listed extension, or of the
same extension followed by "_".`,
		Aliases: []string{"map"},
		GroupID: "system",
	}

	cmd.AddCommand(NewMappingListCmd())
	cmd.AddCommand(NewMappingSetCmd())
	cmd.AddCommand(NewMappingAddCmd())
	cmd.AddCommand(NewMappingRemoveCmd())

	return cmd
}

type MappingDisplay struct {
	Language   string   `json:"language" yaml:"language" detail:"default"`
	Extensions []string `json:"extensions" yaml:"extensions" detail:"default"`
	Matches    []string `json:"matches" yaml:"matches" detail:"wide"`
}

type mappingListOptions struct {
	RenderOptions RenderOptions
}

func NewMappingListCmd() *cobra.Command {
	var options mappingListOptions

	cmd := &cobra.Command{
		Use:     "list [flags]",
		Short:   "List language mappings",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := getConfigStore(cmd.Context())
			mappings := pad.LanguageMap(store.LanguageMappings())

			displays := make([]*MappingDisplay, 0, len(mappings))
			for _, language := range store.Languages() {
				displays = append(displays, &MappingDisplay{
					Language:   language,
					Extensions: mappings[language],
					Matches:    pad.AllowedExtensions(mappings, language),
				})
			}

			return getRenderer(cmd.Context()).Render(cmd.OutOrStdout(), displays, &options.RenderOptions)
		},
	}

	addRenderOptions(cmd, &options.RenderOptions)
	return cmd
}

func NewMappingSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <language> [<extension>...]",
		Short: "Replace the extensions of a language",
		Long: `Replace the extensions of a language. A leading dot is added when missing.
Setting a language without extensions hides all gists for it.`,
		Example: `  # Show only .py and .pyw gists when pasting into python documents
  gistpad mapping set python py pyw`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := getConfigStore(cmd.Context())
			if err := store.SetMapping(args[0], args[1:]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Mapping for %q set to %s\n", args[0], formatExtensions(store.LanguageMappings()[args[0]]))
			return nil
		},
	}
}

func NewMappingAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <language> <extension>...",
		Short: "Add extensions to a language",
		Example: `  # Also show ES module files for javascript
  gistpad mapping add javascript mjs cjs`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := getConfigStore(cmd.Context())
			if err := store.AddMapping(args[0], args[1:]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Mapping for %q set to %s\n", args[0], formatExtensions(store.LanguageMappings()[args[0]]))
			return nil
		},
	}
}

func NewMappingRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <language>...",
		Short:   "Remove language mappings",
		Aliases: []string{"rm"},
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := getConfigStore(cmd.Context())
			for _, language := range args {
				if err := store.RemoveMapping(language); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Mapping for %q removed\n", language)
			}
			return nil
		},
	}
}

func formatExtensions(extensions []string) string {
	if len(extensions) == 0 {
		return "(none)"
	}
	return strings.Join(extensions, ", ")
}
