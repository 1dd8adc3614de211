package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

type contextListOptions struct {
	RenderOptions RenderOptions
}

func NewContextListCmd() *cobra.Command {
	var options contextListOptions

	cmd := &cobra.Command{
		Use:     "list [flags]",
		Short:   "List all configured contexts",
		Aliases: []string{"ls"},
		Long: `List all configured contexts.

The context marked current is the one gist commands run against. Without any
context the default github.com endpoint is listed instead.`,
		Example: `  # List all contexts
  gistpad context list

  # List contexts in JSON format
  gistpad context list --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			endpointContexts, err := getContextManager(cmd.Context()).LoadContext()
			if err != nil {
				return fmt.Errorf("failed to load contexts: %w", err)
			}

			if len(endpointContexts.Contexts) == 0 {
				display := newContextDisplay(defaultContextName, defaultEndpointContext(), true)
				return getRenderer(cmd.Context()).Render(cmd.OutOrStdout(), []*ContextDisplay{display}, &options.RenderOptions)
			}

			active := activeContextName(cmd.Context(), endpointContexts)
			displays := make([]*ContextDisplay, 0, len(endpointContexts.Contexts))
			for name, endpoint := range endpointContexts.Contexts {
				displays = append(displays, newContextDisplay(name, endpoint, name == active))
			}
			slices.SortFunc(displays, func(a, b *ContextDisplay) int {
				return strings.Compare(a.Name, b.Name)
			})

			return getRenderer(cmd.Context()).Render(cmd.OutOrStdout(), displays, &options.RenderOptions)
		},
	}

	addRenderOptions(cmd, &options.RenderOptions)
	return cmd
}
