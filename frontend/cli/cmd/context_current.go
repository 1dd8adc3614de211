package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewContextCurrentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Display the context gist commands run against",
		Example: `  # Show current context
  gistpad context current

  # Show which endpoint the --context flag resolves to
  gistpad context current --context work`,
		RunE: func(cmd *cobra.Command, args []string) error {
			endpointContexts, err := getContextManager(cmd.Context()).LoadContext()
			if err != nil {
				return fmt.Errorf("failed to load contexts: %w", err)
			}

			name := activeContextName(cmd.Context(), endpointContexts)
			if name == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", defaultContextName, defaultEndpointContext().Address)
				return nil
			}

			endpoint, ok := endpointContexts.Contexts[name]
			if !ok {
				return fmt.Errorf("context %q not found", name)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", name, endpoint.Address)
			return nil
		},
	}

	return cmd
}
