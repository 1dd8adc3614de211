package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type contextRemoveOptions struct {
	Force bool
}

func NewContextRemoveCmd() *cobra.Command {
	var options contextRemoveOptions

	cmd := &cobra.Command{
		Use:     "remove <name>... [flags]",
		Short:   "Remove one or more contexts",
		Args:    cobra.MinimumNArgs(1),
		Aliases: []string{"rm"},
		Long: `Remove one or more contexts from the configuration.

Tokens stored in the system keyring for these contexts are deleted as well.
Nothing is removed unless every named context exists.`,
		Example: `  # Remove a single context
  gistpad context remove staging

  # Remove without confirmation
  gistpad context rm staging work --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			contextManager := getContextManager(cmd.Context())

			endpointContexts, err := contextManager.LoadContext()
			if err != nil {
				return fmt.Errorf("failed to load contexts: %w", err)
			}
			for _, name := range args {
				if _, ok := endpointContexts.Contexts[name]; !ok {
					return fmt.Errorf("context %q not found", name)
				}
			}

			if !options.Force && !confirmDeletion(cmd.InOrStdin(), cmd.ErrOrStderr(), "context", args) {
				return nil
			}

			for _, name := range args {
				if err := contextManager.DeleteContext(name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Context %q removed\n", name)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&options.Force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
