package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type gistDeleteOptions struct {
	Force bool
}

func NewGistDeleteCmd() *cobra.Command {
	var options gistDeleteOptions

	cmd := &cobra.Command{
		Use:     "delete <id>... [flags]",
		Short:   "Delete one or more gists",
		Aliases: []string{"rm"},
		Args:    cobra.MinimumNArgs(1),
		Example: `  # Delete a gist after confirmation
  gistpad gist delete aa5a315d61ae9438b18d

  # Delete several gists without confirmation
  gistpad gist delete aa5a315d61ae9438b18d 2decf6c462d9b4418f2 --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := getGistStore(cmd.Context())

			if !options.Force && !confirmDeletion(cmd.InOrStdin(), cmd.ErrOrStderr(), "gist", args) {
				return nil
			}

			for _, id := range args {
				if err := store.DeleteGist(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to delete gist %s: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Gist %s deleted\n", id)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&options.Force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
