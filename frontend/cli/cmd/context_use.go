package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewContextUseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <name>",
		Short: "Switch to a different context",
		Args:  cobra.ExactArgs(1),
		Example: `  # Switch to the 'work' context
  gistpad context use work

  # Switch back to the previous context
  gistpad context use -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			contextManager := getContextManager(cmd.Context())

			name, err := contextManager.SetCurrentContext(args[0])
			if err != nil {
				return err
			}

			endpoint, err := contextManager.GetContext(name)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Switched to context %q (%s)\n", name, endpoint.Address)
			return nil
		},
	}

	return cmd
}
