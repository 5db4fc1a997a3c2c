package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Print which assets depend on which source files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return c.app.PrintMap(cmd.Context(), cmd.OutOrStdout(), force)
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild the dependency map instead of reading the cache")
	return cmd
}
