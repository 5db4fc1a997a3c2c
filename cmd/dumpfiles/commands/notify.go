package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newNotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify [lines...]",
		Short: "Send changed paths or commands to a listening dump server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			socket, _ := cmd.Flags().GetString("socket")
			return c.app.Notify(cmd.Context(), socket, args)
		},
	}
	cmd.Flags().StringP("socket", "s", "", "Socket path of the dump server")
	return cmd
}
