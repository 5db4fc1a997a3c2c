package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dumpfiles/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch source files and notify a listening dump server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			socket, _ := cmd.Flags().GetString("socket")
			root, _ := cmd.Flags().GetString("root")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Socket: socket,
				Root:   root,
			})
		},
	}
	cmd.Flags().StringP("socket", "s", "", "Socket path of the dump server")
	cmd.Flags().StringP("root", "r", "", "Directory to watch (defaults to watch.root)")
	return cmd
}
