package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dumpfiles/internal/app"
)

func (c *CLI) newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [files...]",
		Short: "Dump the assets built from the given source files",
		Long: "Dump the assets built from the given source files.\n\n" +
			"With --listen, keep running and dump assets for every path written to the socket.\n" +
			"A line \"refresh\" rebuilds the dependency map, \"quit\" closes the connection.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			listen, _ := cmd.Flags().GetString("listen")
			writeTo, _ := cmd.Flags().GetString("write-to")

			return c.app.Dump(cmd.Context(), args, app.DumpOptions{
				Force:   force,
				Listen:  listen,
				WriteTo: writeTo,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild the dependency map before the first dump")
	cmd.Flags().StringP("listen", "l", "", "Socket path to listen at")
	cmd.Flags().StringP("write-to", "w", "", "Override the configured output directory")
	return cmd
}
