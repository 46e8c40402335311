package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/artcache/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the cache maintenance loop",
		Long: `Run the cache maintenance loop until interrupted.

Module load events are read from stdin as JSON lines, e.g.
  {"name":"App_Web_b","references":["App_Code"]}

The command exits with status 75 when a process restart was requested.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noEvents, _ := cmd.Flags().GetBool("no-events")
			return c.withStack(cmd, app.OpenOptions{Watch: true}, func(s *app.Stack) error {
				if noEvents {
					return s.Serve(cmd.Context(), nil)
				}
				return s.Serve(cmd.Context(), cmd.InOrStdin())
			})
		},
	}
	cmd.Flags().Bool("no-events", false, "Do not read module load events from stdin")
	return cmd
}
