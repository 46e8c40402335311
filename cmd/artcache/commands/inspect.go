package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/artcache/internal/app"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <key>",
		Short: "Describe the preservation file of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStack(cmd, app.OpenOptions{}, func(s *app.Stack) error {
				in, err := s.Inspect(args[0])
				if err != nil {
					return err
				}
				RenderInspection(cmd.OutOrStdout(), in)
				return nil
			})
		},
	}
}
