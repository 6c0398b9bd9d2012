package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <journal>",
		Short: "Replay a content mutation journal and purge affected cache entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Replay(cmd.Context(), args[0])
		},
	}
}
