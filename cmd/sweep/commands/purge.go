package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPurgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge [urls...]",
		Short: "Purge specific URLs or the entire site from the cache",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			parallelism, _ := cmd.Flags().GetInt("parallelism")

			if len(args) == 0 && !all {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			return c.app.Purge(cmd.Context(), args, all, parallelism)
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Purge the entire site instead of individual URLs")
	cmd.Flags().IntP("parallelism", "p", 4, "Maximum number of concurrent purge requests")
	return cmd
}
