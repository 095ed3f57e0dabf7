package cmd

import (
	"context"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/searcher"

	"github.com/spf13/cobra"
)

var statsFilter filterFlags

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "count search results per category label",
	Example: `  turismo stats --landscape cerros_y_montañas`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := statsFilter.filter()

		return withSearcher(func(ctx context.Context, se *searcher.Searcher) error {
			points, err := runSearch(ctx, se, filter)
			if err != nil {
				return err
			}
			stats := searcher.Summarize(points)

			if asJSON {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			printStats(cmd.OutOrStdout(), stats)
			return nil
		})
	},
}

func init() {
	statsFilter.register(statsCmd)
	rootCmd.AddCommand(statsCmd)
}
