package cmd

import (
	"context"
	"fmt"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/searcher"

	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "list the region names accepted by --region",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSearcher(func(ctx context.Context, se *searcher.Searcher) error {
			names := se.RegionNames()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), names)
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
