package cmd

import (
	"context"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/geo"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/searcher"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	searchFilter filterFlags
	searchNear   string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "search points of interest",
	Long: `search points of interest in one region (--region, optionally narrowed by --category
and --landscape), or a landscape in every region when --region is omitted.`,
	Example: `  turismo search --region Mendoza --category naturaleza
  turismo search --landscape rios_y_mar --near -34.60,-58.38`,
	RunE: func(cmd *cobra.Command, args []string) error {
		near, err := parseNear(searchNear)
		if err != nil {
			return err
		}
		filter := searchFilter.filter()

		return withSearcher(func(ctx context.Context, se *searcher.Searcher) error {
			points, err := runSearch(ctx, se, filter)
			if err != nil {
				return err
			}
			if near != nil {
				geo.SortByDistance(points, near.Lat, near.Lon)
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), points)
			}
			printPoints(cmd.OutOrStdout(), points, near)
			return nil
		})
	},
}

func init() {
	searchFilter.register(searchCmd)
	searchCmd.Flags().StringVar(&searchNear, "near", "", "order results by distance from lat,lon")
	rootCmd.AddCommand(searchCmd)
}

// runSearch shows a progress bar while a nationwide search fans out.
func runSearch(ctx context.Context, se *searcher.Searcher,
	filter datastructure.SearchFilter) ([]datastructure.PointOfInterest, error) {
	if filter.Region != "" || asJSON {
		return se.Search(ctx, filter)
	}

	bar := newRegionBar(len(geo.Regions))
	defer bar.Finish()

	return se.SearchWithProgress(ctx, filter, func(region geo.Region, found int, err error) {
		if err != nil {
			bar.Describe("[red]" + region.Name + " failed[reset]")
		} else {
			bar.Describe("[cyan]" + region.Name + "[reset]")
		}
		_ = bar.Add(1)
	})
}

func newRegionBar(regions int) *progressbar.ProgressBar {
	return progressbar.NewOptions(regions,
		progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(24),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription("[cyan]searching regions...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
