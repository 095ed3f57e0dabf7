package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/di"
	logconfig "github.com/danisdan-stack/APP-de-Turismo/pkg/logger/config"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/searcher"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose bool
	asJSON  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "turismo",
	Short: "search tourism points of interest in Argentina",
	Long: `turismo queries OpenStreetMap through the Overpass API for points of interest
in the regions of Argentina, by category within one region or by landscape nationwide.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at info level to stderr")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print results as json")
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// withSearcher builds the searcher for the duration of run, cancelling on SIGINT.
func withSearcher(run func(ctx context.Context, se *searcher.Searcher) error) error {
	if !verbose {
		viper.Set("LOG_LEVEL", logconfig.WARN_LEVEL)
	}

	se, cleanup, err := di.InitializeSearcher()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, se)
}
