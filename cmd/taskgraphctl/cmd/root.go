package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	logLevel string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "taskgraphctl",
	Short: "Build and inspect GPU frame task graphs",
	Long: `taskgraphctl loads a frame configuration describing a set of passes
over virtual GPU resources, builds the resulting task graph (including
synchronization barrier synthesis and merging), and reports the result.`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "raise log level to debug")
	rootCmd.AddCommand(buildCmd)
}
