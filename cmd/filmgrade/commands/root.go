package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	weightsFile string
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "filmgrade",
	Short: "Weekly film grading for receivers",
	Long: `filmgrade - weekly film grading pipeline

Grades weekly player-performance CSVs into 0-100 composite scores with
letter grades, player review reports and season rollups.

Examples:
  go run ./cmd/filmgrade grade csv/Wk7_Eagles.csv --out-dir out
  go run ./cmd/filmgrade api
  go run ./cmd/filmgrade export --season
  go run ./cmd/filmgrade status`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&weightsFile, "weights", "", "scoring weights YAML (default: built-in weights)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
