package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/export"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/report"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/store"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/database"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export graded data from the database to CSV",
	Long: `Exports previously saved graded rows back out as CSV files.

With --week, exports a single week's detailed results and summary.
With --season, exports the whole season's rows plus a season summary.

Example:
  go run ./cmd/filmgrade export --week Wk7
  go run ./cmd/filmgrade export --season --out-dir out`,
	RunE: runExport,
}

var (
	exportWeek   string
	exportSeason bool
	exportOutDir string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportWeek, "week", "", "export a single week")
	exportCmd.Flags().BoolVar(&exportSeason, "season", false, "export the whole season")
	exportCmd.Flags().StringVar(&exportOutDir, "out-dir", "", "output directory (default: FILM_OUT_DIR)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportWeek == "" && !exportSeason {
		return fmt.Errorf("one of --week or --season is required")
	}

	cfg, log, err := setup()
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	repo := store.NewRepository(db.Pool)
	ctx := context.Background()

	outDir := exportOutDir
	if outDir == "" {
		outDir = cfg.Grading.OutDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	var (
		records []contracts.GradedRecord
		label   string
	)
	if exportSeason {
		records, err = repo.GetSeason(ctx)
		label = "season"
	} else {
		records, err = repo.GetWeek(ctx, exportWeek)
		label = exportWeek
	}
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no graded rows found for %s", label)
	}

	resultsPath := filepath.Join(outDir, label+"_results.csv")
	if err := export.WriteResultsFile(resultsPath, records); err != nil {
		return err
	}

	summaryPath := filepath.Join(outDir, label+"_summary.csv")
	if err := export.WriteSummaryFile(summaryPath, report.PlayerSummaries(records)); err != nil {
		return err
	}

	log.WithFields(map[string]interface{}{
		"rows":    len(records),
		"results": resultsPath,
		"summary": summaryPath,
	}).Info("Exported graded data")

	fmt.Printf("Exported %d rows to %s\n", len(records), resultsPath)
	fmt.Printf("Wrote summary to %s\n", summaryPath)

	return nil
}
