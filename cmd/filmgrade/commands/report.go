package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/report"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/store"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/database"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Regenerate player review reports from the database",
	Long: `Rebuilds the per-player text review reports from previously
saved graded rows.

With --week, rebuilds one week. Without flags, rebuilds every saved week.

Example:
  go run ./cmd/filmgrade report --week Wk7
  go run ./cmd/filmgrade report --out-dir out`,
	RunE: runReport,
}

var (
	reportWeek   string
	reportOutDir string
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportWeek, "week", "", "rebuild a single week")
	reportCmd.Flags().StringVar(&reportOutDir, "out-dir", "", "output directory (default: FILM_OUT_DIR)")
}

func runReport(cmd *cobra.Command, args []string) error {
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

	var records []contracts.GradedRecord
	if reportWeek != "" {
		records, err = repo.GetWeek(ctx, reportWeek)
	} else {
		records, err = repo.GetSeason(ctx)
	}
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no graded rows found")
	}

	outDir := reportOutDir
	if outDir == "" {
		outDir = cfg.Grading.OutDir
	}
	reportsDir := filepath.Join(outDir, "reports")

	writer := report.NewWriter(log)
	if err := writer.WriteReports(records, reportsDir); err != nil {
		return err
	}

	fmt.Printf("Wrote player reports for %d rows to %s\n", len(records), reportsDir)
	return nil
}
