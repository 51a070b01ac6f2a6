package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/export"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/grading"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/ingest"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/report"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/store"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/config"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/database"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <input.csv>",
	Short: "Grade a weekly film CSV",
	Long: `Grades one weekly film CSV and writes the detailed results,
a per-player summary and player review reports.

Outputs (under --out-dir):
  results.csv          one graded row per input row
  results_summary.csv  per-player means, sorted by score
  reports/             <player>_<week>.txt review files

Example:
  go run ./cmd/filmgrade grade csv/Wk7_Eagles.csv
  go run ./cmd/filmgrade grade csv/Wk7_Eagles.csv --out-dir out --save`,
	Args: cobra.ExactArgs(1),
	RunE: runGrade,
}

var (
	gradeOutDir string
	gradeOut    string
	gradeSave   bool
)

func init() {
	rootCmd.AddCommand(gradeCmd)

	gradeCmd.Flags().StringVar(&gradeOutDir, "out-dir", "", "output directory (default: FILM_OUT_DIR)")
	gradeCmd.Flags().StringVar(&gradeOut, "out", "results.csv", "detailed results filename")
	gradeCmd.Flags().BoolVar(&gradeSave, "save", false, "also persist graded rows to the database")
}

func runGrade(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	weights, err := loadWeights(cfg, log)
	if err != nil {
		return err
	}

	outDir := gradeOutDir
	if outDir == "" {
		outDir = cfg.Grading.OutDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	// Ingest
	reader := ingest.NewReader(log)
	records, err := reader.ReadFile(args[0])
	if err != nil {
		return err
	}

	// Grade
	engine := grading.New(weights, log)
	graded := engine.GradeAll(records)

	// Export
	resultsPath := filepath.Join(outDir, filepath.Base(gradeOut))
	if err := export.WriteResultsFile(resultsPath, graded); err != nil {
		return err
	}

	summaryPath := summaryName(resultsPath)
	if err := export.WriteSummaryFile(summaryPath, report.PlayerSummaries(graded)); err != nil {
		return err
	}

	// Player review reports
	writer := report.NewWriter(log)
	reportsDir := filepath.Join(outDir, "reports")
	if err := writer.WriteReports(graded, reportsDir); err != nil {
		return err
	}

	// Optional persistence
	if gradeSave {
		if err := saveGraded(cfg, graded); err != nil {
			return err
		}
		log.Info("Saved graded rows to database")
	}

	fmt.Printf("Wrote detailed results to %s\n", resultsPath)
	fmt.Printf("Wrote summary to %s\n", summaryPath)
	fmt.Printf("Wrote player reports to %s\n", reportsDir)

	return nil
}

// summaryName turns results.csv into results_summary.csv
func summaryName(resultsPath string) string {
	ext := filepath.Ext(resultsPath)
	return resultsPath[:len(resultsPath)-len(ext)] + "_summary" + ext
}

func saveGraded(cfg *config.Config, graded []contracts.GradedRecord) error {
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	repo := store.NewRepository(db.Pool)

	byWeek := make(map[string][]contracts.GradedRecord)
	for _, g := range graded {
		byWeek[g.Week] = append(byWeek[g.Week], g)
	}

	ctx := context.Background()
	for week, rows := range byWeek {
		if err := repo.SaveWeek(ctx, week, rows); err != nil {
			return err
		}
	}

	return nil
}
