package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/export"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/grading"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/ingest"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/report"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/store"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/logger"
)

// InboxJob scans the film inbox for new weekly CSV drops, grades them
// and emits results, summaries and player reports. Processed files move
// to a done/ subdirectory so re-runs are idempotent.
type InboxJob struct {
	inboxDir string
	outDir   string
	reader   *ingest.Reader
	engine   *grading.Engine
	reports  *report.Writer
	repo     *store.Repository // nil when running without a database
	logger   *logger.Logger
}

// NewInboxJob creates the weekly inbox scan job
func NewInboxJob(
	inboxDir, outDir string,
	reader *ingest.Reader,
	engine *grading.Engine,
	reports *report.Writer,
	repo *store.Repository,
	log *logger.Logger,
) *InboxJob {
	return &InboxJob{
		inboxDir: inboxDir,
		outDir:   outDir,
		reader:   reader,
		engine:   engine,
		reports:  reports,
		repo:     repo,
		logger:   log,
	}
}

// Name returns the job name
func (j *InboxJob) Name() string {
	return "film-inbox-scan"
}

// Schedule runs Monday mornings, after weekend film is usually entered
func (j *InboxJob) Schedule() string {
	return "0 0 6 * * MON"
}

// Run processes every unprocessed CSV in the inbox
func (j *InboxJob) Run(ctx context.Context) error {
	paths, err := filepath.Glob(filepath.Join(j.inboxDir, "*.csv"))
	if err != nil {
		return fmt.Errorf("scan inbox: %w", err)
	}

	if len(paths) == 0 {
		j.logger.Debug("Inbox empty, nothing to grade")
		return nil
	}

	doneDir := filepath.Join(j.inboxDir, "done")
	if err := os.MkdirAll(doneDir, 0755); err != nil {
		return fmt.Errorf("create done dir: %w", err)
	}

	for _, path := range paths {
		if err := j.processFile(ctx, path); err != nil {
			// One bad drop must not block the rest of the inbox
			j.logger.WithError(err).WithField("file", path).Error("Failed to process film CSV")
			continue
		}

		if err := os.Rename(path, filepath.Join(doneDir, filepath.Base(path))); err != nil {
			return fmt.Errorf("move processed file: %w", err)
		}
	}

	return nil
}

func (j *InboxJob) processFile(ctx context.Context, path string) error {
	records, err := j.reader.ReadFile(path)
	if err != nil {
		return err
	}

	graded := j.engine.GradeAll(records)

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	runDir := filepath.Join(j.outDir, stem)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	if err := export.WriteResultsFile(filepath.Join(runDir, "results.csv"), graded); err != nil {
		return err
	}
	if err := export.WriteSummaryFile(filepath.Join(runDir, "results_summary.csv"), report.PlayerSummaries(graded)); err != nil {
		return err
	}
	if err := j.reports.WriteReports(graded, filepath.Join(runDir, "reports")); err != nil {
		return err
	}

	if j.repo != nil {
		byWeek := make(map[string][]contracts.GradedRecord)
		for _, g := range graded {
			byWeek[g.Week] = append(byWeek[g.Week], g)
		}
		for week, rows := range byWeek {
			if err := j.repo.SaveWeek(ctx, week, rows); err != nil {
				return err
			}
		}
	}

	j.logger.WithFields(map[string]interface{}{
		"file": path,
		"rows": len(graded),
	}).Info("Graded film CSV from inbox")

	return nil
}
