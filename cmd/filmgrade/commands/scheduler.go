package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/grading"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/ingest"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/report"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/scheduler"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/scheduler/jobs"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/store"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/database"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Manage scheduled jobs",
	Long: `Starts the scheduler daemon or manages its jobs.

Registered jobs:
  film-inbox-scan: Monday 06:00 (grade new CSV drops in the film inbox)

Subcommands:
  start   - start the scheduler daemon
  list    - list registered jobs
  run     - run a job immediately

Example:
  go run ./cmd/filmgrade scheduler start
  go run ./cmd/filmgrade scheduler run film-inbox-scan`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the scheduler daemon",
		RunE:  runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "List registered jobs",
		RunE:  listJobs,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "Run a job immediately",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	sched, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	sched.Start()

	fmt.Println("Scheduler started")
	fmt.Println("Registered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down scheduler...")
	sched.Stop()
	fmt.Println("Scheduler stopped")

	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	sched, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	fmt.Println("Registered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}

	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	sched, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	if err := sched.RunJob(jobName); err != nil {
		return fmt.Errorf("run job: %w", err)
	}

	fmt.Printf("Job %s started (running in background)\n", jobName)

	// RunJob is async; keep the process alive until interrupted so the
	// one-shot run can finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	return nil
}

func initScheduler() (*scheduler.Scheduler, error) {
	cfg, log, err := setup()
	if err != nil {
		return nil, err
	}

	weights, err := loadWeights(cfg, log)
	if err != nil {
		return nil, err
	}

	reader := ingest.NewReader(log)
	engine := grading.New(weights, log)
	reports := report.NewWriter(log)

	// Persistence is optional for the inbox job; run file-only when no
	// database is configured.
	var repo *store.Repository
	if cfg.Database.URL != "" {
		db, err := database.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		repo = store.NewRepository(db.Pool)
	}

	sched := scheduler.New(log)

	if err := sched.AddJob(jobs.NewInboxJob(
		cfg.Grading.InboxDir,
		cfg.Grading.OutDir,
		reader,
		engine,
		reports,
		repo,
		log,
	)); err != nil {
		return nil, err
	}

	return sched, nil
}
