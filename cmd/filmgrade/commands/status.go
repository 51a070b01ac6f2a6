package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/store"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/database"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/redis"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check database and cache connectivity",
	Long: `Checks the health of the configured database and Redis cache
and lists the weeks with saved graded rows.

Example:
  go run ./cmd/filmgrade status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Database
	if cfg.Database.URL == "" {
		fmt.Println("Database: not configured")
	} else {
		db, err := database.New(cfg)
		if err != nil {
			fmt.Printf("Database: UNHEALTHY (%v)\n", err)
		} else {
			defer db.Close()

			health, err := db.HealthCheck(ctx)
			if err != nil {
				fmt.Printf("Database: UNHEALTHY (%s)\n", health.Error)
			} else {
				fmt.Printf("Database: healthy (ping %s, %d/%d conns)\n",
					health.ResponseTime, health.Stats.TotalConns, health.Stats.MaxConns)

				repo := store.NewRepository(db.Pool)
				weeks, err := repo.ListWeeks(ctx)
				if err != nil {
					fmt.Printf("  saved weeks: error (%v)\n", err)
				} else if len(weeks) == 0 {
					fmt.Println("  saved weeks: none")
				} else {
					fmt.Printf("  saved weeks: %v\n", weeks)
				}
			}
		}
	}

	// Redis
	if !cfg.Redis.Enabled {
		fmt.Println("Redis: disabled")
		return nil
	}

	redisClient, err := redis.New(cfg)
	if err != nil {
		fmt.Printf("Redis: UNHEALTHY (%v)\n", err)
		return nil
	}
	defer redisClient.Close()

	if err := redisClient.Redis().Ping(ctx).Err(); err != nil {
		fmt.Printf("Redis: UNHEALTHY (%v)\n", err)
	} else {
		fmt.Println("Redis: healthy")
	}

	return nil
}
