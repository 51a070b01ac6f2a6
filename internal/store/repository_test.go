package store

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/grading"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/scoringconfig"
)

// Integration test; requires a database with the film schema applied.
func TestRepository_SaveAndGetWeek(t *testing.T) {
	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err, "database connection failed")
	defer pool.Close()

	repo := NewRepository(pool)
	engine := grading.New(scoringconfig.Default(), nil)

	graded := engine.GradeAll([]contracts.PlayerWeekRecord{
		{Player: "J. Smith", Week: "7", Snaps: 60, Targets: 8, Catches: 5, RecYards: 58, Drops: 1, Codes: "ER FD C+12"},
		{Player: "A. Brown", Week: "7", Snaps: 44, Targets: 6, Catches: 4, RecYards: 51, Codes: "TD MA"},
	})

	require.NoError(t, repo.SaveWeek(ctx, "7", graded))

	// Saving again must replace, not duplicate
	require.NoError(t, repo.SaveWeek(ctx, "7", graded))

	got, err := repo.GetWeek(ctx, "7")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Ordered by player
	assert.Equal(t, "A. Brown", got[0].Player)
	assert.Equal(t, "J. Smith", got[1].Player)
	assert.InDelta(t, graded[0].Score, got[1].Score, 1e-9)
	assert.Equal(t, graded[0].CodeCounts, got[1].CodeCounts)

	weeks, err := repo.ListWeeks(ctx)
	require.NoError(t, err)
	assert.Contains(t, weeks, "7")
}
