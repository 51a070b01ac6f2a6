package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/codes"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
)

// Repository handles graded-record persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new grading repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// SaveWeek replaces all graded rows for a week inside one transaction.
// Re-grading a week is idempotent: old rows are deleted first.
func (r *Repository) SaveWeek(ctx context.Context, week string, records []contracts.GradedRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "DELETE FROM film.graded_records WHERE week = $1", week)
	if err != nil {
		return fmt.Errorf("failed to delete old results: %w", err)
	}

	query := `
		INSERT INTO film.graded_records (
			player, week, snaps, targets, catches, rec_yards, rush_yards,
			touchdowns, drops, missed_assignments, loafs, key_plays, codes,
			catch_rate, yards_per_target, tds_per30, keyplays_per30,
			targets_per30, drops_rate, loafs_per30, ma_per30,
			score, grade, code_points, code_counts,
			code_catch_yards, code_rush_yards, derived_keyplays, keyplays_used
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21,
			$22, $23, $24, $25, $26, $27, $28, $29
		)
	`

	for _, g := range records {
		countsJSON, err := json.Marshal(g.CodeCounts)
		if err != nil {
			return fmt.Errorf("failed to marshal code counts: %w", err)
		}

		_, err = tx.Exec(ctx, query,
			g.Player, g.Week, g.Snaps, g.Targets, g.Catches, g.RecYards, g.RushYards,
			g.Touchdowns, g.Drops, g.MissedAssignments, g.Loafs, g.KeyPlays, g.Codes,
			g.CatchRate, g.YardsPerTarget, g.TDsPer30, g.KeyPlaysPer30,
			g.TargetsPer30, g.DropsRate, g.LoafsPer30, g.MAPer30,
			g.Score, g.Grade, g.CodePoints, countsJSON,
			g.CodeCatchYards, g.CodeRushYards, g.DerivedKeyPlays, g.KeyPlaysUsed,
		)
		if err != nil {
			return fmt.Errorf("failed to insert graded record: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

const selectColumns = `
	player, week, snaps, targets, catches, rec_yards, rush_yards,
	touchdowns, drops, missed_assignments, loafs, key_plays, codes,
	catch_rate, yards_per_target, tds_per30, keyplays_per30,
	targets_per30, drops_rate, loafs_per30, ma_per30,
	score, grade, code_points, code_counts,
	code_catch_yards, code_rush_yards, derived_keyplays, keyplays_used
`

// GetWeek returns all graded rows for a week
func (r *Repository) GetWeek(ctx context.Context, week string) ([]contracts.GradedRecord, error) {
	query := "SELECT" + selectColumns + "FROM film.graded_records WHERE week = $1 ORDER BY player"

	rows, err := r.pool.Query(ctx, query, week)
	if err != nil {
		return nil, fmt.Errorf("failed to query week: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetPlayerSeason returns all graded rows for one player across the season
func (r *Repository) GetPlayerSeason(ctx context.Context, player string) ([]contracts.GradedRecord, error) {
	query := "SELECT" + selectColumns + "FROM film.graded_records WHERE player = $1 ORDER BY week"

	rows, err := r.pool.Query(ctx, query, player)
	if err != nil {
		return nil, fmt.Errorf("failed to query player: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetSeason returns every graded row, ordered by week then player
func (r *Repository) GetSeason(ctx context.Context) ([]contracts.GradedRecord, error) {
	query := "SELECT" + selectColumns + "FROM film.graded_records ORDER BY week, player"

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query season: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListWeeks returns the distinct weeks with graded data
func (r *Repository) ListWeeks(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, "SELECT DISTINCT week FROM film.graded_records ORDER BY week")
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}
	defer rows.Close()

	var weeks []string
	for rows.Next() {
		var week string
		if err := rows.Scan(&week); err != nil {
			return nil, fmt.Errorf("failed to scan week: %w", err)
		}
		weeks = append(weeks, week)
	}

	return weeks, rows.Err()
}

// rowScanner matches both pgx.Rows and pgx.Row
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRecords(rows rowScanner) ([]contracts.GradedRecord, error) {
	var records []contracts.GradedRecord

	for rows.Next() {
		var g contracts.GradedRecord
		var countsJSON []byte

		err := rows.Scan(
			&g.Player, &g.Week, &g.Snaps, &g.Targets, &g.Catches, &g.RecYards, &g.RushYards,
			&g.Touchdowns, &g.Drops, &g.MissedAssignments, &g.Loafs, &g.KeyPlays, &g.Codes,
			&g.CatchRate, &g.YardsPerTarget, &g.TDsPer30, &g.KeyPlaysPer30,
			&g.TargetsPer30, &g.DropsRate, &g.LoafsPer30, &g.MAPer30,
			&g.Score, &g.Grade, &g.CodePoints, &countsJSON,
			&g.CodeCatchYards, &g.CodeRushYards, &g.DerivedKeyPlays, &g.KeyPlaysUsed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan graded record: %w", err)
		}

		g.CodeCounts = make(map[codes.Code]int, len(codes.All))
		if len(countsJSON) > 0 {
			if err := json.Unmarshal(countsJSON, &g.CodeCounts); err != nil {
				return nil, fmt.Errorf("failed to unmarshal code counts: %w", err)
			}
		}

		records = append(records, g)
	}

	return records, rows.Err()
}
